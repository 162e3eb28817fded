package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/craab/hexapod/components/legs"
	"github.com/craab/hexapod/components/legs/gait"
	"github.com/craab/hexapod/math3d"
	"github.com/craab/hexapod/utils"
)

type legReport struct {
	Name      string                            `json:"name"`
	Group     string                            `json:"group"`
	Angles    [legs.NumJoints]float64           `json:"angles_deg"`
	Endpoints [legs.NumEndpoints]math3d.Vector3 `json:"endpoints"`
}

func reports(r *legs.Robot) []legReport {
	out := make([]legReport, 0, legs.NumLegs)

	for i, leg := range r.Legs() {
		rep := legReport{
			Name:      leg.Name(),
			Group:     gait.GroupOf(i).String(),
			Endpoints: leg.GlobalEndpoints(),
		}

		for i, a := range leg.JointAngles() {
			rep.Angles[i] = utils.Deg(a)
		}

		out = append(out, rep)
	}

	return out
}

func xyz(v math3d.Vector3) string {
	return fmt.Sprintf("%+.2f, %+.2f, %+.2f", v.X, v.Y, v.Z)
}

// renderLegs writes the joint angles (in degrees) and global endpoints of
// every leg.
func renderLegs(w io.Writer, r *legs.Robot, asJSON bool) error {
	reps := reports(r)
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reps)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Leg", "Group", "Base", "Shoulder", "Elbow", "Origin", "Tip 1", "Tip 2", "Foot"})

	for _, rep := range reps {
		t.AppendRow(table.Row{
			rep.Name,
			rep.Group,
			fmt.Sprintf("%+.1f", rep.Angles[legs.Base]),
			fmt.Sprintf("%+.1f", rep.Angles[legs.Shoulder]),
			fmt.Sprintf("%+.1f", rep.Angles[legs.Elbow]),
			xyz(rep.Endpoints[0]),
			xyz(rep.Endpoints[1]),
			xyz(rep.Endpoints[2]),
			xyz(rep.Endpoints[3]),
		})
	}

	t.Render()
	return nil
}

// renderMounts writes the mount pose of every leg.
func renderMounts(w io.Writer, r *legs.Robot, asJSON bool) error {
	mounts := r.MountPoses()
	if asJSON {
		out := map[string]math3d.MountPose{}
		for i, m := range mounts {
			out[legs.Position(i).String()] = m
		}

		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Leg", "Position", "Yaw", "Pitch", "Roll"})

	for i, m := range mounts {
		t.AppendRow(table.Row{
			legs.Position(i).String(),
			xyz(m.Position),
			fmt.Sprintf("%+.1f", m.Yaw),
			fmt.Sprintf("%+.1f", m.Pitch),
			fmt.Sprintf("%+.1f", m.Roll),
		})
	}

	t.Render()
	return nil
}

// renderLocal writes the given body space point as seen from each leg's own
// coordinate space.
func renderLocal(w io.Writer, r *legs.Robot, v math3d.Vector3, asJSON bool) error {
	ls := r.Legs()
	if asJSON {
		out := map[string]math3d.Vector3{}
		for _, leg := range ls {
			out[leg.Name()] = leg.LocalFromGlobal(v)
		}

		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Leg", "Local"})

	for _, leg := range ls {
		t.AppendRow(table.Row{leg.Name(), xyz(leg.LocalFromGlobal(v))})
	}

	t.Render()
	return nil
}
