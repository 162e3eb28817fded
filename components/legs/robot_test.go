package legs

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craab/hexapod/components/legs/gait"
	"github.com/craab/hexapod/math3d"
	"github.com/craab/hexapod/utils"
)

func TestNewRobot(t *testing.T) {
	p := DefaultLegParameters()
	p.Segment1Length = 11
	p.Segment2Length = 12
	p.Segment3Length = 13
	r := NewRobot(p)

	assert.Len(t, r.Legs(), NumLegs)
	for i := 0; i < NumLegs; i++ {
		leg, err := r.Leg(i)
		require.NoError(t, err)
		assert.Equal(t, Position(i).String(), leg.Name())
		assert.Equal(t, 11.0, leg.Parameters().Segment1Length)
		assert.Equal(t, 12.0, leg.Parameters().Segment2Length)
		assert.Equal(t, 13.0, leg.Parameters().Segment3Length)
	}

	// Legs must not share state.
	leg0, _ := r.Leg(0)
	leg1, _ := r.Leg(1)
	require.NoError(t, leg0.SetJointAngle(Base, 1))
	assert.Equal(t, 0.0, leg1.JointAngles()[Base])
}

func TestLegOutOfRange(t *testing.T) {
	r := NewRobot(DefaultLegParameters())

	for _, idx := range []int{-1, 6, 7} {
		leg, err := r.Leg(idx)
		assert.Nil(t, leg)
		assert.True(t, errors.Is(err, ErrLegIndexOutOfRange), "index %d: %v", idx, err)
	}
}

func TestPositionString(t *testing.T) {
	assert.Equal(t, "FL", FrontLeft.String())
	assert.Equal(t, "MR", MiddleRight.String())
	assert.Equal(t, "BR", BackRight.String())
	assert.Equal(t, "??", Position(6).String())
}

func TestInitializeLegMounts(t *testing.T) {
	r := NewRobot(DefaultLegParameters())
	r.InitializeLegMounts(100, 80, 60, 30)

	exp := [NumLegs]math3d.MountPose{
		FrontLeft:   math3d.MakeMountPose(50, 30, 0, 30, 0, 0),
		FrontRight:  math3d.MakeMountPose(50, -30, 0, -30, 0, 0),
		MiddleLeft:  math3d.MakeMountPose(0, 40, 0, 90, 0, 0),
		MiddleRight: math3d.MakeMountPose(0, -40, 0, -90, 0, 0),
		BackLeft:    math3d.MakeMountPose(-50, 30, 0, 150, 0, 0),
		BackRight:   math3d.MakeMountPose(-50, -30, 0, -150, 0, 0),
	}

	assert.Equal(t, exp, r.MountPoses())
}

func TestMountsAreMirrored(t *testing.T) {
	type eg struct {
		length, width, head, angle float64
	}

	data := []eg{
		{93.301, 100, 75, 30},
		{100, 80, 60, 45},
		{10, 20, 30, 0},
		{-4, 3, 7, 170},
	}

	for i, x := range data {
		r := NewRobot(DefaultLegParameters())
		r.InitializeLegMounts(x.length, x.width, x.head, x.angle)
		m := r.MountPoses()

		pairs := [][2]Position{{FrontLeft, FrontRight}, {MiddleLeft, MiddleRight}, {BackLeft, BackRight}}
		for _, p := range pairs {
			l, rr := m[p[0]], m[p[1]]
			assert.Equal(t, -l.Position.Y, rr.Position.Y, "example %d %s", i+1, p[1])
			assert.Equal(t, -l.Yaw, rr.Yaw, "example %d %s", i+1, p[1])
			assert.Equal(t, l.Position.X, rr.Position.X, "example %d %s", i+1, p[1])
		}
	}
}

func TestMountsOnlyMoveGlobalEndpoints(t *testing.T) {
	r := NewRobot(DefaultLegParameters())
	ml, _ := r.Leg(int(MiddleLeft))
	bl, _ := r.Leg(int(BackLeft))
	local := ml.LocalEndpoints()

	r.InitializeLegMounts(100, 80, 60, 30)
	assert.Equal(t, local, ml.LocalEndpoints())

	// Straight legs stick out along the mount's yaw.
	assertNear(t, Vector3{X: 0, Y: 70, Z: 0}, ml.Foot())
	assertNear(t, Vector3{X: -75.98076211353316, Y: 45, Z: 0}, bl.Foot())
}

func TestSetDefaultStance(t *testing.T) {
	r := NewRobot(DefaultLegParameters())
	r.InitializeLegMounts(100, 80, 60, 30)
	r.SetDefaultStance()

	for _, leg := range r.Legs() {
		a := leg.JointAngles()
		assert.InDelta(t, 0, a[Base], 1e-12)
		assert.InDelta(t, utils.Rad(-20), a[Shoulder], 1e-12)
		assert.InDelta(t, utils.Rad(-70), a[Elbow], 1e-12)

		// Shoulder and elbow add up to -90, so the last two segments hang
		// straight down.
		ep := leg.LocalEndpoints()
		assert.InDelta(t, ep[1].X, ep[3].X, 1e-9)
		assert.InDelta(t, ep[1].Z-20, ep[3].Z, 1e-9)
	}
}

func TestStepGroup(t *testing.T) {
	r := NewRobot(DefaultLegParameters())
	r.SetDefaultStance()
	r.StepGroup(gait.GroupA)

	moved := map[Position]bool{FrontLeft: true, MiddleRight: true, BackLeft: true}
	for i, leg := range r.Legs() {
		a := leg.JointAngles()
		if moved[Position(i)] {
			assert.InDelta(t, utils.Rad(15), a[Base], 1e-12, "%s", leg.Name())
			assert.InDelta(t, utils.Rad(60), a[Shoulder], 1e-12, "%s", leg.Name())
		} else {
			assert.InDelta(t, 0, a[Base], 1e-12, "%s", leg.Name())
			assert.InDelta(t, utils.Rad(-20), a[Shoulder], 1e-12, "%s", leg.Name())
		}

		assert.InDelta(t, utils.Rad(-70), a[Elbow], 1e-12, "%s", leg.Name())
	}
}

func TestStepForward(t *testing.T) {
	r := NewRobot(DefaultLegParameters())
	r.SetDefaultStance()

	// The distance doesn't change the step.
	r.StepForward(1000)
	first := r.Pose()

	for _, a := range first {
		assert.InDelta(t, utils.Rad(15), a[Base], 1e-12)
		assert.InDelta(t, utils.Rad(60), a[Shoulder], 1e-12)
		assert.InDelta(t, utils.Rad(-70), a[Elbow], 1e-12)
	}

	// Each call advances the base by the same fixed amount.
	r.StepForward(1)
	r.StepForward(1)
	for _, a := range r.Pose() {
		assert.InDelta(t, utils.Rad(45), a[Base], 1e-12)
		assert.InDelta(t, utils.Rad(60), a[Shoulder], 1e-12)
	}
}

func TestSetPose(t *testing.T) {
	r := NewRobot(DefaultLegParameters())

	p := Pose{
		{0.0, 0.1, 0.2},
		{1.0, 1.1, 1.2},
		{2.0, 2.1, 2.2},
		{3.0, 3.1, 3.2},
		{4.0, 4.1, 4.2},
		{5.0, 5.1, 5.2},
	}

	r.SetPose(p)
	assert.Equal(t, p, r.Pose())

	fr, _ := r.Leg(int(FrontRight))
	assert.Equal(t, [NumJoints]float64{1.0, 1.1, 1.2}, fr.JointAngles())

	br, _ := r.Leg(int(BackRight))
	assert.Equal(t, [NumJoints]float64{5.0, 5.1, 5.2}, br.JointAngles())
}
