package legs

import (
	"math"

	"github.com/pkg/errors"

	"github.com/craab/hexapod/math3d"
	"github.com/craab/hexapod/utils"
)

const (

	// Indices of the three joints. The base swings the whole leg around the
	// mount's Z axis, and the shoulder and elbow raise and lower it. There is
	// no joint between the second and third segments; the third is rigidly
	// in line with the second.
	Base     = 0
	Shoulder = 1
	Elbow    = 2

	NumJoints = 3

	// The origin, plus the tip of each of the three segments.
	NumEndpoints = 4
)

// LegParameters holds the fixed dimensions of a leg. Lengths are in the same
// units as the mount pose, and the angle limits are in degrees.
type LegParameters struct {
	Segment1Length float64
	Segment2Length float64
	Segment3Length float64

	// Limits of the shoulder and elbow (vertical) and base (horizontal)
	// joints. These are informational only; nothing clamps to them.
	MaxVerticalAngle   float64
	MaxHorizontalAngle float64

	Mount math3d.MountPose
}

// DefaultLegParameters returns the dimensions of the stock leg.
func DefaultLegParameters() LegParameters {
	return LegParameters{
		Segment1Length:     10.0,
		Segment2Length:     10.0,
		Segment3Length:     10.0,
		MaxVerticalAngle:   90.0,
		MaxHorizontalAngle: 120.0,
	}
}

// Leg is a three-joint leg. Joint angles are in radians. The endpoints are
// recalculated whenever anything changes, so they're never stale.
type Leg struct {
	name      string
	params    LegParameters
	angles    [NumJoints]float64
	endpoints [NumEndpoints]math3d.Vector3
}

// NewLeg returns a leg with all joints at zero. The parameters are copied.
func NewLeg(name string, params LegParameters) *Leg {
	leg := &Leg{
		name:   name,
		params: params,
	}

	leg.update()
	return leg
}

// Name returns the short name of the leg's position, e.g. "FL".
func (leg *Leg) Name() string {
	return leg.name
}

// Parameters returns a copy of the leg's dimensions.
func (leg *Leg) Parameters() LegParameters {
	return leg.params
}

func (leg *Leg) MountPose() math3d.MountPose {
	return leg.params.Mount
}

// SetMountPose replaces the pose at which the leg is attached to the body.
// This doesn't move any of the local endpoints, only the global ones.
func (leg *Leg) SetMountPose(p math3d.MountPose) {
	leg.params.Mount = p
	leg.update()
	log.Debugf("%s mount=%s", leg.name, p)
}

// SetJointAngle sets the angle (in radians) of one joint. The index must be
// Base, Shoulder or Elbow; anything else returns ErrJointIndexOutOfRange and
// leaves the leg untouched.
func (leg *Leg) SetJointAngle(index int, angle float64) error {
	if index < 0 || index >= NumJoints {
		return errors.Wrapf(ErrJointIndexOutOfRange, "%s joint %d", leg.name, index)
	}

	leg.angles[index] = angle
	leg.update()
	return nil
}

// setJointAngles sets all three joints at once. Used by the robot, which only
// ever deals in whole legs.
func (leg *Leg) setJointAngles(angles [NumJoints]float64) {
	leg.angles = angles
	leg.update()
}

// JointAngles returns the current base, shoulder and elbow angles.
func (leg *Leg) JointAngles() [NumJoints]float64 {
	return leg.angles
}

// LocalEndpoints returns the origin and the tip of each segment, in the leg's
// own coordinate space.
func (leg *Leg) LocalEndpoints() [NumEndpoints]math3d.Vector3 {
	return leg.endpoints
}

// GlobalEndpoints returns the same points as LocalEndpoints, transformed into
// the body space by the mount pose.
func (leg *Leg) GlobalEndpoints() [NumEndpoints]math3d.Vector3 {
	m := leg.Matrix()

	var out [NumEndpoints]math3d.Vector3
	for i, v := range leg.endpoints {
		out[i] = v.MultiplyByMatrix44(m)
	}

	return out
}

// Foot returns the tip of the last segment, in the body space.
func (leg *Leg) Foot() math3d.Vector3 {
	return leg.endpoints[NumEndpoints-1].MultiplyByMatrix44(leg.Matrix())
}

// LocalFromGlobal transforms a point in the body space into the leg's own
// coordinate space. It's the inverse of the transform GlobalEndpoints applies.
func (leg *Leg) LocalFromGlobal(v math3d.Vector3) math3d.Vector3 {
	return leg.params.Mount.ToLocal(v)
}

// Matrix returns a 4x4 matrix, to transform a vector in the leg's coordinate
// space into the parent (body) space.
func (leg *Leg) Matrix() math3d.Matrix44 {
	return leg.params.Mount.Matrix()
}

// WithinLimits returns true if the base angle is within the horizontal limit
// and the shoulder and elbow are within the vertical limit, in either
// direction.
func (leg *Leg) WithinLimits() bool {
	h := utils.Rad(leg.params.MaxHorizontalAngle)
	v := utils.Rad(leg.params.MaxVerticalAngle)

	return math.Abs(leg.angles[Base]) <= h &&
		math.Abs(leg.angles[Shoulder]) <= v &&
		math.Abs(leg.angles[Elbow]) <= v
}

// update recalculates the local endpoints from the joint angles.
//
// Each segment is projected onto the horizontal plane (which the base angle
// splits into X and Y) and the vertical axis, then added to the end of the
// previous one. The first segment is pitched by the shoulder alone; the second
// and third by the shoulder and elbow together.
func (leg *Leg) update() {
	base := leg.angles[Base]
	pitches := [NumEndpoints - 1]float64{
		leg.angles[Shoulder],
		leg.angles[Shoulder] + leg.angles[Elbow],
		leg.angles[Shoulder] + leg.angles[Elbow],
	}
	lengths := [NumEndpoints - 1]float64{
		leg.params.Segment1Length,
		leg.params.Segment2Length,
		leg.params.Segment3Length,
	}

	cb, sb := math.Cos(base), math.Sin(base)
	leg.endpoints[0] = math3d.ZeroVector3

	for i := range lengths {
		horiz := lengths[i] * math.Cos(pitches[i])
		vert := lengths[i] * math.Sin(pitches[i])
		leg.endpoints[i+1] = leg.endpoints[i].Add(math3d.Vector3{
			X: horiz * cb,
			Y: horiz * sb,
			Z: vert,
		})
	}
}
