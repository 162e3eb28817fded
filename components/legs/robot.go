package legs

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/craab/hexapod/components/legs/gait"
	"github.com/craab/hexapod/math3d"
)

// Position identifies one of the six legs. The values are also the indices
// used by Leg and SetPose.
type Position int

const (
	FrontLeft Position = iota
	FrontRight
	MiddleLeft
	MiddleRight
	BackLeft
	BackRight

	NumLegs = 6
)

var positionNames = [NumLegs]string{
	FrontLeft:   "FL",
	FrontRight:  "FR",
	MiddleLeft:  "ML",
	MiddleRight: "MR",
	BackLeft:    "BL",
	BackRight:   "BR",
}

func (p Position) String() string {
	if p < 0 || p >= NumLegs {
		return "??"
	}

	return positionNames[p]
}

// Pose holds every joint angle of the robot: one row of base, shoulder and
// elbow per leg, in Position order.
type Pose [NumLegs][NumJoints]float64

var log = logrus.WithFields(logrus.Fields{
	"pkg": "legs",
})

// Robot is a body with six legs. The legs are fixed at construction; there is
// no way to add or remove one.
type Robot struct {
	legs [NumLegs]*Leg
}

// NewRobot returns a robot with six identical legs built from the given
// parameters. Every leg starts with the template's mount pose, so call
// InitializeLegMounts to spread them around the body.
func NewRobot(params LegParameters) *Robot {
	r := &Robot{}
	for i := range r.legs {
		r.legs[i] = NewLeg(Position(i).String(), params)
	}

	return r
}

// Leg returns the leg at the given index, or ErrLegIndexOutOfRange.
func (r *Robot) Leg(index int) (*Leg, error) {
	if index < 0 || index >= NumLegs {
		return nil, errors.Wrapf(ErrLegIndexOutOfRange, "leg %d", index)
	}

	return r.legs[index], nil
}

// Legs returns all six legs, in Position order.
func (r *Robot) Legs() [NumLegs]*Leg {
	return r.legs
}

// InitializeLegMounts derives the mount pose of every leg from the body
// dimensions. The front and back legs sit at the corners of a bodyLength by
// headWidth rectangle, angled mountAngle degrees forwards (or backwards) of
// straight out. The middle legs stick straight out from the sides, which are
// bodyWidth apart. The right side is always the mirror image of the left.
func (r *Robot) InitializeLegMounts(bodyLength, bodyWidth, headWidth, mountAngle float64) {
	halfLength := bodyLength / 2.0
	halfBodyWidth := bodyWidth / 2.0
	halfHeadWidth := headWidth / 2.0

	frontLeft := math3d.MakeMountPose(halfLength, halfHeadWidth, 0, mountAngle, 0, 0)
	middleLeft := math3d.MakeMountPose(0, halfBodyWidth, 0, 90, 0, 0)
	backLeft := math3d.MakeMountPose(-halfLength, halfHeadWidth, 0, 180-mountAngle, 0, 0)

	mounts := [NumLegs]math3d.MountPose{
		FrontLeft:   frontLeft,
		FrontRight:  frontLeft.Mirror(),
		MiddleLeft:  middleLeft,
		MiddleRight: middleLeft.Mirror(),
		BackLeft:    backLeft,
		BackRight:   backLeft.Mirror(),
	}

	for i, leg := range r.legs {
		leg.SetMountPose(mounts[i])
	}
}

// MountPoses returns the current mount pose of every leg.
func (r *Robot) MountPoses() [NumLegs]math3d.MountPose {
	var out [NumLegs]math3d.MountPose
	for i, leg := range r.legs {
		out[i] = leg.MountPose()
	}

	return out
}

// SetDefaultStance puts every leg into the resting pose. It ignores the
// mounts, so the base of each leg points straight out from its mount.
func (r *Robot) SetDefaultStance() {
	s := gait.Stance()
	for _, leg := range r.legs {
		leg.setJointAngles(s)
	}

	log.Debugf("stance=%v", s)
}

// StepGroup lifts every leg in the group and swings it forwards by the fixed
// step. Panics if the group is invalid.
func (r *Robot) StepGroup(g gait.Group) {
	step := gait.TheStep()
	for _, i := range g.Legs() {
		leg := r.legs[i]
		leg.setJointAngles(step.Apply(leg.JointAngles()))
	}

	log.Debugf("stepped group %s", g)
}

// StepForward takes one fixed step with each tripod group in turn, group A
// then group B. Note that this is a full cycle, not the single-group half
// cycle the step primitive is usually described as; that one is StepGroup.
// Both groups move here because that's what the platform has always done.
// The distance is not used to scale the step; callers wanting to go further
// must call this repeatedly.
func (r *Robot) StepForward(distance float64) {
	log.Debugf("step forward (distance=%0.2f)", distance)
	for _, g := range gait.Groups {
		r.StepGroup(g)
	}
}

// SetPose sets every joint of every leg at once.
func (r *Robot) SetPose(p Pose) {
	for i, leg := range r.legs {
		leg.setJointAngles(p[i])
	}
}

// Pose returns every joint angle, in the same layout as SetPose takes.
func (r *Robot) Pose() Pose {
	var p Pose
	for i, leg := range r.legs {
		p[i] = leg.JointAngles()
	}

	return p
}
