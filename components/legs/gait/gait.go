package gait

import (
	"github.com/craab/hexapod/utils"
)

const (
	numLegs = 6

	// The number of legs in each tripod group.
	GroupSize = numLegs / 2
)

// Leg indices, in the same order as the robot's leg positions.
const (
	frontLeft = iota
	frontRight
	middleLeft
	middleRight
	backLeft
	backRight
)

var (

	// Base, shoulder and elbow angles of the resting stance. The same for
	// every leg, regardless of how it's mounted.
	stanceDegrees = [3]float64{0, -20, -70}

	// Shoulder angle which a leg is lifted to while stepping.
	liftDegrees = 60.0

	// The amount the base angle swings forwards on each step.
	advanceDegrees = 15.0
)

// Group is one of the two tripods. Each contains the front and back legs on
// one side, and the middle leg on the other, so the body is always resting on
// a stable triangle while the other group moves.
type Group int

const (
	GroupA Group = iota
	GroupB
)

// Groups lists both tripods in the order they step.
var Groups = [2]Group{GroupA, GroupB}

var tripods = [2][GroupSize]int{
	GroupA: {frontLeft, middleRight, backLeft},
	GroupB: {frontRight, middleLeft, backRight},
}

func (g Group) String() string {
	switch g {
	case GroupA:
		return "A"
	case GroupB:
		return "B"
	default:
		return "?"
	}
}

// Legs returns the indices of the legs in the group.
func (g Group) Legs() [GroupSize]int {
	if g != GroupA && g != GroupB {
		panic("invalid group")
	}

	return tripods[g]
}

// Other returns the opposite group.
func (g Group) Other() Group {
	if g == GroupA {
		return GroupB
	}

	return GroupA
}

// GroupOf returns the group which the given leg index belongs to.
func GroupOf(leg int) Group {
	for _, g := range Groups {
		for _, i := range tripods[g] {
			if i == leg {
				return g
			}
		}
	}

	panic("invalid leg")
}

// Stance returns the base, shoulder and elbow angles (in radians) of the
// default standing pose.
func Stance() [3]float64 {
	return [3]float64{
		utils.Rad(stanceDegrees[0]),
		utils.Rad(stanceDegrees[1]),
		utils.Rad(stanceDegrees[2]),
	}
}

// Step describes the joint changes of a single fixed step, in radians.
type Step struct {

	// The absolute shoulder angle to lift to.
	Lift float64

	// Added to the current base angle.
	Advance float64
}

// TheStep returns the fixed step. There's no notion of distance here; longer
// moves are made by stepping repeatedly.
func TheStep() Step {
	return Step{
		Lift:    utils.Rad(liftDegrees),
		Advance: utils.Rad(advanceDegrees),
	}
}

// Apply returns the joint angles after taking the step from the given ones.
// The elbow is left alone.
func (s Step) Apply(angles [3]float64) [3]float64 {
	angles[0] += s.Advance
	angles[1] = s.Lift
	return angles
}
