package math3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToWorld(t *testing.T) {
	type eg struct {
		pose MountPose
		vec  Vector3
		exp  Vector3
	}

	examples := []eg{
		{IdentityMountPose, Vector3{10, 20, 30}, Vector3{10, 20, 30}},
		{MakeMountPose(1, 2, 3, 0, 0, 0), Vector3{10, 20, 30}, Vector3{11, 22, 33}},
		{MakeMountPose(0, 0, 0, 90, 0, 0), Vector3{1, 0, 0}, Vector3{0, 1, 0}},
		{MakeMountPose(0, 0, 0, -90, 0, 0), Vector3{1, 0, 0}, Vector3{0, -1, 0}},
		{MakeMountPose(0, 0, 0, 180, 0, 0), Vector3{10, 20, 30}, Vector3{-10, -20, 30}},
		{MakeMountPose(0, 0, 0, 0, 90, 0), Vector3{1, 0, 0}, Vector3{0, 0, -1}},
		{MakeMountPose(0, 0, 0, 0, 0, 90), Vector3{0, 1, 0}, Vector3{0, 0, 1}},

		// Yaw is applied first, so the X axis swings round to Y, where the pitch
		// leaves it alone and the roll lifts it onto Z.
		{MakeMountPose(0, 0, 0, 90, 90, 90), Vector3{1, 0, 0}, Vector3{0, 0, 1}},
		{MakeMountPose(0, 0, 0, 90, 90, 0), Vector3{0, 0, 1}, Vector3{1, 0, 0}},
		{MakeMountPose(5, 5, 5, 90, 0, 0), Vector3{10, 0, 0}, Vector3{5, 15, 5}},
	}

	for i, x := range examples {
		act := x.pose.ToWorld(x.vec)
		assert.InDelta(t, x.exp.X, act.X, 1e-9, "example %d:X", i+1)
		assert.InDelta(t, x.exp.Y, act.Y, 1e-9, "example %d:Y", i+1)
		assert.InDelta(t, x.exp.Z, act.Z, 1e-9, "example %d:Z", i+1)
	}
}

func TestToLocal(t *testing.T) {
	poses := []MountPose{
		IdentityMountPose,
		MakeMountPose(46.65, 37.5, 0, 30, 0, 0),
		MakeMountPose(-46.65, -37.5, 0, -150, 0, 0),
		MakeMountPose(1, -2, 3, 10, 20, 30),
	}

	v := Vector3{12, -7, 4}
	for i, p := range poses {
		act := p.ToLocal(p.ToWorld(v))
		assert.True(t, act.Near(v, 1e-9), "example %d: got %s, expected %s", i+1, act, v)
	}
}

func TestMirror(t *testing.T) {
	p := MakeMountPose(46.65, 37.5, 2, 30, 5, 6)
	m := p.Mirror()

	assert.Equal(t, MakeMountPose(46.65, -37.5, 2, -30, 5, 6), m)
	assert.Equal(t, p, m.Mirror())
}
