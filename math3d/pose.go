package math3d

import (
	"fmt"
)

// MountPose is the position and orientation at which something (usually a
// leg) is attached to the body. Position is in the body's linear units, while
// the angles are in degrees.
type MountPose struct {
	Position Vector3
	Yaw      float64
	Pitch    float64
	Roll     float64
}

var (
	IdentityMountPose = MountPose{}
)

// MakeMountPose returns a pose at x/y/z, rotated by yaw/pitch/roll degrees.
func MakeMountPose(x, y, z, yaw, pitch, roll float64) MountPose {
	return MountPose{
		Position: Vector3{x, y, z},
		Yaw:      yaw,
		Pitch:    pitch,
		Roll:     roll,
	}
}

func (p MountPose) String() string {
	return fmt.Sprintf("Pose{x=%+07.2f y=%+07.2f z=%+07.2f, yaw=%+07.2f pitch=%+07.2f roll=%+07.2f}", p.Position.X, p.Position.Y, p.Position.Z, p.Yaw, p.Pitch, p.Roll)
}

// Orientation returns the rotation part of the pose as Euler angles.
func (p MountPose) Orientation() EulerAngles {
	return MakeEulerAngles(p.Yaw, p.Pitch, p.Roll)
}

// Matrix returns a matrix to transform a vector in the mounted coordinate
// space into the parent (body) space.
func (p MountPose) Matrix() Matrix44 {
	return MakeMatrix44(p.Position, p.Orientation())
}

// ToWorld transforms a vector in the mounted space into the body space.
func (p MountPose) ToWorld(v Vector3) Vector3 {
	return v.MultiplyByMatrix44(p.Matrix())
}

// ToLocal transforms a vector in the body space into the mounted space.
func (p MountPose) ToLocal(v Vector3) Vector3 {
	return v.MultiplyByMatrix44(p.Matrix().Inverse())
}

// Mirror returns the pose reflected through the body's X/Z plane, which turns
// a left-hand mount into the matching right-hand one. Only Y and yaw change.
func (p MountPose) Mirror() MountPose {
	return MountPose{
		Position: Vector3{p.Position.X, -p.Position.Y, p.Position.Z},
		Yaw:      -p.Yaw,
		Pitch:    p.Pitch,
		Roll:     p.Roll,
	}
}
