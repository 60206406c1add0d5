package advanced

import "github.com/go-gl/mathgl/mgl64"

// Vec2 and Vec3 are plain value types. Every operation returns a new value,
// except Set and ToUnitVector which mutate through a pointer receiver.
type Vec2 [2]float64

type Vec3 [3]float64

// Points carry no behavior of their own.
type Point = Vec2
type Point3 = Vec3

func NewVec2(x, y float64) Vec2 {
	return Vec2{x, y}
}

func NewVec3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

func (v Vec2) X() float64 { return v[0] }
func (v Vec2) Y() float64 { return v[1] }

func (v Vec2) Equal(o Vec2) bool          { return Equal(v, o) }
func (v Vec2) EqualScalar(s float64) bool { return EqualScalar(v, s) }
func (v Vec2) Add(o Vec2) Vec2            { return Add(v, o) }
func (v Vec2) AddScalar(s float64) Vec2   { return AddScalar(v, s) }
func (v Vec2) Sub(o Vec2) Vec2            { return Sub(v, o) }
func (v Vec2) SubScalar(s float64) Vec2   { return SubScalar(v, s) }
func (v Vec2) Neg() Vec2                  { return Neg(v) }
func (v Vec2) Scale(k float64) Vec2       { return Scale(v, k) }
func (v Vec2) At(i int) float64           { return At(v, i) }
func (v *Vec2) Set(i int, value float64)  { Set(v, i, value) }
func (v Vec2) Dot(o Vec2) float64         { return Dot(v, o) }
func (v Vec2) Norm() float64              { return Norm(v) }
func (v Vec2) Normalize() (Vec2, error)   { return Normalize(v) }
func (v *Vec2) ToUnitVector() error       { return ToUnitVector(v) }
func (v Vec2) String() string             { return Format(v) }
func (v Vec2) Mgl() mgl64.Vec2            { return mgl64.Vec2(v) }
func Vec2FromMgl(v mgl64.Vec2) Vec2       { return Vec2(v) }

func (v Vec3) X() float64 { return v[0] }
func (v Vec3) Y() float64 { return v[1] }
func (v Vec3) Z() float64 { return v[2] }

func (v Vec3) Equal(o Vec3) bool          { return Equal(v, o) }
func (v Vec3) EqualScalar(s float64) bool { return EqualScalar(v, s) }
func (v Vec3) Add(o Vec3) Vec3            { return Add(v, o) }
func (v Vec3) AddScalar(s float64) Vec3   { return AddScalar(v, s) }
func (v Vec3) Sub(o Vec3) Vec3            { return Sub(v, o) }
func (v Vec3) SubScalar(s float64) Vec3   { return SubScalar(v, s) }
func (v Vec3) Neg() Vec3                  { return Neg(v) }
func (v Vec3) Scale(k float64) Vec3       { return Scale(v, k) }
func (v Vec3) At(i int) float64           { return At(v, i) }
func (v *Vec3) Set(i int, value float64)  { Set(v, i, value) }
func (v Vec3) Dot(o Vec3) float64         { return Dot(v, o) }
func (v Vec3) Norm() float64              { return Norm(v) }
func (v Vec3) Normalize() (Vec3, error)   { return Normalize(v) }
func (v *Vec3) ToUnitVector() error       { return ToUnitVector(v) }
func (v Vec3) String() string             { return Format(v) }
func (v Vec3) Mgl() mgl64.Vec3            { return mgl64.Vec3(v) }
func Vec3FromMgl(v mgl64.Vec3) Vec3       { return Vec3(v) }
