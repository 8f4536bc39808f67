// pkg/camera/camera.go
package camera

import (
	"math"

	"go-globe-defense/pkg/goldberg"
	"go-globe-defense/pkg/utils"
)

const (
	nearPlane = 1e-3
	maxPitch  = math.Pi/2 - 0.05
)

// Camera — орбитальная камера, всегда смотрящая в центр глобуса.
// Координаты экрана: x вправо, y вниз, начало в левом верхнем углу.
type Camera struct {
	Yaw      float64 // вокруг оси Y
	Pitch    float64 // вверх/вниз, зажат в (-π/2, π/2)
	Distance float64
	FOV      float64 // вертикальный угол обзора, радианы
	Width    float64
	Height   float64
	// CellAspect растягивает x: в терминале ячейка вдвое выше, чем шире.
	CellAspect float64
}

func New(distance, width, height float64) *Camera {
	return &Camera{
		Distance:   distance,
		FOV:        math.Pi / 4,
		Width:      width,
		Height:     height,
		CellAspect: 1,
	}
}

func (c *Camera) SetViewport(width, height float64) {
	c.Width, c.Height = width, height
}

// Rotate поворачивает камеру по орбите.
func (c *Camera) Rotate(dYaw, dPitch float64) {
	c.Yaw = utils.NormalizeAngle(c.Yaw + dYaw)
	c.Pitch = utils.Clamp(c.Pitch+dPitch, -maxPitch, maxPitch)
}

// LookAt ставит камеру на луч из центра в направлении dir.
func (c *Camera) LookAt(dir goldberg.Vec3) {
	d := dir.Normalize()
	c.Yaw = math.Atan2(d.X, d.Z)
	c.Pitch = utils.Clamp(math.Asin(utils.Clamp(d.Y, -1, 1)), -maxPitch, maxPitch)
}

// Zoom меняет дистанцию, не пуская камеру ближе minDistance.
func (c *Camera) Zoom(factor, minDistance float64) {
	c.Distance = math.Max(c.Distance*factor, minDistance)
}

// Eye — положение камеры в мировых координатах.
func (c *Camera) Eye() goldberg.Vec3 {
	cp := math.Cos(c.Pitch)
	return goldberg.Vec3{
		X: c.Distance * cp * math.Sin(c.Yaw),
		Y: c.Distance * math.Sin(c.Pitch),
		Z: c.Distance * cp * math.Cos(c.Yaw),
	}
}

func (c *Camera) basis() (right, up, forward goldberg.Vec3) {
	forward = c.Eye().Scale(-1).Normalize()
	right = forward.Cross(goldberg.Vec3{Y: 1}).Normalize()
	up = right.Cross(forward)
	return right, up, forward
}

func (c *Camera) focal() float64 {
	return (c.Height / 2) / math.Tan(c.FOV/2)
}

func (c *Camera) aspect() float64 {
	if c.CellAspect <= 0 {
		return 1
	}
	return c.CellAspect
}

// Project переводит точку в экранные координаты. ok == false, если точка
// за камерой.
func (c *Camera) Project(p goldberg.Vec3) (x, y, depth float64, ok bool) {
	right, up, forward := c.basis()
	v := p.Sub(c.Eye())
	depth = v.Dot(forward)
	if depth <= nearPlane {
		return 0, 0, depth, false
	}
	f := c.focal()
	x = c.Width/2 + f*c.aspect()*v.Dot(right)/depth
	y = c.Height/2 - f*v.Dot(up)/depth
	return x, y, depth, true
}

// PixelsPerUnit — сколько пикселей занимает единица длины на глубине depth.
func (c *Camera) PixelsPerUnit(depth float64) float64 {
	if depth <= nearPlane {
		return 0
	}
	return c.focal() / depth
}

// Ray — луч из камеры через точку экрана; направление единичное.
func (c *Camera) Ray(x, y float64) (origin, dir goldberg.Vec3) {
	right, up, forward := c.basis()
	f := c.focal()
	dx := (x - c.Width/2) / (f * c.aspect())
	dy := -(y - c.Height/2) / f
	dir = forward.Add(right.Scale(dx)).Add(up.Scale(dy)).Normalize()
	return c.Eye(), dir
}

// Pick пересекает луч через точку экрана со сферой радиуса radius и
// возвращает ближайшую точку пересечения.
func (c *Camera) Pick(x, y, radius float64) (goldberg.Vec3, bool) {
	origin, dir := c.Ray(x, y)
	b := origin.Dot(dir)
	disc := b*b - (origin.LenSq() - radius*radius)
	if disc < 0 {
		return goldberg.Vec3{}, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return goldberg.Vec3{}, false
	}
	return origin.Add(dir.Scale(t)), true
}

// PickTile — тайл под точкой экрана или NoTile.
func (c *Camera) PickTile(s *goldberg.Sphere, x, y float64) goldberg.TileID {
	hit, ok := c.Pick(x, y, s.Radius+s.Thickness)
	if !ok {
		return goldberg.NoTile
	}
	return s.Nearest(hit)
}

// Facing сообщает, смотрит ли поверхность с нормалью normal в точке p на камеру.
func (c *Camera) Facing(p, normal goldberg.Vec3) bool {
	return normal.Dot(c.Eye().Sub(p)) > 0
}
