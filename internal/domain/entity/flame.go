package entity

// Flame is a single breath particle. It lives from BornAt until its TTL
// elapses, a wall extinguishes it, or it hits the player.
type Flame struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	BornAt float64
	TTL    float64
}

// Advance integrates the particle's position.
func (f *Flame) Advance(dt float64) {
	f.X += f.VX * dt
	f.Y += f.VY * dt
}

// Expired returns true once the particle has outlived its TTL.
func (f *Flame) Expired(now float64) bool {
	return now-f.BornAt >= f.TTL
}

// Probe returns the particle's square collision proxy.
func (f *Flame) Probe() Rect {
	return Rect{
		X: f.X - f.Radius,
		Y: f.Y - f.Radius,
		W: f.Radius * 2,
		H: f.Radius * 2,
	}
}
