package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// PixelsPerUnit converts world units (meters) to screen pixels.
	PixelsPerUnit = 48
)

// Camera maps the y-up world onto the y-down screen, centered on X, Y.
type Camera struct {
	X, Y float64
	// Smoothness is the fraction of the distance to the target covered per
	// Follow call. Zero snaps.
	Smoothness float64
}

func (c *Camera) Follow(x, y float64) {
	if c.Smoothness <= 0 {
		c.X, c.Y = x, y
		return
	}
	t := Clamp(c.Smoothness, 0, 1)
	c.X = Lerp(c.X, x, t)
	c.Y = Lerp(c.Y, y, t)
}

// ToScreen returns the screen position of a world point.
func (c *Camera) ToScreen(x, y float64) (float64, float64) {
	sx := (x-c.X)*PixelsPerUnit + BaseWidth/2
	sy := BaseHeight/2 - (y-c.Y)*PixelsPerUnit
	return sx, sy
}
