package common

import "testing"

func TestCameraToScreen(t *testing.T) {
	cases := []struct {
		name   string
		cam    Camera
		x, y   float64
		sx, sy float64
	}{
		{"center", Camera{}, 0, 0, BaseWidth / 2, BaseHeight / 2},
		{"up_is_up", Camera{}, 0, 1, BaseWidth / 2, BaseHeight/2 - PixelsPerUnit},
		{"right", Camera{}, 2, 0, BaseWidth/2 + 2*PixelsPerUnit, BaseHeight / 2},
		{"offset_camera", Camera{X: 1, Y: 1}, 1, 1, BaseWidth / 2, BaseHeight / 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sx, sy := c.cam.ToScreen(c.x, c.y)
			if sx != c.sx || sy != c.sy {
				t.Fatalf("ToScreen(%v, %v) = (%v, %v), want (%v, %v)", c.x, c.y, sx, sy, c.sx, c.sy)
			}
		})
	}
}

func TestCameraFollow(t *testing.T) {
	snap := Camera{}
	snap.Follow(4, -2)
	if snap.X != 4 || snap.Y != -2 {
		t.Fatalf("zero smoothness should snap, got (%v, %v)", snap.X, snap.Y)
	}

	smooth := Camera{Smoothness: 0.5}
	smooth.Follow(4, -2)
	if smooth.X != 2 || smooth.Y != -1 {
		t.Fatalf("expected half way, got (%v, %v)", smooth.X, smooth.Y)
	}
}
