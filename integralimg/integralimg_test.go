package integralimg

import "testing"

// 3x3 test image:
//
//	1 2 3
//	4 5 6
//	7 8 9
func testimg() I {
	pix := []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}
	return New(make([]uint64, 9), pix, 3, 3)
}

func TestRect(t *testing.T) {
	i := testimg()
	cases := []struct {
		x0, y0, x1, y1 int
		want           uint64
	}{
		{0, 0, 2, 2, 45},
		{0, 0, 0, 0, 1},
		{2, 2, 2, 2, 9},
		{1, 1, 2, 2, 28},
		{0, 1, 2, 1, 15},
		{1, 0, 1, 2, 15},
	}
	for _, c := range cases {
		if got := i.Rect(c.x0, c.y0, c.x1, c.y1); got != c.want {
			t.Errorf("Rect(%d,%d,%d,%d): got %d, want %d", c.x0, c.y0, c.x1, c.y1, got, c.want)
		}
	}
}

func TestWindow(t *testing.T) {
	i := testimg()
	sum, count := i.Window(1, 1, 3)
	if sum != 45 || count != 9 {
		t.Errorf("centre window: got %d/%d, want 45/9", sum, count)
	}
	// clipped at the corner
	sum, count = i.Window(0, 0, 3)
	if sum != 12 || count != 4 {
		t.Errorf("corner window: got %d/%d, want 12/4", sum, count)
	}
}

func TestMeanWindow(t *testing.T) {
	i := testimg()
	if got := i.MeanWindow(1, 1, 3); got != 5 {
		t.Errorf("got %v, want 5", got)
	}
	if got := i.MeanWindow(0, 0, 3); got != 3 {
		t.Errorf("got %v, want 3", got)
	}
}

func TestNewShortBuffer(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("New with a short buffer did not panic")
		}
	}()
	New(make([]uint64, 8), make([]uint8, 9), 3, 3)
}
