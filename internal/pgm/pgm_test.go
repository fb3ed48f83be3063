package pgm

import (
	"bytes"
	"testing"

	"rescribe.xyz/grayskull"
)

func TestRoundTrip(t *testing.T) {
	img := grayskull.Image{W: 3, H: 2, Data: []uint8{10, 20, 30, 40, 50, 60}}
	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.W != img.W || got.H != img.H {
		t.Fatalf("got %dx%d, want %dx%d", got.W, got.H, img.W, img.H)
	}
	for i := range img.Data {
		if got.Data[i] != img.Data[i] {
			t.Fatalf("pixel %d: got %d, want %d", i, got.Data[i], img.Data[i])
		}
	}
}

func TestDecodeComments(t *testing.T) {
	raw := "P5\n# made by a scanner\n3 2\n# another comment\n255\n\x01\x02\x03\x04\x05\x06"
	img, err := Decode(bytes.NewBufferString(raw))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if img.W != 3 || img.H != 2 {
		t.Fatalf("got %dx%d, want 3x2", img.W, img.H)
	}
	if img.Data[0] != 1 || img.Data[5] != 6 {
		t.Errorf("bad pixel data: %v", img.Data)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"badmagic", "P6\n3 2\n255\n\x01\x02\x03\x04\x05\x06"},
		{"badmaxval", "P5\n3 2\n65535\n\x01\x02\x03\x04\x05\x06"},
		{"shortdata", "P5\n3 2\n255\n\x01\x02"},
		{"baddims", "P5\n0 2\n255\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Decode(bytes.NewBufferString(c.raw)); err == nil {
				t.Errorf("no error decoding %q", c.raw)
			}
		})
	}
}

func TestEncodeInvalid(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, grayskull.Image{W: 2, H: 2, Data: []uint8{1}}); err == nil {
		t.Errorf("no error encoding an invalid image")
	}
}
