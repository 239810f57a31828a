package core

import (
	"testing"
	"time"
)

func TestPacerTicksPerSecond(t *testing.T) {
	tests := []struct {
		name string
		fps  int
		want int
	}{
		{"60 fps", 60, 10},
		{"30 fps", 30, 10},
		{"10 fps", 10, 10},
		{"7 fps", 7, 10},
		{"144 fps", 144, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPacer(100*time.Millisecond, tc.fps)
			total := 0
			for range tc.fps {
				total += p.Advance()
			}
			if total != tc.want {
				t.Errorf("ticks after one second = %d, expected %d", total, tc.want)
			}
		})
	}
}

func TestPacerFirstTickAtSixthFrame(t *testing.T) {
	p := NewPacer(100*time.Millisecond, 60)

	for i := 1; i <= 5; i++ {
		if n := p.Advance(); n != 0 {
			t.Fatalf("frame %d produced %d ticks, expected 0", i, n)
		}
	}
	if n := p.Advance(); n != 1 {
		t.Fatalf("frame 6 produced %d ticks, expected 1", n)
	}
}

func TestPacerReset(t *testing.T) {
	p := NewPacer(100*time.Millisecond, 60)
	for range 5 {
		p.Advance()
	}
	p.Reset()

	if n := p.Advance(); n != 0 {
		t.Errorf("Advance() after Reset = %d, expected 0", n)
	}}

func TestPacerDefaultFrameRate(t *testing.T) {
	p := NewPacer(100*time.Millisecond, 0)

	if n := p.Advance(); n != 1 {
		t.Errorf("Advance() with fps=0 = %d, expected 1", n)
	}
}
