package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if runeAt(s, x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", runeAt(s, x, y), x, y)
			}
		}
	}
}

func TestScreenSetGetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorDefault)
	if runeAt(s, 5, 5) != 'X' {
		t.Errorf("GetCell(5, 5) = %q, expected 'X'", runeAt(s, 5, 5))
	}

	// Out of bounds should be silent
	s.SetColored(-1, 0, 'A', ColorDefault)
	s.SetColored(100, 0, 'A', ColorDefault)
	s.SetColored(0, -1, 'A', ColorDefault)
	s.SetColored(0, 100, 'A', ColorDefault)

	if runeAt(s, -1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if runeAt(s, 100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 3)
	s.SetColored(1, 1, '@', ColorHead)

	cell := s.GetCell(1, 1)
	if cell.Rune != '@' || cell.Color != ColorHead {
		t.Errorf("GetCell(1, 1) = %+v, expected '@' with head colour", cell)
	}

	s.SetColored(1, 1, 'x', ColorDefault)
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Set should reset the colour to default")
	}

	s.Clear()
	if s.GetCell(1, 1) != (Cell{Rune: ' ', Color: ColorDefault}) {
		t.Error("Clear should reset cells to blank")
	}
}

func TestScreenDrawTextClipped(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(2, 1, "Hello", ColorDefault)

	for i, ch := range "Hello" {
		if runeAt(s, 2+i, 1) != ch {
			t.Errorf("DrawTextColored: expected %q at (%d, 1), got %q", ch, 2+i, runeAt(s, 2+i, 1))
		}
	}

	// Only "He" should fit
	s.DrawTextColored(18, 0, "Hello", ColorDefault)
	if runeAt(s, 18, 0) != 'H' || runeAt(s, 19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorText)

	x := (20 - 2) / 2
	if runeAt(s, x, 2) != 'H' || runeAt(s, x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
	if s.GetCell(x, 2).Color != ColorText {
		t.Error("DrawTextCentered should apply the colour")
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(2, 2, 3, 3), '#', ColorBorder)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if runeAt(s, x, y) != '#' {
				t.Errorf("FillRect: expected '#' at (%d, %d), got %q", x, y, runeAt(s, x, y))
			}
		}
	}
	if runeAt(s, 1, 1) != ' ' || runeAt(s, 5, 5) != ' ' {
		t.Error("FillRect should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorBorder)

	corners := []struct {
		x, y int
		want rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 4, '└'},
		{5, 4, '┘'},
	}
	for _, c := range corners {
		if got := runeAt(s, c.x, c.y); got != c.want {
			t.Errorf("corner (%d, %d) = %q, expected %q", c.x, c.y, got, c.want)
		}
	}

	for x := 2; x < 5; x++ {
		if runeAt(s, x, 1) != '─' || runeAt(s, x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if runeAt(s, 1, y) != '│' || runeAt(s, 5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawTextColored(0, 0, "AAAAA", ColorDefault)
	s.DrawTextColored(0, 1, "BBBBB", ColorDefault)
	s.DrawTextColored(0, 2, "CCCCC", ColorDefault)

	expected := "AAAAA\nBBBBB\nCCCCC"
	if result := s.String(); result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "Hello", ColorDefault)
	s.DrawTextColored(0, 5, "World", ColorDefault)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if row0 := s.Row(0); !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", row0)
	}

	s.Resize(15, 8)
	if row0 := s.Row(0); !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", row0)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawTextColored(0, 2, "Test", ColorDefault)

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	if outOfBounds := s.Row(-1); outOfBounds != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", outOfBounds)
	}
}

func runeAt(s *Screen, x, y int) rune {
	return s.GetCell(x, y).Rune
}
