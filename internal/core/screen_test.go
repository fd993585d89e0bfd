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
	if s.Area() != NewRect(0, 0, 80, 24) {
		t.Errorf("Area() = %+v, expected {0 0 80 24}", s.Area())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds writes must be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClearAndFill(t *testing.T) {
	s := NewScreen(10, 10)

	s.Fill('X')
	if s.Get(3, 7) != 'X' {
		t.Errorf("Fill('X') did not fill, got %q", s.Get(3, 7))
	}

	s.Clear()
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("Clear() left %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(2, 3, 'X')

	s.Resize(20, 5)
	if s.Width() != 20 || s.Height() != 5 {
		t.Errorf("Resize gave %dx%d, expected 20x5", s.Width(), s.Height())
	}
	if s.Get(2, 3) != 'X' {
		t.Error("Resize should preserve content that still fits")
	}

	s.Resize(3, 3)
	if s.Get(2, 3) != ' ' {
		t.Error("Content outside new bounds should be gone")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hi")
	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Errorf("DrawText placed %q%q, expected \"hi\"", s.Get(2, 1), s.Get(3, 1))
	}

	// Clipped at the right edge, no panic
	s.DrawText(8, 0, "long")
	if s.Get(8, 0) != 'l' || s.Get(9, 0) != 'o' {
		t.Error("DrawText should clip at the right edge")
	}

	s.DrawTextCentered(2, "mid")
	if !strings.Contains(s.Row(2), "mid") {
		t.Errorf("DrawTextCentered row = %q, expected to contain \"mid\"", s.Row(2))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4))

	if s.Get(0, 0) != '┌' || s.Get(5, 0) != '┐' || s.Get(0, 3) != '└' || s.Get(5, 3) != '┘' {
		t.Error("DrawBox corners are wrong")
	}
	if s.Get(2, 0) != '─' || s.Get(0, 2) != '│' {
		t.Error("DrawBox edges are wrong")
	}
	if s.Get(2, 2) != ' ' {
		t.Error("DrawBox must not touch the interior")
	}
}

func TestScreenDrawLines(t *testing.T) {
	s := NewScreen(8, 6)

	s.DrawHLine(1, 2, 4, '-')
	if s.Get(1, 2) != '-' || s.Get(4, 2) != '-' {
		t.Error("DrawHLine should span the requested length")
	}
	if s.Get(0, 2) != ' ' || s.Get(5, 2) != ' ' {
		t.Error("DrawHLine must not paint outside the requested length")
	}

	s.DrawVLine(6, 1, 3, '|')
	if s.Get(6, 1) != '|' || s.Get(6, 3) != '|' {
		t.Error("DrawVLine should span the requested length")
	}
	if s.Get(6, 0) != ' ' || s.Get(6, 4) != ' ' {
		t.Error("DrawVLine must not paint outside the requested length")
	}

	// Lines running off the edge are clipped, not panicking
	s.DrawHLine(6, 5, 10, '-')
	s.DrawVLine(0, 4, 10, '|')
	if s.Get(7, 5) != '-' || s.Get(0, 5) != '|' {
		t.Error("clipped lines should still paint the in-bounds cells")
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(6, 6)
	s.FillRect(NewRect(1, 1, 2, 3), '#')

	if s.Get(1, 1) != '#' || s.Get(2, 3) != '#' {
		t.Error("FillRect should fill the whole rect")
	}
	if s.Get(3, 1) != ' ' || s.Get(1, 4) != ' ' {
		t.Error("FillRect must not paint outside the rect")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	expected := "a  \n  b"
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}

	if s.Row(0) != "a  " {
		t.Errorf("Row(0) = %q, expected \"a  \"", s.Row(0))
	}
	if s.Row(5) != "   " {
		t.Errorf("Row out of bounds should be blank, got %q", s.Row(5))
	}
}
