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
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be blank, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, '●', ColorCyan)
	cell := s.GetCell(5, 5)
	if cell.Rune != '●' || cell.Color != ColorCyan {
		t.Errorf("GetCell(5, 5) = %+v, expected cyan '●'", cell)
	}

	// Out of bounds writes are ignored
	s.SetColored(-1, 0, 'A', ColorRed)
	s.SetColored(100, 0, 'A', ColorRed)
	s.SetColored(0, -1, 'A', ColorRed)
	s.SetColored(0, 100, 'A', ColorRed)

	if s.GetCell(-1, 0) != blank {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.FillRect(NewRect(0, 0, 4, 3), 'X')
	s.Clear()

	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("After Clear, screen should be blank, got %q", s.String())
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	if got := s.Row(1); got[2:7] != "Hello" {
		t.Errorf("Row(1) = %q, expected Hello at column 2", got)
	}

	// Only "He" fits
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCenteredCountsRunes(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "★★", ColorYellow)

	x := (20 - 2) / 2
	if s.Get(x, 1) != '★' || s.Get(x+1, 1) != '★' {
		t.Errorf("DrawTextCentered placed text at the wrong column: %q", s.Row(1))
	}
	if s.GetCell(x, 1).Color != ColorYellow {
		t.Error("DrawTextCentered should keep the color")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawBox(NewRect(0, 0, 10, 5), ColorGray)

	if s.Get(0, 0) != '┌' || s.Get(9, 0) != '┐' || s.Get(0, 4) != '└' || s.Get(9, 4) != '┘' {
		t.Error("DrawBox corners are wrong")
	}
	if s.Get(5, 0) != '─' || s.Get(0, 2) != '│' {
		t.Error("DrawBox edges are wrong")
	}
	if s.Get(5, 2) != ' ' {
		t.Error("DrawBox should not fill the interior")
	}
}

func TestScreenBlit(t *testing.T) {
	src := NewScreen(2, 2)
	src.SetColored(0, 0, 'a', ColorRed)
	src.SetColored(1, 1, 'b', ColorGreen)

	dst := NewScreen(5, 5)
	dst.Blit(src, 3, 3)

	if dst.GetCell(3, 3) != (Cell{Rune: 'a', Color: ColorRed}) {
		t.Errorf("Blit top-left = %+v", dst.GetCell(3, 3))
	}
	if dst.GetCell(4, 4) != (Cell{Rune: 'b', Color: ColorGreen}) {
		t.Errorf("Blit bottom-right = %+v", dst.GetCell(4, 4))
	}

	// Clipped at the destination edge without panicking
	dst.Blit(src, 4, 4)
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, 'X')
	s.Set(3, 3, 'Y')

	s.Resize(2, 2)
	if s.Width() != 2 || s.Height() != 2 {
		t.Fatalf("Resize: got %dx%d, expected 2x2", s.Width(), s.Height())
	}
	if s.Get(1, 1) != 'X' {
		t.Error("Resize should keep content that still fits")
	}

	s.Resize(4, 4)
	if s.Get(3, 3) != ' ' {
		t.Error("Growing should expose blank cells")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "de")

	if got, want := s.String(), "abc\nde "; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}
