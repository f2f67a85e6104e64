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
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetWithColor(5, 5, '$', ColorBox)
	if c := s.GetCell(5, 5); c.Rune != '$' || c.Color != ColorBox {
		t.Errorf("GetCell(5, 5) = %+v, expected '$' in box colour", c)
	}

	s.Set(1, 1, 'X')
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Set should use the default colour")
	}

	// Out of bounds writes are dropped
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.FillRect(s.Bounds(), '#', ColorWall)
	s.Clear()

	if got := s.String(); got != "    \n    \n    " {
		t.Errorf("after Clear String() = %q", got)
	}
	if s.GetCell(2, 2).Color != ColorDefault {
		t.Error("Clear should reset colours")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextWithColor(2, 1, "Steps: 7", ColorHUD)

	if !strings.HasPrefix(s.Row(1)[2:], "Steps: 7") {
		t.Errorf("Row(1) = %q", s.Row(1))
	}
	if s.GetCell(2, 1).Color != ColorHUD {
		t.Error("DrawTextWithColor should colour the text")
	}

	// Clipped at the right edge
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawText(0, 0, "★x")

	if s.Get(0, 0) != '★' || s.Get(1, 0) != 'x' {
		t.Errorf("Row(0) = %q, expected runes in adjacent cells", s.Row(0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorTitle)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered: Row(2) = %q", s.Row(2))
	}
}

func TestScreenDrawTextRight(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextRight(0, "abc", ColorHUD)

	if got := s.Row(0); got != "       abc" {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(7, 4)
	s.DrawBox(NewRect(1, 0, 5, 4), ColorBanner)

	expected := strings.Join([]string{
		" ┌───┐ ",
		" │   │ ",
		" │   │ ",
		" └───┘ ",
	}, "\n")
	if got := s.String(); got != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", got, expected)
	}
	if s.GetCell(1, 0).Color != ColorBanner {
		t.Error("box should use the given colour")
	}
}

func TestScreenDrawBoxTooSmall(t *testing.T) {
	s := NewScreen(3, 3)
	s.DrawBox(NewRect(0, 0, 1, 3), ColorBanner)

	if got := s.String(); got != "   \n   \n   " {
		t.Errorf("degenerate box should not draw, got %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("after resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
	if strings.TrimSpace(s.Row(5)) != "" {
		t.Errorf("rows cut by the shrink should come back blank, row 5 = %q", s.Row(5))
	}

	s.Resize(-3, -3)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("negative resize should clamp to 0x0, got %dx%d", s.Width(), s.Height())
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)
	if got := s.Row(-1); got != "          " {
		t.Errorf("out of bounds row should be spaces, got %q", got)
	}
}
