package draw

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestCellGlyph(t *testing.T) {
	tests := []struct {
		c      cell
		ch     rune
		fg, bg Color
	}{
		{cell{}, BlockEmpty, ColorNone, ColorNone},
		{cell{ColorRed, ColorRed}, BlockFull, ColorRed, ColorNone},
		{cell{ColorRed, ColorNone}, BlockUpperHalf, ColorRed, ColorNone},
		{cell{ColorNone, ColorGreen}, BlockLowerHalf, ColorGreen, ColorNone},
		{cell{ColorRed, ColorGreen}, BlockUpperHalf, ColorRed, ColorGreen},
	}
	for _, tt := range tests {
		ch, fg, bg := tt.c.glyph()
		if ch != tt.ch || fg != tt.fg || bg != tt.bg {
			t.Errorf("%+v.glyph() = %q %d %d, want %q %d %d", tt.c, ch, fg, bg, tt.ch, tt.fg, tt.bg)
		}
	}
}

func TestRenderOnlyChangedCells(t *testing.T) {
	// 10x5 terminal over a 10x10 logical space: one logical unit per sub-pixel.
	c := NewScaledCanvas(10, 5, 10, 10)
	c.SetFloat(2, 2, ColorWhite)

	var first bytes.Buffer
	if err := c.Render(&first); err != nil {
		t.Fatal(err)
	}
	if strings.Count(first.String(), "H") < 50 {
		t.Fatalf("first frame should paint every cell, got %q", first.String())
	}
	if !strings.Contains(first.String(), "\033[2;3H") {
		t.Fatalf("pixel cell missing from %q", first.String())
	}

	var second bytes.Buffer
	if err := c.Render(&second); err != nil {
		t.Fatal(err)
	}
	if second.Len() != 0 {
		t.Fatalf("unchanged frame wrote %q", second.String())
	}

	c.Clear()
	var third bytes.Buffer
	if err := c.Render(&third); err != nil {
		t.Fatal(err)
	}
	want := "\033[2;3H\033[39;49m \033[0m"
	if third.String() != want {
		t.Fatalf("erase frame = %q, want %q", third.String(), want)
	}

	c.ForceRedraw()
	var fourth bytes.Buffer
	_ = c.Render(&fourth)
	if strings.Count(fourth.String(), "H") < 50 {
		t.Fatal("ForceRedraw did not repaint every cell")
	}
}

func TestRenderOffset(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.SetOffset(3, 1)
	c.SetFloat(0, 0, ColorRed)

	var buf bytes.Buffer
	_ = c.Render(&buf)
	if !strings.Contains(buf.String(), "\033[2;4H\033[91;49m"+string(BlockUpperHalf)) {
		t.Fatalf("offset cell missing from %q", buf.String())
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRenderWriteError(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	if err := c.Render(failWriter{}); err == nil {
		t.Fatal("expected write error")
	}
}

func TestFillCircleAndRect(t *testing.T) {
	c := NewScaledCanvas(20, 10, 20, 20)

	c.FillCircle(10, 10, 3, ColorGreen)
	if c.Pixel(10, 10) != ColorGreen {
		t.Error("circle center not filled")
	}
	if c.Pixel(10, 15) != ColorNone || c.Pixel(4, 10) != ColorNone {
		t.Error("circle spilled outside its radius")
	}

	c.FillRect(0, 18, 4, 19, ColorBrown)
	if c.Pixel(2, 18) != ColorBrown || c.Pixel(6, 18) != ColorNone {
		t.Error("rect extent wrong")
	}

	// Off-canvas drawing is clipped, not a panic.
	c.FillCircle(-50, -50, 5, ColorRed)
	c.FillRect(-5, -5, 100, -1, ColorRed)
}

func TestDrawPolygonFilled(t *testing.T) {
	c := NewScaledCanvas(20, 10, 20, 20)
	pts := c.RegularPolygon(10, 10, 5, 8, nil)
	if len(pts) != 8 {
		t.Fatalf("points = %d, want 8", len(pts))
	}
	c.DrawPolygon(pts, true, ColorGray)
	if c.Pixel(10, 10) != ColorGray {
		t.Error("polygon interior not filled")
	}
}

func TestColumnToLogical(t *testing.T) {
	c := NewScaledCanvas(80, 24, 800, 600)
	if x := c.ColumnToLogical(0); x != 5 {
		t.Errorf("col 0 -> %d, want 5", x)
	}
	if x := c.ColumnToLogical(40); x != 405 {
		t.Errorf("col 40 -> %d, want 405", x)
	}

	c.SetOffset(10, 0)
	if x := c.ColumnToLogical(10); x != 5 {
		t.Errorf("offset col 10 -> %d, want 5", x)
	}
}
