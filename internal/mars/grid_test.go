package mars

import "testing"

func TestOutOfBounds(t *testing.T) {
	g := NewGrid(40, 50)
	tests := []struct {
		x, y int
		want bool
	}{
		{-1, 20, true},
		{20, -1, true},
		{41, 20, true},
		{20, 51, true},
		{0, 20, false},
		{20, 0, false},
		{40, 20, false},
		{20, 50, false},
		{0, 0, false},
		{40, 50, false},
		{-1, -1, true},
		{41, 51, true},
	}
	for _, tt := range tests {
		if got := g.OutOfBounds(Position{tt.x, tt.y}); got != tt.want {
			t.Errorf("OutOfBounds(%d,%d) expected %v, got %v", tt.x, tt.y, tt.want, got)
		}
	}
}

func TestOutOfBoundsWholeGrid(t *testing.T) {
	g := NewGrid(5, 3)
	for x := -1; x <= 6; x++ {
		for y := -1; y <= 4; y++ {
			inside := x >= 0 && x <= 5 && y >= 0 && y <= 3
			if g.OutOfBounds(Position{x, y}) == inside {
				t.Errorf("OutOfBounds(%d,%d) expected %v", x, y, !inside)
			}
		}
	}
}

func TestZeroSizedGrid(t *testing.T) {
	g := NewGrid(0, 0)
	if g.OutOfBounds(Position{0, 0}) {
		t.Errorf("origin must be inside a 0x0 grid")
	}
	if !g.OutOfBounds(Position{1, 0}) || !g.OutOfBounds(Position{0, 1}) {
		t.Errorf("0x0 grid must hold only the origin")
	}
}

func TestScents(t *testing.T) {
	g := NewGrid(5, 3)
	if g.HasScent(Position{3, 3}) {
		t.Fatalf("fresh grid has a scent")
	}
	g.RecordScent(Position{3, 3})
	g.RecordScent(Position{0, 3})
	g.RecordScent(Position{3, 3})

	if !g.HasScent(Position{3, 3}) || !g.HasScent(Position{0, 3}) {
		t.Fatalf("recorded scents missing: %v", g.Scents())
	}
	if g.HasScent(Position{3, 2}) {
		t.Errorf("unexpected scent at 3 2")
	}
	got := g.Scents()
	want := []Position{{0, 3}, {3, 3}}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("scent %d expected %v, got %v", i, want[i], got[i])
		}
	}
}
