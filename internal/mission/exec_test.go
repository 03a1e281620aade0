package mission

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"martianrobots/internal/mars"
)

func newTestContext() (*Context, *bytes.Buffer) {
	var out bytes.Buffer
	return NewContext(&out, zerolog.Nop()), &out
}

func TestExecSample(t *testing.T) {
	ctx, out := newTestContext()
	states, err := mustParse(t, sample, Limits{}).Exec(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "1 1 E\n3 3 N LOST\n2 3 S\n"; got != want {
		t.Errorf("expected output %q, got %q", want, got)
	}
	if len(states) != 3 || !states[1].Lost || states[2].Lost {
		t.Errorf("unexpected states %v", states)
	}
	if ctx.Robots() != 3 {
		t.Errorf("expected 3 robots run, got %d", ctx.Robots())
	}
	if !ctx.Grid.HasScent(mars.Position{X: 3, Y: 3}) {
		t.Errorf("expected scent at 3 3")
	}
}

func TestExecOrderMatters(t *testing.T) {
	// Run first, the sample's third robot is the one that gets lost.
	ctx, out := newTestContext()
	p := mustParse(t, "5 3\n0 3 W\nLLFFFLFLFL\n3 2 N\nFRRFLLFFRRFLL\n", Limits{})
	if _, err := p.Exec(ctx); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "3 3 S LOST\n3 2 N\n"; got != want {
		t.Errorf("expected output %q, got %q", want, got)
	}
}

func TestExecKeepsExistingGrid(t *testing.T) {
	ctx, out := newTestContext()
	ctx.Grid = mars.NewGrid(5, 3)
	ctx.Grid.RecordScent(mars.Position{X: 3, Y: 3})
	p := mustParse(t, "5 3\n3 2 N\nFF\n", Limits{})
	if _, err := p.Exec(ctx); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "3 3 N\n" {
		t.Errorf("expected the existing scent to rescue the robot, got %q", got)
	}
}

func TestExecStartOutside(t *testing.T) {
	ctx, out := newTestContext()
	p := mustParse(t, "5 3\n7 1 E\nRF\n", Limits{})
	if _, err := p.Exec(ctx); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "7 1 S LOST\n" {
		t.Errorf("expected 7 1 S LOST, got %q", got)
	}
}

func TestExecInvalidInstruction(t *testing.T) {
	ctx, out := newTestContext()
	p := &Plan{
		Width:  5,
		Height: 3,
		Orders: []Order{
			{Start: mars.Position{X: 1, Y: 1}, Heading: mars.North, Program: []mars.Instruction{mars.Forward}},
			{Start: mars.Position{X: 1, Y: 1}, Heading: mars.North, Program: []mars.Instruction{mars.Instruction(9)}},
			{Start: mars.Position{X: 1, Y: 1}, Heading: mars.North, Program: []mars.Instruction{mars.Forward}},
		},
	}
	states, err := p.Exec(ctx)
	if !errors.Is(err, mars.ErrInvalidInstruction) {
		t.Fatalf("expected ErrInvalidInstruction, got %v", err)
	}
	if !strings.Contains(err.Error(), "robot 2") {
		t.Errorf("expected the robot number in %q", err)
	}
	if len(states) != 1 || out.String() != "1 2 N\n" {
		t.Errorf("run must stop at the failing robot, got %v / %q", states, out.String())
	}
}

func TestExecMap(t *testing.T) {
	ctx, out := newTestContext()
	var m bytes.Buffer
	ctx.Map = &m
	p := mustParse(t, "2 1\n0 1 N\nF\n", Limits{})
	if _, err := p.Exec(ctx); err != nil {
		t.Fatal(err)
	}
	if out.String() != "0 1 N LOST\n" {
		t.Errorf("unexpected output %q", out.String())
	}
	want := "Grid 2x1\nX . . \n. . . \n"
	if m.String() != want {
		t.Errorf("expected map\n%s\ngot\n%s", want, m.String())
	}
}
