package mission

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"martianrobots/internal/mars"
)

// Session reads a mission one line at a time, prompting for each line and
// reporting every robot as soon as it has run. Bad input is reported and
// asked for again instead of ending the session.
type Session struct {
	in     *bufio.Scanner
	prompt io.Writer
	ctx    *Context
	limits Limits
}

func NewSession(in io.Reader, prompt io.Writer, ctx *Context, limits Limits) *Session {
	return &Session{
		in:     bufio.NewScanner(in),
		prompt: prompt,
		ctx:    ctx,
		limits: limits,
	}
}

// Run asks for the grid size, then for robots until the input ends.
func (s *Session) Run() error {
	var width, height int
	ok, err := s.ask("Mars size", func(line string) (err error) {
		width, height, err = ParseSize(line, s.limits)
		return err
	})
	if err != nil || !ok {
		return err
	}
	if s.ctx.Grid == nil {
		s.ctx.Grid = mars.NewGrid(width, height)
	}
	s.ctx.Log.Info().Int("width", width).Int("height", height).Msg("session started")

	for {
		n := s.ctx.Robots() + 1
		var o Order
		ok, err := s.ask(fmt.Sprintf("Starting coordinates and direction for robot #%d", n), func(line string) (err error) {
			o, err = ParsePose(line, s.limits)
			return err
		})
		if err != nil || !ok {
			return err
		}
		ok, err = s.ask(fmt.Sprintf("Instructions for robot #%d", n), func(line string) error {
			return ParseCommands(line, &o, s.limits)
		})
		if err != nil || !ok {
			return err
		}
		if _, err := o.Exec(s.ctx); err != nil {
			return err
		}
	}
}

// ask prompts until parse accepts a line. It reports false once the input
// is exhausted. Blank lines are skipped.
func (s *Session) ask(prompt string, parse func(string) error) (bool, error) {
	for {
		fmt.Fprintf(s.prompt, "%s: ", prompt)
		if !s.in.Scan() {
			fmt.Fprintln(s.prompt)
			return false, s.in.Err()
		}
		line := strings.TrimSpace(s.in.Text())
		if line == "" {
			continue
		}
		if err := parse(line); err != nil {
			s.ctx.Log.Warn().Err(err).Str("input", line).Msg("input rejected")
			fmt.Fprintf(s.prompt, "Error: %v\n", err)
			continue
		}
		return true, nil
	}
}
