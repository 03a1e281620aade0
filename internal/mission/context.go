package mission

import (
	"io"

	"github.com/rs/zerolog"

	"martianrobots/internal/mars"
)

// Context stores what the robots of one run share

type Context struct {
	Grid *mars.Grid
	Out  io.Writer // result lines
	Map  io.Writer // optional map after each robot
	Log  zerolog.Logger

	robots int
}

func NewContext(out io.Writer, log zerolog.Logger) *Context {
	return &Context{Out: out, Log: log}
}

// Robots reports how many robots have run so far.
func (c *Context) Robots() int {
	return c.robots
}
