package mission

import (
	"fmt"

	"martianrobots/internal/mars"
)

// Exec runs every order in sequence on one shared grid and returns the
// final state of each robot. The grid is created from the plan unless
// ctx already holds one.
func (p *Plan) Exec(ctx *Context) ([]mars.State, error) {
	if ctx.Grid == nil {
		ctx.Grid = mars.NewGrid(p.Width, p.Height)
	}
	ctx.Log.Info().
		Int("width", p.Width).
		Int("height", p.Height).
		Int("robots", len(p.Orders)).
		Msg("mission started")

	states := make([]mars.State, 0, len(p.Orders))
	for _, o := range p.Orders {
		st, err := o.Exec(ctx)
		if err != nil {
			return states, err
		}
		states = append(states, st)
	}
	return states, nil
}

// Exec drives one robot through its program on ctx.Grid and reports the
// result on ctx.Out.
func (o Order) Exec(ctx *Context) (mars.State, error) {
	ctx.robots++
	n := ctx.robots
	log := ctx.Log.With().Int("robot", n).Logger()

	r := mars.NewRobot(ctx.Grid, o.Start, o.Heading)
	if r.Lost() {
		log.Warn().Stringer("start", o.Start).Msg("robot placed outside the grid")
	}
	if err := r.ProcessInstructions(o.Program); err != nil {
		return r.State(), fmt.Errorf("robot %d: %w", n, err)
	}

	st := r.State()
	if saved := r.Rescues(); saved > 0 {
		log.Info().Int("rescues", saved).Msg("robot saved by scent")
	}
	if st.Lost {
		log.Info().Stringer("at", st.Position).Msg("robot lost")
	}
	log.Debug().Stringer("state", st).Int("instructions", len(o.Program)).Msg("robot finished")

	if _, err := fmt.Fprintln(ctx.Out, st); err != nil {
		return st, err
	}
	if ctx.Map != nil {
		if err := Render(ctx.Map, ctx.Grid, r); err != nil {
			return st, err
		}
	}
	return st, nil
}
