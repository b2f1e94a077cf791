package treats

import "slices"

// update runs the collision pass for the circle's current position:
// treats, then big treats, then mines. Every check sees the effects of the
// ones before it, so growth from a treat can bring a mine into reach on the
// same move. The round is evaluated after every hit, so an outcome reached
// mid-pass stands even if a later hit undoes its condition.
func (r *Round) update() {
	r.collect(&r.state.Treats)
	r.collect(&r.state.BigTreats)
	r.trigger()
}

// collect removes every treat whose center lies inside the circle, scoring
// and growing for each. The index steps back after a removal so the element
// shifted into its place is still examined.
func (r *Round) collect(treats *[]Treat) {
	s := &r.state
	for i := 0; i < len(*treats); i++ {
		t := (*treats)[i]
		if !s.Circle.Contains(t.Center) {
			continue
		}
		*treats = slices.Delete(*treats, i, i+1)
		i--

		mult := r.bonus.Multiplier(s.Elapsed)
		s.Tally.Record(t.Kind, mult)
		s.Points += mult * r.value(t.Kind)
		s.Circle.resize(r.cfg.Player.Growth, r.cfg.Player.MinRadius, r.cfg.Player.MaxRadius)

		r.sink.ReportScore(s.Points)
		r.redraw()
		r.evaluate()
	}
}

// trigger removes every mine within blast reach of the circle.
// Lives stop at zero; only the mine count ends a round.
func (r *Round) trigger() {
	s := &r.state
	for i := 0; i < len(s.Mines); i++ {
		if !s.Circle.Touches(s.Mines[i]) {
			continue
		}
		s.Mines = slices.Delete(s.Mines, i, i+1)
		i--

		s.Tally.Mines++
		s.Lives = max(s.Lives-1, 0)
		s.Points -= r.cfg.Rules.MinePenalty
		s.Circle.resize(-r.cfg.Player.Shrink, r.cfg.Player.MinRadius, r.cfg.Player.MaxRadius)

		r.sink.ReportLives(s.Lives)
		r.sink.ReportScore(s.Points)
		r.redraw()
		r.evaluate()
	}
}

func (r *Round) value(kind TreatKind) int {
	if kind == TreatBig {
		return r.cfg.Rules.BigTreatValue
	}
	return r.cfg.Rules.TreatValue
}
