package treats

// Renderer draws entities. The round redraws the whole board after every
// change, starting with Clear.
type Renderer interface {
	Clear()
	DrawCircle(c Circle)
	DrawTreat(t Treat)
	DrawMine(m Mine)
	DrawStar(s Star)
}

// Sink receives the player-facing readouts of a round.
type Sink interface {
	ReportScore(points int)
	ReportLives(lives int)
	ReportTime(mm, ss string)
	ReportOutcome(outcome Phase, summary Summary)
}

type nopRenderer struct{}

func (nopRenderer) Clear()            {}
func (nopRenderer) DrawCircle(Circle) {}
func (nopRenderer) DrawTreat(Treat)   {}
func (nopRenderer) DrawMine(Mine)     {}
func (nopRenderer) DrawStar(Star)     {}

type nopSink struct{}

func (nopSink) ReportScore(int)              {}
func (nopSink) ReportLives(int)              {}
func (nopSink) ReportTime(string, string)    {}
func (nopSink) ReportOutcome(Phase, Summary) {}

// MultiSink fans every report out to each sink in order. Nil entries are skipped.
type MultiSink []Sink

func (m MultiSink) ReportScore(points int) {
	for _, s := range m {
		if s != nil {
			s.ReportScore(points)
		}
	}
}

func (m MultiSink) ReportLives(lives int) {
	for _, s := range m {
		if s != nil {
			s.ReportLives(lives)
		}
	}
}

func (m MultiSink) ReportTime(mm, ss string) {
	for _, s := range m {
		if s != nil {
			s.ReportTime(mm, ss)
		}
	}
}

func (m MultiSink) ReportOutcome(outcome Phase, summary Summary) {
	for _, s := range m {
		if s != nil {
			s.ReportOutcome(outcome, summary)
		}
	}
}
