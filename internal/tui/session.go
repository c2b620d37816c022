package tui

import "handlecalc/internal/layout"

// session holds the most recent successful calculation. Copy and export
// act on it and are only available while it is set.
type session struct {
	result layout.Result
	ok     bool
}

func (s session) Ready() bool { return s.ok }

func (s session) Result() (layout.Result, bool) { return s.result, s.ok }

func (s *session) set(r layout.Result) {
	s.result = r
	s.ok = true
}

func (s *session) clear() { *s = session{} }
