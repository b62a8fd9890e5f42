package main

import (
	"sort"
	"strconv"
	"strings"

	"github.com/zephyrtronium/calculator"
)

// session is the state of the calculator's display and keypad. It turns key
// presses into brain steps the way a pocket calculator does: digits are
// collected on the display until an operation uses them.
type session struct {
	brain *calculator.Brain
	vars  map[string]float64

	// display is the text of the main display. When the user is not typing,
	// shown is the number it renders.
	display string
	shown   float64
	// typing is whether the user is in the middle of entering a number.
	typing bool
	// sequence is the description line.
	sequence string
}

func newSession(brain *calculator.Brain, vars map[string]float64) *session {
	s := session{brain: brain, vars: make(map[string]float64, len(vars))}
	for k, v := range vars {
		s.vars[k] = v
	}
	s.refresh()
	return &s
}

// value returns the number shown on the display.
func (s *session) value() float64 {
	if s.typing {
		// The typed text is at most one decimal point and digits, so it always
		// parses, with "5." meaning 5.
		x, _ := strconv.ParseFloat(strings.TrimSuffix(s.display, "."), 64)
		return x
	}
	return s.shown
}

// press applies a key to the session.
func (s *session) press(k key) {
	switch k.kind {
	case keyDigits:
		for _, r := range k.text {
			s.digit(r)
		}
	case keyOp:
		s.operation(k.text)
	case keyVar:
		s.brain.SetOperandVariable(k.text)
		s.typing = false
		s.refresh()
	case keyStore:
		s.vars[k.text] = s.value()
		s.typing = false
		s.refresh()
	case keyBack:
		s.backspace()
	case keyClear:
		s.vars = make(map[string]float64)
		s.brain.Clear()
		s.typing = false
		s.refresh()
	default:
		panic("calculator: invalid key " + k.String())
	}
}

func (s *session) digit(r rune) {
	d := string(r)
	if !s.typing {
		if d == "." {
			d = "0."
		}
		s.display = d
		s.typing = true
		return
	}
	if r == '.' && strings.Contains(s.display, ".") {
		return
	}
	s.display += d
}

func (s *session) operation(symbol string) {
	if s.typing {
		s.brain.SetOperand(s.value())
		s.typing = false
	}
	s.brain.PerformOperation(symbol)
	s.refresh()
}

func (s *session) backspace() {
	if !s.typing {
		s.brain.Undo()
		s.refresh()
		return
	}
	d := []rune(s.display)
	s.display = string(d[:len(d)-1])
	if s.display == "" {
		s.display = "0"
		s.shown = 0
		s.typing = false
	}
}

// refresh updates the display and description line from the brain.
func (s *session) refresh() {
	r := s.brain.Evaluate(s.vars)
	switch {
	case r.Description == "":
		s.sequence = "0"
	case r.Pending:
		s.sequence = r.Description + " ..."
	default:
		s.sequence = r.Description + " ="
	}
	s.shown = r.Result
	s.display = s.brain.Formatter().Format(r.Result)
}

// variables renders the variable bindings in name order.
func (s *session) variables() string {
	names := make([]string, 0, len(s.vars))
	for k := range s.vars {
		names = append(names, k)
	}
	sort.Strings(names)
	f := s.brain.Formatter()
	var b strings.Builder
	for i, k := range names {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(f.Format(s.vars[k]))
	}
	return b.String()
}
