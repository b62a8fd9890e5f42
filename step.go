package calculator

import "strconv"

// Step is one recorded input to a Brain.
type Step struct {
	kind  StepKind
	value float64
	name  string
}

// StepKind identifies the kind of a Step.
type StepKind int8

const (
	stepNone StepKind = iota

	// StepOperand is a number entered by the user.
	StepOperand
	// StepVariable is a reference to a named variable, bound at evaluation.
	StepVariable
	// StepOperation is an operation symbol. The symbol need not be in the
	// operation table.
	StepOperation
)

func (k StepKind) String() string {
	switch k {
	case StepOperand:
		return "Operand"
	case StepVariable:
		return "Variable"
	case StepOperation:
		return "Operation"
	default:
		return "StepKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Kind returns the kind of the step.
func (s Step) Kind() StepKind {
	return s.kind
}

// Value returns the number of an operand step. It is 0 for other kinds.
func (s Step) Value() float64 {
	return s.value
}

// Name returns the variable name of a variable step or the symbol of an
// operation step. It is empty for operands.
func (s Step) Name() string {
	return s.name
}

func (s Step) String() string {
	switch s.kind {
	case StepOperand:
		return s.kind.String() + ":" + strconv.FormatFloat(s.value, 'g', -1, 64)
	case StepVariable, StepOperation:
		return s.kind.String() + ":" + s.name
	default:
		return "$"
	}
}
