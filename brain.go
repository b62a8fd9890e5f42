package calculator

// Brain records the steps a user has entered and evaluates them on demand.
// The zero value is an empty Brain ready to use. A Brain is not safe to use
// concurrently.
type Brain struct {
	steps []Step
	f     *Formatter
}

// NewBrain creates a Brain whose descriptions format numbers according to
// opts.
func NewBrain(opts ...Option) *Brain {
	return &Brain{f: NewFormatter(opts...)}
}

// Formatter returns the formatter the brain uses to describe operands.
func (b *Brain) Formatter() *Formatter {
	if b.f == nil {
		return defaultFormatter
	}
	return b.f
}

// SetOperand records a number.
func (b *Brain) SetOperand(x float64) {
	b.steps = append(b.steps, Step{kind: StepOperand, value: x})
}

// SetOperandVariable records a reference to a variable. The variable's value
// is looked up each time the brain is evaluated.
func (b *Brain) SetOperandVariable(name string) {
	b.steps = append(b.steps, Step{kind: StepVariable, name: name})
}

// PerformOperation records an operation symbol. Symbols that are not in the
// operation table are recorded but have no effect on evaluation.
func (b *Brain) PerformOperation(symbol string) {
	b.steps = append(b.steps, Step{kind: StepOperation, name: symbol})
}

// Clear removes all steps.
func (b *Brain) Clear() {
	b.steps = nil
}

// Undo removes the last step, if there is one.
func (b *Brain) Undo() {
	if len(b.steps) > 0 {
		b.steps = b.steps[:len(b.steps)-1]
	}
}

// Len returns the number of recorded steps.
func (b *Brain) Len() int {
	return len(b.steps)
}

// Steps returns a copy of the recorded steps.
func (b *Brain) Steps() []Step {
	return append([]Step(nil), b.steps...)
}

// Evaluation is the outcome of evaluating a brain's steps.
type Evaluation struct {
	// Result is the current value. With no steps, it is 0.
	Result float64
	// Pending is whether a binary operation is waiting to be resolved.
	Pending bool
	// Description describes the expression entered so far.
	Description string
}

// pending is a binary operation waiting for its right operand.
type pending struct {
	op    Operation
	left  float64
	label string
	// rhs is whether anything has supplied a right operand since the
	// operation was performed.
	rhs bool
}

// evaluator holds the state of a single replay of a brain's steps.
type evaluator struct {
	acc   float64
	desc  string
	title string
	p     *pending
}

// resolve applies the pending binary operation, if any, to the accumulator.
func (e *evaluator) resolve() {
	if e.p == nil {
		return
	}
	e.desc = e.p.op.binaryLabel(e.p.label, e.desc)
	e.acc = e.p.op.binary(e.p.left, e.acc)
	e.p = nil
}

// operand marks that the right side of a pending operation has arrived.
func (e *evaluator) operand() {
	if e.p != nil {
		e.p.rhs = true
		e.title = e.p.op.binaryLabel(e.p.label, e.desc)
	}
}

func (e *evaluator) perform(symbol string) {
	op, ok := operations[symbol]
	if !ok {
		return
	}
	switch op.kind {
	case opConst:
		e.acc = op.value
		e.desc = op.label
		e.operand()
	case opUnary:
		e.acc = op.unary(e.acc)
		e.desc = op.unaryLabel(e.desc)
		e.operand()
	case opBinary:
		e.resolve()
		e.p = &pending{op: op, left: e.acc, label: e.desc}
		e.title = op.binaryLabel(e.desc, "")
	case opEquals:
		e.resolve()
	default:
		panic("calculator: invalid operation for " + symbol)
	}
}

// Evaluate replays the recorded steps using vars to look up variables.
// Variables missing from vars, or all variables if vars is nil, are 0.
//
// If a binary operation is pending and a right operand has been entered, the
// result is the operation applied to both operands, as though equals had been
// pressed, and the description shows both operands. If no right operand has
// been entered, the result is the left operand and the description shows an
// empty right side, e.g. "3+".
func (b *Brain) Evaluate(vars map[string]float64) Evaluation {
	f := b.Formatter()
	var e evaluator
	for _, s := range b.steps {
		switch s.kind {
		case StepOperand:
			e.acc = s.value
			e.desc = f.Format(s.value)
			e.operand()
		case StepVariable:
			e.acc = vars[s.name]
			e.desc = s.name
			e.operand()
		case StepOperation:
			e.perform(s.name)
		default:
			panic("calculator: invalid step " + s.String())
		}
	}
	if e.p == nil {
		return Evaluation{Result: e.acc, Description: e.desc}
	}
	r := Evaluation{Result: e.acc, Pending: true, Description: e.title}
	if e.p.rhs {
		r.Result = e.p.op.binary(e.p.left, e.acc)
	}
	return r
}

// Result evaluates the brain with no variables and returns the result.
func (b *Brain) Result() float64 {
	return b.Evaluate(nil).Result
}

// Description evaluates the brain with no variables and returns the
// description.
func (b *Brain) Description() string {
	return b.Evaluate(nil).Description
}

// ResultIsPending evaluates the brain with no variables and returns whether a
// binary operation is pending.
func (b *Brain) ResultIsPending() bool {
	return b.Evaluate(nil).Pending
}
