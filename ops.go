package calculator

import (
	"math"
	"sort"
)

// Operation is an entry in the operation table. It is one of a constant, a
// unary operation, a binary operation, or equals.
type Operation struct {
	kind opKind

	value float64
	label string

	unary      func(float64) float64
	unaryLabel func(string) string

	binary      func(x, y float64) float64
	binaryLabel func(x, y string) string
}

type opKind int8

const (
	opNone opKind = iota

	opConst  // accumulator := value
	opUnary  // accumulator := unary(accumulator)
	opBinary // resolve pending, then open a new pending operation
	opEquals // resolve pending
)

// Constant creates an operation which replaces the accumulator with value and
// describes itself as label.
func Constant(value float64, label string) Operation {
	return Operation{kind: opConst, value: value, label: label}
}

// Unary creates an operation which applies f to the accumulator. label
// receives the description of the operand and returns the description of the
// result.
func Unary(f func(float64) float64, label func(string) string) Operation {
	return Operation{kind: opUnary, unary: f, unaryLabel: label}
}

// Binary creates an operation of two operands. The left operand is the
// accumulator at the time the operation is performed; the right is the
// accumulator when the operation is resolved by another binary operation or
// by equals. label receives the descriptions of the operands in that order.
func Binary(f func(x, y float64) float64, label func(x, y string) string) Operation {
	return Operation{kind: opBinary, binary: f, binaryLabel: label}
}

// Equals creates an operation which resolves a pending binary operation.
func Equals() Operation {
	return Operation{kind: opEquals}
}

// IsConstant returns whether op was created by Constant.
func (op Operation) IsConstant() bool { return op.kind == opConst }

// IsUnary returns whether op was created by Unary.
func (op Operation) IsUnary() bool { return op.kind == opUnary }

// IsBinary returns whether op was created by Binary.
func (op Operation) IsBinary() bool { return op.kind == opBinary }

// IsEquals returns whether op was created by Equals.
func (op Operation) IsEquals() bool { return op.kind == opEquals }

func wrap(name string) func(string) string {
	return func(x string) string {
		return name + "(" + x + ")"
	}
}

func infix(sym string) func(x, y string) string {
	return func(x, y string) string {
		return x + sym + y
	}
}

var operations = map[string]Operation{
	"π": Constant(math.Pi, "π"),
	"e": Constant(math.E, "e"),

	"√":   Unary(math.Sqrt, wrap("√")),
	"cos": Unary(math.Cos, wrap("cos")),
	"sin": Unary(math.Sin, wrap("sin")),
	"tan": Unary(math.Tan, wrap("tan")),
	"+/-": Unary(func(x float64) float64 { return -x }, wrap("-")),

	"xʸ": Binary(math.Pow, infix("^")),
	"×":  Binary(func(x, y float64) float64 { return x * y }, infix("×")),
	"÷":  Binary(func(x, y float64) float64 { return x / y }, infix("÷")),
	"+":  Binary(func(x, y float64) float64 { return x + y }, infix("+")),
	"−":  Binary(func(x, y float64) float64 { return x - y }, infix("-")),

	"=": Equals(),
}

// LookupOperation returns the operation for a symbol in the operation table.
func LookupOperation(symbol string) (Operation, bool) {
	op, ok := operations[symbol]
	return op, ok
}

// Symbols returns the symbols in the operation table in sorted order.
func Symbols() []string {
	s := make([]string, 0, len(operations))
	for k := range operations {
		s = append(s, k)
	}
	sort.Strings(s)
	return s
}
