package calculator_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/zephyrtronium/calculator"
)

// step is a compact way to write brain input in tests. Exactly one of the
// fields should be set, except that an operand may be zero.
type step struct {
	x  float64
	v  string
	op string
}

func num(x float64) step  { return step{x: x} }
func vr(name string) step { return step{v: name} }
func op(sym string) step  { return step{op: sym} }

func load(b *calculator.Brain, steps []step) {
	for _, s := range steps {
		switch {
		case s.op != "":
			b.PerformOperation(s.op)
		case s.v != "":
			b.SetOperandVariable(s.v)
		default:
			b.SetOperand(s.x)
		}
	}
}

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name  string
		steps []step
		vars  map[string]float64
		r     float64
		p     bool
		d     string
	}{
		{"empty", nil, nil, 0, false, ""},
		{"num", []step{num(5)}, nil, 5, false, "5"},
		{"frac", []step{num(0.5)}, nil, 0.5, false, "0.5"},
		{"round", []step{num(1.0 / 3)}, nil, 1.0 / 3, false, "0.333333"},
		{"add", []step{num(3), op("+"), num(4), op("=")}, nil, 7, false, "3+4"},
		{"add-pending", []step{num(3), op("+"), num(4)}, nil, 7, true, "3+4"},
		{"open", []step{num(3), op("+")}, nil, 3, true, "3+"},
		{"sqrt", []step{num(9), op("√")}, nil, 3, false, "√(9)"},
		{"var", []step{vr("M"), op("+"), num(5), op("=")}, map[string]float64{"M": 2}, 7, false, "M+5"},
		{"var-unbound", []step{vr("M"), op("+"), num(5), op("=")}, nil, 5, false, "M+5"},
		{"sub", []step{num(10), op("−"), num(4), op("=")}, nil, 6, false, "10-4"},
		{"mul", []step{num(6), op("×"), num(7), op("=")}, nil, 42, false, "6×7"},
		{"div", []step{num(7), op("÷"), num(2), op("=")}, nil, 3.5, false, "7÷2"},
		{"pow", []step{num(2), op("xʸ"), num(10), op("=")}, nil, 1024, false, "2^10"},
		{"neg", []step{num(4), op("+/-")}, nil, -4, false, "-(4)"},
		{"cos", []step{num(0), op("cos")}, nil, 1, false, "cos(0)"},
		{"sin", []step{num(0), op("sin")}, nil, 0, false, "sin(0)"},
		{"tan", []step{num(0), op("tan")}, nil, 0, false, "tan(0)"},
		{"pi", []step{op("π")}, nil, math.Pi, false, "π"},
		{"e", []step{op("e")}, nil, math.E, false, "e"},
		{"chain", []step{num(3), op("+"), num(4), op("×"), num(2), op("=")}, nil, 14, false, "3+4×2"},
		{"chain-pending", []step{num(3), op("+"), num(4), op("×")}, nil, 7, true, "3+4×"},
		{"unary-pending", []step{num(3), op("+"), num(9), op("√")}, nil, 6, true, "3+√(9)"},
		{"unary-resolved", []step{num(3), op("+"), num(9), op("√"), op("=")}, nil, 6, false, "3+√(9)"},
		{"unary-of-left", []step{num(4), op("+"), op("√")}, nil, 6, true, "4+√(4)"},
		{"const-pending", []step{num(2), op("×"), op("π")}, nil, 2 * math.Pi, true, "2×π"},
		{"nested-unary", []step{num(16), op("√"), op("√")}, nil, 2, false, "√(√(16))"},
		{"unary-after-equals", []step{num(3), op("+"), num(6), op("="), op("√")}, nil, 3, false, "√(3+6)"},
		{"equals-alone", []step{num(3), op("=")}, nil, 3, false, "3"},
		{"equals-twice", []step{num(3), op("+"), num(4), op("="), op("=")}, nil, 7, false, "3+4"},
		{"new-operand", []step{num(3), op("+"), num(4), op("="), num(8)}, nil, 8, false, "8"},
		{"unknown", []step{num(3), op("+"), num(4), op("%")}, nil, 7, true, "3+4"},
		{"unknown-only", []step{op("%")}, nil, 0, false, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var b calculator.Brain
			load(&b, c.steps)
			r := b.Evaluate(c.vars)
			if r.Result != c.r {
				t.Errorf("wrong result: want %g, got %g", c.r, r.Result)
			}
			if r.Pending != c.p {
				t.Errorf("wrong pending: want %t, got %t", c.p, r.Pending)
			}
			if r.Description != c.d {
				t.Errorf("wrong description: want %q, got %q", c.d, r.Description)
			}
		})
	}
}

func TestEvaluateIEEE(t *testing.T) {
	cases := []struct {
		name  string
		steps []step
		ok    func(float64) bool
	}{
		{"div-zero", []step{num(1), op("÷"), num(0), op("=")}, func(x float64) bool { return math.IsInf(x, 1) }},
		{"div-zero-neg", []step{num(-1), op("÷"), num(0), op("=")}, func(x float64) bool { return math.IsInf(x, -1) }},
		{"zero-div-zero", []step{num(0), op("÷"), num(0), op("=")}, math.IsNaN},
		{"sqrt-neg", []step{num(-4), op("√")}, math.IsNaN},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var b calculator.Brain
			load(&b, c.steps)
			if r := b.Result(); !c.ok(r) {
				t.Errorf("wrong result %g", r)
			}
		})
	}
}

func TestEvaluateVariables(t *testing.T) {
	var b calculator.Brain
	load(&b, []step{vr("x"), op("×"), vr("x"), op("=")})
	for _, x := range []float64{0, 1, 2, 3, -4} {
		r := b.Evaluate(map[string]float64{"x": x})
		if r.Result != x*x {
			t.Errorf("x=%g: want %g, got %g", x, x*x, r.Result)
		}
		if r.Description != "x×x" {
			t.Errorf("x=%g: wrong description %q", x, r.Description)
		}
	}
}

func TestEvaluateRepeatable(t *testing.T) {
	var b calculator.Brain
	load(&b, []step{num(3), op("+"), vr("M"), op("√"), op("×"), num(2)})
	vars := map[string]float64{"M": 16}
	first := b.Evaluate(vars)
	for i := 0; i < 5; i++ {
		if r := b.Evaluate(vars); r != first {
			t.Fatalf("evaluation %d differs: want %+v, got %+v", i, first, r)
		}
	}
	if vars["M"] != 16 || len(vars) != 1 {
		t.Errorf("evaluation modified variables: %v", vars)
	}
}

func TestUndo(t *testing.T) {
	pushes := []step{num(3), op("+"), vr("M"), op("√"), op("="), op("%"), num(2), op("π")}
	var b calculator.Brain
	vars := map[string]float64{"M": 9}
	for _, s := range pushes {
		before := b.Evaluate(vars)
		load(&b, []step{s})
		b.Undo()
		if after := b.Evaluate(vars); after != before {
			t.Errorf("undo after %+v: want %+v, got %+v", s, before, after)
		}
		load(&b, []step{s})
	}
	if b.Len() != len(pushes) {
		t.Fatalf("wrong length: want %d, got %d", len(pushes), b.Len())
	}
	for range pushes {
		b.Undo()
	}
	b.Undo() // no-op on empty
	if b.Len() != 0 {
		t.Errorf("undo left %d steps", b.Len())
	}
	if r := b.Evaluate(nil); r != (calculator.Evaluation{}) {
		t.Errorf("wrong empty evaluation %+v", r)
	}
}

func TestClear(t *testing.T) {
	var b calculator.Brain
	load(&b, []step{num(3), op("+"), num(4)})
	b.Clear()
	if b.Len() != 0 {
		t.Errorf("clear left %d steps", b.Len())
	}
	if r := b.Evaluate(nil); r != (calculator.Evaluation{}) {
		t.Errorf("wrong cleared evaluation %+v", r)
	}
	if b.Result() != 0 || b.Description() != "" || b.ResultIsPending() {
		t.Errorf("accessors disagree with empty evaluation")
	}
}

func TestAccessors(t *testing.T) {
	var b calculator.Brain
	load(&b, []step{num(3), op("+"), num(4)})
	if r := b.Result(); r != 7 {
		t.Errorf("wrong result %g", r)
	}
	if d := b.Description(); d != "3+4" {
		t.Errorf("wrong description %q", d)
	}
	if !b.ResultIsPending() {
		t.Errorf("result not pending")
	}
}

func TestSteps(t *testing.T) {
	var b calculator.Brain
	load(&b, []step{num(2.5), vr("M"), op("+")})
	s := b.Steps()
	want := []string{"Operand:2.5", "Variable:M", "Operation:+"}
	var got []string
	for _, v := range s {
		got = append(got, v.String())
	}
	if !reflect.DeepEqual(want, got) {
		t.Errorf("wrong steps: want %q, got %q", want, got)
	}
	if s[0].Kind() != calculator.StepOperand || s[0].Value() != 2.5 {
		t.Errorf("wrong operand step %v", s[0])
	}
	if s[1].Kind() != calculator.StepVariable || s[1].Name() != "M" {
		t.Errorf("wrong variable step %v", s[1])
	}
	if s[2].Kind() != calculator.StepOperation || s[2].Name() != "+" {
		t.Errorf("wrong operation step %v", s[2])
	}
	// Modifying the copy must not affect the brain.
	s[0] = s[2]
	if d := b.Description(); d != "M+" {
		t.Errorf("wrong description after modifying copy: %q", d)
	}
}

func TestNewBrainFormatting(t *testing.T) {
	b := calculator.NewBrain(calculator.FractionDigits(2))
	b.SetOperand(math.Pi)
	if d := b.Description(); d != "3.14" {
		t.Errorf("wrong description %q", d)
	}
}
