// Package calculator implements the evaluator behind a button-driven
// calculator.
//
// A Brain records what the user pressed: numbers, references to variables,
// and operation symbols like "+", "√", or "π". Nothing is computed when a
// step is recorded. Instead, Evaluate replays the whole history each time it
// is called, producing the current result, whether a binary operation is
// still waiting for its right operand, and a description like "√(9)+M" of
// the expression entered so far. Because the history is the only state,
// undoing a step is exact, and the same history can be evaluated for many
// variable bindings.
//
// Arithmetic follows IEEE 754: dividing by zero gives an infinity and the
// square root of a negative number gives NaN.
package calculator
