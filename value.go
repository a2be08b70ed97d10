package scratchfx

import (
	"math"
	"math/rand/v2"
)

// Value is a deferred scalar computation. Evaluating a Value is side-effect
// free, with one exception: random-valued nodes fix their draw at the first
// Eval and return the same number on every subsequent Eval. Callers that need
// a fresh random value must construct a new node.
//
// Values exist so a formula such as "random delay between 0 and partsDelay,
// accumulated across parts" can be built once and its random draw deferred to
// the point of use, while keeping the composition declarative.
type Value interface {
	Eval() float64
}

// Const is a plain number as a Value.
type Const float64

// Eval returns the constant.
func (c Const) Eval() float64 { return float64(c) }

type sum struct{ a, b Value }

func (s sum) Eval() float64 { return s.a.Eval() + s.b.Eval() }

// Sum returns a Value computing a + b.
func Sum(a, b Value) Value { return sum{a, b} }

type mul struct{ a, b Value }

func (m mul) Eval() float64 { return m.a.Eval() * m.b.Eval() }

// Mul returns a Value computing a * b.
func Mul(a, b Value) Value { return mul{a, b} }

type div struct{ a, b Value }

func (d div) Eval() float64 { return d.a.Eval() / d.b.Eval() }

// Div returns a Value computing a / b. Division by zero yields ±Inf or NaN
// per float semantics; there is no defensive check.
func Div(a, b Value) Value { return div{a, b} }

type round struct{ v Value }

func (r round) Eval() float64 { return math.Round(r.v.Eval()) }

// Round returns a Value computing the nearest integer to v, ties away from
// zero.
func Round(v Value) Value { return round{v} }

type floor struct{ v Value }

func (f floor) Eval() float64 { return math.Floor(f.v.Eval()) }

// Floor returns a Value computing the largest integer less than or equal to v.
func Floor(v Value) Value { return floor{v} }

type between struct {
	base, span Value
	drawn      bool
	val        float64
}

func (b *between) Eval() float64 {
	if !b.drawn {
		b.drawn = true
		b.val = b.base.Eval() + rand.Float64()*b.span.Eval()
	}
	return b.val
}

// Between returns a random Value computing base + random()*span, with the
// uniform draw in [0, 1). The draw is single-shot: it happens on the first
// Eval and the result is reused for every later Eval.
func Between(base, span Value) Value { return &between{base: base, span: span} }

type atLeast struct{ limit, v Value }

func (a atLeast) Eval() float64 {
	val := a.v.Eval()
	if val >= a.limit.Eval() {
		return val
	}
	return a.limit.Eval()
}

// AtLeast returns a Value that clamps v to a lower bound: the result is v
// when v is at least limit, otherwise limit.
func AtLeast(limit, v Value) Value { return atLeast{limit, v} }
