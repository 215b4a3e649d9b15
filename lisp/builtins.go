package lisp

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// DefaultDivisionPrecision is the number of fractional digits kept by ``/''
// when a quotient does not terminate.
const DefaultDivisionPrecision int32 = 32

// BuiltinDef is a named native function.
type BuiltinDef interface {
	Name() string
	Eval(in *Interpreter, args []*Value) (*Value, error)
}

type langBuiltin struct {
	name string
	fun  Builtin
}

func (fun *langBuiltin) Name() string {
	return fun.name
}

func (fun *langBuiltin) Eval(in *Interpreter, args []*Value) (*Value, error) {
	return fun.fun(in, args)
}

var langBuiltins = []*langBuiltin{
	{"+", builtinAdd},
	{"-", builtinSub},
	{"*", builtinMul},
	{"/", builtinDiv},
}

// DefaultBuiltins returns the set of BuiltinDefs bound in the global scope of
// every new Interpreter.
func DefaultBuiltins() []BuiltinDef {
	defs := make([]BuiltinDef, len(langBuiltins))
	for i := range langBuiltins {
		defs[i] = langBuiltins[i]
	}
	return defs
}

// (+ x ...)
func builtinAdd(in *Interpreter, args []*Value) (*Value, error) {
	nums, err := numbers(in, "+", args)
	if err != nil {
		return nil, err
	}
	sum := lo.Reduce(nums, func(acc decimal.Decimal, x decimal.Decimal, _ int) decimal.Decimal {
		return acc.Add(x)
	}, decimal.Zero)
	return Number(sum), nil
}

// (- x) negates x.  (- x y ...) subtracts each y from x in turn.
func builtinSub(in *Interpreter, args []*Value) (*Value, error) {
	nums, err := numbers(in, "-", args)
	if err != nil {
		return nil, err
	}
	switch len(nums) {
	case 0:
		return nil, in.Errorf(ArityMismatch, "- expects at least 1 argument (got 0)")
	case 1:
		return Number(nums[0].Neg()), nil
	}
	diff := lo.Reduce(nums[1:], func(acc decimal.Decimal, x decimal.Decimal, _ int) decimal.Decimal {
		return acc.Sub(x)
	}, nums[0])
	return Number(diff), nil
}

// (* x ...)
func builtinMul(in *Interpreter, args []*Value) (*Value, error) {
	nums, err := numbers(in, "*", args)
	if err != nil {
		return nil, err
	}
	prod := lo.Reduce(nums, func(acc decimal.Decimal, x decimal.Decimal, _ int) decimal.Decimal {
		return acc.Mul(x)
	}, decimal.NewFromInt(1))
	return Number(prod), nil
}

// (/ x) is the reciprocal of x.  (/ x y ...) divides x by each y in turn.
func builtinDiv(in *Interpreter, args []*Value) (*Value, error) {
	nums, err := numbers(in, "/", args)
	if err != nil {
		return nil, err
	}
	if len(nums) == 0 {
		return nil, in.Errorf(ArityMismatch, "/ expects at least 1 argument (got 0)")
	}
	if len(nums) == 1 {
		nums = []decimal.Decimal{decimal.NewFromInt(1), nums[0]}
	}
	q := nums[0]
	for _, x := range nums[1:] {
		if x.IsZero() {
			return nil, in.Errorf(DivisionByZero, "/: division by zero")
		}
		q = quo(q, x, in.DivisionPrecision)
	}
	return Number(q), nil
}

// quo divides a by b.  An exact quotient is returned with the fewest
// fractional digits that represent it, but never fewer than the difference of
// the operands' fractional digits.  An inexact quotient is rounded to prec
// fractional digits.
func quo(a, b decimal.Decimal, prec int32) decimal.Decimal {
	q := a.DivRound(b, prec)
	scale := b.Exponent() - a.Exponent()
	if scale < 0 {
		scale = 0
	}
	for ; scale < prec; scale++ {
		if t := q.Truncate(scale); t.Equal(q) {
			return t
		}
	}
	return q
}

func numbers(in *Interpreter, name string, args []*Value) ([]decimal.Decimal, error) {
	nums := make([]decimal.Decimal, len(args))
	for i, arg := range args {
		if arg.Type != VNumber {
			return nil, in.Errorf(TypeMismatch, "%s: argument %d is not a number: %v (%s)", name, i, arg, arg.Type)
		}
		nums[i] = arg.Num
	}
	return nums, nil
}
