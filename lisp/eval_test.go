package lisp_test

import (
	"testing"

	"github.com/armandoalbornoz/Prototypal-Inheritance-for-Objects/lisp"
	"github.com/armandoalbornoz/Prototypal-Inheritance-for-Objects/lisptest"
)

func TestLiterals(t *testing.T) {
	tests := lisptest.TestSuite{
		{"numbers", lisptest.TestSequence{
			{Expr: "1", Result: "1", Err: nil},
			{Expr: "1.0", Result: "1.0", Err: nil},
			{Expr: "-2.50", Result: "-2.50", Err: nil},
			{Expr: "+7", Result: "7", Err: nil},
			{Expr: "1e2", Result: "100", Err: nil},
		}},
		{"atoms", lisptest.TestSequence{
			{Expr: ":name", Result: ":name", Err: nil},
			{Expr: ":set!", Result: ":set!", Err: nil},
		}},
		{"globals", lisptest.TestSequence{
			{Expr: "null", Result: "null", Err: nil},
			{Expr: "Object", Result: "(object Object)", Err: nil},
			{Expr: "+", Result: "(function + <builtin>)", Err: nil},
			{Expr: "x", Result: "", Err: lisp.UndefinedVariable},
		}},
	}
	lisptest.RunTestSuite(t, tests)
}

func TestArithmetic(t *testing.T) {
	tests := lisptest.TestSuite{
		{"add", lisptest.TestSequence{
			{Expr: "(+)", Result: "0", Err: nil},
			{Expr: "(+ 1 2)", Result: "3", Err: nil},
			{Expr: "(+ 1 1.5)", Result: "2.5", Err: nil},
			{Expr: "(+ 1.0 2)", Result: "3.0", Err: nil},
			{Expr: "(+ 1 (* 2 3))", Result: "7", Err: nil},
		}},
		{"subtract", lisptest.TestSequence{
			{Expr: "(- 1)", Result: "-1", Err: nil},
			{Expr: "(- 1 2 3)", Result: "-4", Err: nil},
			{Expr: "(- 0.5 1)", Result: "-0.5", Err: nil},
			{Expr: "(-)", Result: "", Err: lisp.ArityMismatch},
		}},
		{"multiply", lisptest.TestSequence{
			{Expr: "(*)", Result: "1", Err: nil},
			{Expr: "(* 1 2 3 4)", Result: "24", Err: nil},
			{Expr: "(* 2 0.75)", Result: "1.50", Err: nil},
		}},
		{"divide", lisptest.TestSequence{
			{Expr: "(/ 2.0)", Result: "0.5", Err: nil},
			{Expr: "(/ 2)", Result: "0.5", Err: nil},
			{Expr: "(/ 6 3)", Result: "2", Err: nil},
			{Expr: "(/ 1.00 4)", Result: "0.25", Err: nil},
			{Expr: "(/ 100 2 5)", Result: "10", Err: nil},
			{Expr: "(/ 1 3)", Result: "0.33333333333333333333333333333333", Err: nil},
			{Expr: "(/ 1 0)", Result: "", Err: lisp.DivisionByZero},
			{Expr: "(/ 0.0)", Result: "", Err: lisp.DivisionByZero},
			{Expr: "(/)", Result: "", Err: lisp.ArityMismatch},
		}},
		{"operand types", lisptest.TestSequence{
			{Expr: "(+ 1 :a)", Result: "", Err: lisp.TypeMismatch},
			{Expr: "(* null 2)", Result: "", Err: lisp.TypeMismatch},
			{Expr: "(- Object)", Result: "", Err: lisp.TypeMismatch},
		}},
	}
	lisptest.RunTestSuite(t, tests)
}

func TestDivisionPrecision(t *testing.T) {
	tests := lisptest.TestSuite{
		{"precision", lisptest.TestSequence{
			{Expr: "(/ 2 3)", Result: "0.6667", Err: nil},
			{Expr: "(/ 1 8)", Result: "0.125", Err: nil},
		}},
	}
	lisptest.RunTestSuite(t, tests, lisp.WithDivisionPrecision(4))
}

func TestDo(t *testing.T) {
	tests := lisptest.TestSuite{
		{"empty", lisptest.TestSequence{
			{Expr: "(do)", Result: "null", Err: nil},
		}},
		{"multiple", lisptest.TestSequence{
			{Expr: "(do 1 2 3)", Result: "3", Err: nil},
		}},
		{"scope enter", lisptest.TestSequence{
			{Expr: "(do (def x 1) x)", Result: "1", Err: nil},
		}},
		{"scope exit", lisptest.TestSequence{
			{Expr: "(do (def x 1))", Result: "1", Err: nil},
			{Expr: "x", Result: "", Err: lisp.UndefinedVariable},
		}},
		{"scope nesting", lisptest.TestSequence{
			{Expr: "(do (def x 1) (do (def y 2) (do (+ x y))))", Result: "3", Err: nil},
		}},
		{"shadowing", lisptest.TestSequence{
			{Expr: "(def x 1)", Result: "1", Err: nil},
			{Expr: "(do (def x 2) x)", Result: "2", Err: nil},
			{Expr: "x", Result: "1", Err: nil},
		}},
		{"failure restores scope", lisptest.TestSequence{
			{Expr: "(do (def y 1) (nope))", Result: "", Err: lisp.UndefinedFunction},
			{Expr: "y", Result: "", Err: lisp.UndefinedVariable},
		}},
	}
	lisptest.RunTestSuite(t, tests)
}

func TestDef(t *testing.T) {
	tests := lisptest.TestSuite{
		{"variable", lisptest.TestSequence{
			{Expr: "(def x 1)", Result: "1", Err: nil},
			{Expr: "x", Result: "1", Err: nil},
		}},
		{"function", lisptest.TestSequence{
			{Expr: "(def (f) 1)", Result: "(function f <lambda>)", Err: nil},
			{Expr: "(f)", Result: "1", Err: nil},
		}},
		{"function parameters", lisptest.TestSequence{
			{Expr: "(def (add x y) (+ x y))", Result: "(function add <lambda>)", Err: nil},
			{Expr: "(add 1 2)", Result: "3", Err: nil},
			{Expr: "(add 1)", Result: "", Err: lisp.ArityMismatch},
			{Expr: "(add 1 2 3)", Result: "", Err: lisp.ArityMismatch},
		}},
		{"closure", lisptest.TestSequence{
			{Expr: "(def n 10)", Result: "10", Err: nil},
			{Expr: "(def (add-n x) (+ x n))", Result: "(function add-n <lambda>)", Err: nil},
			{Expr: "(do (def n 1) (add-n 1))", Result: "11", Err: nil},
		}},
		{"later definitions are visible", lisptest.TestSequence{
			{Expr: "(def (f) (g))", Result: "(function f <lambda>)", Err: nil},
			{Expr: "(def (g) :g)", Result: "(function g <lambda>)", Err: nil},
			{Expr: "(f)", Result: ":g", Err: nil},
		}},
		{"invalid", lisptest.TestSequence{
			{Expr: "(def 1)", Result: "", Err: lisp.InvalidForm},
			{Expr: "(def 1 2)", Result: "", Err: lisp.InvalidForm},
			{Expr: "(def x 1 2)", Result: "", Err: lisp.InvalidForm},
			{Expr: "(def (f 1) 1)", Result: "", Err: lisp.InvalidForm},
			{Expr: "(def (f a a) a)", Result: "", Err: lisp.InvalidForm},
			{Expr: "(def ((f)) 1)", Result: "", Err: lisp.InvalidForm},
		}},
		{"redefined", lisptest.TestSequence{
			{Expr: "(def x 1)", Result: "1", Err: nil},
			{Expr: "(def x 2)", Result: "", Err: lisp.RedefinedIdentifier},
			{Expr: "(def (x) 2)", Result: "", Err: lisp.RedefinedIdentifier},
			{Expr: "x", Result: "1", Err: nil},
		}},
		{"failed definition binds nothing", lisptest.TestSequence{
			{Expr: "(def z (nope))", Result: "", Err: lisp.UndefinedFunction},
			{Expr: "z", Result: "", Err: lisp.UndefinedVariable},
		}},
		{"invocation", lisptest.TestSequence{
			{Expr: "(nope 1)", Result: "", Err: lisp.UndefinedFunction},
			{Expr: "(def x 1)", Result: "1", Err: nil},
			{Expr: "(x)", Result: "", Err: lisp.NotInvokable},
		}},
	}
	lisptest.RunTestSuite(t, tests)
}

func TestSet(t *testing.T) {
	tests := lisptest.TestSuite{
		{"variable", lisptest.TestSequence{
			{Expr: "(def x 1)", Result: "1", Err: nil},
			{Expr: "(set! x 2)", Result: "2", Err: nil},
			{Expr: "x", Result: "2", Err: nil},
		}},
		{"undefined", lisptest.TestSequence{
			{Expr: "(set! x 1)", Result: "", Err: lisp.UndefinedVariable},
			{Expr: "x", Result: "", Err: lisp.UndefinedVariable},
		}},
		{"invalid", lisptest.TestSequence{
			{Expr: "(def x 1)", Result: "1", Err: nil},
			{Expr: "(set! (x) 2)", Result: "", Err: lisp.InvalidForm},
			{Expr: "(set! x)", Result: "", Err: lisp.InvalidForm},
		}},
		{"outer binding is overwritten in place", lisptest.TestSequence{
			{Expr: "(def x 1)", Result: "1", Err: nil},
			{Expr: "(do (set! x 5) (def y x) y)", Result: "5", Err: nil},
			{Expr: "x", Result: "5", Err: nil},
		}},
		{"closure state", lisptest.TestSequence{
			{Expr: "(def (make-counter) (do (def n 0) (object Counter [(.next) (do (set! n (+ n 1)) n)])))", Result: "(function make-counter <lambda>)", Err: nil},
			{Expr: "(def c (make-counter))", Result: "(object Counter)", Err: nil},
			{Expr: "(def d (make-counter))", Result: "(object Counter)", Err: nil},
			{Expr: "(.next c)", Result: "1", Err: nil},
			{Expr: "(.next c)", Result: "2", Err: nil},
			{Expr: "(.next d)", Result: "1", Err: nil},
		}},
	}
	lisptest.RunTestSuite(t, tests)
}

func TestObject(t *testing.T) {
	tests := lisptest.TestSuite{
		{"empty", lisptest.TestSequence{
			{Expr: "(object)", Result: "(object)", Err: nil},
		}},
		{"name", lisptest.TestSequence{
			{Expr: "(object Name)", Result: "(object Name)", Err: nil},
			{Expr: "Name", Result: "", Err: lisp.UndefinedVariable},
		}},
		{"field", lisptest.TestSequence{
			{Expr: "(object [field 1])", Result: "(object [field 1])", Err: nil},
			{Expr: "(object P [x 1] [y (+ x 1)])", Result: "(object P [x 1] [y 2])", Err: nil},
			{Expr: "(object [x 1] [(.m) x])", Result: "(object [x 1])", Err: nil},
		}},
		{"field getter", lisptest.TestSequence{
			{Expr: "(def obj (object [field 1]))", Result: "(object [field 1])", Err: nil},
			{Expr: "(.field obj)", Result: "1", Err: nil},
			{Expr: "(.field obj 1)", Result: "", Err: lisp.NotInvokable},
			{Expr: "(.other obj)", Result: "", Err: lisp.UndefinedAttribute},
		}},
		{"field setter", lisptest.TestSequence{
			{Expr: "(def obj (object [field 1]))", Result: "(object [field 1])", Err: nil},
			{Expr: "(.field= obj 2)", Result: "2", Err: nil},
			{Expr: "(.field obj)", Result: "2", Err: nil},
			{Expr: "(.other= obj :a)", Result: ":a", Err: nil},
			{Expr: "obj", Result: "(object [field 2] [other :a])", Err: nil},
			{Expr: "(.field= obj)", Result: "", Err: lisp.InvalidForm},
			{Expr: "(.field= obj 1 2)", Result: "", Err: lisp.InvalidForm},
		}},
		{"setter on dotted field", lisptest.TestSequence{
			{Expr: "(def o (object [.x 1]))", Result: "(object)", Err: nil},
			{Expr: "(.x= o 2)", Result: "2", Err: nil},
			{Expr: "(.x o)", Result: "2", Err: nil},
			{Expr: "o", Result: "(object)", Err: nil},
		}},
		{"setter replaces method", lisptest.TestSequence{
			{Expr: "(def p (object [(.m) 1]))", Result: "(object)", Err: nil},
			{Expr: "(.m p)", Result: "1", Err: nil},
			{Expr: "(.m= p 2)", Result: "2", Err: nil},
			{Expr: "(.m p)", Result: "2", Err: nil},
		}},
		{"method", lisptest.TestSequence{
			{Expr: "(def o (object [base 10] [(.add x) (+ base x)]))", Result: "(object [base 10])", Err: nil},
			{Expr: "(.add o 5)", Result: "15", Err: nil},
			{Expr: "(.add o)", Result: "", Err: lisp.ArityMismatch},
			{Expr: "(.base= o 20)", Result: "20", Err: nil},
			{Expr: "(.add o 5)", Result: "25", Err: nil},
		}},
		{"dotted field", lisptest.TestSequence{
			{Expr: "(def o (object [.field 1] [(.method) field]))", Result: "(object)", Err: nil},
			{Expr: "(.field o)", Result: "1", Err: nil},
			{Expr: "(.method o)", Result: "", Err: lisp.UndefinedVariable},
		}},
		{"invalid clauses", lisptest.TestSequence{
			{Expr: "(object 1)", Result: "", Err: lisp.InvalidForm},
			{Expr: "(object [a 1 2])", Result: "", Err: lisp.InvalidForm},
			{Expr: "(object [(m) 1])", Result: "", Err: lisp.InvalidForm},
			{Expr: "(object [(.m 1) 1])", Result: "", Err: lisp.InvalidForm},
			{Expr: "(object [(.m) 1 2])", Result: "", Err: lisp.InvalidForm},
			{Expr: "(object [a 1] [a 2])", Result: "", Err: lisp.RedefinedIdentifier},
			{Expr: "(object [(.m) 1] [(.m) 2])", Result: "", Err: lisp.RedefinedIdentifier},
		}},
		{"selector targets", lisptest.TestSequence{
			{Expr: "(.field)", Result: "", Err: lisp.InvalidForm},
			{Expr: "(.field 1)", Result: "", Err: lisp.TypeMismatch},
			{Expr: "(.field x)", Result: "", Err: lisp.UndefinedVariable},
			{Expr: "(. Object)", Result: "", Err: lisp.InvalidForm},
			{Expr: "(.= Object 1)", Result: "", Err: lisp.InvalidForm},
		}},
		{"not object instance", lisptest.TestSequence{
			{Expr: "(def obj (object))", Result: "(object)", Err: nil},
			{Expr: "(.instance? obj Object)", Result: "false", Err: nil},
			{Expr: "(.instance? obj obj)", Result: "true", Err: nil},
			{Expr: "(.instance? obj 1)", Result: "", Err: lisp.TypeMismatch},
		}},
		{"self reference", lisptest.TestSequence{
			{Expr: "(def o (object O [x 1]))", Result: "(object O [x 1])", Err: nil},
			{Expr: "(.self= o o)", Result: "(object O [x 1] [self (object O ...)])", Err: nil},
		}},
	}
	lisptest.RunTestSuite(t, tests)
}

func TestPrototype(t *testing.T) {
	tests := lisptest.TestSuite{
		{"get", lisptest.TestSequence{
			{Expr: "(.prototype (object))", Result: "null", Err: nil},
			{Expr: "(.prototype (object) 1)", Result: "", Err: lisp.InvalidForm},
		}},
		{"set", lisptest.TestSequence{
			{Expr: "(def obj (object))", Result: "(object)", Err: nil},
			{Expr: "(.prototype= obj Object)", Result: "(object Object)", Err: nil},
			{Expr: "(.prototype obj)", Result: "(object Object)", Err: nil},
			{Expr: "(.instance? obj Object)", Result: "true", Err: nil},
			{Expr: "(.prototype= obj 1)", Result: "", Err: lisp.TypeMismatch},
			{Expr: "(.prototype= obj)", Result: "", Err: lisp.InvalidForm},
		}},
		{"prototype clause", lisptest.TestSequence{
			{Expr: "(def parent (object P))", Result: "(object P)", Err: nil},
			{Expr: "(def child (object C [prototype parent] [x 1]))", Result: "(object C [x 1])", Err: nil},
			{Expr: "(.prototype child)", Result: "(object P)", Err: nil},
			{Expr: "(object [prototype 1])", Result: "", Err: lisp.TypeMismatch},
		}},
		{"inherit method", lisptest.TestSequence{
			{Expr: "(def parent (object [(.method) 1]))", Result: "(object)", Err: nil},
			{Expr: "(def child (object [prototype parent]))", Result: "(object)", Err: nil},
			{Expr: "(.method child)", Result: "1", Err: nil},
			{Expr: "(.method parent)", Result: "1", Err: nil},
		}},
		{"override method", lisptest.TestSequence{
			{Expr: "(def parent (object [(.method) 1]))", Result: "(object)", Err: nil},
			{Expr: "(def child (object [prototype parent] [.method 2]))", Result: "(object)", Err: nil},
			{Expr: "(.method child)", Result: "2", Err: nil},
			{Expr: "(def other (object [prototype parent] [(.method) 3]))", Result: "(object)", Err: nil},
			{Expr: "(.method other)", Result: "3", Err: nil},
			{Expr: "(.method parent)", Result: "1", Err: nil},
		}},
		{"methods close over their defining object", lisptest.TestSequence{
			{Expr: "(def parent (object [v 1] [(.get) v]))", Result: "(object [v 1])", Err: nil},
			{Expr: "(def child (object [prototype parent] [v 2]))", Result: "(object [v 2])", Err: nil},
			{Expr: "(.get child)", Result: "1", Err: nil},
			{Expr: "(.v child)", Result: "2", Err: nil},
		}},
		{"inherited fields are shadowed", lisptest.TestSequence{
			{Expr: "(def parent (object [v 1]))", Result: "(object [v 1])", Err: nil},
			{Expr: "(def child (object [prototype parent]))", Result: "(object)", Err: nil},
			{Expr: "(.v child)", Result: "1", Err: nil},
			{Expr: "(.v= child 5)", Result: "5", Err: nil},
			{Expr: "(.v child)", Result: "5", Err: nil},
			{Expr: "(.v parent)", Result: "1", Err: nil},
		}},
		{"prototype instance", lisptest.TestSequence{
			{Expr: "(def parent (object))", Result: "(object)", Err: nil},
			{Expr: "(def child (object [prototype parent]))", Result: "(object)", Err: nil},
			{Expr: "(def grandchild (object [prototype child]))", Result: "(object)", Err: nil},
			{Expr: "(.instance? child parent)", Result: "true", Err: nil},
			{Expr: "(.instance? grandchild parent)", Result: "true", Err: nil},
			{Expr: "(.instance? parent child)", Result: "false", Err: nil},
			{Expr: "(.instance? parent (object))", Result: "false", Err: nil},
		}},
		{"cyclic prototype", lisptest.TestSequence{
			{Expr: "(def a (object A))", Result: "(object A)", Err: nil},
			{Expr: "(def b (object B [prototype a]))", Result: "(object B)", Err: nil},
			{Expr: "(.prototype= a b)", Result: "", Err: lisp.CyclicPrototype},
			{Expr: "(.prototype= a a)", Result: "", Err: lisp.CyclicPrototype},
			{Expr: "(.prototype a)", Result: "null", Err: nil},
			{Expr: "(.missing b)", Result: "", Err: lisp.UndefinedAttribute},
		}},
	}
	lisptest.RunTestSuite(t, tests)
}

func TestStackHeight(t *testing.T) {
	tests := lisptest.TestSuite{
		{"unbounded recursion", lisptest.TestSequence{
			{Expr: "(def (loop) (loop))", Result: "(function loop <lambda>)", Err: nil},
			{Expr: "(loop)", Result: "", Err: lisp.StackExhausted},
		}},
		{"method recursion", lisptest.TestSequence{
			{Expr: "(def o (object [(.spin) (.spin o)]))", Result: "(object)", Err: nil},
			{Expr: "(.spin o)", Result: "", Err: lisp.StackExhausted},
		}},
		{"bounded recursion", lisptest.TestSequence{
			{Expr: "(def (f) 1)", Result: "(function f <lambda>)", Err: nil},
			{Expr: "(def (g) (f))", Result: "(function g <lambda>)", Err: nil},
			{Expr: "(g)", Result: "1", Err: nil},
		}},
	}
	lisptest.RunTestSuite(t, tests, lisp.WithMaximumStackHeight(50))
}

func TestLoadFile(t *testing.T) {
	lisptest.RunTestFile(t, "../parser/testfixtures/objects.lisp", "(object Point [x 1] [y 2])")
	lisptest.RunTestFile(t, "../parser/testfixtures/closures.lisp", "12")
	lisptest.RunTestFile(t, "../parser/testfixtures/arithmetic.lisp", "-401.5")
}
