// value.go: the runtime value domain and its print/truthiness/equality
// rules.
package lox

import "strconv"

// Value is the closed runtime value domain: nil, bool, float64 number,
// string, Callable, or *Instance. Represented as interface{} rather than a
// tagged struct because Go's type switch already gives exhaustive, checked
// dispatch over exactly these six concrete Go types — a separate tag field
// would just restate what the dynamic type already says.
type Value = interface{}

// Callable is any value that can appear as the callee of a Call expression:
// user-defined functions, the native clock function, and classes (whose
// call produces a fresh Instance).
type Callable interface {
	Arity() int
	Call(interp *Interpreter, arguments []Value) Value
	String() string
}

// isTruthy applies Lox's truthiness rule: nil and false are false,
// everything else — including 0 and "" — is true.
func isTruthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// isEqual applies Lox's equality rule: nil==nil, otherwise same-type
// structural equality; cross-type is always unequal and never raises.
func isEqual(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		return a == b
	}
}

// stringify renders a Value the way `print` and the REPL echo it: numbers
// drop a trailing ".0", strings print verbatim, callables print as
// "<fn name>"/"<native fn>", classes print as their bare name, instances as
// "<ClassName> instance".
func stringify(v Value) string {
	if v == nil {
		return "nil"
	}
	switch x := v.(type) {
	case bool:
		if x {
			return "true"
		}
		return "false"
	case float64:
		text := strconv.FormatFloat(x, 'f', -1, 64)
		return text
	case string:
		return x
	case Callable:
		return x.String()
	case *Instance:
		return x.String()
	default:
		return "nil"
	}
}
