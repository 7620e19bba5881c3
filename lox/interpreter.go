// interpreter.go: tree-walking evaluator over the AST produced by parser.go
// and the depth table produced by resolver.go.
//
// Control flow uses two Go panic/recover signals for non-local exits:
// returnSignal unwinds to the enclosing call frame (Function.Call recovers
// it); *RuntimeError unwinds to the top-level driver. Neither is a Go
// `error` return threaded through every eval call — that would make every
// expression evaluator method return (Value, error) for a control-flow
// event that occurs at exactly one place (a return statement) and is
// recovered at exactly one kind of boundary (a call frame). Go's panic is
// the idiomatic way to express that shape without polluting every method
// signature in the tree.
package lox

import "time"

// returnSignal is thrown by a `return` statement and recovered by the
// nearest enclosing Function.Call. It is not a diagnostic and is never
// surfaced to the user.
type returnSignal struct {
	value Value
}

// Interpreter evaluates statements against a chain of Environments rooted
// at Globals.
type Interpreter struct {
	Globals     *Environment
	environment *Environment
	locals      map[Expr]int
	reporter    *ErrorReporter
	Stdout      Printer
}

// Printer is the sink for `print` statement output. Kept as an interface
// (rather than hardcoding os.Stdout) so tests and the REPL can capture or
// colorize output without the interpreter knowing about io.Writer framing.
type Printer interface {
	Println(s string)
}

// NewInterpreter creates an interpreter with a fresh global scope seeded
// with the native clock function, reporting runtime errors to r and
// printing to out.
func NewInterpreter(r *ErrorReporter, out Printer) *Interpreter {
	globals := NewEnvironment(nil)
	globals.Define("clock", &NativeFunction{
		name:  "clock",
		arity: 0,
		fn: func(interp *Interpreter, arguments []Value) Value {
			return float64(time.Now().UnixNano()) / 1e9
		},
	})

	return &Interpreter{
		Globals:     globals,
		environment: globals,
		locals:      make(map[Expr]int),
		reporter:    r,
		Stdout:      out,
	}
}

// Resolve merges a resolver's depth table into the interpreter's side
// table (see resolver.go), called after resolving and before interpreting
// each parsed unit. Merging rather than replacing matters for a REPL: a
// closure declared on one line and called on a later one was resolved by
// an earlier, separate Resolver run, and its body's Variable/Assign nodes
// must keep resolving correctly (each AST node is a distinct, never-reused
// pointer, so keys never collide across runs).
func (i *Interpreter) Resolve(locals map[Expr]int) {
	for expr, depth := range locals {
		i.locals[expr] = depth
	}
}

// Interpret executes a top-level statement list, recovering a RuntimeError
// and reporting it. It is the sole entry point that catches RuntimeError;
// callers running one file/REPL line at a time call this once per parse.
func (i *Interpreter) Interpret(statements []Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(*RuntimeError); ok {
				i.reporter.RuntimeErr(rerr)
				return
			}
			panic(r)
		}
	}()

	for _, stmt := range statements {
		i.execute(stmt)
	}
}

func (i *Interpreter) execute(stmt Stmt) {
	if stmt == nil {
		return
	}
	switch s := stmt.(type) {
	case *ExpressionStmt:
		i.evaluate(s.Expression)
	case *PrintStmt:
		value := i.evaluate(s.Expression)
		i.Stdout.Println(stringify(value))
	case *VarStmt:
		// A new global is bound to nil before its initializer runs, so a
		// global `var a = a;` reads nil instead of failing as undefined.
		if i.environment == i.Globals {
			if _, ok := i.Globals.values[s.Name.Lexeme]; !ok {
				i.Globals.Define(s.Name.Lexeme, nil)
			}
		}
		var value Value
		if s.Initializer != nil {
			value = i.evaluate(s.Initializer)
		}
		i.environment.Define(s.Name.Lexeme, value)
	case *BlockStmt:
		i.executeBlock(s.Statements, NewEnvironment(i.environment))
	case *IfStmt:
		if isTruthy(i.evaluate(s.Condition)) {
			i.execute(s.ThenBranch)
		} else if s.ElseBranch != nil {
			i.execute(s.ElseBranch)
		}
	case *WhileStmt:
		for isTruthy(i.evaluate(s.Condition)) {
			i.execute(s.Body)
		}
	case *FunctionStmt:
		fn := NewFunction(s, i.environment)
		i.environment.Define(s.Name.Lexeme, fn)
	case *ReturnStmt:
		var value Value
		if s.Value != nil {
			value = i.evaluate(s.Value)
		}
		panic(returnSignal{value: value})
	case *ClassStmt:
		i.environment.Define(s.Name.Lexeme, nil)
		class := &Class{Name: s.Name.Lexeme}
		i.environment.Assign(s.Name, class)
	}
}

// executeBlock runs statements in env, restoring the previous environment
// pointer on both normal completion and any propagated panic (RuntimeError
// or returnSignal).
func (i *Interpreter) executeBlock(statements []Stmt, env *Environment) {
	previous := i.environment
	defer func() { i.environment = previous }()

	i.environment = env
	for _, stmt := range statements {
		i.execute(stmt)
	}
}

func (i *Interpreter) evaluate(expr Expr) Value {
	switch e := expr.(type) {
	case *Literal:
		return e.Value
	case *Grouping:
		return i.evaluate(e.Expression)
	case *Unary:
		return i.evalUnary(e)
	case *Binary:
		return i.evalBinary(e)
	case *Logical:
		return i.evalLogical(e)
	case *Variable:
		return i.lookUpVariable(e.Name, e)
	case *Assign:
		return i.evalAssign(e)
	case *Call:
		return i.evalCall(e)
	}
	panic("lox: unreachable expression type")
}

func (i *Interpreter) lookUpVariable(name Token, expr Expr) Value {
	if distance, ok := i.locals[expr]; ok {
		return i.environment.GetAt(distance, name.Lexeme)
	}
	return i.Globals.Get(name)
}

func (i *Interpreter) evalAssign(e *Assign) Value {
	value := i.evaluate(e.Value)
	if distance, ok := i.locals[e]; ok {
		i.environment.AssignAt(distance, e.Name, value)
	} else {
		i.Globals.Assign(e.Name, value)
	}
	return value
}

func (i *Interpreter) evalLogical(e *Logical) Value {
	left := i.evaluate(e.Left)

	if e.Operator.Type == OR {
		if isTruthy(left) {
			return left
		}
	} else { // AND
		if !isTruthy(left) {
			return left
		}
	}

	return i.evaluate(e.Right)
}

func (i *Interpreter) evalUnary(e *Unary) Value {
	right := i.evaluate(e.Right)

	switch e.Operator.Type {
	case MINUS:
		checkNumberOperand(e.Operator, right)
		return -right.(float64)
	case BANG:
		return !isTruthy(right)
	}
	panic("lox: unreachable unary operator")
}

func (i *Interpreter) evalBinary(e *Binary) Value {
	left := i.evaluate(e.Left)
	right := i.evaluate(e.Right)

	switch e.Operator.Type {
	case GREATER:
		checkNumberOperands(e.Operator, left, right)
		return left.(float64) > right.(float64)
	case GREATER_EQUAL:
		checkNumberOperands(e.Operator, left, right)
		return left.(float64) >= right.(float64)
	case LESS:
		checkNumberOperands(e.Operator, left, right)
		return left.(float64) < right.(float64)
	case LESS_EQUAL:
		checkNumberOperands(e.Operator, left, right)
		return left.(float64) <= right.(float64)
	case BANG_EQUAL:
		return !isEqual(left, right)
	case EQUAL_EQUAL:
		return isEqual(left, right)
	case MINUS:
		checkNumberOperands(e.Operator, left, right)
		return left.(float64) - right.(float64)
	case SLASH:
		checkNumberOperands(e.Operator, left, right)
		return left.(float64) / right.(float64)
	case STAR:
		checkNumberOperands(e.Operator, left, right)
		return left.(float64) * right.(float64)
	case PLUS:
		if ln, ok := left.(float64); ok {
			if rn, ok := right.(float64); ok {
				return ln + rn
			}
		}
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs
			}
		}
		panic(newRuntimeError(e.Operator, "Operands must be two numbers or two strings."))
	}
	panic("lox: unreachable binary operator")
}

func (i *Interpreter) evalCall(e *Call) Value {
	callee := i.evaluate(e.Callee)

	arguments := make([]Value, 0, len(e.Arguments))
	for _, arg := range e.Arguments {
		arguments = append(arguments, i.evaluate(arg))
	}

	callable, ok := callee.(Callable)
	if !ok {
		panic(newRuntimeError(e.Paren, "Can only call functions and classes."))
	}

	if len(arguments) != callable.Arity() {
		panic(newRuntimeError(e.Paren, "Expected %d arguments but got %d.", callable.Arity(), len(arguments)))
	}

	return callable.Call(i, arguments)
}

func checkNumberOperand(operator Token, operand Value) {
	if _, ok := operand.(float64); ok {
		return
	}
	panic(newRuntimeError(operator, "Operand must be a number."))
}

func checkNumberOperands(operator Token, left, right Value) {
	_, lok := left.(float64)
	_, rok := right.(float64)
	if lok && rok {
		return
	}
	panic(newRuntimeError(operator, "Operands must be numbers."))
}
