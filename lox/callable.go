// callable.go: the three flavors of Callable — user-defined functions,
// native functions (clock), and classes (whose zero-arity constructor
// yields an empty Instance). Function and class equality is plain Go
// pointer identity; no equals() override is needed.
package lox

// Function is a user-defined closure: it captures the Environment that was
// active at its declaration site.
type Function struct {
	declaration *FunctionStmt
	closure     *Environment
}

// NewFunction wraps declaration, capturing closure as its lexical
// environment.
func NewFunction(declaration *FunctionStmt, closure *Environment) *Function {
	return &Function{declaration: declaration, closure: closure}
}

func (f *Function) Arity() int { return len(f.declaration.Params) }

// Call binds arguments positionally in a fresh child of the closure
// environment and executes the body as a block. A Return non-local exit is
// recovered here and its value returned; normal completion yields nil.
func (f *Function) Call(interp *Interpreter, arguments []Value) (result Value) {
	env := NewEnvironment(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, arguments[i])
	}

	defer func() {
		if r := recover(); r != nil {
			if ret, ok := r.(returnSignal); ok {
				result = ret.value
				return
			}
			panic(r)
		}
	}()

	interp.executeBlock(f.declaration.Body, env)
	return nil
}

func (f *Function) String() string {
	return "<fn " + f.declaration.Name.Lexeme + ">"
}

// NativeFunction wraps a host-implemented builtin. Lox exposes exactly
// one: clock.
type NativeFunction struct {
	name  string
	arity int
	fn    func(interp *Interpreter, arguments []Value) Value
}

func (n *NativeFunction) Arity() int { return n.arity }

func (n *NativeFunction) Call(interp *Interpreter, arguments []Value) Value {
	return n.fn(interp, arguments)
}

func (n *NativeFunction) String() string { return "<native fn>" }

// Class is a callable that, invoked with zero arguments, produces a fresh
// Instance with no members and no state. There are no methods, fields,
// inheritance, `this`, or `super`.
type Class struct {
	Name string
}

func (c *Class) Arity() int { return 0 }

func (c *Class) Call(interp *Interpreter, arguments []Value) Value {
	return NewInstance(c)
}

func (c *Class) String() string { return c.Name }

// Instance is an empty instance of a Class: no fields, no methods. It keeps
// a back-pointer to its class purely so it can print as
// "<ClassName> instance".
type Instance struct {
	class *Class
}

// NewInstance creates an empty instance of class.
func NewInstance(class *Class) *Instance {
	return &Instance{class: class}
}

func (i *Instance) String() string { return i.class.Name + " instance" }
