// resolver.go: a single static pass that binds every variable reference to
// a lexical scope depth.
//
// The result is a sidecar table keyed by AST node identity (see ast.go's
// header) rather than by name, so scope resolution never has to mutate the
// AST nodes themselves.
package lox

// scope maps a name to whether its initializer has finished evaluating.
type scope map[string]bool

// Resolver walks the AST once, before evaluation, recording the number of
// enclosing environments to skip for every non-global variable reference.
type Resolver struct {
	scopes   []scope
	locals   map[Expr]int
	reporter *ErrorReporter
}

// NewResolver creates a Resolver that reports static scoping errors to r.
func NewResolver(r *ErrorReporter) *Resolver {
	return &Resolver{locals: make(map[Expr]int), reporter: r}
}

// Locals returns the resolved depth table. Absence of an entry means the
// reference resolves as global.
func (rs *Resolver) Locals() map[Expr]int { return rs.locals }

// Resolve resolves a top-level statement list.
func (rs *Resolver) Resolve(statements []Stmt) {
	rs.resolveStmts(statements)
}

func (rs *Resolver) resolveStmts(statements []Stmt) {
	for _, s := range statements {
		rs.resolveStmt(s)
	}
}

func (rs *Resolver) resolveStmt(stmt Stmt) {
	if stmt == nil {
		return
	}
	switch s := stmt.(type) {
	case *BlockStmt:
		rs.beginScope()
		rs.resolveStmts(s.Statements)
		rs.endScope()
	case *VarStmt:
		rs.declare(s.Name)
		if s.Initializer != nil {
			rs.resolveExpr(s.Initializer)
		}
		rs.define(s.Name)
	case *FunctionStmt:
		rs.declare(s.Name)
		rs.define(s.Name)
		rs.resolveFunction(s)
	case *ClassStmt:
		rs.declare(s.Name)
		rs.define(s.Name)
	case *ExpressionStmt:
		rs.resolveExpr(s.Expression)
	case *IfStmt:
		rs.resolveExpr(s.Condition)
		rs.resolveStmt(s.ThenBranch)
		if s.ElseBranch != nil {
			rs.resolveStmt(s.ElseBranch)
		}
	case *PrintStmt:
		rs.resolveExpr(s.Expression)
	case *ReturnStmt:
		if s.Value != nil {
			rs.resolveExpr(s.Value)
		}
	case *WhileStmt:
		rs.resolveExpr(s.Condition)
		rs.resolveStmt(s.Body)
	}
}

func (rs *Resolver) resolveExpr(expr Expr) {
	switch e := expr.(type) {
	case *Variable:
		if len(rs.scopes) > 0 {
			if defined, ok := rs.scopes[len(rs.scopes)-1][e.Name.Lexeme]; ok && !defined {
				rs.reporter.TokenError(e.Name, "Can't read local variable in its own initializer.")
			}
		}
		rs.resolveLocal(e, e.Name)
	case *Assign:
		rs.resolveExpr(e.Value)
		rs.resolveLocal(e, e.Name)
	case *Binary:
		rs.resolveExpr(e.Left)
		rs.resolveExpr(e.Right)
	case *Logical:
		rs.resolveExpr(e.Left)
		rs.resolveExpr(e.Right)
	case *Call:
		rs.resolveExpr(e.Callee)
		for _, a := range e.Arguments {
			rs.resolveExpr(a)
		}
	case *Grouping:
		rs.resolveExpr(e.Expression)
	case *Unary:
		rs.resolveExpr(e.Right)
	case *Literal:
		// nothing to resolve
	}
}

func (rs *Resolver) resolveFunction(fn *FunctionStmt) {
	rs.beginScope()
	for _, param := range fn.Params {
		rs.declare(param)
		rs.define(param)
	}
	rs.resolveStmts(fn.Body)
	rs.endScope()
}

func (rs *Resolver) beginScope() {
	rs.scopes = append(rs.scopes, scope{})
}

func (rs *Resolver) endScope() {
	rs.scopes = rs.scopes[:len(rs.scopes)-1]
}

func (rs *Resolver) declare(name Token) {
	if len(rs.scopes) == 0 {
		return
	}
	s := rs.scopes[len(rs.scopes)-1]
	if _, ok := s[name.Lexeme]; ok {
		rs.reporter.TokenError(name, "Already a variable with this name in this scope.")
	}
	s[name.Lexeme] = false
}

func (rs *Resolver) define(name Token) {
	if len(rs.scopes) == 0 {
		return
	}
	rs.scopes[len(rs.scopes)-1][name.Lexeme] = true
}

func (rs *Resolver) resolveLocal(expr Expr, name Token) {
	for i := len(rs.scopes) - 1; i >= 0; i-- {
		if _, ok := rs.scopes[i][name.Lexeme]; ok {
			rs.locals[expr] = len(rs.scopes) - 1 - i
			return
		}
	}
	// Not found in any scope: resolves as global.
}
