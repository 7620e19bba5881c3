// pipeline.go: wires Lexer -> Parser -> Resolver -> Interpreter into the
// single entry point external callers (cmd/lox, tests) use.
package lox

// Run lexes, parses, resolves, and interprets source against interp,
// reporting diagnostics through reporter. It skips the interpreter stage
// entirely if any static error occurred: running against an AST the
// resolver flagged as ill-scoped would produce confusing runtime failures
// on top of diagnostics already reported.
func Run(source string, interp *Interpreter, reporter *ErrorReporter) {
	lexer := NewLexer(source, reporter)
	tokens := lexer.ScanTokens()

	parser := NewParser(tokens, reporter)
	statements := parser.Parse()

	if reporter.HadError {
		return
	}

	resolver := NewResolver(reporter)
	resolver.Resolve(statements)

	if reporter.HadError {
		return
	}

	interp.Resolve(resolver.Locals())
	interp.Interpret(statements)
}
