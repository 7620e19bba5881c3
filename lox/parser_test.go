package lox

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kr/pretty"
)

func parse(t *testing.T, src string) ([]Stmt, string) {
	t.Helper()
	var out bytes.Buffer
	r := NewErrorReporter(&out)
	tokens := NewLexer(src, r).ScanTokens()
	stmts := NewParser(tokens, r).Parse()
	return stmts, out.String()
}

func TestParserBinaryPrecedence(t *testing.T) {
	stmts, errs := parse(t, "1 + 2 * 3;")
	if errs != "" {
		t.Fatalf("unexpected errors: %s", errs)
	}
	if len(stmts) != 1 {
		t.Fatalf("want 1 statement, got %d", len(stmts))
	}
	es, ok := stmts[0].(*ExpressionStmt)
	if !ok {
		t.Fatalf("want *ExpressionStmt, got %#v", stmts[0])
	}
	top, ok := es.Expression.(*Binary)
	if !ok || top.Operator.Type != PLUS {
		t.Fatalf("want top-level '+', got %# v", pretty.Formatter(es.Expression))
	}
	right, ok := top.Right.(*Binary)
	if !ok || right.Operator.Type != STAR {
		t.Fatalf("want '*' nested under '+', got %# v", pretty.Formatter(top.Right))
	}
}

func TestParserAssignmentIsRightAssociative(t *testing.T) {
	stmts, errs := parse(t, "a = b = 3;")
	if errs != "" {
		t.Fatalf("unexpected errors: %s", errs)
	}
	es := stmts[0].(*ExpressionStmt)
	outer, ok := es.Expression.(*Assign)
	if !ok || outer.Name.Lexeme != "a" {
		t.Fatalf("got %#v", es.Expression)
	}
	inner, ok := outer.Value.(*Assign)
	if !ok || inner.Name.Lexeme != "b" {
		t.Fatalf("got %#v", outer.Value)
	}
}

func TestParserInvalidAssignmentTargetIsNonFatal(t *testing.T) {
	stmts, errs := parse(t, "1 + 2 = 3; print 1;")
	if !strings.Contains(errs, "Invalid assignment target.") {
		t.Fatalf("expected invalid-assignment-target error, got %q", errs)
	}
	// Parsing continues: the print statement after the bad assignment is
	// still produced.
	if len(stmts) != 2 {
		t.Fatalf("want 2 statements, got %d: %# v", len(stmts), pretty.Formatter(stmts))
	}
	if _, ok := stmts[1].(*PrintStmt); !ok {
		t.Fatalf("want second statement to be PrintStmt, got %#v", stmts[1])
	}
}

func TestParserForDesugaring(t *testing.T) {
	stmts, errs := parse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	if errs != "" {
		t.Fatalf("unexpected errors: %s", errs)
	}
	outer, ok := stmts[0].(*BlockStmt)
	if !ok || len(outer.Statements) != 2 {
		t.Fatalf("want a 2-statement block, got %# v", pretty.Formatter(stmts[0]))
	}
	if _, ok := outer.Statements[0].(*VarStmt); !ok {
		t.Fatalf("want the init as the first statement, got %#v", outer.Statements[0])
	}
	loop, ok := outer.Statements[1].(*WhileStmt)
	if !ok {
		t.Fatalf("want a while loop, got %#v", outer.Statements[1])
	}
	body, ok := loop.Body.(*BlockStmt)
	if !ok || len(body.Statements) != 2 {
		t.Fatalf("want body+increment block, got %# v", pretty.Formatter(loop.Body))
	}
	if _, ok := body.Statements[1].(*ExpressionStmt); !ok {
		t.Fatalf("want increment appended as expr stmt, got %#v", body.Statements[1])
	}
}

func TestParserForDesugaringOmittedClauses(t *testing.T) {
	stmts, errs := parse(t, "for (;;) print 1;")
	if errs != "" {
		t.Fatalf("unexpected errors: %s", errs)
	}
	loop, ok := stmts[0].(*WhileStmt)
	if !ok {
		t.Fatalf("want a bare while loop (no init block), got %#v", stmts[0])
	}
	lit, ok := loop.Condition.(*Literal)
	if !ok || lit.Value != true {
		t.Fatalf("want condition literal-true, got %#v", loop.Condition)
	}
}

func TestParserCallArityCapIsNonFatal(t *testing.T) {
	var args []string
	for i := 0; i < 256; i++ {
		args = append(args, "1")
	}
	src := "f(" + strings.Join(args, ",") + ");"
	stmts, errs := parse(t, src)
	if !strings.Contains(errs, "Can't have more than 255 arguments.") {
		t.Fatalf("expected arity-cap error, got %q", errs)
	}
	if len(stmts) != 1 {
		t.Fatalf("parsing should still complete, got %d statements", len(stmts))
	}
}

func TestParserSynchronizeRecoversAtStatementBoundary(t *testing.T) {
	stmts, errs := parse(t, "var = ; print 1;")
	if errs == "" {
		t.Fatalf("expected a parse error")
	}
	if len(stmts) != 2 {
		t.Fatalf("want 2 statements (nil placeholder + print), got %d", len(stmts))
	}
	if stmts[0] != nil {
		t.Fatalf("want the failed declaration to be a nil placeholder, got %#v", stmts[0])
	}
	if _, ok := stmts[1].(*PrintStmt); !ok {
		t.Fatalf("want recovery to resume at the print statement, got %#v", stmts[1])
	}
}

func TestParserErrorAtEOF(t *testing.T) {
	_, errs := parse(t, "1 +")
	if !strings.HasPrefix(errs, "[line 1] Error at end:") {
		t.Fatalf("got %q", errs)
	}
}

func TestParserErrorAtToken(t *testing.T) {
	_, errs := parse(t, "1 + ;")
	if !strings.Contains(errs, "Error at ';'") {
		t.Fatalf("got %q", errs)
	}
}
