package lox

// Version is the interpreter's version string, printed by `lox --version`
// and shown in the REPL banner (cmd/lox).
const Version = "0.1.0"
