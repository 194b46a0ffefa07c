// Package diag defines the diagnostic model shared by the formatter phases.
//
// Diagnostic is the central record: Severity, a compact numeric Code with a
// stable string form (LEX1001, SYN2001, ...), a short Message, the Primary
// span and optional Notes. The lexer and parser return typed errors; the
// driver turns them into diagnostics and collects them in a Bag, which
// enforces the --max-diagnostics cap and gives a deterministic order.
//
// Package diag does no formatting or IO. Rendering lives in internal/diagfmt.
package diag
