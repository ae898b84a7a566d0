// Package djserr provides positioned, typed diagnostics for the CLI and
// test boundary, mirroring nooga-paserati's pkg/errors (PaseratiError's
// Kind/Message/Pos split) — adapted for a kernel with no lexer or parser:
// there is no source file/line/column to report, so Context names the
// operation or self-test scenario instead of a source span.
//
// Nothing in pkg/object or pkg/runtime imports this package: the core
// kernel reports failure exclusively through Completion, per spec.md
// §4.2/§7. djserr exists only to give the CLI something richer than a
// bare error string to print.
package djserr

import "fmt"

// DjsError is the interface implemented by all diagnostics surfaced at the
// CLI/test boundary.
type DjsError interface {
	error
	Kind() string
	Context() string
	Message() string
}

// UsageError reports malformed CLI invocation (bad flags, missing args).
type UsageError struct {
	Ctx string
	Msg string
}

func (e *UsageError) Error() string   { return fmt.Sprintf("usage error (%s): %s", e.Ctx, e.Msg) }
func (e *UsageError) Kind() string    { return "Usage" }
func (e *UsageError) Context() string { return e.Ctx }
func (e *UsageError) Message() string { return e.Msg }

// SelfTestError reports a spec.md §8 scenario that did not behave as
// expected: Context names the scenario, Msg carries the expected/actual
// mismatch description.
type SelfTestError struct {
	Ctx string
	Msg string
}

func (e *SelfTestError) Error() string {
	return fmt.Sprintf("self-test failure (%s): %s", e.Ctx, e.Msg)
}
func (e *SelfTestError) Kind() string    { return "SelfTest" }
func (e *SelfTestError) Context() string { return e.Ctx }
func (e *SelfTestError) Message() string { return e.Msg }

// InternalError reports an abrupt Completion reaching the CLI boundary
// unhandled (e.g. a demo script throwing a TypeError the caller did not
// expect) — Msg is typically the printed form of the thrown value.
type InternalError struct {
	Ctx string
	Msg string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error (%s): %s", e.Ctx, e.Msg)
}
func (e *InternalError) Kind() string    { return "Internal" }
func (e *InternalError) Context() string { return e.Ctx }
func (e *InternalError) Message() string { return e.Msg }

// NewUsageError constructs a UsageError.
func NewUsageError(ctx, msg string) *UsageError { return &UsageError{Ctx: ctx, Msg: msg} }

// NewSelfTestError constructs a SelfTestError.
func NewSelfTestError(ctx, msg string) *SelfTestError { return &SelfTestError{Ctx: ctx, Msg: msg} }

// NewInternalError constructs an InternalError.
func NewInternalError(ctx, msg string) *InternalError { return &InternalError{Ctx: ctx, Msg: msg} }
