// Package validation implements the validator chain engine: ordered lists of
// per-field rules evaluated against one request. Every field's chain runs even
// when an earlier field has failed; within a single chain evaluation stops at
// the first failing rule. Rules only read; the engine never writes.
package validation

import (
	"context"

	apperrors "staff-auth/app/utils/errors"
)

// Rule is a single check. A client-correctable failure is reported as an
// AppError with a user-facing message; any other error is an infrastructure
// failure and aborts the whole run.
type Rule func(ctx context.Context) error

// Chain is the ordered rule list for one field
type Chain struct {
	Field string
	Rules []Rule
}

// NewChain builds a chain for a field
func NewChain(field string, rules ...Rule) Chain {
	return Chain{Field: field, Rules: rules}
}

// FieldError is a single collected failure
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result aggregates the failures of one run in chain order
type Result struct {
	Errors []FieldError `json:"errors"`
}

// OK reports whether the request may proceed
func (r *Result) OK() bool {
	return len(r.Errors) == 0
}

// Messages returns the collected failure messages in order
func (r *Result) Messages() []string {
	messages := make([]string, 0, len(r.Errors))
	for _, fieldErr := range r.Errors {
		messages = append(messages, fieldErr.Message)
	}
	return messages
}

// Err returns the result as an error when any failure was collected,
// and nil when the request may proceed
func (r *Result) Err() error {
	if r.OK() {
		return nil
	}
	return &Error{Result: r}
}

// Error is a non-empty Result surfaced as an error. The transport layer maps
// it to a 400 response listing every collected message.
type Error struct {
	Result *Result
}

// Error implements the error interface
func (e *Error) Error() string {
	messages := e.Result.Messages()
	if len(messages) == 0 {
		return "validation failed"
	}
	out := "validation failed: " + messages[0]
	for _, msg := range messages[1:] {
		out += "; " + msg
	}
	return out
}

// Run evaluates every chain. A recoverable rule failure is collected and
// short-circuits the remaining rules of that field only; the next field's
// chain still runs. Infrastructure errors propagate unchanged.
func Run(ctx context.Context, chains []Chain) (*Result, error) {
	result := &Result{}

	for _, chain := range chains {
		for _, rule := range chain.Rules {
			err := rule(ctx)
			if err == nil {
				continue
			}

			if appErr, ok := apperrors.AsAppError(err); ok && appErr.Recoverable() {
				result.Errors = append(result.Errors, FieldError{
					Field:   chain.Field,
					Message: appErr.Message,
				})
				break
			}

			return nil, err
		}
	}

	return result, nil
}
