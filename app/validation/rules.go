package validation

import (
	"context"
	"regexp"

	apperrors "staff-auth/app/utils/errors"
	"staff-auth/app/utils/validator"
)

// Syntactic rule constructors. Each returns a Rule that fails with the given
// user-facing message; the async store-backed rules are written as closures
// by the chain builders.

// NotEmpty fails when the value is empty
func NotEmpty(value, message string) Rule {
	return func(ctx context.Context) error {
		if value == "" {
			return apperrors.NewBadRequest(message)
		}
		return nil
	}
}

// MinLength fails when the value is shorter than min bytes
func MinLength(value string, min int, message string) Rule {
	return func(ctx context.Context) error {
		if len(value) < min {
			return apperrors.NewBadRequest(message)
		}
		return nil
	}
}

// MaxLength fails when the value is longer than max bytes
func MaxLength(value string, max int, message string) Rule {
	return func(ctx context.Context) error {
		if len(value) > max {
			return apperrors.NewBadRequest(message)
		}
		return nil
	}
}

// Matches fails when the value does not match the pattern
func Matches(value string, pattern *regexp.Regexp, message string) Rule {
	return func(ctx context.Context) error {
		if !pattern.MatchString(value) {
			return apperrors.NewBadRequest(message)
		}
		return nil
	}
}

// Email fails when the value is not shaped like an email address
func Email(value, message string) Rule {
	return func(ctx context.Context) error {
		if !validator.IsValidEmail(value) {
			return apperrors.NewBadRequest(message)
		}
		return nil
	}
}
