package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to wrapped command errors so callers can route on the
// failure class without string matching.
const (
	codeValidation   = "GARDEN_CMD_VALIDATION"
	codeCanceled     = "GARDEN_CMD_CANCELED"
	codeTimeout      = "GARDEN_CMD_TIMEOUT"
	codeContextError = "GARDEN_CMD_CONTEXT"
	codeExecution    = "GARDEN_CMD_EXECUTION"
)

// alreadyWrapped keeps double wrapping out of the error chain when a handler
// calls another handler.
func alreadyWrapped(err error) bool {
	return err == nil || goerrors.IsWrapped(err)
}

func wrapValidationError(err error) error {
	if alreadyWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "garden command rejected by validation").
		WithTextCode(codeValidation)
}

func wrapContextError(err error) error {
	if alreadyWrapped(err) {
		return err
	}
	switch {
	case errors.Is(err, context.Canceled):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "garden command canceled").
			WithTextCode(codeCanceled)
	case errors.Is(err, context.DeadlineExceeded):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "garden command timed out").
			WithTextCode(codeTimeout)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "garden command context failed").
			WithTextCode(codeContextError)
	}
}

func wrapExecuteError(err error) error {
	if alreadyWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "garden command failed").
		WithTextCode(codeExecution)
}
