package cmd

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/manav03panchal/zenith/internal/errors"
	"github.com/manav03panchal/zenith/internal/model"
	"github.com/manav03panchal/zenith/internal/parser"
	"github.com/manav03panchal/zenith/internal/runtime"
)

// lookupErrors are store errors caused by the id the user typed.
var lookupErrors = []error{
	errors.ErrTaskNotFound,
	errors.ErrTransactionNotFound,
	errors.ErrAmbiguousID,
	errors.ErrSlotOutOfRange,
}

// storeError classifies an error returned by a store helper. Lookup failures
// become user errors and anything else is a failed write.
func storeError(rc *runtime.Context, err error, op, id string) error {
	if err == nil {
		return nil
	}
	for _, target := range lookupErrors {
		if errors.Is(err, target) {
			return errors.NewFieldError(target, "id", id, capitalize(target.Error()), "")
		}
	}
	return rc.CheckWrite(err, op)
}

// inputError converts parser errors into user errors with examples.
func inputError(err error) error {
	var pe *parser.ParseError
	if errors.As(err, &pe) {
		return pe.ToUserError()
	}
	return err
}

// printAction reports a successful mutation.
func printAction(rc *runtime.Context, status string, d model.Domain, id string, item any, message string) error {
	if rc.IsJSON() {
		return rc.JSONFormatter().PrintAction(status, d, id, item)
	}
	rc.CLIFormatter().Success(message)
	return nil
}

// anyChanged reports whether any of the named flags was set on the command line.
func anyChanged(flags *pflag.FlagSet, names ...string) bool {
	for _, name := range names {
		if flags.Changed(name) {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
