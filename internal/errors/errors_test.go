package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// UserError Tests
// =============================================================================

func TestNewUserError(t *testing.T) {
	err := NewUserError("invalid input", "try again")
	assert.NotNil(t, err)
	assert.Equal(t, "invalid input", err.Message)
	assert.Equal(t, "try again", err.Suggestion)
}

func TestNewFieldError(t *testing.T) {
	err := NewFieldError(ErrInvalidAmount, "amount", "-3", "Amount must be positive", "")
	assert.Equal(t, "amount", err.Field)
	assert.Equal(t, "Amount must be positive: '-3'", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidAmount))
}

func TestUserErrorError(t *testing.T) {
	t.Run("without_field", func(t *testing.T) {
		err := NewUserError("invalid input", "")
		assert.Equal(t, "invalid input", err.Error())
	})

	t.Run("with_field", func(t *testing.T) {
		err := NewFieldError(nil, "time", "25:00", "invalid time", "")
		assert.Equal(t, "invalid time: '25:00'", err.Error())
	})
}

// =============================================================================
// SystemError Tests
// =============================================================================

func TestSystemError(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := &SystemError{Message: "cannot open database", Cause: cause}
	assert.Equal(t, "cannot open database", err.Error())
	assert.True(t, errors.Is(err, cause))

	withOp := NewSystemErrorWithOp("open", "cannot open database", ErrDatabaseLocked)
	assert.Equal(t, "cannot open database during open", withOp.Error())
	assert.True(t, errors.Is(withOp, ErrDatabaseLocked))
}

func TestClassification(t *testing.T) {
	user := Wrapf(NewUserError("bad", ""), "agenda add")
	system := Wrapf(NewSystemErrorWithOp("write", "disk", nil), "journal")

	assert.True(t, IsUserError(user))
	assert.False(t, IsSystemError(user))
	assert.True(t, IsSystemError(system))
	assert.False(t, IsUserError(system))

	ue, ok := AsUserError(user)
	assert.True(t, ok)
	assert.Equal(t, "bad", ue.Message)
}

// =============================================================================
// Wrap Tests
// =============================================================================

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrapf(nil, "context %d", 1))

	err := Wrapf(ErrTaskNotFound, "item %s", "abc")
	assert.Equal(t, "item abc: agenda item not found", err.Error())
	assert.True(t, Is(err, ErrTaskNotFound))
}

// =============================================================================
// Suggestion Tests
// =============================================================================

func TestGetSuggestion(t *testing.T) {
	assert.Equal(t, "", GetSuggestion(nil))
	assert.Equal(t, "", GetSuggestion(fmt.Errorf("unknown")))

	assert.Contains(t, GetSuggestion(Wrapf(ErrTaskNotFound, "done")), "zenith agenda")

	// The error's own suggestion wins over the sentinel mapping.
	err := NewFieldError(ErrInvalidAmount, "amount", "x", "bad amount", "use digits")
	assert.Equal(t, "use digits", GetSuggestion(err))

	// Without its own suggestion the sentinel mapping applies.
	err = NewFieldError(ErrInvalidAmount, "amount", "x", "bad amount", "")
	assert.Equal(t, Suggestion(ErrInvalidAmount), GetSuggestion(err))
}

func TestAmbiguousHintWins(t *testing.T) {
	err := Wrapf(ErrAmbiguousID, "agenda item %q", "1")
	assert.Equal(t, "Type more characters of the id.", GetSuggestion(err))
	assert.Empty(t, Suggestion(ErrRequiredField))
}

func TestFormatError(t *testing.T) {
	msg := FormatError(ErrTransactionNotFound)
	assert.Contains(t, msg, "transaction not found")
	assert.Contains(t, msg, "zenith finance")

	assert.Equal(t, "plain", FormatError(fmt.Errorf("plain")))
}
