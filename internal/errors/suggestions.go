package errors

type hint struct {
	err  error
	text string
}

// hints are checked in order; the first sentinel in the chain wins.
var hints = []hint{
	{ErrAmbiguousID, "Type more characters of the id."},
	{ErrTaskNotFound, "Use 'zenith agenda' to see agenda items and their ids."},
	{ErrTransactionNotFound, "Use 'zenith finance' to see transactions and their ids."},
	{ErrSlotOutOfRange, "Highlight slots are numbered 1 to 3."},
	{ErrInvalidAmount, "Amounts must be positive numbers like '12.50'."},
	{ErrInvalidClock, "Try formats like '09:00', '14:30' or '9am'."},
	{ErrInvalidDate, "Try formats like '2024-01-31', 'today' or 'yesterday'."},
	{ErrInvalidDuration, "Try formats like '45', '45m', '1h30m' or '1.5h'."},
	{ErrDatabaseLocked, "Another zenith process (maybe the dashboard) has the database open. Close it and try again."},
	{ErrDiskFull, "Free up disk space and try again. The previous value is still stored."},
}

// Suggestion returns the stock hint for sentinel, or "".
func Suggestion(sentinel error) string {
	for _, h := range hints {
		if h.err == sentinel {
			return h.text
		}
	}
	return ""
}

// GetSuggestion returns a hint for err. A suggestion carried by a UserError
// beats the stock hint for its sentinel.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}
	if ue, ok := AsUserError(err); ok && ue.Suggestion != "" {
		return ue.Suggestion
	}
	for _, h := range hints {
		if Is(err, h.err) {
			return h.text
		}
	}
	return ""
}

// FormatError renders err with its hint on a second line.
func FormatError(err error) string {
	if s := GetSuggestion(err); s != "" {
		return err.Error() + "\n" + s
	}
	return err.Error()
}
