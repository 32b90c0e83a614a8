package reducer

// Validation helpers return nil on success. Pass them through FirstError
// before returning them as an error.

// RequireNotEmpty checks that a string field is non-empty.
func RequireNotEmpty(field, errMsg string) *ActionError {
	if field == "" {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// RequirePositive checks that a value is greater than zero.
func RequirePositive(value int64, errMsg string) *ActionError {
	if value <= 0 {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// RequireNonNegative checks that a value is zero or greater.
func RequireNonNegative(value int64, errMsg string) *ActionError {
	if value < 0 {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// RequireRange checks that lo <= hi.
func RequireRange(lo, hi int64, errMsg string) *ActionError {
	if lo > hi {
		return NewFailedPrecondition(errMsg)
	}
	return nil
}

// FirstError returns the first non-nil check as an error, or nil.
func FirstError(checks ...*ActionError) error {
	for _, c := range checks {
		if c != nil {
			return c
		}
	}
	return nil
}
