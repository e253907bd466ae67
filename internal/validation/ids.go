// Package validation rejects malformed input before it reaches the
// domain layer or the store: identifier checks shared by every route
// that takes an ID, and the user payload schemas.
package validation

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrUserID  = errors.New("Error User ID is not valid")
	ErrGroupID = errors.New("Error Group ID is not valid")
)

// UserID parses a textual user identifier. The error message is the only
// thing distinguishing it from GroupID.
func UserID(raw string) (int64, error) {
	id, ok := parseID(raw)
	if !ok {
		return 0, ErrUserID
	}
	return id, nil
}

func GroupID(raw string) (int64, error) {
	id, ok := parseID(raw)
	if !ok {
		return 0, ErrGroupID
	}
	return id, nil
}

// parseID reads a base-10 integer from the leading numeric prefix of the
// string, ignoring anything after it ("42abc" parses as 42). A string
// with no leading digits fails.
func parseID(raw string) (int64, bool) {
	s := strings.TrimSpace(raw)
	start := 0
	if start < len(s) && (s[start] == '+' || s[start] == '-') {
		start++
	}
	end := start
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	id, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
