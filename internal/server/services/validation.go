package services

import (
	"regexp"
	"strings"

	"github.com/dmitrijs2005/secureconnect/internal/common"
)

// Account-creation policy. The message texts are part of the public
// contract consumed by the web client and must not be reworded.
const (
	MsgUsernameRequired   = "Username is required"
	MsgUsernameTooShort   = "Username must be at least 8 characters long"
	MsgPasswordRequired   = "Password is required"
	MsgPasswordComplexity = "Password must contain at least one lowercase letter, one uppercase letter, and one special character"
)

const minUsernameLength = 8

var (
	lowerRe   = regexp.MustCompile(`[a-z]`)
	upperRe   = regexp.MustCompile(`[A-Z]`)
	specialRe = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

// ValidationError reports, per field, the first policy rule that failed.
// It unwraps to common.ErrorValidation so callers can classify it with
// errors.Is without inspecting the field map.
type ValidationError struct {
	Username string
	Password string
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, 2)
	if e.Username != "" {
		msgs = append(msgs, e.Username)
	}
	if e.Password != "" {
		msgs = append(msgs, e.Password)
	}
	return strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error {
	return common.ErrorValidation
}

// FirstMessage returns the username message if present, otherwise the
// password message. It mirrors the field order of the signup form.
func (e *ValidationError) FirstMessage() string {
	if e.Username != "" {
		return e.Username
	}
	return e.Password
}

// ValidateUsername returns the first failing rule's message, or "".
func ValidateUsername(username string) string {
	if username == "" {
		return MsgUsernameRequired
	}
	if len(username) < minUsernameLength {
		return MsgUsernameTooShort
	}
	return ""
}

// ValidatePassword returns the first failing rule's message, or "".
// The policy requires a lowercase letter, an uppercase letter, and a
// special character; there is no minimum length rule.
func ValidatePassword(password string) string {
	if password == "" {
		return MsgPasswordRequired
	}
	if !lowerRe.MatchString(password) || !upperRe.MatchString(password) || !specialRe.MatchString(password) {
		return MsgPasswordComplexity
	}
	return ""
}

// ValidateCredentials checks both fields and returns a *ValidationError
// carrying every failing field, or nil when both pass.
func ValidateCredentials(username, password string) error {
	ve := &ValidationError{
		Username: ValidateUsername(username),
		Password: ValidatePassword(password),
	}
	if ve.Username == "" && ve.Password == "" {
		return nil
	}
	return ve
}

// PasswordStrength scores a password 0-100: 25 points each for length of
// at least 8, a lowercase letter, an uppercase letter, and a special
// character. The score is purely advisory and never gates signup.
func PasswordStrength(password string) int {
	strength := 0
	if len(password) >= 8 {
		strength += 25
	}
	if lowerRe.MatchString(password) {
		strength += 25
	}
	if upperRe.MatchString(password) {
		strength += 25
	}
	if specialRe.MatchString(password) {
		strength += 25
	}
	return strength
}
