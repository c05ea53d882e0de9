package validation

import (
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^\d{10}$`)
)

// Submission carries the raw referral form fields as posted by the client.
type Submission struct {
	YourName    string `json:"yourName"`
	YourEmail   string `json:"yourEmail"`
	YourPhone   string `json:"yourPhone"`
	FriendName  string `json:"friendName"`
	FriendEmail string `json:"friendEmail"`
	FriendPhone string `json:"friendPhone"`
	Program     string `json:"program"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate checks every field independently and collects all violations,
// so the client can show every problem at once.
func Validate(s Submission) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(s.YourName) == "" {
		errs = append(errs, FieldError{"yourName", "Your name is required"})
	}
	if !emailRegex.MatchString(strings.TrimSpace(s.YourEmail)) {
		errs = append(errs, FieldError{"yourEmail", "Please enter a valid email address"})
	}
	if !phoneRegex.MatchString(strings.TrimSpace(s.YourPhone)) {
		errs = append(errs, FieldError{"yourPhone", "Please enter a valid 10-digit phone number"})
	}
	if strings.TrimSpace(s.FriendName) == "" {
		errs = append(errs, FieldError{"friendName", "Friend's name is required"})
	}
	if !emailRegex.MatchString(strings.TrimSpace(s.FriendEmail)) {
		errs = append(errs, FieldError{"friendEmail", "Please enter a valid email address"})
	}
	if !phoneRegex.MatchString(strings.TrimSpace(s.FriendPhone)) {
		errs = append(errs, FieldError{"friendPhone", "Please enter a valid 10-digit phone number"})
	}
	if strings.TrimSpace(s.Program) == "" {
		errs = append(errs, FieldError{"program", "Program selection is required"})
	}

	return errs
}
