package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validSubmission() Submission {
	return Submission{
		YourName:    "Alice",
		YourEmail:   "alice@x.com",
		YourPhone:   "5551234567",
		FriendName:  "Bob",
		FriendEmail: "bob@x.com",
		FriendPhone: "5559876543",
		Program:     "DataSci",
	}
}

func TestValidateAcceptsWellFormedSubmission(t *testing.T) {
	require.Empty(t, Validate(validSubmission()))
}

func TestValidateCollectsAllViolations(t *testing.T) {
	errs := Validate(Submission{})

	require.Len(t, errs, 7)
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	require.Equal(t, []string{
		"yourName", "yourEmail", "yourPhone",
		"friendName", "friendEmail", "friendPhone", "program",
	}, fields)
}

func TestValidateRequiredFields(t *testing.T) {
	tests := []struct {
		field   string
		mutate  func(*Submission)
		message string
	}{
		{"yourName", func(s *Submission) { s.YourName = "   " }, "Your name is required"},
		{"friendName", func(s *Submission) { s.FriendName = "" }, "Friend's name is required"},
		{"program", func(s *Submission) { s.Program = " " }, "Program selection is required"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			s := validSubmission()
			tt.mutate(&s)

			errs := Validate(s)

			require.Len(t, errs, 1)
			require.Equal(t, tt.field, errs[0].Field)
			require.Equal(t, tt.message, errs[0].Message)
		})
	}
}

func TestValidatePhone(t *testing.T) {
	valid := []string{"1234567890", "5551234567", " 5551234567 "}
	invalid := []string{"", "555-1234", "555123456", "55512345678", "555123456a", "+15551234567"}

	for _, phone := range valid {
		s := validSubmission()
		s.YourPhone = phone
		require.Empty(t, Validate(s), "expected %q to be a valid phone", phone)
	}
	for _, phone := range invalid {
		s := validSubmission()
		s.YourPhone = phone
		errs := Validate(s)
		require.Len(t, errs, 1, "expected %q to be rejected", phone)
		require.Equal(t, "yourPhone", errs[0].Field)
		require.Equal(t, "Please enter a valid 10-digit phone number", errs[0].Message)
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"alice@x.com", "a.b+c@sub.domain.org", " alice@x.com "}
	invalid := []string{"", "alice", "alice@", "@x.com", "alice@x", "alice x@x.com"}

	for _, email := range valid {
		s := validSubmission()
		s.FriendEmail = email
		require.Empty(t, Validate(s), "expected %q to be a valid email", email)
	}
	for _, email := range invalid {
		s := validSubmission()
		s.FriendEmail = email
		errs := Validate(s)
		require.Len(t, errs, 1, "expected %q to be rejected", email)
		require.Equal(t, "friendEmail", errs[0].Field)
		require.Equal(t, "Please enter a valid email address", errs[0].Message)
	}
}
