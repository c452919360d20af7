// Package validation holds the pure per-entity validation rules. Rules are
// plain functions over candidate field values: no storage access, no side
// effects. The transaction layer invokes them before any save.
package validation

import (
	"regexp"
	"time"
	"unicode/utf8"
)

const (
	MinUsernameLength = 5
	MinPasswordLength = 8
)

// Matches the local@domain.tld shape: non-space characters around "@" and ".".
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Reason codes for field violations.
const (
	ReasonRequired = "required"
	ReasonTooShort = "too_short"
	ReasonInvalid  = "invalid_format"
	ReasonMismatch = "mismatch"
	ReasonNegative = "negative"
	ReasonOrdering = "end_before_start"
)

// Violation is a single field-level rule failure.
type Violation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Result is an ordered list of violations. An empty result means the
// candidate passed.
type Result struct {
	Violations []Violation
}

func (r Result) OK() bool {
	return len(r.Violations) == 0
}

func (r *Result) add(field, reason string) {
	r.Violations = append(r.Violations, Violation{Field: field, Reason: reason})
}

// Registration checks the fields of a registration request. The password
// here is the plaintext, checked before hashing.
func Registration(username, email, password, passwordConfirmation string) Result {
	var r Result
	checkUsername(&r, username)
	checkEmail(&r, email)
	checkNewPassword(&r, password, passwordConfirmation)
	return r
}

// ProfileUpdate re-checks username and email shape; the password is untouched.
func ProfileUpdate(username, email string) Result {
	var r Result
	checkUsername(&r, username)
	checkEmail(&r, email)
	return r
}

// PasswordUpdate checks a new password and its confirmation. Verifying the
// current password against the stored digest is the caller's job since it
// needs the hasher.
func PasswordUpdate(newPassword, confirmation string) Result {
	var r Result
	checkNewPassword(&r, newPassword, confirmation)
	return r
}

// Book checks a book candidate: title present, author reference present,
// prices non-negative. Whether the author id resolves is checked by the
// transaction layer against the store.
func Book(title string, authorID uint, purchasePrice, rentalPrice float64) Result {
	var r Result
	if title == "" {
		r.add("title", ReasonRequired)
	}
	if authorID == 0 {
		r.add("author_id", ReasonRequired)
	}
	if purchasePrice < 0 {
		r.add("purchase_price", ReasonNegative)
	}
	if rentalPrice < 0 {
		r.add("rental_price", ReasonNegative)
	}
	return r
}

// Author checks an author candidate.
func Author(name string) Result {
	var r Result
	if name == "" {
		r.add("name", ReasonRequired)
	}
	return r
}

// RentalPeriod rejects a return date strictly before the start date.
// Zero-valued dates are allowed through: an absent date means the price is
// left unset, not that the request is malformed.
func RentalPeriod(start, end time.Time) Result {
	var r Result
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		r.add("return_date", ReasonOrdering)
	}
	return r
}

func checkUsername(r *Result, username string) {
	if username == "" {
		r.add("username", ReasonRequired)
		return
	}
	if utf8.RuneCountInString(username) < MinUsernameLength {
		r.add("username", ReasonTooShort)
	}
}

func checkEmail(r *Result, email string) {
	if email == "" {
		r.add("email", ReasonRequired)
		return
	}
	if !emailPattern.MatchString(email) {
		r.add("email", ReasonInvalid)
	}
}

func checkNewPassword(r *Result, password, confirmation string) {
	if password == "" {
		r.add("password", ReasonRequired)
		return
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		r.add("password", ReasonTooShort)
	}
	if password != confirmation {
		r.add("password_confirmation", ReasonMismatch)
	}
}
