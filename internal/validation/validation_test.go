package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistration_Valid(t *testing.T) {
	r := Registration("reader1", "reader@example.com", "secret-password", "secret-password")
	assert.True(t, r.OK())
	assert.Empty(t, r.Violations)
}

func TestRegistration_ShortUsername(t *testing.T) {
	// "あいう" is 3 characters but 9 bytes: length rules count characters.
	for _, username := range []string{"a", "ab", "abcd", "あいう"} {
		r := Registration(username, "reader@example.com", "secret-password", "secret-password")
		require.False(t, r.OK(), "username %q should fail", username)
		assert.Equal(t, Violation{Field: "username", Reason: ReasonTooShort}, r.Violations[0])
	}
}

func TestRegistration_MultibyteLengths(t *testing.T) {
	// 5 multibyte characters pass the username rule, 7 fail the password rule.
	r := Registration("あいうえお", "reader@example.com", "ひらがなかたか", "ひらがなかたか")
	require.False(t, r.OK())
	assert.NotContains(t, r.Violations, Violation{Field: "username", Reason: ReasonTooShort})
	assert.Contains(t, r.Violations, Violation{Field: "password", Reason: ReasonTooShort})
}

func TestRegistration_ShortPassword(t *testing.T) {
	r := Registration("reader1", "reader@example.com", "short", "short")
	require.False(t, r.OK())
	assert.Contains(t, r.Violations, Violation{Field: "password", Reason: ReasonTooShort})
}

func TestRegistration_PasswordMismatch(t *testing.T) {
	r := Registration("reader1", "reader@example.com", "secret-password", "other-password")
	require.False(t, r.OK())
	assert.Contains(t, r.Violations, Violation{Field: "password_confirmation", Reason: ReasonMismatch})
}

func TestRegistration_InvalidEmail(t *testing.T) {
	for _, email := range []string{"plain", "no-at.com", "a@b", "a b@c.com", "a@b c.com"} {
		r := Registration("reader1", email, "secret-password", "secret-password")
		require.False(t, r.OK(), "email %q should fail", email)
		assert.Contains(t, r.Violations, Violation{Field: "email", Reason: ReasonInvalid})
	}
}

func TestRegistration_MissingFields(t *testing.T) {
	r := Registration("", "", "", "")
	require.False(t, r.OK())
	assert.Equal(t, []Violation{
		{Field: "username", Reason: ReasonRequired},
		{Field: "email", Reason: ReasonRequired},
		{Field: "password", Reason: ReasonRequired},
	}, r.Violations)
}

func TestProfileUpdate(t *testing.T) {
	assert.True(t, ProfileUpdate("reader1", "reader@example.com").OK())
	assert.False(t, ProfileUpdate("abc", "reader@example.com").OK())
	assert.False(t, ProfileUpdate("reader1", "not-an-email").OK())
}

func TestPasswordUpdate(t *testing.T) {
	assert.True(t, PasswordUpdate("secret-password", "secret-password").OK())
	assert.False(t, PasswordUpdate("short", "short").OK())
	assert.False(t, PasswordUpdate("secret-password", "different").OK())
}

func TestBook(t *testing.T) {
	assert.True(t, Book("Dune", 1, 25, 3).OK())
	assert.True(t, Book("Dune", 1, 0, 0).OK())

	r := Book("", 0, -1, -2)
	require.False(t, r.OK())
	assert.Equal(t, []Violation{
		{Field: "title", Reason: ReasonRequired},
		{Field: "author_id", Reason: ReasonRequired},
		{Field: "purchase_price", Reason: ReasonNegative},
		{Field: "rental_price", Reason: ReasonNegative},
	}, r.Violations)
}

func TestRentalPeriod(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	assert.True(t, RentalPeriod(start, end).OK())
	assert.True(t, RentalPeriod(start, start).OK())

	r := RentalPeriod(end, start)
	require.False(t, r.OK())
	assert.Equal(t, Violation{Field: "return_date", Reason: ReasonOrdering}, r.Violations[0])

	// Absent dates signal "price unset" upstream, not a malformed request.
	assert.True(t, RentalPeriod(time.Time{}, end).OK())
	assert.True(t, RentalPeriod(start, time.Time{}).OK())
}
