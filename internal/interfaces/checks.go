// Package interfaces holds compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...
package interfaces

import (
	"github.com/openshelf/openshelf/internal/auth"
	"github.com/openshelf/openshelf/internal/services"
	"github.com/openshelf/openshelf/internal/storage"
	"github.com/openshelf/openshelf/internal/storage/providers/local"
)

// Blob storage implementations
var _ storage.Client = (*local.Client)(nil)

// Credential and session implementations
var _ services.Hasher = auth.PasswordHasher{}
var _ services.SessionIssuer = (*auth.TokenManager)(nil)
