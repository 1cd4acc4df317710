// Package jwt provides access token signing and validation for the Inkline
// blog API.
//
// Tokens are HMAC-SHA256 signed JWTs carrying the user id and email. The
// Service is constructed once at startup with the shared secret and
// injected wherever tokens are issued (auth service) or checked (auth
// middleware).
//
// Validation failures map to sentinel errors (ErrTokenExpired,
// ErrInvalidSignature, ErrInvalidToken) so callers can translate them to
// precise API responses with errors.Is.
package jwt
