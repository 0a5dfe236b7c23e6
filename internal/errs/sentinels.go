// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service/client layers.
var (
	// ErrNotFound indicates the requested diploma, challenge or object does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates the caller lacks the capability for the operation.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrAlreadyRevoked indicates a second revocation of the same diploma.
	ErrAlreadyRevoked = errors.New("already revoked")

	// ErrInvalidSignature indicates a failed wallet signature check or an unusable challenge.
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrCancelled indicates the wallet holder declined to sign.
	ErrCancelled = errors.New("authentication cancelled")

	// ErrStorageUnavailable indicates the content store could not be reached.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrInvalidArgument indicates malformed input (addresses, hashes, reasons).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrRateLimited indicates temporary login lock due to rate limiting.
	ErrRateLimited = errors.New("rate limited")

	// ErrAlreadyExists indicates a unique constraint violation.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInFlight indicates an issuance is already running on the pipeline.
	ErrInFlight = errors.New("issuance already in progress")

	// ErrDecrypt indicates a ciphertext, key or padding that does not decrypt.
	ErrDecrypt = errors.New("decryption failed")
)
