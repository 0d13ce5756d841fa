package domain

import "errors"

var (
	// ErrExpertNotFound signals a missing expert record.
	ErrExpertNotFound = errors.New("expert not found")
	// ErrProjectNotFound signals a missing project record.
	ErrProjectNotFound = errors.New("project not found")
	// ErrAlreadyExists signals a duplicate resource (e.g. expert email).
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidArgument signals a request that fails domain validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIndexUnavailable signals that the vector index is unreachable or
	// erroring. Match requests fail with this rather than degrading to an
	// unranked expert list.
	ErrIndexUnavailable = errors.New("vector index unavailable")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrVectorDimMismatch signals a vector dimension mismatch.
	ErrVectorDimMismatch = errors.New("vector dimension mismatch")
)
