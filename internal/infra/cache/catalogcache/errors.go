package catalogcache

import "errors"

var (
	// ErrCacheMiss is returned when the key is not in the cache.
	ErrCacheMiss = errors.New("catalogcache: cache miss")

	// ErrInternal is returned on redis or serialization failures.
	ErrInternal = errors.New("catalogcache: internal error")
)
