package redis

import "errors"

var (
	// ErrKeyNotFound 键不存在
	ErrKeyNotFound = errors.New("redis: key not found")
)
