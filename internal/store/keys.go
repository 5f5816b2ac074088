package store

import (
	"fmt"
	"time"
)

// Key namespaces.
const (
	flagPrefix   = "flag:"
	renderPrefix = "render:"

	// indexInfix separates index keys from primary keys under one prefix.
	indexInfix = "idx:"
)

// indexKeyPrefix is the common prefix of every key of one index.
func indexKeyPrefix(prefix, name string) []byte {
	return fmt.Appendf(nil, "%s%s%s:", prefix, indexInfix, name)
}

// indexKey is prefix + "idx:" + name + ":" + value.
func indexKey(prefix, name, value string) []byte {
	return append(indexKeyPrefix(prefix, name), value...)
}

// sortableTimestamp formats t with fixed-width nanoseconds so keys sort
// lexicographically in time order.
// Example: 2024-01-15T10:30:00.123456789Z.
func sortableTimestamp(t time.Time) string {
	t = t.UTC()
	return t.Format("2006-01-02T15:04:05") + fmt.Sprintf(".%09d", t.Nanosecond()) + "Z"
}
