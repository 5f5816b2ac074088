// Package id generates prefixed, URL-safe identifiers.
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// FlagPrefix marks saved flag IDs.
const FlagPrefix = "flag"

// Generate creates a prefixed unique ID using NanoID.
// Format: prefix-nanoid (e.g., "flag-V1StGXR8_Z5jdHi6B-myT").
func Generate(prefix string) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + id, nil
}

// NewFlagID returns a fresh saved flag ID.
func NewFlagID() (string, error) {
	return Generate(FlagPrefix)
}
