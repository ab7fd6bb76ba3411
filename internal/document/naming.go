package document

import (
	"fmt"
	"strings"
)

// FilenameStrategy decides which part of an identifier goes into a filename.
type FilenameStrategy int

const (
	// FullID keeps the whole identifier.
	FullID FilenameStrategy = iota
	// LastFour keeps the last four characters of the identifier.
	LastFour
)

// DefaultPrefix is the filename prefix used when none is configured.
const DefaultPrefix = "скрининг_"

// Extension is the file extension of generated documents.
const Extension = ".docx"

// String returns the configuration name of the strategy.
func (s FilenameStrategy) String() string {
	switch s {
	case LastFour:
		return "last4"
	default:
		return "full"
	}
}

// ParseFilenameStrategy parses a configuration value into a FilenameStrategy.
func ParseFilenameStrategy(s string) (FilenameStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full", "":
		return FullID, nil
	case "last4", "last-four", "last_four":
		return LastFour, nil
	default:
		return FullID, fmt.Errorf("invalid filename strategy: %s (valid: full, last4)", s)
	}
}

// Part returns the identifier portion used in the filename.
// Identifiers shorter than four characters are used whole.
func (s FilenameStrategy) Part(id string) string {
	if s != LastFour {
		return id
	}
	runes := []rune(id)
	if len(runes) <= 4 {
		return id
	}
	return string(runes[len(runes)-4:])
}

// Filename builds "<prefix><part>.docx" for an identifier.
func (s FilenameStrategy) Filename(prefix, id string) string {
	return prefix + s.Part(id) + Extension
}
