package errors

import (
	"strings"
	"unicode"
)

// ValidateModulus checks that m can describe a cycle of nails.
// A cycle needs at least two positions for any chord to exist.
func ValidateModulus(m int) error {
	if m < 2 {
		return New(ErrCodeInvalidModulus, "modulus must be at least 2, got %d", m)
	}
	return nil
}

// ValidateDomain checks that d can hold a cut. Cuts join two distinct
// positions of 1..d, so d must be at least 2.
func ValidateDomain(d int) error {
	if d < 2 {
		return New(ErrCodeDomainTooSmall, "domain must hold at least 2 positions, got %d", d)
	}
	return nil
}

// ValidateEndpoint checks that p lies within the domain 0..d.
//
// Endpoints above d report ErrCodeDomainTooSmall, since the caller declared a
// domain that cannot hold the input. Negative endpoints report
// ErrCodePositionOutOfRange.
func ValidateEndpoint(p, d int) error {
	if p > d {
		return New(ErrCodeDomainTooSmall, "endpoint %d exceeds domain %d", p, d)
	}
	if p < 0 {
		return New(ErrCodePositionOutOfRange, "endpoint %d is negative", p)
	}
	return nil
}

// ValidateInputPath validates a puzzle input path given on the command line.
//
// Validation rules:
//   - Path cannot be empty ("-" means standard input and is accepted)
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidateInputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidOption, "input path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidOption, "input path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidOption, "input path contains invalid characters")
		}
	}

	if strings.TrimSpace(path) != path {
		return New(ErrCodeInvalidOption, "input path has surrounding whitespace: %q", path)
	}

	return nil
}
