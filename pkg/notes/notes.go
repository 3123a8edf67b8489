// Package notes reads puzzle notes: a list of nail positions separated by
// commas, such as "1,5,2,6,8,4,1,7,3".
//
// Whitespace around each position and around the whole text is ignored.
// An empty field, a non-integer field, or an empty text fails with
// errors.ErrCodeMalformedInput, naming the 1-based field that failed.
package notes

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/matzehuels/stringart/pkg/errors"
)

// Parse converts comma-separated integers into positions.
func Parse(text string) ([]int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New(errors.ErrCodeMalformedInput, "no positions found")
	}

	fields := strings.Split(text, ",")
	positions := make([]int, 0, len(fields))
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			return nil, errors.New(errors.ErrCodeMalformedInput, "field %d is empty", i+1)
		}
		p, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "field %d", i+1)
		}
		positions = append(positions, p)
	}
	return positions, nil
}

// Read parses everything r yields.
func Read(r io.Reader) ([]int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "read notes")
	}
	return Parse(string(data))
}

// ReadFile parses the notes stored at path. A missing file fails with
// errors.ErrCodeFileNotFound.
func ReadFile(path string) ([]int, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "notes %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "read %s", path)
	}
	return Parse(string(data))
}

// MaxPosition returns the largest position, or 0 for an empty list.
// It is the smallest linear domain that holds every position.
func MaxPosition(positions []int) int {
	m := 0
	for _, p := range positions {
		m = max(m, p)
	}
	return m
}
