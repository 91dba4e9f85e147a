// Package errs is a thin seam over cockroachdb/errors so the rest of the
// codebase never imports the vendor package directly.
package errs

import (
	"fmt"
	"strings"

	cockroach "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cockroach.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cockroach.Wrap(err, msg)
}

// Mark attaches a sentinel to err so errors.Is(err, sentinel) holds while the
// original cause chain stays intact.
func Mark(err error, sentinel error) error {
	if err == nil {
		return sentinel
	}
	return cockroach.Mark(err, sentinel)
}

// ExtractStackLines renders the verbose %+v form of err, truncated to
// maxLines for log output. maxLines <= 0 means no truncation.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		return lines[:maxLines]
	}
	return lines
}
