package accounts

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

type parsedFile[T any] struct {
	entries []*T
}

func (pf *parsedFile[T]) find(match func(*T) bool) *T {
	for _, e := range pf.entries {
		if match(e) {
			return e
		}
	}
	return nil
}

func (pf *parsedFile[T]) list() []T {
	out := make([]T, 0, len(pf.entries))
	for _, e := range pf.entries {
		out = append(out, *e)
	}
	return out
}

// loadFile parses every non-comment line with at least minFields colon
// separated fields. A nil entry with a nil error skips the line.
func loadFile[T any](path string, minFields int, parse func(parts []string) (*T, error)) (*parsedFile[T], error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	lines, err := readLines(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var pf parsedFile[T]
	for i, line := range lines {
		trim := strings.TrimSpace(line)
		if trim == "" || strings.HasPrefix(trim, "#") {
			continue
		}
		parts := parseColonLine(line)
		if len(parts) < minFields {
			continue
		}
		e, err := parse(parts)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, i+1, err)
		}
		if e != nil {
			pf.entries = append(pf.entries, e)
		}
	}
	return &pf, nil
}

func parseColonLine(line string) []string {
	// Keep trailing empty fields.
	return strings.Split(line, ":")
}

func readLines(r io.Reader) ([]string, error) {
	s := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	s.Buffer(buf, 1024*1024)
	var lines []string
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func atoi(field, ctx string) (int, error) {
	n, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("invalid int %q in %s: %w", field, ctx, err)
	}
	return n, nil
}
