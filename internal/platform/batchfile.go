package platform

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrEmptyBatch is returned when a batch file contains no usable entries.
// Callers report it differently from read failures.
var ErrEmptyBatch = errors.New("batch file has no entries")

// ReadBatchList reads a batch file and returns its non-blank lines, trimmed,
// in file order. Duplicates are preserved. The format is plain UTF-8 text,
// one URL or path per line; there are no comments or escaping.
func ReadBatchList(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read batch file: %w", err)
	}
	defer file.Close()

	var entries []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		entries = append(entries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to read batch file: %w", err)
	}

	if len(entries) == 0 {
		return nil, ErrEmptyBatch
	}
	return entries, nil
}
