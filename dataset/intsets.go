package dataset

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadIntSets reads path as one comma-separated integer set per line,
// discarding any set with fewer than edgeSizeFilter elements (pass 0 to
// keep every non-empty line). Empty lines are always skipped.
func LoadIntSets(path string, edgeSizeFilter int) ([]map[int]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	var sets []map[int]struct{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		fields := strings.Split(line, ",")
		set := make(map[int]struct{}, len(fields))
		for _, field := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrMalformedIntSet, field)
			}
			set[v] = struct{}{}
		}

		if len(set) < edgeSizeFilter {
			continue
		}
		sets = append(sets, set)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}
	if len(sets) == 0 {
		return nil, ErrEmptyFile
	}

	return sets, nil
}
