package dataset

import (
	"bufio"
	"fmt"
	"os"
)

// LoadLines reads path as one string record per line. Lines are compared
// byte-for-byte by downstream metrics (Hamming, Levenshtein); no UTF-8
// validation or normalisation is performed.
func LoadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyFile
	}

	return lines, nil
}
