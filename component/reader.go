package component

import (
	"bufio"
	"io"
	"strings"
)

// ParseComponents reads newline-separated component lines from r, skipping
// blank lines, and parses each with ParseLine. This is the stream-oriented
// counterpart of the external line parser spec.md treats as an out-of-core
// collaborator, exercised by cmd/classify.
func ParseComponents(r io.Reader) ([]Component, error) {
	var out []Component
	scanner := bufio.NewScanner(r)
	// Catalogs exercising the More family are tested up to 65536 lines;
	// keep the default token buffer but do not otherwise cap line count.
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, ParseLine(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
