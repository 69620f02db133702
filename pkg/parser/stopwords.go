package parser

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// StopWords is loaded once at startup and read-only afterwards.
type StopWords map[string]struct{}

func (sw StopWords) Contains(term string) bool {
	_, ok := sw[term]
	return ok
}

// LoadStopWords reads one stop word per line. Blank lines are ignored.
func LoadStopWords(path string) (StopWords, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open stop word list: %w", err)
	}
	defer f.Close()

	stops := StopWords{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		stops[strings.ToLower(word)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stop word list: %w", err)
	}

	return stops, nil
}
