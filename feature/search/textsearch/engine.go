package textsearch

import (
	"strings"
)

// LineMatch is a single matching line.
type LineMatch struct {
	LineNumber  int    `json:"line_number"`
	Content     string `json:"content"`
	Occurrences int    `json:"occurrences"`
}

// Result summarises every matching line of one search.
type Result struct {
	Filename         string      `json:"filename"`
	Word             string      `json:"word"`
	TotalMatches     int         `json:"total_matches"`
	TotalOccurrences int         `json:"total_occurrences"`
	Matches          []LineMatch `json:"matches"`
}

// Engine searches decoded text line by line. It holds no mutable state and is
// safe for concurrent use.
type Engine struct {
	decoders []Decoder
}

// NewEngine creates an engine using the given decoder chain, or DefaultDecoders.
func NewEngine(decoders ...Decoder) *Engine {
	if len(decoders) == 0 {
		decoders = DefaultDecoders
	}
	return &Engine{decoders: decoders}
}

// Search decodes raw and reports every line containing term. The only error
// it returns is ErrUndecodable.
func (e *Engine) Search(raw []byte, term string, caseSensitive bool) (*Result, error) {
	text, err := Decode(raw, e.decoders...)
	if err != nil {
		return nil, err
	}
	return SearchText(text, term, caseSensitive), nil
}

// SearchText runs the line scan over already decoded text.
func SearchText(text, term string, caseSensitive bool) *Result {
	needle := term
	if !caseSensitive {
		needle = strings.ToLower(term)
	}

	result := &Result{Word: term, Matches: []LineMatch{}}
	for i, line := range SplitLines(text) {
		haystack := line
		if !caseSensitive {
			haystack = strings.ToLower(line)
		}
		if !strings.Contains(haystack, needle) {
			continue
		}

		// strings.Count is non-overlapping: "aaa" holds "aa" once.
		n := strings.Count(haystack, needle)
		result.Matches = append(result.Matches, LineMatch{
			LineNumber:  i + 1,
			Content:     strings.TrimSpace(line),
			Occurrences: n,
		})
		result.TotalOccurrences += n
	}
	result.TotalMatches = len(result.Matches)

	return result
}

// SplitLines splits on "\n", "\r\n" and a lone "\r". A trailing line break
// does not start an extra empty line.
func SplitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, text[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, text[start:i])
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}
