package batch

import (
	"bufio"
	"io"
	"strings"
)

// Line is one expression from the input with its 1-based line number.
type Line struct {
	No   int
	Text string
}

// ReadLines collects expression lines from r, skipping blank lines and
// lines whose first non-space character is '#'.
func ReadLines(r io.Reader) ([]Line, error) {
	var lines []Line
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	no := 0
	for sc.Scan() {
		no++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, Line{No: no, Text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
