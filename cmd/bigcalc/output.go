package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/vmihailenco/msgpack/v5"
)

type outputFormat string

const (
	formatPretty  outputFormat = "pretty"
	formatJSON    outputFormat = "json"
	formatMsgpack outputFormat = "msgpack"
)

func readFormat(value string, allowed ...outputFormat) (outputFormat, error) {
	f := outputFormat(strings.TrimSpace(strings.ToLower(value)))
	names := make([]string, 0, len(allowed))
	for _, a := range allowed {
		if f == a {
			return f, nil
		}
		names = append(names, string(a))
	}
	return "", fmt.Errorf("unsupported format %q (must be %s)", value, strings.Join(names, ", "))
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeMsgpack(out io.Writer, v any) error {
	return msgpack.NewEncoder(out).Encode(v)
}

// padRight pads s with spaces to width terminal cells.
func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// columnWidth returns the widest cell count among values, capped at limit.
func columnWidth(values []string, limit int) int {
	w := 0
	for _, v := range values {
		w = max(w, runewidth.StringWidth(v))
	}
	return min(w, limit)
}
