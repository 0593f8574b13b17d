// Package report renders a computed round table for people and tools.
package report

import (
	"fmt"
	"strings"
)

// Format names an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
	FormatXLSX Format = "xlsx"
	FormatPNG  Format = "png"
)

// Column headers, in display order.
var Columns = []string{"Round", "Start Time (MM:SS)", "End Time (MM:SS)", "Round Time (MM:SS)"}

// ParseFormat maps a name to a Format. The empty string means JSON.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatYAML, FormatText, FormatXLSX, FormatPNG:
		return f, nil
	case "txt", "table":
		return FormatText, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// ContentType is the MIME type for f.
func (f Format) ContentType() string {
	switch f {
	case FormatYAML:
		return "application/yaml"
	case FormatText:
		return "text/plain; charset=utf-8"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPNG:
		return "image/png"
	}
	return "application/json"
}
