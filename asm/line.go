package asm

import (
	"strings"
)

const (
	commentMarker = "#"
	labelMarker   = ":"
)

// sourceLine is a line of source with its comment removed, split at the
// first label marker.
type sourceLine struct {
	Label    string
	HasLabel bool
	Body     string
}

// splitLine separates the optional label from the instruction text.
// Blank and comment lines return an empty sourceLine.
func splitLine(text string) (line sourceLine) {
	text, _, _ = strings.Cut(text, commentMarker)
	text = strings.TrimSpace(text)

	label, body, found := strings.Cut(text, labelMarker)
	if !found {
		line.Body = text
		return
	}

	line.Label = strings.TrimSpace(label)
	line.HasLabel = true
	line.Body = strings.TrimSpace(body)
	return
}

// Empty returns true if the line holds neither label nor instruction.
func (line sourceLine) Empty() bool {
	return !line.HasLabel && len(line.Body) == 0
}

// fields splits instruction text into tokens. Commas separate like spaces.
func fields(body string) []string {
	return strings.Fields(strings.ReplaceAll(body, ",", " "))
}
