package app

import (
	"strconv"
	"strings"
)

// appendSourceFooter appends a footer recording where the text came from.
func appendSourceFooter(text string, source string, digest string, hasHeader bool, comparisons int) string {
	var b strings.Builder
	b.WriteString(text)
	b.WriteString("\n---\n")
	b.WriteString("Source: ")
	b.WriteString(strings.TrimSpace(source))
	b.WriteString("; blake3=")
	b.WriteString(digest)
	b.WriteString("; header=")
	b.WriteString(strconv.FormatBool(hasHeader))
	b.WriteString("; comparisons=")
	b.WriteString(strconv.Itoa(comparisons))
	b.WriteString("\n")
	return b.String()
}
