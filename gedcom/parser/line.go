package parser

import (
	"os"
	"strconv"
	"strings"

	"github.com/teranos/kin/logger"
)

// line is one tokenized GEDCOM statement: "<level> <tag> [<value>]".
// The value keeps its internal spaces verbatim.
type line struct {
	level int
	tag   string
	value string
}

// readLines loads the source file and returns its non-empty lines with
// surrounding whitespace trimmed, in original order. A read failure is not
// fatal: the pipeline continues with zero lines, so the caller always gets
// a (possibly empty) slice.
func readLines(path string) []string {
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Warnw("GEDCOM file read failed, continuing with empty input",
			"path", path,
			"error", err)
		return nil
	}

	var lines []string
	for _, l := range strings.Split(string(raw), "\n") {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

// tokenize splits a normalized line into level, tag and value. Lines with
// fewer than two fields or a non-integer level are not errors — they are
// decorative or malformed input and are skipped by returning ok=false.
func tokenize(raw string) (line, bool) {
	parts := strings.SplitN(raw, " ", 3)
	if len(parts) < 2 {
		return line{}, false
	}

	level, err := strconv.Atoi(parts[0])
	if err != nil || level < 0 {
		return line{}, false
	}

	l := line{level: level, tag: parts[1]}
	if len(parts) > 2 {
		l.value = parts[2]
	}
	return l, true
}

// stripPointer extracts a record id from a GEDCOM pointer token by removing
// the @ delimiters and the type letter, so @I42@ with marker "I" becomes
// "42". Every occurrence of the marker is removed, matching the established
// output for well-formed pointers.
func stripPointer(token, marker string) string {
	token = strings.ReplaceAll(token, "@", "")
	return strings.ReplaceAll(token, marker, "")
}
