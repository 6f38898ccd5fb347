package main

import "regexp"

var _lineBreaks = regexp.MustCompile(`[\r\n]+`)

// splitLines splits a code block body into the lines to inject. Any run of
// newline and carriage-return characters is one separator, so blank lines
// produce no injection of their own.
func splitLines(body string) []string {
	var lines []string
	for _, line := range _lineBreaks.Split(body, -1) {
		if len(line) > 0 {
			lines = append(lines, line)
		}
	}
	return lines
}
