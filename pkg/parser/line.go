package parser

import (
	"regexp"
	"strings"
)

// DefaultHeaderPattern matches a header line of the export format:
// [DD.MM.YY, HH:MM:SS] Sender Name: Message text
// The four capture groups are date, time, sender, and message.
var DefaultHeaderPattern = regexp.MustCompile(`^\[(\d{2}\.\d{2}\.\d{2}), (\d{2}:\d{2}:\d{2})\] ([^:]+): (.+)$`)

// directionMarks strips the invisible Unicode directionality marks
// (U+200E, U+200F) that some exports insert around timestamps and
// names. They must not affect matching or stored text.
var directionMarks = strings.NewReplacer("‎", "", "‏", "")

// SplitLine splits one physical line of an export into its entry
// fields using the default header pattern. Lines that do not match
// the pattern produce a zero Entry; that is the normal outcome for
// continuation lines, not an error.
func SplitLine(line string) Entry {
	return splitLine(DefaultHeaderPattern, line)
}

func splitLine(pattern *regexp.Regexp, line string) Entry {
	line = directionMarks.Replace(line)

	m := pattern.FindStringSubmatch(line)
	if len(m) < 5 {
		return Entry{}
	}

	return Entry{
		Date:    m[1],
		Time:    m[2],
		Sender:  m[3],
		Message: strings.TrimSpace(m[4]),
	}
}
