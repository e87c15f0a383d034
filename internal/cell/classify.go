package cell

import (
	"strings"
	"unicode"
)

// Token is one field value pulled out of a scan line.
type Token struct {
	Field Field
	Value string
}

// Classify decides which field a line of scan text carries and extracts its
// raw value. The first matching test wins. A quality line yields both the
// Quality and the Level token. Unrecognized lines yield nothing.
func Classify(line string) []Token {
	switch {
	case strings.Contains(line, "Address"):
		if v, ok := parseAddress(line); ok {
			return []Token{{Address, v}}
		}
	case strings.Contains(line, "Channel:"):
		return []Token{{Channel, parseChannel(line)}}
	case strings.Contains(line, "Frequency:"):
		if v, ok := parseFrequency(line); ok {
			return []Token{{Frequency, v}}
		}
	case strings.Contains(line, "Quality="):
		q, l, ok := parseQuality(line)
		if !ok {
			return nil
		}
		tokens := []Token{{Quality, q}}
		if l != "" {
			tokens = append(tokens, Token{Level, l})
		}
		return tokens
	case strings.Contains(line, "ESSID"):
		return []Token{{ESSID, parseESSID(line)}}
	}
	return nil
}

// parseAddress returns the last whitespace-delimited token:
// "Cell 01 - Address: AA:BB:CC:DD:EE:01" -> "AA:BB:CC:DD:EE:01".
func parseAddress(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}
	return fields[len(fields)-1], true
}

// parseChannel returns the text after the last colon: "Channel:6" -> "6".
func parseChannel(line string) string {
	return strings.TrimRightFunc(afterLast(line, ":"), unicode.IsSpace)
}

// parseFrequency returns the colon suffix of the first token:
// "Frequency:2.437 GHz (Channel 6)" -> "2.437".
func parseFrequency(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}
	return afterLast(fields[0], ":"), true
}

// parseQuality handles "Quality=55/70  Signal level=-60 dBm". Quality is the
// numerator of the first token's ratio; level is the third token's value.
// Level is "" when the line has fewer than three tokens.
func parseQuality(line string) (quality, level string, ok bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", "", false
	}
	ratio := afterLast(fields[0], "=")
	quality, _, _ = strings.Cut(ratio, "/")
	if len(fields) >= 3 {
		level = afterLast(fields[2], "=")
	}
	return quality, level, true
}

// parseESSID handles `ESSID:"Home"` -> "Home". The value is taken after the
// last colon, so a name containing a colon keeps only its tail.
func parseESSID(line string) string {
	v := strings.TrimRightFunc(afterLast(line, ":"), unicode.IsSpace)
	return strings.Trim(v, `"`)
}

// afterLast returns the part of s after the last sep, or all of s when sep
// does not occur.
func afterLast(s, sep string) string {
	return s[strings.LastIndex(s, sep)+len(sep):]
}
