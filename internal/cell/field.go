package cell

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownField is returned when a field key is not one of a, c, e, f, l, q.
var ErrUnknownField = errors.New("unknown field")

// Field identifies one value an access point reports in a scan.
type Field int

const (
	Address Field = iota
	Channel
	ESSID
	Frequency
	Level
	Quality

	fieldCount int = iota
)

type fieldInfo struct {
	key    string
	label  string
	header string
}

var fieldInfos = [fieldCount]fieldInfo{
	Address:   {key: "a", label: "Address", header: "Address"},
	Channel:   {key: "c", label: "Channel", header: "Channel"},
	ESSID:     {key: "e", label: "ESSID", header: "ESSID"},
	Frequency: {key: "f", label: "Frequency", header: "Frequency"},
	Level:     {key: "l", label: "Level", header: "Level(dBm)"},
	Quality:   {key: "q", label: "Quality", header: "Quality"},
}

// Fields returns all fields in key order.
func Fields() []Field {
	return []Field{Address, Channel, ESSID, Frequency, Level, Quality}
}

func (f Field) valid() bool { return f >= 0 && int(f) < fieldCount }

// String returns the display label.
func (f Field) String() string {
	if !f.valid() {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldInfos[f].label
}

// Key returns the single-character key used on the command line.
func (f Field) Key() string {
	if !f.valid() {
		return ""
	}
	return fieldInfos[f].key
}

// Header returns the table header label. It differs from the display label
// only for Level, whose header carries the unit.
func (f Field) Header() string {
	if !f.valid() {
		return ""
	}
	return fieldInfos[f].header
}

// ParseField maps a single-character key to its Field.
func ParseField(key string) (Field, error) {
	for i, info := range fieldInfos {
		if info.key == key {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want one of a, c, e, f, l, q)", ErrUnknownField, key)
}

// ParseFields parses an ordered list of field keys. Each element may hold a
// single key, a comma separated list ("a,e") or run-together keys ("ae").
func ParseFields(keys []string) ([]Field, error) {
	var fields []Field
	for _, k := range keys {
		for _, part := range strings.Split(k, ",") {
			part = strings.TrimSpace(part)
			for _, r := range part {
				f, err := ParseField(string(r))
				if err != nil {
					return nil, err
				}
				fields = append(fields, f)
			}
		}
	}
	return fields, nil
}

// Keys joins the keys of fields, the inverse of ParseFields.
func Keys(fields []Field) string {
	var sb strings.Builder
	for _, f := range fields {
		sb.WriteString(f.Key())
	}
	return sb.String()
}
