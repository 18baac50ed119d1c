// Package codec converts between roster file lines and Character records.
//
// The dialect is a small subset of CSV: five comma-separated fields in the
// order name, profession, level, hp, equipment. Commas inside a pair of double
// quotes do not split the line; the quotes themselves are dropped on decode.
// Only the name is ever quoted on encode, and only when it contains a comma.
// Equipment items are pipe-separated within their field. Escaped quotes are
// not supported, so names must not contain a double quote.
package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mcoot/charroster/internal/model"
)

const (
	// Header is the optional first line of a roster file
	Header = "Name,Profession,Level,HP,Equipment"

	fieldDelimiter     = ','
	equipmentDelimiter = "|"
	quote              = '"'
	fieldCount         = 5
)

// IsHeader reports whether line is the roster header line
func IsHeader(line string) bool {
	return strings.TrimSuffix(line, "\r") == Header
}

// Parse decodes one line into a Character.
// Errors wrap model.ErrMalformedRecord.
func Parse(line string) (*model.Character, error) {
	fields, err := splitFields(strings.TrimSuffix(line, "\r"))
	if err != nil {
		return nil, err
	}
	if len(fields) != fieldCount {
		return nil, fmt.Errorf("%w: expected %d fields, got %d", model.ErrMalformedRecord, fieldCount, len(fields))
	}

	level, err := parseInt("level", fields[2])
	if err != nil {
		return nil, err
	}
	hp, err := parseInt("hp", fields[3])
	if err != nil {
		return nil, err
	}

	return model.NewCharacter(fields[0], fields[1], level, hp, parseEquipment(fields[4])), nil
}

// Format encodes a Character as one line, without a trailing newline
func Format(c *model.Character) string {
	var b strings.Builder

	if strings.ContainsRune(c.Name, fieldDelimiter) {
		b.WriteRune(quote)
		b.WriteString(c.Name)
		b.WriteRune(quote)
	} else {
		b.WriteString(c.Name)
	}

	b.WriteRune(fieldDelimiter)
	b.WriteString(c.Profession)
	b.WriteRune(fieldDelimiter)
	b.WriteString(strconv.Itoa(c.Level))
	b.WriteRune(fieldDelimiter)
	b.WriteString(strconv.Itoa(c.HP))
	b.WriteRune(fieldDelimiter)
	b.WriteString(strings.Join(c.Equipment, equipmentDelimiter))

	return b.String()
}

// splitFields scans the line once, toggling quote state on every quote
// character and splitting on delimiters seen outside quotes.
func splitFields(line string) ([]string, error) {
	fields := make([]string, 0, fieldCount)
	var field strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == quote:
			inQuotes = !inQuotes
		case r == fieldDelimiter && !inQuotes:
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteRune(r)
		}
	}

	if inQuotes {
		return nil, fmt.Errorf("%w: unterminated quote", model.ErrMalformedRecord)
	}

	return append(fields, field.String()), nil
}

func parseInt(name, field string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", model.ErrMalformedRecord, name, field)
	}
	return n, nil
}

// parseEquipment keeps empty items between pipes so that "a||b" round-trips.
// An empty field is an empty list.
func parseEquipment(field string) []string {
	if field == "" {
		return []string{}
	}
	return strings.Split(field, equipmentDelimiter)
}
