package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// Text is a string field that accepts any JSON scalar. Numbers and booleans
// are stringified; null, objects and arrays decode to "".
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*t = ""
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	case 't', 'f':
		*t = Text(data)
	case 'n', '{', '[':
		*t = ""
	default:
		// numbers keep their source spelling
		*t = Text(data)
	}
	return nil
}

// String implements fmt.Stringer.
func (t Text) String() string { return string(t) }

// Trim returns the text with surrounding whitespace removed.
func (t Text) Trim() string { return strings.TrimSpace(string(t)) }

// Or returns t, or def when t is blank.
func (t Text) Or(def string) string {
	if t.Trim() == "" {
		return def
	}
	return string(t)
}

// Number is a float field that also accepts numeric strings. Anything else
// decodes to 0.
type Number float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*n = 0
	if len(data) == 0 {
		return nil
	}
	s := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		*n = Number(f)
	}
	return nil
}

// List is an array field that treats any non-array value as absent. Elements
// that do not decode into T are dropped.
type List[T any] []T

// UnmarshalJSON implements json.Unmarshaler.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*l = nil
	if len(data) == 0 || data[0] != '[' {
		return nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	out := make(List[T], 0, len(raw))
	for _, r := range raw {
		var v T
		if err := json.Unmarshal(r, &v); err != nil && !partial(err, r) {
			continue
		}
		out = append(out, v)
	}
	*l = out
	return nil
}

// partial reports whether err only describes mistyped fields inside an
// object, in which case the remaining fields were still decoded.
func partial(err error, data []byte) bool {
	var typeErr *json.UnmarshalTypeError
	data = bytes.TrimSpace(data)
	return errors.As(err, &typeErr) && len(data) > 0 && data[0] == '{' && typeErr.Field != ""
}

// Texts returns the list elements as plain strings, skipping blanks.
func Texts(l List[Text]) []string {
	out := make([]string, 0, len(l))
	for _, t := range l {
		if t.Trim() != "" {
			out = append(out, string(t))
		}
	}
	return out
}
