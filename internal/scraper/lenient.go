package scraper

import (
	"encoding/json"
	"strconv"
	"strings"
)

// lenientInt decodes a JSON number or numeric string. Anything else
// (null, free text like a currency glyph) decodes to 0.
type lenientInt int

func (v *lenientInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*v = 0
		return nil
	}
	*v = lenientInt(n)
	return nil
}

// lenientText decodes a JSON string or number into its textual form.
// null decodes to the empty string.
type lenientText string

func (v *lenientText) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*v = lenientText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*v = lenientText(n.String())
		return nil
	}
	*v = ""
	return nil
}

// lenientFloat decodes a JSON number or numeric string into an optional
// float. Absent, null, empty or unparseable values stay nil, never 0.
type lenientFloat struct {
	value *float64
}

func (v *lenientFloat) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	v.value = &n
	return nil
}
