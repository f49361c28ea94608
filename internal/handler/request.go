package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// LENIENT JSON FIELDS:
// Browser clients are not consistent about types: ids arrive as "rest-1" or
// as 42, ratings as 4 or "4", a comment may be a bare number. These two
// types accept either form and coerce to what the service expects. null decodes to the zero value, which the
// service then treats as "missing".

// flexString accepts a JSON string, number or boolean.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}

	if bytes.Equal(b, []byte("true")) || bytes.Equal(b, []byte("false")) {
		*s = flexString(b)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", b)
	}
	*s = flexString(n.String())
	return nil
}

// flexNumber accepts a JSON number or a numeric string. A string that does
// not parse becomes NaN, which the service rejects as a missing rating.
type flexNumber float64

func (n *flexNumber) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		v = strings.TrimSpace(v)
		if v == "" {
			*n = 0
			return nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			*n = flexNumber(math.NaN())
			return nil
		}
		*n = flexNumber(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("expected number, got %s", b)
	}
	*n = flexNumber(f)
	return nil
}
