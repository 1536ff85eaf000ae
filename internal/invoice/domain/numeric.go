package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Numeric is a form-entered numeric value. Forms submit numbers, numeric
// strings, or blanks interchangeably; Numeric keeps the raw token so blank
// rows stay blank, and coerces on compute. Invalid input coerces to 0, never
// to NaN and never to an error.
type Numeric string

// NumericFromFloat returns the Numeric representation of f.
func NumericFromFloat(f float64) Numeric {
	return Numeric(strconv.FormatFloat(f, 'f', -1, 64))
}

// NumericFromInt returns the Numeric representation of n.
func NumericFromInt(n int64) Numeric {
	return Numeric(strconv.FormatInt(n, 10))
}

// Float coerces to float64. Blank or malformed values count as 0.
func (n Numeric) Float() float64 {
	raw := strings.TrimSpace(string(n))
	if raw == "" {
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// IsZero reports whether the value is blank or coerces to 0.
func (n Numeric) IsZero() bool {
	return n.Float() == 0
}

// UnmarshalJSON accepts a JSON number, string, or null.
func (n *Numeric) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*n = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = Numeric(s)
		return nil
	}
	*n = Numeric(raw)
	return nil
}

// MarshalJSON writes numbers as numbers and anything else as a string, so the
// persisted form round-trips what the user typed.
func (n Numeric) MarshalJSON() ([]byte, error) {
	raw := strings.TrimSpace(string(n))
	if raw != "" {
		// ParseFloat accepts "NaN" and "Inf", which are not JSON tokens.
		if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return []byte(raw), nil
		}
	}
	return json.Marshal(string(n))
}
