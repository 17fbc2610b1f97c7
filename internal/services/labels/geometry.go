package labels

import (
	"errors"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// ErrOffsetOverflow is returned when re-anchoring an offset does not yield a finite value
var ErrOffsetOverflow = errors.New("top offset out of range")

// topOffsetPattern matches inline "top: <n>pt" declarations but not margin-top,
// padding-top and friends. Group 3 is the numeric value.
var topOffsetPattern = regexp.MustCompile(`(?i)(^|[^a-z0-9_-])(top\s*:\s*)([-+0-9.e]+)(pt)`)

// TryNormalizePositioning shifts every top offset so the topmost one sits at 0pt.
// Shifted values are written in the shortest decimal form that round-trips.
// Values that do not parse are left untouched. A fragment without offsets is
// returned unchanged.
func TryNormalizePositioning(fragment string) (string, error) {
	matches := topOffsetPattern.FindAllStringSubmatchIndex(fragment, -1)

	var values []float64
	for _, m := range matches {
		if v, ok := parseOffset(fragment[m[6]:m[7]]); ok {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return fragment, nil
	}
	lowest := slices.Min(values)

	var sb strings.Builder
	sb.Grow(len(fragment))
	last := 0
	for _, m := range matches {
		raw := fragment[m[6]:m[7]]
		sb.WriteString(fragment[last:m[6]])
		last = m[7]

		v, ok := parseOffset(raw)
		if !ok {
			sb.WriteString(raw)
			continue
		}
		shifted := v - lowest
		if math.IsInf(shifted, 0) || math.IsNaN(shifted) {
			return "", ErrOffsetOverflow
		}
		sb.WriteString(strconv.FormatFloat(shifted, 'f', -1, 64))
	}
	sb.WriteString(fragment[last:])
	return sb.String(), nil
}

// NormalizePositioning is TryNormalizePositioning with a fallback to the
// original fragment on failure
func NormalizePositioning(fragment string) string {
	out, err := TryNormalizePositioning(fragment)
	if err != nil {
		return fragment
	}
	return out
}

func parseOffset(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
