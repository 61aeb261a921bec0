package cvss

import "strings"

var metricOrder = []string{"AV", "AC", "PR", "UI", "S", "C", "I", "A"}

// Parse decodes a CVSS v3.1 vector string. Metrics may appear in any order
// but each of the eight base metrics must appear exactly once.
func Parse(text string) (Vector, error) {
	var v Vector

	if !strings.HasPrefix(text, prefix) {
		seg := text
		if i := strings.IndexByte(seg, '/'); i >= 0 {
			seg = seg[:i]
		}
		return Vector{}, &ParseError{Input: text, Segment: seg, Pos: 0, Err: ErrPrefix}
	}

	seen := make(map[string]bool, len(metricOrder))
	pos := len(prefix)

	for _, seg := range strings.Split(text[len(prefix):], "/") {
		fail := func(err error) (Vector, error) {
			return Vector{}, &ParseError{Input: text, Segment: seg, Pos: pos, Err: err}
		}

		code, value, ok := strings.Cut(seg, ":")
		if !ok || code == "" || value == "" {
			return fail(ErrSegment)
		}

		if seen[code] {
			return fail(ErrDuplicateMetric)
		}

		known, valid := v.set(code, value)
		if !known {
			return fail(ErrUnknownMetric)
		}
		if !valid {
			return fail(ErrInvalidValue)
		}

		seen[code] = true
		pos += len(seg) + 1
	}

	var missing []string
	for _, code := range metricOrder {
		if !seen[code] {
			missing = append(missing, code)
		}
	}
	if len(missing) > 0 {
		return Vector{}, &ParseError{
			Input:   text,
			Segment: strings.Join(missing, ","),
			Pos:     len(text),
			Err:     ErrMissingMetric,
		}
	}

	return v, nil
}

// MustParse is Parse for vectors known at compile time, it panics on error
func MustParse(text string) Vector {
	v, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return v
}

// set stores value under the metric code, known is false for an
// unrecognized code and valid is false for a value outside the domain
func (v *Vector) set(code, value string) (known, valid bool) {
	switch code {
	case "AV":
		v.av, valid = lookup(attackVectorMap, value)
	case "AC":
		v.ac, valid = lookup(attackComplexityMap, value)
	case "PR":
		v.pr, valid = lookup(privilegesRequiredMap, value)
	case "UI":
		v.ui, valid = lookup(userInteractionMap, value)
	case "S":
		v.s, valid = lookup(scopeMap, value)
	case "C":
		v.c, valid = lookup(impactMap, value)
	case "I":
		v.i, valid = lookup(impactMap, value)
	case "A":
		v.a, valid = lookup(impactMap, value)
	default:
		return false, false
	}
	return true, valid
}
