package cvss

import "strings"

const prefix = "CVSS:3.1/"

// Vector holds one value for each of the eight CVSS v3.1 base metrics.
// It is a comparable value type, two vectors are equal when all their
// metrics are equal.
type Vector struct {
	av AttackVector
	ac AttackComplexity
	pr PrivilegesRequired
	ui UserInteraction
	s  Scope
	c  Impact
	i  Impact
	a  Impact
}

// NewVector builds a vector from explicit metric values
func NewVector(av AttackVector, ac AttackComplexity, pr PrivilegesRequired,
	ui UserInteraction, s Scope, c, i, a Impact) Vector {

	return Vector{av: av, ac: ac, pr: pr, ui: ui, s: s, c: c, i: i, a: a}
}

func (v Vector) AttackVector() AttackVector             { return v.av }
func (v Vector) AttackComplexity() AttackComplexity     { return v.ac }
func (v Vector) PrivilegesRequired() PrivilegesRequired { return v.pr }
func (v Vector) UserInteraction() UserInteraction       { return v.ui }
func (v Vector) Scope() Scope                           { return v.s }
func (v Vector) Confidentiality() Impact                { return v.c }
func (v Vector) Integrity() Impact                      { return v.i }
func (v Vector) Availability() Impact                   { return v.a }

// String returns the canonical vector string, metrics always in
// AV, AC, PR, UI, S, C, I, A order
func (v Vector) String() string {
	var b strings.Builder
	b.Grow(len(prefix) + 36)

	b.WriteString(prefix)
	for n, f := range v.fields() {
		if n > 0 {
			b.WriteByte('/')
		}
		b.WriteString(f.code)
		b.WriteByte(':')
		b.WriteString(f.value)
	}

	return b.String()
}

// Validate reports every metric which is not a member of its domain
func (v Vector) Validate() error {
	var missing []string
	for _, f := range v.fields() {
		if !f.valid {
			missing = append(missing, f.code)
		}
	}

	if len(missing) > 0 {
		return &ValidationError{Metrics: missing}
	}
	return nil
}

func (v Vector) MarshalText() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return []byte(v.String()), nil
}

func (v *Vector) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

type field struct {
	code  string
	value string
	valid bool
}

func (v Vector) fields() [8]field {
	return [8]field{
		{"AV", v.av.String(), v.av.IsValid()},
		{"AC", v.ac.String(), v.ac.IsValid()},
		{"PR", v.pr.String(), v.pr.IsValid()},
		{"UI", v.ui.String(), v.ui.IsValid()},
		{"S", v.s.String(), v.s.IsValid()},
		{"C", v.c.String(), v.c.IsValid()},
		{"I", v.i.String(), v.i.IsValid()},
		{"A", v.a.String(), v.a.IsValid()},
	}
}
