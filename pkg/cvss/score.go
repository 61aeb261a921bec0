package cvss

import "math"

// Breakdown carries the intermediate values of a base score calculation.
// ImpactScore and ExploitabilityScore are rounded to one decimal the way
// NVD publishes them, they are never used to compute the base score.
type Breakdown struct {
	ISS                 float64 `json:"iss"`
	Impact              float64 `json:"impact"`
	Exploitability      float64 `json:"exploitability"`
	ImpactScore         float64 `json:"impactScore"`
	ExploitabilityScore float64 `json:"exploitabilityScore"`
	BaseScore           float64 `json:"baseScore"`
}

// BaseScore computes the CVSS v3.1 base score of v, a value in [0.0, 10.0]
// with one decimal
func BaseScore(v Vector) (float64, error) {
	b, err := Explain(v)
	if err != nil {
		return 0, err
	}
	return b.BaseScore, nil
}

// Explain returns the full breakdown of the base score of v
func Explain(v Vector) (Breakdown, error) {
	if err := v.Validate(); err != nil {
		return Breakdown{}, err
	}

	iss := 1 - (1-v.c.weight())*(1-v.i.weight())*(1-v.a.weight())

	var impact float64
	if v.s == ScopeChanged {
		impact = 7.52*(iss-0.029) - 3.25*math.Pow(iss-0.02, 15)
	} else {
		impact = 6.42 * iss
	}

	exploitability := 8.22 * v.av.weight() * v.ac.weight() * v.pr.weight(v.s) * v.ui.weight()

	b := Breakdown{
		ISS:                 iss,
		Impact:              impact,
		Exploitability:      exploitability,
		ImpactScore:         round1(math.Max(impact, 0)),
		ExploitabilityScore: round1(exploitability),
	}

	switch {
	case impact <= 0:
		b.BaseScore = 0
	case v.s == ScopeChanged:
		b.BaseScore = roundup(math.Min(1.08*(impact+exploitability), 10))
	default:
		b.BaseScore = roundup(math.Min(impact+exploitability, 10))
	}

	return b, nil
}

// roundup returns the smallest number, specified to one decimal place,
// that is equal to or higher than its input. The input is scaled to an
// integer first so that floating point noise such as 4.000000000000001
// does not push the result up to 4.1.
func roundup(x float64) float64 {
	i := int64(math.Round(x * 100000))
	if i%10000 == 0 {
		return float64(i) / 100000.0
	}
	return float64(i/10000+1) / 10.0
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
