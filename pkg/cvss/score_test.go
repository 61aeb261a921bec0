package cvss

import (
	"errors"
	"math"
	"testing"
)

func TestBaseScore(t *testing.T) {
	type args struct {
		s string
	}

	tests := []struct {
		name     string
		args     args
		want     float64
		severity Severity
	}{
		{
			name:     "networkUnchangedHigh",
			args:     args{s: "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H"},
			want:     9.8,
			severity: SeverityCritical,
		},
		{
			name:     "networkChangedHigh",
			args:     args{s: "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:C/C:H/I:H/A:H"},
			want:     10.0,
			severity: SeverityCritical,
		},
		{
			name:     "highPrivilegeChanged",
			args:     args{s: "CVSS:3.1/AV:N/AC:L/PR:H/UI:R/S:C/C:L/I:L/A:N"},
			want:     4.8,
			severity: SeverityMedium,
		},
		{
			name:     "highPrivilegeUnchanged",
			args:     args{s: "CVSS:3.1/AV:N/AC:L/PR:H/UI:R/S:U/C:L/I:L/A:N"},
			want:     3.5,
			severity: SeverityLow,
		},
		{
			name:     "lowPrivilegeChanged",
			args:     args{s: "CVSS:3.1/AV:N/AC:L/PR:L/UI:N/S:C/C:H/I:H/A:H"},
			want:     9.9,
			severity: SeverityCritical,
		},
		{
			name:     "lowPrivilegeUnchanged",
			args:     args{s: "CVSS:3.1/AV:N/AC:L/PR:L/UI:N/S:U/C:H/I:H/A:H"},
			want:     8.8,
			severity: SeverityHigh,
		},
		{
			name:     "highPrivilegeNoInteraction",
			args:     args{s: "CVSS:3.1/AV:N/AC:L/PR:H/UI:N/S:U/C:H/I:H/A:H"},
			want:     7.2,
			severity: SeverityHigh,
		},
		{
			name:     "highComplexity",
			args:     args{s: "CVSS:3.1/AV:N/AC:H/PR:N/UI:N/S:U/C:H/I:H/A:H"},
			want:     8.1,
			severity: SeverityHigh,
		},
		{
			name:     "adjacent",
			args:     args{s: "CVSS:3.1/AV:A/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H"},
			want:     8.8,
			severity: SeverityHigh,
		},
		{
			name:     "localUserInteraction",
			args:     args{s: "CVSS:3.1/AV:L/AC:L/PR:N/UI:R/S:U/C:H/I:H/A:H"},
			want:     7.8,
			severity: SeverityHigh,
		},
		{
			name:     "physical",
			args:     args{s: "CVSS:3.1/AV:P/AC:L/PR:N/UI:N/S:U/C:H/I:N/A:N"},
			want:     4.6,
			severity: SeverityMedium,
		},
		{
			name:     "lowest",
			args:     args{s: "CVSS:3.1/AV:L/AC:H/PR:H/UI:R/S:U/C:L/I:N/A:N"},
			want:     1.8,
			severity: SeverityLow,
		},
		{
			name:     "confidentialityIntegrityLow",
			args:     args{s: "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:L/I:L/A:N"},
			want:     6.5,
			severity: SeverityMedium,
		},
		{
			name:     "noImpact",
			args:     args{s: "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:N/I:N/A:N"},
			want:     0.0,
			severity: SeverityNone,
		},
		{
			name:     "noImpactChanged",
			args:     args{s: "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:C/C:N/I:N/A:N"},
			want:     0.0,
			severity: SeverityNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse(tt.args.s)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}

			got, err := BaseScore(v)
			if err != nil {
				t.Fatalf("BaseScore() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("BaseScore() got = %v, want %v", got, tt.want)
			}
			if sev := SeverityOf(got); sev != tt.severity {
				t.Errorf("SeverityOf() got = %v, want %v", sev, tt.severity)
			}
		})
	}
}

func TestRoundup(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "zero", in: 0, want: 0},
		{name: "exact", in: 4.0, want: 4.0},
		{name: "floatNoise", in: 4.000000000000001, want: 4.0},
		{name: "up", in: 4.02, want: 4.1},
		{name: "justAbove", in: 4.00001, want: 4.1},
		{name: "ten", in: 10, want: 10},
		{name: "reference", in: 9.76016, want: 9.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := roundup(tt.in); got != tt.want {
				t.Errorf("roundup() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExplain(t *testing.T) {
	tests := []struct {
		name    string
		s       string
		impact  float64
		exploit float64
		base    float64
	}{
		{
			name:    "unchanged",
			s:       "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H",
			impact:  5.9,
			exploit: 3.9,
			base:    9.8,
		},
		{
			name:    "changed",
			s:       "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:C/C:H/I:H/A:H",
			impact:  6.0,
			exploit: 3.9,
			base:    10.0,
		},
		{
			name:    "noImpact",
			s:       "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:C/C:N/I:N/A:N",
			impact:  0,
			exploit: 3.9,
			base:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Explain(MustParse(tt.s))
			if err != nil {
				t.Fatalf("Explain() error = %v", err)
			}
			if got.ImpactScore != tt.impact {
				t.Errorf("Explain() ImpactScore got = %v, want %v", got.ImpactScore, tt.impact)
			}
			if got.ExploitabilityScore != tt.exploit {
				t.Errorf("Explain() ExploitabilityScore got = %v, want %v", got.ExploitabilityScore, tt.exploit)
			}
			if got.BaseScore != tt.base {
				t.Errorf("Explain() BaseScore got = %v, want %v", got.BaseScore, tt.base)
			}
		})
	}
}

func TestBaseScoreIncomplete(t *testing.T) {
	v := NewVector(AttackVectorNetwork, AttackComplexityLow, PrivilegesRequiredNone,
		UserInteractionNone, ScopeInvalid, ImpactHigh, ImpactHigh, Impact(9))

	_, err := BaseScore(v)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("BaseScore() error = %v, want ValidationError", err)
	}
	if len(verr.Metrics) != 2 || verr.Metrics[0] != "S" || verr.Metrics[1] != "A" {
		t.Errorf("ValidationError.Metrics got = %v, want [S A]", verr.Metrics)
	}

	if _, err = BaseScore(Vector{}); err == nil {
		t.Errorf("BaseScore() of zero vector should fail")
	}
}

// Every combination of base metrics stays inside [0, 10] and scores zero
// when there is no impact.
func TestAllVectors(t *testing.T) {
	count := 0
	for _, v := range allVectors() {
		count++
		score, err := BaseScore(v)
		if err != nil {
			t.Fatalf("BaseScore(%s) error = %v", v, err)
		}

		if score < 0 || score > 10 {
			t.Errorf("BaseScore(%s) = %v out of range", v, score)
		}
		if math.Abs(score*10-math.Round(score*10)) > 1e-9 {
			t.Errorf("BaseScore(%s) = %v has more than one decimal", v, score)
		}

		noImpact := v.Confidentiality() == ImpactNone &&
			v.Integrity() == ImpactNone && v.Availability() == ImpactNone
		if noImpact && (score != 0 || SeverityOf(score) != SeverityNone) {
			t.Errorf("BaseScore(%s) = %v, want 0 for no impact", v, score)
		}
		if !noImpact && score == 0 {
			t.Errorf("BaseScore(%s) = 0 with impact", v)
		}

		parsed, err := Parse(v.String())
		if err != nil || parsed != v {
			t.Errorf("Parse(%s) got = %v, %v", v, parsed, err)
		}
	}

	if count != 4*2*3*2*2*3*3*3 {
		t.Errorf("allVectors() produced %d vectors", count)
	}
}

func allVectors() []Vector {
	var vs []Vector
	for av := AttackVectorNetwork; av <= AttackVectorPhysical; av++ {
		for ac := AttackComplexityLow; ac <= AttackComplexityHigh; ac++ {
			for pr := PrivilegesRequiredNone; pr <= PrivilegesRequiredHigh; pr++ {
				for ui := UserInteractionNone; ui <= UserInteractionRequired; ui++ {
					for s := ScopeUnchanged; s <= ScopeChanged; s++ {
						for c := ImpactNone; c <= ImpactHigh; c++ {
							for i := ImpactNone; i <= ImpactHigh; i++ {
								for a := ImpactNone; a <= ImpactHigh; a++ {
									vs = append(vs, NewVector(av, ac, pr, ui, s, c, i, a))
								}
							}
						}
					}
				}
			}
		}
	}
	return vs
}
