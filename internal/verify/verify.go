package verify

import (
	"context"
	"math"
	"sort"

	"github.com/kvesta/cvssbase/pkg/cvss"
	"github.com/kvesta/cvssbase/pkg/vulnlib"
)

const (
	KindScore    = "score"
	KindSeverity = "severity"
	KindVector   = "vector"
)

// Mismatch is a published record the calculator disagrees with
type Mismatch struct {
	CVEID             string        `json:"cveID"`
	Source            string        `json:"source"`
	Vector            string        `json:"vectorString"`
	PublishedScore    float64       `json:"publishedScore"`
	PublishedSeverity string        `json:"publishedSeverity"`
	Score             float64       `json:"score"`
	Severity          cvss.Severity `json:"severity"`
	Kind              string        `json:"kind"`
	Detail            string        `json:"detail,omitempty"`
}

type Report struct {
	Checked    int         `json:"checked"`
	Skipped    int         `json:"skipped"`
	Mismatches []*Mismatch `json:"mismatches"`
}

// Verify re-scores every v3.1 record, other versions are counted as skipped
func Verify(ctx context.Context, records []*vulnlib.Record) (*Report, error) {
	r := &Report{Mismatches: []*Mismatch{}}

	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return r, err
		}

		if !rec.Scorable() {
			r.Skipped++
			continue
		}

		r.Checked++
		if m := Check(rec); m != nil {
			r.Mismatches = append(r.Mismatches, m)
		}
	}

	sortMismatches(r.Mismatches)

	return r, nil
}

// Check returns nil when the computed score and severity match the record
func Check(rec *vulnlib.Record) *Mismatch {
	m := &Mismatch{
		CVEID:             rec.CVEID,
		Source:            rec.Source,
		Vector:            rec.Vector,
		PublishedScore:    rec.Score,
		PublishedSeverity: rec.Severity,
	}

	res, err := cvss.CalculateFromString(rec.Vector)
	if err != nil {
		m.Kind = KindVector
		m.Detail = err.Error()
		return m
	}

	m.Score = res.Score
	m.Severity = res.Severity

	if res.VectorString != rec.Vector {
		m.Detail = "canonical form " + res.VectorString
	}

	if math.Abs(res.Score-rec.Score) > 0.05 {
		m.Kind = KindScore
		return m
	}

	if sev, ok := cvss.ParseSeverity(rec.Severity); !ok || sev != res.Severity {
		m.Kind = KindSeverity
		return m
	}

	return nil
}

func sortMismatches(ms []*Mismatch) {
	sort.SliceStable(ms, func(i, j int) bool {
		if ms[i].Severity.Rank() != ms[j].Severity.Rank() {
			return ms[i].Severity.Rank() > ms[j].Severity.Rank()
		}
		return ms[i].CVEID < ms[j].CVEID
	})
}
