package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kvesta/cvssbase/config"
	"github.com/kvesta/cvssbase/internal/verify"
	"github.com/kvesta/cvssbase/pkg/cvss"

	"github.com/olekukonko/tablewriter"
)

// Entry is one scored vector, Name is the template name or the input
type Entry struct {
	Name string `json:"name,omitempty"`
	cvss.Result
	Detail *cvss.Breakdown `json:"detail,omitempty"`
}

// ResolveResults prints scored vectors
func ResolveResults(w io.Writer, entries []*Entry) error {

	counts := map[cvss.Severity]int{}
	detail := false
	for _, e := range entries {
		counts[e.Severity] += 1
		if e.Detail != nil {
			detail = true
		}
	}

	fmt.Fprintf(w, "\nScored %s vectors | "+
		"Critical: %s High: %s Medium: %s Low: %s None: %d\n\n",
		config.Yellow(len(entries)),
		config.Red(counts[cvss.SeverityCritical]),
		config.Pink(counts[cvss.SeverityHigh]),
		config.Yellow(counts[cvss.SeverityMedium]),
		config.Green(counts[cvss.SeverityLow]),
		counts[cvss.SeverityNone])

	header := []string{"ID", "Name", "Vector", "Score", "Severity"}
	if detail {
		header = append(header, "Impact", "Exploitability")
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetRowLine(true)

	for i, e := range entries {
		row := []string{
			strconv.Itoa(i + 1), e.Name, e.VectorString,
			fmt.Sprintf("%.1f", e.Score), judgeSeverity(string(e.Severity)),
		}

		if detail {
			if e.Detail != nil {
				row = append(row, fmt.Sprintf("%.1f", e.Detail.ImpactScore),
					fmt.Sprintf("%.1f", e.Detail.ExploitabilityScore))
			} else {
				row = append(row, "", "")
			}
		}

		table.Append(row)
	}

	table.Render()

	return nil
}

// ResolveVector prints every metric of a single vector
func ResolveVector(w io.Writer, name string, v cvss.Vector) error {
	b, err := cvss.Explain(v)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%s: %s\n\n", name, config.Yellow(v.String()))

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})

	table.Append([]string{"Attack Vector", v.AttackVector().Name()})
	table.Append([]string{"Attack Complexity", v.AttackComplexity().Name()})
	table.Append([]string{"Privileges Required", v.PrivilegesRequired().Name()})
	table.Append([]string{"User Interaction", v.UserInteraction().Name()})
	table.Append([]string{"Scope", v.Scope().Name()})
	table.Append([]string{"Confidentiality", v.Confidentiality().Name()})
	table.Append([]string{"Integrity", v.Integrity().Name()})
	table.Append([]string{"Availability", v.Availability().Name()})
	table.Append([]string{"Impact Sub-Score", fmt.Sprintf("%.1f", b.ImpactScore)})
	table.Append([]string{"Exploitability Sub-Score", fmt.Sprintf("%.1f", b.ExploitabilityScore)})
	table.Append([]string{"Base Score", fmt.Sprintf("%.1f", b.BaseScore)})
	table.Append([]string{"Severity", judgeSeverity(string(cvss.SeverityOf(b.BaseScore)))})

	table.Render()

	return nil
}

// ResolveVerifyData prints the records the calculator disagrees with
func ResolveVerifyData(w io.Writer, r *verify.Report) error {

	fmt.Fprintf(w, "\nChecked %s records, skipped %d | Mismatches: %s\n\n",
		config.Yellow(r.Checked), r.Skipped, config.Red(len(r.Mismatches)))

	if len(r.Mismatches) == 0 {
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "CVEID", "Source", "Vector",
		"Published", "Computed", "Kind", "Detail"})
	table.SetRowLine(true)
	table.SetAutoMergeCellsByColumnIndex([]int{1})

	for i, m := range r.Mismatches {
		published := fmt.Sprintf("%.1f %s", m.PublishedScore, judgeSeverity(m.PublishedSeverity))
		computed := ""
		if m.Kind != verify.KindVector {
			computed = fmt.Sprintf("%.1f %s", m.Score, judgeSeverity(string(m.Severity)))
		}

		table.Append([]string{strconv.Itoa(i + 1), m.CVEID, m.Source, m.Vector,
			published, computed, m.Kind, m.Detail})
	}

	table.Render()

	return nil
}

func judgeSeverity(severity string) string {

	severityLow := strings.ToLower(severity)

	switch severityLow {
	case "critical":
		return config.Red("critical")
	case "high":
		return config.Pink("high")
	case "medium":
		return config.Yellow("medium")
	case "low":
		return config.Green("low")
	case "none":
		return config.Blue("none")
	default:
		// ignore
	}
	return "unknown"
}
