package main

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"bibsync/internal/match"
	"bibsync/internal/record"
)

const (
	formatTable = "table"
	formatText  = "text"
	formatYAML  = "yaml"
)

func validateFormat(format string) error {
	switch format {
	case formatTable, formatText, formatYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (expected table, text, or yaml)", format)
	}
}

func formatScore(score float64) string {
	return fmt.Sprintf("%.3f", score)
}

func yearOrDash(y record.Year) string {
	if y.IsEmpty() {
		return "-"
	}
	return y.String()
}

// yamlPair is the serialized form of a scored pair in YAML reports.
type yamlPair struct {
	Title      string  `yaml:"title"`
	OtherTitle string  `yaml:"other_title,omitempty"`
	Year       string  `yaml:"year,omitempty"`
	OtherYear  string  `yaml:"other_year,omitempty"`
	Score      float64 `yaml:"score"`
}

type yamlRecord struct {
	Title string `yaml:"title"`
	Year  string `yaml:"year,omitempty"`
	Venue string `yaml:"venue,omitempty"`
}

type yamlCompareReport struct {
	Matched        []yamlPair   `yaml:"matched"`
	Potential      []yamlPair   `yaml:"potential"`
	OnlyInPrimary  []yamlRecord `yaml:"only_in_primary"`
	OnlyInExternal []yamlRecord `yaml:"only_in_external"`
}

func toYAMLPairs(pairs []match.Pair) []yamlPair {
	out := make([]yamlPair, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, yamlPair{
			Title:      p.A.Title,
			OtherTitle: p.B.Title,
			Year:       p.A.Year.String(),
			OtherYear:  p.B.Year.String(),
			Score:      p.Score,
		})
	}
	return out
}

func toYAMLRecords(records []record.Record) []yamlRecord {
	out := make([]yamlRecord, 0, len(records))
	for _, r := range records {
		out = append(out, yamlRecord{Title: r.Title, Year: r.Year.String(), Venue: r.Venue})
	}
	return out
}

func writeCompareReport(w io.Writer, report match.Report, format string) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(yamlCompareReport{
			Matched:        toYAMLPairs(report.Matched),
			Potential:      toYAMLPairs(report.Potential),
			OnlyInPrimary:  toYAMLRecords(report.OnlyInA),
			OnlyInExternal: toYAMLRecords(report.OnlyInB),
		}); err != nil {
			return err
		}
		return enc.Close()
	case formatTable:
		return writeCompareTables(w, report)
	case formatText:
		return writeCompareText(w, report)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeCompareTables(w io.Writer, report match.Report) error {
	fmt.Fprintf(w, "Matched: %d  Potential: %d  Only in primary: %d  Only in external: %d\n",
		len(report.Matched), len(report.Potential), len(report.OnlyInA), len(report.OnlyInB))

	if len(report.Matched) > 0 {
		rows := make([][]string, 0, len(report.Matched))
		for _, p := range report.Matched {
			rows = append(rows, []string{p.A.Title, yearOrDash(p.A.Year), formatScore(p.Score)})
		}
		fmt.Fprintln(w, "\nMatched")
		fmt.Fprintln(w, renderTable([]string{"Title", "Year", "Score"}, rows, 2))
	}

	if len(report.Potential) > 0 {
		rows := make([][]string, 0, len(report.Potential))
		for _, p := range report.Potential {
			rows = append(rows, []string{p.A.Title, p.B.Title, formatScore(p.Score)})
		}
		fmt.Fprintln(w, "\nPotential matches (review needed)")
		fmt.Fprintln(w, renderTable([]string{"Primary title", "External title", "Score"}, rows, 2))
	}

	if len(report.OnlyInA) > 0 {
		fmt.Fprintln(w, "\nOnly in primary")
		fmt.Fprintln(w, renderTable([]string{"Title", "Year"}, recordRows(report.OnlyInA)))
	}
	if len(report.OnlyInB) > 0 {
		fmt.Fprintln(w, "\nOnly in external")
		fmt.Fprintln(w, renderTable([]string{"Title", "Year"}, recordRows(report.OnlyInB)))
	}
	return nil
}

func recordRows(records []record.Record) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{r.Title, yearOrDash(r.Year)})
	}
	return rows
}

func writeCompareText(w io.Writer, report match.Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Matched (%d)\n", len(report.Matched))
	for _, p := range report.Matched {
		fmt.Fprintf(&b, "  %s  [%s]  score=%s\n", p.A.Title, yearOrDash(p.A.Year), formatScore(p.Score))
	}

	fmt.Fprintf(&b, "\nPotential matches (%d)\n", len(report.Potential))
	for _, p := range report.Potential {
		fmt.Fprintf(&b, "  %s  <->  %s  score=%s\n", p.A.Title, p.B.Title, formatScore(p.Score))
	}

	fmt.Fprintf(&b, "\nOnly in primary (%d)\n", len(report.OnlyInA))
	for _, r := range report.OnlyInA {
		fmt.Fprintf(&b, "  %s  [%s]\n", r.Title, yearOrDash(r.Year))
	}

	fmt.Fprintf(&b, "\nOnly in external (%d)\n", len(report.OnlyInB))
	for _, r := range report.OnlyInB {
		fmt.Fprintf(&b, "  %s  [%s]\n", r.Title, yearOrDash(r.Year))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeDedupSummary(w io.Writer, report match.DedupReport) {
	fmt.Fprintf(w, "Truly new: %d  Duplicates: %d  Potential duplicates: %d\n",
		len(report.TrulyNew), len(report.Duplicates), len(report.PotentialDuplicates))

	if len(report.TrulyNew) > 0 {
		fmt.Fprintln(w, "\nTruly new")
		fmt.Fprintln(w, renderTable([]string{"Title", "Year"}, recordRows(report.TrulyNew)))
	}

	if len(report.PotentialDuplicates) > 0 {
		rows := make([][]string, 0, len(report.PotentialDuplicates))
		for _, d := range report.PotentialDuplicates {
			rows = append(rows, []string{d.New.Title, d.Existing.Title, formatScore(d.Score)})
		}
		fmt.Fprintln(w, "\nPotential duplicates (review needed)")
		fmt.Fprintln(w, renderTable([]string{"Batch title", "Existing title", "Score"}, rows, 2))
	}

	if len(report.Duplicates) > 0 {
		rows := make([][]string, 0, len(report.Duplicates))
		for _, d := range report.Duplicates {
			rows = append(rows, []string{d.New.Title, formatScore(d.Score)})
		}
		fmt.Fprintln(w, "\nSkipped duplicates")
		fmt.Fprintln(w, renderTable([]string{"Batch title", "Score"}, rows, 1))
	}
}
