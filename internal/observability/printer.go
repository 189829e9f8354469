// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jonathan/resume-ranker/internal/ranking"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted output for the ranked table.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintTable renders the ranked table in column-aligned form.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintTable(table ranking.Table) {
	if table.Empty() {
		fmt.Fprintln(p.out, "No candidates processed.")
		return
	}

	tw := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tNAME\tSIMILARITY\tSKILLS\tYEARS\tEXPERIENCE\tFINAL\tMATCHED")
	for i, c := range table.Candidates {
		fmt.Fprintf(tw, "%d\t%s\t%.4f\t%.4f\t%g\t%.4f\t%.3f\t%s\n",
			i+1, c.Name, c.Similarity, c.SkillScore, c.ExperienceYears,
			c.ExperienceScore, c.FinalScore, c.MatchedSkillsDisplay())
	}
	_ = tw.Flush()
}

// PrintCandidate outputs a per-candidate score breakdown box for verbose
// mode.
func (p *Printer) PrintCandidate(c ranking.Candidate) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Path:        %s\n", c.Path))
	sb.WriteString(fmt.Sprintf("Similarity:  %.4f\n", c.Similarity))
	sb.WriteString(fmt.Sprintf("Skill score: %.4f\n", c.SkillScore))
	sb.WriteString(fmt.Sprintf("Years:       %g (score %.4f)\n", c.ExperienceYears, c.ExperienceScore))
	sb.WriteString(fmt.Sprintf("Final:       %.3f\n", c.FinalScore))
	if len(c.MatchedSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Matched:     %s", c.MatchedSkillsDisplay()))
	} else {
		sb.WriteString("Matched:     (none)")
	}

	p.printBox(c.Name, sb.String())
}

// PrintJobSummary outputs the extracted job-description signals for verbose
// mode.
func (p *Printer) PrintJobSummary(jdSkills []string, embedded bool) {
	var sb strings.Builder

	if len(jdSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills:   %s\n", strings.Join(jdSkills, ", ")))
	} else {
		sb.WriteString("Skills:   (none detected)\n")
	}
	if embedded {
		sb.WriteString("Embedded: yes")
	} else {
		sb.WriteString("Embedded: no")
	}

	p.printBox("Job Description", sb.String())
}
