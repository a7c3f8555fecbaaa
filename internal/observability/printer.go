package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-checker/internal/types"
)

// Printer renders analysis results for terminal output.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// PrintProgress renders a single progress event as a step line.
func (p *Printer) PrintProgress(event types.ProgressEvent) {
	if event.Type != types.EventProgress {
		return
	}
	marker := "..."
	if event.Status == types.StatusCompleted {
		marker = "done"
	}
	fmt.Fprintf(p.out, "[%d/%d] %s (%s)\n", event.Step, event.TotalSteps, event.Message, marker)
}

// PrintResult renders the full analysis report.
func (p *Printer) PrintResult(result *types.AnalysisResult) {
	p.rule()
	fmt.Fprintf(p.out, "Compatibility Report")
	if result.JobTitle != "" {
		fmt.Fprintf(p.out, ": %s", result.JobTitle)
	}
	fmt.Fprintln(p.out)
	p.rule()

	fmt.Fprintf(p.out, "Overall Score: %.2f / 100 (grade %s)\n", result.OverallScore, result.Grade)
	if result.SeniorityLevel != "" {
		fmt.Fprintf(p.out, "Seniority:     %s\n", result.SeniorityLevel)
	}

	if b := result.Breakdown; b != nil {
		fmt.Fprintln(p.out, "\nScore Breakdown:")
		fmt.Fprintf(p.out, "  Skill match:          %.2f\n", b.Deterministic.SkillMatchPercent)
		fmt.Fprintf(p.out, "  Experience alignment: %.2f\n", b.Deterministic.ExperienceAlignmentPercent)
		fmt.Fprintf(p.out, "  Semantic match:       %.2f\n", b.Semantic.SemanticMatchPercent)
		fmt.Fprintf(p.out, "  Soft skills:          %.2f\n", b.Semantic.SoftSkillsMatchPercent)
	}

	fmt.Fprintf(p.out, "\nExperience: %.1f years (required: %d)\n",
		result.ExperienceMatch.CandidateYears, result.ExperienceMatch.RequiredYears)
	fmt.Fprintf(p.out, "Education:  %s (required: %s)\n",
		result.EducationMatch.Candidate, result.EducationMatch.Required)

	p.printList("Strengths", result.Strengths)
	p.printList("Gaps", result.Gaps)
	p.printList("Recommendations", result.Recommendations)

	if len(result.SkillMatches) > 0 {
		fmt.Fprintln(p.out, "\nSkills:")
		for _, sm := range result.SkillMatches {
			mark := "missing"
			if sm.CandidateHas {
				mark = "matched"
			}
			fmt.Fprintf(p.out, "  - %-30s %s\n", sm.SkillName, mark)
		}
	}
}

func (p *Printer) printList(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(p.out, "\n%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(p.out, "  - %s\n", item)
	}
}

func (p *Printer) rule() {
	fmt.Fprintln(p.out, strings.Repeat("=", 60))
}
