package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gnomegl/gitscore/internal/models"
)

func insightsSection(w io.Writer, t *terminalInfo, in models.Insights) {
	section(w, t, "CAREER INSIGHTS")

	if len(in.Strengths) > 0 {
		labelColor.Fprintln(w, "Strengths:")
		for _, s := range in.Strengths {
			fmt.Fprintf(w, "  %s %s %s\n", s.Icon, color.GreenString(s.Title), dimColor.Sprintf("- %s", s.Description))
		}
	}

	if len(in.Recommendations) > 0 {
		fmt.Fprintln(w)
		labelColor.Fprintln(w, "Recommendations:")
		for _, r := range in.Recommendations {
			pc := color.New(color.FgYellow)
			if r.Priority == models.PriorityHigh {
				pc = color.New(color.FgRed)
			}
			fmt.Fprintf(w, "  %s %s %s\n", r.Icon, r.Title, pc.Sprintf("[%s]", r.Priority))
			fmt.Fprintf(w, "    %s\n", r.Description)
			fmt.Fprintf(w, "    %s %s\n", color.CyanString("→"), r.Action)
		}
	}

	if len(in.SkillGaps) > 0 {
		fmt.Fprintln(w)
		labelColor.Fprintln(w, "Skill gaps:")
		for _, g := range in.SkillGaps {
			fmt.Fprintf(w, "  %s: %s %s\n", color.YellowString(g.Area), g.Suggestion, dimColor.Sprintf("(%s)", g.Importance))
		}
	}

	cur := in.CareerPath.Current
	fmt.Fprintln(w)
	role := cur.Level
	if cur.EstimatedRole != "" {
		role += ", " + cur.EstimatedRole
	}
	printField(w, "Career position", role)
	printField(w, "Specialization", cur.Specialization)
	for _, m := range in.CareerPath.Paths {
		fmt.Fprintf(w, "  %s %s\n", color.MagentaString(m.Timeframe+":"), m.Goal)
		if len(m.Steps) > 0 {
			fmt.Fprintf(w, "    %s\n", dimColor.Sprint(strings.Join(m.Steps, ", ")))
		}
	}

	plan := in.LearningPlan
	if len(plan.Immediate)+len(plan.ShortTerm)+len(plan.LongTerm) > 0 {
		fmt.Fprintln(w)
		labelColor.Fprintln(w, "Learning plan:")
		printTasks(w, "Now", plan.Immediate)
		printTasks(w, "Next", plan.ShortTerm)
		printTasks(w, "Later", plan.LongTerm)
	}

	ma := in.MarketAlignment
	fmt.Fprintln(w)
	printField(w, "Market alignment", fmt.Sprintf("%d/100", ma.Score))
	for _, s := range ma.Insights {
		fmt.Fprintf(w, "  %s %s\n", color.CyanString("›"), s)
	}
	printField(w, "Advice", ma.Recommendation)
}

func printTasks(w io.Writer, label string, tasks []models.LearningTask) {
	for _, task := range tasks {
		fmt.Fprintf(w, "  %-6s %s %s\n", label, task.Task, dimColor.Sprintf("(%s effort) %s", task.Effort, task.Description))
	}
}
