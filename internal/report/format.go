package report

import "fmt"

// FormatAsList flattens a structured report into display strings of the form
// "[PRIORITY] action - rationale", followed by quick wins tagged
// "[QUICK WIN]".
func FormatAsList(rep *Report) []string {
	if rep == nil {
		return nil
	}

	formatted := make([]string, 0, len(rep.Recommendations)+len(rep.QuickWins))

	for _, rec := range rep.Recommendations {
		priority := rec.Priority
		if priority == "" {
			priority = PriorityMedium
		}
		line := fmt.Sprintf("[%s] %s", priority, rec.Recommendation)
		if rec.Rationale != "" {
			line += " - " + rec.Rationale
		}
		formatted = append(formatted, line)
	}

	for _, win := range rep.QuickWins {
		formatted = append(formatted, "[QUICK WIN] "+win)
	}

	return formatted
}
