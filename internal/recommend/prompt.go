package recommend

import (
	"fmt"
	"strings"
)

// SystemPrompt is the instruction sent with every recommendation request
const SystemPrompt = "You are an academic advisor."

// BuildPrompt renders the materialized result into the user prompt
func BuildPrompt(interests []string, pref WorkloadPreference, result Result) string {
	var b strings.Builder

	b.WriteString("Recommend courses")
	if len(interests) > 0 {
		fmt.Fprintf(&b, " for a student interested in %s", strings.Join(interests, ", "))
	}
	if pref != "" {
		fmt.Fprintf(&b, " who prefers a %s workload", pref)
	}
	b.WriteString(".\n")

	if len(result) == 0 {
		b.WriteString("No catalog courses matched these interests.\n")
		return b.String()
	}

	b.WriteString("Candidate courses, best rated first:\n")
	for i, r := range result {
		fmt.Fprintf(&b, "%d. %s", i+1, r.Course.CourseCode)
		if r.Rating.Instructor != "" {
			fmt.Fprintf(&b, " (instructor: %s)", r.Rating.Instructor)
		}
		fmt.Fprintf(&b, " - instructor rating %.2f, workload %.2f hrs/week\n   %s\n",
			r.Rating.InstructorRating, r.Rating.Workload, r.Course.Description)
	}
	return b.String()
}
