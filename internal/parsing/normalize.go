package parsing

import "strings"

// skillAliases maps common skill name variants to canonical names. Aliasing
// is an extraction-stage responsibility; the scorer only lower-cases and
// trims when comparing.
var skillAliases = map[string]string{
	"golang":     "Go",
	"go lang":    "Go",
	"javascript": "JavaScript",
	"js":         "JavaScript",
	"typescript": "TypeScript",
	"ts":         "TypeScript",
	"k8s":        "Kubernetes",
	"kubernetes": "Kubernetes",
	"react.js":   "React",
	"reactjs":    "React",
	"vue.js":     "Vue",
	"vuejs":      "Vue",
	"node.js":    "Node.js",
	"nodejs":     "Node.js",
	"postgres":   "PostgreSQL",
	"postgresql": "PostgreSQL",
}

// NormalizeSkillName maps a skill name to its canonical form.
func NormalizeSkillName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	if canonical, ok := skillAliases[strings.ToLower(name)]; ok {
		return canonical
	}

	return name
}

// NormalizeSkills canonicalizes and deduplicates a skill list, preserving
// first-occurrence order. Duplicates are detected case-insensitively.
func NormalizeSkills(skills []string) []string {
	normalized := make([]string, 0, len(skills))
	seen := make(map[string]bool, len(skills))

	for _, s := range skills {
		canonical := NormalizeSkillName(s)
		if canonical == "" {
			continue
		}
		key := strings.ToLower(canonical)
		if seen[key] {
			continue
		}
		seen[key] = true
		normalized = append(normalized, canonical)
	}

	return normalized
}

// normalizeRoleType coerces the extracted seniority tag into the known set,
// defaulting to "mid" when unspecified or unrecognized.
func normalizeRoleType(roleType string) string {
	switch strings.ToLower(strings.TrimSpace(roleType)) {
	case "entry":
		return "entry"
	case "mid":
		return "mid"
	case "senior":
		return "senior"
	case "lead":
		return "lead"
	case "principal":
		return "principal"
	default:
		return "mid"
	}
}
