package services

import "strings"

// NormalizeSkillList splits a comma-separated model reply into trimmed,
// non-empty skill names, preserving order. Duplicates are kept as-is.
func NormalizeSkillList(raw string) []string {
	parts := strings.Split(raw, ",")

	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if s := strings.TrimSpace(part); s != "" {
			skills = append(skills, s)
		}
	}

	return skills
}

// CapSkillList truncates a skill list to at most max entries. Used as a
// hard safety cap on job-role extraction regardless of how many skills
// the model decided to return.
func CapSkillList(skills []string, max int) []string {
	if max > 0 && len(skills) > max {
		return skills[:max]
	}
	return skills
}

// JoinSkillList renders a skill list back into its display form.
func JoinSkillList(skills []string) string {
	return strings.Join(skills, ", ")
}
