package services

import (
	"regexp"
	"strings"
)

// Section headings that commonly follow a skills listing in a resume.
// The skills segment ends at the first line starting with one of these.
var nextSections = []string{
	"Projects", "Work Experience", "Professional Experience", "Experience",
	"Employment History", "Education", "Work History", "Certifications",
	"Achievements", "Awards", "Languages", "Interests", "Hobbies",
	"Summary", "Profile", "Objective", "Contact", "References",
	"Extracurricular", "Leadership", "Volunteer Work",
	"Publications", "Courses", "Trainings", "Licenses",
}

var (
	skillsHeadingRegex = regexp.MustCompile(`(?i)(skills & tools|technical skills|skills)[:\n]`)
	nextHeadingRegex   = regexp.MustCompile(`(?i)\n(` + strings.Join(nextSections, "|") + `)[:\n]`)
)

// ExtractSkillsSection isolates the substring of resume text most likely
// to contain the skills listing, bounded by a skills heading and the next
// recognized section heading. When no skills heading is found the whole
// text is returned so downstream extraction still sees everything.
func ExtractSkillsSection(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	loc := skillsHeadingRegex.FindStringIndex(text)
	if loc == nil {
		return strings.TrimSpace(text)
	}

	start := loc[1]
	rest := text[start:]

	end := len(text)
	if next := nextHeadingRegex.FindStringIndex(rest); next != nil {
		end = start + next[0]
	}

	return strings.TrimSpace(text[start:end])
}
