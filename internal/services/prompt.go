package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildResumeSkillsPrompt creates the prompt for extracting skills from
// the (already segmented and truncated) resume text.
func (pb *PromptBuilder) BuildResumeSkillsPrompt(skillsText string) string {
	return fmt.Sprintf(`Extract ONLY the technical skills, programming languages, frameworks,
libraries, and tools from the text below.
Return as a clean comma-separated list.
Do NOT explain anything.

Text:
%s
`, skillsText)
}

// BuildJobRoleSkillsPrompt creates the prompt for listing the core
// skills a given job role requires.
func (pb *PromptBuilder) BuildJobRoleSkillsPrompt(jobRole string) string {
	return fmt.Sprintf(`You are an HR recruiter.

For a %s position, list ONLY the 8 to 12 MOST IMPORTANT
and REALISTIC core technical skills typically required.

Do NOT list every possible tool.
Do NOT include optional, advanced, DevOps, cloud, or niche tools
unless they are essential for this role.

Return ONLY a simple comma-separated list.
No explanations.
`, jobRole)
}

// BuildCompatibilityPrompt creates the prompt comparing resume skills
// against required job skills. The reply must be a single JSON object.
func (pb *PromptBuilder) BuildCompatibilityPrompt(resumeSkills, requiredSkills string) string {
	return fmt.Sprintf(`You are an expert ATS (Applicant Tracking System).

Compare the following resume skills with required job skills.

Resume Skills:
%s

Required Job Skills:
%s

Instructions:
1. Give a compatibility score from 0 to 100.
2. Determine job compatibility level (Excellent, Good, Average, Poor).
3. List missing skills (only from required skills not present in resume).
4. Give a short improvement suggestion (2 sentences max).

Return ONLY valid JSON in this format:

{
  "score": number,
  "compatibility": "string",
  "missingSkills": ["skill1", "skill2"],
  "suggestion": "text"
}
`, resumeSkills, requiredSkills)
}

// BuildQuizPrompt creates the prompt for generating the skills quiz.
// The reply must be a JSON array of question objects.
func (pb *PromptBuilder) BuildQuizPrompt(jobRole string) string {
	return fmt.Sprintf(`You are a technical interviewer. Generate exactly 25 multiple-choice questions to test a candidate's hard skills for the role of %s.
Return ONLY a valid JSON array of objects. Do not include any markdown formatting, explanations, or extra text.
Each object must have the exact format:
{
  "question": "question text",
  "options": ["option 1", "option 2", "option 3", "option 4"],
  "answer": "the exact text of the correct option"
}
`, jobRole)
}
