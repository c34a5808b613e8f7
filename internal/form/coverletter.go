package form

import (
	"fmt"
	"strings"
)

var (
	defaultSkills           = []string{"web development", "coding"}
	defaultResponsibilities = []string{"developing web applications"}
)

const coverLetterTemplate = `I am excited to apply for this internship opportunity. With my strong background in %s, I believe I can contribute effectively to your team.

My experience includes working on various projects that required similar skills to those mentioned in your job description. I am particularly interested in %s and eager to learn more in this field.

I am a quick learner, detail-oriented, and passionate about delivering high-quality work. I am confident that my technical skills and enthusiasm make me a strong candidate for this position.

Thank you for considering my application. I look forward to the opportunity to discuss how I can contribute to your team.`

// CoverLetter fills the fallback letter with up to three skills and the
// first responsibility of the job.
func CoverLetter(job JobAnalysis) string {
	skills := job.Skills
	if len(skills) == 0 {
		skills = defaultSkills
	}
	if len(skills) > 3 {
		skills = skills[:3]
	}

	responsibilities := job.Responsibilities
	if len(responsibilities) == 0 {
		responsibilities = defaultResponsibilities
	}

	return fmt.Sprintf(coverLetterTemplate, strings.Join(skills, ", "), responsibilities[0])
}
