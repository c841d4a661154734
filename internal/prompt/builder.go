// Package prompt assembles provider prompts from stored templates and
// contextual data. Construction is plain concatenation; all model-side
// behavior lives in the template text itself.
package prompt

import (
	"fmt"
	"strings"

	"github.com/sirius-edu/sirius/internal/models"
)

// ChallengeContext is the state appended to a challenge template.
type ChallengeContext struct {
	Transcript         string
	CourseProgress     int
	LastChallengeLevel int
}

// BuildChallenge renders the prompt for generating a new challenge.
// Labels are in Spanish to match the stored course content.
func BuildChallenge(template string, ctx ChallengeContext) string {
	var b strings.Builder
	b.WriteString(template)
	fmt.Fprintf(&b, "\nTranscripción del curso: %s", ctx.Transcript)
	fmt.Fprintf(&b, "\nProgreso del estudiante: %d", ctx.CourseProgress)
	fmt.Fprintf(&b, "\nNivel del reto: %d", ctx.LastChallengeLevel)
	return b.String()
}

// FeedbackContext is the state appended to a feedback template.
type FeedbackContext struct {
	ChallengeText string
	AnswerText    string
	Materials     []models.Material
}

// BuildFeedback renders the prompt for generating feedback on an answer.
// Suggested materials are listed one per line as "name: link" so the model
// can recommend them back to the student.
func BuildFeedback(template string, ctx FeedbackContext) string {
	var b strings.Builder
	b.WriteString(template)
	fmt.Fprintf(&b, "\nReto enviado al estudiante: %s", ctx.ChallengeText)
	fmt.Fprintf(&b, "\nRespuesta del estudiante: %s", ctx.AnswerText)
	if len(ctx.Materials) > 0 {
		b.WriteString("\nMateriales sugeridos:")
		for _, m := range ctx.Materials {
			fmt.Fprintf(&b, "\n%s: %s", m.Name, m.Link)
		}
	}
	return b.String()
}
