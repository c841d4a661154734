package prompt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sirius-edu/sirius/internal/models"
	"github.com/sirius-edu/sirius/internal/prompt"
)

func TestBuildChallenge(t *testing.T) {
	got := prompt.BuildChallenge("Template for challenge:", prompt.ChallengeContext{
		Transcript:         "transcript for testing.",
		CourseProgress:     40,
		LastChallengeLevel: 2,
	})

	assert.Contains(t, got, "Template for challenge:")
	assert.Contains(t, got, "Transcripción del curso: transcript for testing.")
	assert.Contains(t, got, "Progreso del estudiante: 40")
	assert.Contains(t, got, "Nivel del reto: 2")
}

func TestBuildFeedback(t *testing.T) {
	got := prompt.BuildFeedback("Template for feedback:", prompt.FeedbackContext{
		ChallengeText: "Challenge text",
		AnswerText:    "Student answer",
		Materials: []models.Material{
			{Name: "Recursion basics", Link: "https://example.com/recursion"},
			{Name: "Slices", Link: "https://example.com/slices"},
		},
	})

	assert.Contains(t, got, "Template for feedback:")
	assert.Contains(t, got, "Reto enviado al estudiante: Challenge text")
	assert.Contains(t, got, "Respuesta del estudiante: Student answer")
	assert.Contains(t, got, "Recursion basics: https://example.com/recursion")
	assert.Contains(t, got, "Slices: https://example.com/slices")
}

func TestBuildFeedback_NoMaterials(t *testing.T) {
	got := prompt.BuildFeedback("Template for feedback:", prompt.FeedbackContext{
		ChallengeText: "Challenge text",
		AnswerText:    "Student answer",
	})

	assert.NotContains(t, got, "Materiales sugeridos")
}
