package models

import "encoding/json"

// ChallengeText is the structured payload stored verbatim in Challenge.Text
// and returned to clients. Optional keys default to zero values so payloads
// written before the programming_language/estimated_solution_time fields were
// added still decode.
type ChallengeText struct {
	Challenge             string   `json:"challenge"`
	Hints                 []string `json:"hints"`
	IsCodeChallenge       bool     `json:"is_code_challenge"`
	ProgrammingLanguage   string   `json:"programming_language,omitempty"`
	EstimatedSolutionTime int      `json:"estimated_solution_time,omitempty"`
	UseCasesInput         []string `json:"use_cases_input"`
	UseCasesOutput        []string `json:"use_cases_output"`
}

// ParseChallengeText decodes a persisted challenge payload. Legacy rows hold
// plain text instead of JSON; those are wrapped into a payload with only the
// challenge field set, matching how the admin form treated them.
func ParseChallengeText(raw string) ChallengeText {
	var ct ChallengeText
	if err := json.Unmarshal([]byte(raw), &ct); err != nil {
		return ChallengeText{Challenge: raw}
	}
	return ct
}

// Encode serializes the payload for persistence.
func (ct ChallengeText) Encode() (string, error) {
	b, err := json.Marshal(ct)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Feedback is the structured payload produced by feedback generation.
type Feedback struct {
	Feedback             string   `json:"feedback"`
	ScoreAverage         float64  `json:"score_average"`
	ClassRecommendations []string `json:"class_recommendations"`
}
