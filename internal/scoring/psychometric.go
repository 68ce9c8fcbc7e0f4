// internal/scoring/psychometric.go
package scoring

import "strings"

const psychometricHighThreshold = 17.5

// Five-point likelihood scale. Unmatched option text scores the neutral
// midpoint so a malformed catalog never breaks a report.
var likertScale = map[string]float64{
	"extremely unlikely": 1,
	"unlikely":           2,
	"neutral":            3,
	"likely":             4,
	"extremely likely":   5,
}

func likertValue(text string) float64 {
	if v, ok := likertScale[text]; ok {
		return v
	}
	return 3
}

var psychometricDisplayNames = map[Category]string{
	CategoryOpenness:          "Openness",
	CategoryConscientiousness: "Conscientiousness",
	CategoryExtraversion:      "Extraversion",
	CategoryAgreeableness:     "Agreeableness",
	CategoryNeuroticism:       "Neuroticism",
}

type levelKey struct {
	category Category
	level    string
}

var psychometricInterpretations = map[levelKey]string{
	{CategoryOpenness, LevelHigh}:          "You are curious, imaginative and drawn to new ideas. You enjoy exploring unfamiliar subjects and tend to thrive in roles that reward creativity and experimentation.",
	{CategoryOpenness, LevelLow}:           "You prefer familiar routines and practical, proven approaches. You work best with clear expectations and concrete tasks rather than abstract exploration.",
	{CategoryConscientiousness, LevelHigh}: "You are organised, dependable and goal-directed. You plan ahead, follow through on commitments and hold yourself to high standards of quality.",
	{CategoryConscientiousness, LevelLow}:  "You take a flexible, spontaneous approach to work. Deadlines and detailed planning can feel constraining; you do your best work with room to improvise.",
	{CategoryExtraversion, LevelHigh}:      "You gain energy from being around people. Group discussions, presentations and collaborative projects bring out your strengths.",
	{CategoryExtraversion, LevelLow}:       "You recharge in quieter settings and prefer working independently or in small groups. You think before you speak and listen carefully.",
	{CategoryAgreeableness, LevelHigh}:     "You are cooperative, considerate and quick to trust. You keep teams harmonious and are often the person others turn to for support.",
	{CategoryAgreeableness, LevelLow}:      "You are direct, competitive and comfortable challenging others' views. You value honest debate over easy consensus.",
	{CategoryNeuroticism, LevelHigh}:       "You feel stress and setbacks keenly. Building steady routines and deliberate coping strategies will help you stay effective under pressure.",
	{CategoryNeuroticism, LevelLow}:        "You stay calm and even-tempered under pressure. Setbacks rarely rattle you, which makes you a steadying presence in stressful situations.",
}

// scorePsychometric sums a five-point likelihood value per answer within each
// Big Five category. The High band cuts at a fixed raw-score threshold that
// does not scale with the number of answered questions.
func scorePsychometric(answers []answer) *ScoreBundle {
	byCat := groupByCategory(answers)

	bundle := &ScoreBundle{
		Type:              TypePsychometric,
		DisplayName:       "Psychometric Profile",
		CategoryWiseScore: make(map[Category]*CategoryScore, len(psychometricCategories)),
	}

	var narrative []string
	for _, cat := range psychometricCategories {
		raw := 0.0
		for _, a := range byCat[cat] {
			raw += likertValue(a.optionText())
		}

		pct := 0.0
		if n := len(byCat[cat]); n > 0 {
			pct = raw / (5 * float64(n)) * 100
		}

		level := LevelLow
		if raw >= psychometricHighThreshold {
			level = LevelHigh
		}

		text := psychometricInterpretations[levelKey{cat, level}]
		bundle.CategoryWiseScore[cat] = &CategoryScore{
			Category:    cat,
			DisplayName: psychometricDisplayNames[cat],
			Score:       raw,
			Percentage:  pct,
			Level:       level,
			DisplayText: text,
		}
		narrative = append(narrative, text)
	}

	bundle.Interpretation = strings.Join(narrative, "\n")
	return bundle
}
