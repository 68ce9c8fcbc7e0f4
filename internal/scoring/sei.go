// internal/scoring/sei.go
package scoring

import "strings"

// Raw-score bands for socio-emotional categories.
const (
	seiHighThreshold     = 8.0
	seiModerateThreshold = 5.0
)

// Five-point intensity scale used by the socio-emotional inventory.
var seiScale = map[string]float64{
	"not at all":    1,
	"never":         1,
	"slightly":      2,
	"almost never":  2,
	"fairly":        3,
	"sometimes":     3,
	"almost always": 4,
	"moderately":    4,
	"extremely":     5,
	"always":        5,
}

func seiValue(text string) float64 {
	if v, ok := seiScale[text]; ok {
		return v
	}
	return 3
}

var seiDisplayNames = map[Category]string{
	CategorySelfAwareness:   "Self Awareness",
	CategorySelfManagement:  "Self Management",
	CategorySocialSkills:    "Social Skills",
	CategorySocialAwareness: "Social Awareness",
}

var seiInterpretations = map[levelKey]string{
	{CategorySelfAwareness, LevelHigh}:       "You read your own emotions accurately and understand how they shape your decisions. This self-knowledge anchors confident, deliberate choices.",
	{CategorySelfAwareness, LevelModerate}:   "You notice your stronger emotions but subtler ones can pass unexamined. A short daily reflection habit will deepen this awareness.",
	{CategorySelfAwareness, LevelLow}:        "Your emotions often surprise you or surface only in hindsight. Naming feelings as they happen is the first skill to practise.",
	{CategorySelfManagement, LevelHigh}:      "You regulate impulses well and stay composed when plans change. People experience you as steady and reliable.",
	{CategorySelfManagement, LevelModerate}:  "You keep your reactions in check most of the time, though stress can loosen that grip. Simple pause-before-responding techniques will help.",
	{CategorySelfManagement, LevelLow}:       "Strong feelings tend to drive your immediate reactions. Building small delay habits between impulse and action will give you back the choice.",
	{CategorySocialSkills, LevelHigh}:        "You build rapport easily, communicate clearly and handle disagreement without damaging relationships.",
	{CategorySocialSkills, LevelModerate}:    "You manage everyday interactions comfortably but trickier conversations, like giving feedback, take effort. Practice in low-stakes settings pays off.",
	{CategorySocialSkills, LevelLow}:         "Initiating and steering conversations feels hard right now. Structured group activities are a forgiving place to build these muscles.",
	{CategorySocialAwareness, LevelHigh}:     "You pick up on unspoken moods and group dynamics quickly, and adjust your approach to fit the room.",
	{CategorySocialAwareness, LevelModerate}: "You read obvious social cues but miss quieter signals. Deliberately observing before speaking will sharpen this sense.",
	{CategorySocialAwareness, LevelLow}:      "Other people's reactions often catch you off guard. Asking clarifying questions and checking assumptions will close the gap.",
}

// scoreSEI sums the intensity scale per socio-emotional category and bands
// each on its raw score.
func scoreSEI(answers []answer) *ScoreBundle {
	byCat := groupByCategory(answers)

	bundle := &ScoreBundle{
		Type:              TypeSEI,
		DisplayName:       "Socio-Emotional Intelligence",
		CategoryWiseScore: make(map[Category]*CategoryScore, len(seiCategories)),
	}

	var narrative []string
	for _, cat := range seiCategories {
		raw := 0.0
		for _, a := range byCat[cat] {
			raw += seiValue(a.optionText())
		}

		pct := 0.0
		if n := len(byCat[cat]); n > 0 {
			pct = raw / (5 * float64(n)) * 100
		}

		level := seiLevel(raw)
		text := seiInterpretations[levelKey{cat, level}]
		bundle.CategoryWiseScore[cat] = &CategoryScore{
			Category:    cat,
			DisplayName: seiDisplayNames[cat],
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

func seiLevel(raw float64) string {
	switch {
	case raw >= seiHighThreshold:
		return LevelHigh
	case raw >= seiModerateThreshold:
		return LevelModerate
	default:
		return LevelLow
	}
}
