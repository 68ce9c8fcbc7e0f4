// internal/scoring/aptitude.go
package scoring

import (
	"fmt"
	"math"
	"strings"
)

// Percentage bands for aptitude levels.
const (
	aptitudeHighThreshold     = 77.0
	aptitudeModerateThreshold = 24.0
)

var aptitudeDisplayNames = map[Category]string{
	CategoryVerbal:           "Verbal Reasoning",
	CategoryNumerical:        "Numerical Ability",
	CategoryAbstract:         "Abstract Reasoning",
	CategorySpeedAndAccuracy: "Speed and Accuracy",
	CategoryMechanical:       "Mechanical Reasoning",
	CategorySpaceRelations:   "Space Relations",
	CategoryLanguageUsage:    "Language Usage and Grammar",
}

var aptitudeInterpretations = map[levelKey]string{
	{CategoryVerbal, LevelHigh}:               "which shows a strong command of language-based reasoning. You grasp written arguments quickly and express ideas with precision.",
	{CategoryVerbal, LevelModerate}:           "which shows a workable grasp of language-based reasoning. Regular reading and summarising practice will sharpen it further.",
	{CategoryVerbal, LevelLow}:                "which suggests language-based reasoning needs attention. Start with short comprehension exercises and build vocabulary steadily.",
	{CategoryNumerical, LevelHigh}:            "which shows you handle numbers and quantitative relationships with ease. Data-heavy subjects will play to this strength.",
	{CategoryNumerical, LevelModerate}:        "which shows a fair comfort with numbers. Consistent problem practice will lift both speed and confidence.",
	{CategoryNumerical, LevelLow}:             "which suggests quantitative work currently feels difficult. Revisit fundamentals before attempting timed practice.",
	{CategoryAbstract, LevelHigh}:             "which shows you spot patterns and underlying rules quickly, even in unfamiliar material.",
	{CategoryAbstract, LevelModerate}:         "which shows you can work out patterns given time. Puzzle-based practice will make this more automatic.",
	{CategoryAbstract, LevelLow}:              "which suggests pattern recognition is a growth area. Begin with simple sequence and analogy exercises.",
	{CategorySpeedAndAccuracy, LevelHigh}:     "which shows you process routine detail quickly without sacrificing precision, a key asset in clerical and data tasks.",
	{CategorySpeedAndAccuracy, LevelModerate}: "which shows reasonable processing speed. Timed drills can close the gap between your pace and your accuracy.",
	{CategorySpeedAndAccuracy, LevelLow}:      "which suggests detail-checking under time pressure is hard for you right now. Accuracy first, then speed.",
	{CategoryMechanical, LevelHigh}:           "which shows a strong intuition for physical forces and how mechanisms work.",
	{CategoryMechanical, LevelModerate}:       "which shows a developing feel for mechanical principles. Hands-on projects will help most.",
	{CategoryMechanical, LevelLow}:            "which suggests mechanical reasoning is largely untrained. Everyday tinkering and basic physics will build it.",
	{CategorySpaceRelations, LevelHigh}:       "which shows you visualise and rotate objects in your head with ease, valuable in design and engineering fields.",
	{CategorySpaceRelations, LevelModerate}:   "which shows moderate spatial visualisation. Sketching and model-building exercises will strengthen it.",
	{CategorySpaceRelations, LevelLow}:        "which suggests spatial visualisation needs deliberate practice, for example with block-rotation puzzles.",
	{CategoryLanguageUsage, LevelHigh}:        "which shows excellent command of grammar and written convention. Your writing reads as polished and professional.",
	{CategoryLanguageUsage, LevelModerate}:    "which shows sound everyday grammar with occasional slips. Focused editing practice will iron these out.",
	{CategoryLanguageUsage, LevelLow}:         "which suggests written mechanics hold your ideas back. A structured grammar course would pay off quickly.",
}

// scoreAptitude grades each answer right or wrong against the question's
// correct option. Percentage is correct over answered, not over catalog size.
func scoreAptitude(answers []answer) *ScoreBundle {
	byCat := groupByCategory(answers)

	bundle := &ScoreBundle{
		Type:              TypeAptitude,
		DisplayName:       "Aptitude",
		CategoryWiseScore: make(map[Category]*CategoryScore, len(aptitudeCategories)),
	}

	var narrative []string
	for _, cat := range aptitudeCategories {
		correct := 0
		answered := len(byCat[cat])
		for _, a := range byCat[cat] {
			if a.correct() {
				correct++
			}
		}

		pct := 0.0
		if answered > 0 {
			pct = math.Round(float64(correct)/float64(answered)*100*100) / 100
		}

		level := aptitudeLevel(pct)
		text := aptitudeInterpretations[levelKey{cat, level}]
		display := aptitudeDisplayNames[cat]

		bundle.CategoryWiseScore[cat] = &CategoryScore{
			Category:    cat,
			DisplayName: display,
			Score:       float64(correct),
			Percentage:  pct,
			Level:       level,
			DisplayText: text,
		}
		narrative = append(narrative, fmt.Sprintf("You have scored %s in %s, %s", level, display, text))
	}

	bundle.Interpretation = strings.Join(narrative, "\n")
	return bundle
}

func aptitudeLevel(pct float64) string {
	switch {
	case pct >= aptitudeHighThreshold:
		return LevelHigh
	case pct >= aptitudeModerateThreshold:
		return LevelModerate
	default:
		return LevelLow
	}
}
