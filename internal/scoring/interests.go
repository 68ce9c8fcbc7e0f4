// internal/scoring/interests.go
package scoring

import (
	"sort"
	"strings"
)

// The inventory is designed with five questions per RIASEC category, so the
// percentage denominator is fixed rather than derived from answered counts.
const interestQuestionsPerCategory = 5

var interestDisplayNames = map[Category]string{
	CategoryInvestigative: "Investigative",
	CategoryArtistic:      "Artistic",
	CategorySocial:        "Social",
	CategoryConventional:  "Conventional",
	CategoryRealistic:     "Realistic",
	CategoryEnterprising:  "Enterprising",
}

var interestLetters = map[Category]string{
	CategoryInvestigative: "I",
	CategoryArtistic:      "A",
	CategorySocial:        "S",
	CategoryConventional:  "C",
	CategoryRealistic:     "R",
	CategoryEnterprising:  "E",
}

// One fixed descriptive text per Holland code, always included.
var interestDescriptions = map[Category]string{
	CategoryInvestigative: "Investigative types like to observe, analyse and solve problems. They are drawn to science, research and any field where understanding why comes first.",
	CategoryArtistic:      "Artistic types value self-expression and original work. They thrive in open-ended settings such as design, writing, music and the performing arts.",
	CategorySocial:        "Social types enjoy helping, teaching and caring for others. They do their best work in people-centred roles like education, counselling and healthcare.",
	CategoryConventional:  "Conventional types like order, accuracy and well-defined procedures. They excel in roles built on data, records and dependable processes.",
	CategoryRealistic:     "Realistic types prefer practical, hands-on work with tools, machines and the outdoors. They learn by doing rather than by theorising.",
	CategoryEnterprising:  "Enterprising types like to lead, persuade and take on business challenges. They gravitate toward sales, management and entrepreneurship.",
}

// scoreInterests counts agree-votes per RIASEC category and derives the
// top-three Holland code letters. Ranking ties keep catalog order.
func scoreInterests(answers []answer) *InterestBundle {
	byCat := groupByCategory(answers)

	bundle := &InterestBundle{
		ScoreBundle: ScoreBundle{
			Type:              TypeInterests,
			DisplayName:       "Interests and Preferences",
			CategoryWiseScore: make(map[Category]*CategoryScore, len(interestCategories)),
		},
	}

	var narrative []string
	for _, cat := range interestCategories {
		agrees := 0.0
		for _, a := range byCat[cat] {
			if a.optionText() == "agree" {
				agrees++
			}
		}

		text := interestDescriptions[cat]
		bundle.CategoryWiseScore[cat] = &CategoryScore{
			Category:    cat,
			DisplayName: interestDisplayNames[cat],
			Letter:      interestLetters[cat],
			Score:       agrees,
			Percentage:  agrees / interestQuestionsPerCategory * 100,
			Level:       interestLevel(agrees),
			DisplayText: text,
		}
		narrative = append(narrative, text)
	}

	bundle.TopThreeLetters = topInterestLetters(bundle.CategoryWiseScore, 3)
	bundle.Interpretation = strings.Join(narrative, "\n")
	return bundle
}

func interestLevel(score float64) string {
	switch {
	case score >= 4:
		return LevelHigh
	case score >= 2:
		return LevelModerate
	default:
		return LevelLow
	}
}

// topInterestLetters ranks categories by score descending, ties broken by
// catalog declaration order, and joins the top-n single-letter codes.
func topInterestLetters(scores map[Category]*CategoryScore, n int) string {
	ranked := make([]Category, len(interestCategories))
	copy(ranked, interestCategories)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]].Score > scores[ranked[j]].Score
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	letters := make([]string, 0, n)
	for _, cat := range ranked[:n] {
		letters = append(letters, interestLetters[cat])
	}
	return strings.Join(letters, "")
}
