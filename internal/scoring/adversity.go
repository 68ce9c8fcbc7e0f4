// internal/scoring/adversity.go
package scoring

import "strings"

// AQ composite bands. The composite is twice the sum of all four category
// raw scores, following the CORE adversity-quotient model.
const (
	aqHighThreshold           = 178.0
	aqModeratelyHighThreshold = 161.0
	aqModerateThreshold       = 135.0
	aqModeratelyLowThreshold  = 118.0
)

// Extended five-point scale: the adversity inventory mixes frequency wording
// with the likelihood wording of the psychometric scale.
var adversityScale = map[string]float64{
	"never":              1,
	"almost never":       2,
	"rarely":             2,
	"sometimes":          3,
	"often":              4,
	"almost always":      4,
	"always":             5,
	"extremely unlikely": 1,
	"unlikely":           2,
	"neutral":            3,
	"likely":             4,
	"extremely likely":   5,
}

func adversityValue(text string) float64 {
	if v, ok := adversityScale[text]; ok {
		return v
	}
	return 3
}

var adversityDisplayNames = map[Category]string{
	CategoryControl:   "Control",
	CategoryOwnership: "Ownership",
	CategoryReach:     "Reach",
	CategoryEndurance: "Endurance",
}

// Fixed descriptive text per CORE dimension.
var adversityDescriptions = map[Category]string{
	CategoryControl:   "Control measures how much influence you perceive over adverse events and your response to them.",
	CategoryOwnership: "Ownership measures how readily you step up to improve a bad situation, regardless of its cause.",
	CategoryReach:     "Reach measures how far you let a setback in one area spill over into other parts of your life.",
	CategoryEndurance: "Endurance measures how long you expect adversity and its consequences to last.",
}

// Narrative text keyed by the underscore-normalized AQ level.
var aqInterpretations = map[string]string{
	"high":            "You respond to adversity with a strong sense of agency. You see setbacks as specific, temporary and within your influence, and you recover quickly by acting on what you can change.",
	"moderately_high": "You handle most setbacks well and usually keep difficulties contained. Under sustained pressure you occasionally let problems spill into unrelated areas; noticing that pattern is the next step.",
	"moderate":        "You cope with everyday adversity but larger setbacks can feel overwhelming. Practising reframing, separating what you control from what you don't, will raise your resilience noticeably.",
	"moderately_low":  "Setbacks tend to feel bigger and longer-lasting than they are. Working on small, immediate responses to problems will rebuild your sense of control.",
	"low":             "Adversity currently feels out of your hands and far-reaching. Structured support, small wins and a focus on what is directly controllable will make the biggest difference.",
}

// scoreAdversity sums the extended scale per CORE category and derives the
// composite AQ score and its own level band. The type-level narrative is
// keyed by the composite level, not per category.
func scoreAdversity(answers []answer) *AdversityBundle {
	byCat := groupByCategory(answers)

	bundle := &AdversityBundle{
		ScoreBundle: ScoreBundle{
			Type:              TypeAdversity,
			DisplayName:       "Adversity Quotient",
			CategoryWiseScore: make(map[Category]*CategoryScore, len(adversityCategories)),
		},
	}

	total := 0.0
	for _, cat := range adversityCategories {
		raw := 0.0
		for _, a := range byCat[cat] {
			raw += adversityValue(a.optionText())
		}
		total += raw

		pct := 0.0
		if n := len(byCat[cat]); n > 0 {
			pct = raw / (5 * float64(n)) * 100
		}

		bundle.CategoryWiseScore[cat] = &CategoryScore{
			Category:    cat,
			DisplayName: adversityDisplayNames[cat],
			Score:       raw,
			Percentage:  pct,
			Level:       adversityCategoryLevel(pct),
			DisplayText: adversityDescriptions[cat],
		}
	}

	bundle.AQScore = 2 * total
	bundle.AQLevel = aqLevel(bundle.AQScore)
	bundle.Interpretation = aqInterpretations[strings.ReplaceAll(strings.ToLower(bundle.AQLevel), " ", "_")]
	return bundle
}

// adversityCategoryLevel bands a single CORE dimension on its percentage.
// The dimension bands are independent of the composite AQ bands.
func adversityCategoryLevel(pct float64) string {
	switch {
	case pct >= 70:
		return LevelHigh
	case pct >= 40:
		return LevelModerate
	default:
		return LevelLow
	}
}

func aqLevel(score float64) string {
	switch {
	case score >= aqHighThreshold:
		return LevelHigh
	case score >= aqModeratelyHighThreshold:
		return LevelModeratelyHigh
	case score >= aqModerateThreshold:
		return LevelModerate
	case score >= aqModeratelyLowThreshold:
		return LevelModeratelyLow
	default:
		return LevelLow
	}
}
