// internal/scoring/types.go
package scoring

import (
	"strings"
	"time"
)

// QuestionType identifies which scorer a question belongs to.
type QuestionType string

const (
	TypePsychometric QuestionType = "psychometric"
	TypeAptitude     QuestionType = "aptitude"
	TypeAdversity    QuestionType = "adversity"
	TypeSEI          QuestionType = "sei"
	TypeInterests    QuestionType = "interests_and_preferences"
)

// ParseQuestionType normalizes a free-form type tag to a known QuestionType.
func ParseQuestionType(s string) (QuestionType, bool) {
	switch QuestionType(strings.ToLower(strings.TrimSpace(s))) {
	case TypePsychometric:
		return TypePsychometric, true
	case TypeAptitude:
		return TypeAptitude, true
	case TypeAdversity:
		return TypeAdversity, true
	case TypeSEI:
		return TypeSEI, true
	case TypeInterests:
		return TypeInterests, true
	}
	return "", false
}

// Category is a type-specific sub-dimension, e.g. "openness" within psychometric.
type Category string

// Psychometric (Big Five)
const (
	CategoryOpenness          Category = "openness"
	CategoryConscientiousness Category = "conscientiousness"
	CategoryExtraversion      Category = "extraversion"
	CategoryAgreeableness     Category = "agreeableness"
	CategoryNeuroticism       Category = "neuroticism"
)

// Aptitude
const (
	CategoryVerbal           Category = "verbal"
	CategoryNumerical        Category = "numerical"
	CategoryAbstract         Category = "abstract"
	CategorySpeedAndAccuracy Category = "speed-and-accuracy"
	CategoryMechanical       Category = "mechanical"
	CategorySpaceRelations   Category = "space-relations"
	CategoryLanguageUsage    Category = "language-usage-and-grammar"
)

// Adversity (CORE model)
const (
	CategoryControl   Category = "control"
	CategoryOwnership Category = "ownership"
	CategoryReach     Category = "reach"
	CategoryEndurance Category = "endurance"
)

// Socio-emotional intelligence
const (
	CategorySelfAwareness   Category = "self-awareness"
	CategorySelfManagement  Category = "self-management"
	CategorySocialSkills    Category = "social-skills"
	CategorySocialAwareness Category = "social-awareness"
)

// Interests (Holland / RIASEC)
const (
	CategoryInvestigative Category = "investigative"
	CategoryArtistic      Category = "artistic"
	CategorySocial        Category = "social"
	CategoryConventional  Category = "conventional"
	CategoryRealistic     Category = "realistic"
	CategoryEnterprising  Category = "enterprising"
)

// Declaration order doubles as the stable tie-break order for rankings.
var (
	psychometricCategories = []Category{
		CategoryOpenness,
		CategoryConscientiousness,
		CategoryExtraversion,
		CategoryAgreeableness,
		CategoryNeuroticism,
	}

	aptitudeCategories = []Category{
		CategoryVerbal,
		CategoryNumerical,
		CategoryAbstract,
		CategorySpeedAndAccuracy,
		CategoryMechanical,
		CategorySpaceRelations,
		CategoryLanguageUsage,
	}

	adversityCategories = []Category{
		CategoryControl,
		CategoryOwnership,
		CategoryReach,
		CategoryEndurance,
	}

	seiCategories = []Category{
		CategorySelfAwareness,
		CategorySelfManagement,
		CategorySocialSkills,
		CategorySocialAwareness,
	}

	interestCategories = []Category{
		CategoryInvestigative,
		CategoryArtistic,
		CategorySocial,
		CategoryConventional,
		CategoryRealistic,
		CategoryEnterprising,
	}
)

var categoriesByType = map[QuestionType][]Category{
	TypePsychometric: psychometricCategories,
	TypeAptitude:     aptitudeCategories,
	TypeAdversity:    adversityCategories,
	TypeSEI:          seiCategories,
	TypeInterests:    interestCategories,
}

// ParseCategory normalizes a free-form category tag against the closed set
// for the given question type.
func ParseCategory(qt QuestionType, s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range categoriesByType[qt] {
		if c == known {
			return known, true
		}
	}
	return "", false
}

// Qualitative level labels.
const (
	LevelLow            = "Low"
	LevelModeratelyLow  = "Moderately Low"
	LevelModerate       = "Moderate"
	LevelModeratelyHigh = "Moderately High"
	LevelHigh           = "High"
)

// Option is one selectable answer on a question. Scoring pattern-matches on
// OptionText after trimming and lower-casing.
type Option struct {
	ID         string  `json:"id"`
	OptionText string  `json:"optionText"`
	Marks      float64 `json:"marks,omitempty"`
}

// QuestionTags carries the free-form classification strings supplied by the
// external catalog. They are normalized to enums at ingestion.
type QuestionTags struct {
	QuestionType string `json:"question_type"`
	Category     string `json:"category"`
}

// Question is one assessment item from the external catalog.
type Question struct {
	ID            string       `json:"id"`
	Tags          QuestionTags `json:"tags"`
	Options       []Option     `json:"options"`
	CorrectOption string       `json:"correctOption,omitempty"`
}

// Option returns the option with the given id, or nil.
func (q *Question) Option(id string) *Option {
	for i := range q.Options {
		if q.Options[i].ID == id {
			return &q.Options[i]
		}
	}
	return nil
}

// Submission is one learner answer: which option was selected on which question.
type Submission struct {
	QuestionID       string `json:"questionId"`
	SelectedOptionID string `json:"selectedOptionId"`
}

// CategoryScore is the derived score for one category of one question type.
type CategoryScore struct {
	Category    Category `json:"category"`
	DisplayName string   `json:"categoryDisplayName"`
	Letter      string   `json:"categoryLetter,omitempty"`
	Score       float64  `json:"categoryScore"`
	Percentage  float64  `json:"categoryPercentage"`
	Level       string   `json:"categoryLevel"`
	DisplayText string   `json:"categoryDisplayText"`
}

// ScoreBundle groups all CategoryScores of one question type plus the
// type-level narrative.
type ScoreBundle struct {
	Type              QuestionType                `json:"type"`
	DisplayName       string                      `json:"displayName"`
	CategoryWiseScore map[Category]*CategoryScore `json:"categoryWiseScore"`
	Interpretation    string                      `json:"interpretation"`
}

// AdversityBundle extends ScoreBundle with the composite adversity quotient.
type AdversityBundle struct {
	ScoreBundle
	AQScore float64 `json:"aqScore"`
	AQLevel string  `json:"aqLevel"`
}

// InterestBundle extends ScoreBundle with the derived Holland code letters.
type InterestBundle struct {
	ScoreBundle
	TopThreeLetters string `json:"topThreeLetters"`
}

// CareerMapping is one recommendation record from the fixed rule table.
type CareerMapping struct {
	RuleID         string `json:"ruleId"`
	CareerRoles    string `json:"careerRoles"`
	SkillsRequired string `json:"skillsRequired"`
	MasteryAreas   string `json:"masteryAreas"`
	Reasoning      string `json:"reasoning"`
	Club           string `json:"club"`
	TargetAudience string `json:"targetAudience"`
	Tagline        string `json:"tagline"`
}

// DetailedAssessmentResult is the root output of the scoring engine.
type DetailedAssessmentResult struct {
	DetailedPsychometricScore  *ScoreBundle     `json:"detailedPsychometricScore"`
	AptitudeScore              *ScoreBundle     `json:"aptitudeScore"`
	AdversityScore             *AdversityBundle `json:"adversityScore"`
	SEIScore                   *ScoreBundle     `json:"seiScore"`
	InterestAndPreferenceScore *InterestBundle  `json:"interestAndPreferenceScore"`
	CareerMapping              *CareerMapping   `json:"careerMapping"`
	AssessmentDate             time.Time        `json:"assessmentDate"`
	StudentData                interface{}      `json:"studentData,omitempty"`
}
