// internal/scoring/engine.go
package scoring

import (
	"time"

	"assessment-workers/internal/common/logger"
)

// Engine turns raw submissions plus the question catalog into a
// DetailedAssessmentResult. It holds no per-invocation state; concurrent
// Score calls are safe.
type Engine struct {
	logger logger.Logger
	now    func() time.Time
}

func NewEngine(log logger.Logger) *Engine {
	return &Engine{
		logger: log.WithFields(map[string]interface{}{"component": "scoring-engine"}),
		now:    time.Now,
	}
}

// Score runs the five category scorers over the classified submissions,
// derives the career mapping from the top aptitude categories and assembles
// the result. It never fails: malformed input degrades to defaults, so the
// output contract is total.
func (e *Engine) Score(submissions []Submission, questions []Question, studentData interface{}) *DetailedAssessmentResult {
	idx := buildQuestionIndex(questions)
	buckets := classifySubmissions(submissions, idx, e.logger)

	psychometric := scorePsychometric(buckets[TypePsychometric])
	aptitude := scoreAptitude(buckets[TypeAptitude])
	adversity := scoreAdversity(buckets[TypeAdversity])
	sei := scoreSEI(buckets[TypeSEI])
	interests := scoreInterests(buckets[TypeInterests])

	topThree := topAptitudeCategories(aptitude, 3)
	mapping := selectCareerMapping(topThree)

	e.logger.Info("assessment scored", map[string]interface{}{
		"submissions":  len(submissions),
		"questions":    len(questions),
		"aqScore":      adversity.AQScore,
		"topAptitude":  topThree,
		"topInterests": interests.TopThreeLetters,
		"careerRule":   mapping.RuleID,
	})

	return &DetailedAssessmentResult{
		DetailedPsychometricScore:  psychometric,
		AptitudeScore:              aptitude,
		AdversityScore:             adversity,
		SEIScore:                   sei,
		InterestAndPreferenceScore: interests,
		CareerMapping:              mapping,
		AssessmentDate:             e.now().UTC(),
		StudentData:                studentData,
	}
}
