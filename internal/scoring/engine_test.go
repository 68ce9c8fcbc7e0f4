// internal/scoring/engine_test.go
package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assessment-workers/internal/common/logger"
)

// ==========================
// Test Helper Functions
// ==========================

func likertOptions() []Option {
	return []Option{
		{ID: "opt-1", OptionText: "Extremely Unlikely"},
		{ID: "opt-2", OptionText: "Unlikely"},
		{ID: "opt-3", OptionText: "Neutral"},
		{ID: "opt-4", OptionText: "Likely"},
		{ID: "opt-5", OptionText: "Extremely Likely"},
	}
}

func frequencyOptions() []Option {
	return []Option{
		{ID: "opt-1", OptionText: "Never"},
		{ID: "opt-2", OptionText: "Rarely"},
		{ID: "opt-3", OptionText: "Sometimes"},
		{ID: "opt-4", OptionText: "Almost Always"},
		{ID: "opt-5", OptionText: "Always"},
	}
}

func intensityOptions() []Option {
	return []Option{
		{ID: "opt-1", OptionText: "Not at all"},
		{ID: "opt-2", OptionText: "Slightly"},
		{ID: "opt-3", OptionText: "Fairly"},
		{ID: "opt-4", OptionText: "Almost Always"},
		{ID: "opt-5", OptionText: "Extremely"},
	}
}

func agreeOptions() []Option {
	return []Option{
		{ID: "opt-agree", OptionText: "Agree"},
		{ID: "opt-disagree", OptionText: "Disagree"},
	}
}

func aptitudeOptions() []Option {
	return []Option{
		{ID: "opt-a", OptionText: "42"},
		{ID: "opt-b", OptionText: "64"},
		{ID: "opt-c", OptionText: "81"},
		{ID: "opt-d", OptionText: "100"},
	}
}

func newQuestion(id, qtype, category string, opts []Option) Question {
	return Question{
		ID:      id,
		Tags:    QuestionTags{QuestionType: qtype, Category: category},
		Options: opts,
	}
}

func newAptitudeQuestion(id, category, correctID string) Question {
	q := newQuestion(id, "aptitude", category, aptitudeOptions())
	q.CorrectOption = correctID
	return q
}

func newSubmission(questionID, optionID string) Submission {
	return Submission{QuestionID: questionID, SelectedOptionID: optionID}
}

func newTestEngine(t *testing.T) *Engine {
	return NewEngine(logger.NewTestLogger(t))
}

// classify runs the ingestion path over a fixture catalog.
func classify(t *testing.T, questions []Question, subs []Submission) map[QuestionType][]answer {
	t.Helper()
	idx := buildQuestionIndex(questions)
	return classifySubmissions(subs, idx, logger.NewTestLogger(t))
}

func referenceFixture() ([]Question, []Submission) {
	questions := []Question{
		newQuestion("q-psy-1", "psychometric", "openness", likertOptions()),
		newQuestion("q-psy-2", "psychometric", "conscientiousness", likertOptions()),
		newAptitudeQuestion("q-apt-1", "verbal", "opt-b"),
		newAptitudeQuestion("q-apt-2", "verbal", "opt-c"),
		newQuestion("q-adv-1", "adversity", "control", frequencyOptions()),
		newQuestion("q-sei-1", "sei", "self-awareness", intensityOptions()),
		newQuestion("q-int-1", "interests_and_preferences", "realistic", agreeOptions()),
		newQuestion("q-int-2", "interests_and_preferences", "investigative", agreeOptions()),
	}
	submissions := []Submission{
		newSubmission("q-psy-1", "opt-5"), // Extremely Likely -> 5
		newSubmission("q-psy-2", "opt-3"), // Neutral -> 3
		newSubmission("q-apt-1", "opt-b"), // correct
		newSubmission("q-apt-2", "opt-a"), // wrong
		newSubmission("q-adv-1", "opt-4"), // Almost Always -> 4
		newSubmission("q-sei-1", "opt-5"), // Extremely -> 5
		newSubmission("q-int-1", "opt-agree"),
		newSubmission("q-int-2", "opt-disagree"),
	}
	return questions, submissions
}

// ==========================
// Core Functionality Tests
// ==========================

func TestEngine_Score_ReferenceFixture(t *testing.T) {
	questions, submissions := referenceFixture()
	result := newTestEngine(t).Score(submissions, questions, nil)
	require.NotNil(t, result)

	openness := result.DetailedPsychometricScore.CategoryWiseScore[CategoryOpenness]
	require.NotNil(t, openness)
	assert.Equal(t, 5.0, openness.Score)
	assert.Equal(t, 100.0, openness.Percentage)
	assert.Equal(t, LevelLow, openness.Level, "5 is below the 17.5 High cutoff")

	verbal := result.AptitudeScore.CategoryWiseScore[CategoryVerbal]
	require.NotNil(t, verbal)
	assert.Equal(t, 1.0, verbal.Score)
	assert.Equal(t, 50.0, verbal.Percentage)
	assert.Equal(t, LevelModerate, verbal.Level)

	control := result.AdversityScore.CategoryWiseScore[CategoryControl]
	require.NotNil(t, control)
	assert.Equal(t, 4.0, control.Score)
	assert.Equal(t, 8.0, result.AdversityScore.AQScore)
	assert.Equal(t, LevelLow, result.AdversityScore.AQLevel)

	selfAwareness := result.SEIScore.CategoryWiseScore[CategorySelfAwareness]
	require.NotNil(t, selfAwareness)
	assert.Equal(t, 5.0, selfAwareness.Score)

	assert.Equal(t, 1.0, result.InterestAndPreferenceScore.CategoryWiseScore[CategoryRealistic].Score)
	assert.Equal(t, 0.0, result.InterestAndPreferenceScore.CategoryWiseScore[CategoryInvestigative].Score)

	require.NotNil(t, result.CareerMapping)
	assert.NotEmpty(t, result.CareerMapping.RuleID)
}

func TestEngine_Score_Deterministic(t *testing.T) {
	questions, submissions := referenceFixture()

	engine := newTestEngine(t)
	fixed := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	engine.now = func() time.Time { return fixed }

	first := engine.Score(submissions, questions, map[string]interface{}{"studentId": "stu-1"})
	second := engine.Score(submissions, questions, map[string]interface{}{"studentId": "stu-1"})

	assert.Equal(t, first, second)
}

func TestEngine_Score_EmptySubmissions(t *testing.T) {
	questions, _ := referenceFixture()
	result := newTestEngine(t).Score(nil, questions, nil)
	require.NotNil(t, result)

	assert.Len(t, result.DetailedPsychometricScore.CategoryWiseScore, 5)
	assert.Len(t, result.AptitudeScore.CategoryWiseScore, 7)
	assert.Len(t, result.AdversityScore.CategoryWiseScore, 4)
	assert.Len(t, result.SEIScore.CategoryWiseScore, 4)
	assert.Len(t, result.InterestAndPreferenceScore.CategoryWiseScore, 6)

	for _, cs := range result.AptitudeScore.CategoryWiseScore {
		assert.Equal(t, 0.0, cs.Score)
		assert.Equal(t, 0.0, cs.Percentage)
		assert.Equal(t, LevelLow, cs.Level)
	}

	assert.Equal(t, 0.0, result.AdversityScore.AQScore)
	assert.Equal(t, LevelLow, result.AdversityScore.AQLevel)
	require.NotNil(t, result.CareerMapping)
}

func TestEngine_Score_UnknownQuestionDropped(t *testing.T) {
	questions, submissions := referenceFixture()
	submissions = append(submissions, newSubmission("ghost-question", "opt-1"))

	result := newTestEngine(t).Score(submissions, questions, nil)

	assert.Equal(t, 5.0, result.DetailedPsychometricScore.CategoryWiseScore[CategoryOpenness].Score)
	assert.Equal(t, 1.0, result.AptitudeScore.CategoryWiseScore[CategoryVerbal].Score)
}

func TestEngine_Score_CaseInsensitiveTags(t *testing.T) {
	questions := []Question{
		{
			ID:   "q-1",
			Tags: QuestionTags{QuestionType: "PSYCHOMETRIC", Category: "OPENNESS"},
			Options: []Option{
				{ID: "opt-1", OptionText: "  EXTREMELY LIKELY  "},
			},
		},
	}
	submissions := []Submission{newSubmission("q-1", "opt-1")}

	result := newTestEngine(t).Score(submissions, questions, nil)
	assert.Equal(t, 5.0, result.DetailedPsychometricScore.CategoryWiseScore[CategoryOpenness].Score)
}

func TestEngine_Score_EchoesStudentData(t *testing.T) {
	student := map[string]interface{}{"studentId": "stu-42", "name": "Asha"}
	result := newTestEngine(t).Score(nil, nil, student)
	assert.Equal(t, student, result.StudentData)
}

func TestEngine_Score_StampsAssessmentDate(t *testing.T) {
	engine := newTestEngine(t)
	fixed := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	engine.now = func() time.Time { return fixed }

	result := engine.Score(nil, nil, nil)
	assert.Equal(t, fixed, result.AssessmentDate)
}
