// internal/scoring/aptitude_test.go
package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAptitudeLevel(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{100, LevelHigh},
		{77, LevelHigh},
		{76.99, LevelModerate},
		{24, LevelModerate},
		{23.99, LevelLow},
		{0, LevelLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, aptitudeLevel(tt.pct), "pct %v", tt.pct)
	}
}

func TestScoreAptitude_PercentageOverAnsweredNotCatalog(t *testing.T) {
	// Six verbal questions exist, one is answered correctly: the percentage
	// is 100, not 16.67, since unanswered catalog entries are skipped.
	questions := []Question{
		newAptitudeQuestion("q-1", "verbal", "opt-b"),
		newAptitudeQuestion("q-2", "verbal", "opt-a"),
		newAptitudeQuestion("q-3", "verbal", "opt-c"),
		newAptitudeQuestion("q-4", "verbal", "opt-d"),
		newAptitudeQuestion("q-5", "verbal", "opt-a"),
		newAptitudeQuestion("q-6", "verbal", "opt-b"),
	}
	buckets := classify(t, questions, []Submission{newSubmission("q-1", "opt-b")})

	bundle := scoreAptitude(buckets[TypeAptitude])

	verbal := bundle.CategoryWiseScore[CategoryVerbal]
	assert.Equal(t, 1.0, verbal.Score)
	assert.Equal(t, 100.0, verbal.Percentage)
	assert.Equal(t, LevelHigh, verbal.Level)
}

func TestScoreAptitude_RoundsToTwoDecimals(t *testing.T) {
	questions := []Question{
		newAptitudeQuestion("q-1", "numerical", "opt-a"),
		newAptitudeQuestion("q-2", "numerical", "opt-a"),
		newAptitudeQuestion("q-3", "numerical", "opt-a"),
	}
	submissions := []Submission{
		newSubmission("q-1", "opt-a"), // correct
		newSubmission("q-2", "opt-b"),
		newSubmission("q-3", "opt-c"),
	}
	buckets := classify(t, questions, submissions)

	bundle := scoreAptitude(buckets[TypeAptitude])
	assert.Equal(t, 33.33, bundle.CategoryWiseScore[CategoryNumerical].Percentage)
}

func TestScoreAptitude_NoAnswers(t *testing.T) {
	bundle := scoreAptitude(nil)

	require.Len(t, bundle.CategoryWiseScore, 7)
	for _, cat := range aptitudeCategories {
		cs := bundle.CategoryWiseScore[cat]
		require.NotNil(t, cs, "category %s", cat)
		assert.Equal(t, 0.0, cs.Percentage)
		assert.Equal(t, LevelLow, cs.Level)
	}
}

func TestScoreAptitude_NarrativeFormat(t *testing.T) {
	questions := []Question{newAptitudeQuestion("q-1", "verbal", "opt-b")}
	buckets := classify(t, questions, []Submission{newSubmission("q-1", "opt-b")})

	bundle := scoreAptitude(buckets[TypeAptitude])

	lines := strings.Split(bundle.Interpretation, "\n")
	require.Len(t, lines, 7, "one narrative line per category")
	assert.Contains(t, lines[0], "You have scored High in Verbal Reasoning,")
}

func TestScoreAptitude_NoPartialCredit(t *testing.T) {
	questions := []Question{newAptitudeQuestion("q-1", "mechanical", "opt-d")}
	buckets := classify(t, questions, []Submission{newSubmission("q-1", "opt-c")})

	bundle := scoreAptitude(buckets[TypeAptitude])

	mech := bundle.CategoryWiseScore[CategoryMechanical]
	assert.Equal(t, 0.0, mech.Score)
	assert.Equal(t, 0.0, mech.Percentage)
}
