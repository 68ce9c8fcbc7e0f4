// internal/scoring/career_test.go
package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectCareerMapping(t *testing.T) {
	tests := []struct {
		name     string
		topThree []string
		wantRule string
	}{
		{
			name:     "engineering triple",
			topThree: []string{"Numerical Ability", "Mechanical Reasoning", "Space Relations"},
			wantRule: "engineering-design",
		},
		{
			name:     "triple matches in any order",
			topThree: []string{"Space Relations", "Numerical Ability", "Mechanical Reasoning"},
			wantRule: "engineering-design",
		},
		{
			name:     "data science triple",
			topThree: []string{"Numerical Ability", "Abstract Reasoning", "Speed and Accuracy"},
			wantRule: "data-science",
		},
		{
			name:     "law and communication triple",
			topThree: []string{"Verbal Reasoning", "Language Usage and Grammar", "Abstract Reasoning"},
			wantRule: "law-communication",
		},
		{
			name:     "no rule matches falls back",
			topThree: []string{"Verbal Reasoning", "Numerical Ability", "Mechanical Reasoning"},
			wantRule: "explorer-default",
		},
		{
			name:     "empty top set falls back",
			topThree: nil,
			wantRule: "explorer-default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapping := selectCareerMapping(tt.topThree)
			require.NotNil(t, mapping, "selection is total")
			assert.Equal(t, tt.wantRule, mapping.RuleID)
			assert.NotEmpty(t, mapping.CareerRoles)
			assert.NotEmpty(t, mapping.Reasoning)
		})
	}
}

func TestSelectCareerMapping_ReturnsCopy(t *testing.T) {
	first := selectCareerMapping(nil)
	first.Tagline = "mutated"

	second := selectCareerMapping(nil)
	assert.NotEqual(t, "mutated", second.Tagline)
}

func TestTopAptitudeCategories(t *testing.T) {
	questions := []Question{
		newAptitudeQuestion("q-1", "mechanical", "opt-a"),
		newAptitudeQuestion("q-2", "space-relations", "opt-a"),
		newAptitudeQuestion("q-3", "numerical", "opt-a"),
		newAptitudeQuestion("q-4", "verbal", "opt-a"),
	}
	submissions := []Submission{
		newSubmission("q-1", "opt-a"), // mechanical 100%
		newSubmission("q-2", "opt-a"), // space-relations 100%
		newSubmission("q-3", "opt-a"), // numerical 100%
		newSubmission("q-4", "opt-b"), // verbal 0%
	}
	buckets := classify(t, questions, submissions)
	bundle := scoreAptitude(buckets[TypeAptitude])

	top := topAptitudeCategories(bundle, 3)

	// Ties at 100% keep declaration order: numerical before mechanical
	// before space-relations.
	assert.Equal(t, []string{"Numerical Ability", "Mechanical Reasoning", "Space Relations"}, top)
}

func TestTopAptitudeCategories_TieBreakIsDeclarationOrder(t *testing.T) {
	bundle := scoreAptitude(nil) // everything at 0%

	top := topAptitudeCategories(bundle, 3)
	assert.Equal(t, []string{"Verbal Reasoning", "Numerical Ability", "Abstract Reasoning"}, top)
}

func TestCareerRules_TriplesUseKnownDisplayNames(t *testing.T) {
	known := make(map[string]bool, len(aptitudeDisplayNames))
	for _, name := range aptitudeDisplayNames {
		known[name] = true
	}

	for _, rule := range careerRules {
		for _, label := range rule.triple {
			assert.True(t, known[label], "rule %s references unknown label %q", rule.id, label)
		}
	}
}
