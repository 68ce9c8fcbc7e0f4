// internal/scoring/catalog.go
package scoring

import (
	"strings"

	"assessment-workers/internal/common/logger"
)

// answer is one classified submission joined with its question metadata.
// optionText is already trimmed and lower-cased; selected may be nil when the
// submission references an option id the question does not carry.
type answer struct {
	question *Question
	category Category
	selected *Option
}

// optionText returns the normalized display text of the selected option.
func (a *answer) optionText() string {
	if a.selected == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(a.selected.OptionText))
}

// correct reports whether the selected option is the question's correct one.
func (a *answer) correct() bool {
	return a.selected != nil && a.question.CorrectOption != "" &&
		a.selected.ID == a.question.CorrectOption
}

// buildQuestionIndex maps question id to question. Duplicate ids are not
// expected from the catalog; last one wins.
func buildQuestionIndex(questions []Question) map[string]*Question {
	idx := make(map[string]*Question, len(questions))
	for i := range questions {
		idx[questions[i].ID] = &questions[i]
	}
	return idx
}

// classifySubmissions buckets submissions by question type. Submissions that
// reference an unknown question id are dropped. Questions whose type or
// category tag does not parse into the closed sets are also dropped, with a
// warning, so a typo in the catalog never pollutes a score.
func classifySubmissions(subs []Submission, idx map[string]*Question, log logger.Logger) map[QuestionType][]answer {
	buckets := make(map[QuestionType][]answer, 5)
	for _, sub := range subs {
		q, ok := idx[sub.QuestionID]
		if !ok {
			continue
		}

		qt, ok := ParseQuestionType(q.Tags.QuestionType)
		if !ok {
			log.Warn("unrecognized question type tag, dropping submission", map[string]interface{}{
				"questionId":   q.ID,
				"questionType": q.Tags.QuestionType,
			})
			continue
		}

		cat, ok := ParseCategory(qt, q.Tags.Category)
		if !ok {
			log.Warn("unrecognized category tag, dropping submission", map[string]interface{}{
				"questionId":   q.ID,
				"questionType": string(qt),
				"category":     q.Tags.Category,
			})
			continue
		}

		buckets[qt] = append(buckets[qt], answer{
			question: q,
			category: cat,
			selected: q.Option(sub.SelectedOptionID),
		})
	}
	return buckets
}

// groupByCategory splits a type bucket into per-category answer lists.
func groupByCategory(answers []answer) map[Category][]answer {
	byCat := make(map[Category][]answer)
	for _, a := range answers {
		byCat[a.category] = append(byCat[a.category], a)
	}
	return byCat
}
