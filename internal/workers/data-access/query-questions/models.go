// internal/workers/data-access/query-questions/models.go
package queryquestions

import "assessment-workers/internal/models"

type Input struct {
	QueryType string                 `json:"queryType"`
	ExamID    string                 `json:"examId,omitempty"`
	StudentID string                 `json:"studentId,omitempty"`
	ResultID  string                 `json:"resultId,omitempty"`
	Filters   map[string]interface{} `json:"filters,omitempty"`
}

type Output struct {
	Data               interface{} `json:"data"`
	RowCount           int         `json:"rowCount"`
	QueryExecutionTime int64       `json:"queryExecutionTime"` // milliseconds
}

type QueryType = models.QueryType

// Export constants for external use
var (
	QueryTypeExamQuestions     = models.QueryTypeExamQuestions
	QueryTypeStudentProfile    = models.QueryTypeStudentProfile
	QueryTypeAssessmentResult  = models.QueryTypeAssessmentResult
	QueryTypeStudentResults    = models.QueryTypeStudentResults
	QueryTypeExamResultSummary = models.QueryTypeExamResultSummary
)
