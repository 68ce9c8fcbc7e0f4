// internal/models/query_types.go
package models

type QueryType string

const (
	QueryTypeExamQuestions     QueryType = "exam_questions"
	QueryTypeStudentProfile    QueryType = "student_profile"
	QueryTypeAssessmentResult  QueryType = "assessment_result"
	QueryTypeStudentResults    QueryType = "student_results"
	QueryTypeExamResultSummary QueryType = "exam_result_summary"
)
