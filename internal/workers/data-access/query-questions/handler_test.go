// internal/workers/data-access/query-questions/handler_test.go
package queryquestions

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assessment-workers/internal/common/logger"
	"assessment-workers/internal/models"
)

// ==========================
// Test Fixtures
// ==========================

func createTestHandler(t *testing.T) (*Handler, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	config := &Config{Timeout: 5 * time.Second}
	return NewHandler(config, db, logger.NewTestLogger(t)), mock
}

// ==========================
// Exam Questions Query
// ==========================

func TestHandler_Execute_ExamQuestions(t *testing.T) {
	handler, mock := createTestHandler(t)

	options := `[{"id":"opt-1","optionText":"Strongly Disagree","marks":1},{"id":"opt-5","optionText":"Strongly Agree","marks":5}]`
	rows := sqlmock.NewRows([]string{"id", "question_type", "category", "options", "correct_option"}).
		AddRow("q-1", "psychometric", "openness", []byte(options), nil).
		AddRow("q-2", "aptitude", "numerical", []byte(options), "opt-5")

	mock.ExpectQuery(`SELECT id, question_type, category, options, correct_option`).
		WithArgs("exam-001").
		WillReturnRows(rows)

	output, err := handler.Execute(context.Background(), &Input{
		QueryType: string(QueryTypeExamQuestions),
		ExamID:    "exam-001",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, output.RowCount)

	data, ok := output.Data.([]map[string]interface{})
	require.True(t, ok)
	require.Len(t, data, 2)
	assert.Equal(t, "q-1", data[0]["id"])

	tags, ok := data[0]["tags"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "psychometric", tags["question_type"])
	assert.Equal(t, "openness", tags["category"])
	assert.Equal(t, "opt-5", data[1]["correctOption"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

// ==========================
// Student Profile Query
// ==========================

func TestHandler_Execute_StudentProfile(t *testing.T) {
	handler, mock := createTestHandler(t)

	rows := sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "phone", "grade", "school"}).
		AddRow("stu-42", "Asha", "Nair", "asha@example.com", "+911234567890", "10", "Greenfield High")

	mock.ExpectQuery(`SELECT id, first_name, last_name, email, phone, grade, school`).
		WithArgs("stu-42").
		WillReturnRows(rows)

	output, err := handler.Execute(context.Background(), &Input{
		QueryType: string(QueryTypeStudentProfile),
		StudentID: "stu-42",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, output.RowCount)

	data, ok := output.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Asha", data["firstName"])
	assert.Equal(t, "Greenfield High", data["school"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

// ==========================
// Assessment Result Queries
// ==========================

func TestHandler_Execute_AssessmentResult(t *testing.T) {
	handler, mock := createTestHandler(t)

	report := `{"careerMapping":"I-A-S"}`
	createdAt := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "exam_id", "student_id", "report", "status", "created_at"}).
		AddRow("res-7", "exam-001", "stu-42", []byte(report), "stored", createdAt)

	mock.ExpectQuery(`SELECT id, exam_id, student_id, report, status, created_at`).
		WithArgs("res-7").
		WillReturnRows(rows)

	output, err := handler.Execute(context.Background(), &Input{
		QueryType: string(QueryTypeAssessmentResult),
		ResultID:  "res-7",
	})

	require.NoError(t, err)

	record, ok := output.Data.(models.AssessmentRecord)
	require.True(t, ok)
	assert.Equal(t, "res-7", record.ResultID)
	assert.Equal(t, "exam-001", record.ExamID)
	assert.Equal(t, "stu-42", record.StudentID)
	assert.Equal(t, "stored", record.Status)
	assert.Equal(t, "2024-03-15T10:30:00Z", record.CreatedAt)
	assert.Equal(t, "I-A-S", record.Report["careerMapping"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_StudentResults(t *testing.T) {
	handler, mock := createTestHandler(t)

	rows := sqlmock.NewRows([]string{"id", "exam_id", "status", "created_at"}).
		AddRow("res-8", "exam-002", "stored", time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)).
		AddRow("res-7", "exam-001", "stored", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC))

	mock.ExpectQuery(`SELECT id, exam_id, status, created_at`).
		WithArgs("stu-42").
		WillReturnRows(rows)

	output, err := handler.Execute(context.Background(), &Input{
		QueryType: string(QueryTypeStudentResults),
		StudentID: "stu-42",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, output.RowCount)

	summaries, ok := output.Data.([]models.StudentResultSummary)
	require.True(t, ok)
	require.Len(t, summaries, 2)
	assert.Equal(t, "res-8", summaries[0].ResultID)
	assert.Equal(t, "exam-002", summaries[0].ExamID)
	assert.Equal(t, "2024-03-15T10:30:00Z", summaries[1].CreatedAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_ExamResultSummary(t *testing.T) {
	handler, mock := createTestHandler(t)

	rows := sqlmock.NewRows([]string{"count", "stored", "indexed"}).
		AddRow(120, 115, 98)

	mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WithArgs("exam-001").
		WillReturnRows(rows)

	output, err := handler.Execute(context.Background(), &Input{
		QueryType: string(QueryTypeExamResultSummary),
		ExamID:    "exam-001",
	})

	require.NoError(t, err)

	summary, ok := output.Data.(models.ExamResultSummary)
	require.True(t, ok)
	assert.Equal(t, "exam-001", summary.ExamID)
	assert.Equal(t, 120, summary.TotalResults)
	assert.Equal(t, 115, summary.StoredResults)
	assert.Equal(t, 98, summary.IndexedResults)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// ==========================
// Error Handling
// ==========================

func TestHandler_Execute_InvalidQueryType(t *testing.T) {
	handler, _ := createTestHandler(t)

	_, err := handler.Execute(context.Background(), &Input{
		QueryType: "drop_all_tables",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidQueryType)
}

func TestHandler_Execute_MissingParam(t *testing.T) {
	handler, _ := createTestHandler(t)

	// examId is required for exam_questions but omitted here
	_, err := handler.Execute(context.Background(), &Input{
		QueryType: string(QueryTypeExamQuestions),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQueryExecutionFailed)
}

func TestHandler_Execute_QueryFailure(t *testing.T) {
	handler, mock := createTestHandler(t)

	mock.ExpectQuery(`SELECT id, question_type, category, options, correct_option`).
		WithArgs("exam-001").
		WillReturnError(assert.AnError)

	_, err := handler.Execute(context.Background(), &Input{
		QueryType: string(QueryTypeExamQuestions),
		ExamID:    "exam-001",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQueryExecutionFailed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_NilInput(t *testing.T) {
	handler, _ := createTestHandler(t)

	_, err := handler.Execute(context.Background(), nil)
	require.Error(t, err)
}
