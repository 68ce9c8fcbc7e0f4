// internal/workers/data-access/query-questions/queries/assessment.go
package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"assessment-workers/internal/models"
)

func ExamQuestions(ctx context.Context, db *sql.DB, params map[string]interface{}) (interface{}, int, int64, error) {
	examID, ok := params["examId"].(string)
	if !ok {
		return nil, 0, 0, ErrMissingParam
	}

	start := time.Now()

	rows, err := db.QueryContext(ctx, `
		SELECT id, question_type, category, options, correct_option
		FROM questions
		WHERE exam_id = $1
		ORDER BY id`, examID)
	if err != nil {
		return nil, 0, 0, err
	}
	defer rows.Close()

	var results []map[string]interface{}
	for rows.Next() {
		var id, questionType, category string
		var optionsJSON []byte
		var correctOption sql.NullString

		if err := rows.Scan(&id, &questionType, &category, &optionsJSON, &correctOption); err != nil {
			return nil, 0, 0, err
		}

		var options []map[string]interface{}
		if err := json.Unmarshal(optionsJSON, &options); err != nil {
			options = nil
		}

		results = append(results, map[string]interface{}{
			"id": id,
			"tags": map[string]interface{}{
				"question_type": questionType,
				"category":      category,
			},
			"options":       options,
			"correctOption": correctOption.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, 0, 0, err
	}

	execTime := time.Since(start).Milliseconds()
	return results, len(results), execTime, nil
}

func StudentProfile(ctx context.Context, db *sql.DB, params map[string]interface{}) (interface{}, int, int64, error) {
	studentID, ok := params["studentId"].(string)
	if !ok {
		return nil, 0, 0, ErrMissingParam
	}

	start := time.Now()

	var id, firstName, lastName, email, phone, grade, school string
	err := db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, email, phone, grade, school
		FROM students
		WHERE id = $1`, studentID).Scan(
		&id, &firstName, &lastName, &email, &phone, &grade, &school,
	)
	if err != nil {
		return nil, 0, 0, err
	}

	result := map[string]interface{}{
		"id":        id,
		"firstName": firstName,
		"lastName":  lastName,
		"email":     email,
		"phone":     phone,
		"grade":     grade,
		"school":    school,
	}

	execTime := time.Since(start).Milliseconds()
	return result, 1, execTime, nil
}

func AssessmentResult(ctx context.Context, db *sql.DB, params map[string]interface{}) (interface{}, int, int64, error) {
	resultID, ok := params["resultId"].(string)
	if !ok {
		return nil, 0, 0, ErrMissingParam
	}

	start := time.Now()

	var id, examID, studentID, status string
	var reportJSON []byte
	var createdAt time.Time

	err := db.QueryRowContext(ctx, `
		SELECT id, exam_id, student_id, report, status, created_at
		FROM assessment_results
		WHERE id = $1`, resultID).Scan(
		&id, &examID, &studentID, &reportJSON, &status, &createdAt,
	)
	if err != nil {
		return nil, 0, 0, err
	}

	var report map[string]interface{}
	if err := json.Unmarshal(reportJSON, &report); err != nil {
		report = nil
	}

	result := models.AssessmentRecord{
		ResultID:  id,
		ExamID:    examID,
		StudentID: studentID,
		Report:    report,
		Status:    status,
		CreatedAt: createdAt.UTC().Format(time.RFC3339),
	}

	execTime := time.Since(start).Milliseconds()
	return result, 1, execTime, nil
}

func StudentResults(ctx context.Context, db *sql.DB, params map[string]interface{}) (interface{}, int, int64, error) {
	studentID, ok := params["studentId"].(string)
	if !ok {
		return nil, 0, 0, ErrMissingParam
	}

	start := time.Now()

	rows, err := db.QueryContext(ctx, `
		SELECT id, exam_id, status, created_at
		FROM assessment_results
		WHERE student_id = $1
		ORDER BY created_at DESC`, studentID)
	if err != nil {
		return nil, 0, 0, err
	}
	defer rows.Close()

	var results []models.StudentResultSummary
	for rows.Next() {
		var id, examID, status string
		var createdAt time.Time

		if err := rows.Scan(&id, &examID, &status, &createdAt); err != nil {
			return nil, 0, 0, err
		}

		results = append(results, models.StudentResultSummary{
			ResultID:  id,
			ExamID:    examID,
			Status:    status,
			CreatedAt: createdAt.UTC().Format(time.RFC3339),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, 0, 0, err
	}

	execTime := time.Since(start).Milliseconds()
	return results, len(results), execTime, nil
}

func ExamResultSummary(ctx context.Context, db *sql.DB, params map[string]interface{}) (interface{}, int, int64, error) {
	examID, ok := params["examId"].(string)
	if !ok {
		return nil, 0, 0, ErrMissingParam
	}

	start := time.Now()

	var total, stored, indexed int
	err := db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'stored'),
		       COUNT(*) FILTER (WHERE status = 'indexed')
		FROM assessment_results
		WHERE exam_id = $1`, examID).Scan(&total, &stored, &indexed)
	if err != nil {
		return nil, 0, 0, err
	}

	result := models.ExamResultSummary{
		ExamID:         examID,
		TotalResults:   total,
		StoredResults:  stored,
		IndexedResults: indexed,
	}

	execTime := time.Since(start).Milliseconds()
	return result, 1, execTime, nil
}
