// internal/workers/assessment/generate-detailed-report/handler.go
package generatedetailedreport

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"assessment-workers/internal/common/lms"
	"assessment-workers/internal/common/logger"
	"assessment-workers/internal/common/metrics"
	"assessment-workers/internal/scoring"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/redis/go-redis/v9"
)

const (
	TaskType = "generate-detailed-report"
)

var (
	ErrQuestionCatalogNotFound = errors.New("QUESTION_CATALOG_NOT_FOUND")
	ErrQueryExecutionFailed    = errors.New("QUERY_EXECUTION_FAILED")
	ErrScoringFailed           = errors.New("SCORING_FAILED")
)

// QuestionFetcher pulls the catalog from the hosted LMS backend when
// neither the cache nor the local database has it.
type QuestionFetcher interface {
	FetchQuestions(ctx context.Context, examID string) ([]lms.Question, error)
}

type Handler struct {
	config    *Config
	db        *sql.DB
	redis     *redis.Client
	lmsClient QuestionFetcher
	engine    *scoring.Engine
	logger    logger.Logger
}

func NewHandler(config *Config, db *sql.DB, redisClient *redis.Client, lmsClient QuestionFetcher, log logger.Logger) *Handler {
	return &Handler{
		config:    config,
		db:        db,
		redis:     redisClient,
		lmsClient: lmsClient,
		engine:    scoring.NewEngine(log),
		logger:    log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, "PARSE_ERROR", fmt.Sprintf("parse input: %v", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		errorCode := "SCORING_FAILED"
		if errors.Is(err, ErrQuestionCatalogNotFound) {
			errorCode = "QUESTION_CATALOG_NOT_FOUND"
		} else if errors.Is(err, ErrQueryExecutionFailed) {
			errorCode = "QUERY_EXECUTION_FAILED"
		}
		h.failJob(client, job, errorCode, err.Error())
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if input.ExamID == "" {
		return nil, fmt.Errorf("%w: examId is required", ErrScoringFailed)
	}

	questions, cacheHit, err := h.loadQuestions(ctx, input.ExamID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: exam %s", ErrQuestionCatalogNotFound, input.ExamID)
	}

	report := h.engine.Score(input.Submissions, questions, input.StudentData)

	h.logger.Info("report generated", map[string]interface{}{
		"examId":        input.ExamID,
		"studentId":     input.StudentID,
		"questionCount": len(questions),
		"cacheHit":      cacheHit,
	})

	return &Output{
		Report:        report,
		QuestionCount: len(questions),
		CacheHit:      cacheHit,
	}, nil
}

// loadQuestions resolves the catalog: Redis cache first, then the
// local questions table, then the LMS backend. Successful fallbacks
// repopulate the cache.
func (h *Handler) loadQuestions(ctx context.Context, examID string) ([]scoring.Question, bool, error) {
	cacheKey := h.config.QuestionCachePrefix + examID

	if val, err := h.redis.Get(ctx, cacheKey).Result(); err == nil {
		var questions []scoring.Question
		if err := json.Unmarshal([]byte(val), &questions); err == nil && len(questions) > 0 {
			return questions, true, nil
		}
		h.logger.Warn("discarding unreadable cache entry", map[string]interface{}{
			"cacheKey": cacheKey,
		})
	}

	questions, err := h.queryQuestions(ctx, examID)
	if err != nil {
		return nil, false, err
	}

	if len(questions) == 0 && h.lmsClient != nil {
		lmsQuestions, err := h.lmsClient.FetchQuestions(ctx, examID)
		if err != nil {
			h.logger.Warn("LMS catalog fetch failed", map[string]interface{}{
				"examId": examID,
				"error":  err,
			})
		} else {
			questions = convertLMSQuestions(lmsQuestions)
		}
	}

	if len(questions) > 0 {
		if data, err := json.Marshal(questions); err == nil {
			if err := h.redis.Set(ctx, cacheKey, data, h.config.QuestionCacheTTL).Err(); err != nil {
				h.logger.Warn("cache write failed", map[string]interface{}{
					"cacheKey": cacheKey,
					"error":    err,
				})
			}
		}
	}

	return questions, false, nil
}

func (h *Handler) queryQuestions(ctx context.Context, examID string) ([]scoring.Question, error) {
	rows, err := h.db.QueryContext(ctx, `
		SELECT id, question_type, category, options, correct_option
		FROM questions
		WHERE exam_id = $1`, examID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryExecutionFailed, err)
	}
	defer rows.Close()

	var questions []scoring.Question
	for rows.Next() {
		var q scoring.Question
		var optionsJSON []byte
		var correctOption sql.NullString

		if err := rows.Scan(&q.ID, &q.Tags.QuestionType, &q.Tags.Category, &optionsJSON, &correctOption); err != nil {
			return nil, fmt.Errorf("%w: scan: %v", ErrQueryExecutionFailed, err)
		}

		if err := json.Unmarshal(optionsJSON, &q.Options); err != nil {
			h.logger.Warn("skipping question with unreadable options", map[string]interface{}{
				"questionId": q.ID,
				"error":      err,
			})
			continue
		}
		q.CorrectOption = correctOption.String

		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryExecutionFailed, err)
	}

	return questions, nil
}

func convertLMSQuestions(in []lms.Question) []scoring.Question {
	out := make([]scoring.Question, 0, len(in))
	for _, q := range in {
		options := make([]scoring.Option, 0, len(q.Options))
		for _, opt := range q.Options {
			options = append(options, scoring.Option{
				ID:         opt.ID,
				OptionText: opt.OptionText,
				Marks:      opt.Marks,
			})
		}
		out = append(out, scoring.Question{
			ID: q.ID,
			Tags: scoring.QuestionTags{
				QuestionType: q.Tags.QuestionType,
				Category:     q.Tags.Category,
			},
			Options:       options,
			CorrectOption: q.CorrectOption,
		})
	}
	return out
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	_, err = cmd.Send(context.Background())
	if err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}

	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, errorCode, errorMessage string) {
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    errorCode,
		"errorMessage": errorMessage,
	})

	metrics.WorkerJobsFailed.WithLabelValues(TaskType, errorCode).Inc()

	_, err := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(errorCode).
		ErrorMessage(errorMessage).
		Send(context.Background())
	if err != nil {
		h.logger.Error("failed to throw error", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
