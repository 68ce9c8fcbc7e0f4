package lms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	commonhttp "assessment-workers/internal/common/http"
)

// Client talks to the hosted LMS backend that owns exams, questions
// and student profiles.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *commonhttp.Client
}

type Student struct {
	ID        string `json:"id,omitempty"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone,omitempty"`
	Grade     string `json:"grade,omitempty"`
	School    string `json:"school,omitempty"`
}

type QuestionOption struct {
	ID         string  `json:"id"`
	OptionText string  `json:"optionText"`
	Marks      float64 `json:"marks"`
}

type QuestionTags struct {
	QuestionType string `json:"question_type"`
	Category     string `json:"category"`
}

type Question struct {
	ID            string           `json:"id"`
	Tags          QuestionTags     `json:"tags"`
	Options       []QuestionOption `json:"options"`
	CorrectOption string           `json:"correctOption,omitempty"`
}

type PushReportResponse struct {
	Data []struct {
		Code    string `json:"code"`
		Details struct {
			ID string `json:"id"`
		} `json:"details"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"data"`
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: commonhttp.NewClient(timeout),
	}
}

// FetchQuestions retrieves the full question catalog for an exam.
func (c *Client) FetchQuestions(ctx context.Context, examID string) ([]Question, error) {
	url := fmt.Sprintf("%s/exams/%s/questions", c.baseURL, examID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to fetch questions (status %d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		Data []Question `json:"data"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return result.Data, nil
}

// GetStudent retrieves a student profile by ID.
func (c *Client) GetStudent(ctx context.Context, studentID string) (*Student, error) {
	url := fmt.Sprintf("%s/students/%s", c.baseURL, studentID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to get student (status %d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		Data []Student `json:"data"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Data) == 0 {
		return nil, fmt.Errorf("student not found")
	}

	return &result.Data[0], nil
}

// PushReport uploads a scored assessment report so the LMS can show it
// to the student. Returns the LMS-side report ID.
func (c *Client) PushReport(ctx context.Context, examID, studentID string, report interface{}) (string, error) {
	url := fmt.Sprintf("%s/exams/%s/students/%s/report", c.baseURL, examID, studentID)

	payload := map[string]interface{}{
		"data": report,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to push report (status %d): %s", resp.StatusCode, string(body))
	}

	var pushResp PushReportResponse
	if err := json.Unmarshal(body, &pushResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(pushResp.Data) == 0 {
		return "", fmt.Errorf("no data in response")
	}

	if pushResp.Data[0].Status != "success" {
		return "", fmt.Errorf("report push failed: %s", pushResp.Data[0].Message)
	}

	return pushResp.Data[0].Details.ID, nil
}
