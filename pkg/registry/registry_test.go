// pkg/registry/registry_test.go
package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "activity-registry.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRegistry(t *testing.T) {
	path := writeRegistry(t, `{
		"version": "1.0.0",
		"lastUpdated": "2026-08-12",
		"activities": [
			{
				"id": "validate-submission-batch",
				"taskType": "validate-submission-batch",
				"category": "assessment",
				"inputSchema": {"type": "object", "required": ["examId"]},
				"errorCodes": ["SUBMISSION_VALIDATION_FAILED"]
			}
		]
	}`)

	reg, err := LoadRegistry(path)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", reg.Version)
	require.Len(t, reg.Activities, 1)
	assert.Equal(t, "validate-submission-batch", reg.Activities[0].TaskType)
}

func TestLoadRegistry_MissingFile(t *testing.T) {
	_, err := LoadRegistry(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestRegistry_Validate(t *testing.T) {
	reg := &ActivityRegistry{
		Activities: []Activity{
			{
				ID:       "generate-detailed-report",
				TaskType: "generate-detailed-report",
				InputSchema: map[string]interface{}{
					"type":     "object",
					"required": []interface{}{"examId", "studentId"},
				},
			},
			{
				ID:       "query-questions",
				TaskType: "query-questions",
			},
		},
	}

	assert.NoError(t, reg.Validate())
}

func TestRegistry_Validate_DuplicateTaskType(t *testing.T) {
	reg := &ActivityRegistry{
		Activities: []Activity{
			{ID: "a", TaskType: "query-questions"},
			{ID: "b", TaskType: "query-questions"},
		},
	}

	err := reg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate task type")
}

func TestRegistry_Validate_MissingID(t *testing.T) {
	reg := &ActivityRegistry{
		Activities: []Activity{{TaskType: "query-questions"}},
	}

	assert.Error(t, reg.Validate())
}

func TestRegistry_Validate_BadSchema(t *testing.T) {
	reg := &ActivityRegistry{
		Activities: []Activity{
			{
				ID:       "store-assessment-result",
				TaskType: "store-assessment-result",
				InputSchema: map[string]interface{}{
					"type":     "object",
					"required": "examId",
				},
			},
		},
	}

	err := reg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid input schema")
}

func TestRegistry_Find(t *testing.T) {
	reg := &ActivityRegistry{
		Activities: []Activity{
			{ID: "a", TaskType: "validate-submission-batch"},
			{ID: "b", TaskType: "send-report-notification"},
		},
	}

	act, ok := reg.Find("send-report-notification")
	require.True(t, ok)
	assert.Equal(t, "b", act.ID)

	_, ok = reg.Find("unknown")
	assert.False(t, ok)
}

func TestRegistry_TaskTypes(t *testing.T) {
	reg := &ActivityRegistry{
		Activities: []Activity{
			{TaskType: "validate-submission-batch"},
			{TaskType: "generate-detailed-report"},
		},
	}

	assert.Equal(t, []string{"validate-submission-batch", "generate-detailed-report"}, reg.TaskTypes())
}
