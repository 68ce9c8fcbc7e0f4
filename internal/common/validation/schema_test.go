// internal/common/validation/schema_test.go
package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func intPtr(n int) *int { return &n }

func submissionSchema() JSONSchema {
	return JSONSchema{
		Type: "object",
		Properties: map[string]Property{
			"questionId":       {Type: "string", MinLength: intPtr(1)},
			"selectedOptionId": {Type: "string", MinLength: intPtr(1)},
		},
		Required:             []string{"questionId", "selectedOptionId"},
		AdditionalProperties: false,
	}
}

// ==========================
// ValidateInput Tests
// ==========================

func TestValidateInput_Valid(t *testing.T) {
	result := ValidateInput(map[string]interface{}{
		"questionId":       "q-1",
		"selectedOptionId": "opt-2",
	}, submissionSchema())

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateInput_MissingRequired(t *testing.T) {
	result := ValidateInput(map[string]interface{}{
		"questionId": "q-1",
	}, submissionSchema())

	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "selectedOptionId", result.Errors[0].Field)
	assert.Equal(t, "REQUIRED_FIELD_MISSING", result.Errors[0].Code)
}

func TestValidateInput_EmptyStringViolatesMinLength(t *testing.T) {
	result := ValidateInput(map[string]interface{}{
		"questionId":       "",
		"selectedOptionId": "opt-1",
	}, submissionSchema())

	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "questionId", result.Errors[0].Field)
	assert.Equal(t, "MIN_LENGTH_VIOLATION", result.Errors[0].Code)
}

func TestValidateInput_ExtraFieldRejected(t *testing.T) {
	result := ValidateInput(map[string]interface{}{
		"questionId":       "q-1",
		"selectedOptionId": "opt-1",
		"score":            5,
	}, submissionSchema())

	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "score", result.Errors[0].Field)
	assert.Equal(t, "EXTRA_FIELD", result.Errors[0].Code)
}

func TestValidateInput_WrongType(t *testing.T) {
	result := ValidateInput(map[string]interface{}{
		"questionId":       42,
		"selectedOptionId": "opt-1",
	}, submissionSchema())

	require.False(t, result.Valid)
	assert.Equal(t, "INVALID_TYPE", result.Errors[0].Code)
}

func TestValidateInput_EnumAndRange(t *testing.T) {
	min, max := 1.0, 5.0
	schema := JSONSchema{
		Type: "object",
		Properties: map[string]Property{
			"priority": {Type: "string", Enum: []string{"low", "high"}},
			"rating":   {Type: "number", Minimum: &min, Maximum: &max},
		},
		AdditionalProperties: false,
	}

	result := ValidateInput(map[string]interface{}{
		"priority": "urgent",
		"rating":   7.0,
	}, schema)

	require.False(t, result.Valid)
	require.Len(t, result.Errors, 2)

	codes := []string{result.Errors[0].Code, result.Errors[1].Code}
	assert.Contains(t, codes, "INVALID_ENUM_VALUE")
	assert.Contains(t, codes, "MAXIMUM_VIOLATION")
}

func TestValidateInput_NestedObject(t *testing.T) {
	schema := JSONSchema{
		Type: "object",
		Properties: map[string]Property{
			"tags": {
				Type: "object",
				Properties: map[string]Property{
					"category": {Type: "string"},
				},
				Required: []string{"category"},
			},
		},
		AdditionalProperties: false,
	}

	result := ValidateInput(map[string]interface{}{
		"tags": map[string]interface{}{},
	}, schema)

	require.False(t, result.Valid)
	assert.Equal(t, "tags.category", result.Errors[0].Field)
}

func TestValidationResult_GetErrorMessages(t *testing.T) {
	result := ValidateInput(map[string]interface{}{}, submissionSchema())

	messages := result.GetErrorMessages()
	require.Len(t, messages, 2)
	assert.Contains(t, messages[0], "required field missing")
}

// ==========================
// Contact Format Tests
// ==========================

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("asha@example.com"))
	assert.True(t, ValidateEmail("first.last+tag@school.edu.in"))
	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("missing@tld"))
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+15551230001"))
	assert.True(t, ValidatePhone("(555) 123-0001"))
	assert.False(t, ValidatePhone("12345"))
	assert.False(t, ValidatePhone("call me"))
}
