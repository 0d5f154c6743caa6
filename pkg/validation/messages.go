package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var customValidationMessages = map[string]map[string]string{
	"PageSize": {
		"min": "page_size must be at least 1",
		"max": "page_size must be at most 100",
	},
	"Query": {
		"max": "query must be at most 100 characters",
	},
	"Sort": {
		"sortfield": "sort must be one of createdAt, age, visits, progress",
	},
	"Order": {
		"sortorder": "order must be asc or desc",
	},
}

func CustomMessage(field string) map[string]string {
	return customValidationMessages[field]
}

func DefaultMessage(field, tag, param string) string {
	field = strings.ToLower(field)

	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "numeric":
		return fmt.Sprintf("%s must be a number", field)
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "lt":
		return fmt.Sprintf("%s must be less than %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", field, param)
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, tag)
	}
}

// Messages turns a binding error into readable messages. Errors that did
// not come from the validator (malformed numbers, for instance) yield their
// own text.
func Messages(err error) []string {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		if fieldMessages := CustomMessage(e.Field()); fieldMessages != nil {
			if msg, exists := fieldMessages[e.Tag()]; exists {
				messages = append(messages, msg)
				continue
			}
		}
		messages = append(messages, DefaultMessage(e.Field(), e.Tag(), e.Param()))
	}
	return messages
}
