package utils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldViolation is a single failed rule on a request field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateStruct evaluates every declared rule independently and collects all
// violations in declaration order. A field breaking several rules reports each
// of them, not just the first. Returns nil when the payload is valid.
func ValidateStruct(data interface{}) []FieldViolation {
	value := reflect.ValueOf(data)
	for value.Kind() == reflect.Ptr {
		value = value.Elem()
	}

	var violations []FieldViolation
	structType := value.Type()
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		tag := field.Tag.Get("validate")
		if tag == "" || tag == "-" {
			continue
		}

		for _, rule := range strings.Split(tag, ",") {
			if rule == "omitempty" {
				if value.Field(i).IsZero() {
					break
				}
				continue
			}
			if validate.Var(value.Field(i).Interface(), rule) != nil {
				violations = append(violations, FieldViolation{
					Field:   field.Name,
					Message: ruleMessage(rule),
				})
			}
		}
	}

	return violations
}

// converts a failed rule to a human-readable message
func ruleMessage(rule string) string {
	tag, param, _ := strings.Cut(rule, "=")
	switch tag {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "alphanum":
		return "Only alphanumeric characters are allowed"
	case "min":
		return fmt.Sprintf("Minimum length is %s", param)
	case "max":
		return fmt.Sprintf("Maximum length is %s", param)
	case "datetime":
		return fmt.Sprintf("Must be a date in %s format", param)
	case "uuid":
		return "Must be a valid UUID"
	default:
		return fmt.Sprintf("Invalid value for %s rule", tag)
	}
}

// FormatViolations renders the violation list as a single string
func FormatViolations(violations []FieldViolation) string {
	var msgs []string
	for _, v := range violations {
		msgs = append(msgs, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return strings.Join(msgs, "; ")
}
