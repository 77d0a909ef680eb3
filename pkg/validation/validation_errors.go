package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	// Profile fields
	"FullName":       "Full name",
	"Headline":       "Headline",
	"Bio":            "Bio",
	"Location":       "Location",
	"Website":        "Website",
	"Phone":          "Phone number",
	"Specialization": "Specialization",
	"AvatarURL":      "Avatar URL",
	"BannerURL":      "Banner URL",

	// Post fields
	"Content":    "Post content",
	"Visibility": "Visibility",
	"ImageURL":   "Image URL",

	// Experience / Education fields
	"Title":       "Title",
	"Company":     "Company",
	"Degree":      "Degree",
	"School":      "School",
	"Field":       "Field of study",
	"StartDate":   "Start date",
	"EndDate":     "End date",
	"Description": "Description",

	// Job / Event fields
	"JobType":      "Job type",
	"EventDate":    "Event date",
	"EventType":    "Event type",
	"Requirements": "Requirements",
	"Email":        "Email",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var messages []string

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: required", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at least %s", label, param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at most %s", label, param)
	case "oneof":
		return fmt.Sprintf("%s: must be one of: %s", label, strings.Join(strings.Split(param, " "), ", "))
	case "email":
		return fmt.Sprintf("%s: invalid email format", label)
	case "url":
		return fmt.Sprintf("%s: invalid URL format", label)
	case "valid_name":
		return fmt.Sprintf("%s: only letters, spaces and common punctuation allowed", label)
	case "valid_phone":
		return fmt.Sprintf("%s: invalid phone number (7-15 digits, with/without +)", label)
	case "no_emoji":
		return fmt.Sprintf("%s: emoji and special symbols are not allowed", label)
	case "gtefield":
		return fmt.Sprintf("%s: must not be before %s", label, getFieldLabel(param))
	default:
		return fmt.Sprintf("%s: failed validation (%s)", label, e.Tag())
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
