package payload

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/go-playground/validator/v10"
)

// CreditsForm is the input of the credits-based planning flow.
type CreditsForm struct {
	MajorID           int                 `form:"selectedMajor" validate:"required"`
	Minor1ID          int                 `form:"selectedMinor1" validate:"required"`
	Minor2ID          int                 `form:"selectedMinor2" validate:"required"`
	EnglishLevel      domain.EnglishLevel `form:"englishLevel" validate:"required"`
	StartSemester     string              `form:"startSemester" validate:"required,term"`
	MajorClassLimit   int                 `form:"majorClassLimit" validate:"required,min=1,max=6"`
	FallWinterCredits int                 `form:"fallWinterCredits" validate:"required,min=1,max=24"`
	SpringCredits     int                 `form:"springCredits" validate:"required,min=1,max=24"`
	LimitFirstYear    bool                `form:"limitFirstYear"`
}

// CourseIDs returns the selected program ids in slot order.
func (f CreditsForm) CourseIDs() []int {
	return []int{f.MajorID, f.Minor1ID, f.Minor2ID}
}

// SemestersForm is the input of the semester-count planning flow.
type SemestersForm struct {
	MajorID         int                 `form:"selectedMajor" validate:"required"`
	Minor1ID        int                 `form:"selectedMinor1" validate:"required"`
	Minor2ID        int                 `form:"selectedMinor2" validate:"required"`
	EnglishLevel    domain.EnglishLevel `form:"englishLevel" validate:"required"`
	StartSemester   string              `form:"startSemester" validate:"required,term"`
	TargetSemesters int                 `form:"totalSemesters" validate:"required,min=1,max=20"`
	MajorClassLimit int                 `form:"majorClassLimit" validate:"required,min=1,max=6"`
	LimitFirstYear  bool                `form:"limitFirstYear"`
}

// CourseIDs returns the selected program ids in slot order.
func (f SemestersForm) CourseIDs() []int {
	return []int{f.MajorID, f.Minor1ID, f.Minor2ID}
}

// MissingFieldsError names every required form field left empty.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing form fields: " + strings.Join(e.Fields, ", ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("form"); name != "" {
			return name
		}
		return f.Name
	})
	_ = v.RegisterValidation("term", func(fl validator.FieldLevel) bool {
		_, _, err := domain.ParseTerm(fl.Field().String())
		return err == nil
	})
	return v
}

// ValidateForm checks a CreditsForm or SemestersForm. Missing required
// fields are reported together as a *MissingFieldsError; any other
// violation is reported by field name.
func ValidateForm(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating form: %w", err)
	}

	var missing []string
	var invalid []string
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
			continue
		}
		invalid = append(invalid, describe(fe))
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}
	return fmt.Errorf("invalid form: %s", strings.Join(invalid, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "term":
		return fmt.Sprintf("%s must look like \"Fall 2024\"", fe.Field())
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}
