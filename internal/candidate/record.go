package candidate

import (
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Checklist field names. The slice below fixes the order in which the
// conversation collects them.
const (
	FieldFullName         = "full_name"
	FieldEmail            = "email"
	FieldPhone            = "phone"
	FieldExperienceYears  = "experience_years"
	FieldDesiredPositions = "desired_positions"
	FieldLocation         = "location"
)

// RequiredFields is the ordered info-gathering checklist.
var RequiredFields = []string{
	FieldFullName,
	FieldEmail,
	FieldPhone,
	FieldExperienceYears,
	FieldDesiredPositions,
	FieldLocation,
}

const (
	minPhoneDigits     = 10
	maxExperienceYears = 50
)

// Response is a single recorded answer to a technical question.
type Response struct {
	Question   string `json:"question" mapstructure:"question"`
	Answer     string `json:"answer" mapstructure:"answer"`
	Technology string `json:"technology" mapstructure:"technology"`
}

// Record holds everything collected from a single screening session.
// SessionID doubles as the storage key: saving twice with the same id
// overwrites the previous document instead of duplicating it.
type Record struct {
	SessionID          string              `json:"session_id" mapstructure:"session_id"`
	FullName           string              `json:"full_name,omitempty" mapstructure:"full_name" validate:"omitempty,min=2"`
	Email              string              `json:"email,omitempty" mapstructure:"email" validate:"omitempty,email"`
	Phone              string              `json:"phone,omitempty" mapstructure:"phone" validate:"omitempty,phone_digits"`
	ExperienceYears    int                 `json:"experience_years" mapstructure:"experience_years" validate:"min=0,max=50"`
	DesiredPositions   []string            `json:"desired_positions,omitempty" mapstructure:"desired_positions"`
	Location           string              `json:"location,omitempty" mapstructure:"location"`
	TechStack          map[string][]string `json:"tech_stack,omitempty" mapstructure:"tech_stack"`
	InterviewResponses map[string]Response `json:"interview_responses,omitempty" mapstructure:"interview_responses"`
	CreatedAt          time.Time           `json:"created_at,omitempty" mapstructure:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at,omitempty" mapstructure:"updated_at"`
}

var (
	validate  = newValidator()
	digitsRe  = regexp.MustCompile(`\D`)
	lettersRe = regexp.MustCompile(`[^a-zA-Z]`)
)

func newValidator() *validator.Validate {
	v := validator.New()
	// Phone numbers arrive in arbitrary human formats. A number is
	// acceptable when it keeps at least ten digits after stripping
	// everything else.
	_ = v.RegisterValidation("phone_digits", func(fl validator.FieldLevel) bool {
		return len(digitsRe.ReplaceAllString(fl.Field().String(), "")) >= minPhoneDigits
	})
	return v
}

// Validate checks the whole record against its struct tags.
func (r *Record) Validate() error {
	return validate.Struct(r)
}

// ValidateFullName reports whether the value can be stored as a full name.
func ValidateFullName(value string) error {
	return validate.Var(strings.TrimSpace(value), "required,min=2")
}

// ValidateEmail reports whether the value is a well-formed email address.
func ValidateEmail(value string) error {
	return validate.Var(strings.TrimSpace(value), "required,email")
}

// ValidatePhone reports whether the value contains enough digits to be a
// phone number.
func ValidatePhone(value string) error {
	return validate.Var(value, "phone_digits")
}

// ValidateExperience reports whether the parsed years value is in range.
func ValidateExperience(years int) error {
	return validate.Var(years, "min=0,max=50")
}

// Apply sets one checklist field on the record. Values carry the type the
// conversation produced for the field; mismatches are ignored rather than
// stored garbled.
func (r *Record) Apply(field string, value any) {
	switch field {
	case FieldFullName:
		if s, ok := value.(string); ok {
			r.FullName = s
		}
	case FieldEmail:
		if s, ok := value.(string); ok {
			r.Email = s
		}
	case FieldPhone:
		if s, ok := value.(string); ok {
			r.Phone = s
		}
	case FieldExperienceYears:
		if n, ok := value.(int); ok {
			r.ExperienceYears = n
		}
	case FieldDesiredPositions:
		if list, ok := value.([]string); ok {
			r.DesiredPositions = list
		}
	case FieldLocation:
		if s, ok := value.(string); ok {
			r.Location = s
		}
	}
}

// FieldCollected reports whether a checklist field already holds a value.
func (r *Record) FieldCollected(field string) bool {
	switch field {
	case FieldFullName:
		return r.FullName != ""
	case FieldEmail:
		return r.Email != ""
	case FieldPhone:
		return r.Phone != ""
	case FieldExperienceYears:
		// Zero years of experience is a legitimate answer, so the sentinel
		// here is the positions field collected later. The completion metric
		// tolerates this being approximate.
		return r.ExperienceYears > 0 || len(r.DesiredPositions) > 0
	case FieldDesiredPositions:
		return len(r.DesiredPositions) > 0
	case FieldLocation:
		return r.Location != ""
	default:
		return false
	}
}

// Completion returns the percentage of required checklist fields collected.
func (r *Record) Completion() float64 {
	collected := 0
	for _, field := range RequiredFields {
		if r.FieldCollected(field) {
			collected++
		}
	}
	return float64(collected) / float64(len(RequiredFields)) * 100
}
