// Package validation checks student records against the field rules shared by
// the create, update and import paths.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"studentapi/internal/model"
)

// Machine-readable error codes.
const (
	CodeRequired      = "required"
	CodeInvalidFormat = "invalid_format"
	CodeOutOfRange    = "out_of_range"
	CodeInvalidOption = "invalid_option"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RE2's \s is ASCII-only; Unicode spaces and the BOM also count as whitespace in an address.
func hasSpace(v string) bool {
	return strings.IndexFunc(v, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	}) >= 0
}

func validCorreo(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	return !hasSpace(v) && emailRegex.MatchString(v)
}

type rule struct {
	field   string
	code    string
	message string
}

// rules lists every checked field in reporting order.
var rules = []rule{
	{"nombre", CodeRequired, "Nombre es requerido"},
	{"apellido", CodeRequired, "Apellido es requerido"},
	{"correo", CodeInvalidFormat, "Correo electrónico inválido"},
	{"edad", CodeOutOfRange, "Edad debe estar entre 16 y 100"},
	{"semestre", CodeOutOfRange, "Semestre debe estar entre 1 y 12"},
	{"jornada", CodeInvalidOption, "Jornada debe ser Diurna o Nocturna"},
	{"sexo", CodeInvalidOption, "Sexo debe ser Masculino o Femenino"},
}

// FieldError describes one violated rule.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Result is the verdict for a single record.
type Result struct {
	Valid  bool
	Errors []FieldError
}

// Messages returns the human-readable messages in rule order.
func (r Result) Messages() []string {
	out := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		out = append(out, e.Message)
	}
	return out
}

// Err returns a *Error carrying the violations, or nil when the record is valid.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return &Error{Errors: r.Errors}
}

// Error is returned when a record fails validation. All violations are reported at once.
type Error struct {
	Errors []FieldError
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Messages returns the human-readable messages in rule order.
func (e *Error) Messages() []string {
	return Result{Errors: e.Errors}.Messages()
}

// Validator evaluates every rule independently; it is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator with the custom tags used by model.Student.
// It panics if a custom tag cannot be registered.
func New() *Validator {
	v := validator.New()

	// Use JSON tag names for errors instead of Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	for tag, fn := range map[string]validator.Func{
		"notblank": validators.NotBlank,
		"correo":   validCorreo,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("validation: register %q: %v", tag, err))
		}
	}

	return &Validator{validate: v}
}

// Validate checks s against all rules. It has no side effects and the error list is
// always in the same order for the same input.
func (v *Validator) Validate(s model.Student) Result {
	err := v.validate.Struct(s)
	if err == nil {
		return Result{Valid: true, Errors: []FieldError{}}
	}

	failed := make(map[string]bool)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			failed[fe.Field()] = true
		}
	}

	res := Result{Valid: true, Errors: []FieldError{}}
	for _, r := range rules {
		if failed[r.field] {
			res.Valid = false
			res.Errors = append(res.Errors, FieldError{Field: r.field, Code: r.code, Message: r.message})
		}
	}
	return res
}
