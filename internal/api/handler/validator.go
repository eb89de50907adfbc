package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/myflix/movie-api/internal/api/metrics"
	"github.com/myflix/movie-api/internal/core/domain"
)

// rule is one independently reported check on a request field.
type rule struct {
	Param string
	Value string
	Tag   string
	Msg   string
}

// ruleSet is implemented by requests whose checks must all be reported,
// rather than stopping at the first failing tag of each field.
type ruleSet interface {
	rules() []rule
}

// ValidationError mirrors one entry of the 422 response body.
type ValidationError struct {
	Value    any    `json:"value"`
	Msg      string `json:"msg"`
	Param    string `json:"param"`
	Location string `json:"location"`
}

// ValidationErrors is returned by the validator when at least one rule fails.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (e *ValidationErrors) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, ve := range e.Errors {
		msgs[i] = ve.Msg
	}
	return strings.Join(msgs, "; ")
}

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

func NewValidator() *echoValidator {
	v := validator.New()
	if err := v.RegisterValidation("date", isDate); err != nil {
		panic(fmt.Sprintf("validator: register date: %v", err))
	}
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	var out []ValidationError

	if rs, ok := i.(ruleSet); ok {
		for _, r := range rs.rules() {
			if err := ev.v.Var(r.Value, r.Tag); err != nil {
				out = append(out, ValidationError{Value: r.Value, Msg: r.Msg, Param: r.Param, Location: "body"})
			}
		}
	} else if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if !errors.As(err, &ve) {
			return err
		}
		for _, fe := range ve {
			out = append(out, ValidationError{Value: fe.Value(), Msg: fieldError(fe), Param: fe.Field(), Location: "body"})
		}
	}

	if len(out) == 0 {
		return nil
	}
	for _, ve := range out {
		metrics.ValidationFailuresTotal.WithLabelValues(ve.Param).Inc()
	}
	return &ValidationErrors{Errors: out}
}

func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " does not appear to be valid"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "alphanum":
		return field + " contains non alphanumeric characters - not allowed."
	case "date":
		return field + " must be a valid date"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

func isDate(fl validator.FieldLevel) bool {
	_, err := domain.ParseDate(fl.Field().String())
	return err == nil
}
