package serverutils

import (
	"errors"
	"strings"

	"bizchat-be/internal/pkg/apperr"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation and converts failures
// into a ValidationError keyed by the lowercased field name.
func ValidateRequest(req any) error {
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make(map[string]string)
			for _, fe := range verrs {
				fields[strings.ToLower(fe.Field())] = fe.Tag()
			}
			return apperr.Validation(fields)
		}
		return apperr.ValidationField("request", err.Error())
	}
	return nil
}
