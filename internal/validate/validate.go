// Package validate plugs go-playground/validator into echo.
package validate

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// fieldMessenger lets a request map a failed field to a client-facing error.
type fieldMessenger interface {
	ValidationError(field string) error
}

type selfValidator interface {
	Validate() error
}

// Validator implements echo.Validator.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	return &Validator{v: validator.New()}
}

// Validate runs struct tags first, then the value's own Validate method when it has one.
// Tag failures are reported for the first failing field only.
func (val *Validator) Validate(i interface{}) error {
	if err := val.v.Struct(i); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			if m, ok := i.(fieldMessenger); ok {
				return m.ValidationError(fieldErrs[0].StructField())
			}
		}
		return err
	}

	if s, ok := i.(selfValidator); ok {
		return s.Validate()
	}
	return nil
}
