package validation

import (
	"fmt"
	"slices"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterQueryValidators adds the "sortfield" and "sortorder" tags,
// accepting exactly the given values.
func RegisterQueryValidators(v *validator.Validate, sortFields, sortOrders []string) error {
	if err := v.RegisterValidation("sortfield", oneOfValues(sortFields)); err != nil {
		return fmt.Errorf("register sortfield validator: %w", err)
	}
	if err := v.RegisterValidation("sortorder", oneOfValues(sortOrders)); err != nil {
		return fmt.Errorf("register sortorder validator: %w", err)
	}
	return nil
}

// RegisterBindingValidators installs the query validators on gin's default
// binding engine so ShouldBindQuery enforces them.
func RegisterBindingValidators(sortFields, sortOrders []string) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
	}
	return RegisterQueryValidators(v, sortFields, sortOrders)
}

func oneOfValues(allowed []string) validator.Func {
	allowed = slices.Clone(allowed)
	return func(fl validator.FieldLevel) bool {
		return slices.Contains(allowed, fl.Field().String())
	}
}
