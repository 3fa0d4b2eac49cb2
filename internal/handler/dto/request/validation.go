package request

import (
	"reflect"
	"strings"

	"github.com/Fox-16s/reservat-io/internal/domain/reservation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the payment_type and currency tags to gin's
// validator and reports fields by their json or form name. Safe to call more
// than once.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	v.RegisterTagNameFunc(wireName)
	if err := v.RegisterValidation("payment_type", validPaymentType); err != nil {
		return err
	}
	return v.RegisterValidation("currency", validCurrency)
}

func validPaymentType(fl validator.FieldLevel) bool {
	_, err := reservation.ParsePaymentType(fl.Field().String())
	return err == nil
}

func validCurrency(fl validator.FieldLevel) bool {
	_, err := reservation.ParseCurrency(fl.Field().String())
	return err == nil
}

func wireName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}
