package bootstrap

import (
	"time"

	"campus-booking/internal/domain/reservation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

var ValidationModule = fx.Module("validation",
	fx.Invoke(
		RegisterValidations,
	),
)

// RegisterValidations installs the request-level checks gin's binding layer
// runs before anything reaches a usecase.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	return v.RegisterValidation("bookingdate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(reservation.DateLayout, fl.Field().String())
		return err == nil
	})
}
