package validation

import (
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns a configured validator with custom struct-level validation registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	// register struct-level validation for CheckoutRequest: the mandatory
	// contact fields must be non-blank after trimming. Name is exempt
	// because the session identity prefills it.
	v.RegisterStructValidation(checkoutStructValidation, CheckoutRequest{})

	return v
}

func checkoutStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(CheckoutRequest)

	if strings.TrimSpace(req.Customer.Email) == "" {
		sl.ReportError(req.Customer.Email, "customer.email", "Email", "required", "")
	}
	if strings.TrimSpace(req.Customer.Phone) == "" {
		sl.ReportError(req.Customer.Phone, "customer.phone", "Phone", "required", "")
	}
	if strings.TrimSpace(req.Customer.Address) == "" {
		sl.ReportError(req.Customer.Address, "customer.address", "Address", "required", "")
	}
}
