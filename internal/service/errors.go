package service

import "errors"

// validationErrors are the request-validation failures that map to a 400
// response. Storage faults and not-found/transition errors are deliberately
// excluded; they carry different status codes.
var validationErrors = []error{
	ErrCustomerNameRequired,
	ErrAddressRequired,
	ErrEmptyItems,
	ErrInvalidDeliveryType,
	ErrInvalidQuantity,
	ErrInvalidUnitPrice,
	ErrStatusRequired,
	ErrInvalidStatus,
	ErrMenuNameRequired,
	ErrCategoryNameRequired,
	ErrItemNameRequired,
	ErrModifierNameRequired,
	ErrDuplicateID,
	ErrInvalidPrice,
	ErrHoursIncomplete,
	ErrUnknownDay,
	ErrInvalidClock,
}

// IsValidation reports whether err is a request-validation failure.
func IsValidation(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
