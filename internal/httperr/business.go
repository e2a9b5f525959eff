package httperr

import "errors"

// BusinessError carries a machine-readable rule-violation code from the
// service layer up to the handler that translates it to an HTTP status.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

// ErrBusiness wraps a rule code like "resource_unavailable" or
// "not_request_owner" as an error the handler boundary can classify.
func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness reports whether err is a BusinessError with the given code,
// unwrapping as needed.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
