package otpauth

import (
	"errors"
	"fmt"
)

// Errors returned by Parse, ParseEscaped and the constructors.
var (
	// ErrNotOtpAuthURI indicates the text does not start with "otpauth://".
	ErrNotOtpAuthURI = errors.New("otpauth: not an otpauth uri")
	// ErrUnknownType indicates neither "hotp/" nor "totp/" follows the scheme.
	ErrUnknownType = errors.New("otpauth: unknown otp type")
	// ErrMissingQuery indicates there is no '?' separating label and parameters.
	ErrMissingQuery = errors.New("otpauth: missing query")
	// ErrIssuerMismatch indicates the label issuer and the issuer parameter differ.
	ErrIssuerMismatch = errors.New("otpauth: label issuer and issuer parameter do not match")
	// ErrUnknownAlgorithm indicates the algorithm is not SHA1, SHA256 or SHA512.
	ErrUnknownAlgorithm = errors.New("otpauth: unknown algorithm")
	// ErrInvalidNumber indicates digits, counter or period is not an integer.
	ErrInvalidNumber = errors.New("otpauth: invalid number")
	// ErrUnknownParameter indicates a query key outside the recognized set.
	ErrUnknownParameter = errors.New("otpauth: unknown parameter")
	// ErrMissingSecret indicates the secret parameter is absent or empty.
	ErrMissingSecret = errors.New("otpauth: missing secret")
	// ErrMissingAccountName indicates the label has no account name.
	ErrMissingAccountName = errors.New("otpauth: missing account name")
	// ErrInvalidEscape indicates a malformed percent-encoded sequence.
	ErrInvalidEscape = errors.New("otpauth: invalid escape sequence")
	// ErrInvalidArgument indicates a constructor was called with bad input.
	ErrInvalidArgument = errors.New("otpauth: invalid argument")
	// ErrWrongType indicates an operation was used on the other OTP type.
	ErrWrongType = errors.New("otpauth: wrong otp type")
)

// ParseError describes why a URI could not be parsed. Err is always one of
// the sentinel errors above, so callers can branch with errors.Is.
type ParseError struct {
	// URI is the input text.
	URI string
	// Param is the offending query key, if the failure is tied to one.
	Param string
	// Err is the underlying sentinel.
	Err error
}

func (e *ParseError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("%v: parameter %q", e.Err, e.Param)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying sentinel error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseErr(uri, param string, err error) *ParseError {
	return &ParseError{URI: uri, Param: param, Err: err}
}
