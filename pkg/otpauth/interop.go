package otpauth

import (
	"fmt"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/hotp"
	"github.com/pquerna/otp/totp"
)

// OTPKey converts k into a github.com/pquerna/otp key. The URL is built with
// EscapedURI, since pquerna/otp parses it with net/url.
func (k Key) OTPKey() (*otp.Key, error) {
	key, err := otp.NewKeyFromURL(k.EscapedURI())
	if err != nil {
		return nil, fmt.Errorf("otpauth: failed to build otp key: %w", err)
	}
	return key, nil
}

// FromOTPKey converts a github.com/pquerna/otp key, such as one returned by
// totp.Generate, into a Key.
func FromOTPKey(key *otp.Key) (Key, error) {
	if key == nil {
		return Key{}, fmt.Errorf("%w: otp key is nil", ErrInvalidArgument)
	}
	return ParseEscaped(key.URL())
}

// TOTPOpts returns the pquerna/otp options needed to generate or validate
// codes for a TOTP key. Absent fields take the usual defaults. Skew is left
// for the caller to set.
func (k Key) TOTPOpts() (totp.ValidateOpts, error) {
	if k.typ != TypeTOTP {
		return totp.ValidateOpts{}, fmt.Errorf("%w: TOTPOpts requires a totp key, got %q", ErrWrongType, k.typ)
	}
	algo, digits, err := k.otpParams()
	if err != nil {
		return totp.ValidateOpts{}, err
	}
	period := DefaultPeriod
	if k.hasPeriod {
		period = k.period
	}
	if period <= 0 {
		return totp.ValidateOpts{}, fmt.Errorf("%w: period must be positive, got %d", ErrInvalidArgument, period)
	}
	return totp.ValidateOpts{
		Period:    uint(period),
		Digits:    digits,
		Algorithm: algo,
	}, nil
}

// HOTPOpts returns the pquerna/otp options needed to generate or validate
// codes for an HOTP key. The counter itself is available from Counter.
func (k Key) HOTPOpts() (hotp.ValidateOpts, error) {
	if k.typ != TypeHOTP {
		return hotp.ValidateOpts{}, fmt.Errorf("%w: HOTPOpts requires a hotp key, got %q", ErrWrongType, k.typ)
	}
	algo, digits, err := k.otpParams()
	if err != nil {
		return hotp.ValidateOpts{}, err
	}
	return hotp.ValidateOpts{
		Digits:    digits,
		Algorithm: algo,
	}, nil
}

func (k Key) otpParams() (otp.Algorithm, otp.Digits, error) {
	var algo otp.Algorithm
	switch a, _ := k.Algorithm(); a {
	case AlgorithmSHA1, "":
		algo = otp.AlgorithmSHA1
	case AlgorithmSHA256:
		algo = otp.AlgorithmSHA256
	case AlgorithmSHA512:
		algo = otp.AlgorithmSHA512
	}

	digits := DefaultDigits
	if k.hasDigits {
		digits = k.digits
	}
	if digits <= 0 {
		return algo, 0, fmt.Errorf("%w: digits must be positive, got %d", ErrInvalidArgument, digits)
	}
	return algo, otp.Digits(digits), nil
}
