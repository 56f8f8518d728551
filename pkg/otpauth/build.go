package otpauth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// structValidator is safe for concurrent use and caches struct metadata.
var structValidator = validator.New(validator.WithRequiredStructEnabled())

// Option configures an optional field of a Key built by NewHOTP or NewTOTP.
type Option func(*options)

type options struct {
	issuer    *string
	algorithm Algorithm
	digits    *int
	counter   *uint64
	period    *int
}

// WithIssuer sets the issuer. It also becomes the label prefix.
func WithIssuer(issuer string) Option {
	return func(o *options) { o.issuer = &issuer }
}

// WithAlgorithm sets the hash algorithm. Default: SHA1.
func WithAlgorithm(a Algorithm) Option {
	return func(o *options) { o.algorithm = a }
}

// WithDigits sets the code length. Default: 6.
func WithDigits(n int) Option {
	return func(o *options) { o.digits = &n }
}

// WithCounter sets the HOTP counter. It has no default and is ignored by
// NewTOTP.
func WithCounter(c uint64) Option {
	return func(o *options) { o.counter = &c }
}

// WithPeriod sets the TOTP period in seconds. Default: 30. Ignored by NewHOTP.
func WithPeriod(seconds int) Option {
	return func(o *options) { o.period = &seconds }
}

// keyParams holds the constructor inputs checked by the validator.
type keyParams struct {
	AccountName string    `validate:"required"`
	Secret      string    `validate:"required"`
	Algorithm   Algorithm `validate:"omitempty,oneof=SHA1 SHA256 SHA512"`
}

func (p keyParams) validate() error {
	err := structValidator.Struct(p)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s must not be empty", fe.Field()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of %s", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidArgument, strings.Join(msgs, "; "))
}

// NewHOTP builds a counter-based Key. Algorithm and digits are defaulted;
// the counter is stored only if WithCounter is given.
func NewHOTP(accountName, secret string, opts ...Option) (Key, error) {
	return newKey(TypeHOTP, accountName, secret, opts)
}

// NewTOTP builds a time-based Key. Algorithm, digits and period are defaulted.
func NewTOTP(accountName, secret string, opts ...Option) (Key, error) {
	return newKey(TypeTOTP, accountName, secret, opts)
}

// MustHOTP is like NewHOTP but panics on error.
func MustHOTP(accountName, secret string, opts ...Option) Key {
	k, err := NewHOTP(accountName, secret, opts...)
	if err != nil {
		panic(err)
	}
	return k
}

// MustTOTP is like NewTOTP but panics on error.
func MustTOTP(accountName, secret string, opts ...Option) Key {
	k, err := NewTOTP(accountName, secret, opts...)
	if err != nil {
		panic(err)
	}
	return k
}

func newKey(typ Type, accountName, secret string, opts []Option) (Key, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	p := keyParams{AccountName: accountName, Secret: secret, Algorithm: o.algorithm}
	if err := p.validate(); err != nil {
		return Key{}, err
	}

	k := Key{
		typ:         typ,
		accountName: accountName,
		secret:      secret,
		algorithm:   DefaultAlgorithm,
		hasAlgo:     true,
		digits:      DefaultDigits,
		hasDigits:   true,
	}
	if o.issuer != nil {
		k.issuer, k.hasIssuer = *o.issuer, true
	}
	if o.algorithm != "" {
		k.algorithm = o.algorithm
	}
	if o.digits != nil {
		k.digits = *o.digits
	}

	switch typ {
	case TypeHOTP:
		if o.counter != nil {
			k.counter, k.hasCounter = *o.counter, true
		}
	case TypeTOTP:
		k.period, k.hasPeriod = DefaultPeriod, true
		if o.period != nil {
			k.period = *o.period
		}
	}
	return k, nil
}
