package otpauth

import (
	"strconv"
	"strings"
)

const (
	scheme     = "otpauth://"
	prefixHOTP = "hotp/"
	prefixTOTP = "totp/"
)

// Query parameter names, in the order String emits them.
const (
	paramSecret    = "secret"
	paramIssuer    = "issuer"
	paramAlgorithm = "algorithm"
	paramDigits    = "digits"
	paramCounter   = "counter"
	paramPeriod    = "period"
)

// Parse converts otpauth:// text into a Key. No percent-decoding is done;
// use ParseEscaped for URIs produced by other tools.
//
// Unlike NewHOTP and NewTOTP, Parse does not default algorithm, digits or
// period: a field missing from the URI is absent from the Key.
//
// On failure the error is a *ParseError wrapping one of the package sentinels.
func Parse(uri string) (Key, error) {
	return parse(uri, identity, identity)
}

// MustParse is like Parse but panics on error.
func MustParse(uri string) Key {
	k, err := Parse(uri)
	if err != nil {
		panic(err)
	}
	return k
}

// unescapeFunc decodes a label component or query value.
type unescapeFunc func(string) (string, error)

func identity(s string) (string, error) { return s, nil }

func parse(uri string, unescapeLabel, unescapeValue unescapeFunc) (Key, error) {
	var k Key

	rest, ok := strings.CutPrefix(uri, scheme)
	if !ok {
		return Key{}, parseErr(uri, "", ErrNotOtpAuthURI)
	}

	switch {
	case strings.HasPrefix(rest, prefixHOTP):
		k.typ = TypeHOTP
		rest = rest[len(prefixHOTP):]
	case strings.HasPrefix(rest, prefixTOTP):
		k.typ = TypeTOTP
		rest = rest[len(prefixTOTP):]
	default:
		return Key{}, parseErr(uri, "", ErrUnknownType)
	}

	label, query, ok := strings.Cut(rest, "?")
	if !ok {
		return Key{}, parseErr(uri, "", ErrMissingQuery)
	}

	if err := k.parseLabel(label, unescapeLabel); err != nil {
		return Key{}, parseErr(uri, "", err)
	}

	for _, token := range strings.Split(query, "&") {
		key, value, _ := strings.Cut(token, "=")
		if err := k.setParam(key, value, unescapeValue); err != nil {
			return Key{}, parseErr(uri, key, err)
		}
	}

	if k.secret == "" {
		return Key{}, parseErr(uri, paramSecret, ErrMissingSecret)
	}
	if k.accountName == "" {
		return Key{}, parseErr(uri, "", ErrMissingAccountName)
	}
	return k, nil
}

// parseLabel splits "issuer:account" on the first colon. A single space after
// the colon is dropped ("Issuer: account").
func (k *Key) parseLabel(label string, unescape unescapeFunc) error {
	issuer, account, found := strings.Cut(label, ":")
	if !found {
		account = label
	}

	var err error
	if found {
		if k.issuer, err = unescape(issuer); err != nil {
			return err
		}
		k.hasIssuer = true
	}
	if k.accountName, err = unescape(account); err != nil {
		return err
	}
	if found {
		k.accountName = strings.TrimPrefix(k.accountName, " ")
	}
	return nil
}

func (k *Key) setParam(key, raw string, unescape unescapeFunc) error {
	value, err := unescape(raw)
	if err != nil {
		return err
	}

	switch key {
	case paramSecret:
		k.secret = value
	case paramIssuer:
		if k.hasIssuer && k.issuer != value {
			return ErrIssuerMismatch
		}
		k.issuer, k.hasIssuer = value, true
	case paramAlgorithm:
		a, err := ParseAlgorithm(value)
		if err != nil {
			return err
		}
		k.algorithm, k.hasAlgo = a, true
	case paramDigits:
		n, err := strconv.Atoi(value)
		if err != nil {
			return ErrInvalidNumber
		}
		k.digits, k.hasDigits = n, true
	case paramCounter:
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return ErrInvalidNumber
		}
		k.counter, k.hasCounter = n, true
	case paramPeriod:
		n, err := strconv.Atoi(value)
		if err != nil {
			return ErrInvalidNumber
		}
		k.period, k.hasPeriod = n, true
	default:
		return ErrUnknownParameter
	}
	return nil
}
