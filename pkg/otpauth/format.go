package otpauth

import (
	"strconv"
	"strings"
)

// String returns the canonical otpauth:// text of k. Fields are written in
// the order secret, issuer, algorithm, digits, counter, period, and only when
// present. Values are written verbatim without percent-encoding.
func (k Key) String() string {
	return k.format(identityEscape, identityEscape)
}

// URI is an alias for String.
func (k Key) URI() string {
	return k.String()
}

type escapeFunc func(string) string

func identityEscape(s string) string { return s }

func (k Key) format(escapePath, escapeQuery escapeFunc) string {
	var b strings.Builder
	b.WriteString(scheme)
	switch k.typ {
	case TypeHOTP:
		b.WriteString(prefixHOTP)
	case TypeTOTP:
		b.WriteString(prefixTOTP)
	}

	if k.hasIssuer {
		b.WriteString(escapePath(k.issuer))
		b.WriteByte(':')
	}
	b.WriteString(escapePath(k.accountName))

	b.WriteString("?" + paramSecret + "=")
	b.WriteString(escapeQuery(k.secret))

	writeParam := func(name, value string) {
		b.WriteByte('&')
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(value)
	}
	if k.hasIssuer {
		writeParam(paramIssuer, escapeQuery(k.issuer))
	}
	if k.hasAlgo {
		writeParam(paramAlgorithm, string(k.algorithm))
	}
	if k.hasDigits {
		writeParam(paramDigits, strconv.Itoa(k.digits))
	}
	if k.hasCounter {
		writeParam(paramCounter, strconv.FormatUint(k.counter, 10))
	}
	if k.hasPeriod {
		writeParam(paramPeriod, strconv.Itoa(k.period))
	}
	return b.String()
}
