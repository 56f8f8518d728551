package otpauth

import (
	"fmt"
	"net/url"
	"strings"
)

// EscapedURI is like String but percent-encodes the label components and
// query values, so the result is a well-formed URL that other authenticator
// tooling can consume. A ':' inside the issuer or account name is encoded as
// "%3A" so that only the separator remains literal.
func (k Key) EscapedURI() string {
	return k.format(escapeLabel, url.QueryEscape)
}

// ParseEscaped is like Parse but percent-decodes the label components and
// query values before applying them. The issuer/account separator is located
// before decoding, so an encoded "%3A" stays inside its component. Malformed
// escapes wrap ErrInvalidEscape.
func ParseEscaped(uri string) (Key, error) {
	return parse(uri, pathUnescape, queryUnescape)
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(url.PathEscape(s), ":", "%3A")
}

func pathUnescape(s string) (string, error) {
	v, err := url.PathUnescape(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEscape, err)
	}
	return v, nil
}

// queryUnescape decodes "+" as a space, matching url.QueryEscape.
func queryUnescape(s string) (string, error) {
	v, err := url.QueryUnescape(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEscape, err)
	}
	return v, nil
}
