package otpauth

// Type represents the OTP algorithm type.
type Type string

const (
	// TypeHOTP represents Counter-based OTP (RFC 4226).
	TypeHOTP Type = "hotp"
	// TypeTOTP represents Time-based OTP (RFC 6238).
	TypeTOTP Type = "totp"
)

// Algorithm represents the hash algorithm named in the URI.
type Algorithm string

const (
	// AlgorithmSHA1 uses SHA1 hash algorithm.
	AlgorithmSHA1 Algorithm = "SHA1"
	// AlgorithmSHA256 uses SHA256 hash algorithm.
	AlgorithmSHA256 Algorithm = "SHA256"
	// AlgorithmSHA512 uses SHA512 hash algorithm.
	AlgorithmSHA512 Algorithm = "SHA512"
)

// Defaults applied by NewHOTP and NewTOTP.
const (
	DefaultAlgorithm = AlgorithmSHA1
	DefaultDigits    = 6
	DefaultPeriod    = 30
)

// ParseAlgorithm returns the Algorithm named by s. Matching is exact and
// case-sensitive.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch a := Algorithm(s); a {
	case AlgorithmSHA1, AlgorithmSHA256, AlgorithmSHA512:
		return a, nil
	}
	return "", ErrUnknownAlgorithm
}

// Valid reports whether a is one of the three recognized algorithms.
func (a Algorithm) Valid() bool {
	_, err := ParseAlgorithm(string(a))
	return err == nil
}

// Key is an immutable set of OTP enrollment parameters, the structured form
// of an otpauth:// URI.
//
// The zero Key is not valid; obtain one from NewHOTP, NewTOTP or Parse.
// Keys are comparable with == and safe for concurrent use.
type Key struct {
	typ         Type
	issuer      string
	hasIssuer   bool
	accountName string
	secret      string
	algorithm   Algorithm
	hasAlgo     bool
	digits      int
	hasDigits   bool
	counter     uint64
	hasCounter  bool
	period      int
	hasPeriod   bool
}

// Type returns the OTP type.
func (k Key) Type() Type { return k.typ }

// Label returns "issuer:accountName" when an issuer is present and
// accountName otherwise.
func (k Key) Label() string {
	if k.hasIssuer {
		return k.issuer + ":" + k.accountName
	}
	return k.accountName
}

// Issuer returns the issuer and whether one is present.
func (k Key) Issuer() (string, bool) { return k.issuer, k.hasIssuer }

// AccountName returns the account portion of the label.
func (k Key) AccountName() string { return k.accountName }

// Secret returns the shared secret exactly as it appears in the URI.
func (k Key) Secret() string { return k.secret }

// Algorithm returns the hash algorithm and whether one is present.
func (k Key) Algorithm() (Algorithm, bool) { return k.algorithm, k.hasAlgo }

// Digits returns the code length and whether one is present.
func (k Key) Digits() (int, bool) { return k.digits, k.hasDigits }

// Counter returns the HOTP counter and whether one is present.
func (k Key) Counter() (uint64, bool) { return k.counter, k.hasCounter }

// Period returns the TOTP period in seconds and whether one is present.
func (k Key) Period() (int, bool) { return k.period, k.hasPeriod }

// Equal reports whether k and other hold the same parameters.
func (k Key) Equal(other Key) bool {
	return k == other
}
