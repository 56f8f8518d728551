// Package otpauth parses and builds otpauth:// URIs, the enrollment format
// used by authenticator apps such as Google Authenticator and Authy.
//
// The URI form is:
//
//	otpauth://{hotp|totp}/{label}?secret={secret}[&issuer=..][&algorithm=..][&digits=..][&counter=..][&period=..]
//	label := accountName | issuer ":" accountName
//
// # Building a Key
//
//	key, err := otpauth.NewTOTP("user@example.com", "JBSWY3DPEHPK3PXP",
//	    otpauth.WithIssuer("MyApp"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(key)
//	// otpauth://totp/MyApp:user@example.com?secret=JBSWY3DPEHPK3PXP&issuer=MyApp&algorithm=SHA1&digits=6&period=30
//
// NewHOTP and NewTOTP fill in SHA1, 6 digits and (for TOTP) a 30 second
// period when those options are not given. HOTP keys carry a counter only if
// WithCounter is used.
//
// # Parsing
//
//	key, err := otpauth.Parse(uri)
//	if errors.Is(err, otpauth.ErrIssuerMismatch) {
//	    // label and issuer parameter disagree
//	}
//
// Parse keeps what the URI says: it does not default algorithm, digits or
// period, so reformatting a parsed key never adds fields.
//
// # Escaping
//
// Parse and String treat every component as literal text. EscapedURI and
// ParseEscaped add percent-encoding for interoperability with tools that
// expect well-formed URLs.
//
// # Code Generation
//
// This package does not compute codes. OTPKey, TOTPOpts and HOTPOpts hand the
// parameters to github.com/pquerna/otp:
//
//	opts, err := key.TOTPOpts()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	code, err := totp.GenerateCodeCustom(key.Secret(), time.Now(), opts)
//
// # Thread Safety
//
// Key values are immutable and safe for concurrent use.
package otpauth
