package otpauth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEscapedURI tests percent-encoding of label components and values
func TestEscapedURI(t *testing.T) {
	tests := []struct {
		name string
		key  Key
		want string
	}{
		{
			name: "plain values unchanged",
			key:  MustTOTP("test@mail.com", "HXDMVJECJJWSRB3HWIZR4IFUGFTMXBOZ", WithIssuer("Example")),
			want: "otpauth://totp/Example:test@mail.com?secret=HXDMVJECJJWSRB3HWIZR4IFUGFTMXBOZ&issuer=Example&algorithm=SHA1&digits=6&period=30",
		},
		{
			name: "spaces",
			key:  MustTOTP("john doe@x.com", "S", WithIssuer("ACME Co")),
			want: "otpauth://totp/ACME%20Co:john%20doe@x.com?secret=S&issuer=ACME+Co&algorithm=SHA1&digits=6&period=30",
		},
		{
			name: "colon inside issuer",
			key:  MustHOTP("u", "S", WithIssuer("A:B"), WithCounter(1)),
			want: "otpauth://hotp/A%3AB:u?secret=S&issuer=A%3AB&algorithm=SHA1&digits=6&counter=1",
		},
		{
			name: "reserved characters in secret",
			key:  MustHOTP("u", "a&b=c"),
			want: "otpauth://hotp/u?secret=a%26b%3Dc&algorithm=SHA1&digits=6",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.key.EscapedURI()
			assert.Equal(t, tt.want, got)

			back, err := ParseEscaped(got)
			require.NoError(t, err)
			assert.True(t, tt.key.Equal(back), "got %+v, want %+v", back, tt.key)
		})
	}
}

// TestRawFormattingIsLossy tests why escaping must be opted into for
// values containing URI delimiters
func TestRawFormattingIsLossy(t *testing.T) {
	key := MustHOTP("u", "a&b=c")

	_, err := Parse(key.String())
	assert.ErrorIs(t, err, ErrUnknownParameter)

	back, err := ParseEscaped(key.EscapedURI())
	require.NoError(t, err)
	assert.Equal(t, "a&b=c", back.Secret())
}

// TestParseEscaped tests decoding of URIs produced by other tools
func TestParseEscaped(t *testing.T) {
	key, err := ParseEscaped("otpauth://totp/ACME%20Co:john.doe%40email.com?secret=JBSWY3DPEHPK3PXP&issuer=ACME%20Co&algorithm=SHA256&digits=8&period=60")
	require.NoError(t, err)

	issuer, _ := key.Issuer()
	assert.Equal(t, "ACME Co", issuer)
	assert.Equal(t, "john.doe@email.com", key.AccountName())
	assert.Equal(t, "ACME Co:john.doe@email.com", key.Label())
	algo, _ := key.Algorithm()
	assert.Equal(t, AlgorithmSHA256, algo)
	period, _ := key.Period()
	assert.Equal(t, 60, period)

	key, err = ParseEscaped("otpauth://totp/Ex:%20u?secret=S")
	require.NoError(t, err)
	assert.Equal(t, "u", key.AccountName(), "encoded legacy space is stripped")
}

// TestParseEscapedErrors tests malformed escapes and core rule failures
func TestParseEscapedErrors(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		wantErr error
	}{
		{"bad label escape", "otpauth://totp/u%zz?secret=S", ErrInvalidEscape},
		{"bad issuer escape", "otpauth://totp/E%x:u?secret=S", ErrInvalidEscape},
		{"bad value escape", "otpauth://totp/u?secret=%zz", ErrInvalidEscape},
		{"decoded issuer mismatch", "otpauth://totp/A%20B:u?secret=S&issuer=A+C", ErrIssuerMismatch},
		{"scheme still required", "otpauth%3A//totp/u?secret=S", ErrNotOtpAuthURI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEscaped(tt.uri)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
