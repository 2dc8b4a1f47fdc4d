// Package auth defines the credentials accepted by the SecureDrop journalist
// API and the session token issued in exchange.
//
// Credentials is a closed set: every kind renders through the same wire
// record, so the JSON POSTed to the token endpoint always has exactly the
// fields username, password, and one_time_code regardless of how the
// one-time code was obtained.
package auth

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	validation "github.com/jellydator/validation"
	"github.com/pquerna/otp/hotp"
	"github.com/pquerna/otp/totp"
)

// base32Pattern accepts an RFC 4648 base32 secret with optional padding.
var base32Pattern = regexp.MustCompile(`^[A-Z2-7]+=*$`)

// wireCredentials is the record POSTed to the token endpoint.
type wireCredentials struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	OneTimeCode string `json:"one_time_code"`
}

// Credentials is one of the ways a journalist can prove identity:
// a static one-time code supplied up front (UserPassCode) or a code
// regenerated from a shared secret at serialization time (UserPassTotp,
// UserPassHotp). Implementations live in this package only.
type Credentials interface {
	render(now time.Time) (wireCredentials, error)
}

// Serialize renders creds into the JSON body of a token request. For the
// regenerated kinds the one-time code is computed from the secret using now,
// so the output is time-dependent: serialize at most once per authorization
// attempt, immediately before sending, and never cache the result.
func Serialize(creds Credentials, now time.Time) ([]byte, error) {
	record, err := creds.render(now)
	if err != nil {
		return nil, err
	}
	return json.Marshal(record)
}

// UserPassCode authenticates with a username, passphrase, and a one-time
// code obtained out of band (e.g., read off a hardware token). The code is
// sent verbatim on every authorization attempt.
type UserPassCode struct {
	username    string
	passphrase  string
	oneTimeCode string
}

// NewUserPassCode builds static-code credentials. All three values are
// required.
func NewUserPassCode(username, passphrase, oneTimeCode string) (*UserPassCode, error) {
	err := validation.Errors{
		"username":      validation.Validate(username, validation.Required),
		"passphrase":    validation.Validate(passphrase, validation.Required),
		"one_time_code": validation.Validate(oneTimeCode, validation.Required),
	}.Filter()
	if err != nil {
		return nil, err
	}
	return &UserPassCode{username: username, passphrase: passphrase, oneTimeCode: oneTimeCode}, nil
}

func (c *UserPassCode) render(time.Time) (wireCredentials, error) {
	return wireCredentials{
		Username:    c.username,
		Password:    c.passphrase,
		OneTimeCode: c.oneTimeCode,
	}, nil
}

// UserPassTotp authenticates with a username, passphrase, and a TOTP secret.
// A fresh six-digit code is computed from the secret each time the
// credentials are serialized (RFC 6238, SHA-1, 30-second step).
type UserPassTotp struct {
	username   string
	passphrase string
	secret     string
}

// NewUserPassTotp builds TOTP credentials. The secret is a base32-encoded
// shared secret; whitespace is stripped and case is normalized.
func NewUserPassTotp(username, passphrase, secret string) (*UserPassTotp, error) {
	secret = normalizeSecret(secret)
	if err := validateSecretCredentials(username, passphrase, secret); err != nil {
		return nil, err
	}
	return &UserPassTotp{username: username, passphrase: passphrase, secret: secret}, nil
}

func (c *UserPassTotp) render(now time.Time) (wireCredentials, error) {
	code, err := totp.GenerateCode(c.secret, now)
	if err != nil {
		return wireCredentials{}, fmt.Errorf("generating TOTP code: %w", err)
	}
	return wireCredentials{
		Username:    c.username,
		Password:    c.passphrase,
		OneTimeCode: code,
	}, nil
}

// UserPassHotp authenticates with a username, passphrase, and an HOTP secret
// plus counter. A fresh six-digit code is computed at serialization time
// (RFC 4226, SHA-1). The counter identifies the authorization attempt; the
// caller advances it between attempts, mirroring the server's window.
type UserPassHotp struct {
	username   string
	passphrase string
	secret     string
	counter    uint64
}

// NewUserPassHotp builds HOTP credentials for the given counter value.
func NewUserPassHotp(username, passphrase, secret string, counter uint64) (*UserPassHotp, error) {
	secret = normalizeSecret(secret)
	if err := validateSecretCredentials(username, passphrase, secret); err != nil {
		return nil, err
	}
	return &UserPassHotp{username: username, passphrase: passphrase, secret: secret, counter: counter}, nil
}

func (c *UserPassHotp) render(time.Time) (wireCredentials, error) {
	code, err := hotp.GenerateCode(c.secret, c.counter)
	if err != nil {
		return wireCredentials{}, fmt.Errorf("generating HOTP code: %w", err)
	}
	return wireCredentials{
		Username:    c.username,
		Password:    c.passphrase,
		OneTimeCode: code,
	}, nil
}

func normalizeSecret(secret string) string {
	return strings.ToUpper(strings.ReplaceAll(secret, " ", ""))
}

func validateSecretCredentials(username, passphrase, secret string) error {
	return validation.Errors{
		"username":   validation.Validate(username, validation.Required),
		"passphrase": validation.Validate(passphrase, validation.Required),
		"secret": validation.Validate(secret,
			validation.Required,
			validation.Match(base32Pattern).Error("must be base32"),
		),
	}.Filter()
}
