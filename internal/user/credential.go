package user

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 14

type CredentialScheme string

const (
	// SchemeBcrypt is a bcrypt digest of the password.
	SchemeBcrypt CredentialScheme = "bcrypt"
	// SchemePlain is a password stored before hashing was introduced.
	// It exists only so logins can migrate it; no new plain credential
	// is ever written.
	SchemePlain CredentialScheme = "plain"
)

// Credential is the tagged password record of a user: either a bcrypt
// digest or a legacy plaintext value. It persists as a single text
// column in the form "scheme:secret".
type Credential struct {
	Scheme CredentialScheme
	Secret string
}

func NewHashedCredential(password string) (Credential, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return Credential{}, err
	}
	return Credential{Scheme: SchemeBcrypt, Secret: string(hashed)}, nil
}

func LegacyCredential(password string) Credential {
	return Credential{Scheme: SchemePlain, Secret: password}
}

func (c Credential) Verify(password string) bool {
	switch c.Scheme {
	case SchemeBcrypt:
		return bcrypt.CompareHashAndPassword([]byte(c.Secret), []byte(password)) == nil
	case SchemePlain:
		return c.Secret == password
	}
	return false
}

// NeedsRehash reports whether a successful login must rewrite this
// credential in hashed form.
func (c Credential) NeedsRehash() bool {
	return c.Scheme == SchemePlain
}

func (c Credential) Value() (driver.Value, error) {
	if c.Scheme != SchemeBcrypt && c.Scheme != SchemePlain {
		return nil, fmt.Errorf("unknown credential scheme %q", c.Scheme)
	}
	return string(c.Scheme) + ":" + c.Secret, nil
}

func (c *Credential) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Credential", value)
	}

	scheme, secret, found := strings.Cut(raw, ":")
	if !found {
		return fmt.Errorf("stored credential is missing a scheme tag")
	}
	switch CredentialScheme(scheme) {
	case SchemeBcrypt, SchemePlain:
	default:
		return fmt.Errorf("unknown credential scheme %q", scheme)
	}

	c.Scheme = CredentialScheme(scheme)
	c.Secret = secret
	return nil
}
