// Package pwhash classifies shadow password fields and checks plaintext
// passwords against them.
package pwhash

import (
	"errors"
	"strings"

	"github.com/GehirnInc/crypt"
	"github.com/GehirnInc/crypt/md5_crypt"
	"github.com/GehirnInc/crypt/sha256_crypt"
	"github.com/GehirnInc/crypt/sha512_crypt"
)

var (
	ErrLocked          = errors.New("account is locked")
	ErrUnsupportedHash = errors.New("unsupported password hash")
	ErrMismatch        = errors.New("password does not match")
)

// Scheme names reported by Scheme.
const (
	SchemeEmpty    = "empty"
	SchemeLocked   = "locked"
	SchemeMD5      = "md5-crypt"
	SchemeSHA256   = "sha256-crypt"
	SchemeSHA512   = "sha512-crypt"
	SchemeYescrypt = "yescrypt"
	SchemeBcrypt   = "bcrypt"
	SchemeUnknown  = "unknown"
)

type scheme struct {
	name   string
	prefix string
	new    func() crypt.Crypter
}

// Order matters only for overlapping prefixes, which these do not have.
var supported = []scheme{
	{SchemeSHA512, "$6$", sha512_crypt.New},
	{SchemeSHA256, "$5$", sha256_crypt.New},
	{SchemeMD5, "$1$", md5_crypt.New},
}

// Formats we recognize but cannot verify in-process. Ubuntu defaults to
// yescrypt ($y$).
var unsupported = []struct{ name, prefix string }{
	{SchemeYescrypt, "$y$"},
	{SchemeYescrypt, "$7$"},
	{SchemeBcrypt, "$2"},
}

// Locked reports whether the field disables password login: empty
// placeholders like "*" and "!" or a hash prefixed with "!".
func Locked(field string) bool {
	return strings.HasPrefix(field, "!") || strings.HasPrefix(field, "*")
}

// Supported reports whether Verify can check passwords against field.
func Supported(field string) bool {
	return !Locked(field) && crypt.IsHashSupported(field) && lookup(field) != nil
}

// Scheme names the format of a shadow password field.
func Scheme(field string) string {
	switch {
	case field == "":
		return SchemeEmpty
	case Locked(field):
		return SchemeLocked
	}
	if s := lookup(field); s != nil {
		return s.name
	}
	for _, u := range unsupported {
		if strings.HasPrefix(field, u.prefix) {
			return u.name
		}
	}
	return SchemeUnknown
}

// Verify checks password against the shadow field. It returns nil on a
// match, ErrMismatch when the password is wrong, ErrLocked for locked
// accounts and ErrUnsupportedHash for formats handled only by the host's
// own crypt(3).
func Verify(field, password string) error {
	if Locked(field) {
		return ErrLocked
	}
	if field == "" {
		// An empty field means no password is required.
		if password == "" {
			return nil
		}
		return ErrMismatch
	}
	s := lookup(field)
	if s == nil {
		return ErrUnsupportedHash
	}
	if err := s.new().Verify(field, []byte(password)); err != nil {
		if errors.Is(err, crypt.ErrKeyMismatch) {
			return ErrMismatch
		}
		return err
	}
	return nil
}

func lookup(field string) *scheme {
	for i := range supported {
		if strings.HasPrefix(field, supported[i].prefix) {
			return &supported[i]
		}
	}
	return nil
}
