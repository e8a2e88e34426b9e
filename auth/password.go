package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/GehirnInc/crypt"
	"github.com/GehirnInc/crypt/md5_crypt"
	"github.com/GehirnInc/crypt/sha256_crypt"
	"github.com/GehirnInc/crypt/sha512_crypt"
)

// saltBytes is the amount of raw random data per salt; 12 bytes encode to
// 16 base64 characters, the maximum sha256-crypt salt length.
const saltBytes = 12

// GenerateSalt produces a fresh sha256-crypt salt: the $5$ tag followed by
// base64-encoded output of a cryptographically secure random source.
func GenerateSalt() (string, error) {
	b := make([]byte, saltBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("reading random salt: %w", err)
	}
	return "$5$" + base64.StdEncoding.EncodeToString(b), nil
}

// HashPassword derives the tagged hash of secret under salt. The salt must
// carry a $5$ tag, as produced by GenerateSalt; the tag and salt are
// embedded in the output so VerifyPassword can rederive them.
func HashPassword(secret, salt string) (string, error) {
	out, err := sha256_crypt.New().Generate([]byte(secret), []byte(salt))
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return out, nil
}

// VerifyPassword recomputes the hash of secret using the tag and salt
// embedded in stored and compares the results. A stored value whose tag or
// salt cannot be parsed fails verification; it is never an error.
func VerifyPassword(secret, stored string) bool {
	// Supported crypt formats:
	// $1$ (md5-crypt), $5$ (sha256-crypt), $6$ (sha512-crypt).
	var crypters []crypt.Crypter
	crypters = append(crypters, sha512_crypt.New())
	crypters = append(crypters, sha256_crypt.New())
	crypters = append(crypters, md5_crypt.New())

	// Verify returns nil on success.
	for _, c := range crypters {
		if err := c.Verify(stored, []byte(secret)); err == nil {
			return true
		}
	}
	return false
}
