package auth

// Package auth provides the credential primitives for host accounts:
// crypt(3)-style salted hashing and verification against shadow hash
// strings, and short-lived HS256 session tokens minted after a successful
// authentication.
//
// New hashes always use sha256-crypt ($5$). Verification additionally
// accepts $1$ (md5-crypt) and $6$ (sha512-crypt) so entries written by
// other tools keep working.
