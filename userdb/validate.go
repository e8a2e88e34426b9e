package userdb

import "regexp"

var usernameRe = regexp.MustCompile(`^[a-z_][a-z0-9_-]{0,31}$`)

func validUsername(u string) bool {
	return usernameRe.MatchString(u)
}

// ValidUsername reports whether u satisfies the usual Linux username rules:
// lowercase letters/digits/underscore/dash, starting with a letter or
// underscore, at most 32 characters.
func ValidUsername(u string) bool {
	return validUsername(u)
}
