package userdb

// Package userdb reads the local flat-file user databases: /etc/passwd,
// /etc/shadow and /etc/group (or alternate paths for testing).
//
// Every load parses the whole file into its own value, so concurrent
// lookups never share iteration state. Each parsed line keeps its original
// text; a file serialized without modification reproduces its input
// byte for byte, including comments, blank lines and unparseable entries.
//
// The group database is read-only input. passwd and shadow are rewritten
// only through account.Sync.
