package hostfs

// Package hostfs provides the staged atomic-install machinery used when
// rewriting the account database files.
//
// A rewrite of /etc/passwd and /etc/shadow must never leave either file
// half-written: each new version is staged as a fully written, fsynced and
// closed temporary file in the same directory as its target, and only then
// renamed into place. Staging and installing are separate steps so a caller
// can stage several files and install them in a fixed order.
