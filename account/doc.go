package account

// Package account models a single host account resolved from the local
// passwd/shadow/group databases: authenticating against it, assuming its
// identity, mutating its password state in memory, and committing that
// state back to both stores as an atomic pair of file installs.
//
// All mutators only affect the in-memory copy; nothing is durable until
// Sync is called.
