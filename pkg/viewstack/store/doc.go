// Package store provides viewstack.StateStore implementations.
//
// MemoryStore keeps values for the life of the process and is meant for tests
// and hosts that persist through some other channel. FileStore keeps every key
// in one TOML document on disk. SQLiteStore keeps keys in a SQLite table and is
// what the demo app uses.
package store
