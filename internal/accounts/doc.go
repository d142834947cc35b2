// Package accounts reads the host's account databases.
//
// The databases are the classic flat files under a host root:
//
//	<root>/etc/passwd
//	<root>/etc/shadow
//	<root>/etc/group
//
// Callers go through the Directory interface so the dump logic can run
// against an in-memory directory in tests. The file-backed implementation
// re-reads the files on every call and never writes them.
package accounts
