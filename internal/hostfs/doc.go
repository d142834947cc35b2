// Package hostfs provides access helpers for the account files of a host.
//
// Paths are resolved under a root directory. On a live system the root is
// "/", when the host filesystem is mounted elsewhere (a container, a chroot,
// an image being inspected) the root points there instead:
//
//	etc/passwd  -> <root>/etc/passwd
//	etc/shadow  -> <root>/etc/shadow
//	etc/group   -> <root>/etc/group
package hostfs
