package hostfs

import (
	"errors"
	"path/filepath"
	"strings"
)

// Well-known account file locations, relative to the host root.
const (
	EtcPasswdRel = "etc/passwd"
	EtcShadowRel = "etc/shadow"
	EtcGroupRel  = "etc/group"
)

// DefaultRoot is the root of the running system.
const DefaultRoot = "/"

var ErrInvalidPath = errors.New("invalid host path")

// Path joins root with a relative path (a leading slash is ignored).
// Example: Path("/mnt/img", "etc/passwd") -> /mnt/img/etc/passwd
func Path(root, rel string) (string, error) {
	if root == "" {
		root = DefaultRoot
	}
	rel = strings.TrimPrefix(rel, "/")
	clean := filepath.Clean(rel)
	if clean == "." || clean == "" {
		return "", ErrInvalidPath
	}
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return "", ErrInvalidPath
	}
	return filepath.Join(root, clean), nil
}
