package accounts

import (
	"errors"
	"fmt"

	"github.com/hnrobert/hr/internal/hostfs"
)

// ErrAccountNotFound is returned for names without a password entry.
var ErrAccountNotFound = errors.New("account not found")

// Directory is the view of the host's account databases that dumping
// needs. Implementations must not cache: every call reflects the
// databases at call time.
type Directory interface {
	// AccountNames lists every login name in password database order.
	AccountNames() ([]string, error)

	// PasswordHash returns the password field of the shadow entry for name.
	// It returns an error wrapping ErrAccountNotFound when there is none.
	PasswordHash(name string) (string, error)

	// Groups lists every group in group database order.
	Groups() ([]Group, error)
}

// FileDirectory reads passwd, shadow and group files.
type FileDirectory struct {
	PasswdPath string
	ShadowPath string
	GroupPath  string
}

var _ Directory = (*FileDirectory)(nil)

// NewFileDirectory resolves the account files under root.
func NewFileDirectory(root string) (*FileDirectory, error) {
	passwd, err := hostfs.Path(root, hostfs.EtcPasswdRel)
	if err != nil {
		return nil, err
	}
	shadow, err := hostfs.Path(root, hostfs.EtcShadowRel)
	if err != nil {
		return nil, err
	}
	group, err := hostfs.Path(root, hostfs.EtcGroupRel)
	if err != nil {
		return nil, err
	}
	return &FileDirectory{PasswdPath: passwd, ShadowPath: shadow, GroupPath: group}, nil
}

func (d *FileDirectory) AccountNames() ([]string, error) {
	pw, err := LoadPasswd(d.PasswdPath)
	if err != nil {
		return nil, err
	}
	return pw.Names(), nil
}

func (d *FileDirectory) PasswordHash(name string) (string, error) {
	sh, err := LoadShadow(d.ShadowPath)
	if err != nil {
		return "", err
	}
	se := sh.Find(name)
	if se == nil {
		return "", fmt.Errorf("%w: %s", ErrAccountNotFound, name)
	}
	return se.Hash, nil
}

func (d *FileDirectory) Groups() ([]Group, error) {
	gr, err := LoadGroup(d.GroupPath)
	if err != nil {
		return nil, err
	}
	return gr.List(), nil
}
