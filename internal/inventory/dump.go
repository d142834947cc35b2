package inventory

import (
	"fmt"
	"os"

	"github.com/hnrobert/hr/internal/accounts"
	"github.com/hnrobert/hr/internal/hostfs"
)

// DefaultMode is the permission of dump files when Dumper.Mode is unset.
const DefaultMode os.FileMode = 0600

// Dumper snapshots accounts from a directory into dump files.
type Dumper struct {
	Dir accounts.Directory
	// Mode is the permission of written files; zero means DefaultMode.
	Mode os.FileMode
}

// Snapshot builds one record per name, in the order given. Duplicate names
// yield duplicate records. Any name without a password entry aborts the
// snapshot with an error wrapping accounts.ErrAccountNotFound.
func (d *Dumper) Snapshot(names []string) ([]UserRecord, error) {
	records := make([]UserRecord, 0, len(names))
	if len(names) == 0 {
		return records, nil
	}

	groups, err := d.Dir.Groups()
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		hash, err := d.Dir.PasswordHash(name)
		if err != nil {
			return nil, err
		}
		records = append(records, UserRecord{
			Name:     name,
			Groups:   groupsFor(groups, name),
			Password: hash,
		})
	}
	return records, nil
}

// Dump writes the records of names to path. The file is replaced
// atomically, a failed dump leaves any previous file untouched.
func (d *Dumper) Dump(path string, names []string) error {
	records, err := d.Snapshot(names)
	if err != nil {
		return err
	}
	mode := d.Mode
	if mode == 0 {
		mode = DefaultMode
	}
	if err := hostfs.WriteFileAtomic(path, Encode(records), mode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// DumpAll dumps every account the directory knows about at call time.
func (d *Dumper) DumpAll(path string) error {
	names, err := d.Dir.AccountNames()
	if err != nil {
		return err
	}
	return d.Dump(path, names)
}

func groupsFor(groups []accounts.Group, user string) []string {
	out := []string{}
	for _, g := range groups {
		if g.HasMember(user) {
			out = append(out, g.Name)
		}
	}
	return out
}
