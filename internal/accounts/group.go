package accounts

import "strings"

type GroupFile struct {
	pf *parsedFile[Group]
}

func LoadGroup(path string) (*GroupFile, error) {
	pf, err := loadFile(path, 4, func(parts []string) (*Group, error) {
		gid, err := atoi(parts[2], "group.gid")
		if err != nil {
			return nil, err
		}
		members := []string{}
		if parts[3] != "" {
			members = strings.Split(parts[3], ",")
		}
		return &Group{Name: parts[0], Passwd: parts[1], GID: gid, Members: members}, nil
	})
	if err != nil {
		return nil, err
	}
	return &GroupFile{pf: pf}, nil
}

// List returns the groups in file order, which is also the order
// getgrent(3) walks them in.
func (f *GroupFile) List() []Group {
	return f.pf.list()
}
