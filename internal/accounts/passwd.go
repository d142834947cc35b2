package accounts

type PasswdFile struct {
	pf *parsedFile[PasswdEntry]
}

func LoadPasswd(path string) (*PasswdFile, error) {
	pf, err := loadFile(path, 7, func(parts []string) (*PasswdEntry, error) {
		uid, err := atoi(parts[2], "passwd.uid")
		if err != nil {
			return nil, err
		}
		gid, err := atoi(parts[3], "passwd.gid")
		if err != nil {
			return nil, err
		}
		return &PasswdEntry{
			Name:   parts[0],
			Passwd: parts[1],
			UID:    uid,
			GID:    gid,
			Gecos:  parts[4],
			Home:   parts[5],
			Shell:  parts[6],
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return &PasswdFile{pf: pf}, nil
}

// Names returns the login names in file order.
func (f *PasswdFile) Names() []string {
	out := make([]string, 0, len(f.pf.entries))
	for _, e := range f.pf.entries {
		out = append(out, e.Name)
	}
	return out
}
