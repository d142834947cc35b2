package accounts

type ShadowFile struct {
	pf *parsedFile[ShadowEntry]
}

func LoadShadow(path string) (*ShadowFile, error) {
	pf, err := loadFile(path, 2, func(parts []string) (*ShadowEntry, error) {
		for len(parts) < 9 {
			parts = append(parts, "")
		}
		return &ShadowEntry{
			Name:       parts[0],
			Hash:       parts[1],
			LastChange: parts[2],
			Min:        parts[3],
			Max:        parts[4],
			Warn:       parts[5],
			Inactive:   parts[6],
			Expire:     parts[7],
			Reserved:   parts[8],
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return &ShadowFile{pf: pf}, nil
}

func (f *ShadowFile) Find(name string) *ShadowEntry {
	return f.pf.find(func(e *ShadowEntry) bool { return e.Name == name })
}
