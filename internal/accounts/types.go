package accounts

type PasswdEntry struct {
	Name   string
	Passwd string
	UID    int
	GID    int
	Gecos  string
	Home   string
	Shell  string
}

type ShadowEntry struct {
	Name       string
	Hash       string
	LastChange string
	Min        string
	Max        string
	Warn       string
	Inactive   string
	Expire     string
	Reserved   string
}

// Group is one group database entry. Members keeps the order of the
// member list in the file.
type Group struct {
	Name    string
	Passwd  string
	GID     int
	Members []string
}

// HasMember reports whether user is listed as a supplementary member.
func (g Group) HasMember(user string) bool {
	for _, m := range g.Members {
		if m == user {
			return true
		}
	}
	return false
}
