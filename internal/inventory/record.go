package inventory

// UserRecord is one account in a dump.
type UserRecord struct {
	Name string `json:"name"`
	// Groups lists every group whose member list contains Name, in group
	// database order. It is never nil.
	Groups []string `json:"groups"`
	// Password is the raw shadow field: a crypt hash, a placeholder such
	// as "*" or "!", or empty.
	Password string `json:"password"`
}

// Find returns the first record named name.
func Find(records []UserRecord, name string) (UserRecord, bool) {
	for _, r := range records {
		if r.Name == name {
			return r, true
		}
	}
	return UserRecord{}, false
}
