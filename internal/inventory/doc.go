// Package inventory dumps the host's users, their group memberships and
// their password fields to a JSON file, and loads such files back.
//
// A dump file is a JSON array of objects with the keys "name", "groups"
// and "password", in that order:
//
//	[{"name": "kevin", "groups": ["wheel"], "password": "$6$..."}]
package inventory
