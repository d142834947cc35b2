// Package fake provides an in-memory accounts.Directory.
package fake

import (
	"fmt"

	"github.com/hnrobert/hr/internal/accounts"
)

type user struct {
	name string
	hash string
}

// Directory holds users and groups in insertion order. The zero value is
// an empty directory.
type Directory struct {
	users  []user
	groups []accounts.Group

	// Err, when set, is returned from every method.
	Err error
}

var _ accounts.Directory = (*Directory)(nil)

// AddUser appends a user with the given shadow password field.
func (d *Directory) AddUser(name, hash string) *Directory {
	d.users = append(d.users, user{name: name, hash: hash})
	return d
}

// AddGroup appends a group with the given members.
func (d *Directory) AddGroup(name string, members ...string) *Directory {
	if members == nil {
		members = []string{}
	}
	d.groups = append(d.groups, accounts.Group{Name: name, GID: 1000 + len(d.groups), Members: members})
	return d
}

func (d *Directory) AccountNames() ([]string, error) {
	if d.Err != nil {
		return nil, d.Err
	}
	out := make([]string, 0, len(d.users))
	for _, u := range d.users {
		out = append(out, u.name)
	}
	return out, nil
}

func (d *Directory) PasswordHash(name string) (string, error) {
	if d.Err != nil {
		return "", d.Err
	}
	for _, u := range d.users {
		if u.name == name {
			return u.hash, nil
		}
	}
	return "", fmt.Errorf("%w: %s", accounts.ErrAccountNotFound, name)
}

func (d *Directory) Groups() ([]accounts.Group, error) {
	if d.Err != nil {
		return nil, d.Err
	}
	out := make([]accounts.Group, len(d.groups))
	for i, g := range d.groups {
		g.Members = append([]string{}, g.Members...)
		out[i] = g
	}
	return out, nil
}
