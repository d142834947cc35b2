package accounts

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPasswd = `root:x:0:0:root:/root:/bin/bash
# local accounts
kevin:x:1000:1000:Kevin:/home/kevin:/bin/bash

bob:x:1001:1001::/home/bob:/bin/sh
broken line
`

const testShadow = `root:*:19000:0:99999:7:::
kevin:$6$salt$hash:19000:0:99999:7:::
bob:!
`

const testGroup = `root:x:0:
super:x:10:bob
other:x:20:
wheel:x:30:bob,kevin
`

func writeRoot(t *testing.T, passwd, shadow, group string) string {
	t.Helper()
	root := t.TempDir()
	etc := filepath.Join(root, "etc")
	require.NoError(t, os.MkdirAll(etc, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(etc, "passwd"), []byte(passwd), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(etc, "shadow"), []byte(shadow), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(etc, "group"), []byte(group), 0644))
	return root
}

func TestFileDirectory_AccountNames(t *testing.T) {
	dir, err := NewFileDirectory(writeRoot(t, testPasswd, testShadow, testGroup))
	require.NoError(t, err)

	names, err := dir.AccountNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"root", "kevin", "bob"}, names)
}

func TestFileDirectory_PasswordHash(t *testing.T) {
	dir, err := NewFileDirectory(writeRoot(t, testPasswd, testShadow, testGroup))
	require.NoError(t, err)

	hash, err := dir.PasswordHash("kevin")
	require.NoError(t, err)
	assert.Equal(t, "$6$salt$hash", hash)

	// Short lines are padded, the password field is kept as-is.
	hash, err = dir.PasswordHash("bob")
	require.NoError(t, err)
	assert.Equal(t, "!", hash)

	_, err = dir.PasswordHash("nobody")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAccountNotFound))
}

func TestFileDirectory_GroupsKeepFileOrder(t *testing.T) {
	dir, err := NewFileDirectory(writeRoot(t, testPasswd, testShadow, testGroup))
	require.NoError(t, err)

	groups, err := dir.Groups()
	require.NoError(t, err)
	require.Len(t, groups, 4)

	var names []string
	for _, g := range groups {
		names = append(names, g.Name)
	}
	assert.Equal(t, []string{"root", "super", "other", "wheel"}, names)
	assert.Equal(t, []string{}, groups[2].Members)
	assert.Equal(t, []string{"bob", "kevin"}, groups[3].Members)
	assert.Equal(t, 30, groups[3].GID)
	assert.True(t, groups[3].HasMember("kevin"))
	assert.False(t, groups[1].HasMember("kevin"))
}

func TestFileDirectory_ReadsAreNotCached(t *testing.T) {
	root := writeRoot(t, testPasswd, testShadow, testGroup)
	dir, err := NewFileDirectory(root)
	require.NoError(t, err)

	groups, err := dir.Groups()
	require.NoError(t, err)
	require.Len(t, groups, 4)

	require.NoError(t, os.WriteFile(dir.GroupPath, []byte("dev:x:40:kevin\n"), 0644))
	groups, err = dir.Groups()
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "dev", groups[0].Name)
}

func TestFileDirectory_InvalidGID(t *testing.T) {
	dir, err := NewFileDirectory(writeRoot(t, testPasswd, testShadow, "wheel:x:abc:kevin\n"))
	require.NoError(t, err)

	_, err = dir.Groups()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "group.gid")
}

func TestFileDirectory_MissingFile(t *testing.T) {
	dir, err := NewFileDirectory(t.TempDir())
	require.NoError(t, err)

	_, err = dir.AccountNames()
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestFileDirectory_UnreadableShadow(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read any file")
	}
	dir, err := NewFileDirectory(writeRoot(t, testPasswd, testShadow, testGroup))
	require.NoError(t, err)
	require.NoError(t, os.Chmod(dir.ShadowPath, 0))

	_, err = dir.PasswordHash("kevin")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrPermission))
}
