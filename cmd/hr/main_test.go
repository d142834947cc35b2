package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/GehirnInc/crypt/sha512_crypt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnrobert/hr/internal/config"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func runHR(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

// setupHost writes a host root with account files and points hr at it.
func setupHost(t *testing.T, kevinHash string) string {
	t.Helper()
	root := t.TempDir()
	etc := filepath.Join(root, "etc")
	require.NoError(t, os.MkdirAll(etc, 0755))
	files := map[string]string{
		"passwd": "kevin:x:1000:1000::/home/kevin:/bin/bash\nbob:x:1001:1001::/home/bob:/bin/bash\n",
		"shadow": "kevin:" + kevinHash + ":19000:0:99999:7:::\nbob:password:19000:0:99999:7:::\n",
		"group":  "super:x:10:bob\nother:x:20:\nwheel:x:30:bob,kevin\n",
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(etc, name), []byte(body), 0644))
	}

	t.Setenv(config.EnvConfig, "")
	t.Setenv(config.EnvLogDir, "")
	t.Setenv(config.EnvDumpMode, "")
	t.Setenv(config.EnvHostRoot, root)
	return root
}

func TestRun_MissingPath(t *testing.T) {
	res := runHR(t, "")
	assert.Equal(t, 2, res.code)
	assert.Contains(t, res.stderr, "Usage:")
	assert.Contains(t, res.stderr, "PATH")
}

func TestRun_Help(t *testing.T) {
	res := runHR(t, "", "-h")
	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stderr, "--export")
}

func TestRun_ExportThenLoad(t *testing.T) {
	setupHost(t, "password")
	out := filepath.Join(t.TempDir(), "users.json")

	res := runHR(t, "", "--export", out)
	require.Equal(t, 0, res.code, res.stderr)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, `[{"name": "kevin", "groups": ["wheel"], "password": "password"}, {"name": "bob", "groups": ["super", "wheel"], "password": "password"}]`, string(b))

	res = runHR(t, "", out)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "kevin")
	assert.Contains(t, res.stdout, "super,wheel")
	assert.Contains(t, res.stderr, "loaded 2 accounts")
}

func TestRun_ExportSelectedUsers(t *testing.T) {
	setupHost(t, "password")
	out := filepath.Join(t.TempDir(), "users.json")

	res := runHR(t, "", "--export", "--user", "bob", out)
	require.Equal(t, 0, res.code, res.stderr)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, `[{"name": "bob", "groups": ["super", "wheel"], "password": "password"}]`, string(b))
}

func TestRun_ExportUnknownUser(t *testing.T) {
	setupHost(t, "password")
	out := filepath.Join(t.TempDir(), "users.json")

	res := runHR(t, "", "--export", "--user", "lisa", out)
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "account not found")

	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestRun_LoadErrors(t *testing.T) {
	setupHost(t, "password")
	dir := t.TempDir()

	res := runHR(t, "", filepath.Join(dir, "missing.json"))
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "no such file")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("not json"), 0600))
	res = runHR(t, "", bad)
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "decode")
}

func TestRun_ReportAndVerify(t *testing.T) {
	hash, err := sha512_crypt.New().Generate([]byte("hunter2"), []byte("$6$saltsalt"))
	require.NoError(t, err)
	setupHost(t, hash)
	dir := t.TempDir()
	out := filepath.Join(dir, "users.json")
	report := filepath.Join(dir, "report.html")

	require.Equal(t, 0, runHR(t, "", "--export", out).code)

	res := runHR(t, "hunter2\n", "--report", report, "--verify", "kevin", out)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stderr, "password for kevin matches")

	html, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Contains(t, string(html), "sha512-crypt")
	assert.NotContains(t, string(html), hash)

	res = runHR(t, "wrong\n", "--verify", "kevin", out)
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "does not match")

	res = runHR(t, "hunter2\n", "--verify", "lisa", out)
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "account not found")
}

func TestRun_VerifyUnsupportedScheme(t *testing.T) {
	setupHost(t, "$y$j9T$abc$def")
	out := filepath.Join(t.TempDir(), "users.json")
	require.Equal(t, 0, runHR(t, "", "--export", out).code)

	res := runHR(t, "hunter2\n", "--verify", "kevin", out)
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "unsupported password hash (yescrypt)")
}

func TestRun_UnknownFlagPrintsUsage(t *testing.T) {
	res := runHR(t, "", "--bogus", "a.json")
	assert.Equal(t, 2, res.code)
	assert.Contains(t, res.stderr, "unknown flag: --bogus")
	assert.Contains(t, res.stderr, "Usage:")
}
