package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hasbyte1/go-dotpath/document"
	"github.com/hasbyte1/go-dotpath/internal/cli"
)

const valuesYAML = `l1:
  l2:
    k1: 1
    k2: 2
`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	out, _, err := runStderr(t, stdin, args...)

	return out, err
}

func runStderr(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := cli.NewRootCmd("dotpath", "", "")

	var out, errOut bytes.Buffer

	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestHas(t *testing.T) {
	tcs := map[string]struct {
		path string
		want string
	}{
		"leaf":    {path: "l1.l2.k1", want: "true\n"},
		"missing": {path: "l1.l2.k3", want: "false\n"},
		"empty":   {path: "", want: "false\n"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			out, err := run(t, valuesYAML, "has", "-", tc.path)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestHasDelimiter(t *testing.T) {
	out, err := run(t, valuesYAML, "has", "-", "l1/l2/k2", "--delimiter", "/")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestGet(t *testing.T) {
	out, err := run(t, valuesYAML, "get", "-", "l1.l2.k2")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	out, err = run(t, valuesYAML, "get", "-", "l1.l2")
	require.NoError(t, err)
	assert.Equal(t, "k1: 1\nk2: 2\n", out)

	_, err = run(t, valuesYAML, "get", "-", "l1.zz")
	require.ErrorIs(t, err, cli.ErrPathNotFound)
}

func TestSet(t *testing.T) {
	out, err := run(t, valuesYAML, "set", "-", "l1.l3", "val1")
	require.NoError(t, err)

	got, err := document.Decode(strings.NewReader(out), document.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"l1": map[string]any{
			"l2": map[string]any{"k1": 1, "k2": 2},
			"l3": "val1",
		},
	}, got)
}

func TestSetMissingParent(t *testing.T) {
	out, err := run(t, valuesYAML, "set", "-", "l4.l5", "val1")
	require.NoError(t, err)
	assert.Equal(t, valuesYAML, out)

	out, err = run(t, valuesYAML, "set", "-", "l4.l5", "val1", "--append_missing")
	require.NoError(t, err)
	assert.Contains(t, out, "l4:\n  l5: val1\n")
}

func TestSetWarnsOnlyWhenUnresolved(t *testing.T) {
	_, stderr, err := runStderr(t, valuesYAML, "set", "-", "l4.l5", "val1", "--log_level", "warn")
	require.NoError(t, err)
	assert.Contains(t, stderr, "path does not resolve after set")

	out, stderr, err := runStderr(t, "{}", "set", "-", "a..b", "val1", "-a", "-f", "json", "--log_level", "warn")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": {"": {"b": "val1"}}}`, out)
	assert.NotContains(t, stderr, "path does not resolve after set")
}

func TestSetParsesValue(t *testing.T) {
	out, err := run(t, "{}", "set", "-", "n", "42", "-f", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"n": 42}`, out)

	out, err = run(t, "{}", "set", "-", "n", "42", "-f", "json", "--string")
	require.NoError(t, err)
	assert.JSONEq(t, `{"n": "42"}`, out)

	out, err = run(t, "{}", "set", "-", "m", "{a: [1, 2]}", "-f", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"m": {"a": [1, 2]}}`, out)
}

func TestSetTransform(t *testing.T) {
	out, err := run(t, "{}", "set", "-", "secret", "s3cret", "-f", "json", "--transform", "base64")
	require.NoError(t, err)
	assert.JSONEq(t, `{"secret": "czNjcmV0"}`, out)

	_, err = run(t, "{}", "set", "-", "secret", "s3cret", "--transform", "rot13")
	require.ErrorIs(t, err, cli.ErrInvalidArgument)
}

func TestSetInPlace(t *testing.T) {
	path := writeTemp(t, "values.json", `{"auth": {}}`)

	_, err := run(t, "", "set", path, "auth.admin", "pw", "--transform", "bcrypt", "-i")
	require.NoError(t, err)

	data, err := document.ReadFile(path, document.FormatAuto)
	require.NoError(t, err)

	auth, ok := data["auth"].(map[string]any)
	require.True(t, ok)

	hash, ok := auth["admin"].(string)
	require.True(t, ok)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("pw")))
}

func TestSetOutputFile(t *testing.T) {
	in := writeTemp(t, "values.yaml", valuesYAML)
	outPath := filepath.Join(t.TempDir(), "out.json")

	stdout, err := run(t, "", "set", in, "l1.l2.k1", "9", "-o", outPath)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := document.ReadFile(outPath, document.FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"l1": map[string]any{"l2": map[string]any{"k1": int64(9), "k2": int64(2)}},
	}, data)

	original, err := os.ReadFile(in)
	require.NoError(t, err)
	assert.Equal(t, valuesYAML, string(original))
}

func TestInPlaceStdin(t *testing.T) {
	_, err := run(t, valuesYAML, "del", "-", "l1", "-i")
	require.ErrorIs(t, err, cli.ErrInvalidArgument)
}

func TestDel(t *testing.T) {
	out, err := run(t, valuesYAML, "del", "-", "l1.l2.k1")
	require.NoError(t, err)
	assert.Equal(t, "l1:\n  l2:\n    k2: 2\n", out)

	out, err = run(t, valuesYAML, "del", "-", "l1.l2.k3")
	require.NoError(t, err)
	assert.Equal(t, valuesYAML, out)
}

func TestEmpty(t *testing.T) {
	out, err := run(t, "{}", "empty", "-")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = run(t, valuesYAML, "empty", "-")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)

	out, err = run(t, "a: {}\nb: 1\n", "empty", "-", "a")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	_, err = run(t, valuesYAML, "empty", "-", "nope")
	require.ErrorIs(t, err, cli.ErrPathNotFound)
}

func TestFlattenExpand(t *testing.T) {
	out, err := run(t, valuesYAML, "flatten", "-")
	require.NoError(t, err)
	assert.Equal(t, "l1.l2.k1: 1\nl1.l2.k2: 2\n", out)

	out, err = run(t, out, "expand", "-")
	require.NoError(t, err)
	assert.Equal(t, valuesYAML, out)
}

func TestInvalidGlobalFlags(t *testing.T) {
	_, err := run(t, valuesYAML, "has", "-", "a", "--format", "xml")
	require.ErrorIs(t, err, cli.ErrInvalidArgument)

	_, err = run(t, valuesYAML, "has", "-", "a", "--delimiter", "")
	require.ErrorIs(t, err, cli.ErrInvalidArgument)

	_, err = run(t, valuesYAML, "has", "-", "a", "--log_level", "loud")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, cli.Version))
}
