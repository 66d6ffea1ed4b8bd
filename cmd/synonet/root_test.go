package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/synonet/config"
	"github.com/katalvlaran/synonet/engine"
)

var sources = []string{
	"--thesaurus", "testdata/thesaurus.txt",
	"--dictionary", "testdata/dict.csv",
	"--log-level", "error",
}

// execute runs the root command with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := execute(t, "", append(append([]string{}, sources...), args...)...)
	require.NoError(t, err)
	return out
}

func TestRootCmd_Commands(t *testing.T) {
	root := newRootCmd()
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"exists", "path", "level", "connected", "info", "synonyms", "walk", "define", "stats", "repl", "version"} {
		assert.Contains(t, names, want)
	}

	for _, flag := range []string{"config", "thesaurus", "dictionary", "delimiter", "log-level", "json"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}

func TestPathCmd(t *testing.T) {
	assert.Equal(t, "happy -> joyful -> elated\n", mustRun(t, "path", "happy", "elated"))
	assert.Equal(t, "happy -> joyful -> elated\n", mustRun(t, "path", " Happy", "ELATED"))
	assert.Equal(t, "not found\n", mustRun(t, "path", "happy", "sad"))
	assert.Equal(t, "not found\n", mustRun(t, "path", "happy", "xyzzy"))
	assert.Equal(t, "null\n", mustRun(t, "--json", "path", "happy", "sad"))
}

func TestPathCmd_JSON(t *testing.T) {
	var path []string
	require.NoError(t, json.Unmarshal([]byte(mustRun(t, "--json", "path", "glad", "ecstatic")), &path))
	assert.Equal(t, []string{"glad", "happy", "joyful", "elated", "ecstatic"}, path)
}

func TestPathCmd_RequiresTwoArgs(t *testing.T) {
	_, err := execute(t, "", append(append([]string{}, sources...), "path", "happy")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestLevelAndConnectedCmds(t *testing.T) {
	assert.Equal(t, "3\n", mustRun(t, "level", "happy", "ecstatic"))
	assert.Equal(t, "0\n", mustRun(t, "level", "sad", "sad"))
	assert.Equal(t, "not found\n", mustRun(t, "level", "happy", "gloomy"))
	assert.Equal(t, "2\n", mustRun(t, "--json", "level", "happy", "elated"))

	assert.Equal(t, "true\n", mustRun(t, "connected", "glad", "ecstatic"))
	assert.Equal(t, "false\n", mustRun(t, "connected", "glad", "gloomy"))
}

func TestExistsCmd(t *testing.T) {
	assert.Equal(t, "true\n", mustRun(t, "exists", "gloomy"))
	assert.Equal(t, "false\n", mustRun(t, "exists", "xyzzy"))
}

func TestInfoCmd(t *testing.T) {
	want := `path: happy -> joyful -> elated
level: 2
synonyms:
  happy: glad, content
  joyful: cheerful
  elated: ecstatic
definitions:
  happy: Feeling or showing pleasure, contentment, or joy.
  joyful: Feeling great happiness.
  elated: Ecstatically happy.
`
	assert.Equal(t, want, mustRun(t, "info", "happy", "elated"))
	assert.Equal(t, "not found\n", mustRun(t, "info", "happy", "sad"))

	var info engine.PathInfo
	require.NoError(t, json.Unmarshal([]byte(mustRun(t, "--json", "info", "happy", "elated")), &info))
	assert.Equal(t, 2, info.Level)
	assert.Equal(t, []string{"ecstatic"}, info.Synonyms["elated"])
}

func TestSynonymsCmd(t *testing.T) {
	assert.Equal(t, "happy: glad, content\njoyful: elated, cheerful\n", mustRun(t, "synonyms", "happy", "joyful"))
	assert.Equal(t, "xyzzy: (none)\n", mustRun(t, "synonyms", "xyzzy"))
	assert.Equal(t, "happy: glad, content\njoyful: cheerful\nelated: ecstatic\n",
		mustRun(t, "synonyms", "--between", "happy", "elated"))
	assert.Equal(t, "not found\n", mustRun(t, "synonyms", "--between", "happy", "sad"))

	_, err := execute(t, "", append(append([]string{}, sources...), "synonyms", "--between", "happy")...)
	assert.Error(t, err)
}

func TestWalkCmd(t *testing.T) {
	// happy -> joyful -> elated -> ecstatic is the only four-word chain from happy.
	assert.Equal(t, "happy -> joyful -> elated -> ecstatic\n", mustRun(t, "walk", "happy", "3", "--seed", "1"))
	assert.Equal(t, "not found\n", mustRun(t, "walk", "happy", "4"))
	assert.Equal(t, "not found\n", mustRun(t, "walk", "happy", "9223372036854775807"))
	assert.Equal(t, "not found\n", mustRun(t, "walk", "xyzzy", "1"))
	assert.Equal(t, "not found\n", mustRun(t, "walk", "happy", "0"))

	_, err := execute(t, "", append(append([]string{}, sources...), "walk", "happy", "deep")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "depth must be an integer")
}

func TestWalkCmd_SeedReproducible(t *testing.T) {
	a := mustRun(t, "walk", "joyful", "2", "--seed", "99")
	b := mustRun(t, "walk", "joyful", "2", "--seed", "99")
	assert.Equal(t, a, b)
	assert.True(t, strings.HasPrefix(a, "joyful -> "))
}

func TestDefineCmd(t *testing.T) {
	want := "happy: Feeling or showing pleasure, contentment, or joy.\n" +
		"glad: This word is not currently in our dictionary.\n"
	assert.Equal(t, want, mustRun(t, "define", "happy", "glad"))

	var defs map[string]string
	require.NoError(t, json.Unmarshal([]byte(mustRun(t, "--json", "define", "sad")), &defs))
	assert.Equal(t, map[string]string{"sad": "Feeling sorrow."}, defs)
}

func TestStatsCmd(t *testing.T) {
	var st engine.Stats
	require.NoError(t, json.Unmarshal([]byte(mustRun(t, "--json", "stats")), &st))
	assert.Equal(t, 10, st.Vertices)
	assert.Equal(t, 8, st.Edges)
	assert.Equal(t, 4, st.Definitions)
	assert.Equal(t, 2, st.Components)
	assert.Equal(t, 7, st.LargestComponent)

	out := mustRun(t, "stats")
	assert.Contains(t, out, "vertices     10")
	assert.Contains(t, out, "edges        8")
	assert.Contains(t, out, "components   2")
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "synonet version dev\n", out)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "synonet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
thesaurus:
  path: testdata/thesaurus.txt
dictionary:
  path: ""
log:
  level: error
`), 0o600))

	out, err := execute(t, "", "--config", path, "define", "happy")
	require.NoError(t, err)
	assert.Equal(t, "happy: This word is not currently in our dictionary.\n", out)

	out, err = execute(t, "", "--config", path, "--dictionary", "testdata/dict.csv", "define", "sad")
	require.NoError(t, err)
	assert.Equal(t, "sad: Feeling sorrow.\n", out, "flags override the file")
}

func TestStartupFailures(t *testing.T) {
	_, err := execute(t, "", "--thesaurus", filepath.Join(t.TempDir(), "missing.txt"), "--log-level", "error", "exists", "happy")
	assert.ErrorIs(t, err, engine.ErrLoad)

	_, err = execute(t, "", append(append([]string{}, sources...), "--log-level", "loud", "exists", "happy")...)
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = execute(t, "", "--config", filepath.Join(t.TempDir(), "absent.yaml"), "version")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
