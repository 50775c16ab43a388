package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "harness.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesFileOverDefaults(t *testing.T) {
	path := writeConfig(t, `
subject:
  command: ./build/smoked
tests_dir: lox-tests
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	want := Config{
		Subject: SubjectConfig{
			Command:        "./build/smoked",
			SearchPathFlag: "-p",
		},
		TestsDir: "lox-tests",
		Fixtures: FixtureConfig{OutSuffix: ".out", ErrSuffix: ".err"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("unexpected config (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "subject: ["))
	assert.Error(t, err)
}

func TestLoadRejectsEqualFixtureSuffixes(t *testing.T) {
	_, err := Load(writeConfig(t, `
fixtures:
  out_suffix: .golden
  err_suffix: .golden
`))
	assert.ErrorContains(t, err, "suffixes must differ")
}

func TestLoadRejectsEmptySubjectCommand(t *testing.T) {
	_, err := Load(writeConfig(t, `
subject:
  command: ""
`))
	assert.Error(t, err)
}

func TestEffectiveSearchPathDefaultsToSiblingImports(t *testing.T) {
	cfg := Default()
	cfg.TestsDir = filepath.Join("lang", "tests")

	assert.Equal(t, filepath.Join("lang", "imports"), cfg.EffectiveSearchPath())
}

func TestEffectiveSearchPathExplicitValueWins(t *testing.T) {
	cfg := Default()
	cfg.Subject.SearchPath = "/opt/lox/modules"

	assert.Equal(t, "/opt/lox/modules", cfg.EffectiveSearchPath())
}
