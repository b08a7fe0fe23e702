package github

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func isolateConfig(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv(TokenEnv, "")
}

func TestGetTokenPrecedence(t *testing.T) {
	isolateConfig(t)

	assert.Empty(t, GetToken("", nil, nil))

	assert.NoError(t, SaveToken("saved-token\n"))
	assert.Equal(t, "saved-token", GetToken("", nil, nil))

	t.Setenv(TokenEnv, "env-token")
	assert.Equal(t, "env-token", GetToken("", nil, nil))

	assert.Equal(t, "flag-token", GetToken("flag-token", nil, nil))
	t.Setenv(TokenEnv, "")
	assert.Equal(t, "flag-token", GetToken("", nil, nil), "flag token is persisted")
}

func TestGetTokenPrompt(t *testing.T) {
	isolateConfig(t)
	var out bytes.Buffer

	token := GetToken("", nil, &TokenPrompt{In: strings.NewReader("  typed-token \n"), Out: &out})

	assert.Equal(t, "typed-token", token)
	assert.Contains(t, out.String(), "Paste your token here")
	assert.Equal(t, "typed-token", GetToken("", nil, nil))
}

func TestGetTokenPromptEmpty(t *testing.T) {
	isolateConfig(t)
	var out bytes.Buffer

	token := GetToken("", nil, &TokenPrompt{In: strings.NewReader("\n"), Out: &out})

	assert.Empty(t, token)
	assert.Contains(t, out.String(), "Running without a token")
}

func TestGetTokenFlagNeverWritesStdout(t *testing.T) {
	isolateConfig(t)
	var stdout, notify bytes.Buffer
	saved := color.Output
	color.Output = &stdout
	t.Cleanup(func() { color.Output = saved })

	assert.Equal(t, "ghp_x", GetToken("ghp_x", nil, nil))
	assert.Empty(t, stdout.String())

	assert.Equal(t, "ghp_y", GetToken("ghp_y", &notify, nil))
	assert.Empty(t, stdout.String())
	assert.Contains(t, notify.String(), "Token saved successfully")
}
