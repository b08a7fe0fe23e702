package github

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

const (
	TokenEnv   = "GITSCORE_GITHUB_TOKEN"
	configName = "gitscore"
)

// TokenPrompt is where an interactive token prompt reads from. Nil means
// no prompt is shown.
type TokenPrompt struct {
	In  io.Reader
	Out io.Writer
}

func tokenFile() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configName, "token"), nil
}

// SaveToken stores token in the user config directory with owner-only
// permissions.
func SaveToken(token string) error {
	path, err := tokenFile()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(path, []byte(token), 0600)
}

func readSavedToken() string {
	path, err := tokenFile()
	if err != nil {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// GetToken resolves a token from the flag, the environment, the saved token
// file and finally an optional prompt. An empty result means anonymous
// access. Saving a flag token is reported on notify; nil keeps it silent.
func GetToken(flagToken string, notify io.Writer, prompt *TokenPrompt) string {
	if flagToken != "" {
		if err := SaveToken(flagToken); err == nil && notify != nil {
			color.New(color.FgGreen).Fprintln(notify, "Token saved successfully")
		}
		return flagToken
	}

	if token := os.Getenv(TokenEnv); token != "" {
		return token
	}

	if token := readSavedToken(); token != "" {
		return token
	}

	if prompt == nil {
		return ""
	}

	out := prompt.Out
	color.New(color.FgYellow).Fprintln(out, "\nA GitHub personal access token is recommended to avoid rate limits.")
	color.New(color.FgBlue).Fprintln(out, "To create a new token:")
	fmt.Fprintln(out, "1. Visit: https://github.com/settings/tokens")
	fmt.Fprintln(out, "2. Click 'Generate new token' (classic)")
	fmt.Fprintln(out, "3. Give it a name (e.g. 'gitscore')")
	fmt.Fprintln(out, "4. No scopes are needed for public profiles")
	fmt.Fprintln(out, "5. Copy the token and paste it below")
	fmt.Fprint(out, "\nPaste your token here (or press Enter to continue without one): ")

	line, _ := bufio.NewReader(prompt.In).ReadString('\n')
	token := strings.TrimSpace(line)
	if token == "" {
		color.New(color.FgYellow).Fprintln(out, "\nRunning without a token. You may hit rate limits.")
		return ""
	}

	if err := SaveToken(token); err == nil {
		color.New(color.FgGreen).Fprintln(out, "Token saved successfully")
	}
	return token
}
