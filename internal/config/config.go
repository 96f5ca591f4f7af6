package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/unitykit-labs/unitykit/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known configuration keys.
const (
	KeyRemoteURL       = "remote_url"
	KeyTemplateBaseURL = "template_base_url"
	KeyRegistryURL     = "registry_url"
	KeyUnityEditor     = "unity_editor"
	KeyHTTPTimeout     = "http_timeout"
	KeyGitignoreExtra  = "gitignore_extra"
	KeyGitBranch       = "git.branch"
	KeyGitPushBranch   = "git.push_branch"
	KeyGitMessage      = "git.message"
)

// Dir returns the path to the config directory (~/.unitykit/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.unitykit/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyTemplateBaseURL, branding.TemplateBaseURL())
	viper.SetDefault(KeyRegistryURL, branding.RegistryURL())
	viper.SetDefault(KeyHTTPTimeout, "0s")
	viper.SetDefault(KeyGitBranch, "main")
	// The original tool pushed master after renaming the branch to main.
	viper.SetDefault(KeyGitPushBranch, "master")
	viper.SetDefault(KeyGitMessage, "Initial commit")

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GetDuration returns a duration value; unparseable values read as zero.
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// GetStringSlice returns a list value. A comma-separated string (as set
// through `config set` or the environment) is split into its parts.
func GetStringSlice(key string) []string {
	raw := viper.GetStringSlice(key)
	var out []string
	for _, r := range raw {
		for _, part := range strings.Split(r, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
