// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is embedded with //go:embed; editing it and rebuilding is
// enough to rename the binary or point it at another template repository.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName         string `yaml:"cli_name"`
	DisplayName     string `yaml:"display_name"`
	Description     string `yaml:"description"`
	HomeDir         string `yaml:"home_dir"`
	EnvPrefix       string `yaml:"env_prefix"`
	GoModule        string `yaml:"go_module"`
	TemplateBaseURL string `yaml:"template_base_url"`
	RegistryURL     string `yaml:"registry_url"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:         "unitykit",
			DisplayName:     "UnityKit",
			Description:     "One-shot scaffolding for Unity projects",
			HomeDir:         ".unitykit",
			EnvPrefix:       "UNITYKIT",
			GoModule:        "github.com/unitykit-labs/unitykit",
			TemplateBaseURL: "https://raw.githubusercontent.com/Avin19/UnityTools/main",
			RegistryURL:     "https://packages.unity.com",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "unitykit").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "UnityKit").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".unitykit").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "UNITYKIT").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// TemplateBaseURL returns the raw-content root that templates and the
// .gitignore are downloaded from.
func TemplateBaseURL() string { load(); return defaults.TemplateBaseURL }

// RegistryURL returns the Unity package registry used to look up versions.
func RegistryURL() string { load(); return defaults.RegistryURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "UNITYKIT_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
