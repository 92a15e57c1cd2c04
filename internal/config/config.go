package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Committer represents the git identity used for release commits
// when no global identity is configured
type Committer struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

// Branches represents the branch layout of the release flow. The
// staging branch is never configured here: it is always the remote's
// symbolic default branch, detected at run time.
type Branches struct {
	Production  string `yaml:"production"`
	PatchPrefix string `yaml:"patchPrefix"`
}

// Config represents the data structure of our user provided yaml configuration
type Config struct {
	Committer      Committer `yaml:"committer"`
	Branches       Branches  `yaml:"branches"`
	Manifest       string    `yaml:"manifest"`
	Changelog      string    `yaml:"changelog"`
	TrackedFiles   []string  `yaml:"trackedFiles"`
	RequiredTools  []string  `yaml:"requiredTools"`
	CommitTemplate string    `yaml:"commitTemplate"`
}

// CommitMessage returns the release commit message for a version
func (c Config) CommitMessage(version string) string {
	return fmt.Sprintf(c.CommitTemplate, version)
}

// New returns unmarshaled data structure of user provided config
func New(confPath string) (*Config, error) {
	raw, err := os.ReadFile(confPath)

	if err != nil {
		return nil, err
	}

	conf := defaults()

	if err := yaml.Unmarshal(raw, conf); err != nil {
		return nil, err
	}

	return conf, nil
}

// Default returns the configuration used when no config file exists
func Default() (*Config, error) {
	return defaults(), nil
}

// Load returns the config at confPath, falling back to defaults only
// when the file does not exist. A file that exists but fails to parse
// is an error: a mistyped config must never silently release with
// default branches and files.
func Load(confPath string) (*Config, error) {
	conf, err := New(confPath)

	if err == nil {
		return conf, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return Default()
	}

	return nil, fmt.Errorf("failed to load config %s: %w", confPath, err)
}

// Write persists a config to the configured config file path
func Write(conf Config) error {
	configFile := viper.Get("config-file").(string)

	file, err := os.Create(configFile)

	if err != nil {
		return err
	}

	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)

	return encoder.Encode(conf)
}

// defaults builds a config from environment-sourced committer identity
// and the distributed defaults for everything else
func defaults() *Config {
	name := os.Getenv("GIT_COMMITTER_NAME")

	if name == "" {
		name = os.Getenv("USER")
	}

	email := os.Getenv("GIT_COMMITTER_EMAIL")

	if email == "" {
		email = name + "@localhost"
	}

	return &Config{
		Committer: Committer{
			Name:  name,
			Email: email,
		},
		Branches: Branches{
			Production:  "master",
			PatchPrefix: "patch/",
		},
		Manifest:       "package.json",
		Changelog:      "CHANGELOG.md",
		TrackedFiles:   []string{"package.json", "README.md", "COPYRIGHT"},
		RequiredTools:  []string{"git", "standard-version"},
		CommitTemplate: "chore(release): release %s",
	}
}
