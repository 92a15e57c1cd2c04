package versioner

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/opsline/cutover/internal/logger"
)

// StandardVersion is our Versioner implementation backed by the
// standard-version CLI
type StandardVersion struct {
	dir string
	log logger.Logger
}

// NewStandardVersion returns a standard-version runner operating on the
// repository at dir
func NewStandardVersion(dir string) *StandardVersion {
	return &StandardVersion{
		dir: dir,
		log: logger.New(),
	}
}

// FirstRelease generates the changelog for the very first release
// without bumping the manifest version
func (s *StandardVersion) FirstRelease() error {
	return s.run("--first-release")
}

// ReleaseAs applies the given release type or explicit version
func (s *StandardVersion) ReleaseAs(version string) error {
	return s.run("--release-as", version)
}

// Prerelease computes a prerelease version with the given label. An
// empty label lets the tool use its default numeric prerelease.
func (s *StandardVersion) Prerelease(label string) error {
	if label == "" {
		return s.run("--prerelease")
	}

	return s.run("--prerelease", label)
}

// run invokes standard-version with commit and tag generation disabled:
// the release orchestrator owns those steps
func (s *StandardVersion) run(args ...string) error {
	fullArgs := append(args, "--skip.commit", "--skip.tag")

	cmd := exec.Command("standard-version", fullArgs...)
	cmd.Dir = s.dir

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	s.log.Debug().
		Str("args", strings.Join(fullArgs, " ")).
		Msg(strings.TrimSpace(stdout.String()))

	if err != nil {
		msg := strings.TrimSpace(stderr.String())

		if msg == "" {
			return fmt.Errorf("standard-version %s: %w", strings.Join(args, " "), err)
		}

		// keep the exec error in the chain so callers can still
		// inspect the exit code
		return fmt.Errorf("standard-version %s: %w: %s", strings.Join(args, " "), err, msg)
	}

	return nil
}
