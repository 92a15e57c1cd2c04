package release

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/opsline/cutover/internal/exception"
)

// preflight runs every validation that must pass before any mutation.
// The only mutation it is allowed to make is populating a missing
// global committer identity from configuration.
func (s *Service) preflight(sess *Session) error {
	clean, err := s.git.IsClean()

	if err != nil {
		return err
	}

	if !clean {
		return exception.ErrDirtyWorkingTree
	}

	if !sess.OnStaging() && !sess.OnPatchBranch() {
		return fmt.Errorf(
			"%w: currently on %q",
			exception.ErrWrongBranch,
			sess.WorkingBranch,
		)
	}

	if err := s.ensureCommitterIdentity(); err != nil {
		return err
	}

	for _, file := range s.conf.TrackedFiles {
		if _, err := os.Stat(filepath.Join(s.dir, file)); err != nil {
			return fmt.Errorf("%w: %s", exception.ErrMissingFile, file)
		}
	}

	for _, tool := range s.conf.RequiredTools {
		if _, err := exec.LookPath(tool); err != nil {
			return fmt.Errorf("%w: %s", exception.ErrMissingTool, tool)
		}
	}

	return nil
}

// ensureCommitterIdentity sets the global git identity from config when
// either half of it is missing
func (s *Service) ensureCommitterIdentity() error {
	name, _ := s.git.ConfigGet("user.name")
	email, _ := s.git.ConfigGet("user.email")

	if name != "" && email != "" {
		return nil
	}

	s.logger.Info().
		Str("name", s.conf.Committer.Name).
		Str("email", s.conf.Committer.Email).
		Msg("configuring git committer identity")

	if err := s.git.ConfigSet("user.name", s.conf.Committer.Name); err != nil {
		return err
	}

	return s.git.ConfigSet("user.email", s.conf.Committer.Email)
}
