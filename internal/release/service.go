package release

import (
	"os"
	"path/filepath"

	"github.com/opsline/cutover/internal/config"
	"github.com/opsline/cutover/internal/git"
	"github.com/opsline/cutover/internal/history"
	"github.com/opsline/cutover/internal/logger"
	"github.com/opsline/cutover/internal/versioner"
)

// mirrorBranch disposable branch used to compute a version bump as if
// staging were already merged into production
const mirrorBranch = "cutover/mirror"

// previewLabel prerelease identifier used for preview runs
const previewLabel = "rc"

// Service sequences a full release: preflight, version bump, file
// rewriting, commit, and branch/tag orchestration
type Service struct {
	dir       string
	conf      config.Config
	git       git.Git
	versioner versioner.Versioner
	history   history.Service
	logger    logger.Logger
}

// NewService returns a release service operating on the repository at dir
func NewService(
	dir string,
	conf config.Config,
	g git.Git,
	v versioner.Versioner,
	h history.Service,
) *Service {
	return &Service{
		dir:       dir,
		conf:      conf,
		git:       g,
		versioner: v,
		history:   h,
		logger:    logger.New(),
	}
}

// Run executes the release for the given session
func (s *Service) Run(sess *Session) error {
	if err := s.preflight(sess); err != nil {
		return err
	}

	baseline, err := s.git.HeadSHA()

	if err != nil {
		return err
	}

	if sess.Type != TypePreview && sess.OnStaging() {
		err = s.mirroredBump(sess, baseline)
	} else {
		err = s.bump(sess)
	}

	if err != nil {
		return err
	}

	if err := NormalizeChangelogFile(filepath.Join(s.dir, s.conf.Changelog)); err != nil {
		return err
	}

	version, err := ManifestVersion(filepath.Join(s.dir, s.conf.Manifest))

	if err != nil {
		return err
	}

	s.logger.Info().Str("version", version).Msg("computed next version")

	updated, err := WriteTrackedFiles(s.dir, s.conf.TrackedFiles, version)

	if err != nil {
		return err
	}

	if err := s.git.Add(s.stagePaths(updated)...); err != nil {
		return err
	}

	if err := s.git.Commit(s.conf.CommitMessage(version)); err != nil {
		return err
	}

	if sess.Type == TypePreview {
		s.logger.Info().
			Str("version", version).
			Msg("preview complete, discarding working-tree changes")

		if err := s.git.ResetHard(baseline); err != nil {
			return err
		}

		return s.git.CleanUntracked()
	}

	if err := s.finalize(sess, version); err != nil {
		return err
	}

	if _, err := s.history.Record(
		version,
		string(sess.Type),
		sess.WorkingBranch,
		"v"+version,
		updated,
	); err != nil {
		// the release itself succeeded; a ledger failure is not fatal
		s.logger.Warn().Err(err).Msg("failed to record release in ledger")
	}

	s.logger.Info().Str("tag", "v"+version).Msg("release complete")

	return nil
}

// bump runs the versioning tool directly against the current branch
func (s *Service) bump(sess *Session) error {
	switch sess.Type {
	case TypeFirst:
		return s.versioner.FirstRelease()
	case TypePreview:
		return s.versioner.Prerelease(previewLabel)
	case TypePrerelease:
		return s.versioner.Prerelease("")
	case TypeExplicit:
		return s.versioner.ReleaseAs(sess.ExplicitVersion)
	default:
		return s.versioner.ReleaseAs(string(sess.Type))
	}
}

// mirroredBump computes the bump on a disposable mirror of production
// merged with staging, then transplants only the changelog and manifest
// back onto staging. The versioning tool derives its decision from the
// history reachable from production, but the artifacts must land on
// staging without carrying production-only commits into its tree.
func (s *Service) mirroredBump(sess *Session, baseline string) error {
	if err := s.git.CheckoutNew(mirrorBranch, sess.ProductionBranch); err != nil {
		return err
	}

	if err := s.git.Merge(sess.StagingBranch); err != nil {
		return err
	}

	if err := s.bump(sess); err != nil {
		return err
	}

	holding, err := os.MkdirTemp("", "cutover-artifacts")

	if err != nil {
		return err
	}

	artifacts := []string{s.conf.Changelog, s.conf.Manifest}

	for _, artifact := range artifacts {
		if err := copyFile(
			filepath.Join(s.dir, artifact),
			filepath.Join(holding, filepath.Base(artifact)),
		); err != nil {
			return err
		}
	}

	// drop every other side effect of the mirror
	if err := s.git.ResetHard("HEAD"); err != nil {
		return err
	}

	if err := s.git.CleanUntracked(); err != nil {
		return err
	}

	if err := s.git.Checkout(sess.StagingBranch); err != nil {
		return err
	}

	if err := s.git.ResetHard(baseline); err != nil {
		return err
	}

	for _, artifact := range artifacts {
		if err := copyFile(
			filepath.Join(holding, filepath.Base(artifact)),
			filepath.Join(s.dir, artifact),
		); err != nil {
			return err
		}
	}

	if err := s.git.DeleteBranch(mirrorBranch); err != nil {
		return err
	}

	return os.RemoveAll(holding)
}

// finalize merges the working branch into production, tags the release,
// and for patch branches propagates the merge back into staging before
// deleting the spent branch. Merge conflicts surface as failures: this
// is the documented manual-intervention point.
func (s *Service) finalize(sess *Session, version string) error {
	if err := s.git.Checkout(sess.ProductionBranch); err != nil {
		return err
	}

	if err := s.git.Merge(sess.WorkingBranch); err != nil {
		return err
	}

	if err := s.git.Tag("v" + version); err != nil {
		return err
	}

	if err := s.git.Checkout(sess.StagingBranch); err != nil {
		return err
	}

	if sess.OnPatchBranch() {
		if err := s.git.Merge(sess.WorkingBranch); err != nil {
			return err
		}

		if err := s.git.DeleteBranch(sess.WorkingBranch); err != nil {
			return err
		}
	}

	return nil
}

// stagePaths returns the set of paths to stage for the release commit
func (s *Service) stagePaths(updated []string) []string {
	seen := map[string]bool{}
	paths := []string{}

	for _, p := range append([]string{s.conf.Changelog, s.conf.Manifest}, updated...) {
		if seen[p] {
			continue
		}

		seen[p] = true
		paths = append(paths, p)
	}

	return paths
}

func copyFile(src, dst string) error {
	content, err := os.ReadFile(src)

	if err != nil {
		return err
	}

	return os.WriteFile(dst, content, 0644)
}
