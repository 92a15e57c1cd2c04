package release_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/opsline/cutover/internal/config"
	"github.com/opsline/cutover/internal/exception"
	"github.com/opsline/cutover/internal/history"
	mock_git "github.com/opsline/cutover/internal/mock/git"
	mock_history "github.com/opsline/cutover/internal/mock/history"
	mock_versioner "github.com/opsline/cutover/internal/mock/versioner"
	"github.com/opsline/cutover/internal/release"
)

func testConf() config.Config {
	return config.Config{
		Committer: config.Committer{
			Name:  "Release Bot",
			Email: "bot@example.com",
		},
		Branches: config.Branches{
			Production:  "master",
			PatchPrefix: "patch/",
		},
		Manifest:       "package.json",
		Changelog:      "CHANGELOG.md",
		TrackedFiles:   []string{"package.json", "README.md"},
		RequiredTools:  []string{},
		CommitTemplate: "chore(release): release %s",
	}
}

func seedProject(t *testing.T, dir, manifestVersion string) {
	t.Helper()

	files := map[string]string{
		"package.json": `{"name": "demo", "version": "` + manifestVersion + `"}`,
		"README.md":    "# demo v1.2.3\n",
		"CHANGELOG.md": "# Changelog\n\n### [" + manifestVersion + "] notes\n",
	}

	for name, content := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)

		assert.NoError(t, err)
	}
}

func expectIdentityConfigured(mockGit *mock_git.MockGit) {
	mockGit.EXPECT().ConfigGet("user.name").Return("Release Bot", nil)
	mockGit.EXPECT().ConfigGet("user.email").Return("bot@example.com", nil)
}

func TestReleaseService(t *testing.T) {
	conf := testConf()

	t.Run("fails preflight on a dirty working tree", func(st *testing.T) {
		ctrl := gomock.NewController(st)
		defer ctrl.Finish()

		mockGit := mock_git.NewMockGit(ctrl)
		mockVersioner := mock_versioner.NewMockVersioner(ctrl)
		mockHistory := mock_history.NewMockService(ctrl)

		mockGit.EXPECT().CurrentBranch().Return("main", nil)
		mockGit.EXPECT().DefaultBranch().Return("main", nil)
		mockGit.EXPECT().IsClean().Return(false, nil)

		sess, err := release.NewSession(mockGit, conf, release.TypeMinor, "")

		assert.NoError(st, err)

		service := release.NewService(st.TempDir(), conf, mockGit, mockVersioner, mockHistory)

		err = service.Run(sess)

		assert.ErrorIs(st, err, exception.ErrDirtyWorkingTree)
	})

	t.Run("fails preflight from a disallowed branch", func(st *testing.T) {
		ctrl := gomock.NewController(st)
		defer ctrl.Finish()

		mockGit := mock_git.NewMockGit(ctrl)
		mockVersioner := mock_versioner.NewMockVersioner(ctrl)
		mockHistory := mock_history.NewMockService(ctrl)

		mockGit.EXPECT().CurrentBranch().Return("feature/shiny", nil)
		mockGit.EXPECT().DefaultBranch().Return("main", nil)
		mockGit.EXPECT().IsClean().Return(true, nil)

		sess, err := release.NewSession(mockGit, conf, release.TypePatch, "")

		assert.NoError(st, err)

		service := release.NewService(st.TempDir(), conf, mockGit, mockVersioner, mockHistory)

		err = service.Run(sess)

		assert.ErrorIs(st, err, exception.ErrWrongBranch)
	})

	t.Run("fails preflight on a missing tracked file", func(st *testing.T) {
		ctrl := gomock.NewController(st)
		defer ctrl.Finish()

		mockGit := mock_git.NewMockGit(ctrl)
		mockVersioner := mock_versioner.NewMockVersioner(ctrl)
		mockHistory := mock_history.NewMockService(ctrl)

		mockGit.EXPECT().CurrentBranch().Return("main", nil)
		mockGit.EXPECT().DefaultBranch().Return("main", nil)
		mockGit.EXPECT().IsClean().Return(true, nil)
		expectIdentityConfigured(mockGit)

		sess, err := release.NewSession(mockGit, conf, release.TypePatch, "")

		assert.NoError(st, err)

		// empty project dir: package.json is absent
		service := release.NewService(st.TempDir(), conf, mockGit, mockVersioner, mockHistory)

		err = service.Run(sess)

		assert.ErrorIs(st, err, exception.ErrMissingFile)
	})

	t.Run("preview computes a version then restores the baseline", func(st *testing.T) {
		ctrl := gomock.NewController(st)
		defer ctrl.Finish()

		mockGit := mock_git.NewMockGit(ctrl)
		mockVersioner := mock_versioner.NewMockVersioner(ctrl)
		mockHistory := mock_history.NewMockService(ctrl)

		dir := st.TempDir()
		seedProject(st, dir, "1.2.4-rc.0")

		mockGit.EXPECT().CurrentBranch().Return("main", nil)
		mockGit.EXPECT().DefaultBranch().Return("main", nil)
		mockGit.EXPECT().IsClean().Return(true, nil)
		expectIdentityConfigured(mockGit)
		mockGit.EXPECT().HeadSHA().Return("abc123", nil)
		mockVersioner.EXPECT().Prerelease("rc").Return(nil)
		mockGit.EXPECT().Add("CHANGELOG.md", "package.json", "README.md").Return(nil)
		mockGit.EXPECT().Commit("chore(release): release 1.2.4-rc.0").Return(nil)
		mockGit.EXPECT().ResetHard("abc123").Return(nil)
		mockGit.EXPECT().CleanUntracked().Return(nil)

		sess, err := release.NewSession(mockGit, conf, release.TypePreview, "")

		assert.NoError(st, err)

		service := release.NewService(dir, conf, mockGit, mockVersioner, mockHistory)

		assert.NoError(st, service.Run(sess))
	})

	t.Run("staging release computes the bump on a disposable mirror", func(st *testing.T) {
		ctrl := gomock.NewController(st)
		defer ctrl.Finish()

		mockGit := mock_git.NewMockGit(ctrl)
		mockVersioner := mock_versioner.NewMockVersioner(ctrl)
		mockHistory := mock_history.NewMockService(ctrl)

		dir := st.TempDir()
		seedProject(st, dir, "1.3.0")

		mockGit.EXPECT().CurrentBranch().Return("main", nil)
		mockGit.EXPECT().DefaultBranch().Return("main", nil)
		mockGit.EXPECT().IsClean().Return(true, nil)
		expectIdentityConfigured(mockGit)
		mockGit.EXPECT().HeadSHA().Return("abc123", nil)

		// dual-branch procedure
		mockGit.EXPECT().CheckoutNew("cutover/mirror", "master").Return(nil)
		mockGit.EXPECT().Merge("main").Return(nil)
		mockVersioner.EXPECT().ReleaseAs("minor").Return(nil)
		mockGit.EXPECT().ResetHard("HEAD").Return(nil)
		mockGit.EXPECT().CleanUntracked().Return(nil)
		mockGit.EXPECT().Checkout("main").Return(nil)
		mockGit.EXPECT().ResetHard("abc123").Return(nil)
		mockGit.EXPECT().DeleteBranch("cutover/mirror").Return(nil)

		// commit and finalize
		mockGit.EXPECT().Add("CHANGELOG.md", "package.json", "README.md").Return(nil)
		mockGit.EXPECT().Commit("chore(release): release 1.3.0").Return(nil)
		mockGit.EXPECT().Checkout("master").Return(nil)
		mockGit.EXPECT().Merge("main").Return(nil)
		mockGit.EXPECT().Tag("v1.3.0").Return(nil)
		mockGit.EXPECT().Checkout("main").Return(nil)

		mockHistory.EXPECT().
			Record("1.3.0", "minor", "main", "v1.3.0", []string{"README.md"}).
			Return(&history.Release{}, nil)

		sess, err := release.NewSession(mockGit, conf, release.TypeMinor, "")

		assert.NoError(st, err)

		service := release.NewService(dir, conf, mockGit, mockVersioner, mockHistory)

		assert.NoError(st, service.Run(sess))

		// tracked files rewritten and changelog heading normalized
		readme, err := os.ReadFile(filepath.Join(dir, "README.md"))

		assert.NoError(st, err)
		assert.Equal(st, "# demo v1.3.0\n", string(readme))

		changelog, err := os.ReadFile(filepath.Join(dir, "CHANGELOG.md"))

		assert.NoError(st, err)
		assert.Equal(st, "# Changelog\n\n## [1.3.0] notes\n", string(changelog))
	})

	t.Run("patch branch release merges back into staging", func(st *testing.T) {
		ctrl := gomock.NewController(st)
		defer ctrl.Finish()

		mockGit := mock_git.NewMockGit(ctrl)
		mockVersioner := mock_versioner.NewMockVersioner(ctrl)
		mockHistory := mock_history.NewMockService(ctrl)

		dir := st.TempDir()
		seedProject(st, dir, "1.2.4")

		mockGit.EXPECT().CurrentBranch().Return("patch/hotfix", nil)
		mockGit.EXPECT().DefaultBranch().Return("main", nil)
		mockGit.EXPECT().IsClean().Return(true, nil)

		// identity absent: preflight sets it from config
		mockGit.EXPECT().ConfigGet("user.name").Return("", errors.New("not set"))
		mockGit.EXPECT().ConfigGet("user.email").Return("", errors.New("not set"))
		mockGit.EXPECT().ConfigSet("user.name", "Release Bot").Return(nil)
		mockGit.EXPECT().ConfigSet("user.email", "bot@example.com").Return(nil)

		mockGit.EXPECT().HeadSHA().Return("def456", nil)

		// patch branches run the versioning tool directly
		mockVersioner.EXPECT().ReleaseAs("patch").Return(nil)

		mockGit.EXPECT().Add("CHANGELOG.md", "package.json", "README.md").Return(nil)
		mockGit.EXPECT().Commit("chore(release): release 1.2.4").Return(nil)
		mockGit.EXPECT().Checkout("master").Return(nil)
		mockGit.EXPECT().Merge("patch/hotfix").Return(nil).Times(2)
		mockGit.EXPECT().Tag("v1.2.4").Return(nil)
		mockGit.EXPECT().Checkout("main").Return(nil)
		mockGit.EXPECT().DeleteBranch("patch/hotfix").Return(nil)

		mockHistory.EXPECT().
			Record("1.2.4", "patch", "patch/hotfix", "v1.2.4", []string{"README.md"}).
			Return(&history.Release{}, nil)

		sess, err := release.NewSession(mockGit, conf, release.TypePatch, "")

		assert.NoError(st, err)

		service := release.NewService(dir, conf, mockGit, mockVersioner, mockHistory)

		assert.NoError(st, service.Run(sess))
	})

	t.Run("explicit version is passed through to the versioning tool", func(st *testing.T) {
		ctrl := gomock.NewController(st)
		defer ctrl.Finish()

		mockGit := mock_git.NewMockGit(ctrl)
		mockVersioner := mock_versioner.NewMockVersioner(ctrl)
		mockHistory := mock_history.NewMockService(ctrl)

		dir := st.TempDir()
		seedProject(st, dir, "2.0.0")

		mockGit.EXPECT().CurrentBranch().Return("main", nil)
		mockGit.EXPECT().DefaultBranch().Return("main", nil)
		mockGit.EXPECT().IsClean().Return(true, nil)
		expectIdentityConfigured(mockGit)
		mockGit.EXPECT().HeadSHA().Return("abc123", nil)

		mockGit.EXPECT().CheckoutNew("cutover/mirror", "master").Return(nil)
		mockGit.EXPECT().Merge("main").Return(nil)
		mockVersioner.EXPECT().ReleaseAs("2.0.0").Return(nil)
		mockGit.EXPECT().ResetHard("HEAD").Return(nil)
		mockGit.EXPECT().CleanUntracked().Return(nil)
		mockGit.EXPECT().Checkout("main").Return(nil)
		mockGit.EXPECT().ResetHard("abc123").Return(nil)
		mockGit.EXPECT().DeleteBranch("cutover/mirror").Return(nil)

		mockGit.EXPECT().Add("CHANGELOG.md", "package.json", "README.md").Return(nil)
		mockGit.EXPECT().Commit("chore(release): release 2.0.0").Return(nil)
		mockGit.EXPECT().Checkout("master").Return(nil)
		mockGit.EXPECT().Merge("main").Return(nil)
		mockGit.EXPECT().Tag("v2.0.0").Return(nil)
		mockGit.EXPECT().Checkout("main").Return(nil)

		mockHistory.EXPECT().
			Record("2.0.0", "explicit", "main", "v2.0.0", []string{"README.md"}).
			Return(&history.Release{}, nil)

		sess, err := release.NewSession(mockGit, conf, release.TypeExplicit, "2.0.0")

		assert.NoError(st, err)

		service := release.NewService(dir, conf, mockGit, mockVersioner, mockHistory)

		assert.NoError(st, service.Run(sess))
	})

	t.Run("versioning tool failure aborts the run", func(st *testing.T) {
		ctrl := gomock.NewController(st)
		defer ctrl.Finish()

		mockGit := mock_git.NewMockGit(ctrl)
		mockVersioner := mock_versioner.NewMockVersioner(ctrl)
		mockHistory := mock_history.NewMockService(ctrl)

		dir := st.TempDir()
		seedProject(st, dir, "1.2.4")

		mockGit.EXPECT().CurrentBranch().Return("patch/hotfix", nil)
		mockGit.EXPECT().DefaultBranch().Return("main", nil)
		mockGit.EXPECT().IsClean().Return(true, nil)
		expectIdentityConfigured(mockGit)
		mockGit.EXPECT().HeadSHA().Return("def456", nil)

		toolErr := errors.New("standard-version exited 1")

		mockVersioner.EXPECT().ReleaseAs("patch").Return(toolErr)

		sess, err := release.NewSession(mockGit, conf, release.TypePatch, "")

		assert.NoError(st, err)

		service := release.NewService(dir, conf, mockGit, mockVersioner, mockHistory)

		err = service.Run(sess)

		assert.ErrorIs(st, err, toolErr)
	})
}
