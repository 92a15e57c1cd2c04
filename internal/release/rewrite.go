package release

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
)

var versionPattern = regexp.MustCompile(`v\d+\.\d+\.\d+`)

// RewriteVersion replaces every vX.Y.Z token in content with the new
// version. Content without the pattern is returned unchanged, making
// the rewrite idempotent per version.
func RewriteVersion(content []byte, version string) []byte {
	return versionPattern.ReplaceAll(content, []byte("v"+version))
}

// WriteTrackedFiles rewrites the version token in every existing
// tracked file under dir and returns the paths that changed. Missing
// files are skipped: absence is only fatal at preflight time.
func WriteTrackedFiles(dir string, files []string, version string) ([]string, error) {
	updated := []string{}

	for _, file := range files {
		path := filepath.Join(dir, file)

		info, err := os.Stat(path)

		if err != nil || info.IsDir() {
			continue
		}

		content, err := os.ReadFile(path)

		if err != nil {
			return nil, err
		}

		rewritten := RewriteVersion(content, version)

		if bytes.Equal(content, rewritten) {
			continue
		}

		if err := os.WriteFile(path, rewritten, info.Mode()); err != nil {
			return nil, err
		}

		updated = append(updated, file)
	}

	return updated, nil
}
