package release

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
)

var headingPrefix = []byte("### [")

// NormalizeChangelog corrects the heading-level defect standard-version
// produces for patch releases: lines beginning "### [" are rewritten to
// begin "## [". All other lines are untouched.
func NormalizeChangelog(content []byte) []byte {
	lines := bytes.Split(content, []byte("\n"))

	for i, line := range lines {
		if bytes.HasPrefix(line, headingPrefix) {
			lines[i] = append([]byte("## ["), line[len(headingPrefix):]...)
		}
	}

	return bytes.Join(lines, []byte("\n"))
}

// NormalizeChangelogFile applies NormalizeChangelog to the changelog on
// disk. A missing changelog is a no-op.
func NormalizeChangelogFile(path string) error {
	content, err := os.ReadFile(path)

	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return err
	}

	normalized := NormalizeChangelog(content)

	if bytes.Equal(content, normalized) {
		return nil
	}

	return os.WriteFile(path, normalized, 0644)
}

// ManifestVersion reads the authoritative new version out of the
// manifest generated by the versioning tool
func ManifestVersion(path string) (string, error) {
	raw, err := os.ReadFile(path)

	if err != nil {
		return "", err
	}

	manifest := struct {
		Version string `json:"version"`
	}{}

	if err := json.Unmarshal(raw, &manifest); err != nil {
		return "", err
	}

	if manifest.Version == "" {
		return "", errors.New("manifest contains no version field")
	}

	return manifest.Version, nil
}
