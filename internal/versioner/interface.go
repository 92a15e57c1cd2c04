package versioner

//go:generate mockgen -destination=../mock/versioner/mock_versioner.go -package=mock_versioner . Versioner

// Versioner interface for the external changelog / version tool.
// The tool computes the next semantic version from commit history and
// regenerates the changelog; committing and tagging stay with us.
type Versioner interface {
	FirstRelease() error
	ReleaseAs(version string) error
	Prerelease(label string) error
}
