package history

import "github.com/google/uuid"

// LedgerService our Service implementation on top of a Repo
type LedgerService struct {
	repo Repo
}

// NewLedgerService returns a new release ledger service
func NewLedgerService(repo Repo) *LedgerService {
	return &LedgerService{repo: repo}
}

// GetAll returns all recorded releases
func (s *LedgerService) GetAll() ([]*Release, error) {
	return s.repo.GetAllReleases()
}

// GetByVersion returns the recorded release for a version
func (s *LedgerService) GetByVersion(version string) (*Release, error) {
	return s.repo.GetReleaseByVersion(version)
}

// Record stores a completed release and its rewritten files in the ledger
func (s *LedgerService) Record(version, releaseType, branch, tag string, files []string) (*Release, error) {
	release := &Release{
		ID:      uuid.New().String(),
		Version: version,
		Type:    releaseType,
		Branch:  branch,
		Tag:     tag,
		Files:   files,
	}

	return s.repo.AddRelease(release)
}
