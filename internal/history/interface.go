package history

import "time"

//go:generate mockgen -destination=../mock/history/mock_history.go -package=mock_history . Repo,Service

// Release a single recorded release
type Release struct {
	ID        string
	Version   string
	Type      string
	Branch    string
	Tag       string
	Files     []string
	CreatedAt time.Time
}

// Repo interface representing access to stored releases
type Repo interface {
	GetAllReleases() ([]*Release, error)
	GetReleaseByVersion(version string) (*Release, error)
	AddRelease(release *Release) (*Release, error)
}

// Service interface for recording and listing releases
type Service interface {
	GetAll() ([]*Release, error)
	GetByVersion(version string) (*Release, error)
	Record(version, releaseType, branch, tag string, files []string) (*Release, error)
}
