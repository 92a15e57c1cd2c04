package git

//go:generate mockgen -destination=../mock/git/mock_git.go -package=mock_git . Git

// Git narrow interface over the git operations the release flow needs.
// Kept small so orchestration logic can be tested against a mock
// without a real repository.
type Git interface {
	CurrentBranch() (string, error)
	DefaultBranch() (string, error)
	IsClean() (bool, error)
	HeadSHA() (string, error)
	Checkout(ref string) error
	CheckoutNew(branch, startPoint string) error
	Merge(branch string) error
	Add(paths ...string) error
	Commit(message string) error
	Tag(tag string) error
	ResetHard(ref string) error
	CleanUntracked() error
	DeleteBranch(branch string) error
	ConfigGet(key string) (string, error)
	ConfigSet(key, value string) error
}
