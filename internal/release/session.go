package release

import (
	"strings"

	"github.com/opsline/cutover/internal/config"
	"github.com/opsline/cutover/internal/git"
)

// Session immutable snapshot of the branch triple and release type for
// a single run, built once from git introspection instead of reading
// ambient process state ad hoc
type Session struct {
	Type             Type
	ExplicitVersion  string
	WorkingBranch    string
	StagingBranch    string
	ProductionBranch string

	patchPrefix string
}

// NewSession detects the working and staging branches and returns the
// session for this run
func NewSession(
	g git.Git,
	conf config.Config,
	releaseType Type,
	explicitVersion string,
) (*Session, error) {
	working, err := g.CurrentBranch()

	if err != nil {
		return nil, err
	}

	staging, err := g.DefaultBranch()

	if err != nil {
		return nil, err
	}

	return &Session{
		Type:             releaseType,
		ExplicitVersion:  explicitVersion,
		WorkingBranch:    working,
		StagingBranch:    staging,
		ProductionBranch: conf.Branches.Production,
		patchPrefix:      conf.Branches.PatchPrefix,
	}, nil
}

// OnStaging reports whether this run was started from the staging branch
func (s *Session) OnStaging() bool {
	return s.WorkingBranch == s.StagingBranch
}

// OnPatchBranch reports whether this run was started from a patch branch
func (s *Session) OnPatchBranch() bool {
	return !s.OnStaging() && strings.HasPrefix(s.WorkingBranch, s.patchPrefix)
}
