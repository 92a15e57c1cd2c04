package exception

import "errors"

// ErrRecordNotFound custom database error for failure to find record
var ErrRecordNotFound = errors.New("record not found")

// ErrDirtyWorkingTree returned when the working tree has uncommitted changes
var ErrDirtyWorkingTree = errors.New("working tree has uncommitted changes: commit them first")

// ErrWrongBranch returned when releasing from a disallowed branch
var ErrWrongBranch = errors.New("releases may only run from the staging branch or a patch branch")

// ErrMissingFile returned when a tracked file is absent at preflight
var ErrMissingFile = errors.New("missing tracked file")

// ErrMissingTool returned when a required executable is not on PATH
var ErrMissingTool = errors.New("missing required tool")

// ErrInvalidReleaseType returned for an unrecognized release-type argument
var ErrInvalidReleaseType = errors.New("invalid release type")
