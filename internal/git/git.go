package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// Client is our Git implementation backed by the git CLI
type Client struct {
	dir string
}

// NewClient returns a git client operating on the repository at dir
func NewClient(dir string) *Client {
	return &Client{dir: dir}
}

// CurrentBranch returns the currently checked out branch
func (c *Client) CurrentBranch() (string, error) {
	out, err := c.run("rev-parse", "--abbrev-ref", "HEAD")

	if err != nil {
		return "", err
	}

	return strings.TrimSpace(out), nil
}

// DefaultBranch returns the remote's symbolic default branch, used as
// the staging branch of the release flow
func (c *Client) DefaultBranch() (string, error) {
	out, err := c.run("symbolic-ref", "refs/remotes/origin/HEAD", "--short")

	if err != nil {
		return "", err
	}

	return strings.TrimPrefix(strings.TrimSpace(out), "origin/"), nil
}

// IsClean reports whether the working tree has no staged or unstaged changes
func (c *Client) IsClean() (bool, error) {
	out, err := c.run("status", "--porcelain")

	if err != nil {
		return false, err
	}

	return strings.TrimSpace(out) == "", nil
}

// HeadSHA returns the commit sha of HEAD
func (c *Client) HeadSHA() (string, error) {
	out, err := c.run("rev-parse", "HEAD")

	if err != nil {
		return "", err
	}

	return strings.TrimSpace(out), nil
}

// Checkout checks out the given ref
func (c *Client) Checkout(ref string) error {
	_, err := c.run("checkout", ref)
	return err
}

// CheckoutNew creates and checks out a new branch at startPoint
func (c *Client) CheckoutNew(branch, startPoint string) error {
	_, err := c.run("checkout", "-b", branch, startPoint)
	return err
}

// Merge merges a branch into the current branch with a forced merge commit
func (c *Client) Merge(branch string) error {
	_, err := c.run("merge", "--no-ff", "--no-edit", branch)
	return err
}

// Add stages the given paths
func (c *Client) Add(paths ...string) error {
	args := append([]string{"add"}, paths...)
	_, err := c.run(args...)
	return err
}

// Commit commits staged changes with the given message
func (c *Client) Commit(message string) error {
	_, err := c.run("commit", "-m", message)
	return err
}

// Tag creates an annotated tag on the current branch
func (c *Client) Tag(tag string) error {
	_, err := c.run("tag", "-m", tag, tag)
	return err
}

// ResetHard hard-resets the current branch to the given ref
func (c *Client) ResetHard(ref string) error {
	_, err := c.run("reset", "--hard", ref)
	return err
}

// CleanUntracked removes untracked files and directories
func (c *Client) CleanUntracked() error {
	_, err := c.run("clean", "-fd")
	return err
}

// DeleteBranch force-deletes a branch
func (c *Client) DeleteBranch(branch string) error {
	_, err := c.run("branch", "-D", branch)
	return err
}

// ConfigGet reads a global git config value
func (c *Client) ConfigGet(key string) (string, error) {
	out, err := c.run("config", "--global", "--get", key)

	if err != nil {
		return "", err
	}

	return strings.TrimSpace(out), nil
}

// ConfigSet writes a global git config value
func (c *Client) ConfigSet(key, value string) error {
	_, err := c.run("config", "--global", key, value)
	return err
}

// run executes git with the given arguments in the client's repository,
// returning stdout on success and a stderr-bearing error on failure
func (c *Client) run(args ...string) (string, error) {
	fullArgs := append([]string{"-C", c.dir}, args...)

	cmd := exec.Command("git", fullArgs...)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())

		if msg == "" {
			return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
		}

		// keep the exec error in the chain so callers can still
		// inspect the exit code
		return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, msg)
	}

	return stdout.String(), nil
}
