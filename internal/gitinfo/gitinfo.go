// Package gitinfo resolves the provenance of a benchmark run: the
// interpreter repository's HEAD commit, the version its public header
// declares and the host platform.
package gitinfo

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"runtime"

	"github.com/go-git/go-git/v5"
)

// UnknownVersion is reported when no version can be determined.
const UnknownVersion = "unknown"

// shortHashLen matches the abbreviation git rev-parse --short uses.
const shortHashLen = 7

var versionDefine = regexp.MustCompile(`#define\s+LATTICE_VERSION\s+"([^"]+)"`)

// Commit returns the abbreviated HEAD commit hash of the repository at dir.
func Commit(dir string) (string, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return "", fmt.Errorf("open repository: %w", err)
	}
	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}
	hash := head.Hash().String()
	if len(hash) > shortHashLen {
		hash = hash[:shortHashLen]
	}
	return hash, nil
}

// Pull fast-forwards the repository at dir from origin. Being already up
// to date is not an error.
func Pull(ctx context.Context, dir string) error {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return fmt.Errorf("open repository: %w", err)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("get worktree: %w", err)
	}
	err = worktree.PullContext(ctx, &git.PullOptions{RemoteName: "origin"})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return fmt.Errorf("pull origin: %w", err)
	}
	return nil
}

// Version extracts the interpreter version from its public header. A
// header without the define yields UnknownVersion; an unreadable file is
// an error so callers can decide how loudly to complain.
func Version(headerPath string) (string, error) {
	file, err := os.Open(headerPath)
	if err != nil {
		return UnknownVersion, err
	}
	defer func() {
		_ = file.Close()
	}()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if m := versionDefine.FindStringSubmatch(scanner.Text()); m != nil {
			return m[1], nil
		}
	}
	if err := scanner.Err(); err != nil {
		return UnknownVersion, err
	}
	return UnknownVersion, nil
}

// Platform describes the host the benchmarks run on.
func Platform() string {
	return runtime.GOOS + " " + runtime.GOARCH
}
