package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// isGitURL checks whether the configured source looks like a Git
// repository URL rather than a local directory. Plain http(s) URLs are
// left to the web source; only the unambiguous forms count here.
func isGitURL(input string) bool {
	return strings.HasSuffix(input, ".git") || strings.HasPrefix(input, "git@")
}

// cloneGitRepo clones the repository's default branch into a temporary
// directory and returns its path. The caller owns cleanup.
func cloneGitRepo(url string, status *statusPrinter) (string, error) {
	tempDir, err := os.MkdirTemp("", "doctoc-git-")
	if err != nil {
		return "", fmt.Errorf("creating temporary directory: %w", err)
	}

	status.Infof("Cloning %s into %s", url, tempDir)

	var progress io.Writer
	if !status.quiet {
		progress = os.Stderr
	}
	_, err = git.PlainClone(tempDir, false, &git.CloneOptions{
		URL:           url,
		Progress:      progress,
		ReferenceName: plumbing.HEAD,
		SingleBranch:  true,
		Depth:         1, // only the work tree is indexed, history is never read
	})
	if err != nil {
		_ = os.RemoveAll(tempDir)
		return "", fmt.Errorf("cloning %s: %w", url, err)
	}

	return tempDir, nil
}
