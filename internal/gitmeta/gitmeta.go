// Package gitmeta resolves best-effort git context for an audited tree.
// Everything here is optional; a non-repository root yields empty metadata.
package gitmeta

import (
	git "github.com/go-git/go-git/v5"

	"github.com/complyscan/complyscan/internal/types"
)

// Describe returns repository metadata for root. It never fails: trees
// outside version control or with a detached, unreadable HEAD simply
// produce blank fields.
func Describe(root string) types.RepoMetadata {
	var meta types.RepoMetadata

	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return meta
	}

	if remote, err := repo.Remote("origin"); err == nil {
		if urls := remote.Config().URLs; len(urls) > 0 {
			meta.Repo = urls[0]
		}
	}

	head, err := repo.Head()
	if err != nil {
		return meta
	}
	hash := head.Hash().String()
	if len(hash) > 12 {
		hash = hash[:12]
	}
	meta.Commit = hash
	if head.Name().IsBranch() {
		meta.Branch = head.Name().Short()
	}
	return meta
}
