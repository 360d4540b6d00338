package gitinfo

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-git/go-git/v5"
)

// GitInfoAdapter implements domain.RepoInspector using go-git.
type GitInfoAdapter struct{}

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

func (g *GitInfoAdapter) CommitHash(projectPath string) (string, error) {
	repo, err := open(projectPath)
	if err != nil {
		return "", err
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	return head.Hash().String(), nil
}

// RemoteURL returns the first URL of the origin remote, or of the
// alphabetically first remote when there is no origin.
func (g *GitInfoAdapter) RemoteURL(projectPath string) (string, error) {
	repo, err := open(projectPath)
	if err != nil {
		return "", err
	}

	remote, err := repo.Remote(git.DefaultRemoteName)
	if errors.Is(err, git.ErrRemoteNotFound) {
		remotes, lerr := repo.Remotes()
		if lerr != nil {
			return "", fmt.Errorf("listing remotes: %w", lerr)
		}
		if len(remotes) == 0 {
			return "", fmt.Errorf("repository has no remotes")
		}
		sort.Slice(remotes, func(i, j int) bool {
			return remotes[i].Config().Name < remotes[j].Config().Name
		})
		remote, err = remotes[0], nil
	}
	if err != nil {
		return "", fmt.Errorf("reading remote: %w", err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("remote %q has no URL", remote.Config().Name)
	}
	return urls[0], nil
}

func open(projectPath string) (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(projectPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("opening git repo: %w", err)
	}
	return repo, nil
}
