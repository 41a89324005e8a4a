package legal

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// History lists who changed a file and when.
type History interface {
	Contributions(path string) ([]Contribution, error)
}

// GitHistory reads contributions from the commit log of the git repository
// enclosing a directory. A file without commits, or a directory outside any
// repository, is attributed to the configured user.name in the current year.
type GitHistory struct {
	mu   sync.Mutex // go-git repositories are not safe for concurrent use
	repo *git.Repository
	root string
	user string
	now  func() time.Time
}

// OpenGitHistory opens the repository enclosing dir, if any.
func OpenGitHistory(dir string) (*GitHistory, error) {
	h := &GitHistory{now: time.Now}
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		if cfg, err := config.LoadConfig(config.GlobalScope); err == nil {
			h.user = cfg.User.Name
		}
		return h, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open git repository: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("open git work tree: %w", err)
	}
	h.repo = repo
	h.root = wt.Filesystem.Root()
	if cfg, err := repo.ConfigScoped(config.GlobalScope); err == nil {
		h.user = cfg.User.Name
	}
	return h, nil
}

// Contributions returns one entry per commit that touched path, newest
// first.
func (h *GitHistory) Contributions(path string) ([]Contribution, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var out []Contribution
	if h.repo != nil {
		commits, err := h.log(path)
		if err != nil {
			return nil, err
		}
		out = commits
	}
	if len(out) == 0 {
		out = []Contribution{{Author: h.user, Year: h.now().Year()}}
	}
	return out, nil
}

func (h *GitHistory) log(path string) ([]Contribution, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	rel, err := filepath.Rel(h.root, abs)
	if err != nil {
		return nil, err
	}
	rel = filepath.ToSlash(rel)

	iter, err := h.repo.Log(&git.LogOptions{FileName: &rel})
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		// no commits yet
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("git log %s: %w", rel, err)
	}
	defer iter.Close()

	var out []Contribution
	err = iter.ForEach(func(c *object.Commit) error {
		out = append(out, Contribution{Author: c.Author.Name, Year: c.Author.When.Year()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("git log %s: %w", rel, err)
	}
	return out, nil
}
