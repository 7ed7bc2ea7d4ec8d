package stash

import (
	"context"
	"errors"
	"fmt"

	"github.com/raphi011/precommit/internal/config"
	"github.com/raphi011/precommit/internal/git"
	"github.com/raphi011/precommit/internal/log"
)

// Git is the subset of repository operations the controller needs.
// [git.Repo] implements it.
type Git interface {
	ObjectHash(ctx context.Context, name string) (string, error)
	StashSave(ctx context.Context, opts git.SaveOptions) error
	StashPop(ctx context.Context) error
	StashedUntracked(ctx context.Context) ([]string, error)
	RemoveFiles(paths []string) error
	Clean(ctx context.Context, ignored bool) error
	ResetHard(ctx context.Context) error
}

// Controller isolates the staged content before scripts run and puts the
// work tree back afterwards.
type Controller struct {
	git     Git
	cfg     config.Stash
	stashed bool
}

// New returns a controller for g using the stash setting cfg.
func New(g Git, cfg config.Stash) *Controller {
	return &Controller{git: g, cfg: cfg}
}

// Stashed reports whether Setup created a stash entry that has not been
// popped yet.
func (c *Controller) Stashed() bool {
	return c.stashed
}

// Setup stashes everything not staged for commit. It does nothing when
// stashing is disabled.
//
// Whether an entry was created is decided by comparing the hash of
// refs/stash before and after: git exits 0 without creating one when there
// is nothing to stash.
func (c *Controller) Setup(ctx context.Context) error {
	if !c.cfg.Enabled() {
		return nil
	}

	before, err := c.git.ObjectHash(ctx, git.StashRef)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", git.StashRef, err)
	}

	opts := git.SaveOptions{
		IncludeAll:       c.cfg.IncludeAll,
		IncludeUntracked: c.cfg.IncludeUntracked,
	}
	if err := c.git.StashSave(ctx, opts); err != nil {
		return err
	}

	after, err := c.git.ObjectHash(ctx, git.StashRef)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", git.StashRef, err)
	}

	c.stashed = before != after
	log.FromContext(ctx).Debug("stash setup", "stashed", c.stashed, "mode", c.cfg.Mode)
	return nil
}

// Cleanup restores the work tree: reset, then clean, then pop the stash.
// Each step runs only when configured (pop only when Setup stashed) and each
// is attempted even if an earlier one failed. All failures are returned
// joined.
//
// Files held in the untracked part of the stash are removed from the work
// tree before the pop: whatever sits at those paths now was written while
// the scripts ran, and git refuses to pop over it.
func (c *Controller) Cleanup(ctx context.Context) error {
	if !c.cfg.Enabled() {
		return nil
	}

	var errs []error

	if c.cfg.ShouldReset() {
		if err := c.git.ResetHard(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	if c.cfg.ShouldClean() {
		if err := c.git.Clean(ctx, c.cfg.IncludeAll); err != nil {
			errs = append(errs, err)
		}
	}

	if c.stashed {
		if c.cfg.IncludeAll || c.cfg.IncludeUntracked {
			if err := c.clearStashedUntracked(ctx); err != nil {
				errs = append(errs, err)
			}
		}
		if err := c.git.StashPop(ctx); err != nil {
			errs = append(errs, err)
		} else {
			c.stashed = false
		}
	}

	return errors.Join(errs...)
}

func (c *Controller) clearStashedUntracked(ctx context.Context) error {
	paths, err := c.git.StashedUntracked(ctx)
	if err != nil {
		return err
	}
	log.FromContext(ctx).Debug("clearing stashed paths", "count", len(paths))
	return c.git.RemoveFiles(paths)
}
