// Package reviewers resolves the reviewer group and picks reviewers for new nominations.
package reviewers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sevigo/quality-warden/internal/core"
)

// ErrGroupNotFound is returned when the configured reviewer group does not exist.
var ErrGroupNotFound = errors.New("reviewer group not found")

// Pool is the set of users allowed to review nominations: the members of one
// named group.
type Pool struct {
	alias     string
	directory core.GroupDirectory
	sampler   core.Sampler
	logger    *slog.Logger
}

// NewPool creates a reviewer pool backed by the group with the given alias.
func NewPool(alias string, directory core.GroupDirectory, sampler core.Sampler, logger *slog.Logger) *Pool {
	return &Pool{
		alias:     alias,
		directory: directory,
		sampler:   sampler,
		logger:    logger,
	}
}

// Alias returns the alias of the reviewer group.
func (p *Pool) Alias() string {
	return p.alias
}

// Group resolves the reviewer group.
func (p *Pool) Group(ctx context.Context) (*core.Group, error) {
	group, err := p.directory.GroupByAlias(ctx, p.alias)
	if err != nil {
		if errors.Is(err, core.ErrNoRecord) {
			return nil, fmt.Errorf("%w: %s", ErrGroupNotFound, p.alias)
		}
		return nil, fmt.Errorf("failed to resolve reviewer group %s: %w", p.alias, err)
	}
	return group, nil
}

// Sample returns up to count distinct reviewers drawn at random from the current
// membership of the group. A pool smaller than count yields all of its members;
// a missing group is an empty pool.
func (p *Pool) Sample(ctx context.Context, count int) ([]int64, error) {
	group, err := p.Group(ctx)
	if err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			p.logger.Warn("reviewer group does not exist, no reviewers assigned", "group", p.alias)
			return []int64{}, nil
		}
		return nil, err
	}

	members, err := p.directory.GroupMembers(ctx, group.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read members of %s: %w", group.Alias, err)
	}

	if len(members) < count {
		p.logger.Warn("reviewer pool smaller than requested sample",
			"group", group.Alias,
			"members", len(members),
			"requested", count,
		)
	}
	return p.sampler.Sample(members, count), nil
}

// IsMember reports whether the user belongs to the reviewer group.
func (p *Pool) IsMember(ctx context.Context, userID int64) (bool, error) {
	group, err := p.Group(ctx)
	if err != nil {
		return false, err
	}
	member, err := p.directory.IsGroupMember(ctx, group.ID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check membership in %s: %w", group.Alias, err)
	}
	return member, nil
}
