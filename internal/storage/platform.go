package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sevigo/quality-warden/internal/core"
)

// verdictAccepted is the run verdict that counts as solving a problem.
const verdictAccepted = "AC"

// ProblemByAlias returns the problem with the given alias.
func (s *sqlStore) ProblemByAlias(ctx context.Context, alias string) (*core.Problem, error) {
	var p core.Problem
	err := s.db.GetContext(ctx, &p, s.db.Rebind(`SELECT problem_id, alias, title FROM problems WHERE alias = ?`), alias)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get problem %s: %w", alias, err)
	}
	return &p, nil
}

// HasUserSolvedProblem reports whether the user has an accepted run for the problem.
func (s *sqlStore) HasUserSolvedProblem(ctx context.Context, problemID, userID int64) (bool, error) {
	var solved bool
	err := s.db.GetContext(ctx, &solved, s.db.Rebind(`
		SELECT EXISTS (SELECT 1 FROM runs WHERE problem_id = ? AND user_id = ? AND verdict = ?)`),
		problemID, userID, verdictAccepted)
	if err != nil {
		return false, fmt.Errorf("failed to check solved state: %w", err)
	}
	return solved, nil
}

// GroupByAlias returns the group with the given alias.
func (s *sqlStore) GroupByAlias(ctx context.Context, alias string) (*core.Group, error) {
	var g core.Group
	err := s.db.GetContext(ctx, &g, s.db.Rebind(`SELECT group_id, alias, name FROM user_groups WHERE alias = ?`), alias)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get group %s: %w", alias, err)
	}
	return &g, nil
}

// GroupMembers returns the ids of all members of a group.
func (s *sqlStore) GroupMembers(ctx context.Context, groupID int64) ([]int64, error) {
	var members []int64
	err := s.db.SelectContext(ctx, &members, s.db.Rebind(`
		SELECT user_id FROM user_group_members WHERE group_id = ? ORDER BY user_id`), groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members of group %d: %w", groupID, err)
	}
	return members, nil
}

// IsGroupMember reports whether the user belongs to the group.
func (s *sqlStore) IsGroupMember(ctx context.Context, groupID, userID int64) (bool, error) {
	var member bool
	err := s.db.GetContext(ctx, &member, s.db.Rebind(`
		SELECT EXISTS (SELECT 1 FROM user_group_members WHERE group_id = ? AND user_id = ?)`),
		groupID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check group membership: %w", err)
	}
	return member, nil
}

// UserByToken returns the owner of an auth token.
func (s *sqlStore) UserByToken(ctx context.Context, token string) (*core.UserRef, error) {
	return s.getUser(ctx, `
		SELECT u.user_id, u.username
		FROM auth_tokens t JOIN users u ON u.user_id = t.user_id
		WHERE t.token = ?`, token)
}

// UserByUsername returns the user with the given username.
func (s *sqlStore) UserByUsername(ctx context.Context, username string) (*core.UserRef, error) {
	return s.getUser(ctx, `SELECT user_id, username FROM users WHERE username = ?`, username)
}

func (s *sqlStore) getUser(ctx context.Context, query string, arg any) (*core.UserRef, error) {
	var u core.UserRef
	if err := s.db.GetContext(ctx, &u, s.db.Rebind(query), arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// CreateAuthToken stores a new auth token for the user.
func (s *sqlStore) CreateAuthToken(ctx context.Context, token string, userID int64) error {
	_, err := s.db.ExecContext(ctx, s.db.Rebind(`
		INSERT INTO auth_tokens (token, user_id, created_at) VALUES (?, ?, ?)`),
		token, userID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to create auth token: %w", err)
	}
	return nil
}
