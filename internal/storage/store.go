// Package storage implements persistence for nominations, their reviewer
// assignments, and read access to the platform tables they reference.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sevigo/quality-warden/internal/core"
)

// Store defines the interface for all database operations.
type Store interface {
	core.ProblemResolver
	core.GroupDirectory
	core.NominationRepository

	// UserByToken returns the user owning an auth token, or ErrNotFound.
	UserByToken(ctx context.Context, token string) (*core.UserRef, error)
	// UserByUsername returns the user with the given username, or ErrNotFound.
	UserByUsername(ctx context.Context, username string) (*core.UserRef, error)
	CreateAuthToken(ctx context.Context, token string, userID int64) error
}

// sqlStore works on both postgres and sqlite3. Queries are written with '?'
// placeholders and rebound for the connected driver.
type sqlStore struct {
	db *sqlx.DB
}

// NewStore creates a new Store.
func NewStore(db *sqlx.DB) Store {
	return &sqlStore{db: db}
}

// CreateNomination inserts the nomination and its reviewer assignments in one
// transaction.
func (s *sqlStore) CreateNomination(ctx context.Context, n *core.Nomination, reviewerIDs []int64) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createdAt := time.Now().UTC().Truncate(time.Microsecond)
	query := tx.Rebind(`
		INSERT INTO quality_nominations (user_id, problem_id, nomination, contents, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING qualitynomination_id`)

	var id int64
	err = tx.QueryRowxContext(ctx, query,
		n.AuthorID, n.ProblemID, string(n.Kind), string(n.Contents), string(n.Status), createdAt,
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("failed to insert nomination: %w", err)
	}

	assign := tx.Rebind(`INSERT INTO quality_nomination_reviewers (qualitynomination_id, user_id) VALUES (?, ?)`)
	for _, reviewerID := range reviewerIDs {
		if _, err := tx.ExecContext(ctx, assign, id, reviewerID); err != nil {
			return fmt.Errorf("failed to assign reviewer %d to nomination %d: %w", reviewerID, id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit nomination: %w", err)
	}

	n.ID = id
	n.CreatedAt = createdAt
	return nil
}

// nominationRow is the flattened shape of a nomination joined with its
// nominator and problem.
type nominationRow struct {
	ID           int64     `db:"qualitynomination_id"`
	Kind         string    `db:"nomination"`
	Status       string    `db:"status"`
	Contents     string    `db:"contents"`
	CreatedAt    time.Time `db:"created_at"`
	NominatorID  int64     `db:"user_id"`
	Username     string    `db:"username"`
	ProblemAlias string    `db:"alias"`
	ProblemTitle string    `db:"title"`
}

func (r nominationRow) summary() core.NominationSummary {
	return core.NominationSummary{
		ID:        r.ID,
		Kind:      core.Kind(r.Kind),
		Status:    core.Status(r.Status),
		CreatedAt: r.CreatedAt,
		Contents:  core.ContentsJSON(r.Contents),
		Nominator: core.UserRef{UserID: r.NominatorID, Username: r.Username},
		Problem:   core.ProblemRef{Alias: r.ProblemAlias, Title: r.ProblemTitle},
	}
}

const selectNominations = `
	SELECT qn.qualitynomination_id, qn.nomination, qn.status, qn.contents, qn.created_at,
	       qn.user_id, u.username, p.alias, p.title
	FROM quality_nominations qn
	JOIN users u ON u.user_id = qn.user_id
	JOIN problems p ON p.problem_id = qn.problem_id`

// ListNominations returns nominations matching f in creation order.
func (s *sqlStore) ListNominations(ctx context.Context, f core.Filter, p core.Pagination) ([]core.NominationSummary, error) {
	query := selectNominations + ` WHERE 1 = 1`
	var args []any
	if f.NominatorID != 0 {
		query += ` AND qn.user_id = ?`
		args = append(args, f.NominatorID)
	}
	if f.AssigneeID != 0 {
		query += ` AND EXISTS (
			SELECT 1 FROM quality_nomination_reviewers r
			WHERE r.qualitynomination_id = qn.qualitynomination_id AND r.user_id = ?)`
		args = append(args, f.AssigneeID)
	}
	query += ` ORDER BY qn.qualitynomination_id LIMIT ? OFFSET ?`
	args = append(args, p.PageSize, p.Offset())

	var rows []nominationRow
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list nominations: %w", err)
	}

	nominations := make([]core.NominationSummary, 0, len(rows))
	for _, r := range rows {
		nominations = append(nominations, r.summary())
	}
	return nominations, nil
}

// GetNomination returns one nomination and the reviewers assigned to it.
func (s *sqlStore) GetNomination(ctx context.Context, id int64) (*core.NominationDetails, error) {
	var row nominationRow
	err := s.db.GetContext(ctx, &row, s.db.Rebind(selectNominations+` WHERE qn.qualitynomination_id = ?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get nomination %d: %w", id, err)
	}

	var reviewers []core.UserRef
	err = s.db.SelectContext(ctx, &reviewers, s.db.Rebind(`
		SELECT u.user_id, u.username
		FROM quality_nomination_reviewers r
		JOIN users u ON u.user_id = r.user_id
		WHERE r.qualitynomination_id = ?
		ORDER BY u.user_id`), id)
	if err != nil {
		return nil, fmt.Errorf("failed to get reviewers of nomination %d: %w", id, err)
	}
	if reviewers == nil {
		reviewers = []core.UserRef{}
	}

	return &core.NominationDetails{NominationSummary: row.summary(), Reviewers: reviewers}, nil
}
