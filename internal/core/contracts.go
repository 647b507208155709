package core

import (
	"context"
	"errors"
)

//go:generate go run go.uber.org/mock/mockgen -source=contracts.go -destination=mocks/mock_contracts.go -package=mocks

// ErrNoRecord is returned by collaborators when a looked-up row does not exist.
var ErrNoRecord = errors.New("record not found")

// ProblemResolver looks up problems and their solve state. Problems are owned by
// another part of the platform; the engine only reads them.
type ProblemResolver interface {
	// ProblemByAlias returns the problem with the given alias, or ErrNoRecord.
	ProblemByAlias(ctx context.Context, alias string) (*Problem, error)
	// HasUserSolvedProblem reports whether the user has an accepted submission
	// for the problem.
	HasUserSolvedProblem(ctx context.Context, problemID, userID int64) (bool, error)
}

// GroupDirectory exposes group membership, used to find the reviewer pool.
type GroupDirectory interface {
	// GroupByAlias returns the group with the given alias, or ErrNoRecord.
	GroupByAlias(ctx context.Context, alias string) (*Group, error)
	// GroupMembers returns the user ids of every member of the group.
	GroupMembers(ctx context.Context, groupID int64) ([]int64, error)
	IsGroupMember(ctx context.Context, groupID, userID int64) (bool, error)
}

// NominationRepository is the durable record of nominations and their assignments.
type NominationRepository interface {
	// CreateNomination stores the nomination and one assignment per reviewer as a
	// single unit of work. On success n.ID and n.CreatedAt are populated. On
	// failure nothing is stored.
	CreateNomination(ctx context.Context, n *Nomination, reviewerIDs []int64) error
	// ListNominations returns the nominations matching f in creation order,
	// restricted to the page window.
	ListNominations(ctx context.Context, f Filter, p Pagination) ([]NominationSummary, error)
	// GetNomination returns one nomination with its reviewers, or ErrNoRecord.
	GetNomination(ctx context.Context, id int64) (*NominationDetails, error)
}

// TagNormalizer maps a user-supplied tag name onto its canonical form.
type TagNormalizer interface {
	NormalizeTag(raw string) string
}

// Sampler picks up to count distinct members uniformly at random, without
// replacement. Implementations must not share mutable state between calls.
type Sampler interface {
	Sample(members []int64, count int) []int64
}
