// Package nomination implements the quality nomination workflow: intake and
// validation of nominations, reviewer assignment, and the listing views.
package nomination

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/sevigo/quality-warden/internal/config"
	"github.com/sevigo/quality-warden/internal/content"
	"github.com/sevigo/quality-warden/internal/core"
	"github.com/sevigo/quality-warden/internal/metrics"
	"github.com/sevigo/quality-warden/internal/reviewers"
)

// Operation names used in logs and metrics.
const (
	opCreate           = "create"
	opListAll          = "list_all"
	opListAssignedToMe = "list_assigned_to_me"
	opListMine         = "list_mine"
	opDetails          = "details"
)

// CreateRequest is a nomination as submitted by a user.
type CreateRequest struct {
	ProblemAlias string
	// Nomination is the raw kind, "promotion" or "demotion".
	Nomination string
	Contents   json.RawMessage
}

// Service orchestrates nomination intake and the nomination listings.
type Service struct {
	cfg       config.QualityConfig
	problems  core.ProblemResolver
	repo      core.NominationRepository
	validator *content.Validator
	pool      *reviewers.Pool
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewService creates the nomination service.
func NewService(
	cfg *config.Config,
	problems core.ProblemResolver,
	repo core.NominationRepository,
	validator *content.Validator,
	pool *reviewers.Pool,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Service {
	return &Service{
		cfg:       cfg.Quality,
		problems:  problems,
		repo:      repo,
		validator: validator,
		pool:      pool,
		metrics:   m,
		logger:    logger,
	}
}

// Create validates and stores a nomination on behalf of actorID and assigns it to
// randomly chosen reviewers. Either the nomination and all of its assignments are
// stored, or nothing is.
func (s *Service) Create(ctx context.Context, actorID int64, req CreateRequest) (*core.Nomination, error) {
	n, err := s.create(ctx, actorID, req)
	if err != nil {
		return nil, s.fail(opCreate, err)
	}
	return n, nil
}

func (s *Service) create(ctx context.Context, actorID int64, req CreateRequest) (*core.Nomination, error) {
	if err := s.authorize(actorID); err != nil {
		return nil, err
	}

	if req.ProblemAlias == "" {
		return nil, core.ValidationError("problem_alias", core.KeyParameterEmpty)
	}
	kind, err := core.ParseKind(req.Nomination)
	if err != nil {
		return nil, core.ValidationError("nomination", core.KeyParameterInvalid)
	}
	if len(bytes.TrimSpace(req.Contents)) == 0 {
		return nil, core.ValidationError("contents", core.KeyParameterEmpty)
	}

	problem, err := s.problems.ProblemByAlias(ctx, req.ProblemAlias)
	if err != nil {
		if errors.Is(err, core.ErrNoRecord) {
			return nil, core.NotFoundError(core.KeyProblemNotFound)
		}
		return nil, core.OperationFailedError("resolve problem", err)
	}

	if kind == core.KindPromotion {
		solved, err := s.problems.HasUserSolvedProblem(ctx, problem.ID, actorID)
		if err != nil {
			return nil, core.OperationFailedError("check solved state", err)
		}
		if !solved {
			return nil, core.PreconditionFailedError(core.KeyMustHaveSolved)
		}
	}

	validated, err := s.validator.Validate(ctx, kind, req.Contents)
	if err != nil {
		return nil, err
	}
	contents, err := content.Encode(validated)
	if err != nil {
		return nil, core.OperationFailedError("encode contents", err)
	}

	reviewerIDs, err := s.pool.Sample(ctx, s.cfg.ReviewersPerNomination)
	if err != nil {
		return nil, core.OperationFailedError("sample reviewers", err)
	}

	n := &core.Nomination{
		AuthorID:  actorID,
		ProblemID: problem.ID,
		Kind:      kind,
		Contents:  contents,
		Status:    core.StatusOpen,
	}
	if err := s.repo.CreateNomination(ctx, n, reviewerIDs); err != nil {
		return nil, core.OperationFailedError("store nomination", err)
	}

	s.metrics.ObserveCreated(kind, len(reviewerIDs))
	s.logger.Info("nomination created",
		"nomination_id", n.ID,
		"problem", problem.Alias,
		"kind", kind,
		"author_id", actorID,
		"reviewers", len(reviewerIDs),
	)
	return n, nil
}

// ListAll returns every nomination. Only reviewers may call it.
func (s *Service) ListAll(ctx context.Context, actorID int64, page PageRequest) ([]core.NominationSummary, error) {
	return s.list(ctx, opListAll, actorID, true, core.Filter{}, page)
}

// ListAssignedToMe returns the nominations assigned to the calling reviewer.
func (s *Service) ListAssignedToMe(ctx context.Context, actorID int64, page PageRequest) ([]core.NominationSummary, error) {
	return s.list(ctx, opListAssignedToMe, actorID, true, core.Filter{AssigneeID: actorID}, page)
}

// ListMine returns the nominations created by the caller. Any user may call it.
func (s *Service) ListMine(ctx context.Context, actorID int64, page PageRequest) ([]core.NominationSummary, error) {
	return s.list(ctx, opListMine, actorID, false, core.Filter{NominatorID: actorID}, page)
}

func (s *Service) list(
	ctx context.Context,
	op string,
	actorID int64,
	reviewersOnly bool,
	filter core.Filter,
	page PageRequest,
) ([]core.NominationSummary, error) {
	if err := s.authorize(actorID); err != nil {
		return nil, s.fail(op, err)
	}
	if reviewersOnly {
		if err := s.requireReviewer(ctx, actorID); err != nil {
			return nil, s.fail(op, err)
		}
	}

	pagination, err := page.Parse(s.cfg.DefaultPageSize)
	if err != nil {
		return nil, s.fail(op, err)
	}

	nominations, err := s.repo.ListNominations(ctx, filter, pagination)
	if err != nil {
		return nil, s.fail(op, core.OperationFailedError("list nominations", err))
	}
	return nominations, nil
}

// Details returns a nomination with its reviewers. The author and reviewers may
// read it.
func (s *Service) Details(ctx context.Context, actorID, nominationID int64) (*core.NominationDetails, error) {
	if err := s.authorize(actorID); err != nil {
		return nil, s.fail(opDetails, err)
	}

	details, err := s.repo.GetNomination(ctx, nominationID)
	if err != nil {
		if errors.Is(err, core.ErrNoRecord) {
			return nil, s.fail(opDetails, core.NotFoundError(core.KeyNominationNotFound))
		}
		return nil, s.fail(opDetails, core.OperationFailedError("get nomination", err))
	}

	if details.Nominator.UserID != actorID {
		if err := s.requireReviewer(ctx, actorID); err != nil {
			return nil, s.fail(opDetails, err)
		}
	}
	return details, nil
}

// authorize applies the checks every operation starts with.
func (s *Service) authorize(actorID int64) error {
	if s.cfg.Lockdown {
		return core.ForbiddenError(core.KeyLockdown)
	}
	if actorID <= 0 {
		return core.UnauthenticatedError()
	}
	return nil
}

func (s *Service) requireReviewer(ctx context.Context, actorID int64) error {
	member, err := s.pool.IsMember(ctx, actorID)
	if err != nil {
		if errors.Is(err, reviewers.ErrGroupNotFound) {
			return core.ForbiddenError(core.KeyUserNotAllowed)
		}
		return core.OperationFailedError("check reviewer membership", err)
	}
	if !member {
		return core.ForbiddenError(core.KeyUserNotAllowed)
	}
	return nil
}

func (s *Service) fail(op string, err error) error {
	s.metrics.ObserveFailure(op, err)
	domainErr := core.AsError(err)
	if domainErr.Kind == core.ErrorKindOperationFailed {
		s.logger.Error("nomination operation failed", "operation", op, "error", err)
	} else {
		s.logger.Debug("nomination request rejected", "operation", op, "kind", domainErr.Kind, "key", domainErr.Key)
	}
	return err
}
