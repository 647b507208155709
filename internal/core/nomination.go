// Package core defines the domain types, collaborator contracts and error taxonomy
// shared by the nomination engine and its adapters.
package core

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Kind is the nomination kind. It never changes once a nomination is stored.
type Kind string

const (
	KindPromotion Kind = "promotion"
	KindDemotion  Kind = "demotion"
)

// ParseKind converts a raw request value into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindPromotion, KindDemotion:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown nomination kind %q", s)
	}
}

// Status is the lifecycle state of a nomination. The engine only creates StatusOpen;
// approval and denial belong to whichever component adjudicates nominations.
type Status string

const (
	StatusOpen     Status = "open"
	StatusApproved Status = "approved"
	StatusDenied   Status = "denied"
)

// Nomination is a stored request to promote or demote a problem.
type Nomination struct {
	ID        int64
	AuthorID  int64
	ProblemID int64
	Kind      Kind
	// Contents is the canonical JSON encoding of the validated Content.
	Contents  json.RawMessage
	Status    Status
	CreatedAt time.Time
}

// Assignment links a nomination to one of the reviewers chosen for it.
type Assignment struct {
	NominationID int64 `json:"nomination_id" yaml:"nomination_id"`
	ReviewerID   int64 `json:"reviewer_id" yaml:"reviewer_id"`
}

// UserRef identifies a user in list and detail views.
type UserRef struct {
	UserID   int64  `json:"user_id" yaml:"user_id" db:"user_id"`
	Username string `json:"username" yaml:"username" db:"username"`
}

// ProblemRef identifies a problem in list and detail views.
type ProblemRef struct {
	Alias string `json:"alias" yaml:"alias"`
	Title string `json:"title" yaml:"title"`
}

// NominationSummary is a nomination as returned by the list operations.
type NominationSummary struct {
	ID        int64        `json:"qualitynomination_id" yaml:"qualitynomination_id"`
	Kind      Kind         `json:"nomination" yaml:"nomination"`
	Status    Status       `json:"status" yaml:"status"`
	CreatedAt time.Time    `json:"time" yaml:"time"`
	Contents  ContentsJSON `json:"contents" yaml:"contents"`
	Nominator UserRef      `json:"nominator" yaml:"nominator"`
	Problem   ProblemRef   `json:"problem" yaml:"problem"`
}

// NominationDetails is a single nomination together with its assigned reviewers.
type NominationDetails struct {
	NominationSummary `yaml:",inline"`
	Reviewers         []UserRef `json:"reviewers" yaml:"reviewers"`
}

// Filter selects nominations for listing. A zero field means "no constraint".
// The two fields are never combined by the service, but the store honours both.
type Filter struct {
	NominatorID int64
	AssigneeID  int64
}

// Pagination is a one-based, offset pagination window.
type Pagination struct {
	Page     int
	PageSize int
}

// Offset returns the number of rows to skip for this page. Windows beyond
// math.MaxInt saturate, so they still select nothing.
func (p Pagination) Offset() int {
	if p.Page <= 1 || p.PageSize <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.PageSize {
		return math.MaxInt
	}
	return (p.Page - 1) * p.PageSize
}

// ContentsJSON is stored nomination content. It encodes as-is in JSON and as
// the equivalent document in YAML.
type ContentsJSON []byte

// MarshalJSON implements json.Marshaler.
func (c ContentsJSON) MarshalJSON() ([]byte, error) {
	if len(c) == 0 {
		return []byte("null"), nil
	}
	return c, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *ContentsJSON) UnmarshalJSON(data []byte) error {
	*c = append((*c)[:0], data...)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c ContentsJSON) MarshalYAML() (any, error) {
	if len(c) == 0 {
		return nil, nil
	}
	var doc any
	if err := json.Unmarshal(c, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode contents: %w", err)
	}
	return doc, nil
}
