package core

// Content is the kind-specific payload of a nomination. The only implementations are
// PromotionContent and DemotionContent, so a value always carries the schema of its kind.
type Content interface {
	Kind() Kind
	isContent()
}

// Statement is the problem statement for a single language.
type Statement struct {
	Markdown string `json:"markdown"`
}

// PromotionContent is the payload of a promotion nomination.
type PromotionContent struct {
	Rationale  string               `json:"rationale"`
	Statements map[string]Statement `json:"statements"`
	Source     string               `json:"source"`
	Tags       []string             `json:"tags"`
}

func (PromotionContent) Kind() Kind { return KindPromotion }
func (PromotionContent) isContent() {}

// DemotionReason is why a problem should be banned.
type DemotionReason string

const (
	ReasonDuplicate DemotionReason = "duplicate"
	ReasonOffensive DemotionReason = "offensive"
)

// DemotionContent is the payload of a demotion nomination. Original is only set
// for duplicates and names the alias of the problem this one duplicates.
type DemotionContent struct {
	Rationale string         `json:"rationale"`
	Reason    DemotionReason `json:"reason"`
	Original  string         `json:"original,omitempty"`
}

func (DemotionContent) Kind() Kind { return KindDemotion }
func (DemotionContent) isContent() {}
