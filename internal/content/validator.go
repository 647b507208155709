// Package content validates and canonicalizes nomination payloads.
//
// Each nomination kind has its own schema and its own validator. A payload is
// either fully valid, in which case it comes back as the matching core.Content
// variant, or it is rejected with the first check that failed.
package content

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"github.com/sevigo/quality-warden/internal/core"
)

// Validator checks raw nomination payloads against the schema of their kind.
type Validator struct {
	problems core.ProblemResolver
	tags     core.TagNormalizer
	schemas  map[core.Kind]schemaFunc
}

// schemaFunc validates the kind-specific fields of an already decoded payload.
type schemaFunc func(ctx context.Context, fields map[string]any, rationale string) (core.Content, error)

// NewValidator creates a Validator. problems resolves the original problem of
// duplicate demotions, tags canonicalizes promotion tags.
func NewValidator(problems core.ProblemResolver, tags core.TagNormalizer) *Validator {
	v := &Validator{problems: problems, tags: tags}
	v.schemas = map[core.Kind]schemaFunc{
		core.KindPromotion: v.promotion,
		core.KindDemotion:  v.demotion,
	}
	return v
}

// Validate decodes raw and checks it against the schema of kind. Unknown fields
// are dropped from the returned value.
func (v *Validator) Validate(ctx context.Context, kind core.Kind, raw json.RawMessage) (core.Content, error) {
	schema, ok := v.schemas[kind]
	if !ok {
		return nil, core.ValidationError("nomination", core.KeyParameterInvalid)
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, invalid("contents")
	}
	fields, ok := decoded.(map[string]any)
	if !ok {
		return nil, invalid("contents")
	}

	rationale, ok := nonEmptyString(fields, "rationale")
	if !ok {
		return nil, invalid("contents.rationale")
	}
	return schema(ctx, fields, rationale)
}

func (v *Validator) promotion(_ context.Context, fields map[string]any, rationale string) (core.Content, error) {
	rawStatements, ok := fields["statements"].(map[string]any)
	if !ok {
		return nil, invalid("contents.statements")
	}
	source, ok := nonEmptyString(fields, "source")
	if !ok {
		return nil, invalid("contents.source")
	}
	rawTags, ok := fields["tags"].([]any)
	if !ok {
		return nil, invalid("contents.tags")
	}

	tags := make([]string, 0, len(rawTags))
	for _, t := range rawTags {
		tag, ok := t.(string)
		if !ok {
			return nil, invalid("contents.tags")
		}
		tags = append(tags, v.tags.NormalizeTag(tag))
	}

	statements := make(map[string]core.Statement, len(rawStatements))
	for language, s := range rawStatements {
		statement, ok := s.(map[string]any)
		if language == "" || !ok {
			return nil, invalid("contents.statements")
		}
		markdown, ok := nonEmptyString(statement, "markdown")
		if !ok {
			return nil, invalid("contents.statements")
		}
		statements[language] = core.Statement{Markdown: markdown}
	}

	return core.PromotionContent{
		Rationale:  rationale,
		Statements: statements,
		Source:     source,
		Tags:       tags,
	}, nil
}

func (v *Validator) demotion(ctx context.Context, fields map[string]any, rationale string) (core.Content, error) {
	reason, _ := fields["reason"].(string)
	switch core.DemotionReason(reason) {
	case core.ReasonOffensive:
		return core.DemotionContent{Rationale: rationale, Reason: core.ReasonOffensive}, nil
	case core.ReasonDuplicate:
	default:
		return nil, invalid("contents.reason")
	}

	original, ok := nonEmptyString(fields, "original")
	if !ok {
		return nil, invalid("contents.original")
	}
	if _, err := v.problems.ProblemByAlias(ctx, original); err != nil {
		if errors.Is(err, core.ErrNoRecord) {
			return nil, core.NotFoundError(core.KeyProblemNotFound)
		}
		return nil, core.OperationFailedError("resolve original problem", err)
	}

	return core.DemotionContent{
		Rationale: rationale,
		Reason:    core.ReasonDuplicate,
		Original:  original,
	}, nil
}

// Encode returns the canonical JSON form of c, the form nominations are stored in.
func Encode(c core.Content) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return json.RawMessage(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

func nonEmptyString(fields map[string]any, key string) (string, bool) {
	s, ok := fields[key].(string)
	return s, ok && s != ""
}

func invalid(field string) *core.Error {
	return core.ValidationError(field, core.KeyParameterInvalid)
}
