package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNominationSummary_ContentsInJSONAndYAML(t *testing.T) {
	summary := NominationSummary{
		ID:       7,
		Kind:     KindDemotion,
		Status:   StatusOpen,
		Contents: ContentsJSON(`{"rationale":"r","reason":"offensive"}`),
	}

	asJSON, err := json.Marshal(summary)
	require.NoError(t, err)
	var fromJSON map[string]any
	require.NoError(t, json.Unmarshal(asJSON, &fromJSON))

	asYAML, err := yaml.Marshal(NominationDetails{NominationSummary: summary})
	require.NoError(t, err)
	var fromYAML map[string]any
	require.NoError(t, yaml.Unmarshal(asYAML, &fromYAML))

	want := map[string]any{"rationale": "r", "reason": "offensive"}
	assert.Equal(t, want, fromJSON["contents"])
	assert.Equal(t, want, fromYAML["contents"])
}

func TestContentsJSON_Empty(t *testing.T) {
	asJSON, err := json.Marshal(struct {
		Contents ContentsJSON `json:"contents"`
	}{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"contents":null}`, string(asJSON))

	var c ContentsJSON
	require.NoError(t, json.Unmarshal([]byte(`{"a":1}`), &c))
	assert.JSONEq(t, `{"a":1}`, string(c))
}
