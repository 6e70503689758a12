package brief

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestExportJSONFieldNames(t *testing.T) {
	brief, err := AssembleBrief(completedState(), "gemini-2.0-flash")
	require.NoError(t, err)

	data, err := ExportJSON(brief)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Launch", doc["post_type"])
	assert.Contains(t, doc, "core_content")
	assert.Contains(t, doc, "prompt_analysis")
	assert.Contains(t, doc, "metadata")
	// Optional slots are omitted when absent.
	assert.NotContains(t, doc, "video_script")
	assert.NotContains(t, doc, "result_optimizations")
}

func TestExportYAMLMatchesJSONSchema(t *testing.T) {
	brief, err := AssembleBrief(completedState(), "gemini-2.0-flash")
	require.NoError(t, err)

	data, err := ExportYAML(brief)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Equal(t, "Launch", doc["post_type"])
	assert.Contains(t, doc, "factual_grounding")
	metadata, ok := doc["metadata"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, BriefVersion, metadata["version"])
}
