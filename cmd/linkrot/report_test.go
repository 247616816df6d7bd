package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awalczyk/linkrot"
)

func TestRenderResult(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderResult(&buf, linkrot.LinkResult{URL: "https://example.com/", Status: 200, State: linkrot.StateOK})
	renderResult(&buf, linkrot.LinkResult{URL: "https://example.com/gone", Status: 404, State: linkrot.StateBroken})
	renderResult(&buf, linkrot.LinkResult{URL: "mailto:x@example.com", State: linkrot.StateSkipped})

	assert.Equal(t,
		"[200] https://example.com/\n"+
			"[404] https://example.com/gone\n"+
			"[SKP] mailto:x@example.com\n",
		buf.String())
}

func TestRenderSummary(t *testing.T) {
	t.Parallel()

	report := &linkrot.Report{Results: []linkrot.LinkResult{
		{URL: "https://example.com/", Status: 200, State: linkrot.StateOK},
		{URL: "https://example.com/gone", Status: 404, State: linkrot.StateBroken, Parent: "https://example.com/"},
		{URL: "mailto:x@example.com", State: linkrot.StateSkipped},
	}}

	var buf bytes.Buffer
	renderSummary(&buf, report)

	out := buf.String()
	assert.Contains(t, out, "3 links checked: 1 ok, 1 broken, 1 skipped")
	assert.Contains(t, out, "[404] https://example.com/gone (found on https://example.com/)")
	assert.NotContains(t, out, "mailto:x@example.com (found on")
}

func TestRenderJSON(t *testing.T) {
	t.Parallel()

	report := &linkrot.Report{Results: []linkrot.LinkResult{
		{URL: "https://example.com/", Status: 200, State: linkrot.StateOK},
		{URL: "https://example.com/gone", Status: 404, State: linkrot.StateBroken, Parent: "https://example.com/"},
	}}

	var buf bytes.Buffer
	require.NoError(t, renderJSON(&buf, report))

	var got jsonReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 2, got.Summary.Total)
	assert.Equal(t, 1, got.Summary.OK)
	assert.Equal(t, 1, got.Summary.Broken)
	assert.False(t, got.Summary.Passed)
	require.Len(t, got.Results, 2)
	assert.Equal(t, "https://example.com/", got.Results[1].Parent)
}

func TestRenderJSON_empty_report(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, renderJSON(&buf, &linkrot.Report{}))
	assert.Contains(t, buf.String(), `"results": []`)
}
