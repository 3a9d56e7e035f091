package module

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigured(t *testing.T) {
	var testCases = []struct {
		description string
		url         string
		placeholder string
		expect      bool
	}{
		{description: "absolute url", url: "https://example.com/tool", placeholder: InterviewerPlaceholder, expect: true},
		{description: "empty", url: "", placeholder: InterviewerPlaceholder, expect: false},
		{description: "whitespace only", url: " \t\n ", placeholder: InterviewerPlaceholder, expect: false},
		{description: "literal placeholder", url: InterviewerPlaceholder, placeholder: InterviewerPlaceholder, expect: false},
		{description: "embedded placeholder", url: "https://" + AnalyzerPlaceholder + "/x", placeholder: AnalyzerPlaceholder, expect: false},
		{description: "other module placeholder", url: AnalyzerPlaceholder, placeholder: InterviewerPlaceholder, expect: true},
		{description: "no scheme validation", url: "not a url", placeholder: InterviewerPlaceholder, expect: true},
		{description: "no placeholder marker", url: "https://example.com", placeholder: "", expect: true},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, Configured(testCase.url, testCase.placeholder), testCase.description)
	}
}

func TestModule_Link(t *testing.T) {
	var testCases = []struct {
		description string
		module      Module
		expect      Link
	}{
		{
			description: "configured interviewer",
			module:      Interviewer().Merge(&Override{URL: urlOf("https://example.com/tool")}),
			expect:      Link{Active: true, Href: "https://example.com/tool", Label: "Launch Interviewer"},
		},
		{
			description: "empty interviewer url",
			module:      withURL(Interviewer(), ""),
			expect:      Link{Warning: "Chatbot Interviewer URL not configured."},
		},
		{
			description: "placeholder interviewer url",
			module:      withURL(Interviewer(), "YOUR_DEPLOYED_CHATBOT_APP_URL_HERE"),
			expect:      Link{Warning: "Chatbot Interviewer URL not configured."},
		},
		{
			description: "placeholder analyzer url",
			module:      withURL(Analyzer(), "YOUR_DEPLOYED_RAG_UI_APP_URL_HERE"),
			expect:      Link{Warning: "RAG Analyzer URL not configured."},
		},
		{
			description: "surrounding whitespace trimmed",
			module:      withURL(Analyzer(), "  https://example.com/rag \n"),
			expect:      Link{Active: true, Href: "https://example.com/rag", Label: "Launch Analyzer"},
		},
		{
			description: "derived warning",
			module:      Module{ID: "x", Title: "Sketcher"},
			expect:      Link{Warning: "Sketcher URL not configured."},
		},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, testCase.module.Link(), testCase.description)
	}
}

func TestModule_Merge(t *testing.T) {
	base := Interviewer()
	merged := base.Merge(&Override{URL: urlOf("https://a.example"), Label: "Go"})
	assert.Equal(t, "https://a.example", merged.URL)
	assert.Equal(t, "Go", merged.Label)
	assert.Equal(t, base.Title, merged.Title)
	assert.Equal(t, DefaultInterviewerURL, base.URL, "receiver must stay untouched")
	assert.Equal(t, base, base.Merge(nil))

	assert.Equal(t, DefaultInterviewerURL, base.Merge(&Override{Label: "Go"}).URL, "unset url keeps the default")
	cleared := base.Merge(&Override{URL: urlOf("")})
	assert.Equal(t, "", cleared.URL)
	assert.False(t, cleared.Configured())
	assert.Equal(t, "Chatbot Interviewer URL not configured.", cleared.Link().Warning)
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry(withURL(Interviewer(), ""), Analyzer(), withURL(Analyzer(), "ignored"))
	require.Len(t, registry.Modules(), 2)
	assert.Equal(t, []string{InterviewerID, AnalyzerID}, []string{registry.Modules()[0].ID, registry.Modules()[1].ID})

	target, err := registry.Target(AnalyzerID)
	require.NoError(t, err)
	assert.Equal(t, DefaultAnalyzerURL, target)

	_, err = registry.Target(InterviewerID)
	assert.True(t, errors.Is(err, ErrNotConfigured))
	assert.Contains(t, err.Error(), "Chatbot Interviewer URL not configured.")

	_, err = registry.Lookup("sketcher")
	assert.True(t, errors.Is(err, ErrUnknownModule))

	statuses := registry.Statuses()
	require.Len(t, statuses, 2)
	assert.False(t, statuses[0].Configured)
	assert.Empty(t, statuses[0].URL)
	assert.True(t, statuses[1].Configured)
	assert.Equal(t, "Launch Analyzer", statuses[1].Label)
}

func withURL(m Module, url string) Module {
	m.URL = url
	return m
}

func urlOf(value string) *string {
	return &value
}
