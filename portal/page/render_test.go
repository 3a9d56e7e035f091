package page

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/designsuite/portal/config"
	"github.com/viant/designsuite/portal/module"
)

func TestRenderer_Render(t *testing.T) {
	var testCases = []struct {
		description    string
		interviewerURL string
		expectLinks    []string
		expectWarnings []string
		expectButtons  int
	}{
		{
			description:    "configured url",
			interviewerURL: "https://example.com/tool",
			expectLinks:    []string{`href="https://example.com/tool"`, ">Launch Interviewer</a>", `href="https://viab-insights.streamlit.app/"`},
			expectButtons:  2,
		},
		{
			description:    "empty url",
			interviewerURL: "",
			expectLinks:    []string{">Launch Analyzer</a>"},
			expectWarnings: []string{"Chatbot Interviewer URL not configured."},
			expectButtons:  1,
		},
		{
			description:    "placeholder url",
			interviewerURL: "YOUR_DEPLOYED_CHATBOT_APP_URL_HERE",
			expectWarnings: []string{"Chatbot Interviewer URL not configured."},
			expectButtons:  1,
		},
	}

	renderer, err := NewRenderer()
	require.NoError(t, err)
	for _, testCase := range testCases {
		cfg := config.New()
		cfg.Modules = map[string]*module.Override{}
		cfg.ApplyEnv(func(key string) (string, bool) {
			if key == config.EnvInterviewerURL {
				return testCase.interviewerURL, true
			}
			return "", false
		})
		buf := new(bytes.Buffer)
		require.NoError(t, renderer.Render(buf, New(cfg)), testCase.description)
		html := buf.String()

		for _, expect := range testCase.expectLinks {
			assert.Contains(t, html, expect, testCase.description)
		}
		for _, expect := range testCase.expectWarnings {
			assert.Contains(t, html, expect, testCase.description)
		}
		assert.Equal(t, testCase.expectButtons, strings.Count(html, `class="button"`), testCase.description)
		if len(testCase.expectWarnings) > 0 {
			assert.NotContains(t, html, "Launch Interviewer", testCase.description)
			if testCase.interviewerURL != "" {
				assert.NotContains(t, html, testCase.interviewerURL, testCase.description)
			}
		}
	}
}

func TestRenderer_ConfiguredHref(t *testing.T) {
	var testCases = []struct {
		description string
		URL         string
		expect      string
	}{
		{description: "ftp scheme", URL: "ftp://files.example.com/tool", expect: `href="ftp://files.example.com/tool"`},
		{description: "space kept", URL: "https://example.com/a b", expect: `href="https://example.com/a b"`},
		{description: "query", URL: "https://example.com/?a=1&b=2", expect: `href="https://example.com/?a=1&amp;b=2"`},
		{description: "quote escaped", URL: `https://example.com/"x`, expect: `href="https://example.com/&#34;x"`},
	}

	renderer, err := NewRenderer()
	require.NoError(t, err)
	for _, testCase := range testCases {
		cfg := config.New()
		cfg.ApplyEnv(func(key string) (string, bool) {
			if key == config.EnvInterviewerURL {
				return testCase.URL, true
			}
			return "", false
		})
		buf := new(bytes.Buffer)
		require.NoError(t, renderer.Render(buf, New(cfg)), testCase.description)
		html := buf.String()
		assert.Contains(t, html, testCase.expect, testCase.description)
		assert.NotContains(t, html, "ZgotmplZ", testCase.description)
		assert.Equal(t, 2, strings.Count(html, `class="button"`), testCase.description)
	}
}

func TestRenderer_EmptyURLFromConfigFile(t *testing.T) {
	location := filepath.Join(t.TempDir(), "portal.yaml")
	require.NoError(t, os.WriteFile(location, []byte("modules:\n  interviewer:\n    url: \"\"\n"), 0o644))
	cfg, err := config.Load(context.Background(), location)
	require.NoError(t, err)

	renderer, err := NewRenderer()
	require.NoError(t, err)
	buf := new(bytes.Buffer)
	require.NoError(t, renderer.Render(buf, New(cfg)))
	html := buf.String()
	assert.Contains(t, html, "Chatbot Interviewer URL not configured.")
	assert.NotContains(t, html, module.DefaultInterviewerURL)
	assert.Equal(t, 1, strings.Count(html, `class="button"`))
}

func TestRenderer_PageSections(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)
	buf := new(bytes.Buffer)
	require.NoError(t, renderer.Render(buf, New(config.New())))
	html := buf.String()

	for _, expect := range []string{
		"<title>AI Design Suite Portal</title>",
		"<h1>AI Architectural Design Suite</h1>",
		"<h2>System Modules</h2>",
		"🎨 AI Design Interviewer",
		"RAG Standards Analyzer",
		"<code>conversation.json</code>",
		"How These Modules Work Together",
		"<strong>Stage 1: Design Brief Creation (AI Design Interviewer)</strong>",
		"Select a module above to begin your design exploration or analysis.",
		".card:hover",
	} {
		assert.Contains(t, html, expect)
	}
	assert.Less(t, strings.Index(html, "module-interviewer"), strings.Index(html, "module-analyzer"))
}

func TestRenderer_Options(t *testing.T) {
	renderer, err := NewRenderer(
		WithTemplate(`{{.Title}}|{{range .Cards}}{{.ID}}:{{.Link.Active}};{{end}}|{{.Explanation}}|{{.CSS}}`),
		WithExplanation([]byte("# Flow")),
		WithStylesheet("body{}"),
	)
	require.NoError(t, err)
	buf := new(bytes.Buffer)
	require.NoError(t, renderer.Render(buf, New(config.New())))
	assert.Equal(t, "AI Architectural Design Suite|interviewer:true;analyzer:true;|<h1>Flow</h1>\n|body{}", buf.String())

	_, err = NewRenderer(WithTemplate("{{.Title"))
	assert.Error(t, err)
}

func TestLoadTemplate(t *testing.T) {
	location := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(location, []byte("<p>{{.Title}}</p>"), 0o644))
	text, err := LoadTemplate(context.Background(), location)
	require.NoError(t, err)
	assert.Equal(t, "<p>{{.Title}}</p>", text)
}
