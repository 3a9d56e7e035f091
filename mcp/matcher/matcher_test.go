package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	var testCases = []struct {
		description string
		pattern     string
		candidate   string
		expect      bool
	}{
		{description: "wildcard", pattern: "*", candidate: "portal-status", expect: true},
		{description: "empty", pattern: "", candidate: "portal-status", expect: false},
		{description: "exact name", pattern: "portal-status", candidate: "portal-status", expect: true},
		{description: "exact path", pattern: "portal/status", candidate: "portal/status", expect: true},
		{description: "exact is not prefix", pattern: "portal/status", candidate: "portal/statuses", expect: false},
		{description: "service prefix", pattern: "portal/", candidate: "portal/modules", expect: true},
		{description: "other service", pattern: "system/", candidate: "portal/modules", expect: false},
		{description: "tool prefix", pattern: "portal-", candidate: "portal-modules", expect: true},
		{description: "nested prefix", pattern: "system_", candidate: "system_exec-execute", expect: true},
		{description: "trailing star", pattern: "portal-s*", candidate: "portal-status", expect: true},
		{description: "trailing star miss", pattern: "portal-m*", candidate: "portal-status", expect: false},
	}

	for _, testCase := range testCases {
		assert.EqualValues(t, testCase.expect, Match(testCase.pattern, testCase.candidate), testCase.description)
	}
}
