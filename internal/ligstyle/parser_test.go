package ligstyle

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserstyle_Structure(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantText string
		wantLine int
		wantCol  int
	}{
		{
			name:     "unexpected closing brace",
			content:  "a {\n}\n}",
			wantText: fmt.Sprintf(IssueUnexpectedClose, "}"),
			wantLine: 3,
			wantCol:  1,
		},
		{
			name:     "unclosed block",
			content:  "pre {\n  font-feature-settings: \"calt\" off, \"CLIK\" on;",
			wantText: IssueUnclosedBlock,
			wantLine: 1,
			wantCol:  5,
		},
		{
			name:     "unclosed bracket",
			content:  `pre[class~="x" i { font-feature-settings: "calt" off, "CLIK" on; }`,
			wantText: fmt.Sprintf(IssueUnbalanced, "["),
			wantLine: 1,
			wantCol:  4,
		},
		{
			name:     "stray parenthesis",
			content:  `pre) { font-feature-settings: "calt" off, "CLIK" on; }`,
			wantText: fmt.Sprintf(IssueUnbalanced, ")"),
			wantLine: 1,
			wantCol:  4,
		},
		{
			name:     "empty selector",
			content:  `{ font-feature-settings: "calt" off, "CLIK" on; }`,
			wantText: IssueEmptySelector,
			wantLine: 1,
			wantCol:  1,
		},
		{
			name:     "invalid tag",
			content:  `pre { font-feature-settings: "calt" off, "TOOLONG" on; }`,
			wantText: fmt.Sprintf(IssueInvalidTag, "TOOLONG"),
			wantLine: 1,
			wantCol:  42,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, issues := ParseUserstyle(tt.content, "test.user.css")

			var found *Issue
			for i := range issues {
				if issues[i].Text == tt.wantText {
					found = &issues[i]
					break
				}
			}
			require.NotNil(t, found, "issue %q not reported, got %+v", tt.wantText, issues)
			assert.Equal(t, SeverityError, found.Severity)
			assert.Equal(t, "test.user.css", found.Pos.Filename)
			assert.Equal(t, tt.wantLine, found.Pos.Line)
			assert.Equal(t, tt.wantCol, found.Pos.Column)
			require.Len(t, found.SourceLines, 1)
		})
	}
}

func TestParseUserstyle_Warnings(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "no font-feature-settings",
			content: "pre { color: red; }",
			want:    []string{IssueMissingFeatures},
		},
		{
			name:    "calt left on",
			content: `pre { font-feature-settings: "CLIK" on; }`,
			want:    []string{IssueCaltNotDisabled},
		},
		{
			name:    "only calt",
			content: `pre { font-feature-settings: "calt" off; }`,
			want:    []string{IssueNoLigationTarget},
		},
		{
			name:    "numeric values",
			content: `pre { font-feature-settings: "calt" 0, "CLIK" 1; }`,
		},
		{
			name:    "implicit on",
			content: `pre { font-feature-settings: "calt" off, "CLIK"; }`,
		},
		{
			name:    "uppercase property",
			content: `pre { FONT-FEATURE-SETTINGS: "calt" OFF, "CLIK" ON }`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, issues := ParseUserstyle(tt.content, "test.user.css")

			var got []string
			for _, issue := range issues {
				assert.Equal(t, SeverityWarning, issue.Severity)
				assert.Equal(t, LinterFeatures, issue.FromLinter)
				got = append(got, issue.Text)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseUserstyle_BadString(t *testing.T) {
	_, issues := ParseUserstyle("pre[class~=\"x\n] { }", "test.user.css")

	var texts []string
	for _, issue := range issues {
		texts = append(texts, issue.Text)
	}
	assert.Contains(t, texts, fmt.Sprintf(IssueBadToken, "string"))
}

func TestParseUserstyle_RuleFields(t *testing.T) {
	content := "/* header */\n" +
		"@-moz-document regexp(\".*\") {\n" +
		"    :is(pre, code):is([class~=\"Language-Rust\" i]) {\n" +
		"        font-feature-settings: \"calt\" off, \"CLIK\" on;\n" +
		"    }\n" +
		"}"

	doc, issues := ParseUserstyle(content, "test.user.css")
	require.Empty(t, issues)

	assert.Equal(t, []string{"@-moz-document"}, doc.AtRules)
	require.Len(t, doc.Rules, 1)

	rule := doc.Rules[0]
	assert.Equal(t, `:is(pre, code):is([class~="Language-Rust" i])`, rule.Selector)
	assert.Equal(t, 3, rule.Line)
	assert.Equal(t, 5, rule.Column)
	assert.True(t, rule.HasFeatures)
	assert.Equal(t, []FeatureTag{"CLIK"}, rule.Enabled)
	assert.Equal(t, []FeatureTag{"calt"}, rule.Disabled)
	assert.Equal(t, []string{"language-rust"}, rule.Strings)
	assert.True(t, rule.Enables("CLIK"))
	assert.True(t, rule.Disables("calt"))
	assert.False(t, rule.Enables("JSPT"))
}

func TestParseUserstyle_UnquotedSelectorNames(t *testing.T) {
	content := `pre.Lang-Rust#Main[data-lang=RS], code[data-x|=py] .hljs { font-feature-settings: "calt" off, "CLIK" on; }`

	doc, issues := ParseUserstyle(content, "test.user.css")
	require.Empty(t, issues)
	require.Len(t, doc.Rules, 1)

	assert.Equal(t, []string{"lang-rust", "main", "rs", "py", "hljs"}, doc.Rules[0].Strings)
}

func TestParseUserstyle_NestedAtRules(t *testing.T) {
	content := `@import url("base.css");
@media screen {
  @supports (font-feature-settings: normal) {
    pre { font-feature-settings: "calt" off, "HSKL" on; }
  }
}`
	doc, issues := ParseUserstyle(content, "test.user.css")
	require.Empty(t, issues)
	assert.Equal(t, []string{"@media", "@supports"}, doc.AtRules)
	require.Len(t, doc.Rules, 1)
	assert.Equal(t, "pre", doc.Rules[0].Selector)
	assert.Equal(t, 4, doc.Rules[0].Line)
}

func TestAdvance(t *testing.T) {
	line, col := advance(1, 1, []byte("ab\ncd"))
	assert.Equal(t, 2, line)
	assert.Equal(t, 3, col)
}
