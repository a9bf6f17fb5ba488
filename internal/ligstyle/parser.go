package ligstyle

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// StyleRule is a qualified rule found in a userstyle.
type StyleRule struct {
	Selector    string
	Line        int
	Column      int
	HasFeatures bool         // font-feature-settings declared
	Enabled     []FeatureTag // tags switched on
	Disabled    []FeatureTag // tags switched off
	Strings     []string     // selector names and attribute values, lowercased
}

// Enables reports whether the rule switches tag on.
func (r StyleRule) Enables(tag FeatureTag) bool {
	for _, t := range r.Enabled {
		if t == tag {
			return true
		}
	}
	return false
}

// Disables reports whether the rule switches tag off.
func (r StyleRule) Disables(tag FeatureTag) bool {
	for _, t := range r.Disabled {
		if t == tag {
			return true
		}
	}
	return false
}

// Document is the parsed structure of a userstyle file.
type Document struct {
	Filename string
	Lines    []string
	AtRules  []string // block at-rules in order ("@-moz-document")
	Rules    []StyleRule
}

type token struct {
	tt   css.TokenType
	text string
	line int
	col  int
}

// frame is an open {} block. rule is the index of the style rule, or -1
// for an at-rule block.
type frame struct {
	rule int
	open token
}

// parserState maintains context while parsing a userstyle
type parserState struct {
	doc    *Document
	buf    []token
	stack  []frame
	issues []Issue
}

// ParseUserstyle lexes content and returns its rules together with
// structural and feature-settings issues. It never fails: malformed input
// yields issues instead.
func ParseUserstyle(content, filename string) (*Document, []Issue) {
	state := &parserState{
		doc: &Document{
			Filename: filename,
			Lines:    strings.Split(content, "\n"),
		},
	}

	lexer := css.NewLexer(parse.NewInputString(content))
	line, col := 1, 1

	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal
			if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				state.issue(SeverityError, LinterSyntax, token{line: line, col: col},
					fmt.Sprintf("malformed stylesheet: %v", err))
			}
			break
		}

		tok := token{tt: tt, text: string(data), line: line, col: col}
		line, col = advance(line, col, data)

		switch tt {
		case css.CommentToken:
		case css.BadStringToken:
			state.issue(SeverityError, LinterSyntax, tok, fmt.Sprintf(IssueBadToken, "string"))
		case css.BadURLToken:
			state.issue(SeverityError, LinterSyntax, tok, fmt.Sprintf(IssueBadToken, "url"))
		case css.LeftBraceToken:
			state.openBlock(tok)
		case css.RightBraceToken:
			state.closeBlock(tok)
		case css.SemicolonToken:
			state.endStatement()
		default:
			state.buf = append(state.buf, tok)
		}
	}

	if state.inStyleRule() {
		state.flushDeclaration()
	}
	for _, f := range state.stack {
		state.issue(SeverityError, LinterSyntax, f.open, IssueUnclosedBlock)
	}

	return state.doc, state.issues
}

// advance moves the position past data
func advance(line, col int, data []byte) (int, int) {
	for _, b := range data {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

func (s *parserState) issue(severity, linter string, at token, text string) {
	issue := Issue{
		FromLinter: linter,
		Text:       text,
		Severity:   severity,
		Pos: IssuePos{
			Filename: s.doc.Filename,
			Line:     at.line,
			Column:   at.col,
		},
	}
	if at.line >= 1 && at.line <= len(s.doc.Lines) {
		issue.SourceLines = []string{strings.TrimRight(s.doc.Lines[at.line-1], "\r")}
	}
	s.issues = append(s.issues, issue)
}

func (s *parserState) inStyleRule() bool {
	return len(s.stack) > 0 && s.stack[len(s.stack)-1].rule >= 0
}

func (s *parserState) currentRule() *StyleRule {
	return &s.doc.Rules[s.stack[len(s.stack)-1].rule]
}

// takeBuffer returns the buffered tokens without surrounding whitespace
func (s *parserState) takeBuffer() []token {
	toks := s.buf
	s.buf = nil
	for len(toks) > 0 && toks[0].tt == css.WhitespaceToken {
		toks = toks[1:]
	}
	for len(toks) > 0 && toks[len(toks)-1].tt == css.WhitespaceToken {
		toks = toks[:len(toks)-1]
	}
	return toks
}

// openBlock handles '{': the buffered prelude is an at-rule or a selector
func (s *parserState) openBlock(brace token) {
	prelude := s.takeBuffer()

	if len(prelude) > 0 && prelude[0].tt == css.AtKeywordToken {
		s.doc.AtRules = append(s.doc.AtRules, strings.ToLower(prelude[0].text))
		s.stack = append(s.stack, frame{rule: -1, open: brace})
		return
	}

	start := brace
	if len(prelude) > 0 {
		start = prelude[0]
	}
	rule := StyleRule{
		Selector: joinTokens(prelude),
		Line:     start.line,
		Column:   start.col,
	}
	if rule.Selector == "" {
		s.issue(SeverityError, LinterSyntax, brace, IssueEmptySelector)
	}
	s.checkSelector(prelude, &rule)

	s.doc.Rules = append(s.doc.Rules, rule)
	s.stack = append(s.stack, frame{rule: len(s.doc.Rules) - 1, open: brace})
}

// checkSelector verifies bracket balance and records quoted values
func (s *parserState) checkSelector(prelude []token, rule *StyleRule) {
	type opener struct {
		tok   token
		close css.TokenType
		char  string
	}
	var open []opener
	var prev token

	for _, tok := range prelude {
		if tok.tt == css.WhitespaceToken || tok.tt == css.CommentToken {
			continue
		}
		switch tok.tt {
		case css.FunctionToken, css.LeftParenthesisToken:
			open = append(open, opener{tok: tok, close: css.RightParenthesisToken, char: "("})
		case css.LeftBracketToken:
			open = append(open, opener{tok: tok, close: css.RightBracketToken, char: "["})
		case css.RightParenthesisToken, css.RightBracketToken:
			if len(open) == 0 || open[len(open)-1].close != tok.tt {
				s.issue(SeverityError, LinterSyntax, tok, fmt.Sprintf(IssueUnbalanced, tok.text))
				continue
			}
			open = open[:len(open)-1]
		case css.StringToken:
			rule.Strings = append(rule.Strings, strings.ToLower(unquote(tok.text)))
		case css.HashToken:
			rule.Strings = append(rule.Strings, strings.ToLower(strings.TrimPrefix(tok.text, "#")))
		case css.IdentToken:
			// .class and [attr=value] both name the language unquoted
			if isClassDelim(prev) || (len(open) > 0 && open[len(open)-1].char == "[" && isAttrMatch(prev)) {
				rule.Strings = append(rule.Strings, strings.ToLower(tok.text))
			}
		}
		prev = tok
	}
	for _, o := range open {
		s.issue(SeverityError, LinterSyntax, o.tok, fmt.Sprintf(IssueUnbalanced, o.char))
	}
}

func isClassDelim(t token) bool {
	return t.tt == css.DelimToken && t.text == "."
}

func isAttrMatch(t token) bool {
	switch t.tt {
	case css.IncludeMatchToken, css.DashMatchToken, css.PrefixMatchToken,
		css.SuffixMatchToken, css.SubstringMatchToken:
		return true
	case css.DelimToken:
		return t.text == "="
	}
	return false
}

// closeBlock handles '}'
func (s *parserState) closeBlock(brace token) {
	if len(s.stack) == 0 {
		s.buf = nil
		s.issue(SeverityError, LinterSyntax, brace, fmt.Sprintf(IssueUnexpectedClose, "}"))
		return
	}

	top := s.stack[len(s.stack)-1]
	if top.rule >= 0 {
		s.flushDeclaration()
		s.finishRule(s.doc.Rules[top.rule])
	} else {
		s.buf = nil
	}
	s.stack = s.stack[:len(s.stack)-1]
}

// endStatement handles ';'
func (s *parserState) endStatement() {
	if s.inStyleRule() {
		s.flushDeclaration()
		return
	}
	// @import, @charset and friends
	s.buf = nil
}

// flushDeclaration consumes a buffered "name: value" pair
func (s *parserState) flushDeclaration() {
	toks := s.takeBuffer()
	colon := -1
	for i, tok := range toks {
		if tok.tt == css.ColonToken {
			colon = i
			break
		}
	}
	if colon < 1 {
		return
	}
	name := strings.ToLower(joinTokens(toks[:colon]))
	if name != "font-feature-settings" {
		return
	}

	rule := s.currentRule()
	rule.HasFeatures = true

	var entry []token
	flush := func() {
		s.featureEntry(rule, entry)
		entry = nil
	}
	for _, tok := range toks[colon+1:] {
		switch tok.tt {
		case css.WhitespaceToken, css.CommentToken:
		case css.CommaToken:
			flush()
		default:
			entry = append(entry, tok)
		}
	}
	flush()
}

// featureEntry interprets one `"tag" on|off|<int>` item
func (s *parserState) featureEntry(rule *StyleRule, entry []token) {
	if len(entry) == 0 || entry[0].tt != css.StringToken {
		// "normal" or garbage
		return
	}
	tag := FeatureTag(unquote(entry[0].text))
	if !tag.Valid() {
		s.issue(SeverityError, LinterFeatures, entry[0], fmt.Sprintf(IssueInvalidTag, string(tag)))
		return
	}

	on := true
	if len(entry) > 1 {
		switch v := strings.ToLower(entry[1].text); entry[1].tt {
		case css.IdentToken:
			on = v != "off"
		case css.NumberToken:
			on = v != "0"
		}
	}
	if on {
		rule.Enabled = append(rule.Enabled, tag)
	} else {
		rule.Disabled = append(rule.Disabled, tag)
	}
}

func (s *parserState) finishRule(rule StyleRule) {
	at := token{line: rule.Line, col: rule.Column}
	if !rule.HasFeatures {
		s.issue(SeverityWarning, LinterFeatures, at, IssueMissingFeatures)
		return
	}
	if !rule.Disables("calt") {
		s.issue(SeverityWarning, LinterFeatures, at, IssueCaltNotDisabled)
	}
	ligation := false
	for _, t := range rule.Enabled {
		if t != "calt" {
			ligation = true
		}
	}
	if !ligation {
		s.issue(SeverityWarning, LinterFeatures, at, IssueNoLigationTarget)
	}
}

// joinTokens concatenates token text, collapsing whitespace runs
func joinTokens(toks []token) string {
	var b strings.Builder
	for _, tok := range toks {
		if tok.tt == css.CommentToken {
			continue
		}
		if tok.tt == css.WhitespaceToken {
			b.WriteByte(' ')
			continue
		}
		b.WriteString(tok.text)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
