package ligstyle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleString(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
		want string
	}{
		{
			name: "plain",
			rule: Rule{Selector: `pre[class~="rust" i]`, Tag: "CLIK"},
			want: "    pre[class~=\"rust\" i] {\n" +
				"        font-feature-settings: \"calt\" off, \"CLIK\" on;\n" +
				"    }\n",
		},
		{
			name: "with comment",
			rule: Rule{Selector: "code", Tag: "JSPT", Comment: "fallback"},
			want: "    /* fallback */\n" +
				"    code {\n" +
				"        font-feature-settings: \"calt\" off, \"JSPT\" on;\n" +
				"    }\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.String())
		})
	}
}

func TestCodeElementRules(t *testing.T) {
	rules := CodeElementRules([]string{"[a]", "[b]"}, "TAG1", "")
	require.Len(t, rules, 4)

	selectors := make([]string, len(rules))
	for i, r := range rules {
		selectors[i] = r.Selector
		assert.Equal(t, FeatureTag("TAG1"), r.Tag)
	}
	assert.Equal(t, []string{
		":is([a], [b]) :is(pre, code, textarea)",
		":host :is([a], [b]) :is(pre, code, textarea)",
		":is(pre, code):is([a], [b])",
		":host :is(pre, code):is([a], [b])",
	}, selectors)
}

func TestCodeElementRules_EmptySelectors(t *testing.T) {
	assert.Empty(t, CodeElementRules(nil, "TAG1", ""))
}

func TestSelectorFamilies(t *testing.T) {
	group := AliasGroup{"foo", "bar"}

	t.Run("class prefix is keyword-major", func(t *testing.T) {
		assert.Equal(t, []string{
			`[class~="language-foo" i]`,
			`[class~="language-bar" i]`,
			`[class~="lang-foo" i]`,
			`[class~="lang-bar" i]`,
		}, ClassPrefixSelectors([]string{"language", "lang"}, group))
	})

	t.Run("class suffix is alias-major", func(t *testing.T) {
		assert.Equal(t, []string{
			`[class~="foo-code" i]`,
			`[class~="foo-src" i]`,
			`[class~="bar-code" i]`,
			`[class~="bar-src" i]`,
		}, ClassSuffixSelectors([]string{"code", "src"}, group))
	})

	t.Run("attribute", func(t *testing.T) {
		assert.Equal(t, []string{
			`[data-lang~="foo" i]`,
			`[data-lang~="bar" i]`,
		}, AttributeSelectors([]string{"data-lang"}, group))
	})

	t.Run("combined class", func(t *testing.T) {
		assert.Equal(t, []string{
			`[class~="hljs" i][class~="foo" i]`,
			`[class~="hljs" i][class~="bar" i]`,
		}, CombinedClassSelectors([]string{"hljs"}, group))
	})

	t.Run("site pattern", func(t *testing.T) {
		site := SitePattern{Name: "gitlab", Pattern: `pre[class~="highlight" i] [lang~="{alias}" i]`}
		assert.Equal(t, []string{
			`pre[class~="highlight" i] [lang~="foo" i]`,
			`pre[class~="highlight" i] [lang~="bar" i]`,
		}, SiteSelectors(site, group))
	})
}

func TestGroupRules_Order(t *testing.T) {
	vocab := Vocabulary{
		ClassPrefixes:   []string{"language"},
		ClassSuffixes:   []string{"code"},
		Attributes:      []string{"data-lang"},
		CombinedClasses: []string{"hljs"},
	}
	sites := []SitePattern{{Name: "rustdoc", Pattern: `pre[class~="{alias}" i]`}}

	rules := GroupRules(AliasGroup{"rust", "rs"}, "CLIK", vocab, sites)
	// 4 families x 4 variants, plus one site rule per alias
	require.Len(t, rules, 18)

	assert.Contains(t, rules[0].Selector, "language-rust")
	assert.Contains(t, rules[4].Selector, "rust-code")
	assert.Contains(t, rules[8].Selector, `[data-lang~="rust" i]`)
	assert.Contains(t, rules[12].Selector, `[class~="hljs" i][class~="rust" i]`)
	assert.Equal(t, `pre[class~="rust" i]`, rules[16].Selector)
	assert.Equal(t, `pre[class~="rs" i]`, rules[17].Selector)
}

func TestGroupRules_SkipsEmptyFamilies(t *testing.T) {
	vocab := Vocabulary{Attributes: []string{"data-lang"}}
	rules := GroupRules(AliasGroup{"c"}, "CLIK", vocab, nil)
	require.Len(t, rules, 4)
	for _, r := range rules {
		assert.Contains(t, r.Selector, `[data-lang~="c" i]`)
	}
}

func TestRules_DefaultCatalogueCount(t *testing.T) {
	cat := DefaultCatalogue()
	perFamily := 4
	families := 4

	want := 0
	for _, set := range cat.Sets {
		for _, group := range set.Groups {
			want += families*perFamily + len(cat.Sites)*len(group)
		}
	}
	assert.Len(t, Rules(cat), want)
}

func TestRules_FollowCatalogueOrder(t *testing.T) {
	cat := DefaultCatalogue()
	rules := Rules(cat)

	var order []FeatureTag
	for _, r := range rules {
		if len(order) == 0 || order[len(order)-1] != r.Tag {
			order = append(order, r.Tag)
		}
	}
	assert.Equal(t, cat.Tags(), order)
}

func TestSingleLanguageGroup(t *testing.T) {
	cat := Catalogue{
		Sets:       []LigationSet{{Tag: "TAG1", Groups: []AliasGroup{{"foo", "bar"}}}},
		Vocabulary: DefaultVocabulary(),
		Sites:      DefaultSites(),
	}
	require.NoError(t, cat.Validate())

	out := RenderString(cat, DefaultMetadata())
	for _, alias := range []string{"foo", "bar"} {
		assert.Contains(t, out, `[class~="`+alias+`" i]`)
		assert.Contains(t, out, `[class~="language-`+alias+`" i]`)
		assert.Contains(t, out, `[data-lang~="`+alias+`" i]`)
	}
	assert.Contains(t, out, `font-feature-settings: "calt" off, "TAG1" on;`)
	assert.NotContains(t, out, "CLIK")
}

func TestRules_NoDeduplication(t *testing.T) {
	cat := Catalogue{
		Sets: []LigationSet{
			{Tag: "AAAA", Groups: []AliasGroup{{"x"}}},
			{Tag: "BBBB", Groups: []AliasGroup{{"x"}}},
		},
		Vocabulary: Vocabulary{Attributes: []string{"data-lang"}},
	}
	rules := Rules(cat)
	require.Len(t, rules, 8)
	assert.Equal(t, rules[0].Selector, rules[4].Selector)
	assert.Equal(t, FeatureTag("AAAA"), rules[0].Tag)
	assert.Equal(t, FeatureTag("BBBB"), rules[4].Tag)
}

func TestRule_DeclarationDisablesCalt(t *testing.T) {
	r := Rule{Selector: "pre", Tag: "HSKL"}
	assert.True(t, strings.HasPrefix(r.Declaration(), `font-feature-settings: "calt" off`))
}
