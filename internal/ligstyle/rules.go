package ligstyle

import (
	"fmt"
	"strings"
)

const indent = "    "

// Rule is one CSS rule block enabling a feature tag for a selector.
type Rule struct {
	Selector string
	Tag      FeatureTag
	Comment  string
}

// Declaration returns the font-feature-settings declaration of the rule.
// Contextual alternates are switched off so only the language set applies.
func (r Rule) Declaration() string {
	return fmt.Sprintf(`font-feature-settings: "calt" off, "%s" on;`, r.Tag)
}

// String renders the rule as indented CSS ending in a newline.
func (r Rule) String() string {
	var b strings.Builder
	r.writeTo(&b)
	return b.String()
}

func (r Rule) writeTo(b *strings.Builder) {
	if r.Comment != "" {
		b.WriteString(indent + "/* " + r.Comment + " */\n")
	}
	b.WriteString(indent + r.Selector + " {\n")
	b.WriteString(indent + indent + r.Declaration() + "\n")
	b.WriteString(indent + "}\n")
}

// CodeElementRules matches code containers both as descendants of the
// selected elements and as the selected elements themselves. Every selector
// is repeated with a :host prefix for highlighters rendering in shadow DOM.
func CodeElementRules(selectors []string, tag FeatureTag, comment string) []Rule {
	if len(selectors) == 0 {
		return nil
	}
	joined := strings.Join(selectors, ", ")
	wrapped := []string{
		fmt.Sprintf(":is(%s) :is(pre, code, textarea)", joined),
		fmt.Sprintf(":is(pre, code):is(%s)", joined),
	}

	rules := make([]Rule, 0, 2*len(wrapped))
	for _, s := range wrapped {
		rules = append(rules,
			Rule{Selector: s, Tag: tag, Comment: comment},
			Rule{Selector: ":host " + s, Tag: tag, Comment: comment},
		)
	}
	return rules
}

// WholeSelectorRules emits one rule per selector, used as-is.
func WholeSelectorRules(selectors []string, tag FeatureTag, comment string) []Rule {
	rules := make([]Rule, 0, len(selectors))
	for _, s := range selectors {
		rules = append(rules, Rule{Selector: s, Tag: tag, Comment: comment})
	}
	return rules
}

// ClassPrefixSelectors builds [class~="<keyword>-<alias>" i], keyword-major.
func ClassPrefixSelectors(keywords []string, group AliasGroup) []string {
	out := make([]string, 0, len(keywords)*len(group))
	for _, kw := range keywords {
		for _, alias := range group {
			out = append(out, classSelector(kw+"-"+alias))
		}
	}
	return out
}

// ClassSuffixSelectors builds [class~="<alias>-<keyword>" i], alias-major.
func ClassSuffixSelectors(keywords []string, group AliasGroup) []string {
	out := make([]string, 0, len(keywords)*len(group))
	for _, alias := range group {
		for _, kw := range keywords {
			out = append(out, classSelector(alias+"-"+kw))
		}
	}
	return out
}

// AttributeSelectors builds [<attribute>~="<alias>" i].
func AttributeSelectors(attributes []string, group AliasGroup) []string {
	out := make([]string, 0, len(attributes)*len(group))
	for _, attr := range attributes {
		for _, alias := range group {
			out = append(out, fmt.Sprintf(`[%s~="%s" i]`, attr, alias))
		}
	}
	return out
}

// CombinedClassSelectors builds [class~="<class>" i][class~="<alias>" i].
func CombinedClassSelectors(classes []string, group AliasGroup) []string {
	out := make([]string, 0, len(classes)*len(group))
	for _, cls := range classes {
		for _, alias := range group {
			out = append(out, classSelector(cls)+classSelector(alias))
		}
	}
	return out
}

// SiteSelectors expands a site pattern once per alias.
func SiteSelectors(site SitePattern, group AliasGroup) []string {
	out := make([]string, 0, len(group))
	for _, alias := range group {
		out = append(out, strings.ReplaceAll(site.Pattern, AliasPlaceholder, alias))
	}
	return out
}

func classSelector(class string) string {
	return fmt.Sprintf(`[class~="%s" i]`, class)
}

// GroupRules returns every rule generated for a single alias group.
func GroupRules(group AliasGroup, tag FeatureTag, vocab Vocabulary, sites []SitePattern) []Rule {
	var rules []Rule
	rules = append(rules, CodeElementRules(ClassPrefixSelectors(vocab.ClassPrefixes, group), tag, "")...)
	rules = append(rules, CodeElementRules(ClassSuffixSelectors(vocab.ClassSuffixes, group), tag, "")...)
	rules = append(rules, CodeElementRules(AttributeSelectors(vocab.Attributes, group), tag, "")...)
	rules = append(rules, CodeElementRules(CombinedClassSelectors(vocab.CombinedClasses, group), tag, "")...)
	for _, site := range sites {
		rules = append(rules, WholeSelectorRules(SiteSelectors(site, group), tag, "")...)
	}
	return rules
}

// Rules expands the whole catalogue in catalogue order. Selectors are
// neither sorted nor deduplicated.
func Rules(cat Catalogue) []Rule {
	var rules []Rule
	for _, set := range cat.Sets {
		for _, group := range set.Groups {
			rules = append(rules, GroupRules(group, set.Tag, cat.Vocabulary, cat.Sites)...)
		}
	}
	return rules
}
