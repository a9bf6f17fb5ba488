package ligstyle

import (
	"errors"
	"fmt"
	"strings"
)

// https://github.com/be5invis/Iosevka/blob/main/doc/language-specific-ligation-sets.md
//
// Go (":=") and Perl ("<>") are left out: their ligation sets would change
// operators the language actually uses. Agda needs Unicode, and Scala reads
// best with the default set.
var defaultSets = []LigationSet{
	{Tag: "CLIK", Groups: []AliasGroup{
		{"c"},
		{"cpp", "cc", "c++", "h++", "hpp", "hh", "hxx", "cxx"},
		{"objc", "objcpp", "objc++"},
		{"d"},
		{"java"},
		{"kotlin", "kt", "kts"},
		{"csharp", "cs", "c#"},
		{"zig", "zir"},
		{"rust", "rs"},
	}},
	{Tag: "JSPT", Groups: []AliasGroup{
		{"javascript", "js", "jsx", "mjs", "cjs"},
		{"typescript", "ts", "tsx", "mts", "cts"},
	}},
	{Tag: "PHPX", Groups: []AliasGroup{{"php", "php3", "php4", "php5", "phpt"}}},
	{Tag: "JLIA", Groups: []AliasGroup{{"julia", "jl"}}},
	{Tag: "RAKU", Groups: []AliasGroup{{"raku"}}},
	{Tag: "MLXX", Groups: []AliasGroup{
		{"sml", "smlnj", "ml"},
		{"ocaml"},
	}},
	// "fs" is ambiguous between F# and F*; F# wins.
	{Tag: "FSHP", Groups: []AliasGroup{{"fsharp", "fs", "f#"}}},
	{Tag: "FSTA", Groups: []AliasGroup{{"fstar"}}},
	{Tag: "HSKL", Groups: []AliasGroup{{"haskell", "hs", "lhs"}}},
	{Tag: "IDRS", Groups: []AliasGroup{{"idris", "idr"}}},
	{Tag: "ELMX", Groups: []AliasGroup{{"elm"}}},
	{Tag: "PURS", Groups: []AliasGroup{{"purescript", "purs"}}},
	{Tag: "SWFT", Groups: []AliasGroup{{"swift"}}},
	{Tag: "DFNY", Groups: []AliasGroup{{"dafny"}}},
	{Tag: "COQX", Groups: []AliasGroup{{"coq", "rocq"}}},
	{Tag: "MTLB", Groups: []AliasGroup{{"matlab"}}},
	{Tag: "VRLG", Groups: []AliasGroup{
		{"verilog", "v"},
		{"sv", "svh"},
	}},
	{Tag: "WFLM", Groups: []AliasGroup{
		{"mathematica", "mma"},
		{"wolfram", "wl"},
	}},
	{Tag: "ERLA", Groups: []AliasGroup{{"erlang", "erl"}}},
}

var defaultVocabulary = Vocabulary{
	ClassPrefixes: []string{
		"highlighted",       // CircuitCoder/layered
		"language",          // Shiki, Prism.js, Highlight.js, Rouge
		"mw-highlight-lang", // MediaWiki
		"shj-lang",          // Speed-highlight JS
		"highlight-source",  // GitHub Markdown
		"lang",              // Highlight.js, Discourse
		"highlight",         // Sphinx
		"hljs",
		"hljs-language",
		"enlighter-l",
	},
	ClassSuffixes: []string{
		"code", // raku.org
	},
	Attributes: []string{
		"data-lang",
		"data-language", // Astro
		"language",      // MDN
		"data-enlighter-language",
	},
	CombinedClasses: []string{
		"hljs",
		"highlight",
		// MDN renders inside shadow DOM, see the :host variants.
		"brush:",
		"sourceCode",        // Pandoc
		"syntaxhighlighter", // Hackaday
	},
}

var defaultSites = []SitePattern{
	{Name: "gitlab", Pattern: `pre[class~="highlight" i] [lang~="{alias}" i]`},
	{Name: "rustdoc", Pattern: `pre[class~="{alias}" i]`},
	{Name: "zigdoc", Pattern: `code[class~="{alias}" i], figure:has(.zig-cap) > pre`},
	// https://www.typescriptlang.org/play/
	{Name: "monaco-editor", Pattern: `pre[class~="monaco-editor" i][data-uri*="{alias}" i]`},
	{Name: "wordpress", Pattern: `td[class~="code" i] code[class~="{alias}" i]`},
}

// DefaultCatalogue returns a fresh copy of the built-in catalogue.
func DefaultCatalogue() Catalogue {
	cat := Catalogue{
		Sets:       defaultSets,
		Vocabulary: defaultVocabulary,
		Sites:      defaultSites,
	}
	return cat.Clone()
}

// DefaultVocabulary returns a fresh copy of the built-in highlighter vocabulary.
func DefaultVocabulary() Vocabulary {
	return defaultVocabulary.clone()
}

// DefaultSites returns a fresh copy of the built-in site patterns.
func DefaultSites() []SitePattern {
	return append([]SitePattern(nil), defaultSites...)
}

// Clone returns a deep copy
func (c Catalogue) Clone() Catalogue {
	sets := make([]LigationSet, 0, len(c.Sets))
	for _, set := range c.Sets {
		groups := make([]AliasGroup, 0, len(set.Groups))
		for _, g := range set.Groups {
			groups = append(groups, append(AliasGroup(nil), g...))
		}
		sets = append(sets, LigationSet{Tag: set.Tag, Groups: groups})
	}
	return Catalogue{
		Sets:       sets,
		Vocabulary: c.Vocabulary.clone(),
		Sites:      append([]SitePattern(nil), c.Sites...),
	}
}

func (v Vocabulary) clone() Vocabulary {
	return Vocabulary{
		ClassPrefixes:   append([]string(nil), v.ClassPrefixes...),
		ClassSuffixes:   append([]string(nil), v.ClassSuffixes...),
		Attributes:      append([]string(nil), v.Attributes...),
		CombinedClasses: append([]string(nil), v.CombinedClasses...),
	}
}

// Aliases flattens the catalogue into (tag, alias) pairs in emission order.
func (c Catalogue) Aliases() []TaggedAlias {
	var out []TaggedAlias
	for _, set := range c.Sets {
		for _, group := range set.Groups {
			for _, alias := range group {
				out = append(out, TaggedAlias{Tag: set.Tag, Alias: alias})
			}
		}
	}
	return out
}

// Tags returns the feature tags in catalogue order.
func (c Catalogue) Tags() []FeatureTag {
	tags := make([]FeatureTag, 0, len(c.Sets))
	for _, set := range c.Sets {
		tags = append(tags, set.Tag)
	}
	return tags
}

// Valid reports whether t is four printable ASCII characters that can be
// written inside a CSS string without escaping.
func (t FeatureTag) Valid() bool {
	if len(t) != 4 {
		return false
	}
	for i := 0; i < len(t); i++ {
		b := t[i]
		if b < 0x20 || b > 0x7e || b == '"' || b == '\\' {
			return false
		}
	}
	return true
}

// Validate checks the catalogue can be rendered into well-formed CSS.
func (c Catalogue) Validate() error {
	if len(c.Sets) == 0 {
		return fmt.Errorf("%w: no ligation sets", ErrInvalidCatalogue)
	}
	for i, set := range c.Sets {
		if !set.Tag.Valid() {
			return fmt.Errorf("%w: set %d: feature tag %q must be 4 printable ASCII characters",
				ErrInvalidCatalogue, i, set.Tag)
		}
		if len(set.Groups) == 0 {
			return fmt.Errorf("%w: %s: no alias groups", ErrInvalidCatalogue, set.Tag)
		}
		for j, group := range set.Groups {
			if len(group) == 0 {
				return fmt.Errorf("%w: %s: group %d is empty", ErrInvalidCatalogue, set.Tag, j)
			}
			for _, alias := range group {
				if err := validateWord(alias); err != nil {
					return fmt.Errorf("%w: %s: alias %q: %w", ErrInvalidCatalogue, set.Tag, alias, err)
				}
			}
		}
	}

	lists := []struct {
		name  string
		words []string
	}{
		{"class-prefixes", c.Vocabulary.ClassPrefixes},
		{"class-suffixes", c.Vocabulary.ClassSuffixes},
		{"attributes", c.Vocabulary.Attributes},
		{"combined-classes", c.Vocabulary.CombinedClasses},
	}
	for _, list := range lists {
		for _, w := range list.words {
			if err := validateWord(w); err != nil {
				return fmt.Errorf("%w: vocabulary %s: %q: %w", ErrInvalidCatalogue, list.name, w, err)
			}
		}
	}

	for _, site := range c.Sites {
		if site.Name == "" {
			return fmt.Errorf("%w: site pattern without a name", ErrInvalidCatalogue)
		}
		if !strings.Contains(site.Pattern, AliasPlaceholder) {
			return fmt.Errorf("%w: site %s: pattern must contain %s", ErrInvalidCatalogue, site.Name, AliasPlaceholder)
		}
		if strings.ContainsAny(strings.ReplaceAll(site.Pattern, AliasPlaceholder, ""), "{}") {
			return fmt.Errorf("%w: site %s: braces are not allowed in a selector", ErrInvalidCatalogue, site.Name)
		}
	}
	return nil
}

// validateWord rejects text that would escape the CSS string or attribute
// name it is substituted into.
func validateWord(s string) error {
	if s == "" {
		return errors.New("empty")
	}
	if strings.ContainsAny(s, "\"\\{}") {
		return errors.New("contains a quote, backslash or brace")
	}
	if strings.ContainsAny(s, " \t\r\n\f") {
		return errors.New("contains whitespace")
	}
	return nil
}
