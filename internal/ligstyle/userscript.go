package ligstyle

import (
	_ "embed"
	"fmt"
	"io"
	"strings"
)

// Shiki on typescriptlang.org shows the language only as text inside the
// code block; the script copies it into data-language for the userstyle.
//
//go:embed assets/aux_userscript.js
var userscriptBody string

// DefaultUserscriptMeta describes the companion script of the default userstyle.
func DefaultUserscriptMeta() UserscriptMeta {
	return UserscriptMeta{
		Name:        "Enable Iosevka language-specific ligation sets auxiliary userscript",
		Namespace:   "Coelacanthus",
		Matches:     []string{"https://www.typescriptlang.org/*"},
		Version:     "1.0",
		Author:      "Coelacanthus",
		Description: "Auxiliary script for Enable Iosevka language-specific ligation sets Userstyle.",
		Copyright:   "Coelacanthus",
		License:     "MPL-2.0",
	}
}

// Header renders the ==UserScript== metadata block.
func (m UserscriptMeta) Header() string {
	var b strings.Builder
	line := func(key, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&b, "// %-24s %s\n", key, value)
	}
	b.WriteString("// ==UserScript==\n")
	line("@name", m.Name)
	line("@namespace", m.Namespace)
	for _, match := range m.Matches {
		line("@match", match)
	}
	line("@version", m.Version)
	line("@author", m.Author)
	line("@description", m.Description)
	line("SPDX-FileCopyrightText:", m.Copyright)
	line("SPDX-License-Identifier:", m.License)
	line("@grant", "none")
	b.WriteString("// ==/UserScript==\n")
	return b.String()
}

// RenderUserscript writes the auxiliary userscript to w.
func RenderUserscript(w io.Writer, meta UserscriptMeta) (int64, error) {
	if meta.Name == "" || len(meta.Matches) == 0 {
		return 0, fmt.Errorf("%w: userscript needs a name and at least one @match", ErrInvalidMetadata)
	}
	n, err := io.WriteString(w, meta.Header()+"\n"+userscriptBody)
	if err != nil {
		return int64(n), fmt.Errorf("write userscript: %w", err)
	}
	return int64(n), nil
}
