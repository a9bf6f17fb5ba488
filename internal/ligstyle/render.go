package ligstyle

import (
	"fmt"
	"io"
	"strings"
)

// DefaultMetadata reproduces the header of the published userstyle.
func DefaultMetadata() Metadata {
	return Metadata{
		Name:        "Enable Iosevka language-specific ligation sets",
		Version:     "1.6.0",
		Description: "Enable Iosevka language-specific ligation sets for code elements.",
		Namespace:   "Coelacanthus",
		HomepageURL: "https://github.com/CoelacanthusHex/userstyles",
		SupportURL:  "https://github.com/CoelacanthusHex/userstyles/issues",
		Author:      "Coelacanthus",
		License:     "MPL-2.0",
		Copyright:   "Coelacanthus",
	}
}

// Validate checks the fields required by userstyle managers.
func (m Metadata) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidMetadata)
	}
	if strings.TrimSpace(m.Version) == "" {
		return fmt.Errorf("%w: version is required", ErrInvalidMetadata)
	}
	for _, v := range []string{m.Name, m.Version, m.Description, m.Namespace,
		m.HomepageURL, m.SupportURL, m.Author, m.License, m.Copyright} {
		if strings.ContainsAny(v, "\r\n") || strings.Contains(v, "*/") {
			return fmt.Errorf("%w: %q must be a single line without \"*/\"", ErrInvalidMetadata, v)
		}
	}
	return nil
}

// Header renders the ==UserStyle== comment block.
func (m Metadata) Header() string {
	var b strings.Builder
	b.WriteString("/* ==UserStyle==\n")
	field := func(key, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&b, "%-15s %s\n", key, value)
	}
	field("@name", m.Name)
	field("@version", m.Version)
	field("@description", m.Description)
	field("@namespace", m.Namespace)
	field("@homepageURL", m.HomepageURL)
	field("@supportURL", m.SupportURL)
	field("@author", m.Author)
	field("@license", m.License)
	if m.Copyright != "" {
		b.WriteString("SPDX-FileCopyrightText: " + m.Copyright + "\n")
	}
	if m.License != "" {
		b.WriteString("SPDX-License-Identifier: " + m.License + "\n")
	}
	b.WriteString("==/UserStyle== */\n")
	return b.String()
}

const documentPreamble = `
@-moz-document regexp(".*") {
    /* https://github.com/be5invis/Iosevka/blob/main/doc/language-specific-ligation-sets.md */
`

// RenderString returns the complete userstyle.
func RenderString(cat Catalogue, meta Metadata) string {
	var b strings.Builder
	b.WriteString(meta.Header())
	b.WriteString(documentPreamble)
	for _, r := range Rules(cat) {
		r.writeTo(&b)
	}
	b.WriteString("}")
	return b.String()
}

// Render writes the complete userstyle to w and returns the byte count.
func Render(w io.Writer, cat Catalogue, meta Metadata) (int64, error) {
	n, err := io.WriteString(w, RenderString(cat, meta))
	if err != nil {
		return int64(n), fmt.Errorf("write userstyle: %w", err)
	}
	return int64(n), nil
}
