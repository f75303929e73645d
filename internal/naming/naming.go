// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dartling Authors

// Package naming maps schema keys and titles to Dart identifiers and output
// file-name stems. The suffix rules and discriminator conventions are held in
// a Convention value instead of package-level literals so alternative naming
// policies stay testable.
package naming

import "strings"

// Convention holds the naming rules applied throughout a generation run.
type Convention struct {
	// ClassSuffix is rewritten to ClassSuffixReplacement at the end of a
	// formatted class name.
	ClassSuffix            string
	ClassSuffixReplacement string

	// StemSuffixes are (old, new) rewrites tried in order against the
	// snake_cased file stem; the first match wins.
	StemSuffixes [][2]string

	// DiscriminatorMarkerLen is the length of the leading marker stripped
	// from a conditional discriminator key (the "is" prefix).
	DiscriminatorMarkerLen int

	// ElsePrefix names the else arm of a conditional schema.
	ElsePrefix string

	// FallbackBaseName is used when a conditional document has no title;
	// FallbackRootName when a single-schema document has none.
	FallbackBaseName string
	FallbackRootName string
}

// Default returns the stock convention.
func Default() *Convention {
	return &Convention{
		ClassSuffix:            "Params",
		ClassSuffixReplacement: "AdapterParams",
		StemSuffixes: [][2]string{
			{"_adapter_params", "_adapter"},
			{"_params", "_adapter"},
		},
		DiscriminatorMarkerLen: 2,
		ElsePrefix:             "Default",
		FallbackBaseName:       "BaseClass",
		FallbackRootName:       "Root",
	}
}

// FormatClassName turns a raw schema key or title into an upper-camel class
// name and applies the class-suffix rewrite. The rewrite is applied
// unconditionally, so re-formatting an already rewritten name grows another
// suffix; callers format each raw name exactly once.
func (c *Convention) FormatClassName(raw string) string {
	name := ToPascalCase(raw)
	if c.ClassSuffix != "" && strings.HasSuffix(name, c.ClassSuffix) {
		name = strings.TrimSuffix(name, c.ClassSuffix) + c.ClassSuffixReplacement
	}
	return name
}

// NeedsSuffixRename reports whether a model named outside FormatClassName
// still carries the raw class suffix. Names already rewritten are excluded,
// keeping the generator's pre-pass a single application.
func (c *Convention) NeedsSuffixRename(name string) bool {
	return c.ClassSuffix != "" &&
		strings.HasSuffix(name, c.ClassSuffix) &&
		!strings.HasSuffix(name, c.ClassSuffixReplacement)
}

// FileNameStem derives the output file stem for a class name: lower snake
// case plus the stem-suffix rewrites. It must stay consistent with
// FormatClassName because reference imports are derived from the referenced
// model's class name.
func (c *Convention) FileNameStem(className string) string {
	stem := ToSnakeCase(className)
	for _, rule := range c.StemSuffixes {
		if strings.HasSuffix(stem, rule[0]) {
			return strings.TrimSuffix(stem, rule[0]) + rule[1]
		}
	}
	return stem
}

// VariantPrefix derives the then-arm class prefix from a discriminator key
// by stripping the leading marker and upper-camel-casing the rest.
func (c *Convention) VariantPrefix(key string) string {
	if len(key) <= c.DiscriminatorMarkerLen {
		return ToPascalCase(key)
	}
	return ToPascalCase(key[c.DiscriminatorMarkerLen:])
}

// ToPascalCase converts a raw name to PascalCase. Words are split on
// underscores, hyphens, and spaces; existing interior capitals are kept.
func ToPascalCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})

	var sb strings.Builder
	for _, part := range parts {
		sb.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}
	return sb.String()
}

// ToCamelCase converts a raw name to lowerCamelCase.
func ToCamelCase(s string) string {
	p := ToPascalCase(s)
	if p == "" {
		return p
	}
	return strings.ToLower(p[:1]) + p[1:]
}

// ToSnakeCase converts a class name to snake_case, inserting underscores
// before interior capitals and lowering everything.
func ToSnakeCase(s string) string {
	var sb strings.Builder
	prevLower := false
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			if prevLower {
				sb.WriteByte('_')
			}
			sb.WriteRune(r - 'A' + 'a')
			prevLower = false
		case r == '-' || r == ' ':
			sb.WriteByte('_')
			prevLower = false
		default:
			sb.WriteRune(r)
			prevLower = r != '_'
		}
	}
	return sb.String()
}
