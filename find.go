/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package propinfo

import "strings"

// Find resolves a raw attribute or property name against a registry.
//
// Known names resolve case-insensitively to their canonical definition.
// aria-* names resolve through the registry like any other known name.
// data-* names (and their dataCamelCase property form) synthesize a
// defined record bridging both forms. Anything else echoes back verbatim
// as both attribute and property with Defined false.
func Find(s *Schema, name string) Info {
	normal := Normalize(name)

	if isAriaName(name) {
		if info, ok := s.Normal(normal); ok {
			return info
		}
	}

	// Registry entries win over data-* synthesis: SVG's dataType property
	// is a table entry, not a dataset name.
	if info, ok := s.Normal(normal); ok {
		return info
	}

	if len(normal) > 4 && strings.HasPrefix(normal, "data") && validDataName(name) {
		if name[4] == '-' {
			return Info{
				Attribute: name,
				Property:  datasetToProperty(name),
				Defined:   true,
			}
		}
		return Info{
			Attribute: datasetToAttribute(name),
			Property:  name,
			Defined:   true,
		}
	}

	return Info{Attribute: name, Property: name}
}

// isAriaName reports whether name looks like an ARIA attribute
// ("aria-label") or an ARIA property ("ariaLabel"). The prefix match is
// case-insensitive; the suffix must start with '-' plus a word character
// or with an uppercase letter.
func isAriaName(name string) bool {
	if len(name) < 5 || !strings.EqualFold(name[:4], "aria") {
		return false
	}
	if name[4] == '-' {
		if len(name) < 6 {
			return false
		}
		for i := 5; i < len(name); i++ {
			if !isWordByte(name[i]) {
				return false
			}
		}
		return true
	}
	return name[4] >= 'A' && name[4] <= 'Z'
}

// validDataName reports whether everything after the "data" prefix
// consists of valid XML-name characters.
func validDataName(name string) bool {
	for i := 4; i < len(name); i++ {
		c := name[i]
		if !isWordByte(c) && c != '-' && c != '.' && c != ':' {
			return false
		}
	}
	return true
}

func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}

// datasetToProperty converts a data-* attribute into its property form:
// data-bravo-charlie becomes dataBravoCharlie. A '-' is only folded into a
// capital when a lowercase letter follows it; anything else is kept
// literally, so data-4:5 becomes data4:5 and data-6-7 becomes data6-7.
func datasetToProperty(attribute string) string {
	value := camelcase(attribute[5:])
	if value == "" {
		return "data"
	}
	return "data" + strings.ToUpper(value[:1]) + value[1:]
}

// datasetToAttribute converts a data property into its attribute form:
// dataNovember-1-2 becomes data-november-1-2. Properties that already
// contain an attribute-style dash-letter pair are returned unchanged.
func datasetToAttribute(property string) string {
	value := property[4:]
	if hasDashLetter(value) {
		return property
	}
	value = kebab(value)
	if value[0] != '-' {
		value = "-" + value
	}
	return "data" + value
}

func camelcase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '-' && i+1 < len(s) && s[i+1] >= 'a' && s[i+1] <= 'z' {
			b.WriteByte(s[i+1] - 'a' + 'A')
			i++
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func kebab(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 1)
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			b.WriteByte('-')
			b.WriteByte(s[i] - 'A' + 'a')
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func hasDashLetter(s string) bool {
	for i := 0; i+1 < len(s); i++ {
		if s[i] == '-' && s[i+1] >= 'a' && s[i+1] <= 'z' {
			return true
		}
	}
	return false
}
