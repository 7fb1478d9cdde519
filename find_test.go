/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package propinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindKnownAttribute(t *testing.T) {
	info := Find(HTML, "class")

	assert.Equal(t, "className", info.Property)
	assert.Equal(t, "class", info.Attribute)
	assert.Equal(t, SpaceHTML, info.Space)
	assert.True(t, info.SpaceSeparated)
	assert.True(t, info.Defined)
}

func TestFindCaseInsensitiveForKnownNames(t *testing.T) {
	// Attribute form, property form and arbitrary casings of either all
	// resolve to the same canonical record.
	canonical := Find(HTML, "for")
	require.True(t, canonical.Defined)

	for _, name := range []string{"for", "FoR", "FOR", "htmlFor", "hTMLfOR", "HTMLFOR"} {
		info := Find(HTML, name)
		assert.Equal(t, canonical.Attribute, info.Attribute, "name %q", name)
		assert.Equal(t, "htmlFor", info.Property, "name %q", name)
		assert.True(t, info.SpaceSeparated, "name %q", name)
	}
}

func TestFindRoundTripsEveryDefinition(t *testing.T) {
	// Looking a definition up by attribute or by property yields the same
	// canonical record.
	for _, registry := range []*Schema{HTML, SVG} {
		for _, def := range registry.Properties() {
			byAttr := Find(registry, def.Attribute)
			byProp := Find(registry, def.Property)
			require.Equal(t, def.Property, byAttr.Property,
				"%s: attribute %q", registry.Space(), def.Attribute)
			require.Equal(t, def.Property, byProp.Property,
				"%s: property %q", registry.Space(), def.Property)
			require.Equal(t, byAttr, byProp)
		}
	}
}

func TestFindUnknownNameEchoesVerbatim(t *testing.T) {
	for _, name := range []string{"foo", "Bar", "BAZ", "QuX", "class-name", ":class", "class-"} {
		info := Find(HTML, name)
		assert.Equal(t, Info{Attribute: name, Property: name}, info, "name %q", name)
	}
}

func TestFindHyphenatedNameDoesNotAliasProperty(t *testing.T) {
	// A literal "class-name" is distinct from className/class.
	info := Find(HTML, "class-name")

	assert.False(t, info.Defined)
	assert.Equal(t, "class-name", info.Property)
	assert.NotEqual(t, Find(HTML, "className"), info)
}

func TestFindNamespacedAttributes(t *testing.T) {
	xmlLang := Find(HTML, "xml:lang")
	require.True(t, xmlLang.Defined)
	assert.Equal(t, SpaceXML, xmlLang.Space)
	assert.Equal(t, "xmlLang", xmlLang.Property)

	// Distinct from the plain HTML lang entry.
	lang := Find(HTML, "lang")
	assert.Equal(t, SpaceHTML, lang.Space)
	assert.NotEqual(t, lang.Property, xmlLang.Property)

	href := Find(SVG, "xlink:href")
	require.True(t, href.Defined)
	assert.Equal(t, SpaceXLink, href.Space)
	assert.Equal(t, "xLinkHref", href.Property)

	ns := Find(SVG, "xmlns:xlink")
	require.True(t, ns.Defined)
	assert.Equal(t, SpaceXMLNS, ns.Space)
}

func TestFindAriaAttributes(t *testing.T) {
	tests := []struct {
		name     string
		property string
	}{
		{name: "aria-valuenow", property: "ariaValueNow"},
		{name: "AriA-VaLueNow", property: "ariaValueNow"},
		{name: "ariaValueNow", property: "ariaValueNow"},
		{name: "aria-hidden", property: "ariaHidden"},
		{name: "role", property: "role"},
	}

	for _, tt := range tests {
		info := Find(HTML, tt.name)
		require.True(t, info.Defined, "name %q", tt.name)
		assert.Equal(t, tt.property, info.Property, "name %q", tt.name)
		assert.Equal(t, SpaceARIA, info.Space, "name %q", tt.name)
	}

	assert.True(t, Find(HTML, "aria-valuenow").Number)
	assert.True(t, Find(SVG, "aria-hidden").Booleanish)
}

func TestFindUnknownAriaNameFallsThrough(t *testing.T) {
	info := Find(HTML, "aria-bogus")

	assert.False(t, info.Defined)
	assert.Equal(t, "aria-bogus", info.Attribute)
	assert.Equal(t, "aria-bogus", info.Property)
}

func TestFindDataAttributes(t *testing.T) {
	tests := []struct {
		input     string
		attribute string
		property  string
	}{
		{input: "data-bravo-charlie", attribute: "data-bravo-charlie", property: "dataBravoCharlie"},
		{input: "dataBravoCharlie", attribute: "data-bravo-charlie", property: "dataBravoCharlie"},
		{input: "data-november-1-2", attribute: "data-november-1-2", property: "dataNovember-1-2"},
		{input: "dataNovember-1-2", attribute: "data-november-1-2", property: "dataNovember-1-2"},
		{input: "data-4:5", attribute: "data-4:5", property: "data4:5"},
		{input: "data4:5", attribute: "data-4:5", property: "data4:5"},
		{input: "data-6-7", attribute: "data-6-7", property: "data6-7"},
		{input: "data6-7", attribute: "data-6-7", property: "data6-7"},
		{input: "data-foo.bar_baz", attribute: "data-foo.bar_baz", property: "dataFoo.bar_baz"},
	}

	for _, tt := range tests {
		info := Find(HTML, tt.input)
		require.True(t, info.Defined, "input %q", tt.input)
		assert.Equal(t, tt.attribute, info.Attribute, "input %q", tt.input)
		assert.Equal(t, tt.property, info.Property, "input %q", tt.input)
		assert.Equal(t, Space(""), info.Space, "input %q", tt.input)
	}
}

func TestFindDataRoundTripAgrees(t *testing.T) {
	// Both directions of the bridge agree with each other.
	for _, attr := range []string{"data-bravo-charlie", "data-november-1-2", "data-4:5", "data-6-7"} {
		fromAttr := Find(HTML, attr)
		fromProp := Find(HTML, fromAttr.Property)
		assert.Equal(t, fromAttr, fromProp, "attribute %q", attr)
	}
}

func TestFindInvalidDataSuffixIsUnknown(t *testing.T) {
	for _, name := range []string{"data-foo%bar", "data-sparkles✨", "data-a b"} {
		info := Find(HTML, name)
		assert.Equal(t, Info{Attribute: name, Property: name}, info, "name %q", name)
	}

	// A bare "data" is the HTML data attribute of <object>, not a dataset name.
	info := Find(HTML, "data")
	assert.True(t, info.Defined)
	assert.Equal(t, SpaceHTML, info.Space)
}

func TestFindRegistriesDiffer(t *testing.T) {
	assert.Equal(t, "viewBox", Find(SVG, "viewbox").Attribute)
	assert.False(t, Find(HTML, "viewbox").Defined)

	// SVG attribute names keep their canonical casing.
	assert.Equal(t, "preserveAspectRatio", Find(SVG, "PRESERVEASPECTRATIO").Attribute)
}

func TestFindMustUseProperty(t *testing.T) {
	for _, name := range []string{"checked", "multiple", "muted", "selected"} {
		info := Find(HTML, name)
		require.True(t, info.Defined, "name %q", name)
		assert.True(t, info.MustUseProperty, "name %q", name)
		assert.True(t, info.Boolean, "name %q", name)
	}
}
