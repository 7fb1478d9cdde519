/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package propinfo

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	perrors "github.com/suparena/propinfo/errors"
)

//go:embed schemadata/*.yaml
var schemaFS embed.FS

// schemaTable is the wire form of one per-space table document.
type schemaTable struct {
	Space      string                  `yaml:"space"`
	Properties map[string]*schemaEntry `yaml:"properties"`
}

// schemaEntry carries the optional fields of one definition. A bare
// property key with no body is a plain string-valued attribute.
type schemaEntry struct {
	Attribute             string `yaml:"attribute"`
	Space                 string `yaml:"space"`
	Boolean               bool   `yaml:"boolean"`
	Booleanish            bool   `yaml:"booleanish"`
	OverloadedBoolean     bool   `yaml:"overloadedBoolean"`
	Number                bool   `yaml:"number"`
	CommaSeparated        bool   `yaml:"commaSeparated"`
	SpaceSeparated        bool   `yaml:"spaceSeparated"`
	CommaOrSpaceSeparated bool   `yaml:"commaOrSpaceSeparated"`
	MustUseProperty       bool   `yaml:"mustUseProperty"`
}

// ParseTable decodes and validates one YAML table document and builds its
// Schema. Tables are trusted static data, so validation failures are data
// bugs: the shipped tables are loaded at package initialization, where a
// validation failure panics, and can never fail with released data. ParseTable is exported so hosts can
// load custom attribute tables of their own and merge them over the
// shipped registries.
func ParseTable(raw []byte) (*Schema, error) {
	var t schemaTable
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, perrors.NewMalformedTableError(err)
	}

	space, err := ParseSpace(t.Space)
	if err != nil {
		return nil, err
	}

	// Deterministic iteration keeps validation errors stable.
	props := make([]string, 0, len(t.Properties))
	for prop := range t.Properties {
		props = append(props, prop)
	}
	sort.Strings(props)

	attrOwner := make(map[string]string, len(props))
	keyOwner := make(map[string]string, 2*len(props))
	defs := make([]Info, 0, len(props))

	for _, prop := range props {
		entry := t.Properties[prop]
		if entry == nil {
			entry = &schemaEntry{}
		}

		attr := entry.Attribute
		if attr == "" {
			attr = defaultAttribute(space, prop)
		}
		if attr == "" {
			return nil, perrors.NewMissingAttributeError(string(space), prop)
		}

		if first, dup := attrOwner[attr]; dup {
			return nil, perrors.NewDuplicateAttributeError(string(space), attr, first, prop)
		}
		attrOwner[attr] = prop

		for _, key := range []string{Normalize(attr), Normalize(prop)} {
			if first, claimed := keyOwner[key]; claimed && first != prop {
				return nil, perrors.NewDuplicatePropertyError(string(space), key, first, prop)
			}
			keyOwner[key] = prop
		}

		var entrySpace Space
		if entry.Space != "" {
			entrySpace, err = ParseSpace(entry.Space)
			if err != nil {
				return nil, err
			}
		}

		defs = append(defs, Info{
			Space:                 entrySpace,
			Attribute:             attr,
			Property:              prop,
			Boolean:               entry.Boolean,
			Booleanish:            entry.Booleanish,
			OverloadedBoolean:     entry.OverloadedBoolean,
			Number:                entry.Number,
			CommaSeparated:        entry.CommaSeparated,
			SpaceSeparated:        entry.SpaceSeparated,
			CommaOrSpaceSeparated: entry.CommaOrSpaceSeparated,
			MustUseProperty:       entry.MustUseProperty,
		})
	}

	return NewSchema(space, defs), nil
}

// defaultAttribute derives the serialized attribute name from a property
// name for the spaces with a regular transform. HTML and ARIA attributes
// lowercase (ARIA keeping its dash after the prefix), SVG attribute names
// are case-sensitive and pass through. The namespaced xml/xlink/xmlns
// tables declare every attribute explicitly.
func defaultAttribute(space Space, property string) string {
	switch space {
	case SpaceHTML:
		return strings.ToLower(property)
	case SpaceARIA:
		if property == "role" {
			return property
		}
		return "aria-" + strings.ToLower(strings.TrimPrefix(property, "aria"))
	case SpaceSVG:
		return property
	}
	return ""
}

func mustTable(name string) *Schema {
	raw, err := schemaFS.ReadFile("schemadata/" + name)
	if err != nil {
		panic(fmt.Sprintf("propinfo: missing embedded table %s: %v", name, err))
	}
	s, err := ParseTable(raw)
	if err != nil {
		panic(fmt.Sprintf("propinfo: table %s: %v", name, err))
	}
	return s
}

// Per-space registries and the merged lookup surfaces. All are built once
// during package initialization from the embedded tables and are read-only
// afterwards, so they are safe for concurrent use without locking.
var (
	// Aria holds the ARIA states and properties plus role.
	Aria = mustTable("aria.yaml")

	// XLink holds the xlink:* attributes used on SVG elements.
	XLink = mustTable("xlink.yaml")

	// XML holds the xml:* attributes (xml:lang, xml:base, xml:space).
	XML = mustTable("xml.yaml")

	// XMLNS holds the namespace declaration attributes.
	XMLNS = mustTable("xmlns.yaml")

	htmlBase = mustTable("html.yaml")
	svgBase  = mustTable("svg.yaml")

	// HTML is the merged registry for HTML content: the base HTML table
	// with the aria, xlink, xmlns and xml tables layered on top.
	HTML = Merge(SpaceHTML, htmlBase, Aria, XLink, XMLNS, XML)

	// SVG is the merged registry for SVG content: the base SVG table with
	// the same namespaced tables layered on top.
	SVG = Merge(SpaceSVG, svgBase, Aria, XLink, XMLNS, XML)
)
