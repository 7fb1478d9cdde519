/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package propinfo

import (
	"github.com/suparena/propinfo/errors"
)

// Space identifies the attribute space a definition belongs to.
type Space string

// Known attribute spaces.
const (
	SpaceHTML  Space = "html"
	SpaceSVG   Space = "svg"
	SpaceARIA  Space = "aria"
	SpaceXLink Space = "xlink"
	SpaceXML   Space = "xml"
	SpaceXMLNS Space = "xmlns"
)

// ParseSpace converts a raw string into a known Space.
func ParseSpace(s string) (Space, error) {
	switch Space(s) {
	case SpaceHTML, SpaceSVG, SpaceARIA, SpaceXLink, SpaceXML, SpaceXMLNS:
		return Space(s), nil
	}
	return "", errors.NewUnknownSpaceError(s)
}

// Info is the canonical record for one attribute/property pair. It is a
// plain value: all fields serialize losslessly to and from JSON or YAML,
// and copies are safe to hand out.
type Info struct {
	// Space is the attribute space the definition belongs to. Empty for
	// synthesized records (unknown names and data-* attributes).
	Space Space `json:"space,omitempty" yaml:"space,omitempty"`

	// Attribute is the serialized name as it appears in markup
	// (may contain ':' or '-').
	Attribute string `json:"attribute" yaml:"attribute"`

	// Property is the in-memory identifier (camelCase or pass-through).
	Property string `json:"property" yaml:"property"`

	// Boolean marks presence-only values.
	Boolean bool `json:"boolean,omitempty" yaml:"boolean,omitempty"`

	// Booleanish marks string values interpreted as boolean-like.
	Booleanish bool `json:"booleanish,omitempty" yaml:"booleanish,omitempty"`

	// OverloadedBoolean marks values where absence is false, bare presence
	// is true, and presence with a value is that value.
	OverloadedBoolean bool `json:"overloadedBoolean,omitempty" yaml:"overloadedBoolean,omitempty"`

	// Number marks values parsed and serialized as numbers.
	Number bool `json:"number,omitempty" yaml:"number,omitempty"`

	// CommaSeparated, SpaceSeparated and CommaOrSpaceSeparated mark
	// list-valued attributes and their delimiter.
	CommaSeparated        bool `json:"commaSeparated,omitempty" yaml:"commaSeparated,omitempty"`
	SpaceSeparated        bool `json:"spaceSeparated,omitempty" yaml:"spaceSeparated,omitempty"`
	CommaOrSpaceSeparated bool `json:"commaOrSpaceSeparated,omitempty" yaml:"commaOrSpaceSeparated,omitempty"`

	// MustUseProperty marks definitions that must be set through the
	// property path rather than the attribute path. Advisory.
	MustUseProperty bool `json:"mustUseProperty,omitempty" yaml:"mustUseProperty,omitempty"`

	// Defined is true when the record came from a known table entry or a
	// recognized aria-*/data-* pattern, false for the literal-echo
	// fallback returned for unknown names.
	Defined bool `json:"defined" yaml:"defined"`
}
