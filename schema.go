/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package propinfo

import "sort"

// Schema is an immutable registry of attribute/property definitions for one
// space. It exposes two indices: by property name and by normalized name,
// where every definition is reachable under both Normalize(attribute) and
// Normalize(property). A Schema is built once and never mutated afterwards,
// so concurrent readers need no locking.
type Schema struct {
	space    Space
	property map[string]*Info
	normal   map[string]*Info
}

// NewSchema builds a Schema from a list of definitions. Definitions that do
// not declare their own space are stamped with the table space, and every
// definition is marked Defined. Uniqueness of attribute and property names
// within one table is a precondition; the table loader validates it, and
// NewSchema itself lets the last write win.
func NewSchema(space Space, defs []Info) *Schema {
	s := &Schema{
		space:    space,
		property: make(map[string]*Info, len(defs)),
		normal:   make(map[string]*Info, 2*len(defs)),
	}
	for _, def := range defs {
		if def.Space == "" {
			def.Space = space
		}
		def.Defined = true
		s.insert(def)
	}
	return s
}

// Merge composes schemas into a single registry carrying the given space.
// Later schemas win when two tables define the same property or normalized
// key; this lets the namespaced xml/xlink/xmlns and aria tables layer on
// top of a base HTML or SVG table under one lookup surface.
func Merge(space Space, schemas ...*Schema) *Schema {
	size := 0
	for _, sc := range schemas {
		size += len(sc.property)
	}
	merged := &Schema{
		space:    space,
		property: make(map[string]*Info, size),
		normal:   make(map[string]*Info, 2*size),
	}
	for _, sc := range schemas {
		for k, v := range sc.property {
			merged.property[k] = v
		}
		for k, v := range sc.normal {
			merged.normal[k] = v
		}
	}
	return merged
}

func (s *Schema) insert(def Info) {
	info := &def
	s.property[info.Property] = info
	s.normal[Normalize(info.Attribute)] = info
	s.normal[Normalize(info.Property)] = info
}

// Space returns the space identifier carried by the whole registry.
// Individual definitions keep the space of the table they came from.
func (s *Schema) Space() Space {
	return s.space
}

// Property looks up a definition by its exact property name.
func (s *Schema) Property(name string) (Info, bool) {
	if info, ok := s.property[name]; ok {
		return *info, true
	}
	return Info{}, false
}

// Normal looks up a definition by normalized key.
func (s *Schema) Normal(key string) (Info, bool) {
	if info, ok := s.normal[key]; ok {
		return *info, true
	}
	return Info{}, false
}

// Len returns the number of definitions in the registry.
func (s *Schema) Len() int {
	return len(s.property)
}

// Properties returns a copy of every definition, sorted by property name.
func (s *Schema) Properties() []Info {
	defs := make([]Info, 0, len(s.property))
	for _, info := range s.property {
		defs = append(defs, *info)
	}
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].Property < defs[j].Property
	})
	return defs
}
