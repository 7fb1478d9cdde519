/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrUnknownSpace is returned when a table declares a space outside the
	// known attribute spaces
	ErrUnknownSpace = errors.New("unknown attribute space")

	// ErrDuplicateAttribute is returned when two definitions in one table
	// serialize to the same attribute name
	ErrDuplicateAttribute = errors.New("duplicate attribute in table")

	// ErrDuplicateProperty is returned when two definitions in one table
	// collide on the same normalized key
	ErrDuplicateProperty = errors.New("duplicate normalized key in table")

	// ErrMissingAttribute is returned when a definition in a namespaced
	// table omits its explicit attribute name
	ErrMissingAttribute = errors.New("missing attribute name")

	// ErrMalformedTable is returned when a table document cannot be decoded
	ErrMalformedTable = errors.New("malformed schema table")
)

// UnknownSpaceError represents a table space outside the known set
type UnknownSpaceError struct {
	Space string
}

func (e *UnknownSpaceError) Error() string {
	return fmt.Sprintf("unknown attribute space %q", e.Space)
}

func (e *UnknownSpaceError) Is(target error) bool {
	return target == ErrUnknownSpace
}

// DuplicateAttributeError represents two properties serializing to one attribute
type DuplicateAttributeError struct {
	Space     string
	Attribute string
	First     string
	Second    string
}

func (e *DuplicateAttributeError) Error() string {
	return fmt.Sprintf("%s table: attribute %q claimed by both %q and %q",
		e.Space, e.Attribute, e.First, e.Second)
}

func (e *DuplicateAttributeError) Is(target error) bool {
	return target == ErrDuplicateAttribute
}

// DuplicatePropertyError represents two properties colliding on a normalized key
type DuplicatePropertyError struct {
	Space  string
	Key    string
	First  string
	Second string
}

func (e *DuplicatePropertyError) Error() string {
	return fmt.Sprintf("%s table: normalized key %q claimed by both %q and %q",
		e.Space, e.Key, e.First, e.Second)
}

func (e *DuplicatePropertyError) Is(target error) bool {
	return target == ErrDuplicateProperty
}

// MissingAttributeError represents a definition without a derivable attribute
type MissingAttributeError struct {
	Space    string
	Property string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("%s table: property %q has no attribute and none can be derived",
		e.Space, e.Property)
}

func (e *MissingAttributeError) Is(target error) bool {
	return target == ErrMissingAttribute
}

// MalformedTableError wraps a decode failure for a table document
type MalformedTableError struct {
	Err error
}

func (e *MalformedTableError) Error() string {
	return fmt.Sprintf("malformed schema table: %v", e.Err)
}

func (e *MalformedTableError) Is(target error) bool {
	return target == ErrMalformedTable
}

func (e *MalformedTableError) Unwrap() error {
	return e.Err
}

// Helper functions for creating errors

// NewUnknownSpaceError creates a new UnknownSpaceError
func NewUnknownSpaceError(space string) error {
	return &UnknownSpaceError{Space: space}
}

// NewDuplicateAttributeError creates a new DuplicateAttributeError
func NewDuplicateAttributeError(space, attribute, first, second string) error {
	return &DuplicateAttributeError{Space: space, Attribute: attribute, First: first, Second: second}
}

// NewDuplicatePropertyError creates a new DuplicatePropertyError
func NewDuplicatePropertyError(space, key, first, second string) error {
	return &DuplicatePropertyError{Space: space, Key: key, First: first, Second: second}
}

// NewMissingAttributeError creates a new MissingAttributeError
func NewMissingAttributeError(space, property string) error {
	return &MissingAttributeError{Space: space, Property: property}
}

// NewMalformedTableError creates a new MalformedTableError
func NewMalformedTableError(err error) error {
	return &MalformedTableError{Err: err}
}

// IsUnknownSpace checks if an error is an unknown space error
func IsUnknownSpace(err error) bool {
	return errors.Is(err, ErrUnknownSpace)
}

// IsDuplicateAttribute checks if an error is a duplicate attribute error
func IsDuplicateAttribute(err error) bool {
	return errors.Is(err, ErrDuplicateAttribute)
}

// IsDuplicateProperty checks if an error is a duplicate normalized key error
func IsDuplicateProperty(err error) bool {
	return errors.Is(err, ErrDuplicateProperty)
}

// IsMissingAttribute checks if an error is a missing attribute error
func IsMissingAttribute(err error) bool {
	return errors.Is(err, ErrMissingAttribute)
}

// IsMalformedTable checks if an error is a malformed table error
func IsMalformedTable(err error) bool {
	return errors.Is(err, ErrMalformedTable)
}
