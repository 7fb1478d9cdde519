/*
Package errors provides semantic error types for propinfo's schema table loader.

The package defines the construction-time failure scenarios with specific types
that can be checked using the standard errors.Is() function or the provided
helper functions. Lookup itself never fails: unknown names resolve to a
well-formed fallback record, so these errors only surface while decoding and
validating schema tables.

Common Errors:

	var (
	    ErrUnknownSpace       = errors.New("unknown attribute space")
	    ErrDuplicateAttribute = errors.New("duplicate attribute in table")
	    ErrDuplicateProperty  = errors.New("duplicate normalized key in table")
	    ErrMissingAttribute   = errors.New("missing attribute name")
	    ErrMalformedTable     = errors.New("malformed schema table")
	)

Usage:

	schema, err := propinfo.ParseTable(raw)
	if err != nil {
	    if errors.IsDuplicateAttribute(err) {
	        // Two properties serialize to the same attribute name
	    }
	    return err
	}

	// Create typed errors
	err := errors.NewUnknownSpaceError("mathml")
	err := errors.NewDuplicateAttributeError("html", "class", "className", "classList")

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
Shipped tables never trigger them; they exist to fail fast on malformed
custom tables during development.
*/
package errors
