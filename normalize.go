/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package propinfo

import "strings"

// Normalize maps an arbitrary attribute- or property-cased name to the
// canonical lowercase key used by the registry indices. Delimiters such as
// '-' and ':' are preserved, which keeps a literal "class-name" distinct
// from the "classname" key that indexes className. Normalize is total and
// idempotent.
func Normalize(name string) string {
	return strings.ToLower(name)
}
