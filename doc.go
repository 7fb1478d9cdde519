/*
Package propinfo provides authoritative metadata about markup attributes and
properties across the HTML, SVG, ARIA, XLink, XML and XMLNS spaces: how an
attribute name maps to its in-memory property name, how its value is shaped
(boolean, numeric, comma- or space-separated lists), and a case-insensitive,
alias-aware lookup over the whole surface.

The package is consumed by libraries that build or diff markup trees and
need to decide, given an arbitrary user-supplied key, whether it denotes a
known attribute and how to encode its value.

Key Features:
  - Merged registries for HTML and SVG content layering the aria, xlink,
    xmlns and xml tables over the base tables
  - Case-insensitive resolution of known names in either attribute or
    property form ("for", "FoR" and "htmlFor" all reach the same record)
  - data-* attributes bridged to their dataCamelCase property form and back
  - Unknown names echoed back verbatim as well-formed, undefined records
  - Registries built once at initialization and read-only afterwards, safe
    for concurrent use without locking

Basic Usage:

	info := propinfo.Find(propinfo.HTML, "class")
	// info.Property == "className", info.SpaceSeparated == true

	info = propinfo.Find(propinfo.SVG, "viewbox")
	// info.Attribute == "viewBox"

	info = propinfo.Find(propinfo.HTML, "data-bravo-charlie")
	// info.Property == "dataBravoCharlie", info.Defined == true

Custom tables can be loaded with ParseTable and layered over the shipped
registries with Merge.

For more information, see the documentation at https://github.com/suparena/propinfo
*/
package propinfo
