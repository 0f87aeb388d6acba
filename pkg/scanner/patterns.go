package scanner

import "regexp"

// Text patterns used by the extractors. None of them parse: they match the
// conventional shapes of shadcn-style component packages and stylesheets.

// ExportGroupPattern matches a brace-delimited export statement and captures
// the list between the braces. The list may span lines.
//
//	export { Button, buttonVariants, type ButtonProps } from "./Button";
//	export type { DialogProps } from "./Dialog";
//
// Braces nested inside the list (never legal in an export clause) and
// "export {" text inside comments or strings are not distinguished.
var ExportGroupPattern = regexp.MustCompile(`\bexport\s+(?:type\s+)?\{([^{}]*)\}`)

// TypeQualifierPattern matches the inline type-only qualifier of one item.
var TypeQualifierPattern = regexp.MustCompile(`^type\s+`)

// AliasPattern matches "local as exported" and captures the exported name.
var AliasPattern = regexp.MustCompile(`^\S+\s+as\s+(\S+)$`)

// CustomPropertyPattern matches one "--name: value;" declaration and
// captures the name without its prefix and the raw value up to the
// terminator. Several declarations may share a line.
//
// Known misses: a value continued across lines never matches, and a ";"
// inside a quoted value or url() ends the value early. Declarations inside
// comments are matched like any other. A var(--x) reference is never taken
// for a declaration since it is not followed by ":".
var CustomPropertyPattern = regexp.MustCompile(`--([A-Za-z0-9_-]+)\s*:\s*([^;]*);`)

// VariantPattern detects a variant-authoring construct in an implementation
// file: a cva( call or any identifier containing "Variants".
var VariantPattern = regexp.MustCompile(`\bcva\(|Variants`)
