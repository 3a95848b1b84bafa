// Package accessor owns the field accessor contract and the built-in kinds.
//
// Ownership boundary:
// - Accessor operation set and default (not implemented) behavior
// - kind lineage and the kind registry
// - reference kinds: element, when, bufr_elements_table
//
// A kind embeds its parent and overrides only the operations it needs.
// Anything not overridden anywhere in the chain resolves to Gen, which
// returns codes.ErrNotImplemented.
package accessor
