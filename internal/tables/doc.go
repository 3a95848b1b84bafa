// Package tables loads descriptor table files and caches the merged result.
//
// Ownership boundary:
// - table file parsing (rows keyed by zero-padded code)
// - master/local path recomposition against a message context
// - the dictionary store and its composed cache keys
//
// A dictionary is built once per composed key from the master file, with rows
// from the optional local file replacing master rows code by code. Published
// dictionaries are never refreshed for the lifetime of the cache.
package tables
