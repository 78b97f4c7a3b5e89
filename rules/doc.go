// Package rules defines the pluggable editing rules consulted by the
// editor for every property and value, the per-operation State, and
// the tagged Outcome results that drive rule dispatch.
//
// Four built-in rules cover template interpolation ({{expr}} in names
// and string values), conditional branch selection (?-prefixed keys),
// multi-value fan-out (*var=v1,v2 keys) and reference expansion
// against a RefMap. Their registration order — template, conditional,
// multi-value, reference — is semantically significant: the first rule
// recognizing an input wins, and during finalization the first rule
// answering for the deferred list ends the scan.
package rules
