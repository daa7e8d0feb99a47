// Package schema declares and validates tool argument contracts.
//
// A Schema is an ordered list of field declarations. Each field names its
// key, its wire kind (string, number, integer, boolean), whether it is
// required, an optional default and an optional enum of allowed values.
//
// Basic usage:
//
//	s := schema.Schema{
//	    {Key: "search_term", Kind: schema.String, Required: true},
//	    {Key: "search_field", Kind: schema.String, Default: "all",
//	        Allowed: []string{"all", "name", "email"}},
//	    {Key: "days", Kind: schema.Integer, Default: 7},
//	}
//
//	args, err := schema.Validate(s, map[string]any{"search_term": "corp"})
//	if err != nil {
//	    // first contract violation, in declaration order
//	}
//
// Validate checks presence and enum membership only; it never converts
// values. Decoding values into concrete types is the caller's concern,
// which keeps the validator pure and side-effect free.
//
// This package is designed to be library-agnostic, with zero external
// dependencies beyond the Go standard library.
package schema
