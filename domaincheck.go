// Package domaincheck is a client for the TempMailDetector domain
// reputation API. It reports a score and the signals behind it (block list
// membership, domain age, catch-all mail servers, email security records)
// for a single domain per request.
//
// Basic usage:
//
//	res, err := domaincheck.New(apiKey).CheckDomain(ctx, "example.com")
//
// Branching on the failure kind:
//
//	switch {
//	case errors.Is(err, domaincheck.ErrStatus):
//	    // non-200, the body is in the *domaincheck.Error
//	case errors.Is(err, domaincheck.ErrDecode):
//	    // 200 but a field was missing or malformed
//	}
package domaincheck

import "github.com/optimode/domaincheck/types"

// Result is a re-export from the types package so that consumers
// don't need to import the types package directly.
type Result = types.DomainCheckResult

// Meta is a re-export.
type Meta = types.Meta
