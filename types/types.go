// Package types contains the shared result types for domaincheck.
// It imports nothing from other domaincheck packages to avoid circular imports.
package types

// DomainCheckResult is the outcome of one reputation lookup.
type DomainCheckResult struct {
	// Domain is the domain as echoed by the service, which may differ in
	// case or formatting from the requested one.
	Domain string `json:"domain"`
	// Score is the reputation score. Its range is defined by the service.
	Score int  `json:"score"`
	Meta  Meta `json:"meta"`
}

// Meta holds the individual signals behind the score.
type Meta struct {
	BlockList bool `json:"block_list"`
	// DomainAge is passed through as reported; the unit is the service's.
	DomainAge           int  `json:"domain_age"`
	WebsiteResolves     bool `json:"website_resolves"`
	AcceptsAllAddresses bool `json:"accepts_all_addresses"`
	ValidEmailSecurity  bool `json:"valid_email_security"`
}
