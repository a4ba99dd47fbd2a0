// Package parse extracts the domain of an email address for the reputation
// lookup.
package parse

import (
	"errors"
	"net/mail"
	"strings"

	"golang.org/x/net/idna"
)

var (
	// ErrMissingAt is returned when the input has no usable "@" separator.
	ErrMissingAt = errors.New("address has no local part or domain")

	// ErrBadDomain is returned when the domain fails IDNA2008 conversion.
	ErrBadDomain = errors.New("domain is not a valid IDNA2008 name")
)

// Address is a parsed email address.
type Address struct {
	Raw    string // trimmed input
	Domain string // lowercased ASCII/Punycode form, what gets sent to the API
}

// Email parses raw into an Address.
// Internationalized local parts (RFC 6531) and domains (IDNA2008) are accepted.
func Email(raw string) (Address, error) {
	raw = strings.TrimSpace(raw)

	addr, err := mail.ParseAddress(raw)
	if err != nil {
		addr, err = mail.ParseAddress("<" + raw + ">")
	}
	if err != nil {
		// net/mail rejects UTF-8 local parts
		return split(raw, raw)
	}
	return split(raw, addr.Address)
}

func split(raw, address string) (Address, error) {
	at := strings.LastIndex(address, "@")
	if at < 1 || at >= len(address)-1 {
		return Address{Raw: raw}, ErrMissingAt
	}

	domain, err := toASCII(address[at+1:])
	if err != nil {
		return Address{Raw: raw}, err
	}
	return Address{Raw: raw, Domain: domain}, nil
}

// toASCII lowercases domain and converts Unicode labels to Punycode.
// ASCII input, including existing Punycode, is only lowercased.
func toASCII(domain string) (string, error) {
	domain = strings.ToLower(domain)
	for i := 0; i < len(domain); i++ {
		if domain[i] > 127 {
			a, err := idna.Lookup.ToASCII(domain)
			if err != nil {
				return "", ErrBadDomain
			}
			return a, nil
		}
	}
	return domain, nil
}
