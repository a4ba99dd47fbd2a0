package wire

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/optimode/domaincheck/types"
)

// ErrInvalidJSON is returned when a response body does not parse as JSON.
var ErrInvalidJSON = errors.New("response body is not valid JSON")

// FieldError reports a required response key that is absent or has the
// wrong JSON type.
type FieldError struct {
	Path string // gjson path, e.g. "meta.block_list"
	Want string
	Got  string // "missing" when the key is absent
}

func (e *FieldError) Error() string {
	if e.Got == "missing" {
		return fmt.Sprintf("required field %q is missing", e.Path)
	}
	return fmt.Sprintf("field %q: want %s, got %s", e.Path, e.Want, e.Got)
}

type requirement struct {
	path string
	want string
	ok   func(gjson.Result) bool
}

func isString(r gjson.Result) bool { return r.Type == gjson.String }
func isBool(r gjson.Result) bool   { return r.Type == gjson.True || r.Type == gjson.False }
func isObject(r gjson.Result) bool { return r.IsObject() }

// isInteger accepts only plain integers that fit in an int.
func isInteger(r gjson.Result) bool {
	if r.Type != gjson.Number {
		return false
	}
	_, err := strconv.Atoi(r.Raw)
	return err == nil
}

// required lists every key of the response contract, parents before children.
var required = []requirement{
	{"domain", "string", isString},
	{"score", "integer", isInteger},
	{"meta", "object", isObject},
	{"meta.block_list", "boolean", isBool},
	{"meta.domain_age", "integer", isInteger},
	{"meta.website_resolves", "boolean", isBool},
	{"meta.accepts_all_addresses", "boolean", isBool},
	{"meta.valid_email_security", "boolean", isBool},
}

// DecodeResponse decodes a 200 response body. Every key of the contract must
// be present, with exact case, and have the expected type; the first
// violation is returned as a *FieldError and no partial result is produced.
// Each field is taken from the same value that was checked, so case variants
// ("Score") and later duplicates of a key never leak into the result.
// Unknown keys are ignored.
func DecodeResponse(body []byte) (types.DomainCheckResult, error) {
	if !gjson.ValidBytes(body) {
		return types.DomainCheckResult{}, ErrInvalidJSON
	}

	vals := make(map[string]gjson.Result, len(required))
	for _, req := range required {
		v := gjson.GetBytes(body, req.path)
		if !req.ok(v) {
			return types.DomainCheckResult{}, &FieldError{Path: req.path, Want: req.want, Got: describe(v)}
		}
		vals[req.path] = v
	}

	return types.DomainCheckResult{
		Domain: vals["domain"].String(),
		Score:  int(vals["score"].Int()),
		Meta: types.Meta{
			BlockList:           vals["meta.block_list"].Bool(),
			DomainAge:           int(vals["meta.domain_age"].Int()),
			WebsiteResolves:     vals["meta.website_resolves"].Bool(),
			AcceptsAllAddresses: vals["meta.accepts_all_addresses"].Bool(),
			ValidEmailSecurity:  vals["meta.valid_email_security"].Bool(),
		},
	}, nil
}
func describe(r gjson.Result) string {
	switch {
	case !r.Exists():
		return "missing"
	case r.Type == gjson.Null:
		return "null"
	case r.Type == gjson.String:
		return "string"
	case isBool(r):
		return "boolean"
	case r.Type == gjson.Number:
		return "number " + r.Raw
	case r.IsArray():
		return "array"
	case r.IsObject():
		return "object"
	}
	return r.Type.String()
}
