package domaincheck_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/optimode/domaincheck"
)

// fakeAPI stands in for the real service so the examples run offline.
func fakeAPI(status int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
}

func ExampleClient_CheckDomain() {
	srv := fakeAPI(http.StatusOK, `{"domain": "example.com", "score": 87, "meta": {"block_list": false, "domain_age": 1200, "website_resolves": true, "accepts_all_addresses": false, "valid_email_security": true}}`)
	defer srv.Close()

	c := domaincheck.New("sk_test_123", domaincheck.Options{Endpoint: srv.URL})
	res, err := c.CheckDomain(context.Background(), "example.com")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Domain, res.Score, res.Meta.DomainAge, res.Meta.BlockList)
	// Output: example.com 87 1200 false
}

func ExampleClient_CheckDomain_statusError() {
	srv := fakeAPI(http.StatusUnauthorized, `{"error": "invalid api key"}`)
	defer srv.Close()

	c := domaincheck.New("wrong-key", domaincheck.Options{Endpoint: srv.URL})
	_, err := c.CheckDomain(context.Background(), "example.com")

	var de *domaincheck.Error
	if errors.As(err, &de) && errors.Is(err, domaincheck.ErrStatus) {
		fmt.Println(de.Kind, de.StatusCode, de.Body)
	}
	// Output: status 401 {"error": "invalid api key"}
}

func ExampleClient_CheckDomain_decodeError() {
	srv := fakeAPI(http.StatusOK, `{"domain": "example.com", "score": 87}`)
	defer srv.Close()

	c := domaincheck.New("sk_test_123", domaincheck.Options{Endpoint: srv.URL})
	_, err := c.CheckDomain(context.Background(), "example.com")
	fmt.Println(err)
	// Output: domaincheck: decoding response for "example.com": required field "meta" is missing
}

func ExampleClient_CheckEmail() {
	srv := fakeAPI(http.StatusOK, `{"domain": "mailinator.com", "score": 2, "meta": {"block_list": true, "domain_age": 8000, "website_resolves": true, "accepts_all_addresses": true, "valid_email_security": false}}`)
	defer srv.Close()

	c := domaincheck.New("sk_test_123", domaincheck.Options{Endpoint: srv.URL})
	res, err := c.CheckEmail(context.Background(), "someone@Mailinator.com")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Domain, res.Score, res.Meta.AcceptsAllAddresses)
	// Output: mailinator.com 2 true
}
