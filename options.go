package domaincheck

import (
	"net/http"
	"net/url"

	"github.com/hashicorp/go-cleanhttp"
)

// DefaultEndpoint is the TempMailDetector check URL.
const DefaultEndpoint = "https://api.tempmaildetector.com/check"

const contentType = "application/json"

// Options configures a Client. Zero fields take their defaults.
type Options struct {
	// Endpoint is the URL the lookup is POSTed to. Default: DefaultEndpoint
	Endpoint string
	// HTTPClient sends the request. Default: a cleanhttp client with no
	// timeout and its own transport. Set a client with a Timeout, or pass a
	// deadline in the context, to bound a call.
	HTTPClient *http.Client
}

func defaultOptions() Options {
	return Options{
		Endpoint:   DefaultEndpoint,
		HTTPClient: cleanhttp.DefaultClient(),
	}
}

// validEndpoint reports whether raw is an absolute http or https URL.
func validEndpoint(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
