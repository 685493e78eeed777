package api

import (
	"net"
	"net/http"
	"os"
	"time"

	"github.com/sivajeyabalan/blogapi/auth"
	"github.com/sivajeyabalan/blogapi/types"
)

const dialTimeout = 10 * time.Second
const fastReqTimeout = 30 * time.Second

// uploads carry the post image in the same multipart request, so they get
// a much longer window
const uploadReqTimeout = 5 * time.Minute

type Api struct{}

var defaultApiHost string

var Client types.ApiClient = (*Api)(nil)

func init() {
	if os.Getenv("BLOG_ENV") == "development" {
		defaultApiHost = "http://localhost:8080"
	} else {
		defaultApiHost = "https://blog-backend-77ds.onrender.com"
	}
}

func GetApiHost() string {
	if host := os.Getenv("BLOG_API_HOST"); host != "" {
		return host
	}
	if host := auth.CurrentHost(); host != "" {
		return host
	}
	return defaultApiHost
}

// hostOrDefault resolves the host for unauthenticated endpoints, where a
// custom host can be passed before any session exists.
func hostOrDefault(customHost string) string {
	if customHost != "" {
		return customHost
	}
	return GetApiHost()
}

type authenticatedTransport struct {
	underlyingTransport http.RoundTripper
}

// RoundTrip attaches the bearer token just before the request goes out
func (t *authenticatedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	auth.SetAuthHeader(req)
	return t.underlyingTransport.RoundTrip(req)
}

var netDialer = &net.Dialer{
	Timeout: dialTimeout,
}

var unauthenticatedClient = &http.Client{
	Transport: &http.Transport{
		Dial: netDialer.Dial,
	},
	Timeout: fastReqTimeout,
}

var authenticatedFastClient = &http.Client{
	Transport: &authenticatedTransport{
		underlyingTransport: &http.Transport{
			Dial: netDialer.Dial,
		},
	},
	Timeout: fastReqTimeout,
}

var authenticatedUploadClient = &http.Client{
	Transport: &authenticatedTransport{
		underlyingTransport: &http.Transport{
			Dial: netDialer.Dial,
		},
	},
	Timeout: uploadReqTimeout,
}
