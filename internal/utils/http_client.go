// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly and owns
// the cookie jar that carries the backend session between requests.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
	jar *resettableJar
}

// NewHTTPClient creates and returns a new HTTPClient instance with a fresh
// in-memory cookie jar. Retries are disabled: every request is attempted
// exactly once.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and cookies.
func NewHTTPClient() *HTTPClient {
	jar := &resettableJar{jar: newCookieJar()}
	client := resty.New().
		SetRetryCount(0).
		SetCookieJar(jar)

	return &HTTPClient{Client: client, jar: jar}
}

// ResetCookies drops every stored cookie. It is safe to call while other
// requests are in flight: the client keeps the same jar and only its
// contents are replaced.
func (c *HTTPClient) ResetCookies() {
	c.jar.reset()
}

// resettableJar is an [http.CookieJar] whose contents can be dropped at once.
type resettableJar struct {
	mu  sync.RWMutex
	jar *cookiejar.Jar
}

func (j *resettableJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	j.jar.SetCookies(u, cookies)
}

func (j *resettableJar) Cookies(u *url.URL) []*http.Cookie {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.jar.Cookies(u)
}

func (j *resettableJar) reset() {
	fresh := newCookieJar()
	j.mu.Lock()
	defer j.mu.Unlock()
	j.jar = fresh
}

func newCookieJar() *cookiejar.Jar {
	// cookiejar.New only fails for a non-nil PublicSuffixList.
	jar, _ := cookiejar.New(nil)
	return jar
}
