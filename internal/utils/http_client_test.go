// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient()

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
	assert.NotNil(t, client.GetClient().Jar)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	assert.NotSame(t, client1.Client, client2.Client)
	assert.NotSame(t, client1.GetClient().Jar, client2.GetClient().Jar)
}

// TestHTTPClient_CookiesRoundTrip verifies that a cookie set by the server is
// sent back on the next request and dropped after ResetCookies.
func TestHTTPClient_CookiesRoundTrip(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/set" {
			http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc", Path: "/"})
			return
		}
		c, err := r.Cookie("session")
		if err != nil {
			seen = append(seen, "")
			return
		}
		seen = append(seen, c.Value)
	}))
	defer srv.Close()

	client := NewHTTPClient()
	client.SetBaseURL(srv.URL)

	_, err := client.R().Get("/set")
	require.NoError(t, err)
	_, err = client.R().Get("/check")
	require.NoError(t, err)

	client.ResetCookies()
	_, err = client.R().Get("/check")
	require.NoError(t, err)

	assert.Equal(t, []string{"abc", ""}, seen)
}

func TestHTTPClient_ResetCookiesKeepsJar(t *testing.T) {
	client := NewHTTPClient()
	jar := client.GetClient().Jar

	client.ResetCookies()

	assert.Same(t, jar, client.GetClient().Jar)
}

// TestHTTPClient_ResetCookiesDuringRequests is meant for -race: a reset runs
// while other goroutines keep sending requests on the same client.
func TestHTTPClient_ResetCookiesDuringRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc", Path: "/"})
	}))
	defer srv.Close()

	client := NewHTTPClient()
	client.SetBaseURL(srv.URL)

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 10 {
				_, err := client.R().Get("/")
				assert.NoError(t, err)
			}
		}()
	}
	for range 10 {
		client.ResetCookies()
	}
	wg.Wait()
}
