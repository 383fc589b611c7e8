// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/h2non/filetype"

	"cogentcore.org/verve/logx"
)

// Handler turns the raw bytes of one asset kind into a resource.
type Handler interface {

	// Open parses the given data, fetched from the given url,
	// into a resource.
	Open(url string, data []byte) (any, error)
}

// HandlerFunc adapts a function to the [Handler] interface.
type HandlerFunc func(url string, data []byte) (any, error)

func (f HandlerFunc) Open(url string, data []byte) (any, error) {
	return f(url, data)
}

// Loader is the resource loading contract consumed by the runtime.
// Loads are asynchronous: the callback fires when the load completes
// or fails, with exactly one of err and result set.
type Loader interface {

	// Load fetches the resource at the given url of the given kind
	// and calls cb with the result. An empty kind is sniffed from the
	// fetched bytes.
	Load(url, kind string, cb func(err error, result any))

	// AddHandler registers the handler for the given asset kind.
	AddHandler(kind string, h Handler)

	// EnableRetry retries failed fetches up to the given number of
	// attempts; zero disables retrying.
	EnableRetry(maxRetries int)
}

// HTTPLoader is the default [Loader], fetching resources over HTTP
// with optional retry.
type HTTPLoader struct {

	// Client is the HTTP client used for fetches.
	Client *http.Client

	mu         sync.Mutex
	handlers   map[string]Handler
	maxRetries int
}

// NewHTTPLoader returns a new [HTTPLoader] with the default client.
func NewHTTPLoader() *HTTPLoader {
	return &HTTPLoader{Client: &http.Client{Timeout: 60 * time.Second}, handlers: map[string]Handler{}}
}

// AddHandler registers the handler for the given asset kind.
func (l *HTTPLoader) AddHandler(kind string, h Handler) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.handlers[kind] = h
}

// EnableRetry retries failed fetches up to the given number of
// attempts.
func (l *HTTPLoader) EnableRetry(maxRetries int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.maxRetries = maxRetries
}

// Load fetches the resource at the given url asynchronously and calls
// cb once with the outcome.
func (l *HTTPLoader) Load(url, kind string, cb func(err error, result any)) {
	go func() {
		data, err := l.fetch(url)
		if err != nil {
			cb(err, nil)
			return
		}
		if kind == "" {
			if t, err := filetype.Match(data); err == nil && t != filetype.Unknown {
				kind = t.Extension
			}
		}
		l.mu.Lock()
		h := l.handlers[kind]
		l.mu.Unlock()
		if h == nil {
			cb(nil, data)
			return
		}
		res, err := h.Open(url, data)
		if err != nil {
			cb(err, nil)
			return
		}
		cb(nil, res)
	}()
}

func (l *HTTPLoader) fetch(url string) ([]byte, error) {
	l.mu.Lock()
	retries := l.maxRetries
	l.mu.Unlock()
	var err error
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 {
			logx.Warn("assets: retrying", "url", url, "attempt", attempt)
		}
		var data []byte
		data, err = l.fetchOnce(url)
		if err == nil {
			return data, nil
		}
	}
	return nil, err
}

func (l *HTTPLoader) fetchOnce(url string) ([]byte, error) {
	resp, err := l.Client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("assets: fetching %q: %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
