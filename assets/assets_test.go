// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryOrder(t *testing.T) {
	r := NewRegistry("")
	a := &Asset{ID: "1", Name: "a"}
	b := &Asset{ID: "2", Name: "b"}
	r.Add(a)
	r.Add(b)
	assert.Equal(t, []*Asset{a, b}, r.List())
	assert.Equal(t, a, r.Get("1"))

	// duplicate id replaces in place
	a2 := &Asset{ID: "1", Name: "a2"}
	r.Add(a2)
	assert.Equal(t, []*Asset{a2, b}, r.List())
}

func TestRegistryPreloads(t *testing.T) {
	r := NewRegistry("")
	r.Add(&Asset{ID: "1", Preload: true})
	r.Add(&Asset{ID: "2"})
	r.Add(&Asset{ID: "3", Preload: true})
	ps := r.Preloads()
	require.Len(t, ps, 2)
	assert.Equal(t, "1", ps[0].ID)
	assert.Equal(t, "3", ps[1].ID)
}

func TestLoadOrder(t *testing.T) {
	s1 := &Asset{ID: "s1", Type: "script"}
	s2 := &Asset{ID: "s2", Type: "script"}
	bd := &Asset{ID: "b1", Type: "bundle"}
	tx := &Asset{ID: "t1", Type: "texture"}
	got := LoadOrder([]*Asset{tx, s1, bd, s2}, []string{"s2", "s1"})
	assert.Equal(t, []*Asset{s2, s1, bd, tx}, got)
}

func TestLoadOrderNoScripts(t *testing.T) {
	bd := &Asset{ID: "b1", Type: "bundle"}
	tx := &Asset{ID: "t1", Type: "texture"}
	got := LoadOrder([]*Asset{tx, bd}, nil)
	assert.Equal(t, []*Asset{bd, tx}, got)
}

func TestAssetOnceLoad(t *testing.T) {
	a := &Asset{ID: "1"}
	n := 0
	a.OnceLoad(func(a *Asset) { n++ })
	a.FireLoad("res")
	assert.Equal(t, 1, n)
	assert.True(t, a.Loaded)
	assert.Equal(t, "res", a.Resource)

	// already loaded runs immediately, without refiring old handlers
	a.OnceLoad(func(a *Asset) { n += 10 })
	assert.Equal(t, 11, n)
}

func TestHTTPLoader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()

	l := NewHTTPLoader()
	l.AddHandler("json", HandlerFunc(func(url string, data []byte) (any, error) {
		return string(data), nil
	}))

	done := make(chan any, 1)
	l.Load(srv.URL, "json", func(err error, result any) {
		require.NoError(t, err)
		done <- result
	})
	select {
	case res := <-done:
		assert.Equal(t, `{"ok": true}`, res)
	case <-time.After(5 * time.Second):
		t.Fatal("load did not complete")
	}
}

func TestHTTPLoaderRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	l := NewHTTPLoader()
	l.EnableRetry(3)
	done := make(chan error, 1)
	l.Load(srv.URL, "", func(err error, result any) { done <- err })
	select {
	case err := <-done:
		assert.NoError(t, err)
		assert.Equal(t, int32(3), calls.Load())
	case <-time.After(5 * time.Second):
		t.Fatal("load did not complete")
	}
}

func TestHTTPLoaderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	l := NewHTTPLoader()
	done := make(chan error, 1)
	l.Load(srv.URL, "", func(err error, result any) { done <- err })
	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("load did not complete")
	}
}
