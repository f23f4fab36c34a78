package tmkt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetText_SendsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	f := NewFetcher(nil)
	f.client = srv.Client()
	body, err := f.GetText(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("GetText error: %v", err)
	}
	if body != "ok" {
		t.Errorf("body = %q, want ok", body)
	}
	if gotUA == "" {
		t.Error("request went out without a User-Agent header")
	}
}

func TestGetText_ExtraHeaders(t *testing.T) {
	var gotLang string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLang = r.Header.Get("Accept-Language")
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	f := NewFetcher(map[string]string{"User-Agent": "test-agent", "Accept-Language": "en-US"})
	f.client = srv.Client()
	if _, err := f.GetText(context.Background(), srv.URL); err != nil {
		t.Fatalf("GetText error: %v", err)
	}
	if gotLang != "en-US" {
		t.Errorf("Accept-Language = %q, want en-US", gotLang)
	}
}

func TestGetText_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	}))
	defer srv.Close()

	f := NewFetcher(nil)
	f.client = srv.Client()
	if _, err := f.GetText(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for 403 response")
	}
}
