package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandlerFillsSSHAddress(t *testing.T) {
	srv := httptest.NewServer(newHandler("play.example.com", "2022"))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var body strings.Builder
	if _, err := io.Copy(&body, resp.Body); err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q", ct)
	}
	if !strings.Contains(body.String(), "ssh -t -p 2022 play.example.com") {
		t.Errorf("page does not contain the ssh command:\n%s", body.String())
	}
	if strings.Contains(body.String(), "{{.") {
		t.Error("page still contains placeholders")
	}
}

func TestHandlerUnknownPath(t *testing.T) {
	rec := httptest.NewRecorder()
	newHandler("h", "1").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
