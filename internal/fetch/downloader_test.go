package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetch_StatusCodes(t *testing.T) {
	tests := []struct {
		status  int
		wantErr bool
	}{
		{http.StatusOK, false},
		{http.StatusNoContent, false},
		{http.StatusNotModified, true},
		{http.StatusNotFound, true},
		{http.StatusInternalServerError, true},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			d := NewHTTPDownloader(WithHTTPClient(server.Client()))
			_, err := d.Fetch(context.Background(), server.URL)
			if (err != nil) != tt.wantErr {
				t.Errorf("Fetch() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFetch_UserAgent(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
	}))
	defer server.Close()

	d := NewHTTPDownloader(WithHTTPClient(server.Client()), WithUserAgent("unitykit/1.2.3"))
	if _, err := d.Fetch(context.Background(), server.URL); err != nil {
		t.Fatal(err)
	}
	if got != "unitykit/1.2.3" {
		t.Errorf("User-Agent = %q", got)
	}
}

func TestWithTimeout_DoesNotMutateSharedClient(t *testing.T) {
	shared := &http.Client{}
	d := NewHTTPDownloader(WithHTTPClient(shared), WithTimeout(5*time.Second))
	if shared.Timeout != 0 {
		t.Errorf("shared client timeout changed to %v", shared.Timeout)
	}
	if d.httpClient.Timeout != 5*time.Second {
		t.Errorf("downloader timeout = %v", d.httpClient.Timeout)
	}
}

func TestFetch_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	d := NewHTTPDownloader()
	if _, err := d.Fetch(context.Background(), url); err == nil {
		t.Fatal("expected error for closed server")
	}
}
