package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	f := New(Config{ContentOrigin: "https://docs.example.com/library"}, nil, nil)

	tests := []struct {
		name    string
		address string
		want    string
	}{
		{
			name:    "absolute https passes through verbatim",
			address: "https://other.example.com/spec.pdf",
			want:    "https://other.example.com/spec.pdf",
		},
		{
			name:    "absolute http passes through verbatim",
			address: "http://other.example.com/spec.pdf",
			want:    "http://other.example.com/spec.pdf",
		},
		{
			name:    "relative path appended to origin",
			address: "specs/pump.pdf",
			want:    "https://docs.example.com/library/specs/pump.pdf",
		},
		{
			name:    "leading slash trimmed",
			address: "/specs/pump.pdf",
			want:    "https://docs.example.com/library/specs/pump.pdf",
		},
		{
			name:    "percent-encoded leading separator decoded then trimmed",
			address: "%2Fspecs/pump.pdf",
			want:    "https://docs.example.com/library/specs/pump.pdf",
		},
		{
			name:    "segments encoded individually, separators preserved",
			address: "cut sheets/pump #4.pdf",
			want:    "https://docs.example.com/library/cut%20sheets/pump%20%234.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Resolve(tt.address))
		})
	}
}

func TestFetchSuccess(t *testing.T) {
	var gotUA, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte("%PDF-1.4 fake"))
	}))
	defer srv.Close()

	f := New(Config{ContentOrigin: srv.URL, UserAgent: "submittalflow-test/1.0"}, srv.Client(), nil)

	data, err := f.Fetch(context.Background(), "cut sheets/valve.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 fake"), data)
	assert.Equal(t, "submittalflow-test/1.0", gotUA)
	assert.Equal(t, "/cut%20sheets/valve.pdf", gotPath)
}

func TestFetchNonSuccessStatusIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := New(Config{ContentOrigin: srv.URL}, srv.Client(), nil)

	_, err := f.Fetch(context.Background(), "missing.pdf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestFetchTransportErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	f := New(Config{ContentOrigin: srv.URL}, nil, nil)

	_, err := f.Fetch(context.Background(), "anything.pdf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestFetchGCSWithoutClientIsUnavailable(t *testing.T) {
	f := New(Config{ContentOrigin: "https://docs.example.com"}, nil, nil)

	_, err := f.Fetch(context.Background(), "gs://some-bucket/specs/pump.pdf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestFetchContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	f := New(Config{ContentOrigin: srv.URL}, srv.Client(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := f.Fetch(ctx, "slow.pdf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
}
