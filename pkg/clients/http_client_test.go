package clients

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHTTPClient_Post(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "secret", r.Header.Get("apikey"))
		assert.Equal(t, "public", r.Header.Get("content-profile"))
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"a":1}`, string(body))
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	client := NewHTTPClient()
	headers := http.Header{}
	headers.Set("apikey", "secret")
	headers.Set("content-profile", "public")

	status, body, err := client.Post(context.Background(), server.URL, headers, []byte(`{"a":1}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, status)
	assert.Equal(t, "ok", string(body))
}

func TestHTTPClient_PostTruncatesLargeReplies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(strings.Repeat("x", maxResponseBody+100)))
	}))
	defer server.Close()

	status, body, err := NewHTTPClient().Post(context.Background(), server.URL, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Len(t, body, maxResponseBody)
}

func TestHTTPClient_PostCanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewHTTPClient().Post(ctx, server.URL, nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHTTPClient_SetClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	doer := NewMockDoer(ctrl)

	doer.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "http://rpc", req.URL.String())
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
		return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader("done"))}, nil
	})

	client := NewHTTPClient()
	client.SetClient(doer)

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	status, body, err := client.Post(context.Background(), "http://rpc", headers, []byte("{}"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "done", string(body))

	doer.EXPECT().Do(gomock.Any()).Return(nil, errors.New("connection refused"))
	_, _, err = client.Post(context.Background(), "http://rpc", nil, nil)
	assert.EqualError(t, err, "connection refused")
}
