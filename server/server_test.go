package server

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	opts := DefaultOptions()
	opts.Logger = log.New(io.Discard, "", 0)
	ts := httptest.NewServer(New(opts))
	t.Cleanup(ts.Close)

	return ts
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()

	res, err := http.Get(url)
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res, string(body)
}

func TestServer_ShouldServeAvatarData(t *testing.T) {
	ts := newTestServer(t)

	res, body := get(t, ts.URL+"/data/alice?complexity=8")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "3h-o-62cgr-45oz3-5ba3h-28fe6-2a9z8-1sbkd-1hhu6-1q08y", body)
	assert.Equal(t, "max-age=7776000", res.Header.Get("Cache-Control"))

	_, body = get(t, ts.URL+"/data/alice?complexity=8&sep=_")
	assert.Equal(t, "3h_o_62cgr_45oz3_5ba3h_28fe6_2a9z8_1sbkd_1hhu6_1q08y", body)
}

func TestServer_ShouldServeAvatar(t *testing.T) {
	ts := newTestServer(t)

	res, body := get(t, ts.URL+"/avatar/alice.svg?complexity=8&shape=circle&size=64")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "image/svg+xml", res.Header.Get("Content-Type"))
	assert.Contains(t, body, `viewBox="0 0 64 64"`)
	assert.Equal(t, 8, strings.Count(body, "<path "))
	assert.Contains(t, body, " a4 4 0 1,1 8,0")
}

func TestServer_ShouldRenderData(t *testing.T) {
	ts := newTestServer(t)

	res, body := get(t, ts.URL+"/render/0-5-a-b-c.svg?size=30")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `fill="#00000a"`)
	assert.Contains(t, body, "M0,0 h10 v10 h-10Z M10,0 h10 v10 h-10Z M20,0 h10 v10 h-10Z")
}

func TestServer_StatusCodes(t *testing.T) {
	ts := newTestServer(t)

	testCases := []struct {
		path   string
		status int
	}{
		{"/avatar/alice.svg?shape=triangle", http.StatusBadRequest},
		{"/avatar/alice.svg?size=-1", http.StatusBadRequest},
		{"/avatar/alice.svg?size=100000", http.StatusBadRequest},
		{"/avatar/alice.svg?complexity=x", http.StatusBadRequest},
		{"/avatar/alice.svg?complexity=64", http.StatusBadRequest},
		{"/data/alice?complexity=0", http.StatusBadRequest},
		{"/render/f-0.svg", http.StatusUnprocessableEntity},
		{"/render/8-1-a-b-c.svg", http.StatusUnprocessableEntity},
		{"/render/0-1-zz!.svg", http.StatusUnprocessableEntity},
		{"/nothing", http.StatusNotFound},
	}

	for _, tc := range testCases {
		res, _ := get(t, ts.URL+tc.path)
		assert.Equal(t, tc.status, res.StatusCode, tc.path)
	}
}
