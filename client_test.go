package dribbble

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func testConfig() Config {
	return Config{
		ClientID:     "id",
		ClientSecret: "secret",
		Scope:        ScopePublic,
	}
}

// spyTransport records every request that reaches the transport.
type spyTransport struct {
	requests []*http.Request
	respond  func(*http.Request) *http.Response
}

func (s *spyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	s.requests = append(s.requests, req)
	if s.respond != nil {
		return s.respond(req), nil
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       http.NoBody,
		Request:    req,
	}, nil
}

func TestNew_ValidatesConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing client id", Config{ClientSecret: "s", Scope: ScopePublic}},
		{"missing client secret", Config{ClientID: "i", Scope: ScopePublic}},
		{"missing scope", Config{ClientID: "i", ClientSecret: "s"}},
		{"unknown scope", Config{ClientID: "i", ClientSecret: "s", Scope: "admin"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			assert.Error(t, err)
		})
	}

	c, err := New(testConfig())
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestProtectedMethods_FailWithoutToken(t *testing.T) {
	spy := &spyTransport{}
	c, err := New(testConfig(), WithHTTPClient(&http.Client{Transport: spy}))
	require.NoError(t, err)

	ctx := context.Background()
	calls := []struct {
		name string
		call func() error
	}{
		{"GetProfile", func() error { _, err := c.GetProfile(ctx); return err }},
		{"GetUserShots", func() error { _, err := c.GetUserShots(ctx, Pager{}); return err }},
		{"GetUserProject", func() error { _, err := c.GetUserProject(ctx, Pager{}); return err }},
		{"GetLikes", func() error { _, err := c.GetLikes(ctx, Pager{}); return err }},
		{"HasLiked", func() error { _, err := c.HasLiked(ctx, "1"); return err }},
		{"LikeShot", func() error { _, err := c.LikeShot(ctx, "1"); return err }},
		{"UnlikeShot", func() error { _, err := c.UnlikeShot(ctx, "1"); return err }},
		{"CreateShot", func() error { _, err := c.CreateShot(ctx, nil); return err }},
		{"UpdateShot", func() error { _, err := c.UpdateShot(ctx, "1", nil); return err }},
		{"DeleteShot", func() error { _, err := c.DeleteShot(ctx, "1"); return err }},
		{"CreateProject", func() error { _, err := c.CreateProject(ctx, "n", "d"); return err }},
		{"UpdateProject", func() error { _, err := c.UpdateProject(ctx, "1", nil); return err }},
		{"DeleteProject", func() error { _, err := c.DeleteProject(ctx, "1"); return err }},
		{"CreateAttachment", func() error { _, err := c.CreateAttachment(ctx, "1", []byte("x")); return err }},
		{"DeleteAttachment", func() error { _, err := c.DeleteAttachment(ctx, "1", "2"); return err }},
	}

	for _, tt := range calls {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingToken)

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, KindUnauthorized, apiErr.Kind)
			assert.Equal(t, http.StatusForbidden, apiErr.Code)
		})
	}

	// The guard runs before any network I/O.
	assert.Empty(t, spy.requests)
}

func TestUnprotectedMethods_SucceedWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/popular_shots" {
			_, _ = w.Write([]byte(`[]`))
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c, err := New(testConfig(), WithBaseURL(srv.URL))
	require.NoError(t, err)

	ctx := context.Background()

	_, err = c.GetShot(ctx, "1")
	assert.NoError(t, err)

	_, err = c.GetPopularShots(ctx, Pager{})
	assert.NoError(t, err)
}

func TestSetAccessToken_SetsBearerHeader(t *testing.T) {
	spy := &spyTransport{}
	c, err := New(testConfig(), WithHTTPClient(&http.Client{Transport: spy}))
	require.NoError(t, err)

	c.SetAccessToken("abc123")

	_, err = c.GetProfile(context.Background())
	require.NoError(t, err)
	_, err = c.LikeShot(context.Background(), "1")
	require.NoError(t, err)

	require.Len(t, spy.requests, 2)
	for _, req := range spy.requests {
		assert.Equal(t, "Bearer abc123", req.Header.Get("Authorization"))
	}
}

func TestSetAccessToken_OverwritesPreviousToken(t *testing.T) {
	spy := &spyTransport{}
	c, err := New(testConfig(), WithHTTPClient(&http.Client{Transport: spy}))
	require.NoError(t, err)

	c.SetAccessToken("first")
	c.SetAccessToken("second")

	_, err = c.GetProfile(context.Background())
	require.NoError(t, err)

	require.Len(t, spy.requests, 1)
	assert.Equal(t, "Bearer second", spy.requests[0].Header.Get("Authorization"))
}

func TestWithTokenSource_SatisfiesGuardAndHeader(t *testing.T) {
	spy := &spyTransport{}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "from-source"})
	c, err := New(testConfig(),
		WithHTTPClient(&http.Client{Transport: spy}),
		WithTokenSource(ts),
	)
	require.NoError(t, err)

	_, err = c.GetProfile(context.Background())
	require.NoError(t, err)

	require.Len(t, spy.requests, 1)
	assert.Equal(t, "Bearer from-source", spy.requests[0].Header.Get("Authorization"))
}

func TestTransportError_CarriesRemoteStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c, err := New(testConfig(), WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = c.GetShot(context.Background(), "missing")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindTransport, apiErr.Kind)
	assert.Equal(t, http.StatusNotFound, apiErr.Code)
	assert.NotErrorIs(t, err, ErrMissingToken)
}

func TestNetworkError_Propagates(t *testing.T) {
	boom := errors.New("connection refused")
	c, err := New(testConfig(), WithHTTPClient(&http.Client{
		Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
			return nil, boom
		}),
	}))
	require.NoError(t, err)

	_, err = c.GetShot(context.Background(), "1")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestResponsePayload_IsCamelCased(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"likes_count": 7, "html_url": "https://drb/shot/1"}`))
	}))
	defer srv.Close()

	c, err := New(testConfig(), WithBaseURL(srv.URL))
	require.NoError(t, err)

	payload, err := c.GetShot(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, float64(7), payload["likesCount"])
	assert.Equal(t, "https://drb/shot/1", payload["htmlUrl"])
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
