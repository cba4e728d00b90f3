package dribbble

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/florianilch/dribbble-go/wire"
)

// recordedRequest captures what the remote saw for one endpoint call.
type recordedRequest struct {
	method string
	path   string
	query  url.Values
	form   url.Values
}

func TestEndpointRouting(t *testing.T) {
	var got recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		got = recordedRequest{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.Query(),
			form:   r.PostForm,
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/user/shots", "/user/likes", "/user/project", "/popular_shots":
			_, _ = w.Write([]byte(`[]`))
		default:
			_, _ = w.Write([]byte(`{}`))
		}
	}))
	defer srv.Close()

	c, err := New(testConfig(), WithBaseURL(srv.URL))
	require.NoError(t, err)
	c.SetAccessToken("tok")

	ctx := context.Background()
	pager := Pager{Page: 2, PerPage: 30}

	tests := []struct {
		name       string
		call       func() error
		wantMethod string
		wantPath   string
		check      func(t *testing.T, got recordedRequest)
	}{
		{
			name:       "GetShot",
			call:       func() error { _, err := c.GetShot(ctx, "471756"); return err },
			wantMethod: http.MethodGet,
			wantPath:   "/shots/471756",
		},
		{
			name:       "GetUserShots",
			call:       func() error { _, err := c.GetUserShots(ctx, pager); return err },
			wantMethod: http.MethodGet,
			wantPath:   "/user/shots",
			check: func(t *testing.T, got recordedRequest) {
				assert.Equal(t, "2", got.query.Get("page"))
				assert.Equal(t, "30", got.query.Get("per_page"))
			},
		},
		{
			name:       "GetPopularShots",
			call:       func() error { _, err := c.GetPopularShots(ctx, Pager{}); return err },
			wantMethod: http.MethodGet,
			wantPath:   "/popular_shots",
			check: func(t *testing.T, got recordedRequest) {
				// Zero pager fields drop out of the query.
				assert.Empty(t, got.query)
			},
		},
		{
			name:       "CreateShot",
			call:       func() error { _, err := c.CreateShot(ctx, wire.Payload{"title": "hi", "lowProfile": true}); return err },
			wantMethod: http.MethodPost,
			wantPath:   "/shots",
			check: func(t *testing.T, got recordedRequest) {
				assert.Equal(t, "hi", got.form.Get("title"))
				assert.Equal(t, "true", got.form.Get("low_profile"))
			},
		},
		{
			name:       "UpdateShot",
			call:       func() error { _, err := c.UpdateShot(ctx, "9", wire.Payload{"title": "new"}); return err },
			wantMethod: http.MethodPost,
			wantPath:   "/shots/9",
		},
		{
			name:       "DeleteShot",
			call:       func() error { _, err := c.DeleteShot(ctx, "9"); return err },
			wantMethod: http.MethodDelete,
			wantPath:   "/shots/9",
		},
		{
			name:       "GetLikes",
			call:       func() error { _, err := c.GetLikes(ctx, pager); return err },
			wantMethod: http.MethodGet,
			wantPath:   "/user/likes",
		},
		{
			name:       "HasLiked",
			call:       func() error { _, err := c.HasLiked(ctx, "9"); return err },
			wantMethod: http.MethodGet,
			wantPath:   "/shots/9/like",
		},
		{
			name:       "LikeShot",
			call:       func() error { _, err := c.LikeShot(ctx, "9"); return err },
			wantMethod: http.MethodPost,
			wantPath:   "/shots/9/like",
		},
		{
			name:       "UnlikeShot",
			call:       func() error { _, err := c.UnlikeShot(ctx, "9"); return err },
			wantMethod: http.MethodDelete,
			wantPath:   "/shots/9/like",
		},
		{
			name:       "GetUserProject",
			call:       func() error { _, err := c.GetUserProject(ctx, pager); return err },
			wantMethod: http.MethodGet,
			wantPath:   "/user/project",
		},
		{
			name:       "CreateProject",
			call:       func() error { _, err := c.CreateProject(ctx, "portfolio", "best work"); return err },
			wantMethod: http.MethodPost,
			wantPath:   "/projects",
			check: func(t *testing.T, got recordedRequest) {
				assert.Equal(t, "portfolio", got.form.Get("name"))
				assert.Equal(t, "best work", got.form.Get("description"))
			},
		},
		{
			name:       "UpdateProject",
			call:       func() error { _, err := c.UpdateProject(ctx, "3", wire.Payload{"name": "renamed"}); return err },
			wantMethod: http.MethodPost,
			wantPath:   "/projects/3",
		},
		{
			name:       "DeleteProject",
			call:       func() error { _, err := c.DeleteProject(ctx, "3"); return err },
			wantMethod: http.MethodDelete,
			wantPath:   "/projects/3",
		},
		{
			name:       "CreateAttachment",
			call:       func() error { _, err := c.CreateAttachment(ctx, "9", []byte("img")); return err },
			wantMethod: http.MethodPost,
			wantPath:   "/shots/9/attachments",
			check: func(t *testing.T, got recordedRequest) {
				assert.Equal(t, "img", got.form.Get("file"))
			},
		},
		{
			name:       "DeleteAttachment",
			call:       func() error { _, err := c.DeleteAttachment(ctx, "9", "12"); return err },
			wantMethod: http.MethodDelete,
			wantPath:   "/shots/9/attachments/12",
		},
		{
			name:       "GetProfile",
			call:       func() error { _, err := c.GetProfile(ctx); return err },
			wantMethod: http.MethodGet,
			wantPath:   "/user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got = recordedRequest{}
			require.NoError(t, tt.call())
			assert.Equal(t, tt.wantMethod, got.method)
			assert.Equal(t, tt.wantPath, got.path)
			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}

func TestPathIdentifiersAreEscaped(t *testing.T) {
	var gotRawPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRawPath = r.URL.EscapedPath()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c, err := New(testConfig(), WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = c.GetShot(context.Background(), "a/b c")
	require.NoError(t, err)
	assert.Equal(t, "/shots/a%2Fb%20c", gotRawPath)
}

func TestListEndpoints_CamelCaseElements(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"likes_count": 3}, {"likes_count": 5}]`))
	}))
	defer srv.Close()

	c, err := New(testConfig(), WithBaseURL(srv.URL))
	require.NoError(t, err)

	shots, err := c.GetPopularShots(context.Background(), Pager{})
	require.NoError(t, err)
	require.Len(t, shots, 2)
	assert.Equal(t, float64(3), shots[0]["likesCount"])
	assert.Equal(t, float64(5), shots[1]["likesCount"])
}
