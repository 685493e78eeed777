package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sivajeyabalan/blogapi/auth"
	"github.com/sivajeyabalan/blogapi/fs"
	"github.com/sivajeyabalan/blogapi/shared"
	"github.com/sivajeyabalan/blogapi/types"
)

func setupApiTest(t *testing.T, handler http.Handler) *Api {
	t.Helper()

	dir := t.TempDir()
	fs.HomeBlogDir = dir
	fs.HomeAuthPath = filepath.Join(dir, "auth.json")
	fs.HomeAccountsPath = filepath.Join(dir, "accounts.json")

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	t.Setenv("BLOG_API_HOST", server.URL)

	auth.Current = &types.ClientAuth{
		ClientAccount: types.ClientAccount{
			Email:  "a@b.com",
			UserId: 7,
			Token:  "tok1",
		},
	}
	t.Cleanup(func() { auth.Current = nil })

	return &Api{}
}

func TestSignInDecodesSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req shared.SignInRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a@b.com", req.Email)
		assert.Equal(t, "secret", req.Password)

		json.NewEncoder(w).Encode(shared.SignInResponse{
			Token: "tok1",
			User:  &shared.User{Id: 7, Email: req.Email},
		})
	})

	a := setupApiTest(t, mux)

	res, apiErr := a.SignIn(shared.SignInRequest{Email: "a@b.com", Password: "secret"}, "")
	require.Nil(t, apiErr)

	assert.Equal(t, "tok1", res.Token)
	assert.Equal(t, int64(7), res.User.Id)
}

func TestSignInErrorUsesServerMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"message": "Email already exists"})
	})

	a := setupApiTest(t, mux)

	_, apiErr := a.Register(shared.RegisterRequest{Email: "a@b.com", Password: "x"}, "")
	require.NotNil(t, apiErr)

	assert.Equal(t, "Email already exists", apiErr.Msg)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
}

func TestUnauthorizedClearsSessionCentrally(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	a := setupApiTest(t, mux)

	_, apiErr := a.GetCurrentUser()
	require.NotNil(t, apiErr)

	assert.Equal(t, shared.ApiErrorTypeExpiredToken, apiErr.Type)
	assert.Nil(t, auth.Current, "a 401 must force sign-out")
	assert.Equal(t, auth.SessionAnonymous, auth.Status())
	assert.Equal(t, auth.GuardSignIn, auth.Resolve(auth.Status()))
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(shared.User{Id: 7, Email: "a@b.com"})
	})

	a := setupApiTest(t, mux)

	_, apiErr := a.GetCurrentUser()
	require.Nil(t, apiErr)

	assert.Equal(t, "Bearer tok1", gotAuth)
}

// blogBackend is a minimal stateful mock: create posts, like them, list the
// signed-in user's published/unpublished posts.
type blogBackend struct {
	nextId int64
	posts  map[int64]*shared.Post
}

func newBlogBackend() *blogBackend {
	return &blogBackend{nextId: 1, posts: map[int64]*shared.Post{}}
}

func (b *blogBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/posts", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		post := &shared.Post{
			Id:        b.nextId,
			Title:     r.FormValue("title"),
			Content:   r.FormValue("content"),
			Published: r.FormValue("isPublished") == "true",
			AuthorId:  7,
		}
		b.nextId++
		b.posts[post.Id] = post

		json.NewEncoder(w).Encode(post)
	})

	mux.HandleFunc("POST /api/posts/{id}/like", func(w http.ResponseWriter, r *http.Request) {
		post := b.mustPost(w, r)
		if post == nil {
			return
		}

		// server-enforced uniqueness: one like per user
		if !post.LikedBy(7) {
			post.Likes = append(post.Likes, 7)
		}
		w.WriteHeader(http.StatusOK)
	})

	mux.HandleFunc("GET /api/posts/{id}/full", func(w http.ResponseWriter, r *http.Request) {
		post := b.mustPost(w, r)
		if post == nil {
			return
		}
		json.NewEncoder(w).Encode(post)
	})

	mux.HandleFunc("GET /api/posts/user/posts", func(w http.ResponseWriter, r *http.Request) {
		res := shared.UserPostsResponse{Published: []*shared.Post{}, Unpublished: []*shared.Post{}}
		for _, post := range b.posts {
			if post.Published {
				res.Published = append(res.Published, post)
			} else {
				res.Unpublished = append(res.Unpublished, post)
			}
		}
		json.NewEncoder(w).Encode(res)
	})

	return mux
}

func (b *blogBackend) mustPost(w http.ResponseWriter, r *http.Request) *shared.Post {
	var id int64
	fmt.Sscanf(r.PathValue("id"), "%d", &id)
	post, ok := b.posts[id]
	if !ok {
		http.NotFound(w, r)
		return nil
	}
	return post
}

func TestCreateDraftShowsUpInUnpublished(t *testing.T) {
	backend := newBlogBackend()
	a := setupApiTest(t, backend.handler())

	post, apiErr := a.CreatePost(shared.CreatePostParams{
		Title:       "T",
		Content:     "C",
		IsPublished: false,
	})
	require.Nil(t, apiErr)
	assert.False(t, post.Published)

	res, apiErr := a.GetUserPosts()
	require.Nil(t, apiErr)

	require.Len(t, res.Unpublished, 1)
	assert.Equal(t, "T", res.Unpublished[0].Title)
	assert.Empty(t, res.Published)
}

func TestDoubleLikeDoesNotDoubleCount(t *testing.T) {
	backend := newBlogBackend()
	a := setupApiTest(t, backend.handler())

	post, apiErr := a.CreatePost(shared.CreatePostParams{Title: "T", Content: "C", IsPublished: true})
	require.Nil(t, apiErr)

	require.Nil(t, a.LikePost(post.Id))
	require.Nil(t, a.LikePost(post.Id))

	// the client never assumes a result. It refetches and renders what the server says
	refetched, apiErr := a.GetPost(post.Id)
	require.Nil(t, apiErr)

	assert.Equal(t, 1, refetched.LikeCount())
}
