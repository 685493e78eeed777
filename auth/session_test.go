package auth

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sivajeyabalan/blogapi/fs"
	"github.com/sivajeyabalan/blogapi/shared"
	"github.com/sivajeyabalan/blogapi/types"
)

// fakeApiClient lets each test script the endpoints it cares about.
type fakeApiClient struct {
	signInFn  func(req shared.SignInRequest) (*shared.SignInResponse, *shared.ApiError)
	meFn      func() (*shared.User, *shared.ApiError)
	meCalls   int
	signInReq *shared.SignInRequest
}

func (f *fakeApiClient) SignIn(req shared.SignInRequest, customHost string) (*shared.SignInResponse, *shared.ApiError) {
	f.signInReq = &req
	return f.signInFn(req)
}

func (f *fakeApiClient) Register(req shared.RegisterRequest, customHost string) (*shared.RegisterResponse, *shared.ApiError) {
	return &shared.RegisterResponse{Token: "reg-tok", UserId: 1}, nil
}

func (f *fakeApiClient) GetCurrentUser() (*shared.User, *shared.ApiError) {
	f.meCalls++
	return f.meFn()
}

func (f *fakeApiClient) GetPostsPage(page, limit int) (*shared.PaginatedPosts, *shared.ApiError) {
	return nil, nil
}
func (f *fakeApiClient) GetPost(postId int64) (*shared.Post, *shared.ApiError) { return nil, nil }
func (f *fakeApiClient) CreatePost(params shared.CreatePostParams) (*shared.Post, *shared.ApiError) {
	return nil, nil
}
func (f *fakeApiClient) UpdatePost(postId int64, req shared.UpdatePostRequest) *shared.ApiError {
	return nil
}
func (f *fakeApiClient) DeletePost(postId int64) *shared.ApiError  { return nil }
func (f *fakeApiClient) PublishPost(postId int64) *shared.ApiError { return nil }
func (f *fakeApiClient) LikePost(postId int64) *shared.ApiError    { return nil }
func (f *fakeApiClient) CreateComment(postId int64, req shared.CreateCommentRequest) *shared.ApiError {
	return nil
}
func (f *fakeApiClient) UpdateComment(commentId int64, req shared.UpdateCommentRequest) *shared.ApiError {
	return nil
}
func (f *fakeApiClient) GetUserPosts() (*shared.UserPostsResponse, *shared.ApiError) {
	return nil, nil
}
func (f *fakeApiClient) GetProfile() (*shared.ProfileResponse, *shared.ApiError) { return nil, nil }

func setupAuthTest(t *testing.T) *fakeApiClient {
	t.Helper()

	dir := t.TempDir()
	fs.HomeBlogDir = dir
	fs.HomeAuthPath = filepath.Join(dir, "auth.json")
	fs.HomeAccountsPath = filepath.Join(dir, "accounts.json")

	fake := &fakeApiClient{
		signInFn: func(req shared.SignInRequest) (*shared.SignInResponse, *shared.ApiError) {
			return &shared.SignInResponse{
				Token: "tok1",
				User:  &shared.User{Id: 7, Email: req.Email},
			}, nil
		},
		meFn: func() (*shared.User, *shared.ApiError) {
			return &shared.User{Id: 7, Email: "a@b.com"}, nil
		},
	}
	SetApiClient(fake)

	mu.Lock()
	Current = nil
	sessionStatus = SessionLoading
	fetchGen = 0
	mu.Unlock()

	return fake
}

func readPersistedAuth(t *testing.T) *types.ClientAuth {
	t.Helper()

	bytes, err := os.ReadFile(fs.HomeAuthPath)
	require.NoError(t, err)

	var auth types.ClientAuth
	require.NoError(t, json.Unmarshal(bytes, &auth))
	return &auth
}

func TestSignInPersistsServerToken(t *testing.T) {
	setupAuthTest(t)

	err := SignIn("a@b.com", "secret", "")
	require.NoError(t, err)

	session := GetSession()
	assert.Equal(t, SessionAuthenticated, session.Status)
	assert.Equal(t, int64(7), session.UserId)
	assert.Equal(t, int64(7), session.User.Id)

	persisted := readPersistedAuth(t)
	assert.Equal(t, "tok1", persisted.Token)
	assert.Equal(t, int64(7), persisted.UserId)
}

func TestSessionSnapshotCarriesAccountEmail(t *testing.T) {
	setupAuthTest(t)

	err := SignIn("a@b.com", "secret", "")
	require.NoError(t, err)

	session := GetSession()
	assert.Equal(t, "a@b.com", session.Email)
}

func TestSignInFailureLeavesPriorSession(t *testing.T) {
	fake := setupAuthTest(t)

	err := SignIn("a@b.com", "secret", "")
	require.NoError(t, err)
	before := GetSession()

	fake.signInFn = func(req shared.SignInRequest) (*shared.SignInResponse, *shared.ApiError) {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Status: 401, Msg: "invalid credentials"}
	}

	err = SignIn("a@b.com", "wrong", "")
	require.Error(t, err)

	apiErr, ok := err.(*shared.ApiError)
	require.True(t, ok)
	assert.Equal(t, shared.ApiErrorTypeAuth, apiErr.Type)
	assert.Equal(t, "invalid credentials", apiErr.Msg)

	after := GetSession()
	assert.Equal(t, before, after, "a rejected sign-in must not touch the prior session")
}

func TestSignInFailureGenericFallbackMessage(t *testing.T) {
	fake := setupAuthTest(t)

	fake.signInFn = func(req shared.SignInRequest) (*shared.SignInResponse, *shared.ApiError) {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Status: 401}
	}

	err := SignIn("a@b.com", "wrong", "")
	require.Error(t, err)

	apiErr, ok := err.(*shared.ApiError)
	require.True(t, ok)
	assert.Equal(t, "invalid email or password", apiErr.Msg)
}

func TestFetchUserWithoutTokenIsAnonymousAndOffline(t *testing.T) {
	fake := setupAuthTest(t)

	err := FetchUser()
	require.NoError(t, err)

	assert.Equal(t, SessionAnonymous, Status())
	assert.Zero(t, fake.meCalls, "no token means no network call")
}

func TestFetchUserExpiredTokenClearsSession(t *testing.T) {
	fake := setupAuthTest(t)

	err := SignIn("a@b.com", "secret", "")
	require.NoError(t, err)

	fake.meFn = func() (*shared.User, *shared.ApiError) {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeExpiredToken, Status: 401, Msg: "session expired"}
	}

	err = FetchUser()
	require.NoError(t, err)

	assert.Equal(t, SessionAnonymous, Status())
	assert.Nil(t, Current)

	_, statErr := os.Stat(fs.HomeAuthPath)
	assert.True(t, os.IsNotExist(statErr), "auth.json should be removed")
}

func TestSignOutIsIdempotent(t *testing.T) {
	setupAuthTest(t)

	err := SignIn("a@b.com", "secret", "")
	require.NoError(t, err)

	SignOut()
	once := GetSession()

	SignOut()
	twice := GetSession()

	assert.Equal(t, SessionAnonymous, once.Status)
	assert.Equal(t, once, twice)
}

func TestStaleFetchUserDoesNotClobberNewerState(t *testing.T) {
	fake := setupAuthTest(t)

	err := SignIn("a@b.com", "secret", "")
	require.NoError(t, err)

	release := make(chan struct{})
	fake.meFn = func() (*shared.User, *shared.ApiError) {
		<-release
		return &shared.User{Id: 7, Email: "a@b.com"}, nil
	}

	done := make(chan error)
	go func() {
		done <- FetchUser()
	}()

	// the user signs out while the who-am-I call is still in flight
	SignOut()
	close(release)
	require.NoError(t, <-done)

	assert.Equal(t, SessionAnonymous, Status(), "a stale fetch must not resurrect the session")
	assert.Nil(t, Current)
}
