package auth

import (
	"fmt"
	"os"
	"sync"

	"github.com/sivajeyabalan/blogapi/fs"
	"github.com/sivajeyabalan/blogapi/shared"
	"github.com/sivajeyabalan/blogapi/types"
)

type SessionStatus string

const (
	// SessionLoading only exists before the first FetchUser resolves. It is
	// never re-entered. Background refreshes keep the previous status until
	// they finish.
	SessionLoading SessionStatus = "loading"

	SessionAuthenticated SessionStatus = "authenticated"
	SessionAnonymous     SessionStatus = "anonymous"
)

// Session is a point-in-time snapshot of the store. Status is authenticated
// iff a token is present and the last who-am-I call succeeded.
type Session struct {
	Status SessionStatus
	Email  string
	Token  string
	UserId int64
	User   *shared.User
}

var mu sync.Mutex
var sessionStatus = SessionLoading

// fetchGen orders overlapping FetchUser calls: only the most recently
// initiated call is allowed to write its result back (last-write-wins).
var fetchGen uint64

func Status() SessionStatus {
	mu.Lock()
	defer mu.Unlock()
	return sessionStatus
}

func GetSession() Session {
	mu.Lock()
	defer mu.Unlock()

	session := Session{Status: sessionStatus}
	if Current != nil {
		session.Email = Current.Email
		session.Token = Current.Token
		session.UserId = Current.UserId
		session.User = Current.User
	}
	return session
}

// SignIn exchanges credentials for a token, persists the resulting session,
// then resolves the full user record. On failure the prior session is left
// untouched and the server's message (or a generic fallback) comes back as
// an auth error.
func SignIn(email, password, host string) error {
	res, apiErr := apiClient.SignIn(shared.SignInRequest{
		Email:    email,
		Password: password,
	}, host)

	if apiErr != nil {
		return signInError(apiErr)
	}

	if res.User == nil {
		return fmt.Errorf("error signing in: server returned no user")
	}

	err := setAuth(&types.ClientAuth{
		ClientAccount: types.ClientAccount{
			Email:  email,
			UserId: res.User.Id,
			Token:  res.Token,
			Host:   host,
		},
		User: res.User,
	})

	if err != nil {
		return fmt.Errorf("error setting auth: %v", err)
	}

	return FetchUser()
}

// Register creates an account, then follows the same persist-and-fetch path
// as SignIn.
func Register(email, password, profession, host string) error {
	res, apiErr := apiClient.Register(shared.RegisterRequest{
		Email:      email,
		Password:   password,
		Profession: profession,
	}, host)

	if apiErr != nil {
		return signInError(apiErr)
	}

	err := setAuth(&types.ClientAuth{
		ClientAccount: types.ClientAccount{
			Email:  email,
			UserId: res.UserId,
			Token:  res.Token,
			Host:   host,
		},
	})

	if err != nil {
		return fmt.Errorf("error setting auth: %v", err)
	}

	return FetchUser()
}

// FetchUser resolves the persisted token to a user record. With no token it
// resolves immediately to anonymous without touching the network. Any
// failure, including an expired or invalid token, clears the session, the
// same end state as SignOut. Safe to call repeatedly.
func FetchUser() error {
	mu.Lock()

	if Current == nil || Current.Token == "" {
		sessionStatus = SessionAnonymous
		mu.Unlock()
		return nil
	}

	fetchGen++
	gen := fetchGen
	mu.Unlock()

	user, apiErr := apiClient.GetCurrentUser()

	mu.Lock()
	defer mu.Unlock()

	if gen != fetchGen {
		// a newer FetchUser was initiated while this one was in flight;
		// its result is authoritative, not ours
		return nil
	}

	if apiErr != nil {
		clearSessionLocked()
		if apiErr.Type == shared.ApiErrorTypeExpiredToken {
			return nil
		}
		return fmt.Errorf("error fetching user: %v", apiErr.Msg)
	}

	Current.User = user
	Current.UserId = user.Id
	sessionStatus = SessionAuthenticated

	mu.Unlock()
	err := writeCurrentAuth()
	mu.Lock()

	if err != nil {
		return fmt.Errorf("error persisting session: %v", err)
	}

	return nil
}

// SignOut clears the persisted token and resets the session to anonymous.
// No network call, never fails, and calling it twice lands in the same state
// as calling it once.
func SignOut() {
	mu.Lock()
	defer mu.Unlock()
	clearSessionLocked()
}

func clearSessionLocked() {
	Current = nil
	sessionStatus = SessionAnonymous
	fetchGen++

	err := os.Remove(fs.HomeAuthPath)
	if err != nil && !os.IsNotExist(err) {
		// the in-memory session is already gone; a failed file removal only
		// means the next run will find a token the server no longer honors
		fmt.Fprintf(os.Stderr, "error removing auth.json: %v\n", err)
	}
}

func signInError(apiErr *shared.ApiError) error {
	if apiErr.Type == shared.ApiErrorTypeNetwork {
		return apiErr
	}

	msg := apiErr.Msg
	if msg == "" {
		msg = "invalid email or password"
	}
	return &shared.ApiError{
		Type:   shared.ApiErrorTypeAuth,
		Status: apiErr.Status,
		Msg:    msg,
	}
}
