package api

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sivajeyabalan/blogapi/auth"
	"github.com/sivajeyabalan/blogapi/fs"
	"github.com/sivajeyabalan/blogapi/types"
)

// Parallel authorized calls can race a forced sign-out when one of them comes
// back 401. Host resolution has to read the session through the store's lock,
// the same way the auth header does.
func TestHostResolutionDuringSignOut(t *testing.T) {
	dir := t.TempDir()
	fs.HomeBlogDir = dir
	fs.HomeAuthPath = filepath.Join(dir, "auth.json")
	fs.HomeAccountsPath = filepath.Join(dir, "accounts.json")
	t.Setenv("BLOG_API_HOST", "")

	auth.Current = &types.ClientAuth{
		ClientAccount: types.ClientAccount{
			Email:  "a@b.com",
			UserId: 7,
			Token:  "tok1",
			Host:   "http://custom.example",
		},
	}
	t.Cleanup(func() { auth.Current = nil })

	assert.Equal(t, "http://custom.example", GetApiHost())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			GetApiHost()
		}
	}()

	auth.SignOut()
	<-done

	assert.Equal(t, defaultApiHost, GetApiHost())
}
