package auth

import (
	"encoding/json"
	"os"

	"github.com/sivajeyabalan/blogapi/fs"
	"github.com/sivajeyabalan/blogapi/term"
	"github.com/sivajeyabalan/blogapi/types"
)

// MustResolveAuth is the entry gate every protected command calls before
// doing anything else. It loads the persisted session, and when the guard
// says the user is anonymous it runs the interactive sign-in flow in place
// of the requested view. Exits on unrecoverable errors.
func MustResolveAuth() {
	if apiClient == nil {
		term.OutputErrorAndExit("error resolving auth: api client not set")
	}

	loadPersistedAuth()

	switch Resolve(Status()) {
	case GuardProceed:
		return
	case GuardSignIn:
		err := promptInitialAuth()

		if err != nil {
			term.OutputErrorAndExit("error resolving auth: %v", err)
		}
	case GuardWait:
		// loadPersistedAuth always resolves the status, so the guard can't
		// still be waiting here
		term.OutputErrorAndExit("error resolving auth: session did not resolve")
	}
}

// loadPersistedAuth reads auth.json into the store. A present token counts
// as authenticated. It was validated by the fetch-user call that followed
// sign-in, and any staleness surfaces as a 401 on the first authorized
// request.
func loadPersistedAuth() {
	bytes, err := os.ReadFile(fs.HomeAuthPath)

	if err != nil {
		if os.IsNotExist(err) {
			mu.Lock()
			sessionStatus = SessionAnonymous
			mu.Unlock()
			return
		}
		term.OutputErrorAndExit("error reading auth.json: %v", err)
	}

	var auth types.ClientAuth
	err = json.Unmarshal(bytes, &auth)
	if err != nil {
		term.OutputErrorAndExit("error unmarshalling auth.json: %v", err)
	}

	mu.Lock()
	Current = &auth
	if auth.Token == "" {
		sessionStatus = SessionAnonymous
	} else {
		sessionStatus = SessionAuthenticated
	}
	mu.Unlock()
}
