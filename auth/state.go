package auth

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sivajeyabalan/blogapi/fs"
	"github.com/sivajeyabalan/blogapi/types"
)

// Current is the active session, loaded from auth.json. It is the single
// source of truth for "is the user signed in, and as whom". All writes go
// through setAuth/clearSessionLocked under mu.
var Current *types.ClientAuth

// CurrentHost returns the active account's custom API host, or "" when none
// is set. Reads under mu so callers don't race a concurrent sign-out.
func CurrentHost() string {
	mu.Lock()
	defer mu.Unlock()

	if Current == nil {
		return ""
	}
	return Current.Host
}

func loadAccounts() ([]*types.ClientAccount, error) {
	bytes, err := os.ReadFile(fs.HomeAccountsPath)

	if err != nil {
		if os.IsNotExist(err) {
			// no accounts
			return []*types.ClientAccount{}, nil
		} else {
			return nil, fmt.Errorf("error reading accounts.json: %v", err)
		}
	}

	var accounts []*types.ClientAccount
	err = json.Unmarshal(bytes, &accounts)

	if err != nil {
		return nil, fmt.Errorf("error unmarshalling accounts.json: %v", err)
	}

	return accounts, nil
}

func setAuth(auth *types.ClientAuth) error {
	err := storeAccount(&auth.ClientAccount)

	if err != nil {
		return fmt.Errorf("error storing account: %v", err)
	}

	mu.Lock()
	Current = auth
	sessionStatus = SessionAuthenticated
	// invalidate any who-am-I call that was in flight against the old session
	fetchGen++
	mu.Unlock()

	err = writeCurrentAuth()

	if err != nil {
		return fmt.Errorf("error writing auth: %v", err)
	}

	return nil
}

func storeAccount(toStore *types.ClientAccount) error {
	accounts, err := loadAccounts()

	if err != nil {
		return fmt.Errorf("error loading accounts: %v", err)
	}

	found := false
	for i, account := range accounts {
		if account.UserId == toStore.UserId {
			accounts[i] = toStore
			found = true
			break
		}
	}

	if !found {
		accounts = append(accounts, toStore)
	}

	bytes, err := json.Marshal(accounts)

	if err != nil {
		return fmt.Errorf("error marshalling accounts: %v", err)
	}

	err = os.WriteFile(fs.HomeAccountsPath, bytes, os.ModePerm)

	if err != nil {
		return fmt.Errorf("error writing accounts: %v", err)
	}

	return nil
}

func writeCurrentAuth() error {
	mu.Lock()

	if Current == nil {
		mu.Unlock()
		return fmt.Errorf("error writing auth: auth not loaded")
	}

	bytes, err := json.Marshal(Current)
	mu.Unlock()

	if err != nil {
		return fmt.Errorf("error marshalling auth: %v", err)
	}

	err = os.WriteFile(fs.HomeAuthPath, bytes, os.ModePerm)

	if err != nil {
		return fmt.Errorf("error writing auth: %v", err)
	}

	return nil
}
