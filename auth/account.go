package auth

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/sivajeyabalan/blogapi/shared"
	"github.com/sivajeyabalan/blogapi/term"
	"github.com/sivajeyabalan/blogapi/types"
)

const (
	AuthSignInOption   = "Sign in to an existing account"
	AuthRegisterOption = "Create a new account"
)

func promptInitialAuth() error {
	selected, err := term.SelectFromList("👋 Hey there!\nYou aren't signed in on this computer.\nWhat would you like to do?", []string{AuthSignInOption, AuthRegisterOption})

	if err != nil {
		return fmt.Errorf("error selecting auth option: %v", err)
	}

	switch selected {
	case AuthSignInOption:
		err = SelectOrSignIn()

		if err != nil {
			return fmt.Errorf("error signing in: %v", err)
		}

	case AuthRegisterOption:
		err = PromptRegister()

		if err != nil {
			return fmt.Errorf("error creating account: %v", err)
		}
	}

	return nil
}

const AddAccountOption = "Sign in to another account"

// SelectOrSignIn offers the accounts already stored on this machine, or a
// fresh credentials prompt.
func SelectOrSignIn() error {
	accounts, err := loadAccounts()

	if err != nil {
		return fmt.Errorf("error loading accounts: %v", err)
	}

	if len(accounts) == 0 {
		return promptSignIn("")
	}

	var options []string
	for _, account := range accounts {
		options = append(options, account.Email)
	}
	options = append(options, AddAccountOption)

	selectedOpt, err := term.SelectFromList("Select an account:", options)

	if err != nil {
		return fmt.Errorf("error selecting account: %v", err)
	}

	if selectedOpt == AddAccountOption {
		return promptSignIn("")
	}

	var selected *types.ClientAccount
	for i, opt := range options {
		if selectedOpt == opt {
			selected = accounts[i]
			break
		}
	}

	if selected == nil {
		return fmt.Errorf("error selecting account: account not found")
	}

	err = setAuth(&types.ClientAuth{
		ClientAccount: *selected,
	})

	if err != nil {
		return fmt.Errorf("error setting auth: %v", err)
	}

	// validate the stored token; it may have expired since the last run
	term.StartSpinner("")
	err = FetchUser()
	term.StopSpinner()

	if err != nil {
		return fmt.Errorf("error fetching user: %v", err)
	}

	if Status() != SessionAuthenticated {
		term.OutputSimpleError("Your session for %s has expired", selected.Email)
		return promptSignIn(selected.Email)
	}

	printSignedIn()
	return nil
}

// promptSignIn collects credentials and signs in, re-prompting inline when
// the server rejects them.
func promptSignIn(email string) error {
	var err error

	if email == "" {
		email, err = term.GetRequiredUserStringInput("Your email:")

		if err != nil {
			return fmt.Errorf("error prompting email: %v", err)
		}
	}

	for {
		password, err := term.GetUserPasswordInput("Your password:")

		if err != nil {
			return fmt.Errorf("error prompting password: %v", err)
		}

		if password == "" {
			term.OutputSimpleError("Password is required")
			continue
		}

		term.StartSpinner("")
		err = SignIn(email, password, "")
		term.StopSpinner()

		if err == nil {
			break
		}

		if apiErr, ok := err.(*shared.ApiError); ok && apiErr.Type == shared.ApiErrorTypeAuth {
			term.OutputSimpleError("%s", apiErr.Msg)
			continue
		}

		return fmt.Errorf("error signing in: %v", err)
	}

	printSignedIn()
	return nil
}

// PromptRegister runs the interactive account creation flow.
func PromptRegister() error {
	email, err := term.GetRequiredUserStringInput("Your email:")

	if err != nil {
		return fmt.Errorf("error prompting email: %v", err)
	}

	var password string
	for {
		password, err = term.GetUserPasswordInput("Choose a password:")

		if err != nil {
			return fmt.Errorf("error prompting password: %v", err)
		}

		if password == "" {
			term.OutputSimpleError("Password is required")
			continue
		}

		confirm, err := term.GetUserPasswordInput("Confirm password:")

		if err != nil {
			return fmt.Errorf("error prompting password: %v", err)
		}

		if confirm != password {
			term.OutputSimpleError("Passwords don't match")
			continue
		}

		break
	}

	profession, err := term.GetUserStringInput("Your profession (optional):")

	if err != nil {
		return fmt.Errorf("error prompting profession: %v", err)
	}

	term.StartSpinner("🌟 Creating account...")
	err = Register(email, password, profession, "")
	term.StopSpinner()

	if err != nil {
		if apiErr, ok := err.(*shared.ApiError); ok && apiErr.Type == shared.ApiErrorTypeAuth {
			term.OutputSimpleError("%s", apiErr.Msg)
			return PromptRegister()
		}
		return fmt.Errorf("error creating account: %v", err)
	}

	printSignedIn()
	return nil
}

func printSignedIn() {
	session := GetSession()
	if session.Status != SessionAuthenticated {
		return
	}

	email := session.Email
	if session.User != nil {
		email = session.User.Email
	}

	fmt.Printf("✅ Signed in as %s\n", color.New(color.Bold, term.ColorHiGreen).Sprint(email))
	fmt.Println()

	term.PrintCmds("", "feed", "new", "profile")
}
