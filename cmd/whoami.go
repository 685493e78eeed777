package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sivajeyabalan/blogapi/auth"
	"github.com/sivajeyabalan/blogapi/term"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	Args:  cobra.NoArgs,
	Run:   whoami,
}

func init() {
	RootCmd.AddCommand(whoamiCmd)
}

func whoami(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	term.StartSpinner("")
	err := auth.FetchUser()
	term.StopSpinner()

	if err != nil {
		term.OutputErrorAndExit("Error fetching user: %v", err)
	}

	session := auth.GetSession()

	if session.Status != auth.SessionAuthenticated {
		term.OutputSimpleError("Your session has expired")
		fmt.Println()
		term.PrintCmds("", "sign-in")
		return
	}

	fmt.Printf("Signed in as %s\n", color.New(color.Bold, term.ColorHiGreen).Sprint(session.User.Email))
	if session.User.Profession != "" {
		fmt.Printf("Profession: %s\n", session.User.Profession)
	}
	fmt.Printf("User id: %d\n", session.UserId)
}
