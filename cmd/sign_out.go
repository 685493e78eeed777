package cmd

import (
	"fmt"

	"github.com/sivajeyabalan/blogapi/auth"

	"github.com/spf13/cobra"
)

var signOutCmd = &cobra.Command{
	Use:   "sign-out",
	Short: "Sign out of the current account",
	Args:  cobra.NoArgs,
	Run:   signOut,
}

func init() {
	RootCmd.AddCommand(signOutCmd)
}

func signOut(cmd *cobra.Command, args []string) {
	// no guard here. Signing out while already anonymous is a no-op
	auth.SignOut()
	fmt.Println("✅ Signed out")
}
