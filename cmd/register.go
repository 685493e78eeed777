package cmd

import (
	"github.com/sivajeyabalan/blogapi/auth"
	"github.com/sivajeyabalan/blogapi/term"

	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new blog account",
	Args:  cobra.NoArgs,
	Run:   register,
}

func init() {
	RootCmd.AddCommand(registerCmd)
}

func register(cmd *cobra.Command, args []string) {
	err := auth.PromptRegister()

	if err != nil {
		term.OutputErrorAndExit("Error creating account: %v", err)
	}
}
