package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sivajeyabalan/blogapi/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of the blog CLI",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Version)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
