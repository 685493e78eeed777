package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sivajeyabalan/blogapi/api"
	"github.com/sivajeyabalan/blogapi/auth"
	"github.com/sivajeyabalan/blogapi/lib"
	"github.com/sivajeyabalan/blogapi/term"
)

var publishCmd = &cobra.Command{
	Use:     "publish [post-id]",
	Aliases: []string{"pub"},
	Short:   "Publish one of your drafts",
	Args:    cobra.ExactArgs(1),
	Run:     publish,
}

func init() {
	RootCmd.AddCommand(publishCmd)
}

func publish(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	postId := mustParseId(args[0], "post id")

	// publish then refetch the feed, where the post now shows up
	f := lib.NewFeed(api.Client, lib.DefaultPageSize)

	term.StartSpinner("")
	apiErr := f.Publish(postId)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	fmt.Printf("✅ Post #%d published\n", postId)
	fmt.Println()
	renderFeed(f)
}
