package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sivajeyabalan/blogapi/api"
	"github.com/sivajeyabalan/blogapi/auth"
	"github.com/sivajeyabalan/blogapi/lib"
	"github.com/sivajeyabalan/blogapi/term"
)

var rmCmd = &cobra.Command{
	Use:   "rm [post-id | title-query]",
	Short: "Delete one of your posts",
	Args:  cobra.ExactArgs(1),
	Run:   rm,
}

func init() {
	RootCmd.AddCommand(rmCmd)
}

func rm(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	postId := resolveOwnPostId(args[0])

	term.StartSpinner("")
	post, apiErr := api.Client.GetPost(postId)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	confirmed, err := term.ConfirmYesNo("Delete %q? This can't be undone.", post.Title)
	if err != nil {
		term.OutputErrorAndExit("Error getting confirmation: %v", err)
	}

	if !confirmed {
		fmt.Println("🙅‍♂️ Canceled")
		return
	}

	// delete then refetch the feed so the removal is reflected
	f := lib.NewFeed(api.Client, lib.DefaultPageSize)

	term.StartSpinner("")
	apiErr = f.Delete(postId)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	fmt.Printf("🗑️  Deleted %q\n", post.Title)
	fmt.Println()
	renderFeed(f)
}
