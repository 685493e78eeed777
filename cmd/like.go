package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sivajeyabalan/blogapi/api"
	"github.com/sivajeyabalan/blogapi/auth"
	"github.com/sivajeyabalan/blogapi/lib"
	"github.com/sivajeyabalan/blogapi/term"
)

var likeCmd = &cobra.Command{
	Use:   "like [post-id]",
	Short: "Like a post",
	Args:  cobra.ExactArgs(1),
	Run:   like,
}

func init() {
	RootCmd.AddCommand(likeCmd)
}

func like(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	postId := mustParseId(args[0], "post id")

	view := lib.NewPostView(api.Client, postId)

	// like then refetch. The server decides what a repeat like means, we
	// just render the count it reports
	term.StartSpinner("")
	apiErr := view.Like()
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	fmt.Printf("❤️  %s now has %d likes\n", view.Post.Title, view.Post.LikeCount())
}
