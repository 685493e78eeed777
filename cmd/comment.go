package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/sivajeyabalan/blogapi/api"
	"github.com/sivajeyabalan/blogapi/auth"
	"github.com/sivajeyabalan/blogapi/lib"
	"github.com/sivajeyabalan/blogapi/shared"
	"github.com/sivajeyabalan/blogapi/term"
)

var commentCmd = &cobra.Command{
	Use:   "comment [post-id] [content]",
	Short: "Comment on a post",
	Args:  cobra.RangeArgs(1, 2),
	Run:   comment,
}

func init() {
	RootCmd.AddCommand(commentCmd)
}

func comment(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	postId := mustParseId(args[0], "post id")

	var content string
	var err error

	if len(args) > 1 {
		content = args[1]
	} else {
		content, err = term.GetRequiredUserStringInput("Comment:")

		if err != nil {
			term.OutputErrorAndExit("Error prompting comment: %v", err)
		}
	}

	if strings.TrimSpace(content) == "" {
		term.HandleApiError(&shared.ApiError{
			Type: shared.ApiErrorTypeValidation,
			Msg:  "comment content is required",
		})
	}

	view := lib.NewPostView(api.Client, postId)

	// the local copy is stale the moment the comment lands, so the view
	// refetches before rendering
	term.StartSpinner("")
	apiErr := view.AddComment(content)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	printFullPost(view.Post)
}
