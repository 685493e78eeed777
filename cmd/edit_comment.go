package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sivajeyabalan/blogapi/api"
	"github.com/sivajeyabalan/blogapi/auth"
	"github.com/sivajeyabalan/blogapi/shared"
	"github.com/sivajeyabalan/blogapi/term"
)

var editCommentCmd = &cobra.Command{
	Use:   "edit-comment [comment-id] [content]",
	Short: "Edit one of your comments",
	Args:  cobra.RangeArgs(1, 2),
	Run:   editComment,
}

func init() {
	RootCmd.AddCommand(editCommentCmd)
}

func editComment(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	commentId := mustParseId(args[0], "comment id")

	var content string
	var err error

	if len(args) > 1 {
		content = args[1]
	} else {
		content, err = term.GetRequiredUserStringInput("New content:")

		if err != nil {
			term.OutputErrorAndExit("Error prompting content: %v", err)
		}
	}

	if strings.TrimSpace(content) == "" {
		term.HandleApiError(&shared.ApiError{
			Type: shared.ApiErrorTypeValidation,
			Msg:  "comment content is required",
		})
	}

	term.StartSpinner("")
	apiErr := api.Client.UpdateComment(commentId, shared.UpdateCommentRequest{Content: content})
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	fmt.Println("✅ Comment updated")
}
