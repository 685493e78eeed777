package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sivajeyabalan/blogapi/api"
	"github.com/sivajeyabalan/blogapi/auth"
	"github.com/sivajeyabalan/blogapi/shared"
	"github.com/sivajeyabalan/blogapi/term"
)

var newTitle string
var newContent string
var newImagePath string
var newPublish bool

var newCmd = &cobra.Command{
	Use:     "new",
	Aliases: []string{"n"},
	Short:   "Write a new post",
	Args:    cobra.NoArgs,
	Run:     newPost,
}

func init() {
	RootCmd.AddCommand(newCmd)

	newCmd.Flags().StringVar(&newTitle, "title", "", "Post title")
	newCmd.Flags().StringVar(&newContent, "content", "", "Post content (markdown)")
	newCmd.Flags().StringVar(&newImagePath, "image", "", "Path to an image to attach")
	newCmd.Flags().BoolVar(&newPublish, "publish", false, "Publish immediately instead of saving a draft")
}

func newPost(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	var err error

	title := strings.TrimSpace(newTitle)
	if title == "" {
		title, err = term.GetRequiredUserStringInput("Title:")

		if err != nil {
			term.OutputErrorAndExit("Error prompting title: %v", err)
		}
	}

	content := strings.TrimSpace(newContent)
	if content == "" {
		content, err = term.GetRequiredUserStringInput("Content:")

		if err != nil {
			term.OutputErrorAndExit("Error prompting content: %v", err)
		}
	}

	// empty fields never reach the network
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		term.HandleApiError(&shared.ApiError{
			Type: shared.ApiErrorTypeValidation,
			Msg:  "title and content are required",
		})
	}

	term.StartSpinner("✏️  Creating post...")
	post, apiErr := api.Client.CreatePost(shared.CreatePostParams{
		Title:       title,
		Content:     content,
		IsPublished: newPublish,
		ImagePath:   newImagePath,
	})
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	if post.Published {
		fmt.Printf("✅ Published post %s\n", color.New(color.Bold, term.ColorHiGreen).Sprintf("#%d • %s", post.Id, post.Title))
	} else {
		fmt.Printf("✅ Saved draft %s\n", color.New(color.Bold, term.ColorHiGreen).Sprintf("#%d • %s", post.Id, post.Title))
		fmt.Println()
		term.PrintCmds("", "publish", "profile")
	}
}
