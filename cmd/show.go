package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/sivajeyabalan/blogapi/api"
	"github.com/sivajeyabalan/blogapi/auth"
	"github.com/sivajeyabalan/blogapi/format"
	"github.com/sivajeyabalan/blogapi/shared"
	"github.com/sivajeyabalan/blogapi/term"
)

var showOpenImage bool

var showCmd = &cobra.Command{
	Use:   "show [post-id]",
	Short: "Read a post with its comments",
	Args:  cobra.ExactArgs(1),
	Run:   show,
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolVar(&showOpenImage, "open-image", false, "Open the post's image in your browser")
}

func show(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	postId := mustParseId(args[0], "post id")

	term.StartSpinner("")
	post, apiErr := api.Client.GetPost(postId)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	printFullPost(post)

	if showOpenImage {
		if post.ImageUrl == "" {
			term.OutputSimpleError("This post has no image")
			return
		}

		url := post.ImageUrl
		if strings.HasPrefix(url, "/") {
			url = api.GetApiHost() + url
		}

		if err := browser.OpenURL(url); err != nil {
			term.OutputSimpleError("Failed to open browser: %v", err)
		}
	}
}

func printFullPost(post *shared.Post) {
	title := color.New(color.Bold, term.ColorHiCyan).Sprint(post.Title)
	byline := fmt.Sprintf("by %s • %s", post.Author.Email, format.Time(post.CreatedAt))

	fmt.Println(title)
	fmt.Println(color.New(color.Faint).Sprint(byline))

	if post.ImageUrl != "" {
		fmt.Println(color.New(color.Faint).Sprintf("image: %s", post.ImageUrl))
	}

	fmt.Println()

	md, err := term.GetMarkdown(post.Content)
	if err != nil {
		// fall back to plain wrapped text when rendering fails
		fmt.Println(term.GetPlain(post.Content))
	} else {
		fmt.Println(md)
	}

	fmt.Printf("❤️  %d", post.LikeCount())
	if !post.Published {
		fmt.Printf(" • %s", color.New(term.ColorHiYellow).Sprint("draft"))
	}
	fmt.Println()
	fmt.Println()

	printComments(post)
}

func printComments(post *shared.Post) {
	heading := color.New(color.Bold).Sprintf("Comments (%d)", len(post.Comments))
	fmt.Println(heading)

	if len(post.Comments) == 0 {
		fmt.Println(term.GetPlain("No comments yet. Be the first to comment!"))
		return
	}

	for _, comment := range post.Comments {
		fmt.Printf("  %s %s %s\n",
			color.New(color.Bold).Sprintf("#%d", comment.Id),
			comment.Author.Email,
			color.New(color.Faint).Sprint(format.Time(comment.CreatedAt)))
		fmt.Println(term.GetPlain(comment.Content))
		fmt.Println()
	}
}
