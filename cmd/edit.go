package cmd

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"github.com/sivajeyabalan/blogapi/api"
	"github.com/sivajeyabalan/blogapi/auth"
	"github.com/sivajeyabalan/blogapi/shared"
	"github.com/sivajeyabalan/blogapi/term"
)

var editPublish bool

var editCmd = &cobra.Command{
	Use:     "edit [post-id | title-query]",
	Aliases: []string{"e"},
	Short:   "Edit one of your posts",
	Args:    cobra.ExactArgs(1),
	Run:     edit,
}

func init() {
	RootCmd.AddCommand(editCmd)

	editCmd.Flags().BoolVar(&editPublish, "publish", false, "Also publish the post")
}

func edit(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	postId := resolveOwnPostId(args[0])

	term.StartSpinner("")
	post, apiErr := api.Client.GetPost(postId)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	title, err := term.GetUserStringInputWithDefault("Title:", post.Title)
	if err != nil {
		term.OutputErrorAndExit("Error prompting title: %v", err)
	}

	content, err := term.GetUserStringInputWithDefault("Content:", post.Content)
	if err != nil {
		term.OutputErrorAndExit("Error prompting content: %v", err)
	}

	if title == "" || content == "" {
		term.HandleApiError(&shared.ApiError{
			Type: shared.ApiErrorTypeValidation,
			Msg:  "title and content are required",
		})
	}

	term.StartSpinner("")
	apiErr = api.Client.UpdatePost(postId, shared.UpdatePostRequest{
		Title:     title,
		Content:   content,
		Published: post.Published || editPublish,
	})

	if apiErr != nil {
		term.StopSpinner()
		term.HandleApiError(apiErr)
	}

	updated, apiErr := api.Client.GetPost(postId)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	fmt.Println("✅ Post updated")
	fmt.Println()
	printFullPost(updated)
}

// resolveOwnPostId takes either a numeric id or a fuzzy title query against
// the user's own posts.
func resolveOwnPostId(arg string) int64 {
	if id, err := strconv.ParseInt(arg, 10, 64); err == nil && id > 0 {
		return id
	}

	term.StartSpinner("")
	res, apiErr := api.Client.GetUserPosts()
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	posts := append(append([]*shared.Post{}, res.Published...), res.Unpublished...)

	var titles []string
	byTitle := map[string]*shared.Post{}
	for _, post := range posts {
		titles = append(titles, post.Title)
		byTitle[post.Title] = post
	}

	matches := fuzzy.RankFindNormalizedFold(arg, titles)
	if len(matches) == 0 {
		term.OutputErrorAndExit("No post matching %q", arg)
	}

	if len(matches) == 1 {
		return byTitle[matches[0].Target].Id
	}

	sort.Sort(matches)
	var options []string
	for _, match := range matches {
		options = append(options, match.Target)
	}

	selected, err := term.SelectFromList("Which post?", options)
	if err != nil {
		term.OutputErrorAndExit("Error selecting post: %v", err)
	}

	return byTitle[selected].Id
}
