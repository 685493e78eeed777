package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"

	"github.com/sivajeyabalan/blogapi/api"
	"github.com/sivajeyabalan/blogapi/auth"
	"github.com/sivajeyabalan/blogapi/format"
	"github.com/sivajeyabalan/blogapi/shared"
	"github.com/sivajeyabalan/blogapi/term"
)

var profileCmd = &cobra.Command{
	Use:     "profile",
	Aliases: []string{"pf"},
	Short:   "Show your profile and posts",
	Args:    cobra.NoArgs,
	Run:     profile,
}

func init() {
	RootCmd.AddCommand(profileCmd)
}

func profile(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	errCh := make(chan *shared.ApiError, 2)

	var profileRes *shared.ProfileResponse
	var postsRes *shared.UserPostsResponse

	term.StartSpinner("")

	go func() {
		res, apiErr := api.Client.GetProfile()
		profileRes = res
		errCh <- apiErr
	}()

	go func() {
		res, apiErr := api.Client.GetUserPosts()
		postsRes = res
		errCh <- apiErr
	}()

	for i := 0; i < 2; i++ {
		if apiErr := <-errCh; apiErr != nil {
			term.StopSpinner()
			term.HandleApiError(apiErr)
		}
	}

	term.StopSpinner()

	user := profileRes.User
	fmt.Printf("%s\n", color.New(color.Bold, term.ColorHiGreen).Sprint(user.Email))
	if user.Profession != "" {
		fmt.Printf("%s\n", user.Profession)
	}
	fmt.Printf("Joined %s\n", format.Time(user.CreatedAt))
	fmt.Println()

	tree := treeprint.New()
	tree.SetValue("posts")

	published := tree.AddBranch(fmt.Sprintf("published (%d)", len(postsRes.Published)))
	for _, post := range postsRes.Published {
		published.AddNode(postNodeLabel(post))
	}

	drafts := tree.AddBranch(fmt.Sprintf("drafts (%d)", len(postsRes.Unpublished)))
	for _, post := range postsRes.Unpublished {
		drafts.AddNode(postNodeLabel(post))
	}

	fmt.Println(tree.String())

	if len(postsRes.Unpublished) > 0 {
		term.PrintCmds("", "publish", "edit")
	} else {
		term.PrintCmds("", "new")
	}
}

func postNodeLabel(post *shared.Post) string {
	return fmt.Sprintf("#%d %s • ❤️ %d • %s", post.Id, post.Title, post.LikeCount(), format.Time(post.CreatedAt))
}
