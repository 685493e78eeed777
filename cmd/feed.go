package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/sivajeyabalan/blogapi/api"
	"github.com/sivajeyabalan/blogapi/auth"
	"github.com/sivajeyabalan/blogapi/format"
	"github.com/sivajeyabalan/blogapi/lib"
	"github.com/sivajeyabalan/blogapi/term"
)

var feedPage int
var feedLimit int

var feedCmd = &cobra.Command{
	Use:     "feed",
	Aliases: []string{"f"},
	Short:   "Browse the post feed",
	Args:    cobra.NoArgs,
	Run:     feed,
}

func init() {
	RootCmd.AddCommand(feedCmd)

	feedCmd.Flags().IntVar(&feedPage, "page", 1, "Page to show")
	feedCmd.Flags().IntVar(&feedLimit, "limit", lib.DefaultPageSize, "Posts per page")
}

func feed(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	f := lib.NewFeed(api.Client, feedLimit)

	term.StartSpinner("")
	apiErr := f.Load(feedPage)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	renderFeed(f)
}

func renderFeed(f *lib.Feed) {
	if len(f.Posts) == 0 {
		if f.TotalPages > 0 && f.Page > f.TotalPages {
			fmt.Printf("🤷‍♂️ Page %d is past the end of the feed (%d pages)\n", f.Page, f.TotalPages)
		} else {
			fmt.Println("🤷‍♂️ No posts yet")
			fmt.Println()
			term.PrintCmds("", "new")
		}
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"#", "Title", "Author", "Likes", "Comments", "Created"})

	for _, post := range f.Posts {
		table.Append([]string{
			strconv.FormatInt(post.Id, 10),
			post.Title,
			post.Author.Email,
			strconv.Itoa(post.LikeCount()),
			strconv.Itoa(len(post.Comments)),
			format.Time(post.CreatedAt),
		})
	}

	table.Render()

	fmt.Printf("Page %s of %s\n",
		color.New(color.Bold, term.ColorHiCyan).Sprint(f.Page),
		color.New(color.Bold, term.ColorHiCyan).Sprint(f.TotalPages))
	fmt.Println()
	term.PrintCmds("", "show", "like", "comment")
}

func mustParseId(arg, label string) int64 {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 1 {
		term.OutputErrorAndExit("%s must be a positive number, got %q", label, arg)
	}
	return id
}
