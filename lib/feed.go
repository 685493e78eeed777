package lib

import (
	"github.com/sivajeyabalan/blogapi/shared"
	"github.com/sivajeyabalan/blogapi/types"
)

const DefaultPageSize = 10

// Feed holds one page of posts. Posts go stale the moment any mutation
// succeeds, so every mutation ends with a refetch of the current page and
// local state is never patched.
type Feed struct {
	client types.ApiClient

	Page       int
	Limit      int
	Posts      []*shared.Post
	TotalPages int
}

func NewFeed(client types.ApiClient, limit int) *Feed {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	return &Feed{client: client, Page: 1, Limit: limit}
}

// Load fetches a page and replaces the snapshot. A page past the end comes
// back from the server as an empty list, not an error, and is kept as-is.
func (f *Feed) Load(page int) *shared.ApiError {
	if page < 1 {
		page = 1
	}

	res, apiErr := f.client.GetPostsPage(page, f.Limit)
	if apiErr != nil {
		// keep the previous snapshot; the caller decides how to surface it
		return apiErr
	}

	f.Page = page
	f.Posts = res.Posts
	f.TotalPages = res.TotalPages

	return nil
}

// Refetch reloads the current page.
func (f *Feed) Refetch() *shared.ApiError {
	return f.Load(f.Page)
}

func (f *Feed) Publish(postId int64) *shared.ApiError {
	return f.mutate(func() *shared.ApiError {
		return f.client.PublishPost(postId)
	})
}

func (f *Feed) Delete(postId int64) *shared.ApiError {
	return f.mutate(func() *shared.ApiError {
		return f.client.DeletePost(postId)
	})
}

// mutate runs one mutation to completion, then refetches. The mutation and
// the refetch are never in flight together, and a failed mutation leaves
// the previous snapshot displayed.
func (f *Feed) mutate(op func() *shared.ApiError) *shared.ApiError {
	if apiErr := op(); apiErr != nil {
		return apiErr
	}

	return f.Refetch()
}
