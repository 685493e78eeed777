package lib

import (
	"github.com/sivajeyabalan/blogapi/shared"
	"github.com/sivajeyabalan/blogapi/types"
)

// PostView holds one full post with its comments. Same read-through rule as
// the feed: a mutation makes the copy stale, so every mutation ends with a
// refetch of the post.
type PostView struct {
	client types.ApiClient

	PostId int64
	Post   *shared.Post
}

func NewPostView(client types.ApiClient, postId int64) *PostView {
	return &PostView{client: client, PostId: postId}
}

// Load fetches the post and replaces the copy.
func (v *PostView) Load() *shared.ApiError {
	post, apiErr := v.client.GetPost(v.PostId)
	if apiErr != nil {
		// keep the previous copy; the caller decides how to surface it
		return apiErr
	}

	v.Post = post
	return nil
}

// Like sends the like and refetches. Whether a second like from the same
// user double-counts is the server's contract; the view just shows whatever
// count comes back.
func (v *PostView) Like() *shared.ApiError {
	return v.mutate(func() *shared.ApiError {
		return v.client.LikePost(v.PostId)
	})
}

func (v *PostView) AddComment(content string) *shared.ApiError {
	return v.mutate(func() *shared.ApiError {
		return v.client.CreateComment(v.PostId, shared.CreateCommentRequest{Content: content})
	})
}

// mutate runs one mutation to completion, then refetches the post. The
// mutation and the refetch are never in flight together, and a failed
// mutation leaves the previous copy displayed.
func (v *PostView) mutate(op func() *shared.ApiError) *shared.ApiError {
	if apiErr := op(); apiErr != nil {
		return apiErr
	}

	return v.Load()
}
