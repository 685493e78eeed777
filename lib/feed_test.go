package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sivajeyabalan/blogapi/shared"
)

// fakeFeedClient serves a paginated feed plus one post with server-side like
// state, and records the order of calls.
type fakeFeedClient struct {
	calls      []string
	likeErr    *shared.ApiError
	commentErr *shared.ApiError
	publishErr *shared.ApiError
	total      int
	likes      int
	comments   int
}

func (f *fakeFeedClient) GetPostsPage(page, limit int) (*shared.PaginatedPosts, *shared.ApiError) {
	f.calls = append(f.calls, "fetch")

	totalPages := (f.total + limit - 1) / limit

	var posts []*shared.Post
	if page <= totalPages {
		start := (page - 1) * limit
		end := start + limit
		if end > f.total {
			end = f.total
		}
		for i := start; i < end; i++ {
			posts = append(posts, &shared.Post{Id: int64(i + 1), Title: "post"})
		}
	}

	// pages past the end come back empty, not as errors
	return &shared.PaginatedPosts{Posts: posts, CurrentPage: page, TotalPages: totalPages}, nil
}

func (f *fakeFeedClient) GetPost(postId int64) (*shared.Post, *shared.ApiError) {
	f.calls = append(f.calls, "get")

	post := &shared.Post{Id: postId, Title: "post"}
	for i := 0; i < f.likes; i++ {
		post.Likes = append(post.Likes, int64(100+i))
	}
	for i := 0; i < f.comments; i++ {
		post.Comments = append(post.Comments, &shared.Comment{Id: int64(i + 1), Content: "c"})
	}
	return post, nil
}

func (f *fakeFeedClient) LikePost(postId int64) *shared.ApiError {
	f.calls = append(f.calls, "like")
	if f.likeErr != nil {
		return f.likeErr
	}
	f.likes++
	return nil
}

func (f *fakeFeedClient) CreateComment(postId int64, req shared.CreateCommentRequest) *shared.ApiError {
	f.calls = append(f.calls, "comment")
	if f.commentErr != nil {
		return f.commentErr
	}
	f.comments++
	return nil
}

func (f *fakeFeedClient) PublishPost(postId int64) *shared.ApiError {
	f.calls = append(f.calls, "publish")
	return f.publishErr
}

func (f *fakeFeedClient) DeletePost(postId int64) *shared.ApiError {
	f.calls = append(f.calls, "delete")
	return nil
}

func (f *fakeFeedClient) SignIn(req shared.SignInRequest, customHost string) (*shared.SignInResponse, *shared.ApiError) {
	return nil, nil
}
func (f *fakeFeedClient) Register(req shared.RegisterRequest, customHost string) (*shared.RegisterResponse, *shared.ApiError) {
	return nil, nil
}
func (f *fakeFeedClient) GetCurrentUser() (*shared.User, *shared.ApiError) { return nil, nil }
func (f *fakeFeedClient) CreatePost(params shared.CreatePostParams) (*shared.Post, *shared.ApiError) {
	return nil, nil
}
func (f *fakeFeedClient) UpdatePost(postId int64, req shared.UpdatePostRequest) *shared.ApiError {
	return nil
}
func (f *fakeFeedClient) UpdateComment(commentId int64, req shared.UpdateCommentRequest) *shared.ApiError {
	return nil
}
func (f *fakeFeedClient) GetUserPosts() (*shared.UserPostsResponse, *shared.ApiError) {
	return nil, nil
}
func (f *fakeFeedClient) GetProfile() (*shared.ProfileResponse, *shared.ApiError) {
	return nil, nil
}

func TestLoadReplacesSnapshot(t *testing.T) {
	client := &fakeFeedClient{total: 5}
	feed := NewFeed(client, 2)

	require.Nil(t, feed.Load(1))
	assert.Len(t, feed.Posts, 2)
	assert.Equal(t, 3, feed.TotalPages)

	require.Nil(t, feed.Load(3))
	assert.Len(t, feed.Posts, 1)
	assert.Equal(t, 3, feed.Page)
}

func TestPageBeyondEndIsEmptyNotAnError(t *testing.T) {
	client := &fakeFeedClient{total: 5}
	feed := NewFeed(client, 2)

	require.Nil(t, feed.Load(99))
	assert.Empty(t, feed.Posts)
	assert.Equal(t, 3, feed.TotalPages)
}

func TestFeedMutationCompletesBeforeRefetch(t *testing.T) {
	client := &fakeFeedClient{total: 5}
	feed := NewFeed(client, 2)
	require.Nil(t, feed.Load(1))

	require.Nil(t, feed.Publish(1))

	assert.Equal(t, []string{"fetch", "publish", "fetch"}, client.calls)
}

func TestFailedFeedMutationKeepsPriorSnapshotAndSkipsRefetch(t *testing.T) {
	client := &fakeFeedClient{total: 5}
	feed := NewFeed(client, 2)
	require.Nil(t, feed.Load(1))
	before := feed.Posts

	client.publishErr = &shared.ApiError{Type: shared.ApiErrorTypeOther, Status: 500, Msg: "boom"}

	apiErr := feed.Publish(1)
	require.NotNil(t, apiErr)

	assert.Equal(t, before, feed.Posts, "a failed mutation leaves the previous page displayed")
	assert.Equal(t, []string{"fetch", "publish"}, client.calls)
}

func TestPostMutationCompletesBeforeRefetch(t *testing.T) {
	client := &fakeFeedClient{}
	view := NewPostView(client, 1)

	require.Nil(t, view.AddComment("hi"))

	assert.Equal(t, []string{"comment", "get"}, client.calls)
	assert.Len(t, view.Post.Comments, 1)
}

func TestLikeRendersServerReportedCount(t *testing.T) {
	client := &fakeFeedClient{likes: 3}
	view := NewPostView(client, 1)

	require.Nil(t, view.Like())

	// whatever the server reports after the like, not a local increment
	assert.Equal(t, 4, view.Post.LikeCount())
}

func TestFailedPostMutationKeepsPriorCopy(t *testing.T) {
	client := &fakeFeedClient{}
	view := NewPostView(client, 1)
	require.Nil(t, view.Load())
	before := view.Post

	client.likeErr = &shared.ApiError{Type: shared.ApiErrorTypeOther, Status: 500, Msg: "boom"}

	apiErr := view.Like()
	require.NotNil(t, apiErr)

	assert.Same(t, before, view.Post, "a failed mutation leaves the previous copy displayed")
	assert.Equal(t, []string{"get", "like"}, client.calls)
}
