package types

import (
	"github.com/sivajeyabalan/blogapi/shared"
)

type ApiClient interface {
	SignIn(req shared.SignInRequest, customHost string) (*shared.SignInResponse, *shared.ApiError)
	Register(req shared.RegisterRequest, customHost string) (*shared.RegisterResponse, *shared.ApiError)
	GetCurrentUser() (*shared.User, *shared.ApiError)

	GetPostsPage(page, limit int) (*shared.PaginatedPosts, *shared.ApiError)
	GetPost(postId int64) (*shared.Post, *shared.ApiError)
	CreatePost(params shared.CreatePostParams) (*shared.Post, *shared.ApiError)
	UpdatePost(postId int64, req shared.UpdatePostRequest) *shared.ApiError
	DeletePost(postId int64) *shared.ApiError
	PublishPost(postId int64) *shared.ApiError
	LikePost(postId int64) *shared.ApiError

	CreateComment(postId int64, req shared.CreateCommentRequest) *shared.ApiError
	UpdateComment(commentId int64, req shared.UpdateCommentRequest) *shared.ApiError

	GetUserPosts() (*shared.UserPostsResponse, *shared.ApiError)
	GetProfile() (*shared.ProfileResponse, *shared.ApiError)
}
