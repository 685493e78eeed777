package shared

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type RegisterRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Profession string `json:"profession"`
}

type RegisterResponse struct {
	Token  string `json:"token"`
	UserId int64  `json:"userId"`
}

// CreatePostParams is sent as multipart form data, not JSON, since the
// optional image rides along in the same request.
type CreatePostParams struct {
	Title       string
	Content     string
	IsPublished bool
	ImagePath   string
}

type UpdatePostRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Published bool   `json:"published"`
}

type CreateCommentRequest struct {
	Content string `json:"content"`
}

type UpdateCommentRequest struct {
	Content string `json:"content"`
}

type UserPostsResponse struct {
	Published   []*Post `json:"published"`
	Unpublished []*Post `json:"unpublished"`
}

type ProfileResponse struct {
	User  *User   `json:"user"`
	Posts []*Post `json:"posts"`
}
