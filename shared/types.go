package shared

import "time"

type User struct {
	Id         int64     `json:"id"`
	Email      string    `json:"email"`
	Profession string    `json:"profession,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Author is the embedded author record the server attaches to posts and
// comments. Only the email is guaranteed to be present.
type Author struct {
	Email string `json:"email"`
}

type Post struct {
	Id        int64      `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	ImageUrl  string     `json:"imageUrl,omitempty"`
	Published bool       `json:"published"`
	AuthorId  int64      `json:"authorId"`
	Author    Author     `json:"author"`
	CreatedAt time.Time  `json:"createdAt"`
	Likes     []int64    `json:"likes"`
	Comments  []*Comment `json:"comments"`
}

type Comment struct {
	Id        int64     `json:"id"`
	Content   string    `json:"content"`
	AuthorId  int64     `json:"authorId"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

// PaginatedPosts is a single page of the feed. It is rebuilt on every page
// change and after every mutation, never patched in place.
type PaginatedPosts struct {
	Posts       []*Post `json:"posts"`
	CurrentPage int     `json:"currentPage"`
	TotalPages  int     `json:"totalPages"`
}

func (p *Post) LikeCount() int {
	return len(p.Likes)
}

func (p *Post) LikedBy(userId int64) bool {
	for _, id := range p.Likes {
		if id == userId {
			return true
		}
	}
	return false
}
