package models

// Post is a blog post mirrored from the upstream placeholder API.
// Rows are only written by the ingestion task.
type Post struct {
	ID     int    `json:"id" gorm:"primaryKey;autoIncrement:false"`
	UserID int    `json:"userId" gorm:"column:user_id;not null"`
	Title  string `json:"title" gorm:"type:text;not null"`
	Body   string `json:"body" gorm:"type:text;not null"`
}

func (Post) TableName() string {
	return "posts"
}

// PostWithLike is a post annotated with the caller's like status.
type PostWithLike struct {
	Post
	IsLiked bool `json:"isLiked"`
}

// ExternalPost is the upstream record shape. Pointer fields let validation
// tell a missing field apart from a zero value.
type ExternalPost struct {
	UserID *int    `json:"userId" validate:"required"`
	ID     *int    `json:"id" validate:"required"`
	Title  *string `json:"title" validate:"required"`
	Body   *string `json:"body" validate:"required"`
}

func (p ExternalPost) ToPost() Post {
	return Post{
		ID:     *p.ID,
		UserID: *p.UserID,
		Title:  *p.Title,
		Body:   *p.Body,
	}
}

type GetAllInput struct {
	Page     *int   `json:"page" binding:"omitempty,min=1"`
	PageSize *int   `json:"pageSize" binding:"omitempty,min=1"`
	Filter   string `json:"filter"`
}

type GetByIDInput struct {
	ID int `json:"id" binding:"required,min=1"`
}

type PostIDInput struct {
	PostID int `json:"postId" binding:"required,min=1"`
}

type Pagination struct {
	Page            int   `json:"page"`
	PageSize        int   `json:"pageSize"`
	TotalPostsCount int64 `json:"totalPostsCount"`
	TotalPages      int   `json:"totalPages"`
}

type PostsPage struct {
	Posts      []PostWithLike `json:"posts"`
	Pagination Pagination     `json:"pagination"`
}
