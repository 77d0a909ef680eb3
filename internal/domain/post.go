package domain

import (
	"context"
	"time"
)

// Post visibility constants
const (
	PostVisibilityPublic      = "public"
	PostVisibilityConnections = "connections"
	PostVisibilityPrivate     = "private"
)

type Post struct {
	ID            string    `json:"id"`
	AuthorID      string    `json:"author_id"`
	Content       string    `json:"content"`
	Visibility    string    `json:"visibility"` // public / connections / private
	ImageURL      *string   `json:"image_url"`
	Images        []string  `json:"images"`
	LikesCount    int64     `json:"likes_count"`
	CommentsCount int64     `json:"comments_count"`
	SharesCount   int64     `json:"shares_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AuthorSummary is the denormalized profile slice attached to feed records.
type AuthorSummary struct {
	ID        string  `json:"id"`
	FullName  string  `json:"full_name"`
	Headline  *string `json:"headline"`
	AvatarURL *string `json:"avatar_url"`
}

// UnknownAuthor is attached to a post whose author record is missing.
func UnknownAuthor(id string) AuthorSummary {
	return AuthorSummary{ID: id, FullName: "Unknown User"}
}

// PostWithAuthor extends Post with its author summary, attached post-hoc
// by batched in-memory join rather than a SQL join.
type PostWithAuthor struct {
	Post
	Author AuthorSummary `json:"author"`
}

type PostComment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommentWithAuthor extends PostComment with its author summary.
type CommentWithAuthor struct {
	PostComment
	Author AuthorSummary `json:"author"`
}

type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id string) (*Post, error)
	Fetch(ctx context.Context, limit, offset int) ([]Post, error)
	Count(ctx context.Context) (int64, error)
	FetchByAuthor(ctx context.Context, authorID string) ([]Post, error)
	Delete(ctx context.Context, id, authorID string) error
	// Like inserts the like row and bumps likes_count in one transaction.
	Like(ctx context.Context, postID, userID string) error
	// Unlike removes the like row and decrements likes_count in one transaction.
	Unlike(ctx context.Context, postID, userID string) error
	HasLiked(ctx context.Context, postID, userID string) (bool, error)
	AddComment(ctx context.Context, comment *PostComment) error
	FetchComments(ctx context.Context, postID string) ([]PostComment, error)
}

type PostUsecase interface {
	CreatePost(ctx context.Context, post *Post) (*Post, error)
	GetPosts(ctx context.Context, page, limit int) ([]PostWithAuthor, int64, error)
	GetPostsByAuthor(ctx context.Context, authorID string) ([]PostWithAuthor, error)
	DeletePost(ctx context.Context, id, authorID string) error
	LikePost(ctx context.Context, postID, userID string) error
	UnlikePost(ctx context.Context, postID, userID string) error
	HasLikedPost(ctx context.Context, postID, userID string) (bool, error)
	AddComment(ctx context.Context, postID, authorID, content string) (*PostComment, error)
	GetComments(ctx context.Context, postID string) ([]CommentWithAuthor, error)
}
