package usecase

import (
	"context"
	"errors"
	"time"

	"go-medlink-backend/internal/domain"
	"go-medlink-backend/pkg/apperror"

	"github.com/google/uuid"
)

type postUsecase struct {
	postRepo    domain.PostRepository
	profileRepo domain.ProfileRepository
	guard       domain.StoreGuard
}

func NewPostUsecase(postRepo domain.PostRepository, profileRepo domain.ProfileRepository, guard domain.StoreGuard) domain.PostUsecase {
	return &postUsecase{
		postRepo:    postRepo,
		profileRepo: profileRepo,
		guard:       guard,
	}
}

func (u *postUsecase) CreatePost(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	if post.AuthorID == "" {
		return nil, apperror.BadRequest("Author is required")
	}
	if post.Content == "" && post.ImageURL == nil && len(post.Images) == 0 {
		return nil, apperror.BadRequest("Post must have content or an image")
	}
	switch post.Visibility {
	case "":
		post.Visibility = domain.PostVisibilityPublic
	case domain.PostVisibilityPublic, domain.PostVisibilityConnections, domain.PostVisibilityPrivate:
	default:
		return nil, apperror.BadRequest("Invalid visibility")
	}
	if !u.guard.Ready(ctx) {
		return nil, apperror.Unavailable(nil)
	}

	now := time.Now()
	post.ID = uuid.NewString()
	post.CreatedAt = now
	post.UpdatedAt = now
	if post.Images == nil {
		post.Images = []string{}
	}

	if err := u.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPosts returns one page of the feed with author summaries attached.
// The offset is clamped to the known total row count so a page past the end
// returns an empty list instead of an error.
func (u *postUsecase) GetPosts(ctx context.Context, page, limit int) ([]domain.PostWithAuthor, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if !u.guard.Ready(ctx) {
		return []domain.PostWithAuthor{}, 0, nil
	}

	total, err := u.postRepo.Count(ctx)
	if err != nil {
		if absorb(u.guard, "GetPosts", err) {
			return []domain.PostWithAuthor{}, 0, nil
		}
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if int64(offset) >= total {
		return []domain.PostWithAuthor{}, total, nil
	}

	posts, err := u.postRepo.Fetch(ctx, limit, offset)
	if err != nil {
		if absorb(u.guard, "GetPosts", err) {
			// Count already succeeded, keep the total honest
			return []domain.PostWithAuthor{}, total, nil
		}
		return nil, 0, err
	}

	return u.attachAuthors(ctx, posts), total, nil
}

// GetPostsByAuthor returns the author's posts newest-first, each with a
// non-nil author summary.
func (u *postUsecase) GetPostsByAuthor(ctx context.Context, authorID string) ([]domain.PostWithAuthor, error) {
	if authorID == "" {
		return nil, apperror.BadRequest("Author ID is required")
	}
	if !u.guard.Ready(ctx) {
		return []domain.PostWithAuthor{}, nil
	}

	posts, err := u.postRepo.FetchByAuthor(ctx, authorID)
	if err != nil {
		if absorb(u.guard, "GetPostsByAuthor", err) {
			return []domain.PostWithAuthor{}, nil
		}
		return nil, err
	}
	return u.attachAuthors(ctx, posts), nil
}

// attachAuthors performs the manual denormalization step: distinct author
// IDs, one batched profile fetch, in-memory join. A post whose author record
// is missing (or whose fetch failed) gets the "Unknown User" placeholder.
func (u *postUsecase) attachAuthors(ctx context.Context, posts []domain.Post) []domain.PostWithAuthor {
	shaped := make([]domain.PostWithAuthor, len(posts))
	for i, p := range posts {
		shaped[i] = domain.PostWithAuthor{Post: p}
	}

	ids := distinctKeys(shaped, func(p *domain.PostWithAuthor) string { return p.AuthorID })
	byID := make(map[string]domain.AuthorSummary, len(ids))

	profiles, err := u.profileRepo.GetByIDs(ctx, ids)
	if err != nil {
		absorb(u.guard, "attachAuthors", err)
	} else {
		for _, p := range profiles {
			byID[p.ID] = domain.AuthorSummary{
				ID:        p.ID,
				FullName:  p.FullName,
				Headline:  p.Headline,
				AvatarURL: p.AvatarURL,
			}
		}
	}

	attachByKey(shaped,
		func(p *domain.PostWithAuthor) string { return p.AuthorID },
		byID,
		domain.UnknownAuthor,
		func(p *domain.PostWithAuthor, a domain.AuthorSummary) { p.Author = a },
	)
	return shaped
}

func (u *postUsecase) DeletePost(ctx context.Context, id, authorID string) error {
	if !u.guard.Ready(ctx) {
		return apperror.Unavailable(nil)
	}
	err := u.postRepo.Delete(ctx, id, authorID)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Post not found")
	}
	return err
}

func (u *postUsecase) LikePost(ctx context.Context, postID, userID string) error {
	if !u.guard.Ready(ctx) {
		return apperror.Unavailable(nil)
	}
	return u.postRepo.Like(ctx, postID, userID)
}

func (u *postUsecase) UnlikePost(ctx context.Context, postID, userID string) error {
	if !u.guard.Ready(ctx) {
		return apperror.Unavailable(nil)
	}
	return u.postRepo.Unlike(ctx, postID, userID)
}

func (u *postUsecase) HasLikedPost(ctx context.Context, postID, userID string) (bool, error) {
	if !u.guard.Ready(ctx) {
		return false, nil
	}
	liked, err := u.postRepo.HasLiked(ctx, postID, userID)
	if err != nil {
		if absorb(u.guard, "HasLikedPost", err) {
			return false, nil
		}
		return false, err
	}
	return liked, nil
}

func (u *postUsecase) AddComment(ctx context.Context, postID, authorID, content string) (*domain.PostComment, error) {
	if content == "" {
		return nil, apperror.BadRequest("Comment content is required")
	}
	if !u.guard.Ready(ctx) {
		return nil, apperror.Unavailable(nil)
	}

	now := time.Now()
	comment := &domain.PostComment{
		ID:        uuid.NewString(),
		PostID:    postID,
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.postRepo.AddComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (u *postUsecase) GetComments(ctx context.Context, postID string) ([]domain.CommentWithAuthor, error) {
	if !u.guard.Ready(ctx) {
		return []domain.CommentWithAuthor{}, nil
	}

	comments, err := u.postRepo.FetchComments(ctx, postID)
	if err != nil {
		if absorb(u.guard, "GetComments", err) {
			return []domain.CommentWithAuthor{}, nil
		}
		return nil, err
	}

	shaped := make([]domain.CommentWithAuthor, len(comments))
	for i, c := range comments {
		shaped[i] = domain.CommentWithAuthor{PostComment: c}
	}

	ids := distinctKeys(shaped, func(c *domain.CommentWithAuthor) string { return c.AuthorID })
	byID := make(map[string]domain.AuthorSummary, len(ids))
	profiles, err := u.profileRepo.GetByIDs(ctx, ids)
	if err != nil {
		absorb(u.guard, "GetComments", err)
	} else {
		for _, p := range profiles {
			byID[p.ID] = domain.AuthorSummary{
				ID:        p.ID,
				FullName:  p.FullName,
				Headline:  p.Headline,
				AvatarURL: p.AvatarURL,
			}
		}
	}

	attachByKey(shaped,
		func(c *domain.CommentWithAuthor) string { return c.AuthorID },
		byID,
		domain.UnknownAuthor,
		func(c *domain.CommentWithAuthor, a domain.AuthorSummary) { c.Author = a },
	)
	return shaped, nil
}
