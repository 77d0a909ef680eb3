package postgres

import (
	"context"
	"time"

	"go-medlink-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type postRepo struct {
	db *pgxpool.Pool
}

func NewPostRepository(db *pgxpool.Pool) domain.PostRepository {
	return &postRepo{db: db}
}

const postColumns = `id, author_id, content, visibility, image_url, images, likes_count, comments_count, shares_count, created_at, updated_at`

func scanPost(row interface{ Scan(...any) error }) (*domain.Post, error) {
	var p domain.Post
	var images []string
	err := row.Scan(
		&p.ID, &p.AuthorID, &p.Content, &p.Visibility, &p.ImageURL,
		pq.Array(&images), &p.LikesCount, &p.CommentsCount, &p.SharesCount,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Images = images
	return &p, nil
}

func (r *postRepo) Create(ctx context.Context, post *domain.Post) error {
	query := `INSERT INTO posts (` + postColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, query,
		post.ID, post.AuthorID, post.Content, post.Visibility, post.ImageURL,
		pq.Array(post.Images), post.LikesCount, post.CommentsCount,
		post.SharesCount, post.CreatedAt, post.UpdatedAt,
	)
	return classify(err)
}

func (r *postRepo) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`
	p, err := scanPost(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, classify(err)
	}
	return p, nil
}

func (r *postRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, classify(err)
		}
		posts = append(posts, *p)
	}
	return posts, classify(rows.Err())
}

func (r *postRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM posts`).Scan(&total); err != nil {
		return 0, classify(err)
	}
	return total, nil
}

func (r *postRepo) FetchByAuthor(ctx context.Context, authorID string) ([]domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE author_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, authorID)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, classify(err)
		}
		posts = append(posts, *p)
	}
	return posts, classify(rows.Err())
}

func (r *postRepo) Delete(ctx context.Context, id, authorID string) error {
	query := `DELETE FROM posts WHERE id = $1 AND author_id = $2`
	result, err := r.db.Exec(ctx, query, id, authorID)
	if err != nil {
		return classify(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Like inserts the like row and bumps likes_count in a single transaction,
// so a failure between the two steps cannot leave them inconsistent.
// Re-liking an already liked post is a no-op.
func (r *postRepo) Like(ctx context.Context, postID, userID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return classify(err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx,
		`INSERT INTO post_likes (post_id, user_id, created_at) VALUES ($1, $2, $3)
         ON CONFLICT (post_id, user_id) DO NOTHING`,
		postID, userID, time.Now())
	if err != nil {
		return classify(err)
	}
	if result.RowsAffected() == 0 {
		return nil // already liked
	}

	_, err = tx.Exec(ctx,
		`UPDATE posts SET likes_count = likes_count + 1, updated_at = NOW() WHERE id = $1`,
		postID)
	if err != nil {
		return classify(err)
	}

	return classify(tx.Commit(ctx))
}

// Unlike removes the like row and decrements likes_count in a single
// transaction. The counter never goes below zero.
func (r *postRepo) Unlike(ctx context.Context, postID, userID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return classify(err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx,
		`DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`,
		postID, userID)
	if err != nil {
		return classify(err)
	}
	if result.RowsAffected() == 0 {
		return nil // was not liked
	}

	_, err = tx.Exec(ctx,
		`UPDATE posts SET likes_count = GREATEST(likes_count - 1, 0), updated_at = NOW() WHERE id = $1`,
		postID)
	if err != nil {
		return classify(err)
	}

	return classify(tx.Commit(ctx))
}

func (r *postRepo) HasLiked(ctx context.Context, postID, userID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM post_likes WHERE post_id = $1 AND user_id = $2)`,
		postID, userID).Scan(&exists)
	if err != nil {
		return false, classify(err)
	}
	return exists, nil
}

func (r *postRepo) AddComment(ctx context.Context, comment *domain.PostComment) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return classify(err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO post_comments (id, post_id, author_id, content, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6)`,
		comment.ID, comment.PostID, comment.AuthorID, comment.Content,
		comment.CreatedAt, comment.UpdatedAt)
	if err != nil {
		return classify(err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE posts SET comments_count = comments_count + 1, updated_at = NOW() WHERE id = $1`,
		comment.PostID)
	if err != nil {
		return classify(err)
	}

	return classify(tx.Commit(ctx))
}

func (r *postRepo) FetchComments(ctx context.Context, postID string) ([]domain.PostComment, error) {
	query := `SELECT id, post_id, author_id, content, created_at, updated_at
              FROM post_comments WHERE post_id = $1 ORDER BY created_at ASC`
	rows, err := r.db.Query(ctx, query, postID)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var comments []domain.PostComment
	for rows.Next() {
		var c domain.PostComment
		if err := rows.Scan(&c.ID, &c.PostID, &c.AuthorID, &c.Content, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, classify(err)
		}
		comments = append(comments, c)
	}
	return comments, classify(rows.Err())
}
