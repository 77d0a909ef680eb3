package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-medlink-backend/internal/domain"
	"go-medlink-backend/internal/usecase"
	"go-medlink-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject a post with no content and no image", func(t *testing.T) {
		mockPosts := new(MockPostRepo)
		uc := usecase.NewPostUsecase(mockPosts, new(MockProfileRepo), &stubGuard{ready: true})

		_, err := uc.CreatePost(ctx, &domain.Post{AuthorID: "user-1"})
		assert.Error(t, err)
		mockPosts.AssertNotCalled(t, "Create")
	})

	t.Run("Should default visibility to public and assign an ID", func(t *testing.T) {
		mockPosts := new(MockPostRepo)
		uc := usecase.NewPostUsecase(mockPosts, new(MockProfileRepo), &stubGuard{ready: true})

		mockPosts.On("Create", ctx, mock.AnythingOfType("*domain.Post")).Return(nil)

		created, err := uc.CreatePost(ctx, &domain.Post{AuthorID: "user-1", Content: "Interesting case today"})
		assert.NoError(t, err)
		assert.Equal(t, domain.PostVisibilityPublic, created.Visibility)
		assert.NotEmpty(t, created.ID)
	})

	t.Run("Should reject an unknown visibility value", func(t *testing.T) {
		mockPosts := new(MockPostRepo)
		uc := usecase.NewPostUsecase(mockPosts, new(MockProfileRepo), &stubGuard{ready: true})

		_, err := uc.CreatePost(ctx, &domain.Post{AuthorID: "user-1", Content: "x", Visibility: "friends"})
		assert.Error(t, err)
	})

	t.Run("Should refuse writes while store is unready", func(t *testing.T) {
		mockPosts := new(MockPostRepo)
		uc := usecase.NewPostUsecase(mockPosts, new(MockProfileRepo), &stubGuard{ready: false})

		_, err := uc.CreatePost(ctx, &domain.Post{AuthorID: "user-1", Content: "x"})
		assert.Error(t, err)
		assert.Equal(t, apperror.KindUnavailable, apperror.KindOf(err))
	})
}

func TestGetPostsPagination(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return empty page past the end without fetching", func(t *testing.T) {
		mockPosts := new(MockPostRepo)
		uc := usecase.NewPostUsecase(mockPosts, new(MockProfileRepo), &stubGuard{ready: true})

		mockPosts.On("Count", ctx).Return(int64(3), nil)

		posts, total, err := uc.GetPosts(ctx, 2, 10)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Empty(t, posts)
		mockPosts.AssertNotCalled(t, "Fetch")
	})

	t.Run("Should keep the counted total when the page fetch degrades", func(t *testing.T) {
		mockPosts := new(MockPostRepo)
		uc := usecase.NewPostUsecase(mockPosts, new(MockProfileRepo), &stubGuard{ready: true})

		mockPosts.On("Count", ctx).Return(int64(25), nil)
		mockPosts.On("Fetch", ctx, 10, 0).Return(nil, apperror.Transient(assert.AnError))

		posts, total, err := uc.GetPosts(ctx, 1, 10)
		assert.NoError(t, err)
		assert.Equal(t, int64(25), total)
		assert.Empty(t, posts)
	})

	t.Run("Should clamp page and limit to sane minimums", func(t *testing.T) {
		mockPosts := new(MockPostRepo)
		mockProfiles := new(MockProfileRepo)
		uc := usecase.NewPostUsecase(mockPosts, mockProfiles, &stubGuard{ready: true})

		mockPosts.On("Count", ctx).Return(int64(1), nil)
		mockPosts.On("Fetch", ctx, 10, 0).Return([]domain.Post{{ID: "p1", AuthorID: "a1"}}, nil)
		mockProfiles.On("GetByIDs", ctx, []string{"a1"}).Return([]domain.Profile{{ID: "a1", FullName: "Dr. A"}}, nil)

		posts, _, err := uc.GetPosts(ctx, 0, -5)
		assert.NoError(t, err)
		assert.Len(t, posts, 1)
		mockPosts.AssertExpectations(t)
	})

	t.Run("Should return empty feed when store is unready", func(t *testing.T) {
		mockPosts := new(MockPostRepo)
		uc := usecase.NewPostUsecase(mockPosts, new(MockProfileRepo), &stubGuard{ready: false})

		posts, total, err := uc.GetPosts(ctx, 1, 10)
		assert.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, posts)
	})
}

func TestAuthorAttachment(t *testing.T) {
	ctx := context.Background()

	t.Run("Should attach author summaries with one batched fetch", func(t *testing.T) {
		mockPosts := new(MockPostRepo)
		mockProfiles := new(MockProfileRepo)
		uc := usecase.NewPostUsecase(mockPosts, mockProfiles, &stubGuard{ready: true})

		headline := "Cardiologist"
		mockPosts.On("FetchByAuthor", ctx, "a1").Return([]domain.Post{
			{ID: "p1", AuthorID: "a1", CreatedAt: time.Now()},
			{ID: "p2", AuthorID: "a1"},
		}, nil)
		mockProfiles.On("GetByIDs", ctx, []string{"a1"}).Return([]domain.Profile{
			{ID: "a1", FullName: "Dr. A", Headline: &headline},
		}, nil)

		posts, err := uc.GetPostsByAuthor(ctx, "a1")
		assert.NoError(t, err)
		assert.Len(t, posts, 2)
		for _, p := range posts {
			assert.Equal(t, "Dr. A", p.Author.FullName)
			assert.Equal(t, "Cardiologist", *p.Author.Headline)
		}
		// Two posts, one author: the profile fetch is batched
		mockProfiles.AssertNumberOfCalls(t, "GetByIDs", 1)
	})

	t.Run("Should fall back to Unknown User for a missing author", func(t *testing.T) {
		mockPosts := new(MockPostRepo)
		mockProfiles := new(MockProfileRepo)
		uc := usecase.NewPostUsecase(mockPosts, mockProfiles, &stubGuard{ready: true})

		mockPosts.On("FetchByAuthor", ctx, "gone").Return([]domain.Post{
			{ID: "p1", AuthorID: "gone"},
		}, nil)
		mockProfiles.On("GetByIDs", ctx, []string{"gone"}).Return([]domain.Profile{}, nil)

		posts, err := uc.GetPostsByAuthor(ctx, "gone")
		assert.NoError(t, err)
		assert.Len(t, posts, 1)
		assert.Equal(t, "gone", posts[0].Author.ID)
		assert.Equal(t, "Unknown User", posts[0].Author.FullName)
	})

	t.Run("Should still return posts when the profile fetch fails", func(t *testing.T) {
		mockPosts := new(MockPostRepo)
		mockProfiles := new(MockProfileRepo)
		guard := &stubGuard{ready: true}
		uc := usecase.NewPostUsecase(mockPosts, mockProfiles, guard)

		mockPosts.On("FetchByAuthor", ctx, "a1").Return([]domain.Post{{ID: "p1", AuthorID: "a1"}}, nil)
		mockProfiles.On("GetByIDs", ctx, []string{"a1"}).Return(nil, apperror.Transient(assert.AnError))

		posts, err := uc.GetPostsByAuthor(ctx, "a1")
		assert.NoError(t, err)
		assert.Len(t, posts, 1)
		assert.Equal(t, "Unknown User", posts[0].Author.FullName)
	})
}

func TestComments(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject an empty comment", func(t *testing.T) {
		mockPosts := new(MockPostRepo)
		uc := usecase.NewPostUsecase(mockPosts, new(MockProfileRepo), &stubGuard{ready: true})

		_, err := uc.AddComment(ctx, "p1", "user-1", "")
		assert.Error(t, err)
	})

	t.Run("Should build the comment with an ID and timestamps", func(t *testing.T) {
		mockPosts := new(MockPostRepo)
		uc := usecase.NewPostUsecase(mockPosts, new(MockProfileRepo), &stubGuard{ready: true})

		mockPosts.On("AddComment", ctx, mock.AnythingOfType("*domain.PostComment")).Return(nil)

		comment, err := uc.AddComment(ctx, "p1", "user-1", "Great case")
		assert.NoError(t, err)
		assert.NotEmpty(t, comment.ID)
		assert.Equal(t, "p1", comment.PostID)
		assert.Equal(t, "user-1", comment.AuthorID)
		assert.False(t, comment.CreatedAt.IsZero())
	})

	t.Run("Should attach authors to fetched comments", func(t *testing.T) {
		mockPosts := new(MockPostRepo)
		mockProfiles := new(MockProfileRepo)
		uc := usecase.NewPostUsecase(mockPosts, mockProfiles, &stubGuard{ready: true})

		mockPosts.On("FetchComments", ctx, "p1").Return([]domain.PostComment{
			{ID: "c1", PostID: "p1", AuthorID: "a1"},
			{ID: "c2", PostID: "p1", AuthorID: "missing"},
		}, nil)
		mockProfiles.On("GetByIDs", ctx, []string{"a1", "missing"}).Return([]domain.Profile{
			{ID: "a1", FullName: "Dr. A"},
		}, nil)

		comments, err := uc.GetComments(ctx, "p1")
		assert.NoError(t, err)
		assert.Len(t, comments, 2)
		assert.Equal(t, "Dr. A", comments[0].Author.FullName)
		assert.Equal(t, "Unknown User", comments[1].Author.FullName)
	})
}

func TestLikes(t *testing.T) {
	ctx := context.Background()

	t.Run("Should report false like status when store is unready", func(t *testing.T) {
		mockPosts := new(MockPostRepo)
		uc := usecase.NewPostUsecase(mockPosts, new(MockProfileRepo), &stubGuard{ready: false})

		liked, err := uc.HasLikedPost(ctx, "p1", "user-1")
		assert.NoError(t, err)
		assert.False(t, liked)
	})

	t.Run("Should refuse like writes while store is unready", func(t *testing.T) {
		mockPosts := new(MockPostRepo)
		uc := usecase.NewPostUsecase(mockPosts, new(MockProfileRepo), &stubGuard{ready: false})

		err := uc.LikePost(ctx, "p1", "user-1")
		assert.Equal(t, apperror.KindUnavailable, apperror.KindOf(err))
	})

	t.Run("Should pass through like and unlike", func(t *testing.T) {
		mockPosts := new(MockPostRepo)
		uc := usecase.NewPostUsecase(mockPosts, new(MockProfileRepo), &stubGuard{ready: true})

		mockPosts.On("Like", ctx, "p1", "user-1").Return(nil)
		mockPosts.On("Unlike", ctx, "p1", "user-1").Return(nil)

		assert.NoError(t, uc.LikePost(ctx, "p1", "user-1"))
		assert.NoError(t, uc.UnlikePost(ctx, "p1", "user-1"))
		mockPosts.AssertExpectations(t)
	})
}
