package api_test

import (
	"context"

	"github.com/hward/boardgames-api/internal/domain"
	"github.com/hward/boardgames-api/internal/store"
)

// Function-field mocks for the store interfaces. Unset fields return zero
// values so each test only wires what it exercises.

type mockCategoryStore struct {
	ListFn   func(ctx context.Context) ([]domain.Category, error)
	CreateFn func(ctx context.Context, category *domain.Category) error
}

func (m *mockCategoryStore) List(ctx context.Context) ([]domain.Category, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *mockCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, category)
	}
	return nil
}

var _ store.CategoryStore = (*mockCategoryStore)(nil)

type mockUserStore struct {
	ListFn          func(ctx context.Context) ([]domain.User, error)
	GetByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
}

func (m *mockUserStore) List(ctx context.Context) ([]domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *mockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}
	return nil, nil
}

var _ store.UserStore = (*mockUserStore)(nil)

type mockReviewStore struct {
	ListFn        func(ctx context.Context, params store.ListReviewsParams) ([]domain.ReviewSummary, error)
	GetByIDFn     func(ctx context.Context, id int) (*domain.Review, error)
	CreateFn      func(ctx context.Context, review *domain.Review) (*domain.Review, error)
	UpdateVotesFn func(ctx context.Context, id, delta int) (*domain.Review, error)
	DeleteFn      func(ctx context.Context, id int) error
}

func (m *mockReviewStore) List(ctx context.Context, params store.ListReviewsParams) ([]domain.ReviewSummary, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, params)
	}
	return nil, nil
}

func (m *mockReviewStore) GetByID(ctx context.Context, id int) (*domain.Review, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockReviewStore) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, review)
	}
	return nil, nil
}

func (m *mockReviewStore) UpdateVotes(ctx context.Context, id, delta int) (*domain.Review, error) {
	if m.UpdateVotesFn != nil {
		return m.UpdateVotesFn(ctx, id, delta)
	}
	return nil, nil
}

func (m *mockReviewStore) Delete(ctx context.Context, id int) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

var _ store.ReviewStore = (*mockReviewStore)(nil)

type mockCommentStore struct {
	ListByReviewFn func(ctx context.Context, reviewID int) ([]domain.Comment, error)
	CreateFn       func(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	UpdateVotesFn  func(ctx context.Context, id, delta int) (*domain.Comment, error)
	DeleteFn       func(ctx context.Context, id int) (*domain.Comment, error)
}

func (m *mockCommentStore) ListByReview(ctx context.Context, reviewID int) ([]domain.Comment, error) {
	if m.ListByReviewFn != nil {
		return m.ListByReviewFn(ctx, reviewID)
	}
	return nil, nil
}

func (m *mockCommentStore) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, comment)
	}
	return nil, nil
}

func (m *mockCommentStore) UpdateVotes(ctx context.Context, id, delta int) (*domain.Comment, error) {
	if m.UpdateVotesFn != nil {
		return m.UpdateVotesFn(ctx, id, delta)
	}
	return nil, nil
}

func (m *mockCommentStore) Delete(ctx context.Context, id int) (*domain.Comment, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil, nil
}

var _ store.CommentStore = (*mockCommentStore)(nil)
