package usecase

import (
	"context"
	"errors"
	"testing"

	"loja_virtual/internal/domain/entities"
	mock_interfaces "loja_virtual/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestReviewUseCase_Create(t *testing.T) {
	t.Run("invalid rating", func(t *testing.T) {
		uc := NewReviewUseCase(nil, nil)
		for _, rating := range []int{0, 6, -1} {
			_, err := uc.Create(context.Background(), entities.Review{ProductID: "p1", ProfileID: "u1", Rating: rating})
			if !errors.Is(err, ErrInvalidRating) {
				t.Fatalf("rating %d: expected ErrInvalidRating, got %v", rating, err)
			}
		}
	})

	t.Run("requires identity", func(t *testing.T) {
		uc := NewReviewUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.Review{ProductID: "p1", Rating: 4})
		if !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReviewRepository(ctrl)
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewReviewUseCase(repo, catalog)

		catalog.EXPECT().GetByID(gomock.Any(), "p404").Return(entities.Product{}, nil)

		_, err := uc.Create(context.Background(), entities.Review{ProductID: "p404", ProfileID: "u1", Rating: 4})
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReviewRepository(ctrl)
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewReviewUseCase(repo, catalog)

		catalog.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Review{})).DoAndReturn(
			func(_ context.Context, r entities.Review) (entities.Review, error) {
				if r.ID == "" || r.CreatedAt.IsZero() {
					t.Fatalf("expected generated id and timestamp: %+v", r)
				}
				return r, nil
			},
		)

		res, err := uc.Create(context.Background(), entities.Review{ProductID: "p1", ProfileID: "u1", Rating: 5, Comment: "great"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Rating != 5 {
			t.Fatalf("unexpected review: %+v", res)
		}
	})
}

func TestReviewUseCase_Summary(t *testing.T) {
	t.Run("no reviews", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReviewRepository(ctrl)
		uc := NewReviewUseCase(repo, nil)

		repo.EXPECT().ListByProductID(gomock.Any(), "p1").Return(nil, nil)

		s, err := uc.Summary(context.Background(), "p1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Count != 0 || s.AverageRating != 0 {
			t.Fatalf("unexpected summary: %+v", s)
		}
	})

	t.Run("averages ratings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReviewRepository(ctrl)
		uc := NewReviewUseCase(repo, nil)

		repo.EXPECT().ListByProductID(gomock.Any(), "p1").Return([]entities.Review{
			{Rating: 5}, {Rating: 4}, {Rating: 2},
		}, nil)

		s, err := uc.Summary(context.Background(), "p1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Count != 3 {
			t.Fatalf("expected count 3, got %d", s.Count)
		}
		want := (5.0 + 4.0 + 2.0) / 3.0
		if s.AverageRating != want {
			t.Fatalf("expected average %f, got %f", want, s.AverageRating)
		}
	})
}
