package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ubuntuhub/internal/model"
	"ubuntuhub/internal/repository"
	repoMocks "ubuntuhub/internal/repository/mocks"
)

func newBusinessService(b repository.BusinessRepository, c repository.BusinessCardRepository) *businessService {
	svc := NewBusinessService(b, c).(*businessService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestBusinessService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		in         BusinessInput
		setupMocks func(m *repoMocks.MockBusinessRepository)
		wantErr    error
		wantField  string
	}{
		{
			name: "happy path",
			in:   BusinessInput{Name: " Thando's Tailoring ", Category: "clothing", Website: "https://thando.co.za"},
			setupMocks: func(m *repoMocks.MockBusinessRepository) {
				m.On("Create", ctx, mock.MatchedBy(func(b *model.Business) bool {
					return b.ID != "" && b.OrganizationID == "org-1" && b.Name == "Thando's Tailoring" &&
						b.Category == "clothing" && b.CreatedAt.Equal(fixedNow)
				})).Return(&model.Business{ID: "biz-1", Name: "Thando's Tailoring"}, nil)
			},
		},
		{
			name:       "bad website",
			in:         BusinessInput{Name: "X", Website: "ftp://thando.co.za"},
			setupMocks: func(m *repoMocks.MockBusinessRepository) {},
			wantErr:    ErrInvalidInput,
			wantField:  "website",
		},
		{
			name:       "bad email",
			in:         BusinessInput{Name: "X", ContactEmail: "nope"},
			setupMocks: func(m *repoMocks.MockBusinessRepository) {},
			wantErr:    ErrInvalidInput,
			wantField:  "contact_email",
		},
		{
			name: "unknown organization",
			in:   BusinessInput{Name: "X"},
			setupMocks: func(m *repoMocks.MockBusinessRepository) {
				m.On("Create", ctx, mock.Anything).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(repoMocks.MockBusinessRepository)
			tt.setupMocks(m)

			got, err := newBusinessService(m, nil).Create(ctx, "org-1", tt.in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				if tt.wantField != "" {
					var verr *ValidationError
					require.True(t, errors.As(err, &verr))
					assert.Equal(t, tt.wantField, verr.Field)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, "biz-1", got.ID)
			}
			m.AssertExpectations(t)
		})
	}
}

func TestBusinessService_Update(t *testing.T) {
	ctx := context.Background()
	m := new(repoMocks.MockBusinessRepository)
	m.On("FindByID", ctx, "biz-1").Return(&model.Business{ID: "biz-1", OrganizationID: "org-1", Name: "Old"}, nil)
	m.On("Update", ctx, mock.MatchedBy(func(b *model.Business) bool {
		return b.ID == "biz-1" && b.Name == "New" && b.Phone == "021 555 0101" && b.UpdatedAt.Equal(fixedNow)
	})).Return(&model.Business{ID: "biz-1", Name: "New"}, nil)

	got, err := newBusinessService(m, nil).Update(ctx, "biz-1", BusinessInput{Name: "New", Phone: " 021 555 0101 "})

	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)
	m.AssertExpectations(t)
}

func TestBusinessService_Delete(t *testing.T) {
	ctx := context.Background()
	m := new(repoMocks.MockBusinessRepository)
	m.On("Delete", ctx, "biz-1").Return(nil).Once()
	m.On("Delete", ctx, "biz-1").Return(sql.ErrNoRows).Once()
	svc := newBusinessService(m, nil)

	assert.NoError(t, svc.Delete(ctx, "biz-1"))
	assert.ErrorIs(t, svc.Delete(ctx, "biz-1"), ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, ""), ErrIDRequired)
	m.AssertExpectations(t)
}

func TestBusinessService_AddCard(t *testing.T) {
	ctx := context.Background()

	t.Run("created", func(t *testing.T) {
		mc := new(repoMocks.MockBusinessCardRepository)
		mc.On("Create", ctx, mock.MatchedBy(func(c *model.BusinessCard) bool {
			return c.ID != "" && c.BusinessID == "biz-1" && c.Headline == "Winter sale" && c.CreatedAt.Equal(fixedNow)
		})).Return(&model.BusinessCard{ID: "card-1", Headline: "Winter sale"}, nil)

		got, err := newBusinessService(nil, mc).AddCard(ctx, "biz-1", BusinessCardInput{Headline: " Winter sale "})

		require.NoError(t, err)
		assert.Equal(t, "card-1", got.ID)
		mc.AssertExpectations(t)
	})

	t.Run("missing headline", func(t *testing.T) {
		_, err := newBusinessService(nil, nil).AddCard(ctx, "biz-1", BusinessCardInput{Body: "text"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown business", func(t *testing.T) {
		mc := new(repoMocks.MockBusinessCardRepository)
		mc.On("Create", ctx, mock.Anything).Return(nil, sql.ErrNoRows)

		_, err := newBusinessService(nil, mc).AddCard(ctx, "gone", BusinessCardInput{Headline: "Hi"})

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestBusinessService_ListCards(t *testing.T) {
	ctx := context.Background()
	pq := repository.PageQuery{Limit: defaultLimit}

	t.Run("empty page", func(t *testing.T) {
		mb := new(repoMocks.MockBusinessRepository)
		mc := new(repoMocks.MockBusinessCardRepository)
		mb.On("FindByID", ctx, "biz-1").Return(&model.Business{ID: "biz-1"}, nil)
		mc.On("ListByBusiness", ctx, "biz-1", pq).Return(&repository.PageResult[model.BusinessCard]{}, nil)

		got, err := newBusinessService(mb, mc).ListCards(ctx, "biz-1", 0, 0)

		require.NoError(t, err)
		assert.NotNil(t, got.Items)
		assert.Empty(t, got.Items)
		assert.Equal(t, defaultLimit, got.Limit)
	})

	t.Run("unknown business", func(t *testing.T) {
		mb := new(repoMocks.MockBusinessRepository)
		mb.On("FindByID", ctx, "gone").Return(nil, sql.ErrNoRows)

		_, err := newBusinessService(mb, nil).ListCards(ctx, "gone", 10, 0)

		assert.ErrorIs(t, err, ErrNotFound)
	})
}
