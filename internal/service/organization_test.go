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

func newOrganizationService(repo repository.OrganizationRepository) *organizationService {
	svc := NewOrganizationService(repo).(*organizationService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestOrganizationService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		in         OrganizationInput
		setupMocks func(m *repoMocks.MockOrganizationRepository)
		wantErr    error
		wantField  string
	}{
		{
			name: "happy path",
			in: OrganizationInput{
				Name:         " Soweto Gardeners ",
				ContactEmail: "hello@gardeners.org.za",
				Website:      "https://gardeners.org.za",
			},
			setupMocks: func(m *repoMocks.MockOrganizationRepository) {
				m.On("Create", ctx, mock.MatchedBy(func(o *model.Organization) bool {
					return o.ID != "" && o.Name == "Soweto Gardeners" &&
						o.CreatedAt.Equal(fixedNow) && o.UpdatedAt.Equal(fixedNow)
				})).Return(&model.Organization{ID: "org-1", Name: "Soweto Gardeners"}, nil)
			},
		},
		{
			name:       "missing name",
			in:         OrganizationInput{Name: "   "},
			setupMocks: func(m *repoMocks.MockOrganizationRepository) {},
			wantErr:    ErrInvalidInput,
			wantField:  "name",
		},
		{
			name:       "bad email",
			in:         OrganizationInput{Name: "X", ContactEmail: "not-an-email"},
			setupMocks: func(m *repoMocks.MockOrganizationRepository) {},
			wantErr:    ErrInvalidInput,
			wantField:  "contact_email",
		},
		{
			name:       "bad website",
			in:         OrganizationInput{Name: "X", Website: "ftp://example.com"},
			setupMocks: func(m *repoMocks.MockOrganizationRepository) {},
			wantErr:    ErrInvalidInput,
			wantField:  "website",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(repoMocks.MockOrganizationRepository)
			tt.setupMocks(m)

			got, err := newOrganizationService(m).Create(ctx, tt.in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, tt.wantField, ve.Field)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "org-1", got.ID)
			}
			m.AssertExpectations(t)
		})
	}
}

func TestOrganizationService_List(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		limit, offset int
		wantQuery     repository.PageQuery
	}{
		{name: "explicit", limit: 5, offset: 10, wantQuery: repository.PageQuery{Limit: 5, Offset: 10}},
		{name: "defaults", limit: 0, offset: -3, wantQuery: repository.PageQuery{Limit: 10, Offset: 0}},
		{name: "capped", limit: 1000, wantQuery: repository.PageQuery{Limit: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(repoMocks.MockOrganizationRepository)
			m.On("List", ctx, tt.wantQuery).Return(&repository.PageResult[model.Organization]{Total: 0}, nil)

			got, err := newOrganizationService(m).List(ctx, tt.limit, tt.offset)

			require.NoError(t, err)
			assert.NotNil(t, got.Items)
			assert.Equal(t, tt.wantQuery.Limit, got.Limit)
			m.AssertExpectations(t)
		})
	}
}

func TestOrganizationService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		m := new(repoMocks.MockOrganizationRepository)
		m.On("FindByID", ctx, "org-1").Return(&model.Organization{ID: "org-1", Name: "Old"}, nil)
		m.On("Update", ctx, mock.MatchedBy(func(o *model.Organization) bool {
			return o.ID == "org-1" && o.Name == "New" && o.UpdatedAt.Equal(fixedNow)
		})).Return(&model.Organization{ID: "org-1", Name: "New"}, nil)

		got, err := newOrganizationService(m).Update(ctx, "org-1", OrganizationInput{Name: "New"})

		require.NoError(t, err)
		assert.Equal(t, "New", got.Name)
		m.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		m := new(repoMocks.MockOrganizationRepository)
		m.On("FindByID", ctx, "org-1").Return(nil, sql.ErrNoRows)

		_, err := newOrganizationService(m).Update(ctx, "org-1", OrganizationInput{Name: "New"})

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestOrganizationService_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		id      string
		repoErr error
		wantErr error
	}{
		{name: "happy path", id: "org-1"},
		{name: "not found", id: "org-1", repoErr: sql.ErrNoRows, wantErr: ErrNotFound},
		{name: "empty id", id: "", wantErr: ErrIDRequired},
		{name: "repository error", id: "org-1", repoErr: errors.New("db fail"), wantErr: errors.New("db fail")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(repoMocks.MockOrganizationRepository)
			if tt.id != "" {
				m.On("Delete", ctx, tt.id).Return(tt.repoErr)
			}

			err := newOrganizationService(m).Delete(ctx, tt.id)

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
			m.AssertExpectations(t)
		})
	}
}
