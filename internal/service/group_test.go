package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ubuntuhub/internal/model"
	"ubuntuhub/internal/repository"
	repoMocks "ubuntuhub/internal/repository/mocks"
)

func newGroupService(repo repository.GroupRepository) *groupService {
	svc := NewGroupService(repo).(*groupService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestGroupService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		in         GroupInput
		setupMocks func(m *repoMocks.MockGroupRepository)
		wantErr    error
	}{
		{
			name: "happy path",
			in:   GroupInput{Name: " Book club ", IsPrivate: true},
			setupMocks: func(m *repoMocks.MockGroupRepository) {
				m.On("Create", ctx, mock.MatchedBy(func(g *model.Group) bool {
					return g.ID != "" && g.Name == "Book club" && g.IsPrivate && g.OrganizationID == "org-1"
				})).Return(&model.Group{ID: "grp-1", Name: "Book club", IsPrivate: true}, nil)
			},
		},
		{
			name:       "missing name",
			in:         GroupInput{},
			setupMocks: func(m *repoMocks.MockGroupRepository) {},
			wantErr:    ErrInvalidInput,
		},
		{
			name: "name taken",
			in:   GroupInput{Name: "Book club"},
			setupMocks: func(m *repoMocks.MockGroupRepository) {
				m.On("Create", ctx, mock.Anything).Return(nil, repository.ErrDuplicate)
			},
			wantErr: ErrGroupNameTaken,
		},
		{
			name: "unknown organization",
			in:   GroupInput{Name: "Book club"},
			setupMocks: func(m *repoMocks.MockGroupRepository) {
				m.On("Create", ctx, mock.Anything).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(repoMocks.MockGroupRepository)
			tt.setupMocks(m)

			got, err := newGroupService(m).Create(ctx, "org-1", tt.in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.True(t, got.IsPrivate)
			}
			m.AssertExpectations(t)
		})
	}
}

func TestGroupService_Update_RenameClash(t *testing.T) {
	ctx := context.Background()
	m := new(repoMocks.MockGroupRepository)
	m.On("FindByID", ctx, "grp-1").Return(&model.Group{ID: "grp-1", Name: "Runners"}, nil)
	m.On("Update", ctx, mock.Anything).Return(nil, repository.ErrDuplicate)

	_, err := newGroupService(m).Update(ctx, "grp-1", GroupInput{Name: "Walkers"})

	assert.ErrorIs(t, err, ErrGroupNameTaken)
	m.AssertExpectations(t)
}

func TestGroupService_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	m := new(repoMocks.MockGroupRepository)
	m.On("FindByID", ctx, "gone").Return(nil, sql.ErrNoRows)

	_, err := newGroupService(m).Get(ctx, "gone")

	assert.ErrorIs(t, err, ErrNotFound)
}
