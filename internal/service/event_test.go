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

func newEventService(repo repository.EventRepository) *eventService {
	svc := NewEventService(repo, nil).(*eventService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestEventService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		in         EventInput
		setupMocks func(m *repoMocks.MockEventRepository)
		wantErr    error
	}{
		{
			name: "end defaults to start",
			in:   EventInput{Title: "Heritage day", StartsAt: at(12, 0)},
			setupMocks: func(m *repoMocks.MockEventRepository) {
				m.On("Create", ctx, mock.MatchedBy(func(e *model.Event) bool {
					return e.EndsAt.Equal(at(12, 0)) && e.Capacity == 0
				})).Return(&model.Event{ID: "e-1"}, nil)
			},
		},
		{
			name:       "ends before start",
			in:         EventInput{Title: "Heritage day", StartsAt: at(12, 0), EndsAt: at(11, 0)},
			setupMocks: func(m *repoMocks.MockEventRepository) {},
			wantErr:    ErrInvalidInput,
		},
		{
			name:       "negative capacity",
			in:         EventInput{Title: "Heritage day", StartsAt: at(12, 0), Capacity: -1},
			setupMocks: func(m *repoMocks.MockEventRepository) {},
			wantErr:    ErrInvalidInput,
		},
		{
			name:       "missing title",
			in:         EventInput{StartsAt: at(12, 0)},
			setupMocks: func(m *repoMocks.MockEventRepository) {},
			wantErr:    ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(repoMocks.MockEventRepository)
			tt.setupMocks(m)

			got, err := newEventService(m).Create(ctx, "org-1", tt.in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
			}
			m.AssertExpectations(t)
		})
	}
}

func TestEventService_Register(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(m *repoMocks.MockEventRepository)
		wantErr    error
	}{
		{
			name: "happy path",
			setupMocks: func(m *repoMocks.MockEventRepository) {
				m.On("Register", mock.Anything, mock.MatchedBy(func(r *model.EventRegistration) bool {
					return r.EventID == "e-1" && r.UserID == "user-1"
				})).Return(&model.EventRegistration{ID: "r-1"}, nil)
				m.On("FindByID", mock.Anything, "e-1").Return(&model.Event{ID: "e-1", Capacity: 10, RegistrationCount: 1}, nil)
			},
		},
		{
			name: "full",
			setupMocks: func(m *repoMocks.MockEventRepository) {
				m.On("Register", mock.Anything, mock.Anything).Return(nil, repository.ErrNoCapacity)
			},
			wantErr: ErrEventFull,
		},
		{
			name: "twice",
			setupMocks: func(m *repoMocks.MockEventRepository) {
				m.On("Register", mock.Anything, mock.Anything).Return(nil, repository.ErrDuplicate)
			},
			wantErr: ErrAlreadyRegistered,
		},
		{
			name: "unknown event",
			setupMocks: func(m *repoMocks.MockEventRepository) {
				m.On("Register", mock.Anything, mock.Anything).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(repoMocks.MockEventRepository)
			tt.setupMocks(m)

			got, err := newEventService(m).Register(context.Background(), "e-1", "user-1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, 1, got.RegistrationCount)
			}
			m.AssertExpectations(t)
		})
	}
}

func TestEventService_Unregister(t *testing.T) {
	ctx := context.Background()
	m := new(repoMocks.MockEventRepository)
	m.On("Unregister", ctx, "e-1", "user-1").Return(sql.ErrNoRows)

	_, err := newEventService(m).Unregister(ctx, "e-1", "user-1")

	assert.ErrorIs(t, err, ErrNotRegistered)
	m.AssertExpectations(t)
}
