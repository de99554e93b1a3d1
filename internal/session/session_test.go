package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyumane/hyumane/internal/backend"
	backendmock "github.com/hyumane/hyumane/internal/backend/mock"
	"github.com/hyumane/hyumane/internal/entities"
	"github.com/hyumane/hyumane/internal/session"
	storemock "github.com/hyumane/hyumane/internal/session/mock"
)

func TestGate_Resolve(t *testing.T) {
	actor := &entities.ActorProfile{
		ActorID:     "actor",
		DisplayName: "Actor",
		Verified:    true,
	}

	tt := []struct {
		name   string
		record *session.Record
		getErr error
		setup  func(b *backendmock.MockBackend)

		status session.Status
	}{
		{
			name:   "no record",
			getErr: session.ErrNotFound,
			status: session.StatusUnauthenticated,
		},
		{
			name:   "store failure",
			getErr: context.Canceled,
			status: session.StatusUnauthenticated,
		},
		{
			name:   "empty actor id",
			record: &session.Record{ActorID: "", Verified: true},
			status: session.StatusUnauthenticated,
		},
		{
			name:   "not verified",
			record: &session.Record{ActorID: "actor", Verified: false},
			status: session.StatusUnauthenticated,
		},
		{
			name:   "no profile",
			record: &session.Record{ActorID: "actor", Verified: true},
			setup: func(b *backendmock.MockBackend) {
				b.EXPECT().GetProfile(gomock.Any(), "actor").Return(nil, backend.ErrNotFound)
			},
			status: session.StatusNeedsProfile,
		},
		{
			name:   "profile fetch failure fails closed",
			record: &session.Record{ActorID: "actor", Verified: true},
			setup: func(b *backendmock.MockBackend) {
				b.EXPECT().GetProfile(gomock.Any(), "actor").Return(nil, context.Canceled)
			},
			status: session.StatusUnauthenticated,
		},
		{
			name:   "ready",
			record: &session.Record{ActorID: "actor", Verified: true, VerifiedAt: time.Now()},
			setup: func(b *backendmock.MockBackend) {
				b.EXPECT().GetProfile(gomock.Any(), "actor").Return(actor, nil)
			},
			status: session.StatusReady,
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := storemock.NewMockStore(ctrl)
			b := backendmock.NewMockBackend(ctrl)

			if tc.getErr != nil {
				store.EXPECT().Get(gomock.Any()).Return(nil, tc.getErr)
			} else {
				store.EXPECT().Get(gomock.Any()).Return(tc.record, nil)
			}

			if tc.setup != nil {
				tc.setup(b)
			}

			res := session.NewGate(store, b).Resolve(context.Background())

			assert.Equal(t, tc.status, res.Status)
			if tc.status == session.StatusReady {
				require.NotNil(t, res.Actor)
				assert.Equal(t, actor, res.Actor)
			} else {
				assert.Nil(t, res.Actor)
			}
		})
	}
}

func TestGate_CreateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := storemock.NewMockStore(ctrl)
	b := backendmock.NewMockBackend(ctrl)

	store.EXPECT().Get(gomock.Any()).Return(&session.Record{ActorID: "actor", Verified: true}, nil)
	// identity and verified flag come from the record, not the caller
	b.EXPECT().CreateProfile(gomock.Any(), &entities.ActorProfile{
		ActorID:     "actor",
		DisplayName: "Actor",
		Bio:         "bio",
		Verified:    true,
	}).Return(nil)

	err := session.NewGate(store, b).CreateProfile(context.Background(), &entities.ActorProfile{
		ActorID:     "spoofed",
		DisplayName: "Actor",
		Bio:         "bio",
	})
	require.NoError(t, err)
}

func TestGate_CreateProfile_Unauthenticated(t *testing.T) {
	tt := []struct {
		name   string
		record *session.Record
		getErr error
	}{
		{
			name:   "no record",
			getErr: session.ErrNotFound,
		},
		{
			name:   "store failure",
			getErr: context.Canceled,
		},
		{
			name:   "not verified",
			record: &session.Record{ActorID: "actor", Verified: false},
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := storemock.NewMockStore(ctrl)
			b := backendmock.NewMockBackend(ctrl)

			if tc.getErr != nil {
				store.EXPECT().Get(gomock.Any()).Return(nil, tc.getErr)
			} else {
				store.EXPECT().Get(gomock.Any()).Return(tc.record, nil)
			}

			err := session.NewGate(store, b).CreateProfile(context.Background(), &entities.ActorProfile{DisplayName: "Actor"})
			assert.ErrorIs(t, err, session.ErrUnauthenticated)
		})
	}
}

func TestGate_CreateProfile_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := storemock.NewMockStore(ctrl)
	b := backendmock.NewMockBackend(ctrl)

	store.EXPECT().Get(gomock.Any()).Return(&session.Record{ActorID: "actor", Verified: true}, nil)
	b.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).Return(backend.ErrAlreadyExists)

	err := session.NewGate(store, b).CreateProfile(context.Background(), &entities.ActorProfile{DisplayName: "Actor"})
	assert.ErrorIs(t, err, backend.ErrAlreadyExists)
}
