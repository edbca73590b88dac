package chat

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/textcomm/textcomm-server/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListExceptFunc func(ctx context.Context, id uuid.UUID) ([]*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListExcept []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID    sync.RWMutex
	lockListExcept sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) ListExcept(ctx context.Context, id uuid.UUID) ([]*domain.User, error) {
	if mock.ListExceptFunc == nil {
		panic("userRepoMock.ListExceptFunc: method is nil but userRepo.ListExcept was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockListExcept.Lock()
	mock.calls.ListExcept = append(mock.calls.ListExcept, callInfo)
	mock.lockListExcept.Unlock()
	return mock.ListExceptFunc(ctx, id)
}

func (mock *userRepoMock) ListExceptCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockListExcept.RLock()
	calls := mock.calls.ListExcept
	mock.lockListExcept.RUnlock()
	return calls
}

var _ messageRepo = &messageRepoMock{}

type messageRepoMock struct {
	CreateFunc      func(ctx context.Context, msg *domain.DirectMessage) error
	ListBetweenFunc func(ctx context.Context, a, b uuid.UUID) ([]domain.DirectMessage, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Msg *domain.DirectMessage
		}
		ListBetween []struct {
			Ctx context.Context
			A   uuid.UUID
			B   uuid.UUID
		}
	}
	lockCreate      sync.RWMutex
	lockListBetween sync.RWMutex
}

func (mock *messageRepoMock) Create(ctx context.Context, msg *domain.DirectMessage) error {
	if mock.CreateFunc == nil {
		panic("messageRepoMock.CreateFunc: method is nil but messageRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Msg *domain.DirectMessage
	}{Ctx: ctx, Msg: msg}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, msg)
}

func (mock *messageRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Msg *domain.DirectMessage
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *messageRepoMock) ListBetween(ctx context.Context, a, b uuid.UUID) ([]domain.DirectMessage, error) {
	if mock.ListBetweenFunc == nil {
		panic("messageRepoMock.ListBetweenFunc: method is nil but messageRepo.ListBetween was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   uuid.UUID
		B   uuid.UUID
	}{Ctx: ctx, A: a, B: b}
	mock.lockListBetween.Lock()
	mock.calls.ListBetween = append(mock.calls.ListBetween, callInfo)
	mock.lockListBetween.Unlock()
	return mock.ListBetweenFunc(ctx, a, b)
}

func (mock *messageRepoMock) ListBetweenCalls() []struct {
	Ctx context.Context
	A   uuid.UUID
	B   uuid.UUID
} {
	mock.lockListBetween.RLock()
	calls := mock.calls.ListBetween
	mock.lockListBetween.RUnlock()
	return calls
}
