package group

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/textcomm/textcomm-server/internal/domain"
)

var _ groupRepo = &groupRepoMock{}

type groupRepoMock struct {
	CreateFunc                func(ctx context.Context, g *domain.Group) error
	GetByIDFunc               func(ctx context.Context, id uuid.UUID) (*domain.Group, error)
	DeleteFunc                func(ctx context.Context, id uuid.UUID) error
	ListAllFunc               func(ctx context.Context) ([]domain.Group, error)
	ListForUserFunc           func(ctx context.Context, userID uuid.UUID) ([]domain.Group, error)
	AddMemberFunc             func(ctx context.Context, m *domain.GroupMembership) (bool, error)
	RemoveMemberFunc          func(ctx context.Context, membershipID, groupID uuid.UUID) (bool, error)
	RemoveMembersByGroupFunc  func(ctx context.Context, groupID uuid.UUID) error
	MemberExistsFunc          func(ctx context.Context, groupID, userID uuid.UUID) (bool, error)
	ListMembersFunc           func(ctx context.Context, groupID uuid.UUID) ([]domain.GroupMemberRow, error)
	CreateMessageFunc         func(ctx context.Context, msg *domain.GroupMessage) error
	ListMessagesFunc          func(ctx context.Context, groupID uuid.UUID) ([]domain.GroupMessageView, error)
	DeleteMessagesByGroupFunc func(ctx context.Context, groupID uuid.UUID) error

	calls struct {
		Create                []struct{ G *domain.Group }
		GetByID               []struct{ ID uuid.UUID }
		Delete                []struct{ ID uuid.UUID }
		ListAll               []struct{}
		ListForUser           []struct{ UserID uuid.UUID }
		AddMember             []struct{ M *domain.GroupMembership }
		RemoveMember          []struct{ MembershipID, GroupID uuid.UUID }
		RemoveMembersByGroup  []struct{ GroupID uuid.UUID }
		MemberExists          []struct{ GroupID, UserID uuid.UUID }
		ListMembers           []struct{ GroupID uuid.UUID }
		CreateMessage         []struct{ Msg *domain.GroupMessage }
		ListMessages          []struct{ GroupID uuid.UUID }
		DeleteMessagesByGroup []struct{ GroupID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *groupRepoMock) Create(ctx context.Context, g *domain.Group) error {
	if mock.CreateFunc == nil {
		panic("groupRepoMock.CreateFunc: method is nil but groupRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ G *domain.Group }{g})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, g)
}

func (mock *groupRepoMock) CreateCalls() []struct{ G *domain.Group } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *groupRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Group, error) {
	if mock.GetByIDFunc == nil {
		panic("groupRepoMock.GetByIDFunc: method is nil but groupRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *groupRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *groupRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("groupRepoMock.DeleteFunc: method is nil but groupRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID uuid.UUID }{id})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *groupRepoMock) DeleteCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

func (mock *groupRepoMock) ListAll(ctx context.Context) ([]domain.Group, error) {
	if mock.ListAllFunc == nil {
		panic("groupRepoMock.ListAllFunc: method is nil but groupRepo.ListAll was just called")
	}
	mock.lock.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, struct{}{})
	mock.lock.Unlock()
	return mock.ListAllFunc(ctx)
}

func (mock *groupRepoMock) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Group, error) {
	if mock.ListForUserFunc == nil {
		panic("groupRepoMock.ListForUserFunc: method is nil but groupRepo.ListForUser was just called")
	}
	mock.lock.Lock()
	mock.calls.ListForUser = append(mock.calls.ListForUser, struct{ UserID uuid.UUID }{userID})
	mock.lock.Unlock()
	return mock.ListForUserFunc(ctx, userID)
}

func (mock *groupRepoMock) AddMember(ctx context.Context, m *domain.GroupMembership) (bool, error) {
	if mock.AddMemberFunc == nil {
		panic("groupRepoMock.AddMemberFunc: method is nil but groupRepo.AddMember was just called")
	}
	mock.lock.Lock()
	mock.calls.AddMember = append(mock.calls.AddMember, struct{ M *domain.GroupMembership }{m})
	mock.lock.Unlock()
	return mock.AddMemberFunc(ctx, m)
}

func (mock *groupRepoMock) AddMemberCalls() []struct{ M *domain.GroupMembership } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.AddMember
}

func (mock *groupRepoMock) RemoveMember(ctx context.Context, membershipID, groupID uuid.UUID) (bool, error) {
	if mock.RemoveMemberFunc == nil {
		panic("groupRepoMock.RemoveMemberFunc: method is nil but groupRepo.RemoveMember was just called")
	}
	mock.lock.Lock()
	mock.calls.RemoveMember = append(mock.calls.RemoveMember, struct{ MembershipID, GroupID uuid.UUID }{membershipID, groupID})
	mock.lock.Unlock()
	return mock.RemoveMemberFunc(ctx, membershipID, groupID)
}

func (mock *groupRepoMock) RemoveMemberCalls() []struct{ MembershipID, GroupID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RemoveMember
}

func (mock *groupRepoMock) RemoveMembersByGroup(ctx context.Context, groupID uuid.UUID) error {
	if mock.RemoveMembersByGroupFunc == nil {
		panic("groupRepoMock.RemoveMembersByGroupFunc: method is nil but groupRepo.RemoveMembersByGroup was just called")
	}
	mock.lock.Lock()
	mock.calls.RemoveMembersByGroup = append(mock.calls.RemoveMembersByGroup, struct{ GroupID uuid.UUID }{groupID})
	mock.lock.Unlock()
	return mock.RemoveMembersByGroupFunc(ctx, groupID)
}

func (mock *groupRepoMock) RemoveMembersByGroupCalls() []struct{ GroupID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RemoveMembersByGroup
}

func (mock *groupRepoMock) MemberExists(ctx context.Context, groupID, userID uuid.UUID) (bool, error) {
	if mock.MemberExistsFunc == nil {
		panic("groupRepoMock.MemberExistsFunc: method is nil but groupRepo.MemberExists was just called")
	}
	mock.lock.Lock()
	mock.calls.MemberExists = append(mock.calls.MemberExists, struct{ GroupID, UserID uuid.UUID }{groupID, userID})
	mock.lock.Unlock()
	return mock.MemberExistsFunc(ctx, groupID, userID)
}

func (mock *groupRepoMock) ListMembers(ctx context.Context, groupID uuid.UUID) ([]domain.GroupMemberRow, error) {
	if mock.ListMembersFunc == nil {
		panic("groupRepoMock.ListMembersFunc: method is nil but groupRepo.ListMembers was just called")
	}
	mock.lock.Lock()
	mock.calls.ListMembers = append(mock.calls.ListMembers, struct{ GroupID uuid.UUID }{groupID})
	mock.lock.Unlock()
	return mock.ListMembersFunc(ctx, groupID)
}

func (mock *groupRepoMock) CreateMessage(ctx context.Context, msg *domain.GroupMessage) error {
	if mock.CreateMessageFunc == nil {
		panic("groupRepoMock.CreateMessageFunc: method is nil but groupRepo.CreateMessage was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateMessage = append(mock.calls.CreateMessage, struct{ Msg *domain.GroupMessage }{msg})
	mock.lock.Unlock()
	return mock.CreateMessageFunc(ctx, msg)
}

func (mock *groupRepoMock) CreateMessageCalls() []struct{ Msg *domain.GroupMessage } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreateMessage
}

func (mock *groupRepoMock) ListMessages(ctx context.Context, groupID uuid.UUID) ([]domain.GroupMessageView, error) {
	if mock.ListMessagesFunc == nil {
		panic("groupRepoMock.ListMessagesFunc: method is nil but groupRepo.ListMessages was just called")
	}
	mock.lock.Lock()
	mock.calls.ListMessages = append(mock.calls.ListMessages, struct{ GroupID uuid.UUID }{groupID})
	mock.lock.Unlock()
	return mock.ListMessagesFunc(ctx, groupID)
}

func (mock *groupRepoMock) DeleteMessagesByGroup(ctx context.Context, groupID uuid.UUID) error {
	if mock.DeleteMessagesByGroupFunc == nil {
		panic("groupRepoMock.DeleteMessagesByGroupFunc: method is nil but groupRepo.DeleteMessagesByGroup was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteMessagesByGroup = append(mock.calls.DeleteMessagesByGroup, struct{ GroupID uuid.UUID }{groupID})
	mock.lock.Unlock()
	return mock.DeleteMessagesByGroupFunc(ctx, groupID)
}

func (mock *groupRepoMock) DeleteMessagesByGroupCalls() []struct{ GroupID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DeleteMessagesByGroup
}

var _ txManager = &txManagerMock{}

// txManagerMock runs the callback inline.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{ Ctx context.Context }
	}
	lock sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	mock.lock.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{ Ctx context.Context }{ctx})
	mock.lock.Unlock()
	if mock.RunInTxFunc != nil {
		return mock.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}

func (mock *txManagerMock) RunInTxCalls() []struct{ Ctx context.Context } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RunInTx
}
