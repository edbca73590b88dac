package account

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/textcomm/textcomm-server/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfileFunc    func(ctx context.Context, id uuid.UUID, firstName, lastName, phone, avatarPath *string) (*domain.User, error)
	DeleteFunc           func(ctx context.Context, id uuid.UUID) error
	DeleteRolesFunc      func(ctx context.Context, userID uuid.UUID) error
	AddRoleFunc          func(ctx context.Context, userID uuid.UUID, role domain.Role) error
	RemoveRoleFunc       func(ctx context.Context, userID uuid.UUID, role domain.Role) error
	ListAllFunc          func(ctx context.Context) ([]*domain.User, error)

	calls struct {
		GetByID          []struct{ ID uuid.UUID }
		GetByIDForUpdate []struct{ ID uuid.UUID }
		UpdateProfile    []struct {
			ID                                   uuid.UUID
			FirstName, LastName, Phone, AvatarPath *string
		}
		Delete      []struct{ ID uuid.UUID }
		DeleteRoles []struct{ UserID uuid.UUID }
		AddRole     []struct {
			UserID uuid.UUID
			Role   domain.Role
		}
		RemoveRole []struct {
			UserID uuid.UUID
			Role   domain.Role
		}
		ListAll []struct{}
	}
	lock sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("userRepoMock.GetByIDForUpdateFunc: method is nil but userRepo.GetByIDForUpdate was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, struct{ ID uuid.UUID }{id})
	mock.lock.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDForUpdateCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByIDForUpdate
}

func (mock *userRepoMock) UpdateProfile(ctx context.Context, id uuid.UUID, firstName, lastName, phone, avatarPath *string) (*domain.User, error) {
	if mock.UpdateProfileFunc == nil {
		panic("userRepoMock.UpdateProfileFunc: method is nil but userRepo.UpdateProfile was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, struct {
		ID                                   uuid.UUID
		FirstName, LastName, Phone, AvatarPath *string
	}{id, firstName, lastName, phone, avatarPath})
	mock.lock.Unlock()
	return mock.UpdateProfileFunc(ctx, id, firstName, lastName, phone, avatarPath)
}

func (mock *userRepoMock) UpdateProfileCalls() []struct {
	ID                                   uuid.UUID
	FirstName, LastName, Phone, AvatarPath *string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateProfile
}

func (mock *userRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("userRepoMock.DeleteFunc: method is nil but userRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID uuid.UUID }{id})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *userRepoMock) DeleteCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

func (mock *userRepoMock) DeleteRoles(ctx context.Context, userID uuid.UUID) error {
	if mock.DeleteRolesFunc == nil {
		panic("userRepoMock.DeleteRolesFunc: method is nil but userRepo.DeleteRoles was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteRoles = append(mock.calls.DeleteRoles, struct{ UserID uuid.UUID }{userID})
	mock.lock.Unlock()
	return mock.DeleteRolesFunc(ctx, userID)
}

func (mock *userRepoMock) AddRole(ctx context.Context, userID uuid.UUID, role domain.Role) error {
	if mock.AddRoleFunc == nil {
		panic("userRepoMock.AddRoleFunc: method is nil but userRepo.AddRole was just called")
	}
	mock.lock.Lock()
	mock.calls.AddRole = append(mock.calls.AddRole, struct {
		UserID uuid.UUID
		Role   domain.Role
	}{userID, role})
	mock.lock.Unlock()
	return mock.AddRoleFunc(ctx, userID, role)
}

func (mock *userRepoMock) AddRoleCalls() []struct {
	UserID uuid.UUID
	Role   domain.Role
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.AddRole
}

func (mock *userRepoMock) RemoveRole(ctx context.Context, userID uuid.UUID, role domain.Role) error {
	if mock.RemoveRoleFunc == nil {
		panic("userRepoMock.RemoveRoleFunc: method is nil but userRepo.RemoveRole was just called")
	}
	mock.lock.Lock()
	mock.calls.RemoveRole = append(mock.calls.RemoveRole, struct {
		UserID uuid.UUID
		Role   domain.Role
	}{userID, role})
	mock.lock.Unlock()
	return mock.RemoveRoleFunc(ctx, userID, role)
}

func (mock *userRepoMock) RemoveRoleCalls() []struct {
	UserID uuid.UUID
	Role   domain.Role
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RemoveRole
}

func (mock *userRepoMock) ListAll(ctx context.Context) ([]*domain.User, error) {
	if mock.ListAllFunc == nil {
		panic("userRepoMock.ListAllFunc: method is nil but userRepo.ListAll was just called")
	}
	mock.lock.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, struct{}{})
	mock.lock.Unlock()
	return mock.ListAllFunc(ctx)
}

var _ messageRepo = &messageRepoMock{}

type messageRepoMock struct {
	DeleteByUserFunc func(ctx context.Context, userID uuid.UUID) (int64, error)

	calls struct {
		DeleteByUser []struct{ UserID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *messageRepoMock) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	if mock.DeleteByUserFunc == nil {
		panic("messageRepoMock.DeleteByUserFunc: method is nil but messageRepo.DeleteByUser was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteByUser = append(mock.calls.DeleteByUser, struct{ UserID uuid.UUID }{userID})
	mock.lock.Unlock()
	return mock.DeleteByUserFunc(ctx, userID)
}

func (mock *messageRepoMock) DeleteByUserCalls() []struct{ UserID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DeleteByUser
}

var _ groupRepo = &groupRepoMock{}

type groupRepoMock struct {
	RemoveMembersByUserFunc    func(ctx context.Context, userID uuid.UUID) error
	DeleteMessagesBySenderFunc func(ctx context.Context, userID uuid.UUID) error

	calls struct {
		RemoveMembersByUser    []struct{ UserID uuid.UUID }
		DeleteMessagesBySender []struct{ UserID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *groupRepoMock) RemoveMembersByUser(ctx context.Context, userID uuid.UUID) error {
	if mock.RemoveMembersByUserFunc == nil {
		panic("groupRepoMock.RemoveMembersByUserFunc: method is nil but groupRepo.RemoveMembersByUser was just called")
	}
	mock.lock.Lock()
	mock.calls.RemoveMembersByUser = append(mock.calls.RemoveMembersByUser, struct{ UserID uuid.UUID }{userID})
	mock.lock.Unlock()
	return mock.RemoveMembersByUserFunc(ctx, userID)
}

func (mock *groupRepoMock) RemoveMembersByUserCalls() []struct{ UserID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RemoveMembersByUser
}

func (mock *groupRepoMock) DeleteMessagesBySender(ctx context.Context, userID uuid.UUID) error {
	if mock.DeleteMessagesBySenderFunc == nil {
		panic("groupRepoMock.DeleteMessagesBySenderFunc: method is nil but groupRepo.DeleteMessagesBySender was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteMessagesBySender = append(mock.calls.DeleteMessagesBySender, struct{ UserID uuid.UUID }{userID})
	mock.lock.Unlock()
	return mock.DeleteMessagesBySenderFunc(ctx, userID)
}

func (mock *groupRepoMock) DeleteMessagesBySenderCalls() []struct{ UserID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DeleteMessagesBySender
}

var _ authMethodRepo = &authMethodRepoMock{}

type authMethodRepoMock struct {
	DeleteByUserFunc func(ctx context.Context, userID uuid.UUID) error

	calls struct {
		DeleteByUser []struct{ UserID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *authMethodRepoMock) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	if mock.DeleteByUserFunc == nil {
		panic("authMethodRepoMock.DeleteByUserFunc: method is nil but authMethodRepo.DeleteByUser was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteByUser = append(mock.calls.DeleteByUser, struct{ UserID uuid.UUID }{userID})
	mock.lock.Unlock()
	return mock.DeleteByUserFunc(ctx, userID)
}

func (mock *authMethodRepoMock) DeleteByUserCalls() []struct{ UserID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DeleteByUser
}

var _ blobStore = &blobStoreMock{}

type blobStoreMock struct {
	SaveFunc   func(data []byte, ext string) (string, error)
	RemoveFunc func(key string) error

	calls struct {
		Save []struct {
			Data []byte
			Ext  string
		}
		Remove []struct{ Key string }
	}
	lock sync.RWMutex
}

func (mock *blobStoreMock) Save(data []byte, ext string) (string, error) {
	if mock.SaveFunc == nil {
		panic("blobStoreMock.SaveFunc: method is nil but blobStore.Save was just called")
	}
	mock.lock.Lock()
	mock.calls.Save = append(mock.calls.Save, struct {
		Data []byte
		Ext  string
	}{data, ext})
	mock.lock.Unlock()
	return mock.SaveFunc(data, ext)
}

func (mock *blobStoreMock) SaveCalls() []struct {
	Data []byte
	Ext  string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Save
}

func (mock *blobStoreMock) Remove(key string) error {
	if mock.RemoveFunc == nil {
		panic("blobStoreMock.RemoveFunc: method is nil but blobStore.Remove was just called")
	}
	mock.lock.Lock()
	mock.calls.Remove = append(mock.calls.Remove, struct{ Key string }{key})
	mock.lock.Unlock()
	return mock.RemoveFunc(key)
}

func (mock *blobStoreMock) RemoveCalls() []struct{ Key string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Remove
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
