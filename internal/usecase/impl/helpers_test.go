package impl

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"

	"shop/internal/domain/entity"
	"shop/internal/domain/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- user repository fake ---

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*entity.User)}
}

func cloneUser(user *entity.User) *entity.User {
	clone := *user

	return &clone
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(user), nil
}

func (r *fakeUserRepo) FindByPhone(_ context.Context, phoneNumber string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.PhoneNumber == phoneNumber {
			return cloneUser(user), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByToken(_ context.Context, token string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if token == "" {
		return nil, repository.ErrUserNotFound
	}
	for _, user := range r.users {
		if user.APIToken == token {
			return cloneUser(user), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) List(_ context.Context, page repository.Pagination) (*repository.Page[entity.User], error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	page = page.Normalize()

	ids := make([]uint, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	items := make([]*entity.User, 0, page.PerPage)
	for i := page.Offset(); i < len(ids) && len(items) < page.PerPage; i++ {
		items = append(items, cloneUser(r.users[ids[i]]))
	}

	return repository.NewPage(items, page, int64(len(ids))), nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	user.ID = r.nextID
	r.users[user.ID] = cloneUser(user)

	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)

	return nil
}

// stored returns the persisted row for assertions, bypassing the interface.
func (r *fakeUserRepo) stored(id uint) *entity.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil
	}

	return cloneUser(user)
}

// --- transaction fakes ---

type fakeFactory struct {
	users repository.UserRepository
}

func (f *fakeFactory) Users() repository.UserRepository {
	return f.users
}

type fakeTxManager struct {
	factory repository.RepositoryFactory
}

func newFakeTxManager(users repository.UserRepository) *fakeTxManager {
	return &fakeTxManager{factory: &fakeFactory{users: users}}
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

// --- token issuer fake ---

type fakeTokenIssuer struct {
	tokens []string
	calls  int
}

func (i *fakeTokenIssuer) Generate() (string, error) {
	token := i.tokens[i.calls%len(i.tokens)]
	i.calls++

	return token, nil
}
