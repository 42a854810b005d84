package impl

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeResourceRepo is an in-memory Resource implementation shared by the
// per-entity fakes. ID plumbing and uniqueness checks are injected.
type fakeResourceRepo[E any] struct {
	mu          sync.Mutex
	nextID      uint
	items       map[uint]*E
	getID       func(*E) uint
	setID       func(*E, uint)
	beforeWrite func(candidate *E, existing map[uint]*E) error
}

func newFakeResourceRepo[E any](
	getID func(*E) uint,
	setID func(*E, uint),
	beforeWrite func(*E, map[uint]*E) error,
) *fakeResourceRepo[E] {
	return &fakeResourceRepo[E]{
		items:       make(map[uint]*E),
		getID:       getID,
		setID:       setID,
		beforeWrite: beforeWrite,
	}
}

func cloneEntity[E any](e *E) *E {
	clone := *e

	return &clone
}

func (r *fakeResourceRepo[E]) sortedIDs() []uint {
	ids := make([]uint, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

func (r *fakeResourceRepo[E]) List(_ context.Context, page repository.Pagination) (*repository.Page[E], error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	page = page.Normalize()
	ids := r.sortedIDs()

	items := make([]*E, 0, page.PerPage)
	for i := page.Offset(); i < len(ids) && len(items) < page.PerPage; i++ {
		items = append(items, cloneEntity(r.items[ids[i]]))
	}

	return repository.NewPage(items, page, int64(len(ids))), nil
}

func (r *fakeResourceRepo[E]) FindByID(_ context.Context, id uint) (*E, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	return cloneEntity(item), nil
}

func (r *fakeResourceRepo[E]) Create(_ context.Context, e *E) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.beforeWrite != nil {
		if err := r.beforeWrite(e, r.items); err != nil {
			return err
		}
	}

	r.nextID++
	r.setID(e, r.nextID)
	r.items[r.getID(e)] = cloneEntity(e)

	return nil
}

func (r *fakeResourceRepo[E]) Update(_ context.Context, e *E) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.getID(e)
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	if r.beforeWrite != nil {
		if err := r.beforeWrite(e, r.items); err != nil {
			return err
		}
	}
	r.items[id] = cloneEntity(e)

	return nil
}

func (r *fakeResourceRepo[E]) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)

	return nil
}

func newFakeCategoryRepo() repository.CategoryRepository {
	return newFakeResourceRepo(
		func(c *entity.Category) uint { return c.ID },
		func(c *entity.Category, id uint) { c.ID = id },
		func(candidate *entity.Category, existing map[uint]*entity.Category) error {
			for _, other := range existing {
				if other.Slug == candidate.Slug && other.ID != candidate.ID {
					return domainerrors.ErrSlugTaken
				}
			}

			return nil
		},
	)
}

// fakeProductRepo adds the per-provider listing over the generic store.
type fakeProductRepo struct {
	*fakeResourceRepo[entity.Product]
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		fakeResourceRepo: newFakeResourceRepo(
			func(p *entity.Product) uint { return p.ID },
			func(p *entity.Product, id uint) { p.ID = id },
			nil,
		),
	}
}

func (r *fakeProductRepo) ListByProvider(_ context.Context, providerID uint, page repository.Pagination) (*repository.Page[entity.Product], error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	page = page.Normalize()

	matches := make([]*entity.Product, 0)
	for _, id := range r.sortedIDs() {
		product := r.items[id]
		if product.ProviderID != nil && *product.ProviderID == providerID {
			matches = append(matches, cloneEntity(product))
		}
	}

	total := int64(len(matches))
	start := page.Offset()
	if start > len(matches) {
		start = len(matches)
	}
	end := start + page.PerPage
	if end > len(matches) {
		end = len(matches)
	}

	return repository.NewPage(matches[start:end], page, total), nil
}

// fakeProviderRepo adds the joined account reads over the generic store.
type fakeProviderRepo struct {
	*fakeResourceRepo[entity.Provider]
	accountName  string
	accountEmail string
}

func newFakeProviderRepo() *fakeProviderRepo {
	return &fakeProviderRepo{
		fakeResourceRepo: newFakeResourceRepo(
			func(p *entity.Provider) uint { return p.ID },
			func(p *entity.Provider, id uint) { p.ID = id },
			nil,
		),
		accountName:  "Jamie",
		accountEmail: "jamie@example.com",
	}
}

func (r *fakeProviderRepo) account(provider *entity.Provider) *entity.ProviderAccount {
	account := &entity.ProviderAccount{Provider: *provider}
	if provider.MemberID != nil {
		account.AccountName = r.accountName
		account.AccountEmail = r.accountEmail
	}

	return account
}

func (r *fakeProviderRepo) ListAccounts(_ context.Context, page repository.Pagination) (*repository.Page[entity.ProviderAccount], error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	page = page.Normalize()

	items := make([]*entity.ProviderAccount, 0)
	for _, id := range r.sortedIDs() {
		items = append(items, r.account(r.items[id]))
	}

	return repository.NewPage(items, page, int64(len(items))), nil
}

func (r *fakeProviderRepo) FindAccountByID(_ context.Context, id uint) (*entity.ProviderAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	provider, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	return r.account(provider), nil
}

// --- tests ---

func TestCategoryService_CreateGetRoundTrip(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo(), newDiscardLogger())

	created, err := svc.Create(context.Background(), &usecase.CreateCategoryInput{
		Name: "Beverages",
		Slug: "beverages",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	found, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Beverages", found.Name)
	assert.Equal(t, "beverages", found.Slug)
}

func TestCategoryService_DuplicateSlug(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo(), newDiscardLogger())

	_, err := svc.Create(context.Background(), &usecase.CreateCategoryInput{Name: "A", Slug: "same"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &usecase.CreateCategoryInput{Name: "B", Slug: "same"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSlugTaken)
}

func TestCategoryService_GetUnknown(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo(), newDiscardLogger())

	_, err := svc.Get(context.Background(), 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrResourceNotFound)

	_, err = svc.Update(context.Background(), 42, &usecase.UpdateCategoryInput{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrResourceNotFound)
}

func TestCategoryService_DeleteTwice(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo(), newDiscardLogger())

	created, err := svc.Create(context.Background(), &usecase.CreateCategoryInput{Name: "A", Slug: "a"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	// Deleting an already absent row reports not found, not silent success.
	err = svc.Delete(context.Background(), created.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrResourceNotFound)
}

func TestCategoryService_ListPagination(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo(), newDiscardLogger())

	for i := 0; i < 20; i++ {
		_, err := svc.Create(context.Background(), &usecase.CreateCategoryInput{
			Name: fmt.Sprintf("Category %02d", i),
			Slug: fmt.Sprintf("category-%02d", i),
		})
		require.NoError(t, err)
	}

	first, err := svc.List(context.Background(), repository.Pagination{Page: 1})
	require.NoError(t, err)
	assert.Len(t, first.Items, repository.DefaultPerPage)
	assert.Equal(t, int64(20), first.Total)
	assert.Equal(t, 2, first.LastPage)

	second, err := svc.List(context.Background(), repository.Pagination{Page: 2})
	require.NoError(t, err)
	assert.Len(t, second.Items, 5)
	assert.Equal(t, "category-15", second.Items[0].Slug)
}

func TestProductService_PartialUpdate(t *testing.T) {
	svc := NewProductService(newFakeProductRepo(), newFakeProviderRepo(), newDiscardLogger())

	created, err := svc.Create(context.Background(), &usecase.CreateProductInput{
		Name:    "Espresso Beans",
		Price:   1299,
		Slug:    "espresso-beans",
		BrandID: 1,
	})
	require.NoError(t, err)
	// Stock defaults to available when the input omits it.
	assert.True(t, created.Stock)

	stock := false
	updated, err := svc.Update(context.Background(), created.ID, &usecase.UpdateProductInput{
		Stock: &stock,
	})
	require.NoError(t, err)

	assert.False(t, updated.Stock)
	assert.Equal(t, "Espresso Beans", updated.Name)
	assert.Equal(t, int64(1299), updated.Price)
	assert.Equal(t, "espresso-beans", updated.Slug)
	assert.Equal(t, uint(1), updated.BrandID)
}

func TestProductService_ListByProvider(t *testing.T) {
	providerRepo := newFakeProviderRepo()
	svc := NewProductService(newFakeProductRepo(), providerRepo, newDiscardLogger())

	provider := &entity.Provider{Name: "Roastery", Slug: "roastery"}
	require.NoError(t, providerRepo.Create(context.Background(), provider))

	_, err := svc.Create(context.Background(), &usecase.CreateProductInput{
		Name: "House Blend", Price: 999, Slug: "house-blend", BrandID: 1, ProviderID: &provider.ID,
	})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), &usecase.CreateProductInput{
		Name: "Unlisted", Price: 500, Slug: "unlisted", BrandID: 1,
	})
	require.NoError(t, err)

	page, err := svc.ListByProvider(context.Background(), provider.ID, repository.Pagination{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "house-blend", page.Items[0].Slug)

	// An unknown provider is a not-found, not an empty page.
	_, err = svc.ListByProvider(context.Background(), 999, repository.Pagination{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrResourceNotFound)
}

func TestProviderService_Accounts(t *testing.T) {
	repo := newFakeProviderRepo()
	svc := NewProviderService(repo, newDiscardLogger())

	memberID := uint(7)
	created, err := svc.Create(context.Background(), &usecase.CreateProviderInput{
		Name:     "Roastery",
		Slug:     "roastery",
		Address:  "1 Bean St",
		Phone:    "+15550001",
		MemberID: &memberID,
	})
	require.NoError(t, err)

	account, err := svc.GetAccount(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Roastery", account.Name)
	assert.Equal(t, "Jamie", account.AccountName)
	assert.Equal(t, "jamie@example.com", account.AccountEmail)

	page, err := svc.ListAccounts(context.Background(), repository.Pagination{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)

	_, err = svc.GetAccount(context.Background(), 999)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrResourceNotFound)
}
