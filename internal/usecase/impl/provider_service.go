package impl

import (
	"context"
	"log/slog"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/usecase"

	"github.com/pkg/errors"
)

// providerService layers the denormalized account reads on top of the shared
// CRUD orchestration.
type providerService struct {
	*resourceService[entity.Provider, usecase.CreateProviderInput, usecase.UpdateProviderInput]
	providerRepo repository.ProviderRepository
}

// NewProviderService is the constructor for the provider usecase.
func NewProviderService(providerRepo repository.ProviderRepository, logger *slog.Logger) usecase.ProviderUsecase {
	return &providerService{
		resourceService: newResourceService(
			"provider",
			providerRepo,
			buildProvider,
			mergeProvider,
			logger,
		),
		providerRepo: providerRepo,
	}
}

func buildProvider(input *usecase.CreateProviderInput) *entity.Provider {
	return &entity.Provider{
		Name:     input.Name,
		Slug:     input.Slug,
		Address:  input.Address,
		Phone:    input.Phone,
		MemberID: input.MemberID,
	}
}

func mergeProvider(provider *entity.Provider, input *usecase.UpdateProviderInput) {
	if input.Name != nil {
		provider.Name = *input.Name
	}
	if input.Slug != nil {
		provider.Slug = *input.Slug
	}
	if input.Address != nil {
		provider.Address = *input.Address
	}
	if input.Phone != nil {
		provider.Phone = *input.Phone
	}
	if input.MemberID != nil {
		provider.MemberID = input.MemberID
	}
}

// ListAccounts returns one page of providers joined to their backing accounts.
func (srv *providerService) ListAccounts(ctx context.Context, page repository.Pagination) (*repository.Page[entity.ProviderAccount], error) {
	accounts, err := srv.providerRepo.ListAccounts(ctx, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list provider accounts")
	}

	return accounts, nil
}

// GetAccount returns one provider joined to its backing account.
func (srv *providerService) GetAccount(ctx context.Context, id uint) (*entity.ProviderAccount, error) {
	account, err := srv.providerRepo.FindAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrResourceNotFound
		}

		return nil, errors.Wrap(err, "failed to find provider account by id")
	}

	return account, nil
}
