package postgres

import (
	"context"
	"time"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// providerRepository extends the generic CRUD repository with the
// denormalized account reads joined through members to users.
type providerRepository struct {
	*resourceRepository[model.ProviderModel, entity.Provider]
	db *gorm.DB
}

// NewProviderRepository is the constructor for providerRepository.
func NewProviderRepository(db *gorm.DB) repository.ProviderRepository {
	return &providerRepository{
		resourceRepository: newResourceRepository(db, toProviderDomain, fromProviderDomain),
		db:                 db,
	}
}

// providerAccountRow is the flat scan target for the join query.
type providerAccountRow struct {
	ID           uint
	Name         string
	Slug         string
	Address      string
	Phone        string
	MemberID     *uint
	CreatedAt    time.Time
	UpdatedAt    time.Time
	AccountName  string
	AccountEmail string
}

func (repo *providerRepository) accountQuery(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.ProviderModel{}).
		Select("providers.*, users.name AS account_name, users.email AS account_email").
		Joins("LEFT JOIN members ON members.id = providers.member_id").
		Joins("LEFT JOIN users ON users.id = members.user_id")
}

// ListAccounts returns a page of providers joined to their backing accounts.
func (repo *providerRepository) ListAccounts(ctx context.Context, page repository.Pagination) (*repository.Page[entity.ProviderAccount], error) {
	page = page.Normalize()

	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.ProviderModel{}).Count(&total).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count providers")
	}

	var rows []providerAccountRow
	err := repo.accountQuery(ctx).
		Order("providers.id").
		Limit(page.PerPage).
		Offset(page.Offset()).
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list provider accounts")
	}

	items := make([]*entity.ProviderAccount, 0, len(rows))
	for i := range rows {
		items = append(items, toProviderAccountDomain(&rows[i]))
	}

	return repository.NewPage(items, page, total), nil
}

// FindAccountByID returns one provider joined to its backing account.
func (repo *providerRepository) FindAccountByID(ctx context.Context, id uint) (*entity.ProviderAccount, error) {
	var row providerAccountRow
	result := repo.accountQuery(ctx).
		Where("providers.id = ?", id).
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to find provider account by id")
	}
	// Scan does not raise ErrRecordNotFound; an empty result shows up as
	// zero affected rows.
	if result.RowsAffected == 0 {
		return nil, repository.ErrNotFound
	}

	return toProviderAccountDomain(&row), nil
}

// --- Mapper Functions ---

func toProviderDomain(data *model.ProviderModel) *entity.Provider {
	if data == nil {
		return nil
	}

	return &entity.Provider{
		ID:        data.ID,
		Name:      data.Name,
		Slug:      data.Slug,
		Address:   data.Address,
		Phone:     data.Phone,
		MemberID:  data.MemberID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromProviderDomain(data *entity.Provider) *model.ProviderModel {
	if data == nil {
		return nil
	}

	return &model.ProviderModel{
		ID:        data.ID,
		Name:      data.Name,
		Slug:      data.Slug,
		Address:   data.Address,
		Phone:     data.Phone,
		MemberID:  data.MemberID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toProviderAccountDomain(row *providerAccountRow) *entity.ProviderAccount {
	if row == nil {
		return nil
	}

	return &entity.ProviderAccount{
		Provider: entity.Provider{
			ID:        row.ID,
			Name:      row.Name,
			Slug:      row.Slug,
			Address:   row.Address,
			Phone:     row.Phone,
			MemberID:  row.MemberID,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		},
		AccountName:  row.AccountName,
		AccountEmail: row.AccountEmail,
	}
}
