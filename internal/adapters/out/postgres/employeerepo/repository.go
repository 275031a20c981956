package employeerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"cargotrack/internal/core/domain/model/employee"
	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/pkg/errs"
)

// uniqueViolation is the postgres error code for unique constraint violations.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// GormEmployeeRepository implements ports.EmployeeRepository using GORM.
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewGormEmployeeRepository creates a new GORM employee repository.
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// Add saves a new employee account. A login collision is reported as
// employee.ErrDuplicateLogin.
func (r *GormEmployeeRepository) Add(ctx context.Context, aggregate *employee.Employee) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return employee.ErrDuplicateLogin
		}
		return err
	}

	return nil
}

// Get retrieves an employee by ID.
func (r *GormEmployeeRepository) Get(ctx context.Context, id kernel.UUID) (*employee.Employee, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EmployeeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("employee", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByLogin retrieves an employee by their unique login.
func (r *GormEmployeeRepository) GetByLogin(ctx context.Context, login string) (*employee.Employee, error) {
	if login == "" {
		return nil, errs.NewValueIsRequiredError("login")
	}

	var dto EmployeeDTO
	if err := r.db.WithContext(ctx).First(&dto, "login = ?", login).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("employee", login)
		}
		return nil, err
	}

	return toDomain(dto)
}
