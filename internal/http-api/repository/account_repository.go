package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/pliabraaten/restaurant-tracker/internal/http-api/models"
)

// ErrDuplicateKey is returned when an insert trips a unique constraint that
// the service-level existence check missed (two requests racing).
var ErrDuplicateKey = errors.New("duplicate key")

// AccountRepository defines the interface for account data operations.
type AccountRepository interface {
	CreateWithPerson(person *models.Person, account *models.Account) error
	FindByUsername(username string) (*models.Account, error)
	FindByID(id int64) (*models.Account, error)
	UpdatePassword(id int64, passwordHash string) error
	TouchLastLogin(id int64) error
	CountMealsByPerson(personID int64) (int64, error)
	UpdatePersonName(personID int64, name string) error
}

// accountRepository is the GORM implementation of AccountRepository.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new instance of AccountRepository in a GORM implementation
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

// CreateWithPerson inserts the Person and its Account in one transaction so a
// failed account insert never leaves an orphaned person row.
func (r *accountRepository) CreateWithPerson(person *models.Person, account *models.Account) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(person).Error; err != nil {
			return err
		}
		account.PersonID = person.ID
		return tx.Create(account).Error
	})
	return mapDuplicate(err)
}

func (r *accountRepository) FindByUsername(username string) (*models.Account, error) {
	var account models.Account
	// return nil on miss, not a zero-value struct, so callers can rely on the error
	if err := r.db.Where("username = ?", username).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) FindByID(id int64) (*models.Account, error) {
	var account models.Account
	if err := r.db.Preload("Person").First(&account, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) UpdatePassword(id int64, passwordHash string) error {
	return r.db.Model(&models.Account{}).Where("id = ?", id).
		Update("password_hash", passwordHash).Error
}

func (r *accountRepository) TouchLastLogin(id int64) error {
	return r.db.Model(&models.Account{}).Where("id = ?", id).
		Update("last_login", gorm.Expr("NOW()")).Error
}

func (r *accountRepository) CountMealsByPerson(personID int64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Meal{}).Where("person_id = ?", personID).Count(&count).Error
	return count, err
}

func (r *accountRepository) UpdatePersonName(personID int64, name string) error {
	return r.db.Model(&models.Person{}).Where("id = ?", personID).
		Update("name", name).Error
}

// mapDuplicate translates the postgres unique-violation code into ErrDuplicateKey.
func mapDuplicate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateKey
	}
	return err
}
