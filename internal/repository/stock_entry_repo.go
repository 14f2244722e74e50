package repository

import (
	"agrostock-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StockEntryRepository interface {
	Create(entry *model.StockEntry) error
	FindAll() ([]model.StockEntry, error)
	FindByID(id uuid.UUID) (*model.StockEntry, error)
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.StockEntry, error)
	UpdateStatus(tx *gorm.DB, id uuid.UUID, status model.StockStatus) error
	CountPending() (int64, error)
}

type stockEntryRepo struct {
	db *gorm.DB
}

func NewStockEntryRepo(db *gorm.DB) StockEntryRepository {
	return &stockEntryRepo{db}
}

func (r *stockEntryRepo) Create(entry *model.StockEntry) error {
	return r.db.Create(entry).Error
}

func (r *stockEntryRepo) FindAll() ([]model.StockEntry, error) {
	var entries []model.StockEntry
	err := r.db.Preload("Product").Order("created_at DESC").Find(&entries).Error
	return entries, err
}

func (r *stockEntryRepo) FindByID(id uuid.UUID) (*model.StockEntry, error) {
	return r.FindByIDTx(r.db, id)
}

func (r *stockEntryRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.StockEntry, error) {
	var entry model.StockEntry
	err := tx.Preload("Product").First(&entry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateStatus writes the terminal status of an entry. The registry service
// is the only caller and has already checked the PENDING precondition.
func (r *stockEntryRepo) UpdateStatus(tx *gorm.DB, id uuid.UUID, status model.StockStatus) error {
	return tx.Model(&model.StockEntry{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *stockEntryRepo) CountPending() (int64, error) {
	var count int64
	err := r.db.Model(&model.StockEntry{}).
		Where("status = ?", model.StockPending).
		Count(&count).Error
	return count, err
}
