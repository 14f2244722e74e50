package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"agrostock-backend/internal/model"
	"agrostock-backend/internal/repository"
	"agrostock-backend/internal/ws"
	"agrostock-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// InventoryService tracks products and incoming stock batches, and owns the
// approval state transition that credits approved quantities to the catalog.
type InventoryService interface {
	CreateProduct(req *model.Product, actor Actor) error
	CreateStockEntry(req *model.StockEntry, actor Actor) error
	ApproveOrReject(entryID uuid.UUID, decision model.StockStatus, actor Actor) (*model.StockEntry, error)
	GetAllProducts() ([]model.Product, error)
	GetAllStockEntries() ([]model.StockEntry, error)
}

type inventoryService struct {
	store     *Store
	entryRepo repository.StockEntryRepository
	catalog   Catalog
	audit     AuditService
	hub       *ws.Hub
	insight   *InsightService
	log       *logrus.Logger
}

func NewInventoryService(
	store *Store,
	entryRepo repository.StockEntryRepository,
	catalog Catalog,
	audit AuditService,
	hub *ws.Hub,
	insight *InsightService,
	log *logrus.Logger,
) InventoryService {
	return &inventoryService{
		store:     store,
		entryRepo: entryRepo,
		catalog:   catalog,
		audit:     audit,
		hub:       hub,
		insight:   insight,
		log:       log,
	}
}

func (s *inventoryService) CreateProduct(req *model.Product, actor Actor) error {
	if !actor.Role.Can(model.CapManageProducts) {
		return fmt.Errorf("role %s cannot manage products: %w", actor.Role, ErrPermissionDenied)
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("field '%s' failed on tag '%s': %w", first.FailedField, first.Tag, ErrInvalidInput)
	}

	err := s.store.WithLock(func(tx *gorm.DB) error {
		return tx.Create(req).Error
	})
	if err != nil {
		return err
	}

	s.broadcast("product_created", actor, map[string]interface{}{
		"product": map[string]interface{}{
			"id":    req.ID,
			"name":  req.Name,
			"stock": req.CurrentStock,
		},
		"message": fmt.Sprintf("%s created product '%s'", actor.Name, req.Name),
	})
	s.refreshInsight()
	return nil
}

func (s *inventoryService) CreateStockEntry(req *model.StockEntry, actor Actor) error {
	if !actor.Role.Can(model.CapRecordIntake) {
		return fmt.Errorf("role %s cannot record intake: %w", actor.Role, ErrPermissionDenied)
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("field '%s' failed on tag '%s': %w", first.FailedField, first.Tag, ErrInvalidInput)
	}

	// New entries always start PENDING and carry the receiving actor;
	// clients cannot pre-approve a batch.
	req.Status = model.StockPending
	req.Product = nil
	if req.ReceivedBy == "" {
		req.ReceivedBy = actor.Name
	}

	return s.store.WithLock(func(tx *gorm.DB) error {
		if _, err := s.catalog.GetProductTx(tx, req.ProductID); err != nil {
			return err
		}
		return tx.Create(req).Error
	})
}

// ApproveOrReject finalizes a PENDING entry. An approval credits the entry's
// quantity to the product and appends one STOCK_APPROVAL audit entry; a
// rejection flips the status only. The status change, the stock change, and
// the audit append commit or roll back together.
func (s *inventoryService) ApproveOrReject(entryID uuid.UUID, decision model.StockStatus, actor Actor) (*model.StockEntry, error) {
	if !actor.Role.Can(model.CapApproveIntake) {
		return nil, fmt.Errorf("role %s cannot approve stock: %w", actor.Role, ErrPermissionDenied)
	}
	if decision != model.StockApproved && decision != model.StockRejected {
		return nil, fmt.Errorf("decision must be APPROVED or REJECTED: %w", ErrInvalidInput)
	}

	var result *model.StockEntry
	err := s.store.WithLock(func(tx *gorm.DB) error {
		entry, err := s.entryRepo.FindByIDTx(tx, entryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("stock entry %s: %w", entryID, ErrNotFound)
			}
			return err
		}

		if entry.Status != model.StockPending {
			return fmt.Errorf("entry %s is already %s: %w", entry.BatchNumber, entry.Status, ErrInvalidTransition)
		}

		if err := s.entryRepo.UpdateStatus(tx, entry.ID, decision); err != nil {
			return err
		}

		action := model.ActionStockRejection
		details := fmt.Sprintf("Rejected batch %s of %d units", entry.BatchNumber, entry.Quantity)
		if decision == model.StockApproved {
			if _, err := s.catalog.AdjustStock(tx, entry.ProductID, entry.Quantity); err != nil {
				return err
			}
			action = model.ActionStockApproval
			details = fmt.Sprintf("Approved batch %s of %d units", entry.BatchNumber, entry.Quantity)
		}

		if err := s.audit.Append(tx, actor, action, details, model.SeverityInfo); err != nil {
			return err
		}

		entry.Status = decision
		result = entry
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.broadcast("stock_entry_decided", actor, map[string]interface{}{
		"entry": map[string]interface{}{
			"id":           result.ID,
			"batch_number": result.BatchNumber,
			"quantity":     result.Quantity,
			"status":       result.Status,
		},
		"message": fmt.Sprintf("%s marked batch %s as %s", actor.Name, result.BatchNumber, result.Status),
	})
	if decision == model.StockApproved {
		s.refreshInsight()
	}
	return result, nil
}

func (s *inventoryService) GetAllProducts() ([]model.Product, error) {
	return s.catalog.GetAllProducts()
}

func (s *inventoryService) GetAllStockEntries() ([]model.StockEntry, error) {
	return s.entryRepo.FindAll()
}

func (s *inventoryService) broadcast(event string, actor Actor, payload map[string]interface{}) {
	if s.hub == nil {
		return
	}
	payload["type"] = "stock_update"
	payload["action"] = event
	payload["user"] = map[string]interface{}{"id": actor.ID, "name": actor.Name}

	go func() {
		msg, err := json.Marshal(payload)
		if err != nil {
			s.log.WithError(err).Warn("failed to encode ws payload")
			return
		}
		s.hub.Broadcast <- msg
	}()
}

func (s *inventoryService) refreshInsight() {
	if s.insight != nil {
		s.insight.Refresh()
	}
}
