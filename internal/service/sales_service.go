package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"agrostock-backend/internal/model"
	"agrostock-backend/internal/repository"
	"agrostock-backend/internal/ws"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SaleRequest carries the caller's input for one sale. UnitPrice arrives as
// a decimal string so currency amounts never pass through binary floats.
type SaleRequest struct {
	ProductID     uuid.UUID       `json:"product_id"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
}

// SalesService validates and records sales, deducting sold quantities from
// the catalog in the same atomic unit that creates the sale record.
type SalesService interface {
	RecordSale(req SaleRequest, actor Actor) (*model.Sale, error)
	GetAllSales() ([]model.Sale, error)
	TotalRevenue() (decimal.Decimal, error)
}

type salesService struct {
	store    *Store
	saleRepo repository.SaleRepository
	catalog  Catalog
	audit    AuditService
	hub      *ws.Hub
	insight  *InsightService
	log      *logrus.Logger
}

func NewSalesService(
	store *Store,
	saleRepo repository.SaleRepository,
	catalog Catalog,
	audit AuditService,
	hub *ws.Hub,
	insight *InsightService,
	log *logrus.Logger,
) SalesService {
	return &salesService{
		store:    store,
		saleRepo: saleRepo,
		catalog:  catalog,
		audit:    audit,
		hub:      hub,
		insight:  insight,
		log:      log,
	}
}

// RecordSale runs the sale transaction: validate input, check available
// stock, deduct it through the catalog choke point, create the immutable
// sale record, and append one NEW_SALE audit entry. Either all of that
// commits or none of it does.
func (s *salesService) RecordSale(req SaleRequest, actor Actor) (*model.Sale, error) {
	if !actor.Role.Can(model.CapRecordSale) {
		return nil, fmt.Errorf("role %s cannot record sales: %w", actor.Role, ErrPermissionDenied)
	}
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive: %w", ErrInvalidInput)
	}
	if req.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("unit price cannot be negative: %w", ErrInvalidInput)
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, fmt.Errorf("customer name is required: %w", ErrInvalidInput)
	}

	phone := req.CustomerPhone
	if phone == "" {
		phone = "N/A"
	}

	var sale *model.Sale
	err := s.store.WithLock(func(tx *gorm.DB) error {
		product, err := s.catalog.GetProductTx(tx, req.ProductID)
		if err != nil {
			return err
		}

		// Strict availability check; selling exactly the remaining stock
		// is allowed.
		if req.Quantity > product.CurrentStock {
			return fmt.Errorf("requested %d of %d available: %w", req.Quantity, product.CurrentStock, ErrInsufficientStock)
		}

		if _, err := s.catalog.AdjustStock(tx, req.ProductID, -req.Quantity); err != nil {
			return err
		}

		total := decimal.NewFromInt(int64(req.Quantity)).Mul(req.UnitPrice)
		sale = &model.Sale{
			ProductID:     req.ProductID,
			Quantity:      req.Quantity,
			UnitPrice:     req.UnitPrice,
			TotalAmount:   total,
			CustomerName:  req.CustomerName,
			CustomerPhone: phone,
			ProcessedBy:   actor.Name,
		}
		if err := s.saleRepo.Create(tx, sale); err != nil {
			return err
		}

		details := fmt.Sprintf("Processed sale to %s for ₦%s", sale.CustomerName, sale.TotalAmount.StringFixed(2))
		return s.audit.Append(tx, actor, model.ActionNewSale, details, model.SeverityInfo)
	})
	if err != nil {
		return nil, err
	}

	s.broadcast(actor, sale)
	if s.insight != nil {
		s.insight.Refresh()
	}
	return sale, nil
}

func (s *salesService) GetAllSales() ([]model.Sale, error) {
	return s.saleRepo.FindAll()
}

func (s *salesService) TotalRevenue() (decimal.Decimal, error) {
	return s.saleRepo.TotalRevenue()
}

func (s *salesService) broadcast(actor Actor, sale *model.Sale) {
	if s.hub == nil {
		return
	}
	go func() {
		payload := map[string]interface{}{
			"type":   "stock_update",
			"action": "sale_recorded",
			"sale": map[string]interface{}{
				"id":           sale.ID,
				"product_id":   sale.ProductID,
				"quantity":     sale.Quantity,
				"total_amount": sale.TotalAmount.StringFixed(2),
				"customer":     sale.CustomerName,
			},
			"user":    map[string]interface{}{"id": actor.ID, "name": actor.Name},
			"message": fmt.Sprintf("%s sold %d units to %s", actor.Name, sale.Quantity, sale.CustomerName),
		}
		msg, err := json.Marshal(payload)
		if err != nil {
			s.log.WithError(err).Warn("failed to encode ws payload")
			return
		}
		s.hub.Broadcast <- msg
	}()
}
