package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/revendix/revendix-api/internal/application/dto"
	"github.com/revendix/revendix-api/internal/domain"
	"github.com/revendix/revendix-api/internal/domain/entity"
	"github.com/revendix/revendix-api/internal/domain/repository"
)

// categorías de gasto válidas.
var validExpenseCategories = map[string]bool{
	entity.ExpenseCategoryShipping:  true,
	entity.ExpenseCategoryCustoms:   true,
	entity.ExpenseCategoryPackaging: true,
	entity.ExpenseCategoryMarketing: true,
	entity.ExpenseCategoryOther:     true,
}

// ExpenseUseCase CRUD de gastos, con imputación opcional a un arrivage.
type ExpenseUseCase struct {
	repo         repository.ExpenseRepository
	shipmentRepo repository.ShipmentRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository, shipmentRepo repository.ShipmentRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo, shipmentRepo: shipmentRepo}
}

// Create registra un gasto.
func (uc *ExpenseUseCase) Create(userID string, in dto.ExpenseRequest) (*entity.Expense, error) {
	if err := uc.validate(in); err != nil {
		return nil, err
	}
	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	expense := &entity.Expense{
		ID:         uuid.New().String(),
		Label:      in.Label,
		Category:   in.Category,
		Amount:     in.Amount,
		ShipmentID: in.ShipmentID,
		Date:       date,
		Notes:      in.Notes,
		CreatedBy:  userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// GetByID obtiene un gasto.
func (uc *ExpenseUseCase) GetByID(id string) (*entity.Expense, error) {
	expense, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, domain.ErrNotFound
	}
	return expense, nil
}

// Update actualiza un gasto.
func (uc *ExpenseUseCase) Update(id string, in dto.ExpenseRequest) (*entity.Expense, error) {
	expense, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.validate(in); err != nil {
		return nil, err
	}
	expense.Label = in.Label
	expense.Category = in.Category
	expense.Amount = in.Amount
	expense.ShipmentID = in.ShipmentID
	if in.Date != nil {
		expense.Date = *in.Date
	}
	expense.Notes = in.Notes
	expense.UpdatedAt = time.Now()
	if err := uc.repo.Update(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// List lista gastos filtrando por fechas y arrivage.
func (uc *ExpenseUseCase) List(from, to *time.Time, shipmentID string, limit, offset int) ([]*entity.Expense, error) {
	return uc.repo.List(from, to, shipmentID, limit, offset)
}

// Delete elimina un gasto.
func (uc *ExpenseUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func (uc *ExpenseUseCase) validate(in dto.ExpenseRequest) error {
	if in.Label == "" {
		return &domain.ValidationError{Field: "label", Reason: "obligatorio"}
	}
	if !validExpenseCategories[in.Category] {
		return &domain.ValidationError{Field: "category", Reason: "categoría de gasto desconocida"}
	}
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return &domain.ValidationError{Field: "amount", Reason: "debe ser positivo"}
	}
	if in.ShipmentID != "" {
		shipment, err := uc.shipmentRepo.GetByID(in.ShipmentID)
		if err != nil {
			return err
		}
		if shipment == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}
