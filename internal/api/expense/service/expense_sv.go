package expenseService

import (
	"ExpenseTracker/internal/api/expense"
	"ExpenseTracker/internal/entity"
	contextPkg "ExpenseTracker/pkg/context"
	"errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"time"
)

func (s *expenseService) CreateExpense(ctx context.Context, req expense.CreateExpenseRequest) (entity.Expense, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.expenseRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Expense{}, err
	}

	date := time.Now()
	if req.Date != "" {
		date, err = expense.ParseDateParam(req.Date)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"date":       req.Date,
			}).Warn("Invalid expense date")
			return entity.Expense{}, expense.ErrInvalidDate
		}
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Expense{}, err
	}

	now := time.Now()
	record := entity.Expense{
		ID:            ULID,
		UserID:        req.UserID,
		Title:         req.Title,
		Amount:        req.Amount,
		Category:      req.Category,
		Description:   req.Description,
		Date:          date,
		PaymentMethod: req.PaymentMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := record.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid expense data")
		return entity.Expense{}, err
	}

	if err := repo.Expense.Create(ctx, record); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create expense")
		return entity.Expense{}, expense.ErrCreateExpense
	}

	s.invalidateStatistics(ctx, req.UserID)

	return record, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, id string, userID string) (entity.Expense, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.expenseRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Expense{}, err
	}

	record, err := repo.Expense.GetByID(ctx, id, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Warn("Failed to get expense by ID")
		return entity.Expense{}, err
	}

	return record, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, userID string, plan expense.ListExpensesQuery) ([]entity.Expense, int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.expenseRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, 0, err
	}

	records, total, err := repo.Expense.List(ctx, userID, plan)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to list expenses")
		return nil, 0, err
	}

	return records, total, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, req expense.UpdateExpenseRequest) (entity.Expense, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.expenseRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Expense{}, err
	}

	existing, err := repo.Expense.GetByID(ctx, req.ID, req.UserID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         req.ID,
			"error":      err.Error(),
		}).Warn("Failed to get existing expense")
		return entity.Expense{}, err
	}

	date := existing.Date
	if req.Date != "" {
		date, err = expense.ParseDateParam(req.Date)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"date":       req.Date,
			}).Warn("Invalid expense date")
			return entity.Expense{}, expense.ErrInvalidDate
		}
	}

	record := entity.Expense{
		ID:            req.ID,
		UserID:        req.UserID,
		Title:         req.Title,
		Amount:        req.Amount,
		Category:      req.Category,
		Description:   req.Description,
		Date:          date,
		PaymentMethod: req.PaymentMethod,
		CreatedAt:     existing.CreatedAt,
		UpdatedAt:     time.Now(),
	}

	if err := record.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid expense data")
		return entity.Expense{}, err
	}

	if err := repo.Expense.Update(ctx, record); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update expense")
		if errors.Is(err, expense.ErrExpenseNotFound) {
			return entity.Expense{}, err
		}
		return entity.Expense{}, expense.ErrUpdateExpense
	}

	s.invalidateStatistics(ctx, req.UserID)

	return record, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.expenseRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	if err := repo.Expense.Delete(ctx, id, userID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Warn("Failed to delete expense")
		if errors.Is(err, expense.ErrExpenseNotFound) {
			return err
		}
		return expense.ErrDeleteExpense
	}

	s.invalidateStatistics(ctx, userID)

	return nil
}
