package expenseHandler

import (
	contextPkg "ExpenseTracker/pkg/context"
	"ExpenseTracker/pkg/handlerUtil"
	jwtPkg "ExpenseTracker/pkg/jwt"
	"ExpenseTracker/pkg/log"
	"errors"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
	"strconv"
	"time"
)

func (h *ExpenseHandler) GetStatistics(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing expense statistics request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	year, err := parseOptionalInt(ctx.Query("year"))
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("year must be a number"), ctx.Path())
	}

	month, err := parseOptionalInt(ctx.Query("month"))
	if err != nil || month < 0 || month > 12 {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("month must be a number between 1 and 12"), ctx.Path())
	}

	report, err := h.expenseService.GetStatistics(c, userData.ID, year, month)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_statistics")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, report)
	}
}

func parseOptionalInt(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	return strconv.Atoi(value)
}
