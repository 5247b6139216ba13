package handler

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/paydesk/transfer-service/internal/usecase/account"
)

type AccountHandler struct {
	Accounts *account.Service
}

// CreateAccountRequest defines the account creation payload.
// The balance travels as a string to keep arbitrary decimal precision
// out of float64 territory.
type CreateAccountRequest struct {
	AccountID      string `json:"account_id"`
	InitialBalance string `json:"initial_balance"`
}

// AccountResponse is the wire representation of an account.
type AccountResponse struct {
	AccountID string `json:"account_id"`
	Balance   string `json:"balance"`
}

func (h *AccountHandler) CreateAccount(c *fiber.Ctx) error {
	var req CreateAccountRequest

	if err := c.BodyParser(&req); err != nil {
		slog.Warn("invalid account body", "error", err)
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if req.AccountID == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "account_id is required"})
	}

	initialBalance, err := decimal.NewFromString(req.InitialBalance)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid initial_balance format"})
	}

	acc, err := h.Accounts.Open(c.Context(), account.OpenAccountInput{
		ID:             req.AccountID,
		InitialBalance: initialBalance,
	})
	if err != nil {
		slog.Warn("account creation rejected", "account_id", req.AccountID, "error", err)
		return c.Status(statusFromError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	slog.Info("account created", "account_id", acc.ID())

	return c.Status(http.StatusCreated).JSON(AccountResponse{
		AccountID: acc.ID(),
		Balance:   acc.Balance().String(),
	})
}

func (h *AccountHandler) GetAccount(c *fiber.Ctx) error {
	id := c.Params("id")

	acc, err := h.Accounts.Get(c.Context(), id)
	if err != nil {
		return c.Status(statusFromError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(http.StatusOK).JSON(AccountResponse{
		AccountID: acc.ID(),
		Balance:   acc.Balance().String(),
	})
}
