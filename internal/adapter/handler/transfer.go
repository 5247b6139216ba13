package handler

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/paydesk/transfer-service/internal/usecase/transfer"
)

type TransferHandler struct {
	Transfers *transfer.Service
}

// TransferRequest defines the fund transfer payload.
type TransferRequest struct {
	FromAccountID string `json:"from_account_id"`
	ToAccountID   string `json:"to_account_id"`
	Amount        string `json:"amount"`
}

// TransferResponse is returned for a committed transfer.
type TransferResponse struct {
	TransferID    string `json:"transfer_id"`
	FromAccountID string `json:"from_account_id"`
	ToAccountID   string `json:"to_account_id"`
	Amount        string `json:"amount"`
}

func (h *TransferHandler) Transfer(c *fiber.Ctx) error {
	var req TransferRequest

	if err := c.BodyParser(&req); err != nil {
		slog.Warn("invalid transfer body", "error", err)
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	// Shape validation happens here; the coordinator only sees
	// well-formed input.
	if req.FromAccountID == "" || req.ToAccountID == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "from_account_id and to_account_id are required"})
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid amount format"})
	}

	tr, err := h.Transfers.Transfer(c.Context(), transfer.TransferInput{
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		Amount:        amount,
	})
	if err != nil {
		slog.Warn("transfer rejected",
			"from_account_id", req.FromAccountID,
			"to_account_id", req.ToAccountID,
			"error", err)
		return c.Status(statusFromError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	slog.Info("transfer completed",
		"transfer_id", tr.ID,
		"from_account_id", tr.FromAccountID,
		"to_account_id", tr.ToAccountID,
		"amount", tr.Amount)

	return c.Status(http.StatusOK).JSON(TransferResponse{
		TransferID:    tr.ID.String(),
		FromAccountID: tr.FromAccountID,
		ToAccountID:   tr.ToAccountID,
		Amount:        tr.Amount.String(),
	})
}
