package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-service/internal/service"
)

// AuditHandler exposes the action journal.
type AuditHandler struct {
	service *service.AuditService
}

// NewAuditHandler constructs handler.
func NewAuditHandler(auditService *service.AuditService) *AuditHandler {
	return &AuditHandler{service: auditService}
}

// ListLogHistory GET /loghistory. Newest first.
func (h *AuditHandler) ListLogHistory(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	entries, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.LogEntryResponse, 0, len(entries))
	for _, entry := range entries {
		items = append(items, dto.LogEntryResponse{
			ID:        entry.ID,
			User:      entry.UserID,
			Action:    entry.Action,
			Timestamp: entry.Timestamp,
			Details:   entry.Details,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}
