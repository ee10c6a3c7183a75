package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/service"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// ProfileHandler exposes the caller's own profile.
type ProfileHandler struct {
	service *service.ProfileService
}

// NewProfileHandler constructs handler.
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: profileService}
}

// GetProfile GET /profile.
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	profile, err := h.service.GetOwn(c.Context(), principal.ID())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": profileResponse(profile)})
}

// UpdateProfile PATCH /profile.
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	patch := service.ProfilePatch{
		Contact:            req.Contact,
		Department:         req.Department,
		RealName:           req.RealName,
		AccessLevel:        req.AccessLevel,
		ProjectAccessLevel: req.ProjectAccessLevel,
	}
	profile, err := h.service.UpdateOwn(c.Context(), principal.ID(), patch)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": profileResponse(profile)})
}

func profileResponse(profile *domain.Profile) dto.ProfileResponse {
	return dto.ProfileResponse{
		ID:                 profile.ID,
		User:               profile.UserID,
		Contact:            profile.Contact,
		Department:         profile.Department,
		RealName:           profile.RealName,
		AccessLevel:        profile.AccessLevel,
		ProjectAccessLevel: profile.ProjectAccessLevel,
	}
}
