package handlers

import (
	"net/http"

	"github.com/marketverse/storefront/internal/api/middleware"
	service "github.com/marketverse/storefront/internal/services"
	"github.com/marketverse/storefront/internal/utils/response"
)

type AdminHandler struct {
	adminService service.AdminService
}

func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// POST /api/v1/admin/reset wipes every store. Development utility only.
func (h *AdminHandler) Reset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if err := h.adminService.ResetAll(r.Context()); err != nil {
			logger.Error("Error resetting stores", "error", err.Error())
			response.Error(w, err)
			return
		}

		logger.Warn("All store data cleared")
		response.WriteJson(w, http.StatusOK, map[string]string{"message": "All data cleared successfully"})
	}
}
