package handlers

import (
	"net/http"

	appErrors "github.com/marketverse/storefront/internal/errors"
	service "github.com/marketverse/storefront/internal/services"
	"github.com/marketverse/storefront/internal/utils/response"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GET /api/v1/dashboard?userEmail=
func (h *DashboardHandler) GetDashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		userEmail := r.URL.Query().Get("userEmail")
		if userEmail == "" {
			response.Error(w, appErrors.BadRequestError("User email required"))
			return
		}

		dashboard, err := h.dashboardService.GetDashboard(r.Context(), userEmail)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.WriteJson(w, http.StatusOK, dashboard)
	}
}
