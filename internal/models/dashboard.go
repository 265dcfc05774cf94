package models

type DashboardUser struct {
	Email string `json:"email"`
}

type DashboardStats struct {
	TotalProducts int     `json:"totalProducts"`
	TotalOrders   int     `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

// Dashboard aggregates a seller's listings and purchase history for the
// dashboard page.
type Dashboard struct {
	User     DashboardUser  `json:"user"`
	Products []Product      `json:"products"`
	Orders   []Order        `json:"orders"`
	Stats    DashboardStats `json:"stats"`
}
