package dto

import "github.com/shopspring/decimal"

// StatsResponse resumen agregado del inventario activo, para el dashboard.
type StatsResponse struct {
	TotalItems     int             `json:"total_items"`
	OutOfStock     int             `json:"out_of_stock"`
	LowStock       int             `json:"low_stock"`
	OK             int             `json:"ok"`
	TotalValuation decimal.Decimal `json:"total_valuation"`
	TotalUnits     int64           `json:"total_units"`
	ByCategory     map[string]int  `json:"by_category"`
}

// TopValueResponse ranking de artículos por valuación descendente.
type TopValueResponse struct {
	Total int            `json:"total"`
	Items []ItemResponse `json:"items"`
}
