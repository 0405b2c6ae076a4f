package dto

import "time"

// ShiftReportRequest ventana del turno. OperatorID vacío = todos.
type ShiftReportRequest struct {
	From       time.Time
	To         time.Time
	OperatorID string
}

// CategoryTotalsResponse fila del desglose por categoría.
type CategoryTotalsResponse struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
	Exits      int    `json:"exits"`
	Revenue    string `json:"revenue"`
}

// ShiftReportResponse reporte de turno con montos ya formateados.
type ShiftReportResponse struct {
	LotID       string                   `json:"lot_id"`
	OperatorID  string                   `json:"operator_id,omitempty"`
	From        time.Time                `json:"from"`
	To          time.Time                `json:"to"`
	Entries     int                      `json:"entries"`
	Exits       int                      `json:"exits"`
	StillOpen   int                      `json:"still_open"`
	Revenue     string                   `json:"revenue"`
	AverageStay string                   `json:"average_stay"`
	ByCategory  []CategoryTotalsResponse `json:"by_category"`
}
