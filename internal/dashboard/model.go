package dashboard

import (
	"tambua/internal/activity"
	"tambua/internal/report"
)

const (
	PeriodWeekly    = "weekly"
	PeriodMonthly   = "monthly"
	PeriodQuarterly = "quarterly"
)

// OthersLabel groups every reason past the top three.
const OthersLabel = "Autres"

var weekdays = []string{"Lun", "Mar", "Mer", "Jeu", "Ven", "Sam", "Dim"}

type SupervisorRequest struct {
	Period string `query:"period" validate:"omitempty,oneof=weekly monthly quarterly"`
}

type AgentRequest struct {
	AgentID string `query:"agent_id"`
	Date    string `query:"date"`
}

type Totals struct {
	Vehicles         int   `json:"vehicles"`
	Motorcycles      int   `json:"motorcycles"`
	Registrations    int   `json:"registrations"`
	CollectedRevenue int64 `json:"collected_revenue"`
	PaidFines        int   `json:"paid_fines"`
	PendingFines     int   `json:"pending_fines"`
	Prints           int   `json:"prints"`
}

type Share struct {
	Name    string `json:"name"`
	Count   int    `json:"count"`
	Percent int    `json:"value"`
}

type SupervisorResponse struct {
	Period  string        `json:"period"`
	Totals  Totals        `json:"totals"`
	Revenue report.Series `json:"revenue"`
	Reasons []Share       `json:"reasons"`
}

type PrintCounts struct {
	License     int `json:"permis"`
	PinkCard    int `json:"carte_rose"`
	Attestation int `json:"attestation_motard"`
	Total       int `json:"total"`
}

type AgentResponse struct {
	AgentID                 string              `json:"agent_id"`
	Date                    string              `json:"date"`
	VehicleRegistrations    int                 `json:"vehicle_registrations"`
	MotorcycleRegistrations int                 `json:"motorcycle_registrations"`
	LicenseRegistrations    int                 `json:"license_registrations"`
	Prints                  PrintCounts         `json:"prints"`
	FinePaymentsCount       int                 `json:"fine_payments_count"`
	FinePaymentsValue       int64               `json:"fine_payments_value"`
	FinePaymentsLabel       string              `json:"fine_payments_label"`
	Activities              []activity.Activity `json:"activities"`
}
