package validation

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

const (
	FineStatusPending = "En attente"
	FineStatusPaid    = "Payée"
	FineStatusLate    = "En retard"

	ValidityValid    = "Valide"
	ValiditySoon     = "Bientôt expiré"
	ValidityExpired  = "Expiré"
	AgentActive      = "Actif"
	AgentInactive    = "Inactif"
	SeverityLight    = "LEGER"
	SeverityMedium   = "MOYEN"
	SeveritySerious  = "GRAVE"
	SeverityCritical = "TRES_GRAVE"

	PaymentCash   = "Espèces"
	PaymentMobile = "Mobile Money"
	PaymentCard   = "Carte bancaire"
)

var (
	FineStatuses      = []string{FineStatusPending, FineStatusPaid, FineStatusLate}
	Validities        = []string{ValidityValid, ValiditySoon, ValidityExpired}
	AgentStatuses     = []string{AgentActive, AgentInactive}
	Severities        = []string{SeverityLight, SeverityMedium, SeveritySerious, SeverityCritical}
	LicenseCategories = []string{"A", "B", "C", "D", "E", "F"}
	PaymentMethods    = []string{PaymentCash, PaymentMobile, PaymentCard}
	Zones             = []string{"Goma", "Bukavu", "Kinshasa"}
)

var severityLabels = map[string]string{
	SeverityLight:    "Léger",
	SeverityMedium:   "Moyen",
	SeveritySerious:  "Grave",
	SeverityCritical: "Très Grave",
}

// SeverityLabel returns the display label, or the raw value when unknown.
func SeverityLabel(severity string) string {
	if l, ok := severityLabels[severity]; ok {
		return l
	}
	return severity
}

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		_ = v.RegisterValidation("fine_status", oneOf(FineStatuses))
		_ = v.RegisterValidation("validity", oneOf(Validities))
		_ = v.RegisterValidation("agent_status", oneOf(AgentStatuses))
		_ = v.RegisterValidation("severity", oneOf(Severities))
		_ = v.RegisterValidation("license_category", oneOf(LicenseCategories))
		_ = v.RegisterValidation("payment_method", oneOf(PaymentMethods))
		_ = v.RegisterValidation("zone", zoneFilter)
		instance = v
	})
	return instance
}

func oneOf(values []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return Contains(values, fl.Field().String())
	}
}

// zoneFilter accepts "all" or a known zone, in any case.
func zoneFilter(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	if strings.EqualFold(v, "all") {
		return true
	}
	for _, z := range Zones {
		if strings.EqualFold(z, v) {
			return true
		}
	}
	return false
}

func Validate(data interface{}) error {
	return get().Struct(data)
}

func Contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}

// NormalizePlate trims and upper-cases a plate; inner spaces are kept ("GOM 456 CD").
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

func NormalizeLicenseNumber(number string) string {
	return strings.ToUpper(strings.TrimSpace(number))
}

func PlatesMatch(a, b string) bool {
	return NormalizePlate(a) == NormalizePlate(b)
}

// ContainsFold is a case-insensitive substring test; an empty needle matches.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(strings.TrimSpace(needle)))
}
