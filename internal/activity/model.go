package activity

import (
	"time"

	"tambua/internal/get_token"
)

const (
	ActionVehicleRegistration    = "ENREGISTREMENT_VEHICULE"
	ActionMotorcycleRegistration = "ENREGISTREMENT_MOTO"
	ActionLicenseApplication     = "DEMANDE_PERMIS"
	ActionFinePayment            = "PAIEMENT_AMENDE"
	ActionLicensePrint           = "IMPRESSION_PERMIS"
	ActionPinkCardPrint          = "IMPRESSION_CARTE_ROSE"
	ActionAttestationPrint       = "IMPRESSION_ATTESTATION"
)

var Actions = []string{
	ActionVehicleRegistration,
	ActionMotorcycleRegistration,
	ActionLicenseApplication,
	ActionFinePayment,
	ActionLicensePrint,
	ActionPinkCardPrint,
	ActionAttestationPrint,
}

// IsRegistration reports whether the action counts toward an agent's daily registrations.
func IsRegistration(action string) bool {
	switch action {
	case ActionVehicleRegistration, ActionMotorcycleRegistration, ActionLicenseApplication:
		return true
	}
	return false
}

type Activity struct {
	ID        string    `json:"id" yaml:"id"`
	AgentID   string    `json:"agent_id" yaml:"agent_id"`
	AgentName string    `json:"agent_name" yaml:"agent_name"`
	Date      time.Time `json:"date" yaml:"date"`
	Action    string    `json:"action" yaml:"action"`
	Details   string    `json:"details" yaml:"details"`
	Amount    *int64    `json:"amount,omitempty" yaml:"amount,omitempty"`
}

func (a Activity) Key() string { return a.ID }

// Actor is who performed an action, taken from the request token.
type Actor struct {
	AgentID string
	Name    string
}

func ActorFromPayload(p get_token.PayloadDTO) Actor {
	return Actor{AgentID: p.AgentID, Name: p.Actor()}
}

type RecordActivityDto struct {
	Actor   Actor
	Action  string
	Details string
	Amount  *int64
}

type ListActivitiesRequest struct {
	AgentID string `query:"agent_id"`
	Action  string `query:"action"`
	Date    string `query:"date"`
}
