package fine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"tambua/infra/database"
	"tambua/infra/metrics"
	"tambua/internal/activity"
	"tambua/pkg/money"
	"tambua/pkg/pdf"
	"tambua/validation"
)

var (
	ErrFineNotFound    = errors.New("Amende introuvable.")
	ErrReceiptNotFound = errors.New("Reçu introuvable.")
	ErrAlreadyPaid     = errors.New("Cette amende est déjà payée.")
	ErrPlateMismatch   = errors.New("Cette amende ne correspond pas à la plaque indiquée.")
	ErrNothingToPay    = errors.New("Aucune amende impayée pour cette plaque.")
	ErrUnknownStatus   = errors.New("Statut d'amende inconnu.")
)

type InterfaceService interface {
	CreateFineService(ctx context.Context, data CreateFineRequest) (Fine, error)
	UpdateFineService(ctx context.Context, data UpdateFineRequest) (Fine, error)
	DeleteFineService(ctx context.Context, id string) error
	GetFineService(ctx context.Context, id string) (Fine, error)
	ListFinesService(ctx context.Context, data ListFinesRequest) ([]Fine, error)
	ExportFinesPdfService(ctx context.Context, data ListFinesRequest) ([]byte, error)
	FinesByPlateService(ctx context.Context, plate string) (PlateFinesResponse, error)
	UnpaidFinesService(ctx context.Context, plate string) (PlateFinesResponse, error)
	PayFinesService(ctx context.Context, data PayFinesRequest, actor activity.Actor) (Receipt, error)
	GetReceiptService(ctx context.Context, transactionID string) (Receipt, error)
	ReceiptPdfService(ctx context.Context, transactionID string) ([]byte, error)
}

type Service struct {
	InterfaceRepository InterfaceRepository
	Activities          activity.InterfaceService
	Metrics             *metrics.Metrics
	Logger              *log.Logger
	Now                 func() time.Time

	payMu sync.Mutex
}

func NewFineService(repo InterfaceRepository, activities activity.InterfaceService, m *metrics.Metrics, logger *log.Logger) *Service {
	return &Service{
		InterfaceRepository: repo,
		Activities:          activities,
		Metrics:             m,
		Logger:              logger,
		Now:                 time.Now,
	}
}

func (s *Service) CreateFineService(ctx context.Context, data CreateFineRequest) (Fine, error) {
	if err := validation.Validate(data); err != nil {
		return Fine{}, err
	}
	result, err := s.InterfaceRepository.CreateFine(ctx, data.ParseCreateToFine(uuid.NewString(), s.Now()))
	if err != nil {
		return Fine{}, err
	}
	s.Logger.WithFields(log.Fields{"fine_id": result.ID, "plate": result.Plate, "amount": result.Amount}).Info("fine issued")
	return result, nil
}

func (s *Service) UpdateFineService(ctx context.Context, data UpdateFineRequest) (Fine, error) {
	if err := validation.Validate(data); err != nil {
		return Fine{}, err
	}
	result, err := s.InterfaceRepository.UpdateFine(ctx, data.ID, func(f *Fine) error {
		f.Reason = strings.TrimSpace(data.Reason)
		f.Amount = data.Amount
		f.Status = data.Status
		if !f.IsPaid() {
			f.PaidAt = nil
			f.TransactionID = ""
		}
		return nil
	})
	if errors.Is(err, database.ErrNotFound) {
		return Fine{}, ErrFineNotFound
	}
	return result, err
}

func (s *Service) DeleteFineService(ctx context.Context, id string) error {
	err := s.InterfaceRepository.DeleteFine(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return ErrFineNotFound
	}
	return err
}

func (s *Service) GetFineService(ctx context.Context, id string) (Fine, error) {
	f, err := s.InterfaceRepository.GetFineById(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return Fine{}, ErrFineNotFound
	}
	return f, err
}

func (s *Service) ListFinesService(ctx context.Context, data ListFinesRequest) ([]Fine, error) {
	status := data.Status
	if status == "all" {
		status = ""
	}
	if status != "" && !validation.Contains(validation.FineStatuses, status) {
		return nil, ErrUnknownStatus
	}
	return s.InterfaceRepository.ListFines(ctx, func(f Fine) bool {
		if status != "" && f.Status != status {
			return false
		}
		return validation.ContainsFold(f.Plate, data.Search) || validation.ContainsFold(f.Driver, data.Search)
	})
}

func (s *Service) ExportFinesPdfService(ctx context.Context, data ListFinesRequest) ([]byte, error) {
	fines, err := s.ListFinesService(ctx, data)
	if err != nil {
		return nil, err
	}
	return pdf.Bytes(pdf.Table{
		Title:       "Rapport des Amendes",
		Headers:     TableHeaders,
		Rows:        TableRows(fines),
		GeneratedAt: s.Now(),
	})
}

var TableHeaders = []string{"Plaque", "Conducteur", "Motif", "Montant", "Date", "Statut"}

func TableRows(fines []Fine) [][]string {
	rows := make([][]string, 0, len(fines))
	for _, f := range fines {
		rows = append(rows, []string{
			f.Plate,
			f.Driver,
			f.Reason,
			money.CDF(f.Amount),
			validation.FormatDateFR(f.Date),
			f.Status,
		})
	}
	return rows
}

func (s *Service) FinesByPlateService(ctx context.Context, plate string) (PlateFinesResponse, error) {
	fines, err := s.InterfaceRepository.ListFines(ctx, func(f Fine) bool {
		return validation.PlatesMatch(f.Plate, plate)
	})
	if err != nil {
		return PlateFinesResponse{}, err
	}
	return Summarize(fines), nil
}

func (s *Service) UnpaidFinesService(ctx context.Context, plate string) (PlateFinesResponse, error) {
	fines, err := s.InterfaceRepository.ListFines(ctx, func(f Fine) bool {
		return !f.IsPaid() && validation.PlatesMatch(f.Plate, plate)
	})
	if err != nil {
		return PlateFinesResponse{}, err
	}
	return Summarize(fines), nil
}

// PayFinesService settles the selected fines of one plate, or all its unpaid fines when none are selected.
func (s *Service) PayFinesService(ctx context.Context, data PayFinesRequest, actor activity.Actor) (Receipt, error) {
	if err := validation.Validate(data); err != nil {
		return Receipt{}, err
	}
	plate := validation.NormalizePlate(data.Plate)

	s.payMu.Lock()
	defer s.payMu.Unlock()

	var selected []Fine
	if len(data.FineIDs) == 0 {
		unpaid, err := s.UnpaidFinesService(ctx, plate)
		if err != nil {
			return Receipt{}, err
		}
		selected = unpaid.Fines
	} else {
		seen := make(map[string]bool, len(data.FineIDs))
		for _, id := range data.FineIDs {
			if seen[id] {
				continue
			}
			seen[id] = true

			f, err := s.GetFineService(ctx, id)
			if err != nil {
				return Receipt{}, err
			}
			if !validation.PlatesMatch(f.Plate, plate) {
				return Receipt{}, fmt.Errorf("%w (%s)", ErrPlateMismatch, id)
			}
			if f.IsPaid() {
				return Receipt{}, fmt.Errorf("%w (%s)", ErrAlreadyPaid, id)
			}
			selected = append(selected, f)
		}
	}
	if len(selected) == 0 {
		return Receipt{}, ErrNothingToPay
	}

	now := s.Now()
	txID, err := s.transactionID(ctx, now)
	if err != nil {
		return Receipt{}, err
	}

	receipt := Receipt{
		TransactionID: txID,
		Plate:         plate,
		Method:        data.Method,
		Date:          now,
		AgentName:     actor.Name,
	}
	ids := make([]string, 0, len(selected))
	for _, f := range selected {
		paid, err := s.InterfaceRepository.UpdateFine(ctx, f.ID, func(f *Fine) error {
			f.Status = validation.FineStatusPaid
			f.PaidAt = &now
			f.TransactionID = txID
			return nil
		})
		if err != nil {
			return Receipt{}, err
		}
		receipt.Fines = append(receipt.Fines, paid)
		receipt.Total += paid.Amount
		ids = append(ids, "#"+paid.ID)
	}

	receipt, err = s.InterfaceRepository.CreateReceipt(ctx, receipt)
	if err != nil {
		return Receipt{}, err
	}

	total := receipt.Total
	_, err = s.Activities.RecordActivityService(ctx, activity.RecordActivityDto{
		Actor:   actor,
		Action:  activity.ActionFinePayment,
		Details: fmt.Sprintf("Amende %s, Plaque %s", strings.Join(ids, ", "), plate),
		Amount:  &total,
	})
	if err != nil {
		s.Logger.WithError(err).Warn("payment activity not recorded")
	}

	if s.Metrics != nil {
		s.Metrics.Payments.Inc()
		s.Metrics.PaidAmount.Add(float64(total))
	}
	s.Logger.WithFields(log.Fields{
		"transaction_id": txID,
		"plate":          plate,
		"total":          total,
		"method":         data.Method,
	}).Info("fines paid")
	return receipt, nil
}

// transactionID is TX- followed by the last six digits of the millisecond clock, bumped until unused.
func (s *Service) transactionID(ctx context.Context, now time.Time) (string, error) {
	ms := now.UnixMilli()
	for i := 0; i < 1000000; i++ {
		id := fmt.Sprintf("TX-%06d", (ms+int64(i))%1000000)
		_, err := s.InterfaceRepository.GetReceipt(ctx, id)
		if errors.Is(err, database.ErrNotFound) {
			return id, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", errors.New("no transaction id available")
}

func (s *Service) GetReceiptService(ctx context.Context, transactionID string) (Receipt, error) {
	r, err := s.InterfaceRepository.GetReceipt(ctx, strings.ToUpper(strings.TrimSpace(transactionID)))
	if errors.Is(err, database.ErrNotFound) {
		return Receipt{}, ErrReceiptNotFound
	}
	return r, err
}

func (s *Service) ReceiptPdfService(ctx context.Context, transactionID string) ([]byte, error) {
	r, err := s.GetReceiptService(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(r.Fines))
	for _, f := range r.Fines {
		rows = append(rows, []string{f.Reason, money.Group(f.Amount)})
	}
	return pdf.Bytes(pdf.Table{
		Title:    "Reçu de Paiement d'Amende",
		Subtitle: "TAMBUA RDC",
		Summary: []pdf.Field{
			{Label: "Date:", Value: r.Date.Format("02/01/2006 15:04:05")},
			{Label: "N° Transaction:", Value: r.TransactionID},
			{Label: "Plaque:", Value: r.Plate},
			{Label: "Mode de paiement:", Value: r.Method},
			{Label: "TOTAL PAYÉ:", Value: money.FC(r.Total)},
		},
		Headers:     []string{"Infraction", "Montant (FC)"},
		Rows:        rows,
		Footer:      "Merci de votre paiement. www.tambua.cd",
		GeneratedAt: r.Date,
	})
}
