package vehicle

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tambua/infra/logger"
	"tambua/infra/metrics"
	"tambua/internal/activity"
	"tambua/internal/fine"
	bucket "tambua/pkg/s3"
	"tambua/validation"
)

var now = time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC)

type recorder struct {
	mu   sync.Mutex
	seen []activity.RecordActivityDto
}

func (r *recorder) RecordActivityService(_ context.Context, data activity.RecordActivityDto) (activity.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, data)
	return activity.Activity{}, nil
}

type photos struct {
	mu      sync.Mutex
	saved   int
	removed []string
}

func (p *photos) Save(_ context.Context, folder, _ string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.saved++
	return fmt.Sprintf("https://tambua.s3.amazonaws.com/%s/%d.png", folder, p.saved), nil
}

func (p *photos) Remove(_ context.Context, url string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.removed = append(p.removed, url)
	return nil
}

func (r *recorder) ListActivitiesService(context.Context, activity.ListActivitiesRequest) ([]activity.Activity, error) {
	return nil, nil
}

func (r *recorder) AgentActivitiesService(context.Context, string, time.Time) ([]activity.Activity, error) {
	return nil, nil
}

type fines map[string][]fine.Fine

func (f fines) FinesByPlateService(_ context.Context, plate string) (fine.PlateFinesResponse, error) {
	return fine.Summarize(f[validation.NormalizePlate(plate)]), nil
}

func seed() []Vehicle {
	return []Vehicle{
		{ID: "1", Owner: "Salomon", Address: "Goma", TaxID: "NA", Plate: "1234AB", MakeModel: "Nissan Juke", Year: 2000, Color: "Rouge", DocumentStatus: "Valide", InsuranceStatus: "Valide", Zone: "Goma"},
		{ID: "2", Owner: "Richard", Address: "Bukavu", TaxID: "0922", Plate: "BB123C", MakeModel: "Toyota Rav4", Year: 2000, Color: "Verte", Chassis: "JTEHH20V-0045987", IssueDate: "2024-03-18", DocumentStatus: "Expiré", InsuranceStatus: "Valide", Zone: "Bukavu"},
		{ID: "3", Owner: "Jean", Address: "Kinshasa", TaxID: "1023", Plate: "KIN89Z", MakeModel: "Honda CRV", Year: 2015, Color: "Noire", DocumentStatus: "Valide", InsuranceStatus: "Bientôt expiré", Zone: "Kinshasa"},
	}
}

func newService() (*Service, *recorder, *metrics.Metrics) {
	rec := &recorder{}
	m := metrics.New()
	f := fines{
		"BB123C": {
			{ID: "2", Plate: "BB123C", Amount: 200000, Status: validation.FineStatusPaid},
			{ID: "7", Plate: "bb123c", Amount: 30000, Status: validation.FineStatusLate},
		},
	}
	s := NewVehicleService(NewVehicleRepository(seed()), f, rec, bucket.Inline{}, m, logger.Discard())
	s.Now = func() time.Time { return now }
	return s, rec, m
}

func register() RegisterVehicleRequest {
	return RegisterVehicleRequest{
		Plaque: " gom 123 ab ",
		Type:   "SUV",
		Annee:  2022,
		Marque: "Toyota",
		Modele: "RAV4",
		Owner:  OwnerRequest{Nom: "Kahindo", Prenom: "Marie", Adresse: "Goma", Tel: "+243990000000"},
		License: &LicenseSectionRequest{
			NumeroLicence: "p987654321",
			Categories:    []string{"B"},
		},
		Photo: "data:image/png;base64,AQID",
	}
}

func TestRegisterVehicle(t *testing.T) {
	s, rec, m := newService()
	ctx := context.Background()
	actor := activity.Actor{AgentID: "agent-1", Name: "Agent Tambua"}

	v, err := s.RegisterVehicleService(ctx, register(), actor)
	require.NoError(t, err)
	assert.Equal(t, "GOM 123 AB", v.Plate)
	assert.Equal(t, "Marie Kahindo", v.Owner)
	assert.Equal(t, "Toyota RAV4", v.MakeModel)
	assert.Equal(t, validation.ValidityValid, v.DocumentStatus)
	assert.Equal(t, validation.ValidityValid, v.InsuranceStatus)
	assert.Equal(t, "2024-06-12", v.IssueDate)
	assert.Equal(t, DefaultZone, v.Zone)
	assert.Equal(t, "Agent Tambua", v.RegisteredBy)
	assert.Equal(t, "data:image/png;base64,AQID", v.Photo)
	require.NotNil(t, v.DriverLicense)
	assert.Equal(t, "P987654321", v.DriverLicense.Number)

	list, err := s.ListVehiclesService(ctx, ListVehiclesRequest{})
	require.NoError(t, err)
	assert.Equal(t, v.ID, list[0].ID)

	require.Len(t, rec.seen, 1)
	assert.Equal(t, activity.ActionVehicleRegistration, rec.seen[0].Action)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Registrations.WithLabelValues("vehicle")))

	_, err = s.RegisterVehicleService(ctx, register(), actor)
	assert.ErrorIs(t, err, ErrPlateTaken)
}

func TestRegisterVehicle_Invalid(t *testing.T) {
	s, rec, _ := newService()

	req := register()
	req.License.Categories = []string{"Z"}
	_, err := s.RegisterVehicleService(context.Background(), req, activity.Actor{})
	assert.Error(t, err)

	req = register()
	req.Owner.Nom = ""
	_, err = s.RegisterVehicleService(context.Background(), req, activity.Actor{})
	assert.Error(t, err)
	assert.Empty(t, rec.seen)
}

func TestGetVehicle_Detail(t *testing.T) {
	s, _, _ := newService()

	d, err := s.GetVehicleService(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "BB123C", d.Plate)
	assert.Len(t, d.Fines, 2)
	assert.Equal(t, int64(230000), d.FinesTotal)
	assert.Equal(t, int64(30000), d.FinesPending)

	_, err = s.GetVehicleService(context.Background(), "404")
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestGetVehicleByPlate(t *testing.T) {
	s, _, _ := newService()

	v, err := s.GetVehicleByPlateService(context.Background(), " bb123c")
	require.NoError(t, err)
	assert.Equal(t, "Toyota", v.Make())
	assert.Equal(t, "Rav4", v.Model())

	_, err = s.GetVehicleByPlateService(context.Background(), "xx999")
	assert.ErrorIs(t, err, ErrVehicleNotFound)
	assert.EqualError(t, err, `Aucun véhicule trouvé pour la plaque "XX999".`)
}

func TestSearchUpdateDelete(t *testing.T) {
	s, _, _ := newService()
	ctx := context.Background()

	got, err := s.ListVehiclesService(ctx, ListVehiclesRequest{Search: "honda"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "KIN89Z", got[0].Plate)

	got, err = s.ListVehiclesService(ctx, ListVehiclesRequest{Search: "richard"})
	require.NoError(t, err)
	require.Len(t, got, 1)

	v, err := s.UpdateVehicleService(ctx, UpdateVehicleRequest{
		ID: "3", Owner: "Jean M.", Plate: "kin89z", MakeModel: "Honda CR-V", Year: 2016,
		DocumentStatus: "Valide", InsuranceStatus: "Expiré",
	})
	require.NoError(t, err)
	assert.Equal(t, "KIN89Z", v.Plate)
	assert.Equal(t, "Expiré", v.InsuranceStatus)
	assert.Equal(t, "Kinshasa", v.Zone)

	_, err = s.UpdateVehicleService(ctx, UpdateVehicleRequest{
		ID: "3", Owner: "Jean", Plate: "BB123C", MakeModel: "Honda", DocumentStatus: "Valide", InsuranceStatus: "Valide",
	})
	assert.ErrorIs(t, err, ErrPlateTaken)

	_, err = s.UpdateVehicleService(ctx, UpdateVehicleRequest{
		ID: "3", Owner: "Jean", Plate: "KIN89Z", MakeModel: "Honda", DocumentStatus: "Perdu", InsuranceStatus: "Valide",
	})
	assert.Error(t, err)

	require.NoError(t, s.DeleteVehicleService(ctx, "3"))
	assert.ErrorIs(t, s.DeleteVehicleService(ctx, "3"), ErrVehicleNotFound)
}

func TestRegisterVehicle_ConcurrentSamePlate(t *testing.T) {
	s, rec, _ := newService()
	store := &photos{}
	s.Photos = store
	ctx := context.Background()

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids []string
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := s.RegisterVehicleService(ctx, register(), activity.Actor{Name: "Agent Tambua"})
			if err != nil {
				assert.ErrorIs(t, err, ErrPlateTaken)
				return
			}
			mu.Lock()
			ids = append(ids, v.ID)
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Len(t, ids, 1)
	assert.Len(t, rec.seen, 1)
	got, err := s.ListVehiclesService(ctx, ListVehiclesRequest{Search: "GOM 123 AB"})
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Len(t, store.removed, store.saved-1)
}

func TestDeleteVehicle_RemovesPhoto(t *testing.T) {
	s, _, _ := newService()
	store := &photos{}
	s.Photos = store
	ctx := context.Background()

	v, err := s.RegisterVehicleService(ctx, register(), activity.Actor{Name: "Agent Tambua"})
	require.NoError(t, err)
	require.NoError(t, s.DeleteVehicleService(ctx, v.ID))
	assert.Equal(t, []string{v.Photo}, store.removed)

	assert.ErrorIs(t, s.DeleteVehicleService(ctx, v.ID), ErrVehicleNotFound)
	assert.Len(t, store.removed, 1)
}

func TestExportVehiclesPdf(t *testing.T) {
	s, _, _ := newService()
	b, err := s.ExportVehiclesPdfService(context.Background(), ListVehiclesRequest{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF-")))
}

func TestRegisterVehicleHandler(t *testing.T) {
	s, rec, _ := newService()
	h := NewVehicleHandler(s)

	body, err := json.Marshal(register())
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/vehicles", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	c := echo.New().NewContext(req, w)
	c.Set("token_user_name", "Agent Tambua")
	c.Set("token_agent_id", "agent-1")

	require.NoError(t, h.RegisterVehicleHandler(c))
	assert.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, rec.seen, 1)
	assert.Equal(t, "agent-1", rec.seen[0].Actor.AgentID)

	req = httptest.NewRequest(http.MethodPost, "/vehicles", strings.NewReader(`{"plaque":""}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w = httptest.NewRecorder()
	require.NoError(t, h.RegisterVehicleHandler(echo.New().NewContext(req, w)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
