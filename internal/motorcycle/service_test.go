package motorcycle

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

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
	seen []activity.RecordActivityDto
}

func (r *recorder) RecordActivityService(_ context.Context, data activity.RecordActivityDto) (activity.Activity, error) {
	r.seen = append(r.seen, data)
	return activity.Activity{}, nil
}

func (r *recorder) ListActivitiesService(context.Context, activity.ListActivitiesRequest) ([]activity.Activity, error) {
	return nil, nil
}

func (r *recorder) AgentActivitiesService(context.Context, string, time.Time) ([]activity.Activity, error) {
	return nil, nil
}

type photos struct {
	removed []string
}

func (p *photos) Save(_ context.Context, folder, _ string) (string, error) {
	return "https://tambua.s3.amazonaws.com/" + folder + "/m.png", nil
}

func (p *photos) Remove(_ context.Context, url string) error {
	p.removed = append(p.removed, url)
	return nil
}

type noFines struct{}

func (noFines) FinesByPlateService(_ context.Context, plate string) (fine.PlateFinesResponse, error) {
	if validation.PlatesMatch(plate, "GOM 456 CD") {
		return fine.Summarize([]fine.Fine{{ID: "5", Plate: "GOM 456 CD", Amount: 25000, Status: validation.FineStatusPending}}), nil
	}
	return fine.Summarize(nil), nil
}

func seed() []Motorcycle {
	return []Motorcycle{
		{ID: "1", Owner: "Kavira Mukeba", Address: "Goma", Plate: "GOM 456 CD", MakeModel: "TVS Star HLX 125", Year: 2023, Color: "Rouge", Chassis: "MD625K32L8F12345", QRCode: "TAMBUA-MOTO-12345", Zone: "Goma", DocumentStatus: "Bientôt expiré", InsuranceStatus: "Valide"},
		{ID: "2", Owner: "Furaha Mutinga", Address: "Goma", Plate: "GOM 789 EF", MakeModel: "Haojue 150", Year: 2022, Color: "Noire", QRCode: "TAMBUA-MOTO-67890", Zone: "Goma", DocumentStatus: "Valide", InsuranceStatus: "Expiré"},
		{ID: "4", Owner: "Baraka Amos", Address: "Bukavu", Plate: "BUK 112 IJ", MakeModel: "Bajaj", Year: 2021, Color: "Grise", Zone: "Bukavu", DocumentStatus: "Valide", InsuranceStatus: "Valide"},
	}
}

func newService() (*Service, *recorder, *metrics.Metrics) {
	rec := &recorder{}
	m := metrics.New()
	s := NewMotorcycleService(NewMotorcycleRepository(seed()), noFines{}, rec, bucket.Inline{}, m, logger.Discard())
	s.Now = func() time.Time { return now }
	return s, rec, m
}

func TestRegisterMotorcycle(t *testing.T) {
	s, rec, m := newService()
	ctx := context.Background()

	moto, err := s.RegisterMotorcycleService(ctx, RegisterMotorcycleRequest{
		NomDetenteur:     "Amani Bahati",
		AdresseDetenteur: "Goma",
		PlaqueNumero:     "gom 222 kl",
		MarqueModele:     "Boxer BM 150",
		AnneeFabrication: 2024,
		Couleur:          "Bleue",
		Province:         "Nord-Kivu",
	}, activity.Actor{AgentID: "agent-1", Name: "Agent Tambua"})
	require.NoError(t, err)

	assert.Equal(t, "GOM 222 KL", moto.Plate)
	assert.Equal(t, "Nord-Kivu", moto.Province)
	assert.Equal(t, DefaultZone, moto.Zone)
	assert.Regexp(t, `^TAMBUA-MOTO-\d{5}$`, moto.QRCode)
	assert.Equal(t, validation.ValidityValid, moto.DocumentStatus)

	require.Len(t, rec.seen, 1)
	assert.Equal(t, activity.ActionMotorcycleRegistration, rec.seen[0].Action)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Registrations.WithLabelValues("motorcycle")))

	_, err = s.RegisterMotorcycleService(ctx, RegisterMotorcycleRequest{
		NomDetenteur: "X", PlaqueNumero: "GOM 222 KL", MarqueModele: "Bajaj",
	}, activity.Actor{})
	assert.ErrorIs(t, err, ErrPlateTaken)
}

func TestRegisterMotorcycle_KeepsGivenQR(t *testing.T) {
	s, _, _ := newService()

	moto, err := s.RegisterMotorcycleService(context.Background(), RegisterMotorcycleRequest{
		NomDetenteur: "X", PlaqueNumero: "BUK 300 AA", MarqueModele: "Bajaj", QrNumero: "tambua-moto-55555",
	}, activity.Actor{})
	require.NoError(t, err)
	assert.Equal(t, "TAMBUA-MOTO-55555", moto.QRCode)
}

func TestRegisterMotorcycle_GeneratedQRSkipsUsed(t *testing.T) {
	s, _, _ := newService()
	ctx := context.Background()
	n := now.UnixMilli() % 100000

	first, err := s.RegisterMotorcycleService(ctx, RegisterMotorcycleRequest{
		NomDetenteur: "A", PlaqueNumero: "GOM 301 AA", MarqueModele: "Bajaj",
	}, activity.Actor{})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("TAMBUA-MOTO-%05d", n), first.QRCode)

	second, err := s.RegisterMotorcycleService(ctx, RegisterMotorcycleRequest{
		NomDetenteur: "B", PlaqueNumero: "GOM 302 AA", MarqueModele: "Bajaj",
	}, activity.Actor{})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("TAMBUA-MOTO-%05d", (n+1)%100000), second.QRCode)
}

func TestFreeQR_Wraps(t *testing.T) {
	at := time.UnixMilli(1_700_000_099_999)
	used := map[string]bool{"TAMBUA-MOTO-99999": true, "TAMBUA-MOTO-00000": true}
	assert.Equal(t, "TAMBUA-MOTO-00001", freeQR(used, at))
	assert.Equal(t, "TAMBUA-MOTO-99999", freeQR(nil, at))
}

func TestRegisterMotorcycle_GivenQRTaken(t *testing.T) {
	s, rec, _ := newService()
	store := &photos{}
	s.Photos = store

	_, err := s.RegisterMotorcycleService(context.Background(), RegisterMotorcycleRequest{
		NomDetenteur: "X", PlaqueNumero: "BUK 301 AA", MarqueModele: "Bajaj", QrNumero: "tambua-moto-12345", Photo: "data:image/png;base64,AQID",
	}, activity.Actor{})
	assert.ErrorIs(t, err, ErrQRTaken)
	assert.Equal(t, http.StatusConflict, statusFor(err))
	assert.Empty(t, rec.seen)
	assert.Equal(t, []string{"https://tambua.s3.amazonaws.com/motorcycles/m.png"}, store.removed)
}

func TestDeleteMotorcycle_RemovesPhoto(t *testing.T) {
	s, _, _ := newService()
	store := &photos{}
	s.Photos = store
	ctx := context.Background()

	moto, err := s.RegisterMotorcycleService(ctx, RegisterMotorcycleRequest{
		NomDetenteur: "X", PlaqueNumero: "BUK 302 AA", MarqueModele: "Bajaj", Photo: "data:image/png;base64,AQID",
	}, activity.Actor{})
	require.NoError(t, err)
	require.NoError(t, s.DeleteMotorcycleService(ctx, moto.ID))
	assert.Equal(t, []string{moto.Photo}, store.removed)

	assert.ErrorIs(t, s.DeleteMotorcycleService(ctx, moto.ID), ErrMotorcycleNotFound)
	assert.Len(t, store.removed, 1)
}

func TestGetMotorcycleByPlate(t *testing.T) {
	s, _, _ := newService()

	moto, err := s.GetMotorcycleByPlateService(context.Background(), "  gom 456 cd ")
	require.NoError(t, err)
	assert.Equal(t, "TAMBUA-MOTO-12345", moto.QRCode)

	_, err = s.GetMotorcycleByPlateService(context.Background(), "gom 000 zz")
	assert.ErrorIs(t, err, ErrMotorcycleNotFound)
	assert.EqualError(t, err, `Aucune moto trouvée pour la plaque "GOM 000 ZZ".`)
}

func TestMotorcycleDetailAndSearch(t *testing.T) {
	s, _, _ := newService()
	ctx := context.Background()

	d, err := s.GetMotorcycleService(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, d.Fines, 1)
	assert.Equal(t, int64(25000), d.FinesPending)

	got, err := s.ListMotorcyclesService(ctx, ListMotorcyclesRequest{Search: "haojue"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "GOM 789 EF", got[0].Plate)

	updated, err := s.UpdateMotorcycleService(ctx, UpdateMotorcycleRequest{
		ID: "2", Owner: "Furaha Mutinga", Plate: "GOM 789 EF", MakeModel: "Haojue 150",
		DocumentStatus: "Valide", InsuranceStatus: "Valide",
	})
	require.NoError(t, err)
	assert.Equal(t, "TAMBUA-MOTO-67890", updated.QRCode)

	require.NoError(t, s.DeleteMotorcycleService(ctx, "4"))
	_, err = s.GetMotorcycleService(ctx, "4")
	assert.ErrorIs(t, err, ErrMotorcycleNotFound)

	b, err := s.ExportMotorcyclesPdfService(ctx, ListMotorcyclesRequest{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF-")))
}

func TestMotorcycleHandlers(t *testing.T) {
	s, _, _ := newService()
	h := NewMotorcycleHandler(s)
	e := echo.New()

	req := httptest.NewRequest(http.MethodPut, "/motorcycles/2", strings.NewReader(`{"owner":"F","plate":"GOM 456 CD","make_model":"H","document_status":"Valide","insurance_status":"Valide"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("2")
	require.NoError(t, h.UpdateMotorcycleHandler(c))
	assert.Equal(t, http.StatusConflict, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/motorcycles?search=bajaj", nil)
	rec = httptest.NewRecorder()
	require.NoError(t, h.ListMotorcyclesHandler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "BUK 112 IJ")
}
