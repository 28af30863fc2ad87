//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	redis_a "github.com/ammerola/sizopi-be/internal/adapters/redis_adapter"
	"github.com/ammerola/sizopi-be/internal/core/domain"
	"github.com/ammerola/sizopi-be/internal/core/services"
	"github.com/ammerola/sizopi-be/internal/handlers"
	"github.com/ammerola/sizopi-be/internal/handlers/middleware"
	"github.com/ammerola/sizopi-be/test/helpers"
)

type ZooE2ESuite struct {
	suite.Suite
	server    *httptest.Server
	client    *http.Client
	baseURL   string
	testDB    *helpers.TestDB
	testRedis *helpers.TestRedis
}

func (s *ZooE2ESuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	s.testRedis = helpers.SetupTestRedis(s.T())

	s.server = s.startTestServer()
	s.client = &http.Client{Timeout: 10 * time.Second}
	s.baseURL = s.server.URL + "/api/v1"
}

func (s *ZooE2ESuite) TearDownSuite() {
	s.server.Close()
}

func (s *ZooE2ESuite) SetupTest() {
	helpers.TruncateAllTables(s.T(), s.testDB.Database.SQL())
	s.testRedis.Server.FlushAll()
}

func (s *ZooE2ESuite) TestVisitorBookingWorkflow() {
	// 1. A facility with three seats
	resp := s.makeRequest("POST", "/facilities", map[string]any{
		"nama":          "Kereta Safari",
		"jadwal":        "2025-08-17T09:00:00Z",
		"kapasitas_max": 3,
	})
	s.Equal(http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// 2. Two visitors register
	s.register("budi", "budi@example.com")
	s.register("sari", "sari@example.com")

	// 3. Login resolves the visitor role, a wrong password is rejected
	resp = s.makeRequest("POST", "/auth/login", map[string]any{"username": "budi", "password": "rahasia123"})
	s.Equal(http.StatusOK, resp.StatusCode)
	var session map[string]any
	s.decodeResponse(resp, &session)
	s.Equal(string(domain.RoleVisitor), session["role"])
	s.Equal("Budi Santoso", session["name"])

	resp = s.makeRequest("POST", "/auth/login", map[string]any{"username": "budi", "password": "salah-sandi"})
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// 4. Budi books two of three seats
	resp = s.makeRequest("POST", "/reservations", map[string]any{
		"username_p":        "budi",
		"nama_fasilitas":    "Kereta Safari",
		"tanggal_kunjungan": "2025-08-17",
		"jumlah_tiket":      2,
	})
	s.Equal(http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	s.Equal(float64(1), s.remaining("Kereta Safari", "2025-08-17"))

	// 5. Sari cannot take two more
	resp = s.makeRequest("POST", "/reservations", map[string]any{
		"username_p":        "sari",
		"nama_fasilitas":    "Kereta Safari",
		"tanggal_kunjungan": "2025-08-17",
		"jumlah_tiket":      2,
	})
	s.Equal(http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// 6. Budi cancels and the seats come back
	resp = s.makeRequest("DELETE", "/reservations/budi/Kereta%20Safari/2025-08-17", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	var cancelled map[string]any
	s.decodeResponse(resp, &cancelled)
	s.Equal(domain.ReservationVoided, cancelled["status"])

	s.Equal(float64(3), s.remaining("Kereta Safari", "2025-08-17"))

	// 7. The cancelled row stays on Budi's list
	resp = s.makeRequest("GET", "/users/budi/reservations", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	var mine []map[string]any
	s.decodeResponse(resp, &mine)
	s.Len(mine, 1)
}

func (s *ZooE2ESuite) TestHabitatPagination() {
	for i := 1; i <= 5; i++ {
		resp := s.makeRequest("POST", "/habitats", map[string]any{
			"nama":      fmt.Sprintf("Habitat %d", i),
			"luas_area": 100 * i,
			"kapasitas": i,
			"status":    "Aktif",
		})
		s.Equal(http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp := s.makeRequest("GET", "/habitats?page=2&limit=2", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var page map[string]any
	s.decodeResponse(resp, &page)
	s.Equal(float64(5), page["total"])
	rows := page["data"].([]any)
	s.Len(rows, 2)
	s.Equal("Habitat 3", rows[0].(map[string]any)["nama"])

	// renaming through the lookup column is refused
	resp = s.makeRequest("PATCH", "/habitats/Habitat%201", map[string]any{"nama": "Rawa"})
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = s.makeRequest("PATCH", "/habitats/Habitat%201", map[string]any{"nama": "Habitat 1", "kapasitas": 9})
	s.Equal(http.StatusOK, resp.StatusCode)
	var updated map[string]any
	s.decodeResponse(resp, &updated)
	s.Equal(float64(9), updated["kapasitas"])
}

func (s *ZooE2ESuite) TestConcurrentBookingsRespectCapacity() {
	resp := s.makeRequest("POST", "/facilities", map[string]any{
		"nama":          "Pertunjukan Singa",
		"jadwal":        "2025-08-17T10:00:00Z",
		"kapasitas_max": 5,
	})
	s.Equal(http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	const visitors = 10
	for i := 0; i < visitors; i++ {
		s.register(fmt.Sprintf("tamu%02d", i), fmt.Sprintf("tamu%02d@example.com", i))
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < visitors; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			resp := s.makeRequest("POST", "/reservations", map[string]any{
				"username_p":        fmt.Sprintf("tamu%02d", idx),
				"nama_fasilitas":    "Pertunjukan Singa",
				"tanggal_kunjungan": "2025-08-17",
				"jumlah_tiket":      1,
			})
			defer resp.Body.Close()

			if resp.StatusCode == http.StatusCreated {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	s.Equal(5, created)
	s.Equal(float64(0), s.remaining("Pertunjukan Singa", "2025-08-17"))
}

func (s *ZooE2ESuite) TestHealthCheck() {
	resp, err := s.client.Get(s.server.URL + "/health")
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.StatusCode)

	var health map[string]any
	s.decodeResponse(resp, &health)
	s.Equal("healthy", health["status"])

	services := health["services"].(map[string]any)
	s.Contains(services, "database")
	s.Contains(services, "redis")
}

// Helper methods

func (s *ZooE2ESuite) startTestServer() *httptest.Server {
	logger := helpers.TestLogger()
	gw := s.testDB.Gateways

	adopterRepo := redis_a.NewCachedAdopterRepository(gw.Adopters, redis_a.NewCache(s.testRedis.Client, time.Minute, logger), logger)

	h := &handlers.Handlers{
		Health:       handlers.NewHealthHandler(s.testDB.Database, s.testRedis.Client, nil, "e2e", "test", logger),
		Accounts:     handlers.NewAccountHandler(services.NewAccountService(gw.Accounts, logger), logger),
		Reservations: handlers.NewReservationHandler(services.NewReservationService(gw.Reservations, logger), logger),
		Care:         handlers.NewCareHandler(services.NewCareService(gw.Feedings, gw.ExamSchedules, gw.MedicalRecords, logger), logger),
		Adopters:     handlers.NewAdopterHandler(services.NewAdopterService(adopterRepo, redis_a.NewCachedAdoptionRepository(gw.Adoptions, adopterRepo, logger), nil, "reports", logger), nil, 5, logger),
		Resources: map[string]handlers.Registrar{
			"habitats":   handlers.NewResourceHandler[*domain.Habitat]("habitat", "nama", gw.Habitats, func() *domain.Habitat { return &domain.Habitat{} }, logger),
			"facilities": handlers.NewResourceHandler[*domain.Facility]("facility", "nama", gw.Facilities, func() *domain.Facility { return &domain.Facility{} }, logger),
		},
	}

	mux := http.NewServeMux()
	handlers.RegisterRoutes(mux, h)

	return httptest.NewServer(middleware.Chain(mux,
		middleware.Recovery(logger),
		middleware.RequestID("X-Request-ID"),
		middleware.Logger(logger),
	))
}

func (s *ZooE2ESuite) register(username, email string) {
	resp := s.makeRequest("POST", "/auth/register", map[string]any{
		"username":      username,
		"email":         email,
		"password":      "rahasia123",
		"nama_depan":    "Budi",
		"nama_belakang": "Santoso",
		"no_telepon":    "081234567890",
		"alamat":        "Jl. Ragunan No. 1, Jakarta",
		"tgl_lahir":     "1995-04-12",
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}

func (s *ZooE2ESuite) remaining(facility, date string) float64 {
	req, err := http.NewRequest("GET", s.baseURL+"/facilities/"+url.PathEscape(facility)+"/remaining?date="+date, nil)
	s.Require().NoError(err)

	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var body map[string]any
	s.decodeResponse(resp, &body)
	return body["remaining"].(float64)
}

func (s *ZooE2ESuite) makeRequest(method, path string, body any) *http.Response {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		s.NoError(err)
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, s.baseURL+path, reqBody)
	s.NoError(err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	s.NoError(err)

	return resp
}

func (s *ZooE2ESuite) decodeResponse(resp *http.Response, v any) {
	defer resp.Body.Close()
	err := json.NewDecoder(resp.Body).Decode(v)
	s.NoError(err)
}

func TestZooE2ESuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E tests in short mode")
	}
	suite.Run(t, new(ZooE2ESuite))
}
