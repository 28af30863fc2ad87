// test/helpers/helpers.go
package helpers

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/sizopi-be/internal/adapters/db"
	"github.com/ammerola/sizopi-be/internal/core/domain"
	"github.com/ammerola/sizopi-be/internal/pkg/config"
)

// TestDB represents a test database instance
type TestDB struct {
	Database *db.Database
	Gateways *db.Gateways
	Resource *dockertest.Resource
	Pool     *dockertest.Pool
	Config   *db.Config
}

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// SetupTestDB starts a PostgreSQL container and applies the embedded
// migrations, triggers included
func SetupTestDB(t testing.TB) *TestDB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "Could not connect to Docker")

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=sizopi_test",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "Could not start PostgreSQL container")

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("Could not purge resource: %s", err)
		}
	})

	dbConfig := &db.Config{
		Debug:              true,
		Host:               "localhost",
		Port:               resource.GetPort("5432/tcp"),
		User:               "test",
		Password:           "test",
		Database:           "sizopi_test",
		SSLMode:            "disable",
		MaxConnections:     5,
		MinConnections:     1,
		MaxConnLifetime:    time.Hour,
		MaxConnIdleTime:    time.Minute * 30,
		HealthCheckPeriod:  time.Minute,
		ConnectTimeout:     time.Second * 10,
		EnableQueryLogging: testing.Verbose(),
	}

	var database *db.Database
	err = pool.Retry(func() error {
		ctx := context.Background()
		var err error
		database, err = db.NewDatabase(ctx, dbConfig, TestLogger())
		if err != nil {
			return err
		}
		return database.Ping(ctx)
	})
	require.NoError(t, err, "Could not connect to PostgreSQL")
	t.Cleanup(database.Close)

	err = db.RunMigrationsWithRetry(context.Background(), &db.MigrationConfig{
		DatabaseURL: dbConfig.DSN(),
	}, TestLogger(), 3)
	require.NoError(t, err, "Could not run migrations")

	return &TestDB{
		Database: database,
		Gateways: db.NewGateways(database, TestLogger()),
		Resource: resource,
		Pool:     pool,
		Config:   dbConfig,
	}
}

// SetupTestRedis creates an in-memory Redis instance for testing
func SetupTestRedis(t testing.TB) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
	}
}

// SetupMockDB creates a sqlmock-backed database for unit testing
func SetupMockDB(t *testing.T) (sqlmock.Sqlmock, *db.Database) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err, "Failed to create mock DB")

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return mock, db.NewFromSQL(sqlDB, TestLogger())
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "sizopi-test",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
			Debug:       true,
		},
		Database: config.DatabaseConfig{
			Debug:              true,
			Host:               "localhost",
			Port:               "5432",
			User:               "test",
			Password:           "test",
			Name:               "sizopi_test",
			SSLMode:            "disable",
			MaxConnections:     10,
			MinConnections:     2,
			EnableQueryLogging: true,
		},
		Redis: config.RedisConfig{
			Host:     "localhost",
			Port:     "6379",
			PoolSize: 10,
		},
		Asynq: config.AsynqConfig{
			RedisAddr:      "localhost:6379",
			Concurrency:    2,
			Queues:         map[string]int{"critical": 6, "default": 3, "low": 1},
			RetryMax:       1,
			CompletionCron: "5 0 * * *",
		},
		AWS: config.AWSConfig{
			Region:   "ap-southeast-1",
			S3Bucket: "sizopi-test",
		},
		Reports: config.ReportsConfig{
			TopAdopters: 5,
			KeyPrefix:   "reports/adopters",
			Timeout:     time.Minute,
		},
		Security: config.SecurityConfig{
			RateLimitRequests: 100,
			RateLimitDuration: time.Minute,
			AllowedOrigins:    []string{"*"},
			SecureHeaders:     false,
			RequestIDHeader:   "X-Request-ID",
		},
		Server: config.ServerConfig{
			Host:         "localhost",
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
	}
}

// Date returns midnight UTC of the given day
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// CreateTestAccount creates a visitor-ready account
func CreateTestAccount(overrides ...func(*domain.Account)) *domain.Account {
	account := &domain.Account{
		Username:    "budi",
		Email:       "budi@example.com",
		Password:    "rahasia123",
		FirstName:   "Budi",
		LastName:    "Santoso",
		PhoneNumber: "081234567890",
	}

	for _, override := range overrides {
		override(account)
	}

	return account
}

// CreateTestVisitor creates a visitor row for the test account
func CreateTestVisitor(overrides ...func(*domain.Visitor)) *domain.Visitor {
	visitor := &domain.Visitor{
		Username:  "budi",
		Address:   "Jl. Margonda Raya 1, Depok",
		BirthDate: Date(1995, time.March, 14),
	}

	for _, override := range overrides {
		override(visitor)
	}

	return visitor
}

// CreateTestAnimal creates an animal with a fixed id
func CreateTestAnimal(overrides ...func(*domain.Animal)) *domain.Animal {
	name := "Bima"
	habitat := "Savana"
	animal := &domain.Animal{
		ID:           uuid.MustParse("5b0ab2f3-6c4e-4cb9-9d4e-0f5a3e1d2c11"),
		Name:         &name,
		Species:      "Panthera leo",
		Origin:       "Taman Safari",
		HealthStatus: domain.HealthHealthy,
		HabitatName:  &habitat,
		PhotoURL:     "https://img.example.com/bima.jpg",
	}

	for _, override := range overrides {
		override(animal)
	}

	return animal
}

// CreateTestHabitat creates the habitat the test animal lives in
func CreateTestHabitat(overrides ...func(*domain.Habitat)) *domain.Habitat {
	habitat := &domain.Habitat{
		Name:     "Savana",
		Area:     decimal.NewFromFloat(1250.50),
		Capacity: 12,
		Status:   "Aktif",
	}

	for _, override := range overrides {
		override(habitat)
	}

	return habitat
}

// CreateTestFeeding creates a scheduled feeding for the test animal
func CreateTestFeeding(overrides ...func(*domain.Feeding)) *domain.Feeding {
	feeding := &domain.Feeding{
		AnimalID: CreateTestAnimal().ID,
		Schedule: time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC),
		Type:     "Daging sapi",
		Amount:   5,
		Status:   domain.FeedingScheduled,
	}

	for _, override := range overrides {
		override(feeding)
	}

	return feeding
}

// CreateTestExamSchedule creates a health check entry for the test animal
func CreateTestExamSchedule(overrides ...func(*domain.ExamSchedule)) *domain.ExamSchedule {
	exam := &domain.ExamSchedule{
		AnimalID:     CreateTestAnimal().ID,
		NextExamDate: Date(2025, time.July, 1),
		FrequencyMo:  3,
	}

	for _, override := range overrides {
		override(exam)
	}

	return exam
}

// CreateTestMedicalRecord creates a healthy checkup record
func CreateTestMedicalRecord(overrides ...func(*domain.MedicalRecord)) *domain.MedicalRecord {
	record := &domain.MedicalRecord{
		AnimalID:     CreateTestAnimal().ID,
		ExamDate:     Date(2025, time.May, 20),
		VetUsername:  "drsinta",
		HealthStatus: domain.HealthHealthy,
	}

	for _, override := range overrides {
		override(record)
	}

	return record
}

// CreateTestReservation creates an active booking
func CreateTestReservation(overrides ...func(*domain.Reservation)) *domain.Reservation {
	res := &domain.Reservation{
		VisitorUsername: "budi",
		FacilityName:    "Pertunjukan Singa",
		VisitDate:       Date(2025, time.August, 17),
		Tickets:         2,
		Status:          domain.ReservationActive,
	}

	for _, override := range overrides {
		override(res)
	}

	return res
}

// CreateTestTopAdopters builds a ranked leaderboard of n adopters
func CreateTestTopAdopters(n int) []domain.TopAdopter {
	out := make([]domain.TopAdopter, n)
	for i := range out {
		out[i] = domain.TopAdopter{
			Adopter: domain.Adopter{
				ID:                uuid.New(),
				Username:          fmt.Sprintf("adopter%d", i+1),
				TotalContribution: decimal.NewFromInt(int64((n - i) * 1_000_000)),
			},
			Name: fmt.Sprintf("Adopter %d", i+1),
			Rank: i + 1,
		}
	}
	return out
}

// CreateTestAdoption creates a paid year-long adoption of the test animal
func CreateTestAdoption(overrides ...func(*domain.Adoption)) *domain.Adoption {
	adoption := &domain.Adoption{
		AdopterID:     uuid.MustParse("1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c55"),
		AnimalID:      CreateTestAnimal().ID,
		PaymentStatus: domain.PaymentPaid,
		StartDate:     Date(2025, time.January, 1),
		EndDate:       Date(2025, time.December, 31),
		Contribution:  decimal.NewFromInt(3_000_000),
	}

	for _, override := range overrides {
		override(adoption)
	}

	return adoption
}

// AssertEventuallyWithTimeout asserts that a condition is met within a timeout
func AssertEventuallyWithTimeout(t *testing.T, condition func() bool, timeout time.Duration, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(100 * time.Millisecond)
	}

	t.Errorf("Condition not met within %v: %s", timeout, msg)
}

// TruncateAllTables empties every zoo table in the test database
func TruncateAllTables(t testing.TB, sqlDB *sql.DB) {
	t.Helper()

	tables := []string{
		"adopsi", "individu", "organisasi", "adopter",
		"reservasi", "catatan_medis", "jadwal_pemeriksaan_kesehatan", "pakan",
		"berpartisipasi", "wahana", "atraksi", "fasilitas", "hewan", "habitat",
		"staf_admin", "penjaga_hewan", "pelatih_hewan", "spesialisasi", "dokter_hewan",
		"pengunjung", "pengguna",
	}

	for _, table := range tables {
		_, err := sqlDB.ExecContext(context.Background(), fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "Failed to truncate table: %s", table)
	}
}
