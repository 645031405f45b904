package database

import (
	"context"
	stdsql "database/sql"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/vendrahq/vendra/ent"
	entorder "github.com/vendrahq/vendra/ent/order"
)

// newTestClient creates a test database client with CI/local environment detection.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: spins up a testcontainer with PostgreSQL.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	ciDatabaseURL := os.Getenv("CI_DATABASE_URL")

	var connStr string

	if ciDatabaseURL != "" {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		connStr = ciDatabaseURL
	} else {
		t.Log("Using testcontainers for PostgreSQL")
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		var err2 error
		connStr, err2 = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err2)
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	// Auto-migration for tests (production uses embedded SQL migrations)
	err = entClient.Schema.Create(ctx)
	require.NoError(t, err)

	err = CreatePartialUniqueIndexes(ctx, drv)
	require.NoError(t, err)
	err = CreateSearchIndexes(ctx, drv)
	require.NoError(t, err)

	client := NewClientFromEnt(entClient, db)

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	health, err := client.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
	assert.GreaterOrEqual(t, health.ResponseTime, int64(0))
	assert.Less(t, health.ResponseTime, int64(1000), "local ping should be fast")
}

func TestItemFullTextSearch(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	businessID := uuid.NewString()

	item1, err := client.Item.Create().
		SetID(uuid.NewString()).
		SetBusinessID(businessID).
		SetName("Margherita Pizza").
		SetDescription("Classic tomato, mozzarella and basil").
		SetPrice(decimal.NewFromInt(12)).
		Save(ctx)
	require.NoError(t, err)

	item2, err := client.Item.Create().
		SetID(uuid.NewString()).
		SetBusinessID(businessID).
		SetName("Lemonade").
		SetDescription("Fresh squeezed lemons with mint").
		SetPrice(decimal.NewFromInt(4)).
		Save(ctx)
	require.NoError(t, err)

	search := func(query string) []string {
		rows, err := client.DB().QueryContext(ctx,
			`SELECT item_id FROM items
			WHERE to_tsvector('simple', name || ' ' || COALESCE(description, '')) @@ plainto_tsquery('simple', $1)`,
			query,
		)
		require.NoError(t, err)
		defer rows.Close()

		var results []string
		for rows.Next() {
			var id string
			require.NoError(t, rows.Scan(&id))
			results = append(results, id)
		}
		return results
	}

	results := search("pizza mozzarella")
	assert.Len(t, results, 1)
	assert.Equal(t, item1.ID, results[0])

	results = search("mint")
	assert.Len(t, results, 1)
	assert.Equal(t, item2.ID, results[0])
}

func TestPartialUniqueIndexes_SingleCart(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	businessID := uuid.NewString()
	branchID := uuid.NewString()
	phone := "+15550001111"

	newCart := func() error {
		_, err := client.Order.Create().
			SetID(uuid.NewString()).
			SetBusinessID(businessID).
			SetUserID(branchID).
			SetCustomerPhoneNumber(phone).
			SetStatus(entorder.StatusCart).
			Save(ctx)
		return err
	}

	require.NoError(t, newCart())

	// Second cart for the same (business, branch, customer) must be rejected
	err := newCart()
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err))

	// A non-cart order for the same customer is fine
	_, err = client.Order.Create().
		SetID(uuid.NewString()).
		SetBusinessID(businessID).
		SetUserID(branchID).
		SetCustomerPhoneNumber(phone).
		SetStatus(entorder.StatusAccepted).
		Save(ctx)
	require.NoError(t, err)
}

func TestPartialUniqueIndexes_ReservationSlot(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	businessID := uuid.NewString()
	tableID := uuid.NewString()

	newReservation := func(status string) error {
		create := client.Reservation.Create().
			SetID(uuid.NewString()).
			SetBusinessUserID(businessID).
			SetOwnerUserID(businessID).
			SetTableID(tableID).
			SetCustomerPhoneNumber("+15550002222").
			SetCustomerName("Dana").
			SetReservationDate("2026-05-01").
			SetReservationTime("19:00")
		switch status {
		case "confirmed":
			create.SetStatus("confirmed")
		case "cancelled":
			create.SetStatus("cancelled")
		}
		_, err := create.Save(ctx)
		return err
	}

	require.NoError(t, newReservation("confirmed"))

	// A second confirmed reservation for the same slot must be rejected
	err := newReservation("confirmed")
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err))

	// Cancelled rows do not occupy the slot
	require.NoError(t, newReservation("cancelled"))
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	}

	clearEnv := func(t *testing.T) {
		for _, key := range envKeys {
			os.Unsetenv(key)
		}
		t.Cleanup(func() {
			for _, key := range envKeys {
				os.Unsetenv(key)
			}
		})
	}

	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "vendra", cfg.User)
		assert.Equal(t, "vendra", cfg.Database)
		assert.Equal(t, "disable", cfg.SSLMode)
		assert.Equal(t, 10, cfg.MaxOpenConns)
		assert.Equal(t, 5, cfg.MaxIdleConns)
	})

	t.Run("custom values", func(t *testing.T) {
		clearEnv(t)
		os.Setenv("DB_HOST", "db.example.com")
		os.Setenv("DB_PORT", "5433")
		os.Setenv("DB_USER", "admin")
		os.Setenv("DB_PASSWORD", "secret")
		os.Setenv("DB_NAME", "production")
		os.Setenv("DB_SSLMODE", "require")
		os.Setenv("DB_MAX_OPEN_CONNS", "50")

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "db.example.com", cfg.Host)
		assert.Equal(t, 5433, cfg.Port)
		assert.Equal(t, "admin", cfg.User)
		assert.Equal(t, "secret", cfg.Password)
		assert.Equal(t, "production", cfg.Database)
		assert.Equal(t, "require", cfg.SSLMode)
		assert.Equal(t, 50, cfg.MaxOpenConns)
	})

	t.Run("invalid port", func(t *testing.T) {
		clearEnv(t)
		os.Setenv("DB_PORT", "not_a_number")

		_, err := LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid DB_PORT")
	})
}

func TestConfig_ConnString(t *testing.T) {
	cfg := Config{
		Host:     "localhost",
		Port:     5432,
		User:     "vendra",
		Password: "secret",
		Database: "vendra",
		SSLMode:  "disable",
	}

	connStr := cfg.ConnString()
	assert.Contains(t, connStr, "host=localhost")
	assert.Contains(t, connStr, "port=5432")
	assert.Contains(t, connStr, "dbname=vendra")
	assert.Contains(t, connStr, "sslmode=disable")
}
