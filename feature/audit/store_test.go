package audit

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

var entryColumns = []string{"id", "bucket", "object_key", "action", "detail", "ray_id", "created_at"}

func TestStore_Record(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	store := NewStore(db)

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec("INSERT INTO `audit_entries`").
		WithArgs("files", "a.txt", ActionDelete, "", "ray-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	sqlMock.ExpectCommit()

	ctx := WithRayID(context.Background(), "ray-1")
	err := store.Record(ctx, Entry{Bucket: "files", ObjectKey: "a.txt", Action: ActionDelete})
	require.NoError(t, err)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestStore_RecordError(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	store := NewStore(db)

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec("INSERT INTO `audit_entries`").WillReturnError(assert.AnError)
	sqlMock.ExpectRollback()

	err := store.Record(context.Background(), Entry{Bucket: "files", Action: ActionApplyLifecycle})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestStore_List(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	store := NewStore(db)

	now := time.Now()
	sqlMock.ExpectQuery("SELECT \\* FROM `audit_entries` WHERE bucket = \\? ORDER BY id desc LIMIT \\?").
		WithArgs("files", 10).
		WillReturnRows(sqlmock.NewRows(entryColumns).
			AddRow(2, "files", "b.txt", ActionUpload, "", "ray-2", now).
			AddRow(1, "files", "", ActionSetVersioning, "Enabled", "ray-1", now))

	entries, err := store.List(context.Background(), "files", 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, uint(2), entries[0].ID)
	assert.Equal(t, "b.txt", entries[0].ObjectKey)
	assert.Equal(t, "Enabled", entries[1].Detail)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestNopRecorder(t *testing.T) {
	assert.NoError(t, NopRecorder{}.Record(context.Background(), Entry{}))
}

func TestRayIDContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "", RayIDFrom(ctx))
	assert.Equal(t, ctx, WithRayID(ctx, ""))
	assert.Equal(t, "abc", RayIDFrom(WithRayID(ctx, "abc")))
}

func TestHandleList(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	app := fiber.New()
	NewHandler(NewStore(db), zap.NewNop()).RegisterRoutes(app)

	t.Run("DefaultLimit", func(t *testing.T) {
		sqlMock.ExpectQuery("SELECT \\* FROM `audit_entries` ORDER BY id desc LIMIT \\?").
			WithArgs(defaultLimit).
			WillReturnRows(sqlmock.NewRows(entryColumns).
				AddRow(1, "files", "a.txt", ActionUpload, "", "", time.Now()))

		resp, err := app.Test(httptest.NewRequest("GET", "/audit", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var entries []Entry
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&entries))
		assert.Len(t, entries, 1)
	})

	t.Run("ClampedLimit", func(t *testing.T) {
		sqlMock.ExpectQuery("SELECT \\* FROM `audit_entries` WHERE bucket = \\? ORDER BY id desc LIMIT \\?").
			WithArgs("files", maxLimit).
			WillReturnRows(sqlmock.NewRows(entryColumns))

		resp, err := app.Test(httptest.NewRequest("GET", "/audit?bucket=files&limit=10000", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("QueryError", func(t *testing.T) {
		sqlMock.ExpectQuery("SELECT").WillReturnError(assert.AnError)

		resp, err := app.Test(httptest.NewRequest("GET", "/audit", nil))
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)
	})

	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestFeature_Disabled(t *testing.T) {
	feature := NewFeature(nil, zap.NewNop())

	assert.Equal(t, "audit", feature.Name())
	assert.False(t, feature.IsEnabled())
	assert.IsType(t, NopRecorder{}, feature.Recorder())
}

func TestFeature_Enabled(t *testing.T) {
	db, _ := setupMockDB(t)
	feature := NewFeature(db, zap.NewNop())

	assert.True(t, feature.IsEnabled())
	assert.IsType(t, &Store{}, feature.Recorder())
}
