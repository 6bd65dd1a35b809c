package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"southbound-app/internal/domain/cities"
	"southbound-app/internal/ingest"
)

const testBlobHost = "myaccount.blob.core.windows.net"

type stubIngestor struct {
	failHosts map[string]bool
}

func (s *stubIngestor) Ingest(_ context.Context, src ingest.Source, opts ingest.Options) (*ingest.IngestResult, error) {
	u, err := url.Parse(src.RemoteURL)
	if err != nil {
		return nil, err
	}
	if s.failHosts[u.Hostname()] {
		return nil, fmt.Errorf("fetch %s: no route to host", src.RemoteURL)
	}
	return &ingest.IngestResult{
		URL: fmt.Sprintf("https://%s/southbound-images/%s/%s", testBlobHost, opts.Category, opts.NameHint),
	}, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, *stubIngestor) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&cities.City{}))

	stub := &stubIngestor{failHosts: map[string]bool{}}
	migrator := &ingest.Migrator{DB: db, Ingestor: stub, BlobHost: testBlobHost}

	r := gin.New()
	r.POST("/admin/migrate-images", MigrateImages(migrator))
	return r, db, stub
}

func doMigrate(t *testing.T, r *gin.Engine, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/admin/migrate-images", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return w, out
}

func TestMigrateImagesUnknownCity(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w, out := doMigrate(t, r, `{"cityId":"does-not-exist"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "City not found", out["error"])
}

func TestMigrateImagesBulk(t *testing.T) {
	r, db, _ := newTestRouter(t)
	require.NoError(t, db.Create(&cities.City{
		Name:     "Hanoi",
		ImageUrl: "https://images.example.com/hanoi.jpg",
	}).Error)
	require.NoError(t, db.Create(&cities.City{Name: "Hue"}).Error)

	w, out := doMigrate(t, r, `{}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, false, out["dryRun"])

	results, ok := out["results"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), results["total"])
	assert.Equal(t, float64(1), results["migrated"])
	assert.Equal(t, float64(1), results["skipped"])
	assert.Equal(t, float64(0), results["failed"])
}

func TestMigrateImagesSingleDryRun(t *testing.T) {
	r, db, _ := newTestRouter(t)
	city := &cities.City{Name: "Hanoi", ImageUrl: "https://images.example.com/hanoi.jpg"}
	require.NoError(t, db.Create(city).Error)

	w, out := doMigrate(t, r, fmt.Sprintf(`{"cityId":%q,"dryRun":true}`, city.ID))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, true, out["dryRun"])
	assert.Equal(t, "Hanoi", out["entityName"])
	assert.NotEmpty(t, out["updates"])

	// Dry run leaves the document untouched.
	var reloaded cities.City
	require.NoError(t, db.First(&reloaded, "id = ?", city.ID).Error)
	assert.Equal(t, "https://images.example.com/hanoi.jpg", reloaded.ImageUrl)
}

func TestMigrateImagesSingleNoChanges(t *testing.T) {
	r, db, _ := newTestRouter(t)
	city := &cities.City{
		Name:     "Hanoi",
		ImageUrl: "https://" + testBlobHost + "/southbound-images/cities/hanoi.jpg",
	}
	require.NoError(t, db.Create(city).Error)

	w, out := doMigrate(t, r, fmt.Sprintf(`{"cityId":%q}`, city.ID))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, "no images needed migration", out["message"])
	assert.NotContains(t, out, "updates")
}

func TestMigrateImagesSingleLive(t *testing.T) {
	r, db, _ := newTestRouter(t)
	city := &cities.City{Name: "Hanoi", ImageUrl: "https://images.example.com/hanoi.jpg"}
	require.NoError(t, db.Create(city).Error)

	w, out := doMigrate(t, r, fmt.Sprintf(`{"cityId":%q}`, city.ID))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, "Hanoi", out["entityName"])
	assert.NotEmpty(t, out["updates"])

	var reloaded cities.City
	require.NoError(t, db.First(&reloaded, "id = ?", city.ID).Error)
	assert.Contains(t, reloaded.ImageUrl, testBlobHost)
}

func TestMigrateImagesSingleFailed(t *testing.T) {
	r, db, stub := newTestRouter(t)
	stub.failHosts["unreachable.invalid"] = true

	city := &cities.City{Name: "Hue", ImageUrl: "https://unreachable.invalid/only.jpg"}
	require.NoError(t, db.Create(city).Error)

	w, out := doMigrate(t, r, fmt.Sprintf(`{"cityId":%q}`, city.ID))

	// A city whose only migration failed must not read like a no-op.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, out["success"])
	assert.Equal(t, "migration failed", out["message"])
	assert.Contains(t, out["error"], "imageUrl[0]")

	var reloaded cities.City
	require.NoError(t, db.First(&reloaded, "id = ?", city.ID).Error)
	assert.Equal(t, "https://unreachable.invalid/only.jpg", reloaded.ImageUrl)
}

func TestMigrateImagesSinglePartialFailureReportsError(t *testing.T) {
	r, db, stub := newTestRouter(t)
	stub.failHosts["unreachable.invalid"] = true

	city := &cities.City{
		Name:      "Hanoi",
		ImageUrl:  "https://images.example.com/hanoi.jpg",
		ImageUrls: []string{"https://unreachable.invalid/broken.jpg"},
	}
	require.NoError(t, db.Create(city).Error)

	w, out := doMigrate(t, r, fmt.Sprintf(`{"cityId":%q}`, city.ID))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, out["success"])
	assert.NotEmpty(t, out["updates"])
	assert.Contains(t, out["error"], "imageUrls[0]")
}
