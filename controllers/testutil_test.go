package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"studiopro-backend/config"
	"studiopro-backend/models"
	"studiopro-backend/routes"
	"studiopro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates a named in-memory SQLite database for one test. A
// single pooled connection keeps the shared-cache database alive and
// serializes concurrent writers.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to access database pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.BillingEntity{},
		&models.Site{},
		&models.POC{},
		&models.Location{},
		&models.ShootType{},
		&models.Shoot{},
		&models.Edit{},
		&models.Coupon{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// setupRouter wires a fresh database into the real router.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")
	config.DB = setupTestDB(t)
	return routes.SetupRouter()
}

func tokenWithRoles(t *testing.T, roles ...string) string {
	t.Helper()

	token, err := utils.GenerateToken(uuid.NewString(), roles)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	return token
}

func adminToken(t *testing.T) string {
	return tokenWithRoles(t, models.RoleAdmin)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		buf = bytes.NewReader(b)
	} else {
		buf = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var result map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return result
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()

	var result []map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return result
}

// fieldErrors extracts the field-level message set from a 400 response.
func fieldErrors(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	body := decodeBody(t, w)
	fields, _ := body["fields"].(map[string]interface{})
	if fields == nil {
		t.Fatalf("Expected field-level validation errors, got %v", body)
	}
	return fields
}

func createRecord(t *testing.T, r *gin.Engine, token, path string, body interface{}) map[string]interface{} {
	t.Helper()

	w := doJSON(t, r, "POST", path, token, body)
	if w.Code != 201 {
		t.Fatalf("Expected 201 creating %s, got %d: %s", path, w.Code, w.Body.String())
	}
	return decodeBody(t, w)
}

func recordID(t *testing.T, record map[string]interface{}) string {
	t.Helper()

	id, ok := record["ID"].(string)
	if !ok || id == "" {
		t.Fatalf("Expected record ID, got %v", record)
	}
	return id
}
