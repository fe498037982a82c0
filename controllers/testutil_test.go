package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"kotibus/config"
	"kotibus/models"
	"kotibus/routes"
	"kotibus/storage"
	"kotibus/utils"
)

const testCatalog = `[
  {"id": 1, "name": "Classic Hoodie", "description": "Heavyweight fleece hoodie",
   "detailedDescription": "Heavyweight fleece hoodie.", "image": "/images/classic-hoodie.jpg",
   "category": "hoodies", "sizes": ["S", "M", "L"], "originalPrice": 1800, "salePrice": 1200},
  {"id": 2, "name": "Graphic Tee", "description": "Printed cotton t-shirt",
   "detailedDescription": "Printed cotton t-shirt.", "image": "/images/graphic-tee.jpg",
   "category": "tshirts", "sizes": ["M", "L"], "originalPrice": 800, "salePrice": 550},
  {"id": 3, "name": "Canvas Tote", "description": "Heavy canvas tote bag",
   "detailedDescription": "Heavy canvas tote bag.", "image": "/images/canvas-tote.jpg",
   "category": "accessories", "sizes": [], "originalPrice": 500, "salePrice": 350}
]`

func setupRouter(t *testing.T) (*gin.Engine, routes.Stores) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dataDir := t.TempDir()
	config.AppConfig = &config.Config{
		AppEnv:         "test",
		Port:           "0",
		JWTSecret:      "test-secret",
		JWTExpiry:      "1h",
		DataDir:        dataDir,
		ProductsFile:   "products.json",
		TaxRatePercent: 5,
		GuestShipping:  150,
	}

	productsPath := filepath.Join(dataDir, "products.json")
	require.NoError(t, os.WriteFile(productsPath, []byte(testCatalog), 0o644))

	catalog, err := storage.NewCatalogStore(productsPath)
	require.NoError(t, err)
	carts, err := storage.NewFileCartStore(filepath.Join(dataDir, "carts.json"))
	require.NoError(t, err)
	users, err := storage.NewFileUserStore(filepath.Join(dataDir, "users.json"))
	require.NoError(t, err)
	orders := storage.NewFileOrderStore(filepath.Join(dataDir, "orders.json"))

	stores := routes.Stores{Catalog: catalog, Carts: carts, Users: users, Orders: orders}

	router := gin.New()
	routes.SetupRoutes(router, stores)
	return router, stores
}

func userToken(t *testing.T, id, name, email string) string {
	t.Helper()
	token, err := utils.GenerateToken(models.Session{ID: id, Name: name, Email: email})
	require.NoError(t, err)
	return token
}

func guestToken(t *testing.T, id string) string {
	t.Helper()
	token, err := utils.GenerateToken(models.Session{ID: id, Name: "Guest", IsGuest: true})
	require.NoError(t, err)
	return token
}

func doJSON(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func cartSummary(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %v", body)
	summary, ok := data["summary"].(map[string]interface{})
	require.True(t, ok, "data has no summary: %v", data)
	return summary
}
