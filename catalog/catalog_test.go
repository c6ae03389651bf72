package catalog_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"salonstore-backend/catalog"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const (
	servicesJSON = `[
		{"id": 1, "name": "Hair Wash", "price": 10},
		{"id": 2, "name": "Haircut", "price": 15}
	]`
	productsJSON = `[
		{"id": 1, "name": "Shampoo", "price": 10, "image": "shampoo.png"},
		{"id": 2, "name": "Hair Gel", "price": 5.5, "image": "gel.png"}
	]`
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFiles(t *testing.T) {
	cat, err := catalog.Load(
		writeFixture(t, "services.json", servicesJSON),
		writeFixture(t, "products.json", productsJSON),
	)
	require.NoError(t, err)
	require.Len(t, cat.Services, 2)
	require.Len(t, cat.Products, 2)

	svc, ok := cat.ServiceByID(2)
	require.True(t, ok)
	require.Equal(t, "Haircut", svc.Name)
	require.True(t, svc.Price.Equal(decimal.NewFromInt(15)))
	require.Equal(t, "Haircut ($15)", svc.Label())

	prod, ok := cat.ProductByID(1)
	require.True(t, ok)
	require.Equal(t, "Shampoo", prod.Name)
	require.Equal(t, "shampoo.png", prod.Image)

	_, ok = cat.ServiceByID(99)
	require.False(t, ok)
	_, ok = cat.ProductByID(99)
	require.False(t, ok)
}

func TestLoadFromHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/services.json":
			w.Write([]byte(servicesJSON))
		case "/products.json":
			w.Write([]byte(productsJSON))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	cat, err := catalog.Load(srv.URL+"/services.json", srv.URL+"/products.json")
	require.NoError(t, err)
	require.Len(t, cat.Services, 2)
	require.Len(t, cat.Products, 2)
}

func TestLoadFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	goodServices := writeFixture(t, "services.json", servicesJSON)
	goodProducts := writeFixture(t, "products.json", productsJSON)

	tests := []struct {
		name        string
		servicesSrc string
		productsSrc string
	}{
		{
			name:        "missing services file",
			servicesSrc: filepath.Join(t.TempDir(), "nope.json"),
			productsSrc: goodProducts,
		},
		{
			name:        "malformed products json",
			servicesSrc: goodServices,
			productsSrc: writeFixture(t, "products.json", `{"not": "a list"`),
		},
		{
			name:        "negative price",
			servicesSrc: writeFixture(t, "services.json", `[{"id": 1, "name": "Haircut", "price": -5}]`),
			productsSrc: goodProducts,
		},
		{
			name:        "missing name",
			servicesSrc: goodServices,
			productsSrc: writeFixture(t, "products.json", `[{"id": 1, "price": 10}]`),
		},
		{
			name:        "upstream error status",
			servicesSrc: srv.URL + "/services.json",
			productsSrc: goodProducts,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Load(tt.servicesSrc, tt.productsSrc)
			require.ErrorIs(t, err, catalog.ErrLoad)
		})
	}
}
