// Package catalog loads the storefront's immutable reference data: the
// bookable services and the purchasable products. Both lists come from
// read-only JSON sources (HTTP URL or local file) fetched once at startup;
// the managers must not be used before Load succeeds.
package catalog

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"salonstore-backend/models"

	"github.com/guonaihong/gout"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrLoad marks any failure to fetch or parse the catalog sources. It is
// fatal to startup: nothing renders without the reference lists.
var ErrLoad = errors.New("catalog load failed")

const fetchTimeout = 10 * time.Second

// Catalog holds the loaded reference lists. Immutable after Load.
type Catalog struct {
	Services []models.Service
	Products []models.Product
}

// Load fetches and validates both lists. Each source is an http(s) URL or a
// local file path.
func Load(servicesSrc, productsSrc string) (*Catalog, error) {
	cat := &Catalog{}

	if err := loadInto(servicesSrc, &cat.Services); err != nil {
		return nil, fmt.Errorf("%w: services from %s: %v", ErrLoad, servicesSrc, err)
	}
	if err := loadInto(productsSrc, &cat.Products); err != nil {
		return nil, fmt.Errorf("%w: products from %s: %v", ErrLoad, productsSrc, err)
	}

	for _, s := range cat.Services {
		if s.ID <= 0 || s.Name == "" || s.Price.IsNegative() {
			return nil, fmt.Errorf("%w: malformed service entry id=%d", ErrLoad, s.ID)
		}
	}
	for _, p := range cat.Products {
		if p.ID <= 0 || p.Name == "" || p.Price.IsNegative() {
			return nil, fmt.Errorf("%w: malformed product entry id=%d", ErrLoad, p.ID)
		}
	}

	return cat, nil
}

func loadInto(src string, out any) error {
	raw, err := fetch(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func fetch(src string) ([]byte, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		var (
			body []byte
			code int
		)
		err := gout.GET(src).SetTimeout(fetchTimeout).Code(&code).BindBody(&body).Do()
		if err != nil {
			return nil, err
		}
		if code != http.StatusOK {
			return nil, fmt.Errorf("unexpected status %d", code)
		}
		return body, nil
	}
	return os.ReadFile(src)
}

// ServiceByID resolves a service id from the booking form.
func (c *Catalog) ServiceByID(id int64) (models.Service, bool) {
	for _, s := range c.Services {
		if s.ID == id {
			return s, true
		}
	}
	return models.Service{}, false
}

// ProductByID resolves a product id from an add-to-cart action.
func (c *Catalog) ProductByID(id int64) (models.Product, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
