package main

import (
	"fmt"

	"salonstore-backend/catalog"
	"salonstore-backend/config"
	"salonstore-backend/routes"
	"salonstore-backend/services"
	"salonstore-backend/store"

	"github.com/asaskevich/EventBus"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	settings := config.Load()
	config.InitLogger(settings)
	defer zap.L().Sync()

	st, err := openStore(settings)
	if err != nil {
		zap.S().Fatalf("store init failed: %v", err)
	}
	defer st.Close()

	// The managers depend on the loaded lists, so nothing is wired before
	// this succeeds.
	cat, err := catalog.Load(settings.ServicesURL, settings.ProductsURL)
	if err != nil {
		zap.S().Fatalf("could not load catalog data: %v", err)
	}
	zap.S().Infof("catalog loaded: %d services, %d products",
		len(cat.Services), len(cat.Products))

	bus := EventBus.New()
	notifier := services.LogNotifier{}

	cart := services.NewCartService(st, cat, bus, notifier)
	appointments := services.NewAppointmentService(st, cat, bus, notifier)
	if settings.TwilioAccountSID != "" && settings.TwilioFrom != "" {
		appointments.SetConfirmer(services.NewSMSConfirmer(
			settings.TwilioAccountSID, settings.TwilioAuthToken, settings.TwilioFrom))
	}

	r := routes.SetupRouter(cat, cart, appointments, bus, settings.SlowRequest)
	printRoutes(r)

	if err := r.Run(":" + settings.Port); err != nil {
		zap.S().Fatalf("server stopped: %v", err)
	}
}

func openStore(s *config.Settings) (store.Store, error) {
	switch s.StoreBackend {
	case "postgres":
		return store.OpenPostgres(s.DatabaseURL)
	case "memory":
		return store.NewMemory(), nil
	default:
		return store.OpenBolt(s.StorePath)
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
