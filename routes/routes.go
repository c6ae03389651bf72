package routes

import (
	"time"

	"salonstore-backend/catalog"
	"salonstore-backend/config"
	"salonstore-backend/controllers"
	"salonstore-backend/services"

	"github.com/asaskevich/EventBus"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SetupRouter wires the HTTP adapter: read endpoints render catalog, cart
// and appointment state; write endpoints map onto the four core operations;
// /api/events pushes change events.
func SetupRouter(cat *catalog.Catalog, cart *services.CartService, appointments *services.AppointmentService, bus EventBus.Bus, slowRequest time.Duration) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type"},
		ExposeHeaders:   []string{"Content-Length"},
	}))

	r.Use(requestID())
	r.Use(config.PerformanceLogger(slowRequest))

	catalogCtl := &controllers.CatalogController{Catalog: cat}
	cartCtl := &controllers.CartController{Cart: cart}
	appointmentCtl := &controllers.AppointmentController{Appointments: appointments}
	eventsCtl := &controllers.EventsController{Bus: bus}

	api := r.Group("/api")
	{
		api.GET("/services", catalogCtl.GetServices)
		api.GET("/products", catalogCtl.GetProducts)

		cartGroup := api.Group("/cart")
		{
			cartGroup.GET("", cartCtl.GetCart)
			cartGroup.POST("/items/:id", cartCtl.AddItem)
			cartGroup.DELETE("/items/:id", cartCtl.RemoveItem)
			cartGroup.POST("/checkout", cartCtl.Checkout)
		}

		appointmentsGroup := api.Group("/appointments")
		{
			appointmentsGroup.GET("", appointmentCtl.List)
			appointmentsGroup.POST("", appointmentCtl.Book)
		}

		api.GET("/events", eventsCtl.Stream)
	}

	return r
}

// requestID tags every response so client reports can be matched to logs.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
