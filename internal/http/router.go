package api

import (
	stdhttp "net/http"

	intconfig "flyaway/internal/config"
	h "flyaway/internal/http/handlers"
	"flyaway/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires pages and the JSON API onto a gin engine.
func NewRouter(env intconfig.Env, hd *h.Handler, log *zap.Logger) (*gin.Engine, error) {
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(log),
		gin.Recovery(),
		middleware.CORS(env.CORSOrigins),
		middleware.AuthOptional(hd.Tokens),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Warn("failed to set trusted proxies", zap.Error(err))
	}

	tmpl, err := h.Templates()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	// Pages
	r.GET("/", hd.HomePage)
	r.GET("/search", hd.SearchPage)
	r.POST("/login", hd.LoginPage)
	r.POST("/signup", hd.SignupPage)
	r.GET("/reservation", hd.StartReservationPage)
	r.GET("/reservation/:id", hd.ReservationPage)
	r.POST("/reservation/:id", hd.ReservationFormPost)
	r.GET("/reservation/:id/itinerary.pdf", hd.ItineraryPDF)

	api := r.Group("/api")
	{
		api.GET("/health", hd.Health)
		api.GET("/routes", h.Routes)
		api.GET("/content", hd.Content)
		api.POST("/search", hd.Search)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", hd.Login)
		auth.POST("/signup", hd.Signup)
		auth.POST("/logout", hd.Logout)
		auth.GET("/me", hd.Me)

		// Reservations
		reservations := api.Group("/reservations")
		mountReservations(reservations, hd)
	}

	h.SetRouter(r)
	return r, nil
}

func mountReservations(g *gin.RouterGroup, hd *h.Handler) {
	g.POST("", hd.CreateReservation)
	g.GET("/:id", hd.GetReservation)
	g.PATCH("/:id/contact", hd.EditContact)
	g.POST("/:id/contact/blur", hd.BlurContact)
	g.PATCH("/:id/passengers/:index", hd.EditPassenger)
	g.POST("/:id/passengers/:index/blur", hd.BlurPassenger)
	g.POST("/:id/addons/:addon/toggle", hd.ToggleAddOn)
	g.PUT("/:id/baggage/:index", hd.SelectBaggage)
	g.POST("/:id/submit", hd.SubmitReservation)
	g.DELETE("/:id/errors", hd.DismissErrors)
	g.GET("/:id/itinerary.pdf", hd.ItineraryPDF)
}
