package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"marketplace-api/internal/handler/api"
	"marketplace-api/internal/handler/middleware"
	"marketplace-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Profile *api.ProfileHandler
	Product *api.ProductHandler
	Like    *api.LikeHandler
	Review  *api.ReviewHandler
	Chat    *api.ChatHandler
	Image   *api.ImageHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	engine.GET("/storage/"+cfg.Storage.Bucket+"/*key", h.Image.Serve)

	requireAuth := authMiddleware.RequireAuth()
	optionalAuth := authMiddleware.OptionalAuth()

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: h.Auth.Signup},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		profiles := apiGroup.Group("/profiles")
		{
			addRoutes(profiles, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Profile.GetMany},
				{Method: http.MethodPatch, Path: "/me", Handler: h.Profile.UpdateMe, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Profile.Get},
			})
		}

		products := apiGroup.Group("/products")
		{
			addRoutes(products, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Product.List},
				{Method: http.MethodGet, Path: "/search", Handler: h.Product.Search},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Product.Get},
				{Method: http.MethodGet, Path: "/:id/confirmed-buyer", Handler: h.Product.ConfirmedBuyer},
				{Method: http.MethodGet, Path: "/:id/likes", Handler: h.Like.Status, Mw: []gin.HandlerFunc{optionalAuth}},
			})

			authed := products.Group("")
			authed.Use(requireAuth)
			addRoutes(authed, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Product.Create},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Product.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Product.Delete},
				{Method: http.MethodPost, Path: "/:id/sold", Handler: h.Product.MarkSold},
				{Method: http.MethodPost, Path: "/:id/active", Handler: h.Product.MarkActive},
				{Method: http.MethodPost, Path: "/:id/likes/toggle", Handler: h.Like.Toggle},
				{Method: http.MethodGet, Path: "/:id/reviews/mine", Handler: h.Review.Mine},
				{Method: http.MethodPost, Path: "/:id/chat-room", Handler: h.Chat.GetOrCreateRoom},
			})
		}

		users := apiGroup.Group("/users")
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "/:id/products", Handler: h.Product.ListByUser},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: h.Review.ListByReviewee},
				{Method: http.MethodGet, Path: "/:id/rating", Handler: h.Review.Rating},
			})
		}

		rooms := apiGroup.Group("/chat-rooms")
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "/:id/ws", Handler: h.Chat.Subscribe, Mw: []gin.HandlerFunc{authMiddleware.RequireAuthWS()}},
			})

			authed := rooms.Group("")
			authed.Use(requireAuth)
			addRoutes(authed, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Chat.MyRooms},
				{Method: http.MethodGet, Path: "/unread-count", Handler: h.Chat.UnreadCount},
				{Method: http.MethodGet, Path: "/:id/messages", Handler: h.Chat.Messages},
				{Method: http.MethodPost, Path: "/:id/messages", Handler: h.Chat.SendMessage},
				{Method: http.MethodPost, Path: "/:id/read", Handler: h.Chat.MarkRead},
				{Method: http.MethodPost, Path: "/:id/confirm-sale", Handler: h.Chat.ConfirmSale},
				{Method: http.MethodGet, Path: "/:id/eligibility", Handler: h.Chat.Eligibility},
			})
		}

		reviews := apiGroup.Group("/reviews")
		{
			addRoutes(reviews, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Review.Get},
			})

			authed := reviews.Group("")
			authed.Use(requireAuth)
			addRoutes(authed, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Review.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Review.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Review.Delete},
			})
		}

		images := apiGroup.Group("/images")
		images.Use(requireAuth)
		{
			addRoutes(images, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Image.Upload},
				{Method: http.MethodPost, Path: "/batch", Handler: h.Image.UploadMany},
				{Method: http.MethodDelete, Path: "", Handler: h.Image.Delete},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
