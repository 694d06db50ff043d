package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"user-hobbies/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users   service.UserService
	hobbies service.HobbyService
	logger  logrus.FieldLogger
}

func NewHandler(users service.UserService, hobbies service.HobbyService, logger logrus.FieldLogger) *Handler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Handler{
		users:   users,
		hobbies: hobbies,
		logger:  logger,
	}
}

// NewRouter builds a gin engine with logging, recovery, CORS and every route
// registered.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(requestLogger(h.logger), recovery(h.logger))
	h.RegisterRoutes(router)
	return router
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	router.GET("/users", h.listUsers)
	router.GET("/user/:id", h.getUser)
	router.POST("/user", h.createUser)
	router.PATCH("/user/:id", h.updateUser)
	router.DELETE("/user/:id", h.deleteUser)
	router.GET("/user/:id/hobbies", h.listUserHobbies)

	router.GET("/hobbies", h.listHobbies)
	router.GET("/hobby/:id", h.getHobby)
	router.POST("/hobby", h.createHobby)
	router.PATCH("/hobby/:id", h.updateHobby)
	router.DELETE("/hobby/:userId/:id", h.deleteHobby)

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
	})

	router.NoRoute(func(c *gin.Context) {
		abortWith(c, errNotFound)
	})
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			origin = "*"
		}
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")
		c.Writer.Header().Add("Vary", "Origin")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
