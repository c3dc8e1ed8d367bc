// internal/router/router.go
package router

import (
	"net/http"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"

	"cognitrack/internal/config"
	"cognitrack/internal/handlers"
	"cognitrack/internal/models"
)

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func rateLimitErrorHandler(c *gin.Context, info ratelimit.Info) {
	c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Try again later."})
}

func Setup(log *zap.Logger, catalog *models.TestCatalog) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))

	store := cookie.NewStore([]byte(config.Conf.Server.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   false, // behind TLS-terminating proxy in production
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400 * 7,
	})
	router.Use(sessions.Sessions("cognitrack_session", store))

	router.Use(CSRFProtection())

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})
	router.Use(func(c *gin.Context) {
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			c.Abort()
			return
		}
		c.Next()
	})

	authHandler := handlers.NewAuthHandler(log)
	testsHandler := handlers.NewTestsHandler(log, catalog)
	supplementsHandler := handlers.NewSupplementsHandler(log)
	factorsHandler := handlers.NewFactorsHandler(log)
	analysisHandler := handlers.NewAnalysisHandler(log)
	chartsHandler := handlers.NewChartsHandler(log)
	userHandler := handlers.NewUserHandler(log)

	rateLimitStore := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: 5,
	})
	limiter := ratelimit.RateLimiter(rateLimitStore, &ratelimit.Options{
		ErrorHandler: rateLimitErrorHandler,
		KeyFunc:      keyFunc,
	})

	api := router.Group("/api")

	api.POST("/register", limiter, authHandler.Register)
	api.POST("/login", limiter, authHandler.Login)
	api.POST("/logout", authHandler.Logout)

	authorized := api.Group("/")
	authorized.Use(AuthRequired(log))
	{
		testRoutes := authorized.Group("/tests")
		{
			testRoutes.GET("/catalog", testsHandler.ShowCatalog)
			testRoutes.GET("/results", testsHandler.ListResults)
			testRoutes.POST("/nback", testsHandler.SubmitNBack)
			testRoutes.POST("/reaction", testsHandler.SubmitReaction)
		}

		supplementRoutes := authorized.Group("/supplements")
		{
			supplementRoutes.GET("", supplementsHandler.List)
			supplementRoutes.POST("", supplementsHandler.Create)
			supplementRoutes.GET("/:id/intakes", supplementsHandler.ListIntakes)
			supplementRoutes.POST("/:id/intakes", supplementsHandler.LogIntake)
			supplementRoutes.GET("/:id/impact", analysisHandler.Impact)
		}

		washoutRoutes := authorized.Group("/washouts")
		{
			washoutRoutes.GET("", supplementsHandler.ListWashouts)
			washoutRoutes.POST("", supplementsHandler.StartWashout)
			washoutRoutes.POST("/:id/end", supplementsHandler.EndWashout)
		}

		factorRoutes := authorized.Group("/factors")
		{
			factorRoutes.GET("", factorsHandler.List)
			factorRoutes.POST("", factorsHandler.Save)
		}

		analysisRoutes := authorized.Group("/analyses")
		{
			analysisRoutes.GET("", analysisHandler.List)
			analysisRoutes.POST("", analysisHandler.Run)
			analysisRoutes.DELETE("/:id", analysisHandler.Delete)
		}

		chartRoutes := authorized.Group("/charts")
		{
			chartRoutes.GET("/timeline", chartsHandler.Timeline)
			chartRoutes.GET("/correlation", chartsHandler.Correlation)
		}

		profileRoutes := authorized.Group("/profile")
		{
			profileRoutes.GET("", userHandler.Profile)
			profileRoutes.POST("/update-info", userHandler.UpdateInfo)
			profileRoutes.POST("/update-password", userHandler.UpdatePassword)
			profileRoutes.POST("/notifications", userHandler.UpdateNotifications)
			profileRoutes.POST("/delete", userHandler.DeleteAccount)
		}
	}

	return router
}
