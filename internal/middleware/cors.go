package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/vistream/discovery/internal/config"
)

func CORS(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods: cfg.Security.CORS.AllowedMethods,
		AllowHeaders: cfg.Security.CORS.AllowedHeaders,
	}

	// A wildcard origin cannot be combined with credentials.
	for _, origin := range cfg.Security.CORS.AllowedOrigins {
		if origin == "*" {
			corsConfig.AllowAllOrigins = true
		}
	}
	if !corsConfig.AllowAllOrigins {
		corsConfig.AllowOrigins = cfg.Security.CORS.AllowedOrigins
		corsConfig.AllowCredentials = true
	}

	return cors.New(corsConfig)
}
