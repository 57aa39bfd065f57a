package config

import (
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

// InitApp builds the router and the cron scheduler and connects the
// database, Redis and Elasticsearch into DB, RedisClient and ElasticClient.
func InitApp(cfg Config) (*gin.Engine, *cron.Cron, error) {
	router := gin.Default()
	router.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	if err := router.SetTrustedProxies(nil); err != nil {
		return nil, nil, err
	}

	if err := initComponents(cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize components: %v", err)
	}

	c := cron.New()

	return router, c, nil
}

func corsConfig(origins []string) cors.Config {
	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("X-Session-ID")
	configCors.AddExposeHeaders("X-Session-ID")
	configCors.AllowCredentials = true
	if len(origins) > 0 {
		configCors.AllowOrigins = origins
	} else {
		configCors.AllowOriginFunc = func(origin string) bool {
			return true
		}
	}
	return configCors
}

func initComponents(cfg Config) error {
	if err := ConnectDB(cfg.DB); err != nil {
		return err
	}

	if cfg.AutoMigrate {
		if err := Migrate(DB); err != nil {
			return err
		}
	}

	var err error
	RedisClient, err = ConnectRedis(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	ElasticClient, err = ConnectElastic(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to Elasticsearch: %v", err)
	}

	log.Println("All components initialized successfully")
	return nil
}
