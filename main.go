package main

import (
	"context"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Sishir120/PackYourBags-sub000/config"
	"github.com/Sishir120/PackYourBags-sub000/controllers"
	"github.com/Sishir120/PackYourBags-sub000/database"
	"github.com/Sishir120/PackYourBags-sub000/routes"
	"github.com/Sishir120/PackYourBags-sub000/services"
	"github.com/Sishir120/PackYourBags-sub000/utils"
)

func main() {
	cfg := config.LoadConfig()

	if err := utils.InitLogger(); err != nil {
		log.Printf("file logging disabled: %v", err)
	}

	db, err := openDatabase(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	log.Printf("Connected to %s database", cfg.DBDriver)

	utils.SetDB(db)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	log.Println("Migration complete")

	if err := database.SeedDestinations(db, "destinations.json"); err != nil {
		log.Fatalf("failed to seed destinations: %v", err)
	}
	log.Println("Destinations seeded (if needed)")

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis unavailable (%v) - caching, logout and rate limits degraded", err)
	} else {
		utils.SetRedis(rdb)
		log.Println("Connected to Redis")
	}

	controllers.InitGoogleOAuth()

	// nightly flight-price refresh for active price watches
	flightsService := services.NewFlightsService(cfg)
	notifyService := services.NewNotifyService(cfg)
	services.StartPriceWatchCron(db, flightsService, notifyService, cfg.HomeAirport)
	log.Println("Price watch cron started")

	r := routes.SetupRouter(cfg)

	log.Printf("Server is running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DBDriver == "postgres" {
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
}
