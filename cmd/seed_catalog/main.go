package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/pageza/healthshop/backend/config"
	"github.com/pageza/healthshop/backend/internal/auth"
	"github.com/pageza/healthshop/backend/internal/database"
	"github.com/pageza/healthshop/backend/internal/logger"
)

func main() {
	printTokens := flag.Bool("tokens", false, "Print a development bearer token for each demo user")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Environment == config.Production {
		log.Fatal("Refusing to seed demo data in production")
	}

	appLog, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLog.Sync()

	db, err := database.Open(cfg, appLog)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	sum, err := seed(context.Background(), db, time.Now().UTC(), appLog)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	fmt.Printf("Created %d categories, %d products, %d users, %d orders\n",
		sum.Categories, sum.Products, sum.Users, sum.Orders)

	if !*printTokens {
		return
	}
	tokens := auth.NewTokenService(cfg.JWTSecret, "healthshop")
	names := make([]string, 0, len(sum.UserIDs))
	for name := range sum.UserIDs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		token, err := tokens.Generate(sum.UserIDs[name], name)
		if err != nil {
			log.Fatalf("Failed to sign token for %s: %v", name, err)
		}
		fmt.Printf("%s: %s\n", name, token)
	}
}
