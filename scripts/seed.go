package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/weguard/weguard-backend/internal/adapters/database"
	"github.com/weguard/weguard-backend/internal/application/services"
	"github.com/weguard/weguard-backend/internal/domain/entities"
	"github.com/weguard/weguard-backend/internal/infrastructure/clients/postgres"
	"github.com/weguard/weguard-backend/pkg/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS detection_results (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	disease TEXT NOT NULL,
	confidence DOUBLE PRECISION NOT NULL DEFAULT 0,
	healthy BOOLEAN NOT NULL DEFAULT FALSE,
	description TEXT,
	symptoms TEXT[] NOT NULL DEFAULT '{}',
	causes TEXT[] NOT NULL DEFAULT '{}',
	prevention TEXT[] NOT NULL DEFAULT '{}',
	medicines JSONB NOT NULL DEFAULT '[]',
	image_url TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_detection_results_user_id ON detection_results (user_id, created_at DESC);

CREATE TABLE IF NOT EXISTS weather_alerts (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	message TEXT NOT NULL,
	severity TEXT NOT NULL,
	region TEXT,
	active BOOLEAN NOT NULL DEFAULT TRUE,
	starts_at TIMESTAMPTZ NOT NULL,
	ends_at TIMESTAMPTZ NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS treatments (
	id TEXT PRIMARY KEY,
	disease TEXT NOT NULL,
	name TEXT NOT NULL,
	application_rate TEXT NOT NULL,
	frequency TEXT NOT NULL,
	notes TEXT,
	approved BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_treatments_disease ON treatments (disease);

CREATE TABLE IF NOT EXISTS paddy_prices (
	id TEXT PRIMARY KEY,
	variety TEXT NOT NULL,
	region TEXT NOT NULL,
	price_per_kg DOUBLE PRECISION NOT NULL,
	currency TEXT NOT NULL,
	effective_date TIMESTAMPTZ NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	ctx := context.Background()
	db := pgClient.DB()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, truncating tables before seeding")
		_, err := db.ExecContext(ctx, `
			TRUNCATE TABLE
				detection_results,
				weather_alerts,
				treatments,
				paddy_prices
			RESTART IDENTITY CASCADE
		`)
		if err != nil {
			log.Fatalf("Failed to reset tables: %v", err)
		}
	}

	treatmentService := services.NewTreatmentService(database.NewTreatmentAdapter(pgClient))
	weatherAlertService := services.NewWeatherAlertService(database.NewWeatherAlertAdapter(pgClient))
	paddyPriceService := services.NewPaddyPriceService(database.NewPaddyPriceAdapter(pgClient))

	// 1. Seed Treatments
	treatments := []entities.Treatment{
		{ID: uuid.New().String(), Disease: "BROWN_SPOT", Name: "Mancozeb 80% WP", ApplicationRate: "2g per litre", Frequency: "Every 7 days", Approved: true},
		{ID: uuid.New().String(), Disease: "BROWN_SPOT", Name: "Propiconazole 25% EC", ApplicationRate: "1ml per litre", Frequency: "Every 14 days", Approved: true},
		{ID: uuid.New().String(), Disease: "BACTERIAL_LEAF_BLIGHT", Name: "Copper Oxychloride 50% WP", ApplicationRate: "3g per litre", Frequency: "Every 10 days", Approved: true},
		{ID: uuid.New().String(), Disease: "LEAF_SMUT", Name: "Carbendazim 50% WP", ApplicationRate: "1g per litre", Frequency: "Every 10 days", Approved: true},
		{ID: uuid.New().String(), Disease: "BLAST", Name: "Tricyclazole 75% WP", ApplicationRate: "0.6g per litre", Frequency: "Every 12 days", Approved: false, Notes: "Pending field trial results"},
	}

	for _, t := range treatments {
		if err := treatmentService.Create(ctx, &t); err != nil {
			log.Printf("Failed to create treatment %s: %v", t.Name, err)
		}
	}

	// 2. Seed Weather Alerts
	alerts := []entities.WeatherAlert{
		{
			ID:       uuid.New().String(),
			Title:    "Heavy rainfall warning",
			Message:  "Heavy rainfall expected over the next 48 hours. Delay fertilizer application and check drainage.",
			Severity: "high",
			Region:   "Ampara",
			Active:   true,
			StartsAt: time.Now(),
			EndsAt:   time.Now().Add(48 * time.Hour),
		},
		{
			ID:       uuid.New().String(),
			Title:    "High humidity advisory",
			Message:  "Sustained humidity above 85% favors blast outbreaks. Scout fields daily.",
			Severity: "medium",
			Region:   "Polonnaruwa",
			Active:   true,
			StartsAt: time.Now(),
			EndsAt:   time.Now().Add(72 * time.Hour),
		},
	}

	for _, a := range alerts {
		if err := weatherAlertService.Create(ctx, &a); err != nil {
			log.Printf("Failed to create weather alert %s: %v", a.Title, err)
		}
	}

	// 3. Seed Paddy Prices
	prices := []entities.PaddyPrice{
		{ID: uuid.New().String(), Variety: "Nadu", Region: "Ampara", PricePerKg: 112.50, Currency: "LKR", EffectiveDate: time.Now()},
		{ID: uuid.New().String(), Variety: "Samba", Region: "Ampara", PricePerKg: 128.00, Currency: "LKR", EffectiveDate: time.Now()},
		{ID: uuid.New().String(), Variety: "Nadu", Region: "Polonnaruwa", PricePerKg: 110.00, Currency: "LKR", EffectiveDate: time.Now()},
		{ID: uuid.New().String(), Variety: "Keeri Samba", Region: "Kurunegala", PricePerKg: 145.00, Currency: "LKR", EffectiveDate: time.Now()},
	}

	for _, p := range prices {
		if err := paddyPriceService.Create(ctx, &p); err != nil {
			log.Printf("Failed to create paddy price %s/%s: %v", p.Variety, p.Region, err)
		}
	}

	log.Println("Seeding completed successfully")
}
