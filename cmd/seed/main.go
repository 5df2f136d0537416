package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/boolen-kitchen/api/internal/enum"
	"github.com/boolen-kitchen/api/internal/model"
	"github.com/boolen-kitchen/api/internal/service"
	"github.com/boolen-kitchen/api/internal/store"
)

func main() {
	// CLI flags
	dataFile := flag.String("data-file", "", "Path to the JSON data file")
	force := flag.Bool("force", false, "Overwrite an existing catalog")
	flag.Parse()

	// Fall back to environment variables, then defaults
	if *dataFile == "" {
		*dataFile = os.Getenv("DATA_FILE")
	}
	if *dataFile == "" {
		*dataFile = "data/db.json"
	}

	ctx := context.Background()
	var st store.Store
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		pool, err := pgxpool.New(ctx, dbURL)
		if err != nil {
			log.Fatalf("Unable to connect to database: %v", err)
		}
		defer pool.Close()
		st, err = store.NewPgxStore(ctx, pool)
		if err != nil {
			log.Fatalf("Unable to initialize database store: %v", err)
		}
	} else {
		fs, err := store.NewFileStore(*dataFile)
		if err != nil {
			log.Fatalf("Unable to open data file %s: %v", *dataFile, err)
		}
		st = fs
	}

	existing := false
	err := st.View(ctx, func(doc *store.Document) error {
		existing = len(doc.Menu.Menus) > 0
		return nil
	})
	if err != nil {
		log.Fatalf("Unable to read store: %v", err)
	}
	if existing && !*force {
		log.Fatal("Catalog already seeded; pass -force to overwrite")
	}

	menus := service.NewMenuService(st, true)
	if _, err := menus.Replace(ctx, demoCatalog()); err != nil {
		log.Fatalf("Unable to seed catalog: %v", err)
	}

	hours := service.NewHoursService(st)
	if err := hours.Replace(ctx, model.DefaultHours()); err != nil {
		log.Fatalf("Unable to seed hours: %v", err)
	}

	log.Println("Seeded demo catalog and default business hours")
}

func demoCatalog() model.MenuCatalog {
	item := func(name, description, price string) model.MenuItem {
		return model.MenuItem{
			Name:          name,
			Description:   description,
			DeliveryPrice: model.MustMoney(price),
			PickupPrice:   model.MustMoney(price),
			Available:     true,
		}
	}

	return model.MenuCatalog{Menus: []model.Menu{{
		Name:      model.DefaultMenuName,
		Days:      append([]string(nil), enum.ShortDays...),
		StartTime: model.DefaultStartTime,
		EndTime:   model.DefaultEndTime,
		Categories: []model.Category{
			{
				Name: "Mains",
				Items: []model.MenuItem{
					item("Classic Burger", "Beef patty, cheddar, house sauce", "12.99"),
					item("Margherita Pizza", "Tomato, mozzarella, basil", "14.99"),
					item("Caesar Salad", "Romaine, parmesan, croutons", "9.99"),
				},
			},
			{
				Name: "Sides",
				Items: []model.MenuItem{
					item("Garlic Fries", "Hand cut, garlic butter", "5.99"),
				},
			},
			{
				Name: "Drinks & Desserts",
				Items: []model.MenuItem{
					item("Iced Lemonade", "Fresh squeezed", "4.99"),
					item("Chocolate Cake", "Warm, with ganache", "7.99"),
				},
			},
		},
	}}}
}
