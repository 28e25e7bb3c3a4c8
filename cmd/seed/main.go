package main

import (
	"context"
	"flag"
	"log"

	"shop-catalog-api/internal/models"
	"shop-catalog-api/pkg/server"
)

// seedItem pairs the catalog fields with an initial stock count.
type seedItem struct {
	title       string
	description string
	price       float64
	count       int
}

var defaultItems = []seedItem{
	{"ProductOne", "Short Product Description1", 24, 6},
	{"ProductTitle", "Short Product Description7", 15, 0},
	{"Product", "Short Product Description2", 23, 7},
	{"ProductTest", "Short Product Description4", 15, 12},
	{"Product2", "Short Product Description1", 23, 7},
	{"ProductName", "Short Product Description7", 21, 15},
}

// Seeds the product and stock tables with demo catalog data. Intended for
// fresh environments; re-running creates new rows with new IDs.
func main() {
	dryRun := flag.Bool("dry-run", false, "print what would be written without touching the tables")
	flag.Parse()

	ctx := context.Background()

	container, err := server.NewContainer(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	for _, item := range defaultItems {
		product := models.NewProduct(item.title, item.description, "", item.price)
		stock := models.NewStock(product.ID, item.count)

		if *dryRun {
			log.Printf("would create %q (price %.2f, count %d)", product.Title, product.Price, stock.Count)
			continue
		}

		if err := container.Repos.CatalogWriter.CreatePair(ctx, product, stock); err != nil {
			log.Fatalf("Failed to seed %q: %v", product.Title, err)
		}
		log.Printf("created %q as %s", product.Title, product.ID)
	}
}
