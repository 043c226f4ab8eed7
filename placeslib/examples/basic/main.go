// ABOUTME: Basic example showing a paginated business search with placeslib
// ABOUTME: Reads the API key from GOOGLE_MAPS_API_KEY and walks every available page

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"places-finder-api/placeslib"
)

func main() {
	client, err := placeslib.NewClient(placeslib.WithAPIKey(os.Getenv("GOOGLE_MAPS_API_KEY")))
	if err != nil {
		log.Fatal("Failed to create client:", err)
	}
	defer client.Close()

	ctx := context.Background()

	fmt.Println("=== Coffee in Seattle ===")
	page, err := client.Search(ctx, "coffee", "Seattle")
	for err == nil {
		for _, b := range page.Businesses {
			website := "-"
			if b.Website != nil {
				website = *b.Website
			}
			fmt.Printf("- %s, %s (%s)\n", b.Name, b.Address, website)
		}
		if !page.HasMore() {
			break
		}
		page, err = client.LoadMore(ctx, "coffee", "Seattle", page.NextPageToken)
	}
	if err != nil {
		log.Printf("Search failed: %v\n", err)
	}

	fmt.Println("\n=== Pizza in several cities ===")
	multi, err := client.SearchMultiple(ctx, "pizza", []string{"Seattle", "Portland"})
	if err != nil {
		log.Fatalf("Multi search failed: %v", err)
	}
	for location, businesses := range multi.Results {
		fmt.Printf("%s: %d businesses\n", location, len(businesses))
	}
}
