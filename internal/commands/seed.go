package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cargotrack/cargotrack/internal/storage"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with sample data",
	Long: `Insert sample locations, containers, products, clients, shipments,
orders and maintenance jobs. Running it twice is safe: seeding is skipped
when the reference tables already hold rows.`,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	store, err := storage.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()

	if err := store.Seed(); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	info, err := store.GetInfo()
	if err != nil {
		return err
	}

	fmt.Printf("Database seeded\n")
	fmt.Printf("  Containers: %d\n", info.Containers)
	fmt.Printf("  Shipments:  %d\n", info.Shipments)
	fmt.Printf("  Orders:     %d\n", info.Orders)
	return nil
}
