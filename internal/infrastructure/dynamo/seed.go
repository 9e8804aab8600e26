package dynamo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-pet-adoption-api/internal/domain"
)

// DefaultPets is the starter catalog written by SeedPets.
var DefaultPets = []domain.Pet{
	{Name: "Whiskers", Image: "/images/cat1.jpg", Breed: "Ginger Cat", Age: "4 months"},
	{Name: "Quincy", Image: "/images/quincy.jpg", Breed: "Cavalier King Charles Spaniel", Age: "3 months"},
	{Name: "Mittens", Image: "/images/cat2.jpg", Breed: "Tabby Cat", Age: "1 year"},
	{Name: "Sunny", Image: "/images/sunny.jpg", Breed: "Golden Retriever", Age: "4 months"},
	{Name: "Shadow", Image: "/images/cat3.jpg", Breed: "Black Cat", Age: "2 years"},
	{Name: "Rex", Image: "/images/rex.jpg", Breed: "German Shepherd", Age: "2 years"},
	{Name: "Miso", Image: "/images/miso.jpg", Breed: "Pembroke Welsh Corgi", Age: "1 year"},
	{Name: "Snowy", Image: "/images/snowy.jpg", Breed: "White Longhair Cat", Age: "3 years"},
	{Name: "Hero", Image: "/images/hero.jpg", Breed: "Black Labrador Retriever", Age: "1 year"},
}

type petSeeder interface {
	Empty(ctx context.Context) (bool, error)
	Put(ctx context.Context, p *domain.Pet) error
}

// SeedPets writes pets into an empty catalog. A catalog that already has
// entries is left untouched.
func SeedPets(ctx context.Context, repo petSeeder, pets []domain.Pet) error {
	empty, err := repo.Empty(ctx)
	if err != nil {
		return fmt.Errorf("check pets table: %w", err)
	}
	if !empty {
		slog.Info("pets table not empty, skipping seed")
		return nil
	}
	for i := range pets {
		p := pets[i]
		if err := repo.Put(ctx, &p); err != nil {
			return fmt.Errorf("seed pet %s: %w", p.Name, err)
		}
	}
	slog.Info("seeded pets", "count", len(pets))
	return nil
}
