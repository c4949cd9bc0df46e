// Package gen produces seed and fake data for development environments.
package gen

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"demo/ecommerce/internal/model"
)

func SeedOnce() { gofakeit.Seed(time.Now().UnixNano()) }

// AdminEmail is the fixed account the seeder guarantees to exist.
const AdminEmail = "admin@admin.cl"

// Catalog returns the fixed set of computing products seeded into an empty
// store.
func Catalog() []model.Product {
	return []model.Product{
		{ID: uuid.NewString(), Name: "Laptop", Description: "High-performance laptop", PriceCents: 120000},
		{ID: uuid.NewString(), Name: "Desktop PC", Description: "Powerful gaming desktop", PriceCents: 150000},
		{ID: uuid.NewString(), Name: "Monitor", Description: "4K UHD Monitor", PriceCents: 30000},
		{ID: uuid.NewString(), Name: "Mechanical Keyboard", Description: "RGB backlit keyboard", PriceCents: 10000},
		{ID: uuid.NewString(), Name: "Mouse", Description: "Wireless ergonomic mouse", PriceCents: 5000},
		{ID: uuid.NewString(), Name: "External Hard Drive", Description: "1TB USB-C Hard Drive", PriceCents: 12000},
	}
}

// FakeUser generates a random user with an opaque password hash.
func FakeUser() model.User {
	return model.User{
		ID:           uuid.NewString(),
		Email:        gofakeit.Email(),
		PasswordHash: gofakeit.LetterN(60),
	}
}

// FakeProduct generates a random product.
func FakeProduct() model.Product {
	return model.Product{
		ID:          uuid.NewString(),
		Name:        gofakeit.ProductName(),
		Description: gofakeit.ProductDescription(),
		PriceCents:  int64(gofakeit.Number(500, 500000)),
	}
}
