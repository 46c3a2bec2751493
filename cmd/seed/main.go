// seed crea los datos mínimos para arrancar: un usuario admin y las categorías
// por defecto del catálogo. Idempotente: los registros existentes se respetan.
//
// Uso: SEED_ADMIN_EMAIL=... SEED_ADMIN_PASSWORD=... go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/revendix/revendix-api/internal/domain/entity"
	"github.com/revendix/revendix-api/internal/infrastructure/postgres"
	"github.com/revendix/revendix-api/pkg/config"
)

var defaultCategories = []struct{ name, description string }{
	{"Électronique", "Téléphones, accessoires et gadgets"},
	{"Mode", "Vêtements et chaussures"},
	{"Beauté", "Cosmétiques et soins"},
	{"Maison", "Articles ménagers et décoration"},
	{"Divers", "Autres articles"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		fmt.Fprintln(os.Stderr, "SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD son requeridos")
		os.Exit(1)
	}

	userRepo := postgres.NewUserRepository(pool)
	existing, err := userRepo.FindByEmail(email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "buscar admin: %v\n", err)
		os.Exit(1)
	}
	if existing == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "hashear password: %v\n", err)
			os.Exit(1)
		}
		now := time.Now()
		admin := &entity.User{
			ID:           uuid.New().String(),
			Email:        email,
			PasswordHash: string(hash),
			Name:         "Admin",
			Role:         entity.RoleAdmin,
			Status:       "active",
			Language:     cfg.App.DefaultLanguage,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(admin); err != nil {
			fmt.Fprintf(os.Stderr, "crear admin: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("admin creado: %s\n", email)
	} else {
		fmt.Printf("admin ya existe: %s\n", email)
	}

	categoryRepo := postgres.NewCategoryRepository(pool)
	existingCats, err := categoryRepo.List(100, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "listar categorías: %v\n", err)
		os.Exit(1)
	}
	have := make(map[string]bool, len(existingCats))
	for _, c := range existingCats {
		have[c.Name] = true
	}
	created := 0
	for _, dc := range defaultCategories {
		if have[dc.name] {
			continue
		}
		now := time.Now()
		if err := categoryRepo.Create(&entity.Category{
			ID:          uuid.New().String(),
			Name:        dc.name,
			Description: dc.description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "crear categoría %q: %v\n", dc.name, err)
			os.Exit(1)
		}
		created++
	}
	fmt.Printf("categorías creadas: %d\n", created)
}
