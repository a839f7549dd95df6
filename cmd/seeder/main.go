// Command seeder bootstraps a fresh database: it creates the initial admin
// account and, with --sample-catalog, a handful of catalog entries to work
// with during development.
//
// Flags:
//
//	--username        admin username (default: admin)
//	--password        admin password (required)
//	--display-name    admin display name (default: Administrateur)
//	--sample-catalog  also insert sample patte and coupelle entries
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/atelier-soudage/outillage-backend/internal/adapter/postgres/catalog"
	"github.com/atelier-soudage/outillage-backend/internal/adapter/postgres/user"
	"github.com/atelier-soudage/outillage-backend/internal/domain"
)

func main() {
	username := flag.String("username", "admin", "admin username")
	password := flag.String("password", "", "admin password (required)")
	displayName := flag.String("display-name", "Administrateur", "admin display name")
	sampleCatalog := flag.Bool("sample-catalog", false, "insert sample catalog entries")
	flag.Parse()

	if *password == "" {
		log.Fatal("--password is required")
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	if err := seedAdmin(ctx, pool, *username, *password, *displayName); err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	if *sampleCatalog {
		if err := seedCatalog(ctx, pool); err != nil {
			log.Fatalf("seed catalog: %v", err)
		}
	}

	fmt.Println("Seeding complete.")
}

func seedAdmin(ctx context.Context, pool *pgxpool.Pool, username, password, displayName string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	users := user.New(pool)
	err = users.Create(ctx, domain.User{
		ID:           uuid.New(),
		Username:     username,
		DisplayName:  displayName,
		PasswordHash: string(hash),
		Role:         domain.UserRoleAdmin,
		CreatedAt:    time.Now().UTC(),
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		fmt.Printf("User %q already exists, skipping.\n", username)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Created admin user %q.\n", username)
	return nil
}

func seedCatalog(ctx context.Context, pool *pgxpool.Pool) error {
	repo := catalog.New(pool)

	pattes := []domain.PatteTool{
		{
			ID:             uuid.New(),
			PatteAnneauRef: "PA-100",
			Reference:      "REF-A1",
			Slots: [domain.MaxSlots]domain.PatteSlot{
				{ToolRef: strp("OUT-001"), Location: strp("E1-03")},
				{ToolRef: strp("OUT-002"), Location: strp("E1-04")},
			},
			CreatedAt: time.Now().UTC(),
		},
		{
			ID:             uuid.New(),
			PatteAnneauRef: "PA-200",
			Reference:      "REF-B2",
			Slots: [domain.MaxSlots]domain.PatteSlot{
				{ToolRef: strp("OUT-010"), Location: strp("E2-01")},
			},
			CreatedAt: time.Now().UTC(),
		},
	}
	for _, p := range pattes {
		if _, err := repo.CreatePatte(ctx, p); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				continue
			}
			return fmt.Errorf("create patte %s: %w", p.Reference, err)
		}
	}

	coupelles := []domain.CoupelleTool{
		{
			ID:             uuid.New(),
			AmortisseurRef: "AMX-50",
			CoupelleRef:    "COUP-A",
			Slots: [domain.MaxSlots]domain.CoupelleSlot{
				{
					Assise: strp("ASS-001"), AssiseLocation: strp("E3-01"),
					Axe: strp("AXE-001"), AxeLocation: strp("E3-02"),
				},
			},
			CreatedAt: time.Now().UTC(),
		},
	}
	for _, c := range coupelles {
		if _, err := repo.CreateCoupelle(ctx, c); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				continue
			}
			return fmt.Errorf("create coupelle %s: %w", c.CoupelleRef, err)
		}
	}

	fmt.Printf("Inserted %d pattes and %d coupelles.\n", len(pattes), len(coupelles))
	return nil
}

func strp(s string) *string { return &s }
