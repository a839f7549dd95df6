package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atelier-soudage/outillage-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func strp(s string) *string { return &s }

// SeedUser creates a user account with a fixed (non-functional) password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Username:     "testuser-" + suffix,
		DisplayName:  "Test User " + suffix,
		PasswordHash: "$2a$10$invalidinvalidinvalidinvalidinvalidinvalidinvalidinv",
		Role:         domain.UserRoleUser,
		CreatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, username, display_name, password_hash, role, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Username, user.DisplayName, user.PasswordHash, string(user.Role), user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// SeedPatte creates a patte catalog row with all three slots filled.
func SeedPatte(t *testing.T, pool *pgxpool.Pool, reference string) domain.PatteTool {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	tool := domain.PatteTool{
		ID:             uuid.New(),
		PatteAnneauRef: "ANN-" + suffix,
		Reference:      reference,
		CreatedAt:      now,
	}
	for i := range tool.Slots {
		tool.Slots[i] = domain.PatteSlot{
			ToolRef:  strp("OUT-" + suffix + "-" + string(rune('1'+i))),
			Location: strp("EMP-" + string(rune('A'+i))),
		}
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO outils_soudage_patte
		 (id, reference_patte_anneau, reference,
		  reference_outil_1, emplacement_outil_1,
		  reference_outil_2, emplacement_outil_2,
		  reference_outil_3, emplacement_outil_3,
		  commentaire, observation, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		tool.ID, tool.PatteAnneauRef, tool.Reference,
		tool.Slots[0].ToolRef, tool.Slots[0].Location,
		tool.Slots[1].ToolRef, tool.Slots[1].Location,
		tool.Slots[2].ToolRef, tool.Slots[2].Location,
		tool.Commentaire, tool.Observation, tool.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPatte insert: %v", err)
	}

	return tool
}

// SeedCoupelle creates a coupelle catalog row with the first slot's assise
// and axe filled.
func SeedCoupelle(t *testing.T, pool *pgxpool.Pool, reference string) domain.CoupelleTool {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	tool := domain.CoupelleTool{
		ID:             uuid.New(),
		AmortisseurRef: "AMO-" + suffix,
		CoupelleRef:    reference,
		CreatedAt:      now,
	}
	tool.Slots[0] = domain.CoupelleSlot{
		Assise:         strp("ASS-" + suffix),
		AssiseLocation: strp("EMP-ASS"),
		Axe:            strp("AXE-" + suffix),
		AxeLocation:    strp("EMP-AXE"),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO outils_soudage_coupelle
		 (id, reference_amortisseur, reference_coupelle,
		  assise_coupelle_1, emp_ass_1, axe_coupelle_1, emp_axe_1, remarque_outil_1,
		  assise_coupelle_2, emp_ass_2, axe_coupelle_2, emp_axe_2, remarque_outil_2,
		  assise_coupelle_3, emp_ass_3, axe_coupelle_3, emp_axe_3, remarque_outil_3,
		  created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		tool.ID, tool.AmortisseurRef, tool.CoupelleRef,
		tool.Slots[0].Assise, tool.Slots[0].AssiseLocation, tool.Slots[0].Axe, tool.Slots[0].AxeLocation, tool.Slots[0].Remark,
		tool.Slots[1].Assise, tool.Slots[1].AssiseLocation, tool.Slots[1].Axe, tool.Slots[1].AxeLocation, tool.Slots[1].Remark,
		tool.Slots[2].Assise, tool.Slots[2].AssiseLocation, tool.Slots[2].Axe, tool.Slots[2].AxeLocation, tool.Slots[2].Remark,
		tool.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCoupelle insert: %v", err)
	}

	return tool
}

// SeedHistoryItem inserts an exit-log row with the given tool reference and
// quantity.
func SeedHistoryItem(t *testing.T, pool *pgxpool.Pool, toolRef string, quantity int, createdBy uuid.UUID) domain.HistoryItem {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	item := domain.HistoryItem{
		ID:          uuid.New(),
		Reference:   "REF-" + uniqueSuffix(),
		ToolRef:     toolRef,
		PersonName:  "Seed Person",
		Activity:    domain.ActivityCorrective,
		Quantity:    quantity,
		CreatedBy:   createdBy,
		OperationAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO historique
		 (id, reference, reference_outil, emplacement, nom_prenom_personne, activite, quantite, created_by, date_operation)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		item.ID, item.Reference, item.ToolRef, item.Location, item.PersonName,
		string(item.Activity), item.Quantity, item.CreatedBy, item.OperationAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedHistoryItem insert: %v", err)
	}

	return item
}

// SeedInProgress inserts an outils_en_cours row for the given tool reference.
func SeedInProgress(t *testing.T, pool *pgxpool.Pool, toolRef string, createdBy uuid.UUID) domain.InProgressTool {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	item := domain.InProgressTool{
		ID:          uuid.New(),
		Reference:   "REF-" + uniqueSuffix(),
		ToolRef:     toolRef,
		PersonName:  "Seed Person",
		Activity:    domain.ActivityCorrective,
		Quantity:    1,
		CreatedBy:   createdBy,
		OperationAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO outils_en_cours
		 (id, reference, reference_outil, emplacement, nom_prenom_personne, activite, quantite, created_by, date_operation)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		item.ID, item.Reference, item.ToolRef, item.Location, item.PersonName,
		string(item.Activity), item.Quantity, item.CreatedBy, item.OperationAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedInProgress insert: %v", err)
	}

	return item
}

// SeedShimRecord inserts a cale record for the given (assise, axe) pair.
func SeedShimRecord(t *testing.T, pool *pgxpool.Pool, assise, axe string, thickness int, userID uuid.UUID) domain.ShimRecord {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	rec := domain.ShimRecord{
		ID:             uuid.New(),
		AmortisseurRef: "AMO-" + uniqueSuffix(),
		Assise:         assise,
		Axe:            axe,
		ThicknessMm:    thickness,
		PersonName:     "Seed Person",
		UserID:         userID,
		RecordedAt:     now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO historique_cale
		 (id, reference_amortisseur, assise_coupelle, axe_coupelle, epaisseur_cale, nom_prenom, user_id, temps_activite)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.ID, rec.AmortisseurRef, rec.Assise, rec.Axe, rec.ThicknessMm,
		rec.PersonName, rec.UserID, rec.RecordedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedShimRecord insert: %v", err)
	}

	return rec
}

// SeedCriticalTool registers a tool reference as critical.
func SeedCriticalTool(t *testing.T, pool *pgxpool.Pool, toolRef string) domain.CriticalTool {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	tool := domain.CriticalTool{
		ID:        uuid.New(),
		Reference: "REF-" + uniqueSuffix(),
		ToolRef:   toolRef,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO outil_critique (id, reference, reference_composant, reference_outil, emplacement, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		tool.ID, tool.Reference, tool.ComposantRef, tool.ToolRef, tool.Location, tool.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCriticalTool insert: %v", err)
	}

	return tool
}
