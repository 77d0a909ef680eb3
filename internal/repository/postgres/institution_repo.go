package postgres

import (
	"context"

	"go-medlink-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type institutionRepo struct {
	db *pgxpool.Pool
}

func NewInstitutionRepository(db *pgxpool.Pool) domain.InstitutionRepository {
	return &institutionRepo{db: db}
}

const institutionColumns = `id, profile_id, name, type, location, website, description, logo_url, employee_count, created_at, updated_at`

func scanInstitution(row interface{ Scan(...any) error }) (*domain.Institution, error) {
	var i domain.Institution
	err := row.Scan(
		&i.ID, &i.ProfileID, &i.Name, &i.Type, &i.Location, &i.Website,
		&i.Description, &i.LogoURL, &i.EmployeeCount, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *institutionRepo) GetByID(ctx context.Context, id string) (*domain.Institution, error) {
	query := `SELECT ` + institutionColumns + ` FROM institutions WHERE id = $1`
	inst, err := scanInstitution(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, classify(err)
	}
	return inst, nil
}

func (r *institutionRepo) GetByProfileID(ctx context.Context, profileID string) (*domain.Institution, error) {
	query := `SELECT ` + institutionColumns + ` FROM institutions WHERE profile_id = $1`
	inst, err := scanInstitution(r.db.QueryRow(ctx, query, profileID))
	if err != nil {
		return nil, classify(err)
	}
	return inst, nil
}

func (r *institutionRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Institution, error) {
	query := `SELECT ` + institutionColumns + ` FROM institutions
              ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var insts []domain.Institution
	for rows.Next() {
		inst, err := scanInstitution(rows)
		if err != nil {
			return nil, classify(err)
		}
		insts = append(insts, *inst)
	}
	return insts, classify(rows.Err())
}

func (r *institutionRepo) Upsert(ctx context.Context, inst *domain.Institution) error {
	query := `INSERT INTO institutions (` + institutionColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
              ON CONFLICT (profile_id) DO UPDATE SET
                name = EXCLUDED.name,
                type = EXCLUDED.type,
                location = EXCLUDED.location,
                website = EXCLUDED.website,
                description = EXCLUDED.description,
                logo_url = EXCLUDED.logo_url,
                employee_count = EXCLUDED.employee_count,
                updated_at = EXCLUDED.updated_at`
	_, err := r.db.Exec(ctx, query,
		inst.ID, inst.ProfileID, inst.Name, inst.Type, inst.Location,
		inst.Website, inst.Description, inst.LogoURL, inst.EmployeeCount,
		inst.CreatedAt, inst.UpdatedAt,
	)
	return classify(err)
}
