package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/domain"
	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/repository"
)

type roleRepository struct {
	db *sql.DB
}

func NewRoleRepository(db *sql.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

const roleColumns = `id, corporation_id, user_id, character_id, character_name, role,
	granted_by, granted_at, expires_at, is_active, created_at, updated_at`

func scanRole(row interface{ Scan(...any) error }) (*domain.HrRole, error) {
	role := &domain.HrRole{}
	var expiresAt sql.NullTime
	err := row.Scan(&role.ID, &role.CorporationID, &role.UserID, &role.CharacterID, &role.CharacterName,
		&role.Role, &role.GrantedBy, &role.GrantedAt, &expiresAt, &role.IsActive, &role.CreatedAt, &role.UpdatedAt)
	if err != nil {
		return nil, err
	}
	role.ExpiresAt = timePtr(expiresAt)
	return role, nil
}

func (r *roleRepository) ReplaceActive(ctx context.Context, role *domain.HrRole) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Superseded grants are kept, deactivated, for audit history.
	_, err = tx.ExecContext(ctx,
		`UPDATE hr_roles SET is_active = FALSE, updated_at = NOW()
		 WHERE corporation_id = $1 AND user_id = $2 AND is_active`,
		role.CorporationID, role.UserID)
	if err != nil {
		return err
	}

	query := `INSERT INTO hr_roles
	          (corporation_id, user_id, character_id, character_name, role, granted_by, granted_at, expires_at, is_active, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, NOW(), $7, TRUE, NOW(), NOW())
	          RETURNING id, granted_at, created_at, updated_at`
	err = tx.QueryRowContext(ctx, query,
		role.CorporationID, role.UserID, role.CharacterID, role.CharacterName,
		role.Role, role.GrantedBy, nullTime(role.ExpiresAt),
	).Scan(&role.ID, &role.GrantedAt, &role.CreatedAt, &role.UpdatedAt)
	if err != nil {
		// The partial unique index fires only under a concurrent writer that
		// slipped in between the deactivate and the insert.
		return mapConflict(err, "an active role for this user and corporation already exists")
	}
	role.IsActive = true
	return tx.Commit()
}

func (r *roleRepository) GetByID(ctx context.Context, id int64) (*domain.HrRole, error) {
	query := `SELECT ` + roleColumns + ` FROM hr_roles WHERE id = $1`
	role, err := scanRole(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("role %d not found", id)
	}
	return role, err
}

func (r *roleRepository) Deactivate(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE hr_roles SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NotFoundf("role %d not found", id)
	}
	return nil
}

func (r *roleRepository) GetActiveByUserAndCorporation(ctx context.Context, userID, corporationID int64) (*domain.HrRole, error) {
	query := `SELECT ` + roleColumns + ` FROM hr_roles
	          WHERE user_id = $1 AND corporation_id = $2 AND is_active`
	role, err := scanRole(r.db.QueryRowContext(ctx, query, userID, corporationID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return role, err
}

func (r *roleRepository) ListActiveByUser(ctx context.Context, userID int64, corporationID *int64) ([]domain.HrRole, error) {
	query := `SELECT ` + roleColumns + ` FROM hr_roles
	          WHERE user_id = $1 AND is_active AND (expires_at IS NULL OR expires_at > NOW())`
	args := []any{userID}
	if corporationID != nil {
		query += ` AND corporation_id = $2`
		args = append(args, *corporationID)
	}
	query += ` ORDER BY granted_at DESC, id DESC`
	return r.queryRoles(ctx, query, args...)
}

func (r *roleRepository) ListByCorporation(ctx context.Context, corporationID int64, activeOnly bool) ([]domain.HrRole, error) {
	query := `SELECT ` + roleColumns + ` FROM hr_roles WHERE corporation_id = $1`
	if activeOnly {
		query += ` AND is_active`
	}
	query += ` ORDER BY granted_at DESC, id DESC`
	return r.queryRoles(ctx, query, corporationID)
}

func (r *roleRepository) ListUserCorporations(ctx context.Context, userID int64) ([]int64, error) {
	query := `SELECT DISTINCT corporation_id FROM hr_roles
	          WHERE user_id = $1 AND is_active AND (expires_at IS NULL OR expires_at > NOW())`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var corps []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		corps = append(corps, id)
	}
	return corps, rows.Err()
}

func (r *roleRepository) DeactivateExpired(ctx context.Context) ([]int64, error) {
	query := `UPDATE hr_roles SET is_active = FALSE, updated_at = NOW()
	          WHERE is_active AND expires_at IS NOT NULL AND expires_at <= NOW()
	          RETURNING corporation_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var corps []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		corps = append(corps, id)
	}
	return corps, rows.Err()
}

func (r *roleRepository) queryRoles(ctx context.Context, query string, args ...any) ([]domain.HrRole, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []domain.HrRole
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		roles = append(roles, *role)
	}
	return roles, rows.Err()
}
