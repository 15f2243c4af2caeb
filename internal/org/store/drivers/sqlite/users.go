package sqlite

import (
	"context"
	"time"

	"github.com/quorumhq/quorum/internal/org/domain"
	"github.com/quorumhq/quorum/internal/org/store"
)

type usersRepo struct {
	db dbtx
}

var userSortColumns = map[string]string{
	"email":       "email",
	"name":        "name",
	"role":        "role",
	"created_at":  "created_at",
	"modified_at": "modified_at",
}

const userColumns = `id, email, name, password_hash, role, thumbnail_url, created_at, modified_at`

func scanUser(row interface{ Scan(dest ...any) error }) (domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.PasswordHash,
		&u.Role,
		&u.ThumbnailURL,
		&u.CreatedAt,
		&u.ModifiedAt,
	)
	return u, err
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ? COLLATE NOCASE`, email))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, email, name, password_hash, role, thumbnail_url, created_at, modified_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.Name, u.PasswordHash, u.Role, u.ThumbnailURL, u.CreatedAt, u.ModifiedAt,
	)
	return mapConflict(err)
}

func (r *usersRepo) UpdateUser(ctx context.Context, userID, name, thumbnailURL string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET name = ?, thumbnail_url = ?, modified_at = ? WHERE id = ?`,
		name, thumbnailURL, time.Now().UTC(), userID,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID, newHash string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET password_hash = ?, modified_at = ? WHERE id = ?`,
		newHash, time.Now().UTC(), userID,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *usersRepo) DeleteUser(ctx context.Context, userID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *usersRepo) ListUsers(ctx context.Context, p store.ListParams, role string) ([]domain.User, int, error) {
	where := ` WHERE 1=1`
	args := []any{}
	if p.Q != "" {
		where += ` AND (email LIKE '%' || ? || '%' COLLATE NOCASE OR name LIKE '%' || ? || '%' COLLATE NOCASE)`
		args = append(args, p.Q, p.Q)
	}
	if role != "" {
		where += ` AND role = ?`
		args = append(args, role)
	}

	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + userColumns + ` FROM users` + where +
		orderClause(p, userSortColumns, "created_at")
	query2, args := pageClause(p, args)
	rows, err := r.db.QueryContext(ctx, query+query2, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	return users, total, rows.Err()
}
