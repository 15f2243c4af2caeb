package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/quorumhq/quorum/internal/org/domain"
	"github.com/quorumhq/quorum/internal/org/store"
)

type organizationsRepo struct {
	db dbtx
}

var organizationSortColumns = map[string]string{
	"name":        "name",
	"slug":        "slug",
	"created_at":  "created_at",
	"modified_at": "modified_at",
}

const organizationColumns = `id, name, slug, thumbnail_url, created_at, modified_at`

func scanOrganization(row interface{ Scan(dest ...any) error }) (domain.Organization, error) {
	var o domain.Organization
	err := row.Scan(
		&o.ID,
		&o.Name,
		&o.Slug,
		&o.ThumbnailURL,
		&o.CreatedAt,
		&o.ModifiedAt,
	)
	return o, err
}

func (r *organizationsRepo) CreateOrganization(ctx context.Context, o domain.Organization) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO organizations (id, name, slug, thumbnail_url, created_at, modified_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		o.ID, o.Name, o.Slug, o.ThumbnailURL, o.CreatedAt, o.ModifiedAt,
	)
	return mapConflict(err)
}

func (r *organizationsRepo) GetOrganizationByID(ctx context.Context, id string) (domain.Organization, error) {
	o, err := scanOrganization(r.db.QueryRowContext(ctx,
		`SELECT `+organizationColumns+` FROM organizations WHERE id = ?`, id))
	if err != nil {
		return domain.Organization{}, mapNotFound(err)
	}
	return o, nil
}

func (r *organizationsRepo) GetOrganizationByIDOrSlug(ctx context.Context, idOrSlug string) (domain.Organization, error) {
	o, err := scanOrganization(r.db.QueryRowContext(ctx,
		`SELECT `+organizationColumns+` FROM organizations WHERE id = ? OR slug = ?`,
		idOrSlug, idOrSlug))
	if err != nil {
		return domain.Organization{}, mapNotFound(err)
	}
	return o, nil
}

func (r *organizationsRepo) ListOrganizations(ctx context.Context, p store.ListParams) ([]domain.Organization, int, error) {
	where := ``
	args := []any{}
	if p.Q != "" {
		where = ` WHERE name LIKE '%' || ? || '%' COLLATE NOCASE`
		args = append(args, p.Q)
	}

	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM organizations`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + organizationColumns + ` FROM organizations` + where +
		orderClause(p, organizationSortColumns, "name")
	page, args := pageClause(p, args)
	rows, err := r.db.QueryContext(ctx, query+page, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var orgs []domain.Organization
	for rows.Next() {
		o, err := scanOrganization(rows)
		if err != nil {
			return nil, 0, err
		}
		orgs = append(orgs, o)
	}
	return orgs, total, rows.Err()
}

func (r *organizationsRepo) UpdateOrganization(ctx context.Context, o domain.Organization) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE organizations SET name = ?, slug = ?, thumbnail_url = ?, modified_at = ?
		WHERE id = ?`,
		o.Name, o.Slug, o.ThumbnailURL, time.Now().UTC(), o.ID,
	)
	if err != nil {
		return mapConflict(err)
	}
	return requireAffected(res)
}

func (r *organizationsRepo) DeleteOrganizations(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM organizations WHERE id IN (`+placeholders+`)`, args...)
	return err
}
