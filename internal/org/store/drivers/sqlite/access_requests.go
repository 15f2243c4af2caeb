package sqlite

import (
	"context"
	"database/sql"

	"github.com/quorumhq/quorum/internal/org/domain"
	"github.com/quorumhq/quorum/internal/org/store"
)

type accessRequestsRepo struct {
	db dbtx
}

var accessRequestSortColumns = map[string]string{
	"id":         "r.id",
	"email":      "r.email",
	"type":       "r.type",
	"created_at": "r.created_at",
}

func (r *accessRequestsRepo) CreateAccessRequest(ctx context.Context, req domain.AccessRequest) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO access_requests (id, email, type, user_id, organization_id, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		req.ID, req.Email, req.Type,
		mapStringNull(req.UserID), mapStringNull(req.OrganizationID), mapStringNull(req.Message),
		req.CreatedAt,
	)
	return mapConflict(err)
}

func (r *accessRequestsRepo) ListAccessRequests(ctx context.Context, p store.ListParams) ([]domain.AccessRequestDetails, int, error) {
	where := ``
	args := []any{}
	if p.Q != "" {
		where = ` WHERE r.email LIKE '%' || ? || '%' COLLATE NOCASE`
		args = append(args, p.Q)
	}

	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM access_requests r`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT r.id, r.email, r.type, r.user_id, r.organization_id, r.message, r.created_at,
		       u.name, u.thumbnail_url,
		       o.name, o.slug, o.thumbnail_url
		FROM access_requests r
		LEFT JOIN users u ON u.id = r.user_id
		LEFT JOIN organizations o ON o.id = r.organization_id` + where +
		orderClause(p, accessRequestSortColumns, "r.created_at")
	page, args := pageClause(p, args)
	rows, err := r.db.QueryContext(ctx, query+page, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.AccessRequestDetails
	for rows.Next() {
		var (
			d                              domain.AccessRequestDetails
			userID, orgID, message         sql.NullString
			userName, userThumb            sql.NullString
			orgName, orgSlug, orgThumbnail sql.NullString
		)
		if err := rows.Scan(
			&d.ID, &d.Email, &d.Type, &userID, &orgID, &message, &d.CreatedAt,
			&userName, &userThumb,
			&orgName, &orgSlug, &orgThumbnail,
		); err != nil {
			return nil, 0, err
		}
		d.UserID = mapNullString(userID)
		d.OrganizationID = mapNullString(orgID)
		d.Message = mapNullString(message)
		d.UserName = mapNullString(userName)
		d.UserThumbnail = mapNullString(userThumb)
		d.OrganizationName = mapNullString(orgName)
		d.OrganizationSlug = mapNullString(orgSlug)
		d.OrganizationThumbnail = mapNullString(orgThumbnail)
		out = append(out, d)
	}
	return out, total, rows.Err()
}
