package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/quorumhq/quorum/internal/org/domain"
	"github.com/quorumhq/quorum/internal/org/store"
)

type membershipsRepo struct {
	db dbtx
}

var memberSortColumns = map[string]string{
	"email":      "u.email",
	"name":       "u.name",
	"role":       "m.role",
	"created_at": "m.created_at",
}

const membershipColumns = `id, user_id, organization_id, role, inactive, muted, created_at, modified_at`

func scanMembership(row interface{ Scan(dest ...any) error }) (domain.Membership, error) {
	var m domain.Membership
	err := row.Scan(
		&m.ID,
		&m.UserID,
		&m.OrganizationID,
		&m.Role,
		&m.Inactive,
		&m.Muted,
		&m.CreatedAt,
		&m.ModifiedAt,
	)
	return m, err
}

func (r *membershipsRepo) CreateMembership(ctx context.Context, m domain.Membership) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO memberships (id, user_id, organization_id, role, inactive, muted, created_at, modified_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.UserID, m.OrganizationID, m.Role, m.Inactive, m.Muted, m.CreatedAt, m.ModifiedAt,
	)
	return mapConflict(err)
}

func (r *membershipsRepo) GetMembershipByID(ctx context.Context, id string) (domain.Membership, error) {
	m, err := scanMembership(r.db.QueryRowContext(ctx,
		`SELECT `+membershipColumns+` FROM memberships WHERE id = ?`, id))
	if err != nil {
		return domain.Membership{}, mapNotFound(err)
	}
	return m, nil
}

func (r *membershipsRepo) GetMembership(ctx context.Context, userID, organizationID string) (domain.Membership, error) {
	m, err := scanMembership(r.db.QueryRowContext(ctx,
		`SELECT `+membershipColumns+` FROM memberships WHERE user_id = ? AND organization_id = ?`,
		userID, organizationID))
	if err != nil {
		return domain.Membership{}, mapNotFound(err)
	}
	return m, nil
}

func (r *membershipsRepo) UpdateMembership(ctx context.Context, id string, role *string, inactive, muted *bool) error {
	sets := []string{"modified_at = ?"}
	args := []any{time.Now().UTC()}
	if role != nil {
		sets = append(sets, "role = ?")
		args = append(args, *role)
	}
	if inactive != nil {
		sets = append(sets, "inactive = ?")
		args = append(args, *inactive)
	}
	if muted != nil {
		sets = append(sets, "muted = ?")
		args = append(args, *muted)
	}
	args = append(args, id)

	res, err := r.db.ExecContext(ctx,
		`UPDATE memberships SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *membershipsRepo) DeleteMemberships(ctx context.Context, organizationID string, userIDs []string) error {
	if len(userIDs) == 0 {
		return nil
	}
	placeholders := strings.Repeat("?,", len(userIDs))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]any, 0, len(userIDs)+1)
	args = append(args, organizationID)
	for _, id := range userIDs {
		args = append(args, id)
	}
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM memberships WHERE organization_id = ? AND user_id IN (`+placeholders+`)`, args...)
	return err
}

func (r *membershipsRepo) ListMembers(ctx context.Context, organizationID string, p store.ListParams, role string) ([]domain.Member, int, error) {
	where := ` WHERE m.organization_id = ?`
	args := []any{organizationID}
	if p.Q != "" {
		where += ` AND (u.email LIKE '%' || ? || '%' COLLATE NOCASE OR u.name LIKE '%' || ? || '%' COLLATE NOCASE)`
		args = append(args, p.Q, p.Q)
	}
	if role != "" {
		where += ` AND m.role = ?`
		args = append(args, role)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM memberships m JOIN users u ON u.id = m.user_id`+where,
		args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT u.id, u.email, u.name, u.password_hash, u.role, u.thumbnail_url, u.created_at, u.modified_at,
		       m.id, m.role, m.inactive, m.muted
		FROM memberships m
		JOIN users u ON u.id = m.user_id` + where +
		orderClause(p, memberSortColumns, "m.created_at")
	page, args := pageClause(p, args)
	rows, err := r.db.QueryContext(ctx, query+page, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		var m domain.Member
		if err := rows.Scan(
			&m.ID, &m.Email, &m.Name, &m.PasswordHash, &m.Role, &m.ThumbnailURL, &m.CreatedAt, &m.ModifiedAt,
			&m.MembershipID, &m.OrgRole, &m.Inactive, &m.Muted,
		); err != nil {
			return nil, 0, err
		}
		members = append(members, m)
	}
	return members, total, rows.Err()
}

func (r *membershipsRepo) ListUserOrganizations(ctx context.Context, userID string) ([]domain.UserOrganization, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT o.id, o.name, o.slug, o.thumbnail_url, o.created_at, o.modified_at,
		       m.id, m.user_id, m.organization_id, m.role, m.inactive, m.muted, m.created_at, m.modified_at
		FROM memberships m
		JOIN organizations o ON o.id = m.organization_id
		WHERE m.user_id = ?
		ORDER BY o.name ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.UserOrganization
	for rows.Next() {
		var uo domain.UserOrganization
		if err := rows.Scan(
			&uo.ID, &uo.Name, &uo.Slug, &uo.ThumbnailURL, &uo.CreatedAt, &uo.ModifiedAt,
			&uo.Membership.ID, &uo.Membership.UserID, &uo.Membership.OrganizationID,
			&uo.Membership.Role, &uo.Membership.Inactive, &uo.Membership.Muted,
			&uo.Membership.CreatedAt, &uo.Membership.ModifiedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, uo)
	}
	return out, rows.Err()
}
