package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/quorumhq/quorum/internal/org/domain"
)

type tokensRepo struct {
	db dbtx
}

func (r *tokensRepo) CreateToken(ctx context.Context, t domain.Token) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tokens (id, fingerprint, email, role, organization_id, created_by, expires_at, consumed_at, consumed_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Fingerprint, t.Email, t.Role,
		mapStringNull(t.OrganizationID), t.CreatedBy, t.ExpiresAt,
		nil, mapStringNull(t.ConsumedBy), t.CreatedAt,
	)
	return mapConflict(err)
}

func (r *tokensRepo) GetTokenByID(ctx context.Context, id string) (domain.Token, error) {
	var (
		t          domain.Token
		orgID      sql.NullString
		consumedAt sql.NullTime
		consumedBy sql.NullString
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, fingerprint, email, role, organization_id, created_by, expires_at, consumed_at, consumed_by, created_at
		FROM tokens WHERE id = ?`, id).Scan(
		&t.ID, &t.Fingerprint, &t.Email, &t.Role,
		&orgID, &t.CreatedBy, &t.ExpiresAt, &consumedAt, &consumedBy, &t.CreatedAt,
	)
	if err != nil {
		return domain.Token{}, mapNotFound(err)
	}
	t.OrganizationID = mapNullString(orgID)
	t.ConsumedAt = mapNullTimePtr(consumedAt)
	t.ConsumedBy = mapNullString(consumedBy)
	return t, nil
}

// ConsumeToken is a single conditional update so that racing acceptances of
// the same token resolve to exactly one winner. A miss (unknown id or already
// consumed) surfaces as store.ErrNotFound.
func (r *tokensRepo) ConsumeToken(ctx context.Context, id, userID string, now time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tokens SET consumed_at = ?, consumed_by = ?
		WHERE id = ? AND consumed_at IS NULL`,
		now, userID, id,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *tokensRepo) DeleteExpiredTokens(ctx context.Context, now time.Time) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tokens WHERE expires_at < ?`, now)
	return err
}
