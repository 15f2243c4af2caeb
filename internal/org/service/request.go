package service

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/quorumhq/quorum/internal/org/domain"
	"github.com/quorumhq/quorum/internal/org/store"
	"github.com/quorumhq/quorum/pkg/idx"
	"github.com/quorumhq/quorum/pkg/slogx"
)

var ErrInvalidRequestType = errors.New("invalid request type")

// RequestService records unauthenticated expressions of interest and serves
// the admin listing over them.
type RequestService struct {
	Store store.Store
}

// Submit appends one access request. Repeated submissions are all kept; the
// table is append-only and triage happens downstream.
func (s *RequestService) Submit(
	ctx context.Context,
	requestType string,
	email string,
	userID string,
	organizationID string,
	message string,
) (domain.AccessRequest, error) {
	log := slogx.FromContext(ctx)

	if !domain.ValidRequestType(requestType) {
		log.Warn("access request with unknown type", slog.String("type", requestType))
		return domain.AccessRequest{}, ErrInvalidRequestType
	}

	addr, err := mail.ParseAddress(email)
	if err != nil {
		return domain.AccessRequest{}, ErrInvalidEmail
	}

	req := domain.AccessRequest{
		ID:             idx.New().String(),
		Email:          strings.ToLower(addr.Address),
		Type:           requestType,
		UserID:         userID,
		OrganizationID: organizationID,
		Message:        strings.TrimSpace(message),
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.Store.AccessRequests().CreateAccessRequest(ctx, req); err != nil {
		log.Error("failed to record access request", slog.Any("error", err))
		return domain.AccessRequest{}, err
	}

	log.Info("access request recorded",
		slog.String("request_id", req.ID),
		slog.String("type", req.Type),
	)
	return req, nil
}

// GetRequests returns a page of access requests with joined display fields.
// Callers are assumed to be admins; the HTTP layer enforces that.
func (s *RequestService) GetRequests(ctx context.Context, p store.ListParams) ([]domain.AccessRequestDetails, int, error) {
	return s.Store.AccessRequests().ListAccessRequests(ctx, p)
}
