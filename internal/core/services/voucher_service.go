package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/erp_records_backend/internal/apperrors"
	"github.com/SscSPs/erp_records_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_records_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_records_backend/internal/core/ports/services"
	"github.com/SscSPs/erp_records_backend/internal/dto"
	"github.com/SscSPs/erp_records_backend/internal/utils/accounting"
	"github.com/SscSPs/erp_records_backend/internal/utils/binkey"
	"github.com/SscSPs/erp_records_backend/internal/utils/filter"
	"github.com/SscSPs/erp_records_backend/internal/utils/pagination"
)

// VoucherCheck validates a normalized voucher before it is persisted.
type VoucherCheck func(v domain.Voucher) error

// BalancedVoucherCheck rejects vouchers whose debits and credits differ.
func BalancedVoucherCheck(v domain.Voucher) error {
	return accounting.ValidateVoucherBalance(v.Items)
}

// VoucherServiceOption is a function that configures a voucherService
type VoucherServiceOption func(*voucherService)

// WithVoucherChecks appends checks run on every new voucher.
func WithVoucherChecks(checks ...VoucherCheck) VoucherServiceOption {
	return func(s *voucherService) {
		s.checks = append(s.checks, checks...)
	}
}

// WithClock overrides the clock used to date vouchers submitted without a date.
func WithClock(now func() time.Time) VoucherServiceOption {
	return func(s *voucherService) {
		s.now = now
	}
}

type voucherService struct {
	BaseService
	voucherRepo portsrepo.VoucherRepositoryFacade
	checks      []VoucherCheck
	now         func() time.Time
}

// NewVoucherService creates a new voucher service.
func NewVoucherService(repo portsrepo.VoucherRepositoryFacade, options ...VoucherServiceOption) portssvc.VoucherSvcFacade {
	s := &voucherService{voucherRepo: repo, now: time.Now}
	for _, opt := range options {
		opt(s)
	}
	return s
}

var _ portssvc.VoucherSvcFacade = (*voucherService)(nil)

// CreateVoucher runs a submission through validation and normalization and
// stores the voucher with its items in one transaction.
func (s *voucherService) CreateVoucher(ctx context.Context, session domain.Session, req dto.CreateVoucherRequest) (binkey.Key, error) {
	items := req.LedgerItems()
	if len(items) < domain.MinVoucherItems {
		err := apperrors.ErrInsufficientLedgerItems.With(fmt.Sprintf("got %d", len(items)), nil)
		s.logFailure(ctx, err, "Rejected voucher", slog.Int("items", len(items)))
		return binkey.Nil, err
	}

	voucher, err := s.normalize(session, req.Voucher, items)
	if err != nil {
		s.logFailure(ctx, err, "Rejected voucher")
		return binkey.Nil, err
	}

	for _, check := range s.checks {
		if err := check(voucher); err != nil {
			s.logFailure(ctx, err, "Voucher failed check", slog.String("voucher_uuid", voucher.UUID.String()))
			return binkey.Nil, err
		}
	}

	if err := s.voucherRepo.SaveVoucher(ctx, voucher); err != nil {
		s.LogError(ctx, err, "Failed to save voucher", slog.String("voucher_uuid", voucher.UUID.String()))
		return binkey.Nil, err
	}

	s.LogInfo(ctx, "Voucher created",
		slog.String("voucher_uuid", voucher.UUID.String()),
		slog.Int("items", len(voucher.Items)))
	return voucher.UUID, nil
}

func (s *voucherService) normalize(session domain.Session, p dto.VoucherPayload, items []dto.VoucherItemRequest) (domain.Voucher, error) {
	voucherID, err := keyOrNew(p.UUID, "uuid")
	if err != nil {
		return domain.Voucher{}, err
	}

	date, err := s.parseDate(p.Date)
	if err != nil {
		return domain.Voucher{}, err
	}

	voucher := domain.Voucher{
		UUID:        voucherID,
		Date:        date,
		ProjectID:   p.ProjectID,
		Reference:   p.Reference,
		CurrencyID:  p.CurrencyID,
		Description: p.Description,
		UserID:      session.UserID,
		Items:       make([]domain.VoucherItem, len(items)),
	}
	if p.UserID != nil {
		voucher.UserID = *p.UserID
	}

	if p.DocumentUUID != "" {
		documentID, err := binkey.Parse(p.DocumentUUID)
		if err != nil {
			return domain.Voucher{}, apperrors.ErrInvalidIdentifierFormat.With("document_uuid", err)
		}
		voucher.DocumentUUID = &documentID
	}

	for i, item := range items {
		itemID, err := keyOrNew(item.UUID, fmt.Sprintf("items[%d].uuid", i))
		if err != nil {
			return domain.Voucher{}, err
		}
		voucher.Items[i] = domain.VoucherItem{
			UUID:        itemID,
			VoucherUUID: voucherID,
			AccountID:   item.AccountID,
			Debit:       item.Debit,
			Credit:      item.Credit,
		}
	}

	if p.Amount != nil {
		voucher.Amount = *p.Amount
	} else {
		voucher.Amount, _ = accounting.SumLines(voucher.Items)
	}
	return voucher, nil
}

func (s *voucherService) parseDate(raw string) (time.Time, error) {
	if raw == "" {
		now := s.now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	if d, err := time.Parse(time.DateOnly, raw); err == nil {
		return d, nil
	}
	d, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(fmt.Sprintf("invalid date %q: expected YYYY-MM-DD or RFC 3339", raw))
	}
	return d.UTC(), nil
}

// GetVoucher retrieves a voucher with its items.
func (s *voucherService) GetVoucher(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	id, err := parseKey(voucherID, "uuid")
	if err != nil {
		return nil, err
	}

	voucher, err := s.voucherRepo.FindVoucherByID(ctx, id)
	if err != nil {
		s.logFailure(ctx, err, "Failed to get voucher", slog.String("voucher_uuid", voucherID))
		return nil, err
	}
	return voucher, nil
}

// ListVouchers retrieves vouchers matching the request filters, newest first.
func (s *voucherService) ListVouchers(ctx context.Context, params filter.Params) ([]domain.Voucher, error) {
	params = params.Clone()
	if err := params.ConvertKeys("uuid", "document_uuid"); err != nil {
		return nil, err
	}

	f := filter.New(params, filter.Options{TableAlias: "voucher", AutoParseStatements: true}).
		Equals("uuid").
		Equals("document_uuid").
		Equals("project_id").
		Equals("currency_id").
		Equals("user_id").
		Equals("reference").
		FullText("description", "description", "voucher").
		Custom("account_id", "voucher.uuid IN (SELECT voucher_item.voucher_uuid FROM voucher_item WHERE voucher_item.account_id = ?)", nil).
		DateRange("dateFrom", "dateTo", "date")

	// keyset cursor from the previous page
	if raw, ok := params.Get("after"); ok {
		token, _ := raw.(string)
		date, createdAt, err := pagination.DecodeToken(token)
		if err != nil {
			return nil, err
		}
		f = f.CustomArgs("after", "(voucher.date, voucher.created_at) < (?, ?)", date, createdAt)
	}

	f = f.SetOrder("ORDER BY voucher.date DESC, voucher.created_at DESC").
		Limit("limit")

	vouchers, err := s.voucherRepo.ListVouchers(ctx, f)
	if err != nil {
		s.logFailure(ctx, err, "Failed to list vouchers")
		return nil, err
	}
	if vouchers == nil {
		return []domain.Voucher{}, nil
	}

	s.LogDebug(ctx, "Vouchers listed", slog.Int("count", len(vouchers)))
	return vouchers, nil
}

// keyOrNew parses an optional identifier, generating one when it is empty.
func keyOrNew(raw, field string) (binkey.Key, error) {
	if raw == "" {
		return binkey.New(), nil
	}
	return parseKey(raw, field)
}

func parseKey(raw, field string) (binkey.Key, error) {
	key, err := binkey.Parse(raw)
	if err != nil {
		return binkey.Nil, apperrors.ErrInvalidIdentifierFormat.With(field, err)
	}
	return key, nil
}
