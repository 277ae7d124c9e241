package repositories

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"sales-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SaleRepository struct {
	DB *pgxpool.Pool
}

func NewSaleRepository(db *pgxpool.Pool) *SaleRepository {
	return &SaleRepository{DB: db}
}

const saleColumns = `id, date, city, quantity, amount,
	COALESCE(total_amount, ''), seller_email, seller_id, COALESCE(referred_by, ''),
	COALESCE(payment_type, ''), COALESCE(payment_method, ''), COALESCE(admin_payment_method, ''),
	status, COALESCE(folio, ''), COALESCE(wristband_color, ''), COALESCE(entry_time, ''),
	COALESCE(package_type, ''), COALESCE(observation, ''), COALESCE(payment_proof_url, ''),
	COALESCE(reservation_for, ''), created_at, updated_at`

func scanSale(row interface{ Scan(...any) error }) (*models.Sale, error) {
	var s models.Sale
	err := row.Scan(
		&s.ID, &s.Date, &s.City, &s.Quantity, &s.Amount,
		&s.TotalAmount, &s.SellerEmail, &s.SellerID, &s.ReferredBy,
		&s.PaymentType, &s.PaymentMethod, &s.AdminPaymentMethod,
		&s.Status, &s.Folio, &s.WristbandColor, &s.EntryTime,
		&s.PackageType, &s.Observation, &s.PaymentProofURL,
		&s.ReservationFor, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SaleRepository) Create(ctx context.Context, s *models.Sale) error {
	err := r.DB.QueryRow(ctx,
		`INSERT INTO sales (id, date, city, quantity, amount, seller_email, seller_id,
		 referred_by, payment_type, payment_method, reservation_for, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING created_at, updated_at`,
		s.ID, s.Date, s.City, s.Quantity, s.Amount, s.SellerEmail, s.SellerID,
		s.ReferredBy, s.PaymentType, s.PaymentMethod, s.ReservationFor, s.Status,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	return gatewayErr("create sale", err)
}

func (r *SaleRepository) Get(ctx context.Context, id string) (*models.Sale, error) {
	row := r.DB.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE id=$1`, id)
	s, err := scanSale(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, gatewayErr("get sale", ErrNotFound)
	}
	if err != nil {
		return nil, gatewayErr("get sale", err)
	}
	return s, nil
}

// List returns the full collection, newest submission first. The reporting
// engines run in memory against this snapshot (no server-side pagination).
func (r *SaleRepository) List(ctx context.Context) ([]*models.Sale, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+saleColumns+` FROM sales ORDER BY created_at DESC`)
	if err != nil {
		return nil, gatewayErr("list sales", err)
	}
	defer rows.Close()

	var sales []*models.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, gatewayErr("scan sale", err)
		}
		sales = append(sales, s)
	}
	return sales, gatewayErr("list sales", rows.Err())
}

// ListBySeller returns one seller's sales, newest sale date first.
func (r *SaleRepository) ListBySeller(ctx context.Context, sellerID string) ([]*models.Sale, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+saleColumns+` FROM sales WHERE seller_id=$1 ORDER BY date DESC, created_at DESC`,
		sellerID)
	if err != nil {
		return nil, gatewayErr("list seller sales", err)
	}
	defer rows.Close()

	var sales []*models.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, gatewayErr("scan sale", err)
		}
		sales = append(sales, s)
	}
	return sales, gatewayErr("list seller sales", rows.Err())
}

// Patch applies a partial update to the record identified by id. Nil patch
// fields are left untouched; an identity patch is a no-op.
func (r *SaleRepository) Patch(ctx context.Context, id string, p *models.SalePatch) error {
	if p.IsIdentity() {
		return nil
	}

	set := make([]string, 0, 11)
	args := make([]any, 0, 12)
	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, col+"=$"+strconv.Itoa(len(args)))
	}

	if p.Status != nil {
		add("status", *p.Status)
	}
	if p.EntryTime != nil {
		add("entry_time", *p.EntryTime)
	}
	if p.AdminPaymentMethod != nil {
		add("admin_payment_method", *p.AdminPaymentMethod)
	}
	if p.PackageType != nil {
		add("package_type", *p.PackageType)
	}
	if p.Folio != nil {
		add("folio", *p.Folio)
	}
	if p.WristbandColor != nil {
		add("wristband_color", *p.WristbandColor)
	}
	if p.PaymentProofURL != nil {
		add("payment_proof_url", *p.PaymentProofURL)
	}
	if p.Quantity != nil {
		add("quantity", *p.Quantity)
	}
	if p.TotalAmount != nil {
		add("total_amount", *p.TotalAmount)
	}
	if p.Observation != nil {
		add("observation", *p.Observation)
	}

	args = append(args, id)
	query := `UPDATE sales SET ` + strings.Join(set, ", ") +
		`, updated_at=NOW() WHERE id=$` + strconv.Itoa(len(args))

	tag, err := r.DB.Exec(ctx, query, args...)
	if err != nil {
		return gatewayErr("patch sale", err)
	}
	if tag.RowsAffected() == 0 {
		return gatewayErr("patch sale", ErrNotFound)
	}
	return nil
}

// SetProofURL records an uploaded payment-proof URL without touching the
// rest of the record.
func (r *SaleRepository) SetProofURL(ctx context.Context, id, url string) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE sales SET payment_proof_url=$1, updated_at=NOW() WHERE id=$2`, url, id)
	if err != nil {
		return gatewayErr("set proof url", err)
	}
	if tag.RowsAffected() == 0 {
		return gatewayErr("set proof url", ErrNotFound)
	}
	return nil
}
