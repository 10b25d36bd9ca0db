package purchase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists purchase records.
type Repository interface {
	Create(ctx context.Context, p Purchase) error
	ListByUser(ctx context.Context, userID string) ([]Purchase, error)
	ListAll(ctx context.Context, limit int) ([]Purchase, error)
	Count(ctx context.Context) (int64, error)
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed purchase repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a purchase record.
func (r *PostgresRepository) Create(ctx context.Context, p Purchase) error {
	purchaseID, err := uuid.Parse(p.ID)
	if err != nil {
		return err
	}
	userID, err := uuid.Parse(p.UserID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO purchases
        (id, user_id, crypto_type, amount_crypto, amount_usd, tokens_purchased, wallet_address, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		purchaseID, userID, p.CryptoType, p.AmountCrypto, p.AmountUSD,
		p.TokensPurchased, p.WalletAddress, p.Status, p.CreatedAt.UTC())
	return err
}

const selectColumns = `id, user_id, crypto_type, amount_crypto, amount_usd, tokens_purchased, wallet_address, status, created_at`

// ListByUser returns all purchases for a user, newest first. Timestamp ties
// break by insertion order via the seq column.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]Purchase, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, `SELECT `+selectColumns+`
        FROM purchases WHERE user_id = $1 ORDER BY created_at DESC, seq DESC`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

// ListAll returns the newest purchases across all users, capped at limit.
func (r *PostgresRepository) ListAll(ctx context.Context, limit int) ([]Purchase, error) {
	rows, err := r.db.Query(ctx, `SELECT `+selectColumns+`
        FROM purchases ORDER BY created_at DESC, seq DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

// Count returns the exact number of purchase records.
func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM purchases`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func collect(rows pgx.Rows) ([]Purchase, error) {
	var purchases []Purchase
	for rows.Next() {
		var (
			id        uuid.UUID
			userID    uuid.UUID
			createdAt time.Time
			p         Purchase
		)
		if err := rows.Scan(&id, &userID, &p.CryptoType, &p.AmountCrypto, &p.AmountUSD,
			&p.TokensPurchased, &p.WalletAddress, &p.Status, &createdAt); err != nil {
			return nil, err
		}
		p.ID = id.String()
		p.UserID = userID.String()
		p.CreatedAt = createdAt.UTC()
		purchases = append(purchases, p)
	}
	return purchases, rows.Err()
}
