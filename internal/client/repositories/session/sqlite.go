// Package session persists the signed-in identity of the garden client in
// the local SQLite database, as key/value rows of the metadata table.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/virtualgarden/internal/dbx"
	"github.com/dmitrijs2005/virtualgarden/internal/garden"
)

const (
	KeyUserID       = "user_id"
	KeyEmail        = "email"
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
)

type Repository interface {
	// Load returns the stored session, or nil when nobody is signed in.
	Load(ctx context.Context) (*garden.Session, error)
	Save(ctx context.Context, s garden.Session) error
	UpdateTokens(ctx context.Context, accessToken, refreshToken string) error
	Clear(ctx context.Context) error
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Load(ctx context.Context) (*garden.Session, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM metadata`)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		values[key] = string(value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate session rows: %w", err)
	}

	if values[KeyUserID] == "" || values[KeyAccessToken] == "" {
		return nil, nil
	}
	return &garden.Session{
		UserID:       values[KeyUserID],
		Email:        values[KeyEmail],
		AccessToken:  values[KeyAccessToken],
		RefreshToken: values[KeyRefreshToken],
	}, nil
}

// Save replaces the stored session in one transaction.
func (r *SQLiteRepository) Save(ctx context.Context, s garden.Session) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM metadata`); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		for _, kv := range [][2]string{
			{KeyUserID, s.UserID},
			{KeyEmail, s.Email},
			{KeyAccessToken, s.AccessToken},
			{KeyRefreshToken, s.RefreshToken},
		} {
			if err := set(ctx, tx, kv[0], kv[1]); err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateTokens stores a rotated token pair. It fails with sql.ErrNoRows when
// no session is stored.
func (r *SQLiteRepository) UpdateTokens(ctx context.Context, accessToken, refreshToken string) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var userID []byte
		err := tx.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, KeyUserID).Scan(&userID)
		if errors.Is(err, sql.ErrNoRows) {
			return sql.ErrNoRows
		}
		if err != nil {
			return fmt.Errorf("failed to read session: %w", err)
		}
		if err := set(ctx, tx, KeyAccessToken, accessToken); err != nil {
			return err
		}
		return set(ctx, tx, KeyRefreshToken, refreshToken)
	})
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM metadata`); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func set(ctx context.Context, db dbx.DBTX, key, value string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, []byte(value))
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}
