package storage

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/micro-ha/netis-dashboard/internal/pkg/utils"
)

var ErrNotFound = errors.New("not found")

// Session keys shared by the login flow and the session manager.
const (
	KeySession    = "router_session"
	KeyRouterIP   = "router_ip"
	KeyRouterUser = "router_user"
)

func nowRFC3339() string {
	return utils.FormatRFC3339(utils.NowUTC())
}

// Get returns ErrNotFound when key has never been set or was deleted.
func (r *Repository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM session_kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (r *Repository) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session_kv(key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value=excluded.value,
			updated_at=excluded.updated_at`,
		key, value, r.now(),
	)
	return err
}

// SetMany writes all pairs in one transaction.
func (r *Repository) SetMany(ctx context.Context, values map[string]string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO session_kv(key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value=excluded.value,
			updated_at=excluded.updated_at`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := r.now()
	for key, value := range values {
		if _, err := stmt.ExecContext(ctx, key, value, now); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *Repository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session_kv WHERE key = ?`, key)
	return err
}

// LoadAddress returns the last gateway a login succeeded against. Both values
// are empty when nothing was saved yet.
func (r *Repository) LoadAddress(ctx context.Context) (string, string, error) {
	ip, err := r.optional(ctx, KeyRouterIP)
	if err != nil {
		return "", "", err
	}
	user, err := r.optional(ctx, KeyRouterUser)
	if err != nil {
		return "", "", err
	}
	return ip, user, nil
}

// SaveAddress stores the gateway. A blank user leaves the saved user unchanged.
func (r *Repository) SaveAddress(ctx context.Context, ip, user string) error {
	values := map[string]string{KeyRouterIP: strings.TrimSpace(ip)}
	if user = strings.TrimSpace(user); user != "" {
		values[KeyRouterUser] = user
	}
	return r.SetMany(ctx, values)
}

func (r *Repository) optional(ctx context.Context, key string) (string, error) {
	value, err := r.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	return value, err
}
