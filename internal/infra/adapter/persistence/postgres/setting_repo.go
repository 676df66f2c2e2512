package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"smart-summarizer/internal/domain/entity"
	"smart-summarizer/internal/repository"
)

// SettingRepo implements the SettingRepository interface using PostgreSQL.
type SettingRepo struct{ db *sql.DB }

// NewSettingRepo creates a new PostgreSQL-backed setting repository.
func NewSettingRepo(db *sql.DB) repository.SettingRepository {
	return &SettingRepo{db: db}
}

func (repo *SettingRepo) Get(ctx context.Context, key string) (*entity.Setting, error) {
	const query = `
SELECT key, value, updated_at
FROM settings
WHERE key = $1
LIMIT 1
`
	var setting entity.Setting
	err := repo.db.QueryRowContext(ctx, query, key).Scan(
		&setting.Key, &setting.Value, &setting.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("Get: QueryRowContext: %w", err)
	}
	return &setting, nil
}

func (repo *SettingRepo) List(ctx context.Context) ([]*entity.Setting, error) {
	const query = `
SELECT key, value, updated_at
FROM settings
ORDER BY key
`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	settings := make([]*entity.Setting, 0, 16)
	for rows.Next() {
		var setting entity.Setting
		if err := rows.Scan(&setting.Key, &setting.Value, &setting.UpdatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		settings = append(settings, &setting)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List: rows.Err: %w", err)
	}
	return settings, nil
}

func (repo *SettingRepo) Upsert(ctx context.Context, setting *entity.Setting) error {
	const query = `
INSERT INTO settings (key, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
`
	if _, err := repo.db.ExecContext(ctx, query, setting.Key, setting.Value); err != nil {
		return fmt.Errorf("Upsert: ExecContext: %w", err)
	}
	return nil
}
