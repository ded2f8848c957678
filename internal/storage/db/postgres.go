package db

import (
	"context"
	"fmt"
	"time"

	"github.com/DanRulev/wortschatz/internal/config"
	_ "github.com/lib/pq"

	"github.com/jmoiron/sqlx"
)

const schema = `
CREATE TABLE IF NOT EXISTS word_pairs (
	id                  BIGSERIAL PRIMARY KEY,
	german_word         TEXT NOT NULL,
	english_translation TEXT NOT NULL,
	category            TEXT,
	created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS word_pairs_created_at_idx ON word_pairs (created_at DESC);

CREATE TABLE IF NOT EXISTS test_results (
	id              BIGSERIAL PRIMARY KEY,
	correct_answers INTEGER NOT NULL CHECK (correct_answers >= 0),
	total_questions INTEGER NOT NULL CHECK (total_questions >= correct_answers),
	duration        INTEGER NOT NULL CHECK (duration >= 0),
	passed          SMALLINT NOT NULL CHECK (passed IN (0, 1)),
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS test_results_created_at_idx ON test_results (created_at DESC);
`

func InitDB(cfg config.DBConfig) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("host=%v port=%v dbname=%v user=%v password=%v sslmode=%v",
		cfg.Conn.Host, cfg.Conn.Port, cfg.Conn.Name, cfg.Conn.User, cfg.Conn.Password, cfg.Conn.SSL)
	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed open db connect: %w", err)
	}

	db.SetMaxOpenConns(cfg.Cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Cfg.ConnMaxLifeTime)
	db.SetConnMaxIdleTime(cfg.Cfg.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed db ping: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return db, nil
}
