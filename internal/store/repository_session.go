// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-crew-pass/internal/logger"
)

const (
	sessionTable = "session_items"

	columnKey       = "item_key"
	columnValue     = "item_value"
	columnUpdatedAt = "updated_at"
)

// sessionRepository is the SQLite-backed implementation of
// [SessionRepository].
type sessionRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSessionRepository constructs a [SessionRepository] over db.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// log prefers the request-scoped logger carried by ctx.
func (r *sessionRepository) log(ctx context.Context) *logger.Logger {
	return logger.FromContextOr(ctx, r.logger)
}

// SetItems upserts every item inside a single transaction. Keys are written
// in sorted order so the statement sequence is deterministic.
func (r *sessionRepository) SetItems(ctx context.Context, items map[string]string) error {
	if len(items) == 0 {
		return nil
	}
	log := r.log(ctx)

	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.SetItems").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	now := r.now().UTC()
	for _, key := range keys {
		query, args, buildErr := sq.Insert(sessionTable).
			Columns(columnKey, columnValue, columnUpdatedAt).
			Values(key, items[key], now).
			Suffix("ON CONFLICT(" + columnKey + ") DO UPDATE SET " +
				columnValue + " = excluded." + columnValue + ", " +
				columnUpdatedAt + " = excluded." + columnUpdatedAt).
			ToSql()
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "*sessionRepository.SetItems").Str("key", key).Msg("error saving session item")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*sessionRepository.SetItems").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// GetItem implements [SessionRepository].
func (r *sessionRepository) GetItem(ctx context.Context, key string) (string, error) {
	query, args, err := sq.Select(columnValue).
		From(sessionTable).
		Where(sq.Eq{columnKey: key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrKeyNotFound
	case err != nil:
		r.log(ctx).Err(err).Str("func", "*sessionRepository.GetItem").Str("key", key).Msg("error reading session item")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

// RemoveItems implements [SessionRepository].
func (r *sessionRepository) RemoveItems(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	query, args, err := sq.Delete(sessionTable).
		Where(sq.Eq{columnKey: keys}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.log(ctx).Err(err).Str("func", "*sessionRepository.RemoveItems").Msg("error removing session items")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
