// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/trade-ledger-pro/internal/logger"
	"github.com/MKhiriev/trade-ledger-pro/models"
)

// otpRepository is the SQL-backed implementation of [OtpRepository].
//
// The single-active-challenge invariant lives here: CreateChallenge marks
// every unconsumed challenge of the user consumed and inserts the new row in
// one transaction, and ConsumeChallenge is a conditional UPDATE whose
// rows-affected count makes consumption at-most-once even under concurrent
// verification attempts.
type otpRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewOtpRepository constructs an [OtpRepository] backed by the provided
// database connection and logger.
func NewOtpRepository(db *DB, logger *logger.Logger) OtpRepository {
	logger.Debug().Msg("creating otp repository")
	return &otpRepository{
		db:     db,
		logger: logger,
	}
}

// CreateChallenge invalidates all of the user's previous challenges and
// persists the new one atomically. Returns the stored challenge with
// server-assigned ID and CreatedAt.
func (r *otpRepository) CreateChallenge(ctx context.Context, challenge models.OtpChallenge) (models.OtpChallenge, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*otpRepository.CreateChallenge").Msg("error beginning transaction")
		return models.OtpChallenge{}, errors.Join(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, consumeUserChallenges, challenge.UserID); err != nil {
		log.Err(err).Str("func", "*otpRepository.CreateChallenge").Msg("error consuming previous challenges")
		return models.OtpChallenge{}, errors.Join(ErrExecutingStatement, err)
	}

	row := tx.QueryRowContext(ctx, createChallenge, challenge.UserID, challenge.Code, challenge.DeliveryMethod, challenge.ExpiresAt)
	if err := row.Scan(&challenge.ID, &challenge.UserID, &challenge.Code, &challenge.DeliveryMethod, &challenge.CreatedAt, &challenge.ExpiresAt, &challenge.Consumed); err != nil {
		log.Err(err).Str("func", "*otpRepository.CreateChallenge").Msg("error: scanning error")
		return models.OtpChallenge{}, errors.Join(ErrScanningRow, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*otpRepository.CreateChallenge").Msg("error committing transaction")
		return models.OtpChallenge{}, errors.Join(ErrCommitingTransaction, err)
	}

	return challenge, nil
}

// FindActiveChallenge returns the user's latest unconsumed challenge.
// Expiry is not checked here; the service layer compares ExpiresAt so the
// caller can distinguish "expired" from "absent".
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoActiveChallenge].
func (r *otpRepository) FindActiveChallenge(ctx context.Context, userID int64) (models.OtpChallenge, error) {
	log := logger.FromContext(ctx)

	var challenge models.OtpChallenge
	row := r.db.QueryRowContext(ctx, findActiveChallenge, userID)

	if err := row.Scan(&challenge.ID, &challenge.UserID, &challenge.Code, &challenge.DeliveryMethod, &challenge.CreatedAt, &challenge.ExpiresAt, &challenge.Consumed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.OtpChallenge{}, ErrNoActiveChallenge
		}
		log.Err(err).Str("func", "*otpRepository.FindActiveChallenge").Msg("error: scanning error")
		return models.OtpChallenge{}, errors.Join(ErrScanningRow, err)
	}

	return challenge, nil
}

// ConsumeChallenge marks the challenge consumed. The UPDATE is conditional
// on consumed = FALSE; zero affected rows means another request spent the
// challenge first and yields [ErrChallengeAlreadyConsumed].
func (r *otpRepository) ConsumeChallenge(ctx context.Context, challengeID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, consumeChallenge, challengeID)
	if err != nil {
		log.Err(err).Str("func", "*otpRepository.ConsumeChallenge").Msg("error executing statement")
		return errors.Join(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Join(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrChallengeAlreadyConsumed
	}

	return nil
}
