package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/trade-ledger-pro/internal/logger"
	"github.com/MKhiriev/trade-ledger-pro/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Name, user.Email, user.Phone, user.PasswordHash)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved user from db
	if err := row.Scan(&user.UserID, &user.Name, &user.Email, &user.Phone, &user.PasswordHash, &user.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, err
	}

	return user, nil
}

// FindUserByEmail retrieves the user record whose Email matches email.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	// find user by email
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan found user from db
	if err := row.Scan(&foundUser.UserID, &foundUser.Name, &foundUser.Email, &foundUser.Phone, &foundUser.PasswordHash, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, err
	}

	return foundUser, nil
}

// GetUserByID retrieves the user record with the given primary key.
//
// Error handling mirrors [FindUserByEmail]: [sql.ErrNoRows] →
// [ErrNoUserWasFound], anything else wrapped as "unexpected DB error".
func (r *userRepository) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, getUserByID, userID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.GetUserByID").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&foundUser.UserID, &foundUser.Name, &foundUser.Email, &foundUser.Phone, &foundUser.PasswordHash, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.GetUserByID").Msg("error: scanning error")
		return models.User{}, err
	}

	return foundUser, nil
}

// GetAllUsers returns every registered account ordered by ID. Used by the
// weekly report worker to fan reports out to all users.
func (r *userRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllUsers)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("error executing query")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.UserID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &u.CreatedAt); err != nil {
			log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("error scanning rows")
			return nil, errors.Join(ErrScanningRows, err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrScanningRows, err)
	}

	return users, nil
}
