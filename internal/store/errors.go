package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoActiveChallenge is returned when a user has no unconsumed passcode
	// challenge on record.
	ErrNoActiveChallenge = errors.New("no active otp challenge")

	// ErrChallengeAlreadyConsumed is returned when a conditional consume
	// affects zero rows, meaning the challenge was already spent by a
	// concurrent verification or a newer challenge.
	ErrChallengeAlreadyConsumed = errors.New("otp challenge already consumed")

	// ErrSessionNotFound is returned when a session row targeted by ID does
	// not exist, typically because it was revoked by logout.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrTradeNotFound is returned when a trade targeted by (id, user_id)
	// does not exist. Rows owned by other users are indistinguishable from
	// missing rows.
	ErrTradeNotFound = errors.New("trade was not found")

	// ErrGoalNotFound is returned when no goal row exists for the requested
	// (user_id, month, year).
	ErrGoalNotFound = errors.New("goal was not found")

	// ErrMistakeNotFound is returned when a mistake targeted by (id, user_id)
	// does not exist.
	ErrMistakeNotFound = errors.New("mistake was not found")

	// ErrRuleNotFound is returned when a trading rule targeted by
	// (id, user_id) does not exist.
	ErrRuleNotFound = errors.New("trading rule was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
