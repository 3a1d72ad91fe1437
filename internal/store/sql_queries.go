package store

const (
	createUser = `INSERT INTO users (name, email, phone, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, name, email, phone, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, name, email, phone, password_hash, created_at
    FROM users
    WHERE email = $1;`

	getUserByID = `SELECT user_id, name, email, phone, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	getAllUsers = `SELECT user_id, name, email, phone, password_hash, created_at
    FROM users
    ORDER BY user_id;`

	consumeUserChallenges = `UPDATE otp_challenges
    SET consumed = TRUE
    WHERE user_id = $1 AND consumed = FALSE;`

	createChallenge = `INSERT INTO otp_challenges (user_id, code, delivery_method, expires_at)
    VALUES ($1, $2, $3, $4)
    RETURNING id, user_id, code, delivery_method, created_at, expires_at, consumed;`

	findActiveChallenge = `SELECT id, user_id, code, delivery_method, created_at, expires_at, consumed
    FROM otp_challenges
    WHERE user_id = $1 AND consumed = FALSE
    ORDER BY created_at DESC
    LIMIT 1;`

	consumeChallenge = `UPDATE otp_challenges
    SET consumed = TRUE
    WHERE id = $1 AND consumed = FALSE;`

	createSession = `INSERT INTO sessions (id, user_id, expires_at)
    VALUES ($1, $2, $3)
    RETURNING id, user_id, created_at, expires_at;`

	findSession = `SELECT id, user_id, created_at, expires_at
    FROM sessions
    WHERE id = $1;`

	deleteSession = `DELETE FROM sessions
    WHERE id = $1;`

	deleteExpiredSessions = `DELETE FROM sessions
    WHERE expires_at < $1;`

	createTrade = `INSERT INTO trades (user_id, symbol, trade_type, instrument_type, entry_price, exit_price, quantity, stop_loss, take_profit, profit_loss, status, notes, is_starred, trade_date)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
    RETURNING id, user_id, symbol, trade_type, instrument_type, entry_price, exit_price, quantity, stop_loss, take_profit, profit_loss, status, notes, is_starred, trade_date, created_at;`

	getTrade = `SELECT id, user_id, symbol, trade_type, instrument_type, entry_price, exit_price, quantity, stop_loss, take_profit, profit_loss, status, notes, is_starred, trade_date, created_at
    FROM trades
    WHERE id = $1 AND user_id = $2;`

	updateTrade = `UPDATE trades
    SET symbol = $1, trade_type = $2, instrument_type = $3, entry_price = $4, exit_price = $5, quantity = $6, stop_loss = $7, take_profit = $8, profit_loss = $9, status = $10, notes = $11, is_starred = $12, trade_date = $13
    WHERE id = $14 AND user_id = $15
    RETURNING id, user_id, symbol, trade_type, instrument_type, entry_price, exit_price, quantity, stop_loss, take_profit, profit_loss, status, notes, is_starred, trade_date, created_at;`

	deleteTrade = `DELETE FROM trades
    WHERE id = $1 AND user_id = $2;`

	findGoal = `SELECT id, user_id, month, year, target_pnl, target_win_rate, max_trades_per_day, created_at, updated_at
    FROM goals
    WHERE user_id = $1 AND month = $2 AND year = $3;`

	listGoals = `SELECT id, user_id, month, year, target_pnl, target_win_rate, max_trades_per_day, created_at, updated_at
    FROM goals
    WHERE user_id = $1
    ORDER BY year DESC, month DESC;`

	upsertGoal = `INSERT INTO goals (user_id, month, year, target_pnl, target_win_rate, max_trades_per_day)
    VALUES ($1, $2, $3, $4, $5, $6)
    ON CONFLICT (user_id, month, year)
    DO UPDATE SET target_pnl = EXCLUDED.target_pnl, target_win_rate = EXCLUDED.target_win_rate, max_trades_per_day = EXCLUDED.max_trades_per_day, updated_at = CURRENT_TIMESTAMP
    RETURNING id, user_id, month, year, target_pnl, target_win_rate, max_trades_per_day, created_at, updated_at;`

	createMistake = `INSERT INTO mistakes (user_id, title, category, description, frequency)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, user_id, title, category, description, frequency, created_at;`

	listMistakes = `SELECT id, user_id, title, category, description, frequency, created_at
    FROM mistakes
    WHERE user_id = $1
    ORDER BY frequency DESC, created_at DESC;`

	incrementMistakeFrequency = `UPDATE mistakes
    SET frequency = frequency + 1
    WHERE id = $1 AND user_id = $2
    RETURNING id, user_id, title, category, description, frequency, created_at;`

	deleteMistake = `DELETE FROM mistakes
    WHERE id = $1 AND user_id = $2;`

	createRule = `INSERT INTO trading_rules (user_id, rule, position, is_active)
    VALUES ($1, $2, $3, $4)
    RETURNING id, user_id, rule, position, is_active, created_at;`

	listRules = `SELECT id, user_id, rule, position, is_active, created_at
    FROM trading_rules
    WHERE user_id = $1
    ORDER BY position, id;`

	updateRule = `UPDATE trading_rules
    SET rule = $1, position = $2, is_active = $3
    WHERE id = $4 AND user_id = $5
    RETURNING id, user_id, rule, position, is_active, created_at;`

	deleteRule = `DELETE FROM trading_rules
    WHERE id = $1 AND user_id = $2;`
)
