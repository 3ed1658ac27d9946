package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/domain"
)

// applyStatSQL holds one statement per stat so no column name is ever built
// from input. hp is clamped to MaxHP in the same statement.
var applyStatSQL = map[domain.Stat]string{
	domain.StatHP:      `UPDATE user_stats SET hp = LEAST(` + strconv.Itoa(domain.MaxHP) + `, hp + $2) WHERE user_id = $1 RETURNING user_id, hp, attack, defense`,
	domain.StatAttack:  `UPDATE user_stats SET attack = attack + $2 WHERE user_id = $1 RETURNING user_id, hp, attack, defense`,
	domain.StatDefense: `UPDATE user_stats SET defense = defense + $2 WHERE user_id = $1 RETURNING user_id, hp, attack, defense`,
}

func getStats(ctx context.Context, q querier, userID int64) (*domain.UserStats, error) {
	var s domain.UserStats
	err := q.QueryRow(ctx, `SELECT user_id, hp, attack, defense FROM user_stats WHERE user_id = $1`, userID).
		Scan(&s.UserID, &s.HP, &s.Attack, &s.Defense)
	if isNoRows(err) {
		return nil, fmt.Errorf("%w: user %d", domain.ErrStatsNotFound, userID)
	}
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToGetStats, err)
	}
	return &s, nil
}

func applyStatDelta(ctx context.Context, q querier, userID int64, stat domain.Stat, delta int) (*domain.UserStats, error) {
	query, ok := applyStatSQL[stat]
	if !ok {
		return nil, fmt.Errorf("%w: unknown stat %q", domain.ErrValidation, stat)
	}

	var s domain.UserStats
	err := q.QueryRow(ctx, query, userID, delta).Scan(&s.UserID, &s.HP, &s.Attack, &s.Defense)
	if isNoRows(err) {
		return nil, fmt.Errorf("%w: user %d", domain.ErrStatsNotFound, userID)
	}
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToApplyStatDelta, err)
	}
	return &s, nil
}

// GetStats returns the stat ledger row for userID
func (s *Store) GetStats(ctx context.Context, userID int64) (*domain.UserStats, error) {
	return getStats(ctx, s.pool, userID)
}

// EnsureStats inserts default stats for userID when absent
func (s *Store) EnsureStats(ctx context.Context, userID int64) (bool, error) {
	tag, err := s.pool.Exec(ctx, `
		INSERT INTO user_stats (user_id, hp, attack, defense)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO NOTHING`,
		userID, domain.DefaultHP, domain.DefaultAttack, domain.DefaultDefense)
	if err != nil {
		if fkErr := foreignKeyErr(err); fkErr != nil {
			return false, fmt.Errorf("%w: user %d", fkErr, userID)
		}
		return false, wrapErr(ErrMsgFailedToEnsureStats, err)
	}
	return tag.RowsAffected() == 1, nil
}

// InitializeMissingStats inserts default stats for every user without a row
func (s *Store) InitializeMissingStats(ctx context.Context) (int64, error) {
	tag, err := s.pool.Exec(ctx, `
		INSERT INTO user_stats (user_id, hp, attack, defense)
		SELECT u.id, $1, $2, $3 FROM users u
		WHERE NOT EXISTS (SELECT 1 FROM user_stats s WHERE s.user_id = u.id)
		ON CONFLICT (user_id) DO NOTHING`,
		domain.DefaultHP, domain.DefaultAttack, domain.DefaultDefense)
	if err != nil {
		return 0, wrapErr(ErrMsgFailedToInitializeStats, err)
	}
	return tag.RowsAffected(), nil
}
