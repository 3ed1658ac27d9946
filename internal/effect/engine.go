// Package effect maps item effects onto stat changes.
package effect

import (
	"context"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/domain"
)

// Change is a single stat delta produced by an item effect.
type Change struct {
	Stat  domain.Stat
	Delta int
}

// Delta returns the stat change of an item with the given effect
// under action. ok is false when the pair has no effect.
//
//	effect   consume  equip  unequip
//	hp       +v       -      -
//	attack   -        +v     -v
//	defense  -        +v     -v
func Delta(effect domain.EffectType, action domain.Action, value int) (Change, bool) {
	switch effect {
	case domain.EffectHp:
		if action == domain.ActionConsume {
			return Change{Stat: domain.StatHP, Delta: value}, true
		}
	case domain.EffectAttack:
		return equipDelta(domain.StatAttack, action, value)
	case domain.EffectDefense:
		return equipDelta(domain.StatDefense, action, value)
	}
	return Change{}, false
}

func equipDelta(stat domain.Stat, action domain.Action, value int) (Change, bool) {
	switch action {
	case domain.ActionEquip:
		return Change{Stat: stat, Delta: value}, true
	case domain.ActionUnequip:
		return Change{Stat: stat, Delta: -value}, true
	}
	return Change{}, false
}

// StatLedger is the slice of the stats store the engine writes through. It is
// normally bound to the caller's transaction.
type StatLedger interface {
	GetStats(ctx context.Context, userID int64) (*domain.UserStats, error)
	ApplyStatDelta(ctx context.Context, userID int64, stat domain.Stat, delta int) (*domain.UserStats, error)
}

// Engine applies item effects to a stat ledger.
type Engine struct{}

// NewEngine creates an Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Apply applies the effect of one action under an item and returns the
// resulting stats. A consume applies the item's value once however many units
// it removed. It never creates stats: a user without a stats row fails with
// domain.ErrStatsNotFound even when the action has no effect.
func (e *Engine) Apply(ctx context.Context, ledger StatLedger, userID int64, effect domain.EffectType, value int, action domain.Action) (*domain.UserStats, error) {
	change, ok := Delta(effect, action, value)
	if !ok || change.Delta == 0 {
		stats, err := ledger.GetStats(ctx, userID)
		if err != nil {
			return nil, err
		}
		return stats, nil
	}

	return ledger.ApplyStatDelta(ctx, userID, change.Stat, change.Delta)
}
