package domain

// Stat defaults for a freshly provisioned user.
const (
	DefaultHP      = 100
	DefaultAttack  = 10
	DefaultDefense = 10

	// MaxHP caps hp after every change. There is no lower bound.
	MaxHP = 100
)

// Stat names a mutable field of UserStats.
type Stat string

const (
	StatHP      Stat = "hp"
	StatAttack  Stat = "attack"
	StatDefense Stat = "defense"
)

// UserStats holds the derived attributes of one user.
type UserStats struct {
	UserID  int64 `json:"user_id"`
	HP      int   `json:"hp"`
	Attack  int   `json:"attack"`
	Defense int   `json:"defense"`
}

// DefaultStats returns the starting stats for userID.
func DefaultStats(userID int64) UserStats {
	return UserStats{
		UserID:  userID,
		HP:      DefaultHP,
		Attack:  DefaultAttack,
		Defense: DefaultDefense,
	}
}

// Apply adds delta to the named stat, clamping hp to MaxHP.
func (s *UserStats) Apply(stat Stat, delta int) {
	switch stat {
	case StatHP:
		s.HP = ClampHP(s.HP + delta)
	case StatAttack:
		s.Attack += delta
	case StatDefense:
		s.Defense += delta
	}
}

// ClampHP enforces the hp ceiling.
func ClampHP(hp int) int {
	if hp > MaxHP {
		return MaxHP
	}
	return hp
}
