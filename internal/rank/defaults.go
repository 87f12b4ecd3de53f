package rank

import "github.com/osse101/EmojiKombat_Go/internal/domain"

// DefaultThresholds returns the ranks shipped with the game
func DefaultThresholds() []domain.RankThreshold {
	return []domain.RankThreshold{
		{Name: "Rookie", Emoji: "🥉", Color: "from-gray-400 to-gray-600", MinEarnings: 0, MaxEarnings: 1_000},
		{Name: "Veteran", Emoji: "🎖️", Color: "from-green-400 to-green-600", MinEarnings: 1_000, MaxEarnings: 10_000},
		{Name: "Pro", Emoji: "🥈", Color: "from-blue-400 to-blue-600", MinEarnings: 10_000, MaxEarnings: 100_000},
		{Name: "Guru", Emoji: "🏆", Color: "from-purple-400 to-purple-600", MinEarnings: 100_000, MaxEarnings: 1_000_000},
		{Name: "Master", Emoji: "🥇", Color: "from-yellow-400 to-yellow-600", MinEarnings: 1_000_000, MaxEarnings: 10_000_000},
		{Name: "Grandmaster", Emoji: "👑", Color: "from-orange-400 to-red-500", MinEarnings: 10_000_000, MaxEarnings: 100_000_000},
		{Name: "Legendary", Emoji: "💎", Color: "from-pink-400 to-purple-600", MinEarnings: 100_000_000, MaxEarnings: 1_000_000_000},
		{Name: "Lord", Emoji: "🌟", Color: "from-indigo-400 via-purple-500 to-pink-500", MinEarnings: 1_000_000_000, MaxEarnings: domain.NoMaxEarnings},
	}
}

// DefaultTable returns the built-in rank table
func DefaultTable() *Table {
	return MustNewTable(DefaultThresholds())
}
