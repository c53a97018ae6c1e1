package dtos

// Mee6LeaderboardPage is one page of the third-party leaderboard API.
type Mee6LeaderboardPage struct {
	Players []Mee6Player `json:"players"`
	Page    int          `json:"page"`
}

// Mee6Player is one (user, xp) pair from the leaderboard.
type Mee6Player struct {
	ID string `json:"id"`
	XP int64  `json:"xp"`
}
