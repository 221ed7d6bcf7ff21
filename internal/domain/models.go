package domain

import "time"

type User struct {
	ID          string    `db:"id"`
	Email       string    `db:"email"`
	DisplayName string    `db:"display_name"`
	Balance     float64   `db:"balance"`
	BonusCoins  float64   `db:"bonus_coins"`
	IsAdmin     bool      `db:"is_admin"`
	CreatedAt   time.Time `db:"created_at"`
}

type Product struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Category  string    `db:"category"`
	Price     float64   `db:"price"`
	ImageURL  string    `db:"image_url"`
	Tags      []string  `db:"tags"`
	IsActive  bool      `db:"is_active"`
	AddedBy   string    `db:"added_by"`
	CreatedAt time.Time `db:"created_at"`
}

type PeriodStatus string

const (
	PeriodActive    PeriodStatus = "active"
	PeriodCompleted PeriodStatus = "completed"
	PeriodPending   PeriodStatus = "pending"
)

type VotingPeriod struct {
	StartDate time.Time    `db:"period_start"`
	EndDate   time.Time    `db:"period_end"`
	Status    PeriodStatus `db:"period_status"`
}

type Office struct {
	ID                  string  `db:"id"`
	Name                string  `db:"name"`
	Timezone            string  `db:"timezone"`
	Czar                *string `db:"czar"`
	TippingEnabled      bool    `db:"tipping_enabled"`
	CurrentVotingPeriod VotingPeriod
	LastResetAt         *time.Time `db:"last_reset_at"`
}

func (o *Office) VotingOpen() bool {
	return o.CurrentVotingPeriod.Status == PeriodActive
}

// ProductVotes is the per office aggregate of a product together with the per
// user ledger it is the sum of.
type ProductVotes struct {
	ProductID   string
	OfficeID    string
	Votes       int
	UserVotes   map[string]int
	LastVotedAt *time.Time
}

type LeaderboardEntry struct {
	Product     Product
	Votes       int
	Voters      int
	LastVotedAt *time.Time
}

type SettlementResult struct {
	RegularCoinsSpent float64
	BonusCoinsSpent   float64
}

type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

func (d Direction) Valid() bool {
	return d == Up || d == Down
}

// Delta is the vote change of a single click.
func (d Direction) Delta() int {
	if d == Down {
		return -1
	}
	return 1
}
