package settlementservice

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/GlebRadaev/snackvote/internal/domain"
	"github.com/GlebRadaev/snackvote/internal/pg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type voteKey struct {
	product string
	office  string
}

// memLedger is an in-memory ledger whose transactions snapshot the whole state
// and restore it when the transactional function fails.
type memLedger struct {
	mu        sync.Mutex
	users     map[string]domain.User
	votes     map[voteKey]int
	userVotes map[voteKey]map[string]int
	lastVoted map[voteKey]time.Time

	failApply error
}

func newMemLedger() *memLedger {
	return &memLedger{
		users:     map[string]domain.User{},
		votes:     map[voteKey]int{},
		userVotes: map[voteKey]map[string]int{},
		lastVoted: map[voteKey]time.Time{},
	}
}

type memSnapshot struct {
	users     map[string]domain.User
	votes     map[voteKey]int
	userVotes map[voteKey]map[string]int
	lastVoted map[voteKey]time.Time
}

func (l *memLedger) snapshot() memSnapshot {
	s := memSnapshot{
		users:     map[string]domain.User{},
		votes:     map[voteKey]int{},
		userVotes: map[voteKey]map[string]int{},
		lastVoted: map[voteKey]time.Time{},
	}
	for k, v := range l.users {
		s.users[k] = v
	}
	for k, v := range l.votes {
		s.votes[k] = v
	}
	for k, m := range l.userVotes {
		c := map[string]int{}
		for u, n := range m {
			c[u] = n
		}
		s.userVotes[k] = c
	}
	for k, v := range l.lastVoted {
		s.lastVoted[k] = v
	}
	return s
}

func (l *memLedger) restore(s memSnapshot) {
	l.users, l.votes, l.userVotes, l.lastVoted = s.users, s.votes, s.userVotes, s.lastVoted
}

func (l *memLedger) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	before := l.snapshot()
	if err := fn(ctx); err != nil {
		l.restore(before)
		return err
	}
	return nil
}

func (l *memLedger) GetForUpdate(_ context.Context, userID string) (*domain.User, error) {
	u, ok := l.users[userID]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (l *memLedger) UpdateCoins(_ context.Context, userID string, balance, bonusCoins float64) error {
	u := l.users[userID]
	u.Balance, u.BonusCoins = balance, bonusCoins
	l.users[userID] = u
	return nil
}

func (l *memLedger) ApplyVote(_ context.Context, productID, officeID, userID string, delta int, at time.Time) error {
	k := voteKey{productID, officeID}
	l.votes[k] += delta
	l.lastVoted[k] = at
	if l.failApply != nil {
		return l.failApply
	}
	if l.userVotes[k] == nil {
		l.userVotes[k] = map[string]int{}
	}
	l.userVotes[k][userID] += delta
	return nil
}

func (l *memLedger) GetPeriodStatus(context.Context, string) (domain.PeriodStatus, bool, error) {
	return domain.PeriodActive, true, nil
}

func newLedgerService(l *memLedger) *Service {
	s := New(l, l, l, l, true)
	s.now = func() time.Time { return fixedNow }
	return s
}

func TestSettle_AtomicOnInjectedFailure(t *testing.T) {
	l := newMemLedger()
	l.users["u1"] = domain.User{ID: "u1", Balance: 4, BonusCoins: 1}
	service := newLedgerService(l)

	_, err := service.Settle(context.Background(), "u1", "p1", "nyc", 1, 1)
	require.NoError(t, err)
	before := l.snapshot()

	l.failApply = errors.New("connection reset")
	_, err = service.Settle(context.Background(), "u1", "p1", "nyc", 2, 2)
	require.Error(t, err)

	assert.Equal(t, before, l.snapshot())
}

func TestSettle_InsufficientFundsLeavesStateUnchanged(t *testing.T) {
	for cost := 1; cost <= 8; cost++ {
		l := newMemLedger()
		l.users["u1"] = domain.User{ID: "u1", Balance: float64(cost / 3), BonusCoins: float64(cost / 4)}
		l.votes[voteKey{"p1", "nyc"}] = 5
		l.userVotes[voteKey{"p1", "nyc"}] = map[string]int{"u1": 2, "u2": 3}
		before := l.snapshot()

		_, err := newLedgerService(l).Settle(context.Background(), "u1", "p1", "nyc", cost, cost)
		assert.ErrorIs(t, err, ErrInsufficientFunds)
		assert.Equal(t, before, l.snapshot())
	}
}

func TestSettle_VotesEqualLedgerSum(t *testing.T) {
	l := newMemLedger()
	users := []string{"u1", "u2", "u3", "u4"}
	for _, u := range users {
		l.users[u] = domain.User{ID: u, Balance: 30, BonusCoins: 5}
	}
	service := newLedgerService(l)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 300; i++ {
		cost := rng.Intn(6) + 1
		change := 0
		for c := 0; c < cost; c++ {
			if rng.Intn(3) == 0 {
				change--
			} else {
				change++
			}
		}
		office := []string{"nyc", "denver"}[rng.Intn(2)]
		product := []string{"p1", "p2", "p3"}[rng.Intn(3)]
		_, _ = service.Settle(context.Background(), users[rng.Intn(len(users))], product, office, change, cost)
	}

	for k, total := range l.votes {
		sum := 0
		for _, n := range l.userVotes[k] {
			sum += n
		}
		assert.Equal(t, total, sum, "product %s office %s", k.product, k.office)
	}
	for _, u := range l.users {
		assert.GreaterOrEqual(t, u.Balance, 0.0)
		assert.GreaterOrEqual(t, u.BonusCoins, 0.0)
	}
}
