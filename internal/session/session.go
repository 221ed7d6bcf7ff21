package session

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"github.com/GlebRadaev/snackvote/internal/domain"
	"github.com/GlebRadaev/snackvote/internal/service/settlementservice"
	"go.uber.org/zap"
)

var (
	ErrSessionClosed    = errors.New("voting session closed")
	ErrInvalidDirection = errors.New("vote direction must be up or down")
)

// Snapshot is a copy of a session's optimistic state.
type Snapshot struct {
	UserID     string
	OfficeID   string
	Votes      map[string]int
	Balance    float64
	BonusCoins float64
	Pending    int
	Notices    []Notice
}

type batch struct {
	voteChange int
	cost       int
	seq        uint64
	timer      *time.Timer
}

// Session coalesces one user's clicks in one office into per product batches
// and settles each batch once its product has been quiet for the interval.
type Session struct {
	ctx        context.Context
	userID     string
	officeID   string
	interval   time.Duration
	settler    Settler
	tipper     Tipper
	reconciler *Reconciler

	mu         sync.Mutex
	votes      map[string]int
	balance    float64
	bonusCoins float64
	pending    map[string]*batch
	settling   map[string]int
	notices    []Notice
	resetSeen  bool
	resetAt    *time.Time
	seq        uint64
	closed     bool
	inflight   sync.WaitGroup
}

// New starts a session showing the given balance. Settlements run on ctx, not
// on the context of the click that scheduled them.
func New(ctx context.Context, userID, officeID string, balance, bonusCoins float64, interval time.Duration,
	settler Settler, tipper Tipper, reconciler *Reconciler) *Session {
	return &Session{
		ctx:        ctx,
		userID:     userID,
		officeID:   officeID,
		interval:   interval,
		settler:    settler,
		tipper:     tipper,
		reconciler: reconciler,
		votes:      map[string]int{},
		balance:    balance,
		bonusCoins: bonusCoins,
		pending:    map[string]*batch{},
		settling:   map[string]int{},
	}
}

// Stale reports whether the displayed count of the product should be reloaded:
// it was never seeded, or none of this session's clicks on it are unsettled.
func (s *Session) Stale(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, known := s.votes[productID]
	return !known || s.idle(productID)
}

// Refresh replaces the displayed count with the stored one. It is ignored when
// a click on the product arrived since Stale was checked.
func (s *Session) Refresh(productID string, votes int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, known := s.votes[productID]; !known || s.idle(productID) {
		s.votes[productID] = votes
	}
}

// Idle reports whether no batch of the session is pending or settling.
func (s *Session) Idle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending) == 0 && len(s.settling) == 0
}

// RefreshBalance replaces the displayed balance with the stored one unless the
// session has unsettled clicks.
func (s *Session) RefreshBalance(balance, bonusCoins float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pending) == 0 && len(s.settling) == 0 {
		s.balance = balance
		s.bonusCoins = bonusCoins
	}
}

// ObserveReset records the office's last reset. When it moved since the previous
// observation every cached count is dropped and true is returned.
func (s *Session) ObserveReset(at *time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.resetSeen {
		s.resetSeen = true
		s.resetAt = at
		return false
	}
	if sameInstant(s.resetAt, at) {
		return false
	}
	s.resetAt = at
	s.votes = map[string]int{}
	return true
}

func sameInstant(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func (s *Session) idle(productID string) bool {
	_, pending := s.pending[productID]
	return !pending && s.settling[productID] == 0
}

func (s *Session) RegisterVote(ctx context.Context, productID string, direction domain.Direction) error {
	if !direction.Valid() {
		return ErrInvalidDirection
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}

	delta := direction.Delta()
	if delta < 0 && s.votes[productID] <= 0 {
		return nil
	}

	s.votes[productID] += delta
	s.spend(1)

	b, ok := s.pending[productID]
	if !ok {
		b = &batch{}
		s.pending[productID] = b
	}
	b.voteChange += delta
	b.cost++

	if b.timer != nil {
		b.timer.Stop()
	}
	s.seq++
	seq := s.seq
	b.seq = seq
	b.timer = time.AfterFunc(s.interval, func() {
		s.fire(productID, seq)
	})
	return nil
}

// spend mirrors the settlement split on the display: bonus coins go first.
func (s *Session) spend(amount float64) {
	fromBonus := math.Min(math.Max(s.bonusCoins, 0), amount)
	s.bonusCoins -= fromBonus
	s.balance -= amount - fromBonus
}

func (s *Session) fire(productID string, seq uint64) {
	s.mu.Lock()
	b, ok := s.pending[productID]
	if !ok || b.seq != seq {
		s.mu.Unlock()
		return
	}
	delete(s.pending, productID)
	s.settling[productID]++
	s.inflight.Add(1)
	s.mu.Unlock()

	defer s.inflight.Done()
	s.settle(productID, b.voteChange, b.cost)

	s.mu.Lock()
	if s.settling[productID]--; s.settling[productID] <= 0 {
		delete(s.settling, productID)
	}
	s.mu.Unlock()
}

func (s *Session) settle(productID string, voteChange, cost int) {
	result, err := s.settler.Settle(s.ctx, s.userID, productID, s.officeID, voteChange, cost)
	if err != nil {
		kind := NoticeSettlementFailed
		if errors.Is(err, settlementservice.ErrInsufficientFunds) {
			kind = NoticeInsufficientFunds
		}
		zap.L().Warn("vote batch not settled",
			zap.String("userID", s.userID),
			zap.String("productID", productID),
			zap.Int("voteChange", voteChange),
			zap.Error(err),
		)
		s.reconciler.Reconcile(s.ctx, s, s.userID, productID, voteChange, kind)
		return
	}

	if result.RegularCoinsSpent > 0 {
		s.tipper.TipForSettlement(s.ctx, s.userID, s.officeID, result.RegularCoinsSpent)
	}
}

func (s *Session) RevertVotes(productID string, voteChange int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.votes[productID] -= voteChange
}

func (s *Session) ReplaceBalance(balance, bonusCoins float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balance = balance
	s.bonusCoins = bonusCoins
}

func (s *Session) Notify(notice Notice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notices = append(s.notices, notice)
}

// View returns the current state and leaves queued notices in place.
func (s *Session) View() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Snapshot returns the current state and drains queued notices.
func (s *Session) Snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.snapshot()
	s.notices = nil
	return snap
}

func (s *Session) snapshot() *Snapshot {
	votes := make(map[string]int, len(s.votes))
	for id, v := range s.votes {
		votes[id] = v
	}
	notices := make([]Notice, len(s.notices))
	copy(notices, s.notices)
	return &Snapshot{
		UserID:     s.userID,
		OfficeID:   s.officeID,
		Votes:      votes,
		Balance:    s.balance,
		BonusCoins: s.bonusCoins,
		Pending:    len(s.pending),
		Notices:    notices,
	}
}

// Close stops every pending timer, settles those batches right away and waits
// for settlements already running. Later clicks get ErrSessionClosed.
func (s *Session) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	flush := make(map[string]*batch, len(s.pending))
	for productID, b := range s.pending {
		b.timer.Stop()
		flush[productID] = b
		delete(s.pending, productID)
	}
	s.mu.Unlock()

	for productID, b := range flush {
		s.settle(productID, b.voteChange, b.cost)
	}

	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
