package session

import (
	"context"
	"sync"
	"time"

	"github.com/GlebRadaev/snackvote/internal/domain"
	"github.com/GlebRadaev/snackvote/internal/service/settlementservice"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type key struct {
	userID   string
	officeID string
}

// Manager owns one Session per user and office and checks the office's voting
// period before any click reaches a session.
type Manager struct {
	ctx        context.Context
	interval   time.Duration
	settler    Settler
	balances   BalanceReader
	tipper     Tipper
	offices    OfficeReader
	votes      VoteReader
	reconciler *Reconciler

	mu       sync.Mutex
	sessions map[key]*Session
	closed   bool
}

func NewManager(ctx context.Context, interval time.Duration, settler Settler, balances BalanceReader,
	tipper Tipper, offices OfficeReader, votes VoteReader) *Manager {
	return &Manager{
		ctx:        ctx,
		interval:   interval,
		settler:    settler,
		balances:   balances,
		tipper:     tipper,
		offices:    offices,
		votes:      votes,
		reconciler: NewReconciler(balances),
		sessions:   map[key]*Session{},
	}
}

// Vote applies a click optimistically and returns the resulting view.
func (m *Manager) Vote(ctx context.Context, userID, officeID, productID string, direction domain.Direction) (*Snapshot, error) {
	if !direction.Valid() {
		return nil, ErrInvalidDirection
	}

	office, err := m.offices.GetOffice(ctx, officeID)
	if err != nil {
		return nil, err
	}
	if !office.VotingOpen() {
		return nil, settlementservice.ErrVotingClosed
	}

	sess, created, err := m.session(ctx, userID, officeID)
	if err != nil {
		return nil, err
	}
	if sess.ObserveReset(office.LastResetAt) {
		zap.L().Debug("office votes were reset, cached counts dropped",
			zap.String("userID", userID), zap.String("officeID", officeID))
	}

	if sess.Stale(productID) {
		current, err := m.votes.GetProductVotes(ctx, productID, officeID)
		if err != nil {
			return nil, err
		}
		sess.Refresh(productID, current.Votes)
	}
	if !created && sess.Idle() {
		user, err := m.balances.GetBalance(ctx, userID)
		if err != nil {
			return nil, err
		}
		sess.RefreshBalance(user.Balance, user.BonusCoins)
	}

	if err := sess.RegisterVote(ctx, productID, direction); err != nil {
		return nil, err
	}
	return sess.View(), nil
}

// Snapshot returns the user's session in the office, starting one if needed,
// and drains its notices.
func (m *Manager) Snapshot(ctx context.Context, userID, officeID string) (*Snapshot, error) {
	office, err := m.offices.GetOffice(ctx, officeID)
	if err != nil {
		return nil, err
	}
	sess, _, err := m.session(ctx, userID, officeID)
	if err != nil {
		return nil, err
	}
	sess.ObserveReset(office.LastResetAt)
	return sess.Snapshot(), nil
}

// End closes and forgets the user's session in the office. Pending batches are
// settled before it returns.
func (m *Manager) End(ctx context.Context, userID, officeID string) error {
	k := key{userID: userID, officeID: officeID}

	m.mu.Lock()
	sess, ok := m.sessions[k]
	delete(m.sessions, k)
	m.mu.Unlock()

	if !ok {
		return nil
	}
	return sess.Close(ctx)
}

// Shutdown closes every session concurrently. New sessions are refused afterwards.
func (m *Manager) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	m.closed = true
	sessions := make([]*Session, 0, len(m.sessions))
	for k, sess := range m.sessions {
		sessions = append(sessions, sess)
		delete(m.sessions, k)
	}
	m.mu.Unlock()

	g, gctx := errgroup.WithContext(ctx)
	for _, sess := range sessions {
		sess := sess
		g.Go(func() error {
			return sess.Close(gctx)
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to close voting sessions", zap.Error(err))
		return err
	}
	zap.L().Info("voting sessions closed", zap.Int("count", len(sessions)))
	return nil
}

// session returns the user's session in the office and whether it was created
// by this call.
func (m *Manager) session(ctx context.Context, userID, officeID string) (*Session, bool, error) {
	k := key{userID: userID, officeID: officeID}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil, false, ErrSessionClosed
	}
	if sess, ok := m.sessions[k]; ok {
		m.mu.Unlock()
		return sess, false, nil
	}
	m.mu.Unlock()

	user, err := m.balances.GetBalance(ctx, userID)
	if err != nil {
		return nil, false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, false, ErrSessionClosed
	}
	if sess, ok := m.sessions[k]; ok {
		return sess, false, nil
	}
	sess := New(m.ctx, userID, officeID, user.Balance, user.BonusCoins, m.interval, m.settler, m.tipper, m.reconciler)
	m.sessions[k] = sess
	zap.L().Debug("voting session started", zap.String("userID", userID), zap.String("officeID", officeID))
	return sess, true, nil
}
