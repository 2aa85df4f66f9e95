package txrecon

import (
	"time"

	"go.uber.org/zap"
)

// IsPeerNextToReconcileWith returns true if it is the peer's turn to
// reconcile. Turns rotate through the registered peers in registration
// order, each turn lasting ReconRequestInterval divided by the number of
// registered peers. A peer that still has a round pending gets its turn
// without consuming the turn duration, so that it does not delay the others.
func (t *Tracker) IsPeerNextToReconcileWith(id PeerID, now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	r := t.registered(id)
	if r == nil || len(t.queue) == 0 {
		return false
	}
	if now.Before(t.nextRound) || t.queue[0] != id {
		return false
	}
	t.queue = append(t.queue[1:], id)
	if r.roundPending {
		roundsStartedPending.Inc()
	} else {
		t.nextRound = now.Add(t.turnDuration())
		roundsStartedFree.Inc()
	}
	r.lastTurn = now
	t.logger.Debug("peer is next to reconcile",
		zap.Stringer("peer", id),
		zap.Bool("round pending", r.roundPending),
		zap.Time("next round", t.nextRound),
	)
	return true
}

// turnDuration must be called with t.mu held and a non-empty queue.
func (t *Tracker) turnDuration() time.Duration {
	d := t.cfg.ReconRequestInterval / time.Duration(len(t.queue))
	if t.cfg.RoundJitter > 0 {
		d += time.Duration(t.random() % uint64(t.cfg.RoundJitter))
	}
	return d
}

// InitiateReconciliationRequest marks a round with the peer as pending and
// returns the parameters to send in the request. The peer set is left intact
// until the round completes.
func (t *Tracker) InitiateReconciliationRequest(id PeerID) (RequestParams, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	r := t.registered(id)
	if r == nil {
		return RequestParams{}, false
	}
	r.roundPending = true
	r.lastRoundTime = r.lastTurn
	params := buildRequest(len(r.set), t.cfg.Q)
	requestSetSize.Observe(float64(params.SetSize))
	t.logger.Debug("initiated reconciliation request",
		zap.Stringer("peer", id),
		zap.Object("params", &params),
	)
	return params, true
}

// CompleteReconciliationRound clears the pending round with the peer. The
// transport calls it once the exchange finished or the request could not be
// delivered, so that the next turn of the peer consumes the turn duration
// again. It returns false if the peer is not registered or had no round
// pending.
func (t *Tracker) CompleteReconciliationRound(id PeerID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	r := t.registered(id)
	if r == nil || !r.roundPending {
		return false
	}
	r.roundPending = false
	t.logger.Debug("completed reconciliation round", zap.Stringer("peer", id))
	return true
}
