package txrecon

import "go.uber.org/zap"

// AddToSet queues the transaction for the next reconciliation round with the
// peer. It returns false if the peer is not registered or its set is full.
// Adding a transaction that is already queued changes nothing and returns true.
func (t *Tracker) AddToSet(id PeerID, txid TxID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	r := t.registered(id)
	if r == nil {
		return false
	}
	if _, ok := r.set[txid]; ok {
		return true
	}
	if len(r.set) >= t.cfg.MaxSetSize {
		rejectedSetAdds.Inc()
		t.logger.Debug("reconciliation set is full",
			zap.Stringer("peer", id),
			zap.String("tx", txid.ShortString()),
		)
		return false
	}
	r.set[txid] = struct{}{}
	return true
}

// TryRemovingFromSet removes the transaction from the peer set and reports
// whether it was there.
func (t *Tracker) TryRemovingFromSet(id PeerID, txid TxID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	r := t.registered(id)
	if r == nil {
		return false
	}
	if _, ok := r.set[txid]; !ok {
		return false
	}
	delete(r.set, txid)
	return true
}
