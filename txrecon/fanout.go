package txrecon

// ShouldFanoutTo decides whether the transaction is announced to the peer
// right away instead of waiting for reconciliation.
//
// Peers that are not registered always get the transaction. For a registered
// peer the number of fanout targets is derived from its direction: inbounds
// describes the inbound peers and how many of them already got the
// transaction, outboundFanouted does the same for outbound peers. The peers
// of the same direction are ordered by a rank that depends on the transaction
// and the peer salt, and the peer is selected if it is among the first
// target peers. Once the fanouted count reaches the target no more peers are
// selected, so callers that pass a running count reach the target exactly
// when enough peers are registered.
func (t *Tracker) ShouldFanoutTo(txid TxID, id PeerID, inbounds FanoutCount, outboundFanouted int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	r := t.registered(id)
	if r == nil {
		unregisteredFanouts.Inc()
		return true
	}
	selected := t.shouldFanout(txid, r, inbounds, outboundFanouted)
	fanoutDecision(r.direction, selected)
	return selected
}

func (t *Tracker) shouldFanout(txid TxID, r *peerRecord, inbounds FanoutCount, outboundFanouted int) bool {
	var fanouted int
	switch r.direction {
	case Inbound:
		fanouted = inbounds.Fanouted
	case Outbound:
		fanouted = outboundFanouted
	}
	target := t.cfg.Fanout.target(r.direction, inbounds.Total)
	slots := target / fanoutUnits
	// the same transaction rounds the same way for every peer
	if frac := target % fanoutUnits; frac > 0 && t.sel.draw(txid) < float64(frac)/fanoutUnits {
		slots++
	}
	if fanouted >= slots {
		return false
	}
	rank := t.sel.rank(txid, &r.salt)
	ahead := 0
	for _, other := range t.peers {
		if other.state != stateRegistered || other.direction != r.direction || other.id == r.id {
			continue
		}
		otherRank := t.sel.rank(txid, &other.salt)
		if otherRank < rank || (otherRank == rank && other.id < r.id) {
			ahead++
			if ahead >= slots {
				return false
			}
		}
	}
	return true
}
