package txrecon_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/go-txrecon/txrecon"
)

func TestShouldFanoutTo(t *testing.T) {
	tracker := newTracker(t)
	rng := testRNG(t)
	const peer0, peer1 txrecon.PeerID = 0, 1

	// peers that are not registered always get the transaction
	require.False(t, tracker.IsPeerRegistered(peer0))
	for range 100 {
		require.True(t, tracker.ShouldFanoutTo(randomTxID(rng), peer0, txrecon.FanoutCount{Total: 10}, 0))
	}
	tracker.PreRegisterPeer(peer0)
	require.False(t, tracker.IsPeerRegistered(peer0))
	for range 100 {
		require.True(t, tracker.ShouldFanoutTo(randomTxID(rng), peer0, txrecon.FanoutCount{Total: 10}, 0))
	}

	require.Equal(t, txrecon.Success, tracker.RegisterPeer(peer0, true, 1, 1))
	// 10% of 10 inbounds is a single target, and it is our only inbound peer
	for range 100 {
		require.True(t, tracker.ShouldFanoutTo(randomTxID(rng), peer0, txrecon.FanoutCount{Total: 10}, 0))
	}
	// the single target was already used
	for range 100 {
		require.False(t, tracker.ShouldFanoutTo(randomTxID(rng),
			peer0, txrecon.FanoutCount{Total: 10, Fanouted: 1}, 0))
	}
	// 3 targets out of 30 inbounds, 2 used
	for range 100 {
		require.True(t, tracker.ShouldFanoutTo(randomTxID(rng),
			peer0, txrecon.FanoutCount{Total: 30, Fanouted: 2}, 0))
	}
	// 3 targets out of 30 inbounds, 4 used
	for range 100 {
		require.False(t, tracker.ShouldFanoutTo(randomTxID(rng),
			peer0, txrecon.FanoutCount{Total: 30, Fanouted: 4}, 0))
	}

	tracker.PreRegisterPeer(peer1)
	require.Equal(t, txrecon.Success, tracker.RegisterPeer(peer1, false, 1, 1))
	// outbound peers get a single target regardless of inbounds
	for range 100 {
		require.True(t, tracker.ShouldFanoutTo(randomTxID(rng), peer1, txrecon.FanoutCount{}, 0))
	}
	for range 100 {
		require.False(t, tracker.ShouldFanoutTo(randomTxID(rng),
			peer1, txrecon.FanoutCount{Fanouted: 1}, 1))
		require.False(t, tracker.ShouldFanoutTo(randomTxID(rng),
			peer1, txrecon.FanoutCount{Fanouted: 2}, 1))
	}

	tracker.ForgetPeer(peer1)
	for range 100 {
		require.True(t, tracker.ShouldFanoutTo(randomTxID(rng), peer1, txrecon.FanoutCount{}, 0))
	}
}

func registerPeers(t *testing.T, tracker *txrecon.Tracker, inbound bool, ids ...txrecon.PeerID) {
	t.Helper()
	for _, id := range ids {
		tracker.PreRegisterPeer(id)
		require.Equal(t, txrecon.Success, tracker.RegisterPeer(id, inbound, 1, uint64(id)))
	}
}

func fanoutVector(tracker *txrecon.Tracker, txs []txrecon.TxID, id txrecon.PeerID, inbounds int) []bool {
	rst := make([]bool, len(txs))
	for i, tx := range txs {
		rst[i] = tracker.ShouldFanoutTo(tx, id, txrecon.FanoutCount{Total: inbounds}, 0)
	}
	return rst
}

func TestShouldFanoutToSelectsWithinTarget(t *testing.T) {
	tracker := newTracker(t)
	rng := testRNG(t)
	registerPeers(t, tracker, true, 1, 2)

	picked := map[txrecon.PeerID]int{}
	for range 200 {
		tx := randomTxID(rng)
		var selected []txrecon.PeerID
		for _, id := range []txrecon.PeerID{1, 2} {
			if tracker.ShouldFanoutTo(tx, id, txrecon.FanoutCount{Total: 10}, 0) {
				selected = append(selected, id)
			}
			// the decision is stable
			require.Equal(t,
				tracker.ShouldFanoutTo(tx, id, txrecon.FanoutCount{Total: 10}, 0),
				tracker.ShouldFanoutTo(tx, id, txrecon.FanoutCount{Total: 10}, 0))
		}
		require.Len(t, selected, 1)
		picked[selected[0]]++
		// two targets out of 20 inbounds select both peers
		for _, id := range []txrecon.PeerID{1, 2} {
			require.True(t, tracker.ShouldFanoutTo(tx, id, txrecon.FanoutCount{Total: 20}, 0))
		}
	}
	require.Positive(t, picked[1])
	require.Positive(t, picked[2])
}

func TestShouldFanoutToRoundsFractionalTargets(t *testing.T) {
	tracker := newTracker(t)
	rng := testRNG(t)
	registerPeers(t, tracker, true, 1, 2, 3)

	counts := map[int]int{}
	for range 200 {
		tx := randomTxID(rng)
		n := 0
		for _, id := range []txrecon.PeerID{1, 2, 3} {
			// 10% of 15 inbounds is 1.5 targets
			if tracker.ShouldFanoutTo(tx, id, txrecon.FanoutCount{Total: 15}, 0) {
				n++
			}
		}
		counts[n]++
	}
	require.Len(t, counts, 2)
	require.Positive(t, counts[1])
	require.Positive(t, counts[2])
}

func TestShouldFanoutToOutboundDestinations(t *testing.T) {
	cfg := txrecon.DefaultConfig()
	cfg.Fanout.OutboundDestinations = 2
	tracker := newTrackerWithConfig(t, cfg)
	rng := testRNG(t)
	registerPeers(t, tracker, false, 1, 2, 3)
	// inbound peers do not compete with outbound ones
	registerPeers(t, tracker, true, 4, 5)

	for range 100 {
		tx := randomTxID(rng)
		n := 0
		for _, id := range []txrecon.PeerID{1, 2, 3} {
			if tracker.ShouldFanoutTo(tx, id, txrecon.FanoutCount{Total: 100}, 0) {
				n++
			}
			require.False(t, tracker.ShouldFanoutTo(tx, id, txrecon.FanoutCount{Total: 100}, 2))
		}
		require.Equal(t, 2, n)
	}
}

func TestShouldFanoutToMonotone(t *testing.T) {
	tracker := newTracker(t)
	rng := testRNG(t)
	registerPeers(t, tracker, true, 1, 2, 3, 4)
	registerPeers(t, tracker, false, 5, 6)

	for range 100 {
		tx := randomTxID(rng)
		for _, id := range []txrecon.PeerID{1, 2, 3, 4} {
			// 40 inbounds give 4 targets
			for fanouted := 4; fanouted < 8; fanouted++ {
				require.False(t, tracker.ShouldFanoutTo(tx, id, txrecon.FanoutCount{Total: 40, Fanouted: fanouted}, 0))
			}
		}
		for _, id := range []txrecon.PeerID{5, 6} {
			for fanouted := 1; fanouted < 4; fanouted++ {
				require.False(t, tracker.ShouldFanoutTo(tx, id, txrecon.FanoutCount{}, fanouted))
			}
		}
	}
}

func TestShouldFanoutToFreshRankAfterReconnect(t *testing.T) {
	tracker := newTracker(t)
	rng := testRNG(t)
	registerPeers(t, tracker, true, 1, 2)
	txs := make([]txrecon.TxID, 200)
	for i := range txs {
		txs[i] = randomTxID(rng)
	}

	before := fanoutVector(tracker, txs, 1, 10)
	require.Equal(t, before, fanoutVector(tracker, txs, 1, 10))

	tracker.ForgetPeer(1)
	require.Equal(t, make([]bool, len(txs)), invert(fanoutVector(tracker, txs, 1, 10)))
	registerPeers(t, tracker, true, 1)
	after := fanoutVector(tracker, txs, 1, 10)
	require.NotEqual(t, before, after)
}

func invert(v []bool) []bool {
	rst := make([]bool, len(v))
	for i := range v {
		rst[i] = !v[i]
	}
	return rst
}

func TestShouldFanoutToDeterministicAcrossTrackers(t *testing.T) {
	rng := testRNG(t)
	txs := make([]txrecon.TxID, 100)
	for i := range txs {
		txs[i] = randomTxID(rng)
	}
	var vectors [][]bool
	for range 2 {
		tracker := newTracker(t)
		registerPeers(t, tracker, true, 1, 2, 3)
		vectors = append(vectors, fanoutVector(tracker, txs, 2, 10))
	}
	require.Equal(t, vectors[0], vectors[1])
}

func TestShouldFanoutToReachesTarget(t *testing.T) {
	tracker := newTracker(t)
	rng := testRNG(t)
	ids := make([]txrecon.PeerID, 30)
	for i := range ids {
		ids[i] = txrecon.PeerID(i)
	}
	registerPeers(t, tracker, true, ids...)

	for range 300 {
		tx := randomTxID(rng)
		order := slices.Clone(ids)
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		// 3 targets out of 30 inbounds, regardless of the order of the calls
		fanouted := 0
		for _, id := range order {
			if tracker.ShouldFanoutTo(tx, id, txrecon.FanoutCount{Total: 30, Fanouted: fanouted}, 0) {
				fanouted++
			}
		}
		require.Equal(t, 3, fanouted)
	}
}

func TestShouldFanoutToIgnoresOrder(t *testing.T) {
	tracker := newTracker(t)
	rng := testRNG(t)
	registerPeers(t, tracker, true, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20)

	for range 100 {
		tx := randomTxID(rng)
		var selected []txrecon.PeerID
		for _, id := range tracker.RegisteredPeers() {
			if tracker.ShouldFanoutTo(tx, id, txrecon.FanoutCount{Total: 20}, 0) {
				selected = append(selected, id)
			}
		}
		require.Len(t, selected, 2)
		// peers that were already fanouted do not take the remaining slots
		for _, id := range selected {
			require.True(t, tracker.ShouldFanoutTo(tx, id, txrecon.FanoutCount{Total: 20, Fanouted: 1}, 0))
			require.False(t, tracker.ShouldFanoutTo(tx, id, txrecon.FanoutCount{Total: 20, Fanouted: 2}, 0))
		}
	}
}
