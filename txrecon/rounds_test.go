package txrecon_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/go-txrecon/txrecon"
)

func at(seconds int) time.Time {
	return time.Unix(int64(seconds), 0)
}

func TestIsPeerNextToReconcileWith(t *testing.T) {
	tracker := newTracker(t)
	const peer0 txrecon.PeerID = 0

	require.False(t, tracker.IsPeerNextToReconcileWith(peer0, at(1)))
	tracker.PreRegisterPeer(peer0)
	require.False(t, tracker.IsPeerNextToReconcileWith(peer0, at(1)))

	require.Equal(t, txrecon.Success, tracker.RegisterPeer(peer0, false, 1, 1))
	require.True(t, tracker.IsPeerNextToReconcileWith(peer0, at(1)))
	info, ok := tracker.PeerInfo(peer0)
	require.True(t, ok)
	// a turn alone does not start a round
	require.True(t, info.LastRoundTime.IsZero())

	// not enough time passed
	require.False(t, tracker.IsPeerNextToReconcileWith(peer0, at(1+7)))
	require.True(t, tracker.IsPeerNextToReconcileWith(peer0, at(1+9)))

	tracker.ForgetPeer(peer0)
	const peer1, peer2 txrecon.PeerID = 1, 2
	tracker.PreRegisterPeer(peer1)
	require.Equal(t, txrecon.Success, tracker.RegisterPeer(peer1, false, 1, 1))
	tracker.PreRegisterPeer(peer2)
	require.Equal(t, txrecon.Success, tracker.RegisterPeer(peer2, false, 1, 1))

	peer1Next := tracker.IsPeerNextToReconcileWith(peer1, at(100))
	peer2Next := tracker.IsPeerNextToReconcileWith(peer2, at(100))
	require.True(t, peer1Next)
	require.False(t, peer2Next)

	peer2Next = tracker.IsPeerNextToReconcileWith(peer2, at(100+5))
	peer1Next = tracker.IsPeerNextToReconcileWith(peer1, at(100+5))
	require.False(t, peer1Next)
	require.True(t, peer2Next)

	peer1Next = tracker.IsPeerNextToReconcileWith(peer1, at(100+5*2))
	peer2Next = tracker.IsPeerNextToReconcileWith(peer2, at(100+5*2))
	require.True(t, peer1Next)
	require.False(t, peer2Next)

	// a peer with a pending round does not consume the turn duration
	_, ok = tracker.InitiateReconciliationRequest(peer2)
	require.True(t, ok)
	peer2Next = tracker.IsPeerNextToReconcileWith(peer2, at(100+5*3))
	peer1Next = tracker.IsPeerNextToReconcileWith(peer1, at(100+5*3))
	require.True(t, peer1Next)
	require.True(t, peer2Next)

	tracker.ForgetPeer(peer2)
	peer1Next = tracker.IsPeerNextToReconcileWith(peer1, at(100+5*4))
	peer2Next = tracker.IsPeerNextToReconcileWith(peer2, at(100+5*4))
	require.True(t, peer1Next)
	require.False(t, peer2Next)
}

func TestRoundRobinFairness(t *testing.T) {
	tracker := newTracker(t)
	peers := []txrecon.PeerID{10, 20, 30, 40}
	registerPeers(t, tracker, false, peers...)

	// each turn lasts 8s / 4 peers
	turns := map[txrecon.PeerID]int{}
	for step := range 40 {
		now := at(1000 + 2*step + 1)
		var next []txrecon.PeerID
		for _, id := range peers {
			if tracker.IsPeerNextToReconcileWith(id, now) {
				next = append(next, id)
			}
		}
		require.Equal(t, []txrecon.PeerID{peers[step%len(peers)]}, next, "step %d", step)
		turns[next[0]]++
	}
	for _, id := range peers {
		require.Equal(t, 10, turns[id])
	}

	// forgotten peers leave the rotation immediately
	require.Equal(t, peers, tracker.RegisteredPeers())
	tracker.ForgetPeer(20)
	require.Equal(t, []txrecon.PeerID{10, 30, 40}, tracker.RegisteredPeers())
}

func TestRoundJitter(t *testing.T) {
	cfg := txrecon.DefaultConfig()
	cfg.RoundJitter = 4 * time.Second
	tracker := newTrackerWithConfig(t, cfg, txrecon.WithRandom(func() uint64 {
		return uint64(3 * time.Second)
	}))
	registerPeers(t, tracker, false, 1)

	require.True(t, tracker.IsPeerNextToReconcileWith(1, at(0)))
	// next turn in 8s + 3s of jitter
	require.False(t, tracker.IsPeerNextToReconcileWith(1, at(10)))
	require.True(t, tracker.IsPeerNextToReconcileWith(1, at(11)))
}

func TestInitiateReconciliationRequest(t *testing.T) {
	tracker := newTracker(t)
	rng := testRNG(t)
	const peer txrecon.PeerID = 0

	_, ok := tracker.InitiateReconciliationRequest(peer)
	require.False(t, ok)
	tracker.PreRegisterPeer(peer)
	_, ok = tracker.InitiateReconciliationRequest(peer)
	require.False(t, ok)

	require.Equal(t, txrecon.Success, tracker.RegisterPeer(peer, false, 1, 1))
	info, ok := tracker.PeerInfo(peer)
	require.True(t, ok)
	require.False(t, info.RoundPending)

	params, ok := tracker.InitiateReconciliationRequest(peer)
	require.True(t, ok)
	require.Zero(t, params.SetSize)
	require.Equal(t, uint16(8191), params.Q)
	info, ok = tracker.PeerInfo(peer)
	require.True(t, ok)
	require.True(t, info.RoundPending)

	// start fresh
	tracker.ForgetPeer(peer)
	tracker.PreRegisterPeer(peer)
	require.Equal(t, txrecon.Success, tracker.RegisterPeer(peer, false, 1, 1))
	for range 3 {
		require.True(t, tracker.AddToSet(peer, randomTxID(rng)))
	}
	params, ok = tracker.InitiateReconciliationRequest(peer)
	require.True(t, ok)
	require.Equal(t, uint16(3), params.SetSize)
	require.Equal(t, uint16(8191), params.Q)

	// the set is kept until the round completes
	params, ok = tracker.InitiateReconciliationRequest(peer)
	require.True(t, ok)
	require.Equal(t, uint16(3), params.SetSize)
}

func TestInitiateReconciliationRequestQ(t *testing.T) {
	for _, tc := range []struct {
		desc string
		q    float64
		want uint16
	}{
		{desc: "unset", q: 0, want: 8191},
		{desc: "small", q: 0.001, want: 32},
		{desc: "default", q: 0.25, want: 8191},
		{desc: "half", q: 0.5, want: 16383},
		{desc: "one", q: 1, want: 32767},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			cfg := txrecon.DefaultConfig()
			cfg.Q = tc.q
			tracker := newTrackerWithConfig(t, cfg)
			registerPeers(t, tracker, true, 1)
			params, ok := tracker.InitiateReconciliationRequest(1)
			require.True(t, ok)
			require.Equal(t, tc.want, params.Q)
		})
	}
}

func TestLastRoundTime(t *testing.T) {
	tracker := newTracker(t)
	registerPeers(t, tracker, false, 1)

	require.True(t, tracker.IsPeerNextToReconcileWith(1, at(10)))
	_, ok := tracker.InitiateReconciliationRequest(1)
	require.True(t, ok)
	info, ok := tracker.PeerInfo(1)
	require.True(t, ok)
	require.Equal(t, at(10), info.LastRoundTime)

	// the turn was not used to start a round
	require.True(t, tracker.CompleteReconciliationRound(1))
	require.True(t, tracker.IsPeerNextToReconcileWith(1, at(20)))
	info, ok = tracker.PeerInfo(1)
	require.True(t, ok)
	require.Equal(t, at(10), info.LastRoundTime)
}

func TestCompleteReconciliationRound(t *testing.T) {
	tracker := newTracker(t)
	require.False(t, tracker.CompleteReconciliationRound(1))
	tracker.PreRegisterPeer(1)
	require.False(t, tracker.CompleteReconciliationRound(1))
	registerPeers(t, tracker, false, 2)
	require.Equal(t, txrecon.Success, tracker.RegisterPeer(1, false, 1, 1))

	require.False(t, tracker.CompleteReconciliationRound(1))
	require.True(t, tracker.AddToSet(1, txrecon.TxID{1}))
	_, ok := tracker.InitiateReconciliationRequest(1)
	require.True(t, ok)
	require.Equal(t, 1, tracker.Stats().PendingRounds)

	require.True(t, tracker.CompleteReconciliationRound(1))
	require.False(t, tracker.CompleteReconciliationRound(1))
	info, ok := tracker.PeerInfo(1)
	require.True(t, ok)
	require.False(t, info.RoundPending)
	// the set is consumed by the caller
	require.Equal(t, 1, info.SetSize)

	// a completed peer consumes its turn again
	require.True(t, tracker.IsPeerNextToReconcileWith(2, at(0)))
	require.False(t, tracker.IsPeerNextToReconcileWith(1, at(3)))
	require.True(t, tracker.IsPeerNextToReconcileWith(1, at(4)))
	require.False(t, tracker.IsPeerNextToReconcileWith(2, at(4)))
}
