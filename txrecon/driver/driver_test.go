package driver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/spacemeshos/go-txrecon/txrecon"
	"github.com/spacemeshos/go-txrecon/txrecon/driver/mocks"
)

type testDriver struct {
	*Driver
	tracker *txrecon.Tracker
	sender  *mocks.MockRequestSender
	clock   clockwork.FakeClock
}

func newTestDriver(t *testing.T, peers ...txrecon.PeerID) *testDriver {
	ctrl := gomock.NewController(t)
	tracker := txrecon.New(
		txrecon.DefaultConfig(),
		txrecon.NewSipHasher(1, 2),
		txrecon.WithLogger(zaptest.NewLogger(t)),
	)
	for _, id := range peers {
		tracker.PreRegisterPeer(id)
		require.Equal(t, txrecon.Success, tracker.RegisterPeer(id, false, txrecon.Version, uint64(id)))
	}
	td := &testDriver{
		tracker: tracker,
		sender:  mocks.NewMockRequestSender(ctrl),
		clock:   clockwork.NewFakeClockAt(time.Unix(1000, 0)),
	}
	td.Driver = New(tracker, td.sender,
		WithLogger(zaptest.NewLogger(t)),
		WithClock(td.clock),
	)
	return td
}

func TestTickRoundRobin(t *testing.T) {
	td := newTestDriver(t, 1, 2)
	ctx := context.Background()
	params := txrecon.RequestParams{SetSize: 0, Q: 8191}

	td.sender.EXPECT().SendReconciliationRequest(ctx, txrecon.PeerID(1), params).Return(nil)
	require.Equal(t, 1, td.Tick(ctx))
	// the next turn starts in 8s / 2 peers
	require.Zero(t, td.Tick(ctx))
	td.clock.Advance(3 * time.Second)
	require.Zero(t, td.Tick(ctx))

	require.True(t, td.tracker.AddToSet(2, txrecon.TxID{1}))
	td.sender.EXPECT().SendReconciliationRequest(ctx, txrecon.PeerID(2), txrecon.RequestParams{SetSize: 1, Q: 8191}).
		Return(nil)
	td.clock.Advance(time.Second)
	require.Equal(t, 1, td.Tick(ctx))

	// both rounds complete and the peers get their next requests in turn
	require.True(t, td.tracker.CompleteReconciliationRound(1))
	require.True(t, td.tracker.CompleteReconciliationRound(2))
	td.sender.EXPECT().SendReconciliationRequest(ctx, txrecon.PeerID(1), params).Return(nil)
	td.clock.Advance(4 * time.Second)
	require.Equal(t, 1, td.Tick(ctx))
	td.sender.EXPECT().SendReconciliationRequest(ctx, txrecon.PeerID(2), txrecon.RequestParams{SetSize: 1, Q: 8191}).
		Return(nil)
	td.clock.Advance(4 * time.Second)
	require.Equal(t, 1, td.Tick(ctx))
}

func TestTickPendingRounds(t *testing.T) {
	td := newTestDriver(t, 1, 2)
	ctx := context.Background()

	td.sender.EXPECT().SendReconciliationRequest(ctx, txrecon.PeerID(1), gomock.Any()).Return(nil).Times(2)
	td.sender.EXPECT().SendReconciliationRequest(ctx, txrecon.PeerID(2), gomock.Any()).Return(nil).Times(2)
	require.Equal(t, 1, td.Tick(ctx))
	td.clock.Advance(4 * time.Second)
	require.Equal(t, 1, td.Tick(ctx))

	// pending rounds do not consume the turn duration, so both peers are due
	td.clock.Advance(4 * time.Second)
	require.Equal(t, 2, td.Tick(ctx))
	for _, id := range []txrecon.PeerID{1, 2} {
		info, ok := td.tracker.PeerInfo(id)
		require.True(t, ok)
		require.True(t, info.RoundPending)
		require.Equal(t, td.clock.Now(), info.LastRoundTime)
	}
}

func TestTickSendError(t *testing.T) {
	td := newTestDriver(t, 7)
	ctx := context.Background()

	td.sender.EXPECT().SendReconciliationRequest(ctx, txrecon.PeerID(7), gomock.Any()).
		Return(errors.New("stream reset"))
	require.Zero(t, td.Tick(ctx))
	info, ok := td.tracker.PeerInfo(7)
	require.True(t, ok)
	require.False(t, info.RoundPending)

	// retried on the next turn
	td.clock.Advance(7 * time.Second)
	require.Zero(t, td.Tick(ctx))
	td.sender.EXPECT().SendReconciliationRequest(ctx, txrecon.PeerID(7), gomock.Any()).Return(nil)
	td.clock.Advance(time.Second)
	require.Equal(t, 1, td.Tick(ctx))
}

func TestTickNoPeers(t *testing.T) {
	td := newTestDriver(t)
	require.Zero(t, td.Tick(context.Background()))
}

func TestTickPeerForgotten(t *testing.T) {
	ctrl := gomock.NewController(t)
	tracker := mocks.NewMockTracker(ctrl)
	sender := mocks.NewMockRequestSender(ctrl)
	clock := clockwork.NewFakeClock()
	d := New(tracker, sender, WithClock(clock))

	tracker.EXPECT().RegisteredPeers().Return([]txrecon.PeerID{1, 2})
	tracker.EXPECT().IsPeerNextToReconcileWith(txrecon.PeerID(1), clock.Now()).Return(true)
	// forgotten between the calls
	tracker.EXPECT().InitiateReconciliationRequest(txrecon.PeerID(1)).Return(txrecon.RequestParams{}, false)
	tracker.EXPECT().IsPeerNextToReconcileWith(txrecon.PeerID(2), clock.Now()).Return(true)
	tracker.EXPECT().InitiateReconciliationRequest(txrecon.PeerID(2)).Return(txrecon.RequestParams{Q: 1}, true)
	// and forgotten before the request failed
	sender.EXPECT().SendReconciliationRequest(gomock.Any(), txrecon.PeerID(2), txrecon.RequestParams{Q: 1}).
		Return(errors.New("disconnected"))
	tracker.EXPECT().CompleteReconciliationRound(txrecon.PeerID(2)).Return(false)
	require.Zero(t, d.Tick(context.Background()))
}

func TestRun(t *testing.T) {
	td := newTestDriver(t, 3)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sent := make(chan txrecon.PeerID, 1)
	td.sender.EXPECT().SendReconciliationRequest(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, peer txrecon.PeerID, _ txrecon.RequestParams) error {
			sent <- peer
			return nil
		})

	errc := make(chan error, 1)
	go func() {
		errc <- td.Run(ctx)
	}()
	td.clock.BlockUntil(1)
	td.clock.Advance(time.Second)
	select {
	case peer := <-sent:
		require.Equal(t, txrecon.PeerID(3), peer)
	case <-time.After(5 * time.Second):
		require.FailNow(t, "request was not sent")
	}

	cancel()
	require.NoError(t, <-errc)
}

func TestNewInvalidTickInterval(t *testing.T) {
	require.Panics(t, func() {
		New(nil, nil, WithConfig(Config{}))
	})
}
