package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/edgesync/internal/common"
	"github.com/dmitrijs2005/edgesync/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeartbeat_Result(t *testing.T) {
	env := newTestEnv(t)

	res, err := env.liveness.Heartbeat(context.Background(), "T1", true)
	require.NoError(t, err)
	assert.Equal(t, "T1", res.TerminalID)
	assert.Equal(t, models.StatusOnline, res.Status)
	assert.True(t, res.CentralLinkUp)
	assert.True(t, epoch.Equal(res.ServerTime))

	res, err = env.liveness.Heartbeat(context.Background(), "T1", false)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOffline, res.Status)
	assert.False(t, res.CentralLinkUp)
}

func TestHeartbeat_RejectsBadTerminal(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.liveness.Heartbeat(context.Background(), "", true)
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestStatus_Boundary(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	window := 20 * time.Second

	env.heartbeat(t, "T1", true)

	st, err := env.liveness.StatusAt(ctx, "T1", epoch.Add(20*time.Second), window)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOnline, st)

	st, err = env.liveness.StatusAt(ctx, "T1", epoch.Add(20*time.Second+time.Millisecond), window)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOffline, st)
}

func TestStatus_LinkDownIsOfflineImmediately(t *testing.T) {
	env := newTestEnv(t)

	env.heartbeat(t, "T1", false)

	st, err := env.liveness.Status(context.Background(), "T1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusOffline, st)
}

func TestStatus_FollowsClock(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.heartbeat(t, "T1", true)
	env.clock.Advance(env.cfg.HeartbeatTimeout)

	st, err := env.liveness.Status(ctx, "T1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusOnline, st)

	env.clock.Advance(time.Nanosecond)
	st, err = env.liveness.Status(ctx, "T1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusOffline, st)

	// a fresh heartbeat brings it back
	env.heartbeat(t, "T1", true)
	st, err = env.liveness.Status(ctx, "T1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusOnline, st)
}

func TestStatus_UnknownTerminal(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.liveness.Status(context.Background(), "ghost")
	require.ErrorIs(t, err, common.ErrUnknownTerminal)
}

func TestLiveness_List(t *testing.T) {
	env := newTestEnv(t)

	env.heartbeat(t, "T2", true)
	env.heartbeat(t, "T1", false)

	list, err := env.liveness.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "T1", list[0].TerminalID)
	assert.Equal(t, 20*time.Second, env.liveness.Window())
}

func TestStatusOf(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	last := now.Add(-5 * time.Second)

	assert.Equal(t, models.StatusOffline, StatusOf(nil, now, 20*time.Second))
	assert.Equal(t, models.StatusOnline, StatusOf(&models.TerminalState{
		TerminalID: "T1", CentralLinkReported: true, LastHeartbeatAt: &last}, now, 20*time.Second))
	assert.Equal(t, models.StatusOffline, StatusOf(&models.TerminalState{
		TerminalID: "T1", CentralLinkReported: true, LastHeartbeatAt: &last}, now, time.Second))
}
