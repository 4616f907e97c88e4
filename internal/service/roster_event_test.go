package service

import (
	"context"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/rs/xid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington/activities/internal/app/appconfig"
	"github.com/mergington/activities/internal/constant"
	"github.com/mergington/activities/internal/model"
	"github.com/mergington/activities/internal/pkg/flog"
	"github.com/mergington/activities/internal/repo"
)

func runNATS(t *testing.T) *nats.Conn {
	t.Helper()

	ns, err := server.NewServer(&server.Options{Host: "127.0.0.1", Port: -1})
	require.NoError(t, err)
	go ns.Start()
	t.Cleanup(ns.Shutdown)
	require.True(t, ns.ReadyForConnections(5*time.Second), "embedded nats server did not start")

	nc, err := nats.Connect(ns.ClientURL())
	require.NoError(t, err)
	t.Cleanup(nc.Close)
	return nc
}

func TestRosterEventDisabledIsNoop(t *testing.T) {
	conf := &appconfig.Config{ConfigSpec: appconfig.ConfigSpec{NatsSubjectPrefix: "mergington"}}
	s := NewRosterEvent(conf, nil)

	assert.False(t, s.Enabled())
	assert.NotPanics(t, func() {
		s.Publish(context.Background(), constant.SubjectMemberJoined, "Chess Club", "a@mergington.edu", constant.OperationSignUp)
	})
}

func TestRosterEventPublishedOnRosterChange(t *testing.T) {
	nc := runNATS(t)

	sub, err := nc.SubscribeSync("mergington.activity.member.>")
	require.NoError(t, err)
	require.NoError(t, nc.Flush())

	conf := &appconfig.Config{ConfigSpec: appconfig.ConfigSpec{
		NatsSubjectPrefix: "mergington",
		ListCacheTTL:      time.Minute,
	}}
	r, err := repo.NewActivityFromCatalog(repo.DefaultCatalog())
	require.NoError(t, err)
	s := NewActivity(conf, r, NewRosterEvent(conf, nc))

	requestID := xid.New()
	ctx := flog.CtxWithID(context.Background(), requestID)
	require.NoError(t, s.SignUp(ctx, "Tennis Club", "event@mergington.edu"))
	require.NoError(t, s.Unregister(ctx, "Tennis Club", "event@mergington.edu"))
	require.NoError(t, nc.Flush())

	expect := []struct {
		subject   string
		operation string
	}{
		{"mergington." + constant.SubjectMemberJoined, constant.OperationSignUp},
		{"mergington." + constant.SubjectMemberLeft, constant.OperationUnregister},
	}
	for _, e := range expect {
		msg, err := sub.NextMsg(2 * time.Second)
		require.NoError(t, err)
		assert.Equal(t, e.subject, msg.Subject)

		var evt model.RosterEvent
		require.NoError(t, json.Unmarshal(msg.Data, &evt))
		assert.Equal(t, "Tennis Club", evt.Activity)
		assert.Equal(t, "event@mergington.edu", evt.Email)
		assert.Equal(t, e.operation, evt.Operation)
		assert.False(t, evt.OccurredAt.IsZero())
		assert.Equal(t, requestID.String(), evt.RequestID)
	}
}

func TestRosterEventNotPublishedOnRejection(t *testing.T) {
	nc := runNATS(t)

	sub, err := nc.SubscribeSync("mergington.>")
	require.NoError(t, err)
	require.NoError(t, nc.Flush())

	conf := &appconfig.Config{ConfigSpec: appconfig.ConfigSpec{NatsSubjectPrefix: "mergington"}}
	r, err := repo.NewActivityFromCatalog(repo.DefaultCatalog())
	require.NoError(t, err)
	s := NewActivity(conf, r, NewRosterEvent(conf, nc))

	assert.Error(t, s.SignUp(context.Background(), "Chess Club", "michael@mergington.edu"))
	require.NoError(t, nc.Flush())

	_, err = sub.NextMsg(200 * time.Millisecond)
	assert.ErrorIs(t, err, nats.ErrTimeout)
}

func TestHealthPing(t *testing.T) {
	conf := &appconfig.Config{}
	r, err := repo.NewActivityFromCatalog(repo.DefaultCatalog())
	require.NoError(t, err)

	h := NewHealth(r, NewRosterEvent(conf, nil))
	assert.NoError(t, h.Ping(context.Background()))

	h = NewHealth(r, NewRosterEvent(conf, runNATS(t)))
	assert.NoError(t, h.Ping(context.Background()))
}
