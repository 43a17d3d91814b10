package session_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/splitty/internal/form"
	"github.com/MrJamesThe3rd/splitty/internal/metrics"
)

func TestSession_Metrics(t *testing.T) {
	ctx := context.Background()
	s, friends := newSession(t)

	var (
		added     = testutil.ToFloat64(metrics.FriendsAdded)
		size      = testutil.ToFloat64(metrics.RosterSize)
		byFriend  = testutil.ToFloat64(metrics.BillsSplit.WithLabelValues("friend"))
		addReject = testutil.ToFloat64(metrics.Rejections.WithLabelValues("add_friend"))
		splitRej  = testutil.ToFloat64(metrics.Rejections.WithLabelValues("split_bill"))
	)

	_, err := s.AddFriend(ctx, form.NewAddFriend(""))
	require.ErrorIs(t, err, form.ErrNameRequired)

	f := form.NewAddFriend("")
	f.Name = "Dana"
	_, err = s.AddFriend(ctx, f)
	require.NoError(t, err)

	_, err = s.SplitBill(ctx, splitForm(t, "10", "4", form.PayerFriend))
	require.Error(t, err, "nobody selected")

	_, err = s.Select(ctx, friends[0].ID)
	require.NoError(t, err)
	_, err = s.SplitBill(ctx, splitForm(t, "10", "4", form.PayerFriend))
	require.NoError(t, err)

	assert.Equal(t, added+1, testutil.ToFloat64(metrics.FriendsAdded))
	assert.Equal(t, size+1, testutil.ToFloat64(metrics.RosterSize))
	assert.Equal(t, byFriend+1, testutil.ToFloat64(metrics.BillsSplit.WithLabelValues("friend")))
	assert.Equal(t, addReject+1, testutil.ToFloat64(metrics.Rejections.WithLabelValues("add_friend")))
	assert.Equal(t, splitRej+1, testutil.ToFloat64(metrics.Rejections.WithLabelValues("split_bill")))
}
