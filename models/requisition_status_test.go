package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequisitionStatus(t *testing.T) {
	t.Run(`pending moves only to open or rejected`, func(t *testing.T) {
		require.Equal(t, true, RequisitionStatusPending.IsAllowChange(RequisitionStatusOpen))
		require.Equal(t, true, RequisitionStatusPending.IsAllowChange(RequisitionStatusRejected))
		require.Equal(t, false, RequisitionStatusPending.IsAllowChange(RequisitionStatusClosed))
	})

	t.Run(`terminal states accept no transitions`, func(t *testing.T) {
		require.Equal(t, false, RequisitionStatusRejected.IsAllowChange(RequisitionStatusOpen))
		require.Equal(t, false, RequisitionStatusRejected.IsAllowChange(RequisitionStatusPending))
		require.Equal(t, false, RequisitionStatusClosed.IsAllowChange(RequisitionStatusOpen))
	})

	t.Run(`only open requisitions are mutable`, func(t *testing.T) {
		require.Equal(t, true, RequisitionStatusOpen.IsMutable())
		require.Equal(t, false, RequisitionStatusPending.IsMutable())
		require.Equal(t, false, RequisitionStatusRejected.IsMutable())
		require.Equal(t, false, RequisitionStatusClosed.IsMutable())
	})

	t.Run(`empty status counts as pending for decisions`, func(t *testing.T) {
		var s RequisitionStatus
		require.Equal(t, true, s.AllowAccept())
		require.Equal(t, true, s.AllowReject())
		require.Equal(t, false, s.AllowPublish())
	})
}
