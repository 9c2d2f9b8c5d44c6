package listctl

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID     string
	Title  string
	Status string
}

func newTestController(deleteMany func(ids []string) error) *Controller[row, string] {
	return New[row, string](
		func(item row) string { return item.ID },
		func(item row, search, status string) bool {
			if search != "" && !strings.Contains(strings.ToLower(item.Title), strings.ToLower(search)) {
				return false
			}
			if status != "" && item.Status != status {
				return false
			}
			return true
		},
		deleteMany,
	)
}

func makeRows(n int) []row {
	rows := make([]row, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, row{
			ID:     string(rune('a' + i)),
			Title:  "Engineer",
			Status: "open",
		})
	}
	return rows
}

func TestListController(t *testing.T) {
	t.Run(`filters reset the page to 1`, func(t *testing.T) {
		c := newTestController(nil)
		c.SetItems(makeRows(25))
		c.SetPage(3)
		require.Equal(t, 3, c.Page())

		c.SetSearch("eng")
		require.Equal(t, 1, c.Page())

		c.SetPage(3)
		c.SetStatusFilter("open")
		require.Equal(t, 1, c.Page())
	})

	t.Run(`toggle all visible twice restores the prior selection`, func(t *testing.T) {
		c := newTestController(nil)
		c.SetItems(makeRows(25))
		c.SetPage(2)
		c.ToggleRow("a") // off-page selection must survive
		c.ToggleRow("l") // page 2 row

		before := map[string]bool{}
		for _, id := range c.SelectedIDs() {
			before[id] = true
		}

		c.ToggleAllVisible()
		require.Greater(t, len(c.SelectedIDs()), len(before))
		c.ToggleAllVisible()

		after := map[string]bool{}
		for _, id := range c.SelectedIDs() {
			after[id] = true
		}
		require.Equal(t, before, after)
	})

	t.Run(`page clamps when rows per page grows`, func(t *testing.T) {
		c := newTestController(nil)
		c.SetItems(makeRows(25))
		c.SetPage(3)

		c.SetRowsPerPage(100)
		require.Equal(t, 1, c.TotalPages())
		require.Equal(t, 1, c.Page())
	})

	t.Run(`page never clamps below 1`, func(t *testing.T) {
		c := newTestController(nil)
		c.SetItems(nil)
		require.Equal(t, 1, c.Page())
		require.Equal(t, 1, c.TotalPages())
	})

	t.Run(`bulk delete with empty selection raises the alert and issues no call`, func(t *testing.T) {
		called := false
		c := newTestController(func(ids []string) error {
			called = true
			return nil
		})
		c.SetItems(makeRows(5))
		c.DeleteMarked()
		require.Equal(t, NoSelectionAlert, c.Alert())
		require.Equal(t, false, c.IsAwaitingConfirm())
		require.Equal(t, false, called)
	})

	t.Run(`confirmed bulk delete prunes items and clears the selection`, func(t *testing.T) {
		var deleted []string
		c := newTestController(func(ids []string) error {
			deleted = ids
			return nil
		})
		c.SetItems(makeRows(5))
		c.ToggleRow("a")
		c.ToggleRow("b")

		c.DeleteMarked()
		require.Equal(t, true, c.IsAwaitingConfirm())
		require.Nil(t, c.ConfirmDelete())
		require.Len(t, deleted, 2)
		require.Len(t, c.VisibleRows(), 3)
		require.Empty(t, c.SelectedIDs())
	})

	t.Run(`failed bulk delete keeps the selection`, func(t *testing.T) {
		c := newTestController(func(ids []string) error {
			return errors.New("service unavailable")
		})
		c.SetItems(makeRows(5))
		c.ToggleRow("a")

		c.DeleteMarked()
		err := c.ConfirmDelete()
		require.NotNil(t, err)
		require.Equal(t, "service unavailable", c.Alert())
		require.Len(t, c.SelectedIDs(), 1)
		require.Len(t, c.VisibleRows(), 5)
	})

	t.Run(`shrinking collection clamps the current page`, func(t *testing.T) {
		c := newTestController(nil)
		c.SetItems(makeRows(25))
		c.SetPage(3)

		c.SetItems(makeRows(5))
		require.Equal(t, 1, c.Page())
	})
}
