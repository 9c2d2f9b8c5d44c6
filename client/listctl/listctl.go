package listctl

import (
	"github.com/pkg/errors"
)

const defaultRowsPerPage = 10

// NoSelectionAlert is shown when a bulk action is requested with nothing
// selected.
const NoSelectionAlert = "No Selection"

// Controller is the shared list/table state machine behind every entity
// screen: filtering, page-scoped selection and bulk delete with a
// confirmation step.
type Controller[T any, ID comparable] struct {
	id         func(item T) ID
	match      func(item T, search, status string) bool
	deleteMany func(ids []ID) error

	items         []T
	selected      map[ID]struct{}
	page          int
	rowsPerPage   int
	search        string
	statusFilter  string
	alert         string
	pendingDelete bool
}

func New[T any, ID comparable](
	id func(item T) ID,
	match func(item T, search, status string) bool,
	deleteMany func(ids []ID) error,
) *Controller[T, ID] {
	return &Controller[T, ID]{
		id:          id,
		match:       match,
		deleteMany:  deleteMany,
		selected:    map[ID]struct{}{},
		page:        1,
		rowsPerPage: defaultRowsPerPage,
	}
}

// SetItems replaces the collection, pruning selections that no longer exist
// and clamping the page.
func (c *Controller[T, ID]) SetItems(items []T) {
	c.items = items
	known := make(map[ID]struct{}, len(items))
	for _, item := range items {
		known[c.id(item)] = struct{}{}
	}
	for id := range c.selected {
		if _, ok := known[id]; !ok {
			delete(c.selected, id)
		}
	}
	c.clampPage()
}

func (c *Controller[T, ID]) SetSearch(term string) {
	c.search = term
	c.page = 1
}

func (c *Controller[T, ID]) SetStatusFilter(status string) {
	c.statusFilter = status
	c.page = 1
}

func (c *Controller[T, ID]) SetRowsPerPage(n int) {
	if n < 1 {
		n = 1
	}
	c.rowsPerPage = n
	c.clampPage()
}

func (c *Controller[T, ID]) SetPage(page int) {
	c.page = page
	c.clampPage()
}

func (c *Controller[T, ID]) Page() int {
	return c.page
}

func (c *Controller[T, ID]) filtered() []T {
	if c.match == nil || (c.search == "" && c.statusFilter == "") {
		return c.items
	}
	result := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if c.match(item, c.search, c.statusFilter) {
			result = append(result, item)
		}
	}
	return result
}

func (c *Controller[T, ID]) TotalPages() int {
	total := (len(c.filtered()) + c.rowsPerPage - 1) / c.rowsPerPage
	if total < 1 {
		total = 1
	}
	return total
}

// VisibleRows returns the current page of the filtered collection.
func (c *Controller[T, ID]) VisibleRows() []T {
	filtered := c.filtered()
	start := (c.page - 1) * c.rowsPerPage
	if start >= len(filtered) {
		return nil
	}
	end := start + c.rowsPerPage
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

func (c *Controller[T, ID]) IsSelected(id ID) bool {
	_, ok := c.selected[id]
	return ok
}

func (c *Controller[T, ID]) SelectedIDs() []ID {
	ids := make([]ID, 0, len(c.selected))
	for id := range c.selected {
		ids = append(ids, id)
	}
	return ids
}

func (c *Controller[T, ID]) ToggleRow(id ID) {
	if c.IsSelected(id) {
		delete(c.selected, id)
		return
	}
	c.selected[id] = struct{}{}
}

// ToggleAllVisible selects the current page's rows, or deselects them when
// every visible row is already selected. Rows on other pages keep their
// state, so toggling twice restores the prior selection.
func (c *Controller[T, ID]) ToggleAllVisible() {
	visible := c.VisibleRows()
	if len(visible) == 0 {
		return
	}
	allSelected := true
	for _, item := range visible {
		if !c.IsSelected(c.id(item)) {
			allSelected = false
			break
		}
	}
	for _, item := range visible {
		if allSelected {
			delete(c.selected, c.id(item))
		} else {
			c.selected[c.id(item)] = struct{}{}
		}
	}
}

// DeleteMarked starts the bulk delete. With nothing selected it only raises
// the no-selection alert; otherwise it arms the confirmation step and the
// delete runs on ConfirmDelete.
func (c *Controller[T, ID]) DeleteMarked() {
	if len(c.selected) == 0 {
		c.alert = NoSelectionAlert
		return
	}
	c.pendingDelete = true
}

func (c *Controller[T, ID]) IsAwaitingConfirm() bool {
	return c.pendingDelete
}

func (c *Controller[T, ID]) CancelDelete() {
	c.pendingDelete = false
}

// ConfirmDelete issues the bulk delete. On failure the selection is left
// untouched; on success deleted rows are pruned locally and the selection
// cleared.
func (c *Controller[T, ID]) ConfirmDelete() error {
	if !c.pendingDelete {
		return errors.New("no delete is awaiting confirmation")
	}
	c.pendingDelete = false
	if c.deleteMany == nil {
		return errors.New("no delete action configured")
	}
	err := c.deleteMany(c.SelectedIDs())
	if err != nil {
		c.alert = err.Error()
		return err
	}
	kept := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if !c.IsSelected(c.id(item)) {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.selected = map[ID]struct{}{}
	c.clampPage()
	return nil
}

func (c *Controller[T, ID]) Alert() string {
	return c.alert
}

func (c *Controller[T, ID]) DismissAlert() {
	c.alert = ""
}

// clampPage keeps the page within 1..TotalPages.
func (c *Controller[T, ID]) clampPage() {
	if max := c.TotalPages(); c.page > max {
		c.page = max
	}
	if c.page < 1 {
		c.page = 1
	}
}
