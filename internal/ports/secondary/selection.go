package secondary

// SelectionStore defines the secondary port for the persisted active
// selection. Each CLI invocation builds a fresh engine, so the active
// location/shift must outlive the process.
type SelectionStore interface {
	// LoadSelection returns the stored selection. Unset fields come
	// back empty; the engine substitutes defaults.
	LoadSelection() (*Selection, error)

	// SaveSelection persists the selection.
	SaveSelection(sel *Selection) error
}

// Selection is the active location and shift.
type Selection struct {
	Location string
	Shift    string
}
