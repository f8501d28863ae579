package app

import (
	"context"

	"github.com/example/patrol/internal/ports/secondary"
)

// Ensure the mocks implement their ports
var (
	_ secondary.PatrolRepository = (*mockPatrolRepository)(nil)
	_ secondary.ReportSender     = (*mockReportSender)(nil)
	_ secondary.Confirmer        = (*mockConfirmer)(nil)
	_ secondary.SelectionStore   = (*mockSelectionStore)(nil)
)

// mockPatrolRepository implements secondary.PatrolRepository for testing.
type mockPatrolRepository struct {
	current map[string]*secondary.CurrentStateRecord
	history []*secondary.PatrolRecord
	nextID  int64

	getStateErr   error
	saveStateErr  error
	clearErr      error
	saveRecordErr error
	getHistoryErr error
}

func newMockPatrolRepository() *mockPatrolRepository {
	return &mockPatrolRepository{
		current: make(map[string]*secondary.CurrentStateRecord),
		nextID:  1,
	}
}

func (m *mockPatrolRepository) GetCurrentState(ctx context.Context) ([]*secondary.CurrentStateRecord, error) {
	if m.getStateErr != nil {
		return nil, m.getStateErr
	}
	var rows []*secondary.CurrentStateRecord
	for _, s := range m.current {
		copied := *s
		rows = append(rows, &copied)
	}
	return rows, nil
}

func (m *mockPatrolRepository) SaveCurrentState(ctx context.Context, state *secondary.CurrentStateRecord) error {
	if m.saveStateErr != nil {
		return m.saveStateErr
	}
	copied := *state
	m.current[state.Location] = &copied
	return nil
}

func (m *mockPatrolRepository) ClearCurrentState(ctx context.Context) error {
	if m.clearErr != nil {
		return m.clearErr
	}
	m.current = make(map[string]*secondary.CurrentStateRecord)
	return nil
}

func (m *mockPatrolRepository) SaveRecord(ctx context.Context, record *secondary.PatrolRecord) (int64, error) {
	if m.saveRecordErr != nil {
		return 0, m.saveRecordErr
	}
	copied := *record
	copied.ID = m.nextID
	m.nextID++
	m.history = append(m.history, &copied)
	return copied.ID, nil
}

func (m *mockPatrolRepository) GetHistory(ctx context.Context) ([]*secondary.PatrolRecord, error) {
	if m.getHistoryErr != nil {
		return nil, m.getHistoryErr
	}
	// id descending, like the store
	rows := make([]*secondary.PatrolRecord, 0, len(m.history))
	for i := len(m.history) - 1; i >= 0; i-- {
		copied := *m.history[i]
		rows = append(rows, &copied)
	}
	return rows, nil
}

// mockReportSender implements secondary.ReportSender for testing.
type mockReportSender struct {
	sendErr error

	sentShift string
	sentRows  []secondary.ReportRow
	calls     int
}

func (m *mockReportSender) Send(ctx context.Context, shift string, rows []secondary.ReportRow) error {
	m.calls++
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sentShift = shift
	m.sentRows = rows
	return nil
}

// mockConfirmer implements secondary.Confirmer for testing.
type mockConfirmer struct {
	answer  bool
	prompts []string
}

func (m *mockConfirmer) Confirm(prompt string) bool {
	m.prompts = append(m.prompts, prompt)
	return m.answer
}

// mockSelectionStore implements secondary.SelectionStore for testing.
type mockSelectionStore struct {
	sel     secondary.Selection
	loadErr error
	saveErr error
}

func (m *mockSelectionStore) LoadSelection() (*secondary.Selection, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	copied := m.sel
	return &copied, nil
}

func (m *mockSelectionStore) SaveSelection(sel *secondary.Selection) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.sel = *sel
	return nil
}
