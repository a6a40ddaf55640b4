package engine

import (
	"context"
	"testing"
	"time"

	"github.com/ranji790/SmartBuddy/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedQuery struct {
	query   string
	askedAt time.Time
}

type fakeRecorder struct {
	recorded []recordedQuery
	err      error
}

func (f *fakeRecorder) RecordUnanswered(_ context.Context, query string, askedAt time.Time) error {
	if f.err != nil {
		return f.err
	}
	f.recorded = append(f.recorded, recordedQuery{query: query, askedAt: askedAt})
	return nil
}

func routerTestSnapshot(now time.Time) *Snapshot {
	return &Snapshot{
		Synonyms: core.SynonymTable{
			"exam":  {"test", "examination", "quiz", "exm"},
			"notes": {"note", "material"},
		},
		Categories: core.CategorySet{
			Categories: map[string]core.Category{
				CategoryExamDates: {
					Name: CategoryExamDates,
					Records: []core.Record{
						{Key: "Midterm", Value: "Oct 5", Keywords: []string{"midterm"}},
						{Key: "Finals", Value: "Dec 12", Keywords: []string{"finals"}},
					},
				},
				CategoryEvents: {Name: CategoryEvents},
			},
		},
		Documents: []*core.Document{
			{
				Id:          1,
				DisplayName: "DBMS Unit 1",
				Filename:    "20240101_dbms_unit1.pdf",
				Keywords:    []string{"dbms", "database"},
				UploadedAt:  now.Add(-48 * time.Hour),
			},
			{
				Id:          2,
				DisplayName: "Operating Systems",
				Filename:    "20240110_os.pdf",
				Keywords:    []string{"os"},
				UploadedAt:  now.Add(-24 * time.Hour),
			},
		},
		Knowledge: []*core.KnowledgeEntry{
			{Id: 1, Question: "where is the library", Answer: "Block C, ground floor."},
		},
	}
}

func newTestRouter(t *testing.T, recorder UnansweredRecorder) *Router {
	t.Helper()
	r, err := NewRouter(recorder)
	require.NoError(t, err)
	return r
}

func TestNewRouter_RequiresRecorder(t *testing.T) {
	_, err := NewRouter(nil)
	assert.ErrorIs(t, err, ErrRecorderRequired)
}

func TestRespond_RequiresSnapshot(t *testing.T) {
	r := newTestRouter(t, &fakeRecorder{})

	_, err := r.Respond(context.Background(), "anything", nil)
	assert.ErrorIs(t, err, ErrSnapshotRequired)
}

func TestRespond_GlobalHitIsTerminal(t *testing.T) {
	recorder := &fakeRecorder{}
	r := newTestRouter(t, recorder)
	snap := routerTestSnapshot(time.Now().UTC())

	resp, err := r.Respond(context.Background(), "when is the midterm", snap)
	require.NoError(t, err)
	assert.Equal(t, core.ResponseText, resp.Kind)
	assert.Equal(t, "**Midterm**: Oct 5", resp.Message)
	assert.Empty(t, recorder.recorded)
}

func TestRespond_DocumentsPriorityOverExam(t *testing.T) {
	r := newTestRouter(t, &fakeRecorder{})
	snap := routerTestSnapshot(time.Now().UTC())
	// Strip records so the global pass cannot short-circuit.
	snap.Categories = core.CategorySet{}

	resp, err := r.Respond(context.Background(), "exam notes", snap)
	require.NoError(t, err)
	// Document intent wins over exam intent even though both cues fire;
	// nothing ranks for "exam notes" so the list fallback applies.
	assert.Equal(t, core.ResponseDocumentList, resp.Kind)
	assert.Equal(t, "Available notes:", resp.Message)
	require.Len(t, resp.Documents, 2)
	assert.Equal(t, core.ID(2), resp.Documents[0].Id)
}

func TestRespond_DocumentsListAll(t *testing.T) {
	r := newTestRouter(t, &fakeRecorder{})
	snap := routerTestSnapshot(time.Now().UTC())

	resp, err := r.Respond(context.Background(), "show notes", snap)
	require.NoError(t, err)
	assert.Equal(t, core.ResponseDocumentList, resp.Kind)
	assert.Equal(t, "Here are all available notes:", resp.Message)
	require.Len(t, resp.Documents, 2)
	assert.Equal(t, core.ID(2), resp.Documents[0].Id, "newest first")
}

func TestRespond_DocumentsListAllEmpty(t *testing.T) {
	r := newTestRouter(t, &fakeRecorder{})
	snap := routerTestSnapshot(time.Now().UTC())
	snap.Documents = nil

	resp, err := r.Respond(context.Background(), "show notes", snap)
	require.NoError(t, err)
	assert.Equal(t, core.ResponseText, resp.Kind)
	assert.Equal(t, noDocumentsMessage, resp.Message)
}

func TestRespond_DocumentsBestMatchDownload(t *testing.T) {
	r := newTestRouter(t, &fakeRecorder{})
	snap := routerTestSnapshot(time.Now().UTC())

	resp, err := r.Respond(context.Background(), "dbms notes", snap)
	require.NoError(t, err)
	assert.Equal(t, core.ResponseDocumentDownload, resp.Kind)
	require.NotNil(t, resp.Document)
	assert.Equal(t, core.ID(1), resp.Document.Id)
	assert.Equal(t, "DBMS Unit 1 notes:", resp.Message)
}

func TestRespond_CategoryHit(t *testing.T) {
	r := newTestRouter(t, &fakeRecorder{})
	snap := routerTestSnapshot(time.Now().UTC())

	// "quiz" expands to "exam" so the exam intent fires, but the global
	// pass stays below threshold; the scoped matcher finds nothing either
	// and the whole category is dumped.
	resp, err := r.Respond(context.Background(), "quiz", snap)
	require.NoError(t, err)
	assert.Equal(t, core.ResponseText, resp.Kind)
	assert.Contains(t, resp.Message, "**Midterm**: Oct 5")
	assert.Contains(t, resp.Message, "**Finals**: Dec 12")
}

func TestRespond_EmptyCategory(t *testing.T) {
	r := newTestRouter(t, &fakeRecorder{})
	snap := routerTestSnapshot(time.Now().UTC())

	resp, err := r.Respond(context.Background(), "any events this week", snap)
	require.NoError(t, err)
	assert.Equal(t, core.ResponseText, resp.Kind)
	assert.Equal(t, "No events information is available yet.", resp.Message)
}

func TestRespond_EmptyCategoryNameReadable(t *testing.T) {
	assert.Equal(t, "No exam dates information is available yet.",
		emptyCategoryMessage(CategoryExamDates))
}

func TestRespond_MentalHealth(t *testing.T) {
	r := newTestRouter(t, &fakeRecorder{})
	snap := routerTestSnapshot(time.Now().UTC())

	resp, err := r.Respond(context.Background(), "i am feeling stressed", snap)
	require.NoError(t, err)
	assert.Equal(t, core.ResponseText, resp.Kind)
	assert.Contains(t, resp.Message, "mental health tips")
	assert.Contains(t, resp.Message, "• Take deep breaths")
	assert.Contains(t, resp.Message, "It's okay to ask for help")
}

func TestRespond_Greeting(t *testing.T) {
	r := newTestRouter(t, &fakeRecorder{})
	snap := routerTestSnapshot(time.Now().UTC())

	resp, err := r.Respond(context.Background(), "hello", snap)
	require.NoError(t, err)
	assert.Equal(t, core.ResponseText, resp.Kind)
	assert.Equal(t, greetingMessage, resp.Message)
}

func TestRespond_KnowledgeBaseHit(t *testing.T) {
	recorder := &fakeRecorder{}
	r := newTestRouter(t, recorder)
	snap := routerTestSnapshot(time.Now().UTC())

	resp, err := r.Respond(context.Background(), "where is the librari", snap)
	require.NoError(t, err)
	assert.Equal(t, core.ResponseText, resp.Kind)
	assert.Equal(t, "Block C, ground floor.", resp.Message)
	assert.Empty(t, recorder.recorded, "knowledge hits are not unanswered")
}

func TestRespond_UnknownRecordsOnce(t *testing.T) {
	recorder := &fakeRecorder{}
	fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	r, err := NewRouter(recorder, WithClock(func() time.Time { return fixed }))
	require.NoError(t, err)
	snap := routerTestSnapshot(time.Now().UTC())

	resp, err := r.Respond(context.Background(), "does the gym have lockers", snap)
	require.NoError(t, err)
	assert.Equal(t, core.ResponseText, resp.Kind)
	assert.Equal(t, unknownMessage, resp.Message)

	require.Len(t, recorder.recorded, 1)
	assert.Equal(t, "does the gym have lockers", recorder.recorded[0].query)
	assert.Equal(t, fixed, recorder.recorded[0].askedAt)
}

func TestRespond_RecorderFailureSurfaces(t *testing.T) {
	recorder := &fakeRecorder{err: assert.AnError}
	r := newTestRouter(t, recorder)
	snap := routerTestSnapshot(time.Now().UTC())

	_, err := r.Respond(context.Background(), "does the gym have lockers", snap)
	assert.ErrorIs(t, err, assert.AnError)
}

type countingMonitor struct {
	noopMonitor
	started   int
	finished  int
	globalHit int
}

func (m *countingMonitor) Start(string)          { m.started++ }
func (m *countingMonitor) Finish(*core.Response) { m.finished++ }
func (m *countingMonitor) GlobalHit(*Match)      { m.globalHit++ }

func TestRespondWithMonitor_Callbacks(t *testing.T) {
	r := newTestRouter(t, &fakeRecorder{})
	snap := routerTestSnapshot(time.Now().UTC())
	monitor := &countingMonitor{}

	_, err := r.RespondWithMonitor(context.Background(), "when is the midterm", snap, monitor)
	require.NoError(t, err)
	assert.Equal(t, 1, monitor.started)
	assert.Equal(t, 1, monitor.finished)
	assert.Equal(t, 1, monitor.globalHit)
}
