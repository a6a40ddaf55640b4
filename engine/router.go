package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ranji790/SmartBuddy/core"
)

// knowledgeRatio is the similarity threshold for the fuzzy exact-question
// fallback against the knowledge base.
const knowledgeRatio = 75

// Snapshot is the read-only data the router works against for one query.
// The caller is responsible for snapshot consistency; the router never
// mutates it.
type Snapshot struct {
	Synonyms   core.SynonymTable
	Categories core.CategorySet
	Documents  []*core.Document
	Knowledge  []*core.KnowledgeEntry
}

// UnansweredRecorder accepts queries the router could not answer. It is
// the router's only side effect, delegated to the storage layer.
type UnansweredRecorder interface {
	RecordUnanswered(ctx context.Context, query string, askedAt time.Time) error
}

// Router orchestrates the end-to-end query pipeline: global record match,
// intent classification, dispatch, and the unknown-query fallback.
// Stateless across calls; safe for concurrent use.
type Router struct {
	recorder UnansweredRecorder
	logger   *slog.Logger
	now      func() time.Time
}

// Option configures a Router.
type Option func(*Router) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithClock sets the time source used for unanswered-query timestamps.
// Default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *Router) error {
		if now == nil {
			now = time.Now
		}
		r.now = now
		return nil
	}
}

// NewRouter creates a new router.
func NewRouter(recorder UnansweredRecorder, opts ...Option) (*Router, error) {
	if recorder == nil {
		return nil, ErrRecorderRequired
	}

	r := &Router{
		recorder: recorder,
		logger:   slog.Default(),
		now:      time.Now,
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Respond processes one query against the snapshot and returns exactly
// one response.
func (r *Router) Respond(ctx context.Context, query string, snap *Snapshot) (*core.Response, error) {
	return r.RespondWithMonitor(ctx, query, snap, nil)
}

// RespondWithMonitor processes one query with monitoring. The monitor
// receives callbacks at each stage of the pipeline.
func (r *Router) RespondWithMonitor(ctx context.Context, query string, snap *Snapshot, monitor QueryMonitor) (*core.Response, error) {
	if snap == nil {
		return nil, ErrSnapshotRequired
	}
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)

	// 1. Global scored pass across every category.
	if match := MatchGlobal(query, snap.Synonyms, snap.Categories); match != nil {
		monitor.GlobalHit(match)
		resp := core.TextResponse(recordMessage(match.Record))
		monitor.Finish(resp)
		return resp, nil
	}

	// 2. Intent classification.
	c := Classify(query, snap.Synonyms, snap.Categories)
	monitor.AfterClassification(c)

	// 3. Dispatch.
	var resp *core.Response
	var err error
	switch c.Intent {
	case core.IntentDocuments:
		resp = r.respondDocuments(query, snap, monitor)
	case core.IntentExam, core.IntentFaculty, core.IntentSchedule, core.IntentEvents, core.IntentCategory:
		resp = r.respondCategory(query, c.Category, snap, monitor)
	case core.IntentMentalHealth:
		resp = core.TextResponse(mentalHealthMessage())
	case core.IntentGreeting:
		resp = core.TextResponse(greetingMessage)
	default:
		resp, err = r.respondUnknown(ctx, query, snap, monitor)
		if err != nil {
			return nil, err
		}
	}

	monitor.Finish(resp)
	return resp, nil
}

// respondDocuments handles document requests: list-all, ranked search
// with a single best result, or the available-documents fallback.
func (r *Router) respondDocuments(query string, snap *Snapshot, monitor QueryMonitor) *core.Response {
	if IsListAllRequest(query) {
		if len(snap.Documents) == 0 {
			return core.TextResponse(noDocumentsMessage)
		}
		all := SortByUploadTime(snap.Documents)
		monitor.DocumentsRanked(all)
		return core.ListResponse("Here are all available notes:", all)
	}

	ranked := Rank(query, snap.Documents, snap.Synonyms)
	monitor.DocumentsRanked(ranked)

	if len(ranked) > 0 {
		best := ranked[0]
		return core.DownloadResponse(fmt.Sprintf("%s notes:", best.DisplayName), best)
	}
	if len(snap.Documents) > 0 {
		return core.ListResponse("Available notes:", SortByUploadTime(snap.Documents))
	}
	return core.TextResponse("No notes found for that topic, and no other notes are available yet.")
}

// respondCategory handles a category-scoped information request. An empty
// category yields a fixed "nothing here yet" text; a weak match dumps the
// whole category.
func (r *Router) respondCategory(query, name string, snap *Snapshot, monitor QueryMonitor) *core.Response {
	category, ok := snap.Categories.Categories[name]
	if !ok || len(category.Records) == 0 {
		return core.TextResponse(emptyCategoryMessage(name))
	}

	if match := MatchCategory(query, category); match != nil {
		monitor.CategoryHit(match)
		return core.TextResponse(recordMessage(match.Record))
	}

	monitor.CategoryDump(name)
	var b strings.Builder
	for _, record := range category.Records {
		b.WriteString(recordMessage(record))
		b.WriteString("\n\n")
	}
	return core.TextResponse(b.String())
}

// respondUnknown scans the knowledge base for a close question; failing
// that it records the unanswered query and returns the fixed fallback.
func (r *Router) respondUnknown(ctx context.Context, query string, snap *Snapshot, monitor QueryMonitor) (*core.Response, error) {
	for _, entry := range snap.Knowledge {
		if Ratio(query, entry.Question) > knowledgeRatio {
			monitor.KnowledgeHit(entry)
			return core.TextResponse(entry.Answer), nil
		}
	}

	monitor.Unanswered(query)
	if err := r.recorder.RecordUnanswered(ctx, query, r.now().UTC()); err != nil {
		r.logger.Error("error recording unanswered query", "query", query, "err", err)
		return nil, err
	}

	return core.TextResponse(unknownMessage), nil
}

// recordMessage renders one record as the user-facing "key: value" line.
func recordMessage(record core.Record) string {
	return fmt.Sprintf("**%s**: %s", record.Key, record.Value)
}

// emptyCategoryMessage names the category with underscores replaced so
// "exam_dates" reads as "exam dates".
func emptyCategoryMessage(name string) string {
	return fmt.Sprintf("No %s information is available yet.", strings.ReplaceAll(name, "_", " "))
}

const noDocumentsMessage = "No notes are currently available. Please contact admin to add study materials."

const unknownMessage = "I'm sorry, I don't have information about that yet. " +
	"I've noted your question and admin can help provide an answer for future queries. " +
	"Is there anything else I can help you with?"

const greetingMessage = `👋 Hello! I'm SmartBuddy, your college assistant with offline natural language processing.


📚 **What I Can Help With:**

Just ask naturally`

// mentalHealthTips is the fixed wellness tip list.
var mentalHealthTips = []string{
	"Take deep breaths and practice mindfulness",
	"Take regular breaks during study sessions",
	"Get enough sleep and maintain a healthy routine",
	"Talk to friends, family, or counselors when feeling stressed",
	"Exercise regularly to reduce stress and anxiety",
	"Break large tasks into smaller, manageable pieces",
}

func mentalHealthMessage() string {
	var b strings.Builder
	b.WriteString("Here are some mental health tips for students:\n\n")
	for _, tip := range mentalHealthTips {
		b.WriteString("• ")
		b.WriteString(tip)
		b.WriteString("\n")
	}
	b.WriteString("\n💡 Remember: It's okay to ask for help when you need it!")
	return b.String()
}
