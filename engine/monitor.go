package engine

import "github.com/ranji790/SmartBuddy/core"

// QueryMonitor provides hooks to observe the response pipeline.
// Implement this interface to track intermediate stages during query handling.
type QueryMonitor interface {
	Start(query string)
	GlobalHit(match *Match)
	AfterClassification(c Classification)
	DocumentsRanked(docs []*core.Document)
	CategoryHit(match *Match)
	CategoryDump(category string)
	KnowledgeHit(entry *core.KnowledgeEntry)
	Unanswered(query string)
	Finish(response *core.Response)
}

// noopMonitor is a no-op implementation of QueryMonitor
type noopMonitor struct{}

var _ QueryMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                       {}
func (n *noopMonitor) GlobalHit(_ *Match)                   {}
func (n *noopMonitor) AfterClassification(_ Classification) {}
func (n *noopMonitor) DocumentsRanked(_ []*core.Document)   {}
func (n *noopMonitor) CategoryHit(_ *Match)                 {}
func (n *noopMonitor) CategoryDump(_ string)                {}
func (n *noopMonitor) KnowledgeHit(_ *core.KnowledgeEntry)  {}
func (n *noopMonitor) Unanswered(_ string)                  {}
func (n *noopMonitor) Finish(_ *core.Response)              {}
