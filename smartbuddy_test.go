package smartbuddy

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/ranji790/SmartBuddy/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAssistant(t *testing.T) *Assistant {
	t.Helper()
	assistant, err := Open("", WithInMemory())
	require.NoError(t, err)
	t.Cleanup(func() { assistant.Close() })
	return assistant
}

func seedAssistant(t *testing.T, a *Assistant) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, a.SynonymRepository().SetSynonymGroup(ctx, "exam", []string{"test", "examination", "quiz", "exm"}))
	require.NoError(t, a.SynonymRepository().SetSynonymGroup(ctx, "notes", []string{"note", "material"}))

	require.NoError(t, a.InfoRepository().AddRecord(ctx, "exam_dates", core.Record{
		Key:      "Midterm",
		Value:    "Oct 5",
		Keywords: []string{"midterm"},
	}))

	_, err := a.DocumentRepository().AddDocuments(ctx, &core.Document{
		DisplayName: "DBMS Unit 1",
		Filename:    "20260214_093000_dbms_unit1.pdf",
		Keywords:    []string{"dbms", "database"},
	})
	require.NoError(t, err)
}

func TestAssistantAsk_RecordHit(t *testing.T) {
	assistant := newTestAssistant(t)
	seedAssistant(t, assistant)

	resp, err := assistant.Ask(context.Background(), "when is the midterm")
	require.NoError(t, err)
	assert.Equal(t, core.ResponseText, resp.Kind)
	assert.Equal(t, "**Midterm**: Oct 5", resp.Message)
}

func TestAssistantAsk_DocumentDownload(t *testing.T) {
	assistant := newTestAssistant(t)
	seedAssistant(t, assistant)

	resp, err := assistant.Ask(context.Background(), "dbms notes")
	require.NoError(t, err)
	assert.Equal(t, core.ResponseDocumentDownload, resp.Kind)
	require.NotNil(t, resp.Document)
	assert.Equal(t, "DBMS Unit 1", resp.Document.DisplayName)
}

func TestAssistantAsk_UnknownIsRecorded(t *testing.T) {
	assistant := newTestAssistant(t)
	seedAssistant(t, assistant)
	ctx := context.Background()

	resp, err := assistant.Ask(ctx, "does the gym have lockers")
	require.NoError(t, err)
	assert.Equal(t, core.ResponseText, resp.Kind)

	unanswered, err := assistant.KnowledgeRepository().GetUnanswered(ctx)
	require.NoError(t, err)
	require.Len(t, unanswered, 1)
	assert.Equal(t, "does the gym have lockers", unanswered[0].Query)
}

func TestAssistantAskInSession(t *testing.T) {
	assistant := newTestAssistant(t)
	seedAssistant(t, assistant)
	ctx := context.Background()

	session, err := assistant.ChatRepository().CreateSession(ctx)
	require.NoError(t, err)

	resp, err := assistant.AskInSession(ctx, session.Id, "when is the midterm")
	require.NoError(t, err)
	assert.Equal(t, "**Midterm**: Oct 5", resp.Message)

	stored, err := assistant.ChatRepository().GetSession(ctx, session.Id)
	require.NoError(t, err)
	require.Equal(t, 2, stored.MessageCount())
	assert.Equal(t, core.RoleUser, stored.Messages[0].Role)
	assert.Equal(t, "when is the midterm", stored.Messages[0].Text)
	assert.Equal(t, core.RoleAssistant, stored.Messages[1].Role)
	assert.Equal(t, "**Midterm**: Oct 5", stored.Messages[1].Text)
	assert.Equal(t, "when is the midterm", stored.Name)
}

func TestAssistantDefaultCredentials(t *testing.T) {
	assistant := newTestAssistant(t)
	ctx := context.Background()

	ok, err := assistant.Auth().Login(ctx, "123")
	require.NoError(t, err)
	assert.True(t, ok)

	hint, err := assistant.Auth().Hint(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Default password is 123", hint)
}

func TestAssistantExport(t *testing.T) {
	assistant := newTestAssistant(t)
	seedAssistant(t, assistant)
	ctx := context.Background()

	_, err := assistant.KnowledgeRepository().AddEntries(ctx, &core.KnowledgeEntry{
		Question: "where is the library",
		Answer:   "Block C, ground floor.",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, assistant.Export(ctx, &buf))

	var data ExportData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
	assert.Contains(t, data.Synonyms, "exam")
	assert.Contains(t, data.Categories, "exam_dates")
	require.Len(t, data.Documents, 1)
	require.Len(t, data.Knowledge, 1)
	assert.Equal(t, "where is the library", data.Knowledge[0].Question)
}
