package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantSame bool
	}{
		{
			name:     "same content produces same ID",
			content:  "test content",
			wantSame: true,
		},
		{
			name:     "empty string",
			content:  "",
			wantSame: true,
		},
		{
			name:     "long content",
			content:  "This is a much longer piece of content that should still hash consistently",
			wantSame: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if tt.wantSame && id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("content1")
	id2 := IDFromContent("content2")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestChatSession_MessageCount(t *testing.T) {
	tests := []struct {
		name    string
		session ChatSession
		want    int
	}{
		{
			name:    "empty session",
			session: ChatSession{},
			want:    0,
		},
		{
			name: "two messages",
			session: ChatSession{
				Messages: []ChatMessage{
					{Role: RoleUser, Text: "hi"},
					{Role: RoleAssistant, Text: "hello"},
				},
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.session.MessageCount()
			if got != tt.want {
				t.Errorf("ChatSession.MessageCount() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResponseConstructors(t *testing.T) {
	doc := &Document{Id: 1, DisplayName: "DBMS Unit 1", Filename: "dbms.pdf"}

	text := TextResponse("hello")
	if text.Kind != ResponseText || text.Message != "hello" {
		t.Errorf("TextResponse() = %+v", text)
	}

	download := DownloadResponse("DBMS Unit 1 notes:", doc)
	if download.Kind != ResponseDocumentDownload || download.Document != doc {
		t.Errorf("DownloadResponse() = %+v", download)
	}

	list := ListResponse("Available notes:", []*Document{doc})
	if list.Kind != ResponseDocumentList || len(list.Documents) != 1 {
		t.Errorf("ListResponse() = %+v", list)
	}
}
