// Copyright 2026 The SmartBuddy Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/ranji790/SmartBuddy"
	"github.com/ranji790/SmartBuddy/core"
	"github.com/ranji790/SmartBuddy/ingest"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "smartbuddy",
		Usage: "Campus assistant answering student queries from curated data",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to BadgerDB database directory",
				Value:   "./smartbuddy_db",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "ask",
				Usage:     "Ask a single question and print the reply",
				ArgsUsage: "QUERY",
				Action:    askCommand,
			},
			{
				Name:   "chat",
				Usage:  "Start an interactive chat session",
				Action: chatCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "session",
						Usage: "Resume an existing session by ID",
					},
				},
			},
			{
				Name:  "notes",
				Usage: "Manage uploaded study material",
				Subcommands: []*cli.Command{
					{
						Name:   "add",
						Usage:  "Upload a document",
						Action: notesAddCommand,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "file",
								Aliases:  []string{"f"},
								Usage:    "Path to the file to upload",
								Required: true,
							},
							&cli.StringFlag{
								Name:  "name",
								Usage: "Display name (derived from the filename if omitted)",
							},
							&cli.StringSliceFlag{
								Name:    "keyword",
								Aliases: []string{"k"},
								Usage:   "Matching keyword (repeatable)",
							},
							&cli.StringFlag{
								Name:  "upload-dir",
								Usage: "Directory where uploads are stored",
								Value: "./uploads",
							},
						},
					},
					{
						Name:   "list",
						Usage:  "List all documents, newest first",
						Action: notesListCommand,
					},
					{
						Name:   "update",
						Usage:  "Update a document's display name or keywords",
						Action: notesUpdateCommand,
						Flags: []cli.Flag{
							&cli.Uint64Flag{
								Name:     "id",
								Usage:    "Document ID",
								Required: true,
							},
							&cli.StringFlag{
								Name:  "name",
								Usage: "New display name",
							},
							&cli.StringSliceFlag{
								Name:    "keyword",
								Aliases: []string{"k"},
								Usage:   "Replacement keyword (repeatable)",
							},
						},
					},
					{
						Name:   "delete",
						Usage:  "Delete a document by ID",
						Action: notesDeleteCommand,
						Flags: []cli.Flag{
							&cli.Uint64Flag{
								Name:     "id",
								Usage:    "Document ID",
								Required: true,
							},
						},
					},
				},
			},
			{
				Name:  "info",
				Usage: "Manage categorized information records",
				Subcommands: []*cli.Command{
					{
						Name:   "add",
						Usage:  "Add or replace a record in a category",
						Action: infoAddCommand,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "category",
								Aliases:  []string{"c"},
								Usage:    "Category name (exam_dates, faculty, schedule, events, ...)",
								Required: true,
							},
							&cli.StringFlag{
								Name:     "key",
								Usage:    "Record key",
								Required: true,
							},
							&cli.StringFlag{
								Name:     "value",
								Usage:    "Record value",
								Required: true,
							},
							&cli.StringSliceFlag{
								Name:    "keyword",
								Aliases: []string{"k"},
								Usage:   "Matching keyword (repeatable)",
							},
						},
					},
					{
						Name:   "delete",
						Usage:  "Delete a record by category and key",
						Action: infoDeleteCommand,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "category",
								Aliases:  []string{"c"},
								Usage:    "Category name",
								Required: true,
							},
							&cli.StringFlag{
								Name:     "key",
								Usage:    "Record key",
								Required: true,
							},
						},
					},
					{
						Name:   "list",
						Usage:  "List every category and its records",
						Action: infoListCommand,
					},
					{
						Name:   "set-custom",
						Usage:  "Add or replace a free-text custom category",
						Action: infoSetCustomCommand,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "name",
								Usage:    "Custom category name",
								Required: true,
							},
							&cli.StringFlag{
								Name:     "text",
								Usage:    "Free-text content returned on a match",
								Required: true,
							},
						},
					},
					{
						Name:   "delete-custom",
						Usage:  "Delete a custom category by name",
						Action: infoDeleteCustomCommand,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "name",
								Usage:    "Custom category name",
								Required: true,
							},
						},
					},
				},
			},
			{
				Name:  "synonyms",
				Usage: "Manage the synonym table used for query expansion",
				Subcommands: []*cli.Command{
					{
						Name:   "set",
						Usage:  "Set the synonym group for a canonical word",
						Action: synonymsSetCommand,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "word",
								Usage:    "Canonical word",
								Required: true,
							},
							&cli.StringSliceFlag{
								Name:     "synonym",
								Aliases:  []string{"s"},
								Usage:    "Synonym for the word (repeatable)",
								Required: true,
							},
						},
					},
					{
						Name:   "delete",
						Usage:  "Delete a synonym group by canonical word",
						Action: synonymsDeleteCommand,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "word",
								Usage:    "Canonical word",
								Required: true,
							},
						},
					},
					{
						Name:   "list",
						Usage:  "Print the full synonym table",
						Action: synonymsListCommand,
					},
				},
			},
			{
				Name:  "kb",
				Usage: "Manage the curated question/answer knowledge base",
				Subcommands: []*cli.Command{
					{
						Name:   "add",
						Usage:  "Add a question/answer pair",
						Action: kbAddCommand,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "question",
								Aliases:  []string{"q"},
								Usage:    "Question text",
								Required: true,
							},
							&cli.StringFlag{
								Name:     "answer",
								Aliases:  []string{"a"},
								Usage:    "Answer text",
								Required: true,
							},
						},
					},
					{
						Name:   "update",
						Usage:  "Update a question/answer pair",
						Action: kbUpdateCommand,
						Flags: []cli.Flag{
							&cli.Uint64Flag{
								Name:     "id",
								Usage:    "Knowledge entry ID",
								Required: true,
							},
							&cli.StringFlag{
								Name:    "question",
								Aliases: []string{"q"},
								Usage:   "New question text",
							},
							&cli.StringFlag{
								Name:    "answer",
								Aliases: []string{"a"},
								Usage:   "New answer text",
							},
						},
					},
					{
						Name:   "delete",
						Usage:  "Delete a knowledge entry by ID",
						Action: kbDeleteCommand,
						Flags: []cli.Flag{
							&cli.Uint64Flag{
								Name:     "id",
								Usage:    "Knowledge entry ID",
								Required: true,
							},
						},
					},
					{
						Name:   "list",
						Usage:  "List all knowledge entries, oldest first",
						Action: kbListCommand,
					},
					{
						Name:   "unanswered",
						Usage:  "List queries the assistant could not answer",
						Action: kbUnansweredCommand,
					},
					{
						Name:   "convert",
						Usage:  "Convert an unanswered query into a knowledge entry",
						Action: kbConvertCommand,
						Flags: []cli.Flag{
							&cli.Uint64Flag{
								Name:     "id",
								Usage:    "Unanswered query ID",
								Required: true,
							},
							&cli.StringFlag{
								Name:     "answer",
								Aliases:  []string{"a"},
								Usage:    "Answer text",
								Required: true,
							},
						},
					},
					{
						Name:   "discard",
						Usage:  "Delete an unanswered query without answering it",
						Action: kbDiscardCommand,
						Flags: []cli.Flag{
							&cli.Uint64Flag{
								Name:     "id",
								Usage:    "Unanswered query ID",
								Required: true,
							},
						},
					},
				},
			},
			{
				Name:  "sessions",
				Usage: "Manage stored chat sessions",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "List chat sessions, most recently active first",
						Action: sessionsListCommand,
					},
					{
						Name:   "rename",
						Usage:  "Rename a chat session",
						Action: sessionsRenameCommand,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "id",
								Usage:    "Session ID",
								Required: true,
							},
							&cli.StringFlag{
								Name:     "name",
								Usage:    "New session name",
								Required: true,
							},
						},
					},
					{
						Name:   "delete",
						Usage:  "Delete a chat session",
						Action: sessionsDeleteCommand,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "id",
								Usage:    "Session ID",
								Required: true,
							},
						},
					},
				},
			},
			{
				Name:  "admin",
				Usage: "Administrative operations",
				Subcommands: []*cli.Command{
					{
						Name:   "set-password",
						Usage:  "Change the admin password",
						Action: adminSetPasswordCommand,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "current",
								Usage:    "Current admin password",
								Required: true,
							},
							&cli.StringFlag{
								Name:     "password",
								Usage:    "New admin password",
								Required: true,
							},
							&cli.StringFlag{
								Name:  "hint",
								Usage: "Password hint shown on the login screen",
							},
						},
					},
					{
						Name:   "export",
						Usage:  "Export all stored data as JSON",
						Action: adminExportCommand,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:    "out",
								Aliases: []string{"o"},
								Usage:   "Output file (stdout if omitted)",
							},
						},
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openAssistant(c *cli.Context) (*smartbuddy.Assistant, error) {
	assistant, err := smartbuddy.Open(c.String("db"))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return assistant, nil
}

func askCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query is required")
	}

	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	resp, err := assistant.Ask(context.Background(), query)
	if err != nil {
		return fmt.Errorf("failed to answer query: %w", err)
	}

	printResponse(resp)
	return nil
}

func chatCommand(c *cli.Context) error {
	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	ctx := context.Background()

	sessionID := c.String("session")
	if sessionID == "" {
		session, err := assistant.ChatRepository().CreateSession(ctx)
		if err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}
		sessionID = session.Id
		fmt.Printf("Started session %s. Type \"exit\" to leave.\n", sessionID)
	} else {
		session, err := assistant.ChatRepository().GetSession(ctx, sessionID)
		if err != nil {
			return fmt.Errorf("failed to load session: %w", err)
		}
		fmt.Printf("Resumed session %q. Type \"exit\" to leave.\n", session.Name)
		for _, msg := range session.Messages {
			if msg.Role == core.RoleUser {
				fmt.Printf("> %s\n", msg.Text)
			} else {
				fmt.Println(msg.Text)
			}
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			return nil
		}
		if line == "" {
			fmt.Print("> ")
			continue
		}

		resp, err := assistant.AskInSession(ctx, sessionID, line)
		if err != nil {
			return fmt.Errorf("failed to answer query: %w", err)
		}
		printResponse(resp)
		fmt.Print("> ")
	}
	return scanner.Err()
}

func notesAddCommand(c *cli.Context) error {
	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	pipeline, err := assistant.NewIngestionPipeline(c.String("upload-dir"))
	if err != nil {
		return fmt.Errorf("failed to create ingestion pipeline: %w", err)
	}
	defer pipeline.Release()

	doc, err := pipeline.Ingest(context.Background(), ingestRequest(c))
	if err != nil {
		return fmt.Errorf("failed to ingest document: %w", err)
	}

	fmt.Printf("Added document %d: %s (%s)\n", doc.Id, doc.DisplayName, doc.Filename)
	return nil
}

func notesListCommand(c *cli.Context) error {
	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	docs, err := assistant.DocumentRepository().GetAllDocuments(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		fmt.Println("No documents stored.")
		return nil
	}
	for _, doc := range docs {
		fmt.Printf("%d\t%s\t%s\t%s\n", doc.Id, doc.DisplayName, doc.Filename,
			doc.UploadedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func notesUpdateCommand(c *cli.Context) error {
	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	ctx := context.Background()
	id := core.ID(c.Uint64("id"))

	doc, err := assistant.DocumentRepository().GetDocument(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load document %d: %w", id, err)
	}
	if c.IsSet("name") {
		doc.DisplayName = c.String("name")
	}
	if c.IsSet("keyword") {
		doc.Keywords = core.NormalizeKeywords(c.StringSlice("keyword"))
	}

	if _, err := assistant.DocumentRepository().UpdateDocuments(ctx, doc); err != nil {
		return fmt.Errorf("failed to update document %d: %w", id, err)
	}

	fmt.Printf("Updated document %d\n", id)
	return nil
}

func notesDeleteCommand(c *cli.Context) error {
	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	ctx := context.Background()
	id := core.ID(c.Uint64("id"))

	doc, err := assistant.DocumentRepository().GetDocument(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load document %d: %w", id, err)
	}
	if err := assistant.DocumentRepository().DeleteDocuments(ctx, id); err != nil {
		return fmt.Errorf("failed to delete document %d: %w", id, err)
	}
	if doc.ContentPath != "" {
		if err := os.Remove(doc.ContentPath); err != nil && !os.IsNotExist(err) {
			slog.Warn("stored file could not be removed", "path", doc.ContentPath, "err", err)
		}
	}

	fmt.Printf("Deleted document %d\n", id)
	return nil
}

func infoAddCommand(c *cli.Context) error {
	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	record := core.Record{
		Key:      c.String("key"),
		Value:    c.String("value"),
		Keywords: core.NormalizeKeywords(c.StringSlice("keyword")),
	}
	if err := assistant.InfoRepository().AddRecord(context.Background(), c.String("category"), record); err != nil {
		return fmt.Errorf("failed to add record: %w", err)
	}

	fmt.Printf("Added record %q to %s\n", record.Key, c.String("category"))
	return nil
}

func infoDeleteCommand(c *cli.Context) error {
	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	category := c.String("category")
	key := c.String("key")
	if err := assistant.InfoRepository().DeleteRecord(context.Background(), category, key); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	fmt.Printf("Deleted record %q from %s\n", key, category)
	return nil
}

func infoListCommand(c *cli.Context) error {
	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	set, err := assistant.InfoRepository().GetCategorySet(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}

	for _, category := range sortedCategories(set.Categories) {
		fmt.Printf("%s:\n", category.Name)
		for _, record := range category.Records {
			fmt.Printf("  %s: %s\n", record.Key, record.Value)
		}
	}
	for _, name := range sortedKeys(set.Custom) {
		fmt.Printf("%s (custom):\n  %s\n", name, set.Custom[name])
	}
	return nil
}

func infoSetCustomCommand(c *cli.Context) error {
	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	name := c.String("name")
	if err := assistant.InfoRepository().SetCustomCategory(context.Background(), name, c.String("text")); err != nil {
		return fmt.Errorf("failed to set custom category: %w", err)
	}

	fmt.Printf("Set custom category %q\n", name)
	return nil
}

func infoDeleteCustomCommand(c *cli.Context) error {
	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	name := c.String("name")
	if err := assistant.InfoRepository().DeleteCustomCategory(context.Background(), name); err != nil {
		return fmt.Errorf("failed to delete custom category: %w", err)
	}

	fmt.Printf("Deleted custom category %q\n", name)
	return nil
}

func synonymsSetCommand(c *cli.Context) error {
	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	word := c.String("word")
	group := c.StringSlice("synonym")
	if err := assistant.SynonymRepository().SetSynonymGroup(context.Background(), word, group); err != nil {
		return fmt.Errorf("failed to set synonym group: %w", err)
	}

	fmt.Printf("Set synonyms for %q: %s\n", word, strings.Join(group, ", "))
	return nil
}

func synonymsDeleteCommand(c *cli.Context) error {
	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	word := c.String("word")
	if err := assistant.SynonymRepository().DeleteSynonymGroup(context.Background(), word); err != nil {
		return fmt.Errorf("failed to delete synonym group: %w", err)
	}

	fmt.Printf("Deleted synonyms for %q\n", word)
	return nil
}

func synonymsListCommand(c *cli.Context) error {
	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	table, err := assistant.SynonymRepository().GetSynonymTable(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load synonym table: %w", err)
	}

	for _, word := range sortedKeys(table) {
		fmt.Printf("%s: %s\n", word, strings.Join(table[word], ", "))
	}
	return nil
}

func kbAddCommand(c *cli.Context) error {
	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	entries, err := assistant.KnowledgeRepository().AddEntries(context.Background(), &core.KnowledgeEntry{
		Question: c.String("question"),
		Answer:   c.String("answer"),
	})
	if err != nil {
		return fmt.Errorf("failed to add knowledge entry: %w", err)
	}

	fmt.Printf("Added knowledge entry %d\n", entries[0].Id)
	return nil
}

func kbUpdateCommand(c *cli.Context) error {
	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	ctx := context.Background()
	id := core.ID(c.Uint64("id"))

	entry, err := assistant.KnowledgeRepository().GetEntry(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load knowledge entry %d: %w", id, err)
	}
	if c.IsSet("question") {
		entry.Question = c.String("question")
	}
	if c.IsSet("answer") {
		entry.Answer = c.String("answer")
	}

	if _, err := assistant.KnowledgeRepository().UpdateEntries(ctx, entry); err != nil {
		return fmt.Errorf("failed to update knowledge entry %d: %w", id, err)
	}

	fmt.Printf("Updated knowledge entry %d\n", id)
	return nil
}

func kbDeleteCommand(c *cli.Context) error {
	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	id := core.ID(c.Uint64("id"))
	if err := assistant.KnowledgeRepository().DeleteEntries(context.Background(), id); err != nil {
		return fmt.Errorf("failed to delete knowledge entry %d: %w", id, err)
	}

	fmt.Printf("Deleted knowledge entry %d\n", id)
	return nil
}

func kbListCommand(c *cli.Context) error {
	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	entries, err := assistant.KnowledgeRepository().GetAllEntries(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list knowledge entries: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("No knowledge entries stored.")
		return nil
	}
	for _, entry := range entries {
		fmt.Printf("%d\tQ: %s\n\tA: %s\n", entry.Id, entry.Question, entry.Answer)
	}
	return nil
}

func kbUnansweredCommand(c *cli.Context) error {
	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	queries, err := assistant.KnowledgeRepository().GetUnanswered(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list unanswered queries: %w", err)
	}

	if len(queries) == 0 {
		fmt.Println("No unanswered queries.")
		return nil
	}
	for _, query := range queries {
		fmt.Printf("%d\t%s\t%s\n", query.Id, query.Query,
			query.AskedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func kbConvertCommand(c *cli.Context) error {
	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	id := core.ID(c.Uint64("id"))
	entry, err := assistant.KnowledgeRepository().ConvertUnanswered(context.Background(), id, c.String("answer"))
	if err != nil {
		return fmt.Errorf("failed to convert unanswered query %d: %w", id, err)
	}

	fmt.Printf("Converted query %d into knowledge entry %d\n", id, entry.Id)
	return nil
}

func kbDiscardCommand(c *cli.Context) error {
	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	id := core.ID(c.Uint64("id"))
	if err := assistant.KnowledgeRepository().DeleteUnanswered(context.Background(), id); err != nil {
		return fmt.Errorf("failed to discard unanswered query %d: %w", id, err)
	}

	fmt.Printf("Discarded unanswered query %d\n", id)
	return nil
}

func sessionsListCommand(c *cli.Context) error {
	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	sessions, err := assistant.ChatRepository().GetSessions(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if len(sessions) == 0 {
		fmt.Println("No chat sessions stored.")
		return nil
	}
	for _, session := range sessions {
		fmt.Printf("%s\t%s\t%d messages\t%s\n", session.Id, session.Name,
			session.MessageCount(), session.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func sessionsRenameCommand(c *cli.Context) error {
	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	id := c.String("id")
	if err := assistant.ChatRepository().RenameSession(context.Background(), id, c.String("name")); err != nil {
		return fmt.Errorf("failed to rename session %s: %w", id, err)
	}

	fmt.Printf("Renamed session %s\n", id)
	return nil
}

func sessionsDeleteCommand(c *cli.Context) error {
	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	id := c.String("id")
	if err := assistant.ChatRepository().DeleteSession(context.Background(), id); err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}

	fmt.Printf("Deleted session %s\n", id)
	return nil
}

func adminSetPasswordCommand(c *cli.Context) error {
	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	ctx := context.Background()

	ok, err := assistant.Auth().Login(ctx, c.String("current"))
	if err != nil {
		return fmt.Errorf("failed to verify current password: %w", err)
	}
	if !ok {
		return fmt.Errorf("current password is incorrect")
	}

	if err := assistant.Auth().SetPassword(ctx, c.String("password"), c.String("hint")); err != nil {
		return fmt.Errorf("failed to set password: %w", err)
	}

	fmt.Println("Password updated")
	return nil
}

func adminExportCommand(c *cli.Context) error {
	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	out := os.Stdout
	if path := c.String("out"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := assistant.Export(context.Background(), out); err != nil {
		return fmt.Errorf("failed to export data: %w", err)
	}
	return nil
}

// printResponse renders a response for the terminal, matching over the
// response kind.
func printResponse(resp *core.Response) {
	fmt.Println(resp.Message)
	switch resp.Kind {
	case core.ResponseDocumentDownload:
		fmt.Printf("  -> %s\n", resp.Document.Filename)
	case core.ResponseDocumentList:
		for _, doc := range resp.Documents {
			fmt.Printf("  %d. %s (%s)\n", doc.Id, doc.DisplayName, doc.Filename)
		}
	}
}

func ingestRequest(c *cli.Context) ingest.Request {
	return ingest.Request{
		SourcePath:  c.String("file"),
		DisplayName: c.String("name"),
		Keywords:    c.StringSlice("keyword"),
	}
}

// sortedCategories returns the categories ordered by name.
func sortedCategories(categories map[string]core.Category) []core.Category {
	result := make([]core.Category, 0, len(categories))
	for _, name := range sortedKeys(categories) {
		result = append(result, categories[name])
	}
	return result
}

// sortedKeys returns the map keys in sorted order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Create handler with the specified level
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))

	return nil
}
