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


// Command seeder initializes a SmartBuddy database with the default
// synonym table and, optionally, records from a YAML seed file. Running
// it against an existing database only fills in what is missing.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/ranji790/SmartBuddy"
	"github.com/ranji790/SmartBuddy/core"
	"github.com/ranji790/SmartBuddy/engine"
	"gopkg.in/yaml.v3"
)

// defaultSynonyms is the synonym table every fresh install starts with.
// Both "exam" and "exm" carry a group so misspelled queries expand to
// the same terms as correct ones.
var defaultSynonyms = map[string][]string{
	"dbms":     {"database management system", "database", "db"},
	"cs":       {"computer science", "comp sci"},
	"java":     {"programming", "coding"},
	"notes":    {"note", "material", "study material"},
	"exam":     {"test", "examination", "quiz", "exm", "exams", "tests"},
	"exm":      {"exam", "test", "examination", "quiz"},
	"faculty":  {"teacher", "professor", "staff", "instructor"},
	"schedule": {"timetable", "time", "timing", "class"},
}

// seedFile is the YAML shape accepted via -src.
type seedFile struct {
	Synonyms   map[string][]string     `yaml:"synonyms"`
	Categories map[string][]seedRecord `yaml:"categories"`
	Custom     map[string]string       `yaml:"custom_categories"`
	Knowledge  []seedEntry             `yaml:"knowledge_base"`
}

type seedRecord struct {
	Key      string   `yaml:"key"`
	Value    string   `yaml:"value"`
	Keywords []string `yaml:"keywords"`
}

type seedEntry struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

var (
	dbPath       = flag.String("db", "./smartbuddy_db", "path to the database directory")
	seedFileName = flag.String("src", "", "YAML file of seed data")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

// loadSeedFile parses a YAML seed file.
func loadSeedFile(filename string) (*seedFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, err
	}
	return &seed, nil
}

// seedSynonyms stores synonym groups, skipping words that already have one.
func seedSynonyms(ctx context.Context, assistant *smartbuddy.Assistant, groups map[string][]string) error {
	existing, err := assistant.SynonymRepository().GetSynonymTable(ctx)
	if err != nil {
		return err
	}

	seeded := 0
	for word, group := range groups {
		if _, ok := existing[word]; ok {
			continue
		}
		if err := assistant.SynonymRepository().SetSynonymGroup(ctx, word, group); err != nil {
			return err
		}
		seeded++
	}

	slog.Info("seeded synonym groups", "count", seeded, "skipped", len(groups)-seeded)
	return nil
}

// seedCategories stores records under their categories.
func seedCategories(ctx context.Context, assistant *smartbuddy.Assistant, categories map[string][]seedRecord) error {
	seeded := 0
	for category, records := range categories {
		for _, record := range records {
			err := assistant.InfoRepository().AddRecord(ctx, category, core.Record{
				Key:      record.Key,
				Value:    record.Value,
				Keywords: core.NormalizeKeywords(record.Keywords),
			})
			if err != nil {
				return err
			}
			seeded++
		}
	}

	slog.Info("seeded category records", "count", seeded)
	return nil
}

// seedCustom stores free-text custom categories.
func seedCustom(ctx context.Context, assistant *smartbuddy.Assistant, custom map[string]string) error {
	for name, text := range custom {
		if err := assistant.InfoRepository().SetCustomCategory(ctx, name, text); err != nil {
			return err
		}
	}

	slog.Info("seeded custom categories", "count", len(custom))
	return nil
}

// seedKnowledge stores curated question/answer pairs. Questions already
// present are skipped, compared by a content ID over the normalized text
// so reruns with reworded punctuation or casing stay idempotent.
func seedKnowledge(ctx context.Context, assistant *smartbuddy.Assistant, entries []seedEntry) error {
	existing, err := assistant.KnowledgeRepository().GetAllEntries(ctx)
	if err != nil {
		return err
	}
	seen := make(map[core.ID]struct{}, len(existing))
	for _, entry := range existing {
		seen[core.IDFromContent(engine.Normalize(entry.Question))] = struct{}{}
	}

	seeded := 0
	for _, entry := range entries {
		key := core.IDFromContent(engine.Normalize(entry.Question))
		if _, ok := seen[key]; ok {
			continue
		}
		_, err := assistant.KnowledgeRepository().AddEntries(ctx, &core.KnowledgeEntry{
			Question: entry.Question,
			Answer:   entry.Answer,
		})
		if err != nil {
			return err
		}
		seen[key] = struct{}{}
		seeded++
	}

	slog.Info("seeded knowledge entries", "count", seeded, "skipped", len(entries)-seeded)
	return nil
}

func main() {
	// Opening the database also seeds the default admin credentials.
	assistant, err := smartbuddy.Open(*dbPath)
	if err != nil {
		panic(err)
	}
	defer assistant.Close()

	ctx := context.Background()

	if err := seedSynonyms(ctx, assistant, defaultSynonyms); err != nil {
		panic(err)
	}

	if *seedFileName == "" {
		return
	}

	seed, err := loadSeedFile(*seedFileName)
	if err != nil {
		panic(err)
	}

	if err := seedSynonyms(ctx, assistant, seed.Synonyms); err != nil {
		panic(err)
	}
	if err := seedCategories(ctx, assistant, seed.Categories); err != nil {
		panic(err)
	}
	if err := seedCustom(ctx, assistant, seed.Custom); err != nil {
		panic(err)
	}
	if err := seedKnowledge(ctx, assistant, seed.Knowledge); err != nil {
		panic(err)
	}
}
