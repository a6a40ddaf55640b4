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


// Package engine implements the query-understanding and ranking core.
//
// The Router type drives a multi-stage pipeline over read-only snapshots:
//   - A global scored pass across every informational category
//   - Intent classification with a fixed priority order
//   - Category-scoped record matching, document ranking, or static handlers
//   - A knowledge-base fallback for unrecognized queries
//
// Every stage builds on the same three primitives: text normalization,
// single-hop synonym expansion, and a Ratcliff/Obershelp similarity ratio.
// The engine performs no I/O of its own; recording unanswered queries is
// delegated to an injected recorder.
package engine
