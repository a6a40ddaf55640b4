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


package engine

import "errors"

var (
	// ErrRecorderRequired is returned when an unanswered-query recorder is not provided.
	ErrRecorderRequired = errors.New("unanswered recorder required")

	// ErrSnapshotRequired is returned when a nil snapshot is passed to Respond.
	ErrSnapshotRequired = errors.New("snapshot required")
)
