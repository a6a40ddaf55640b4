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


package auth

import "errors"

var (
	// ErrPasswordTooShort indicates a password below the minimum length.
	ErrPasswordTooShort = errors.New("password too short")

	// ErrMalformedHash indicates a stored hash that cannot be parsed.
	ErrMalformedHash = errors.New("malformed password hash")

	// ErrRepositoryRequired indicates a missing auth repository.
	ErrRepositoryRequired = errors.New("auth repository is required")
)
