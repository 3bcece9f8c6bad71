// Copyright 2025 Poiesic Systems
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

// Package search ranks FAQ entries against a query embedding and assigns a
// confidence tier to the best match.
//
// Ranking is brute force: every entry with a vector is scored by cosine
// similarity, sorted descending with ties kept in corpus order, and cut to
// the top K. Entries whose vector is empty are skipped.
//
// Classification compares the top similarity with two thresholds:
//
//	top <  Low          -> low
//	Low <= top <= High  -> medium
//	top >  High         -> high
//
// Both boundaries are inclusive on the medium side.
package search
