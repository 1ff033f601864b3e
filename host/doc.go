/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package host models runtime-tagged values handed in by a host environment.
//
// A Value is a closed tagged union: Null, Undefined, Bool, Number, BigInt,
// String, Array, Object and Other. How the value crossed the language
// boundary does not matter here; FromGo and Decode cover the two bridges this
// repository uses (plain Go values and JSON text).
package host
