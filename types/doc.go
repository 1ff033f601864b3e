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

/*
Package types holds the configuration shared by the reference engine and the
lazyexpr command.

Configuration is plain structs with json and yaml tags. Defaults come from
NewConfig; files are layered over the defaults, so a file only needs the keys
it changes:

	log:
	  level: debug
	engine:
	  strictColumns: false
	  maxRows: 10000
*/
package types
