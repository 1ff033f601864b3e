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
Package expr defines the immutable expression tree handed to a columnar query engine.

The package only constructs trees; it never evaluates them. Every constructor
returns a new value and no node is modified after creation, so a finished tree
can be shared between goroutines without locking.

# Node Types

	Column      - a single column by name, "*" wildcard or "^...$" regex
	Columns     - an explicit ordered list of column names
	Literal     - a typed scalar (null, bool, float64, utf8)
	Conditional - ordered (predicate, result) branches plus a fallback
	Binary      - comparison and boolean combinators used to build predicates
	Count       - engine-native row count
	First, Last - engine-native first / last column

Column names are kept verbatim. Interpreting wildcards, regular expressions and
lists against a schema is the engine's job.

# Conditionals

A two-armed ternary and an N-armed chain share one representation:

	expr.Ternary(p, t, o)                                  // 1 branch
	expr.NewConditional([]expr.Branch{{p1, t1}, {p2, t2}}, o) // 2 branches

Branches are evaluated by the engine in declaration order, first match wins.
Nothing here sorts or deduplicates them.

# Rendering

Every node implements fmt.Stringer and json.Marshaler:

	when(col("a")).then(lit(1)).otherwise(lit(null))
	{"otherwise":{"literal":{"type":"null","value":null}},"when":[...]}
*/
package expr
