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

// Command lazyexpr builds expression trees from declarative documents and
// evaluates them with the reference engine.
//
//	lazyexpr build rules.yaml
//	lazyexpr eval rules.yaml --rows rows.json --format json
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd, opts := newRoot()
	if err := runRoot(cmd, opts); err != nil {
		// ExitError 已经按输出格式报告过
		var exitErr *ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(exitCode(err))
	}
}
