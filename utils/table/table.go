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

package table

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// minWidth 列的最小宽度
const minWidth = 4

// Write 按给定列顺序把记录写成文本表格，末尾附带行数统计。
// 空值显示为 null，字符串不加引号。
func Write(w io.Writer, names []string, records [][]interface{}) error {
	if len(names) == 0 {
		_, err := fmt.Fprintf(w, "(%d rows)\n", len(records))
		return err
	}

	cells := make([][]string, len(records))
	widths := make([]int, len(names))
	for i, name := range names {
		widths[i] = max(utf8.RuneCountInString(name), minWidth)
	}
	for r, record := range records {
		cells[r] = make([]string, len(names))
		for i := range names {
			var v interface{}
			if i < len(record) {
				v = record[i]
			}
			cells[r][i] = FormatValue(v)
			widths[i] = max(widths[i], utf8.RuneCountInString(cells[r][i]))
		}
	}

	var sb strings.Builder
	writeBorder(&sb, widths)
	writeRow(&sb, widths, names)
	writeBorder(&sb, widths)
	for _, row := range cells {
		writeRow(&sb, widths, row)
	}
	writeBorder(&sb, widths)
	fmt.Fprintf(&sb, "(%d rows)\n", len(records))

	_, err := io.WriteString(w, sb.String())
	return err
}

// FormatValue 单元格的文本表示
func FormatValue(v interface{}) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%v", v)
}

func writeBorder(sb *strings.Builder, widths []int) {
	sb.WriteString("+")
	for _, width := range widths {
		sb.WriteString(strings.Repeat("-", width+2))
		sb.WriteString("+")
	}
	sb.WriteString("\n")
}

func writeRow(sb *strings.Builder, widths []int, cells []string) {
	sb.WriteString("|")
	for i, cell := range cells {
		pad := widths[i] - utf8.RuneCountInString(cell)
		sb.WriteString(" ")
		sb.WriteString(cell)
		sb.WriteString(strings.Repeat(" ", pad))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
}
