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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWrite 测试表格输出
func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, []string{"name", "temp"}, [][]interface{}{
		{"aa", 35},
		{"bbbbbb", nil},
	})
	require.NoError(t, err)

	expected := "" +
		"+--------+------+\n" +
		"| name   | temp |\n" +
		"+--------+------+\n" +
		"| aa     | 35   |\n" +
		"| bbbbbb | null |\n" +
		"+--------+------+\n" +
		"(2 rows)\n"
	assert.Equal(t, expected, buf.String())
}

// TestWriteEmpty 测试空表
func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil, nil))
	assert.Equal(t, "(0 rows)\n", buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, []string{"a"}, nil))
	assert.Equal(t, "+------+\n| a    |\n+------+\n+------+\n(0 rows)\n", buf.String())
}

// TestWriteShortRecord 记录比列少时补空值
func TestWriteShortRecord(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []string{"a", "b"}, [][]interface{}{{1}}))
	assert.Contains(t, buf.String(), "| 1    | null |")
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "null", FormatValue(nil))
	assert.Equal(t, "3.5", FormatValue(3.5))
	assert.Equal(t, "true", FormatValue(true))
	assert.Equal(t, "hot", FormatValue("hot"))
}
