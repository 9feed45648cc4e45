package dao

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameLikePattern(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"", "%"},
		{"肉", "%肉%"},
		{"汉堡", "%汉%堡%"},
		// 按字符而不是字节拆分
		{"铁鹅", "%铁%鹅%"},
		{"a锅b", "%a%锅%b%"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, nameLikePattern(tt.query), "query %q", tt.query)
	}
}
