package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NormalizeTag(t *testing.T) {
	cases := []struct {
		in   string
		want Tag
	}{
		{"PRODUCE", TagProduce},
		{"produce", TagProduce},
		{"  Dairy ", TagDairy},
		{"", TagOther},
		{"GADGETS", TagOther},
		{"OTHER", TagOther},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeTag(tc.in), "input %q", tc.in)
	}
}
