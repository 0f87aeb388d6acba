package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractExports(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "type qualifier stripped",
			src:  `export { Button, buttonVariants, type ButtonProps } from "./Button";`,
			want: []string{"Button", "buttonVariants", "ButtonProps"},
		},
		{
			name: "type-only statement",
			src:  `export type { DialogProps, DialogContentProps } from "./Dialog";`,
			want: []string{"DialogProps", "DialogContentProps"},
		},
		{
			name: "multi-line with trailing comma",
			src:  "export {\n  Tabs,\n  TabsList,\n  TabsTrigger,\n} from \"./Tabs\";\n",
			want: []string{"Tabs", "TabsList", "TabsTrigger"},
		},
		{
			name: "alias yields exported name",
			src:  `export { default as Icon, iconNames as names } from "./Icon";`,
			want: []string{"Icon", "names"},
		},
		{
			name: "statements accumulate with duplicates",
			src: `export { Card } from "./Card";
export { CardHeader } from "./CardHeader";
export { Card } from "./Card";`,
			want: []string{"Card", "CardHeader", "Card"},
		},
		{
			name: "local export without from",
			src:  "const a = 1;\nexport { a };",
			want: []string{"a"},
		},
		{
			name: "empty braces",
			src:  `export {};`,
			want: []string{},
		},
		{
			name: "star and declaration exports ignored",
			src:  "export * from \"./Button\";\nexport const Spinner = () => null;\n",
			want: []string{},
		},
		{
			name: "no exports",
			src:  "import React from \"react\";\n",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractExports(tt.src)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}
