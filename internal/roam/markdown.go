package roam

import (
	"regexp"
	"strings"
)

// pageLinkPattern matches Roam-style [[Page]] links.
var pageLinkPattern = regexp.MustCompile(`\[\[([^\]]+)\]\]`)

// renderBlockText converts a single block's text to markdown, rewriting
// [[Page]] links into [Page](Page) form.
func renderBlockText(text string) string {
	return pageLinkPattern.ReplaceAllString(text, `[$1]($1)`)
}

// renderBlockTree renders a block and its children as markdown, indenting
// each child level by two spaces.
func renderBlockTree(b pulledBlock) string {
	var sb strings.Builder
	sb.WriteString(renderBlockText(b.String))

	for _, child := range b.Children {
		childContent := renderBlockTree(child)
		for _, line := range strings.Split(childContent, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			sb.WriteString("\n  ")
			sb.WriteString(line)
		}
	}

	return strings.TrimSpace(sb.String())
}
