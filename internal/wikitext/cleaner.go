// Package wikitext 提供 wiki 标记清洗，将原始条目文本转换为接近纯文本的形式。
// 清洗是启发式的文本替换，不做完整的 wikitext 语法解析。
package wikitext

import (
	"regexp"
	"strings"
)

// 替换规则按顺序执行，后面的规则假定前面的已经生效
var (
	reTemplate  = regexp.MustCompile(`(?s)\{\{.*?\}\}`)
	rePipedLink = regexp.MustCompile(`\[\[[^\]|]*\|([^\]]*)\]\]`)
	rePlainLink = regexp.MustCompile(`\[\[([^\]]*)\]\]`)
	reRef       = regexp.MustCompile(`(?s)<ref.*?</ref>`)
	reComment   = regexp.MustCompile(`(?s)<!--.*?-->`)
	reFileLink  = regexp.MustCompile(`(?s)\[\[(?:File|Image):.*?\]\]`)
	reBlankRuns = regexp.MustCompile(`\n{3,}`)
	reSpaceRuns = regexp.MustCompile(` {2,}`)
)

// Clean 清洗 wiki 标记，返回接近纯文本的结果。
// 纯函数：确定性、不会失败、对已清洗文本幂等。
func Clean(text string) string {
	if text == "" {
		return ""
	}

	text = reTemplate.ReplaceAllString(text, "")
	text = rePipedLink.ReplaceAllString(text, "$1")
	text = rePlainLink.ReplaceAllString(text, "$1")
	text = reRef.ReplaceAllString(text, "")
	text = reComment.ReplaceAllString(text, "")
	text = reFileLink.ReplaceAllString(text, "")
	text = reBlankRuns.ReplaceAllString(text, "\n\n")
	text = reSpaceRuns.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}
