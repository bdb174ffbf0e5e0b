package chunker

import "strings"

// tokensPerWord 每个单词的平均 token 数，经验值
const tokensPerWord = 1.3

// EstimateTokens 估算文本的 token 数量。
// 按空白切分单词数乘以固定系数后取整，只用于分块大小判断，
// 不保证与真实 tokenizer 的计数一致。
func EstimateTokens(text string) int {
	words := len(strings.Fields(text))
	return int(float64(words) * tokensPerWord)
}
