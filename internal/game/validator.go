package game

// ValidateWord 校验单词形状：恰好5个字符且全部为大写字母A-Z
func ValidateWord(word string) bool {
	if len(word) != WordLength {
		return false
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'A' || word[i] > 'Z' {
			return false
		}
	}
	return true
}
