package game

// WordLength 目标单词长度
const WordLength = 5

// LetterStatus 单个字母的反馈状态
type LetterStatus string

const (
	StatusCorrect LetterStatus = "correct" // 字母正确且位置正确
	StatusPresent LetterStatus = "present" // 字母存在但位置不对
	StatusAbsent  LetterStatus = "absent"  // 字母不在目标单词中
)

// LetterFeedback 单个位置的反馈结果
type LetterFeedback struct {
	Letter   string       `json:"letter"`
	Status   LetterStatus `json:"status"`
	Position int          `json:"position"`
}

// Score 计算一次猜测相对目标单词的逐位反馈
//
// 三遍扫描，顺序决定重复字母的处理是否正确：
//  1. 精确匹配：guess[i] == target[i] 记为 correct，同时消耗两侧位置
//  2. 存在匹配：对未消耗的猜测位，从左到右找第一个未消耗且字母相同的
//     目标位，记为 present 并消耗该目标位
//  3. 其余位置记为 absent
//
// 消耗标记保证 present 的数量不超过目标中剩余的同字母个数，
// 例如 SPEED 对 ERASE 只会标记一个 E 为 present。
// 输入假定已通过 ValidateWord 校验。
func Score(guess, target string) []LetterFeedback {
	feedback := make([]LetterFeedback, WordLength)
	usedTarget := make([]bool, WordLength)
	usedGuess := make([]bool, WordLength)

	// 第一遍：精确匹配
	for i := 0; i < WordLength; i++ {
		if guess[i] == target[i] {
			feedback[i] = LetterFeedback{
				Letter:   string(guess[i]),
				Status:   StatusCorrect,
				Position: i,
			}
			usedTarget[i] = true
			usedGuess[i] = true
		}
	}

	// 第二遍：位置错误但字母存在
	for i := 0; i < WordLength; i++ {
		if usedGuess[i] {
			continue
		}

		for j := 0; j < WordLength; j++ {
			if usedTarget[j] {
				continue
			}

			if guess[i] == target[j] {
				feedback[i] = LetterFeedback{
					Letter:   string(guess[i]),
					Status:   StatusPresent,
					Position: i,
				}
				usedTarget[j] = true
				usedGuess[i] = true
				break
			}
		}
	}

	// 第三遍：剩余位置均为absent
	for i := 0; i < WordLength; i++ {
		if !usedGuess[i] {
			feedback[i] = LetterFeedback{
				Letter:   string(guess[i]),
				Status:   StatusAbsent,
				Position: i,
			}
		}
	}

	return feedback
}

// IsExactMatch 判断猜测是否完全命中目标单词
func IsExactMatch(guess, target string) bool {
	return guess == target
}
