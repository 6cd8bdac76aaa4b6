package service

import (
	"math"
	"strings"

	"javacert_backend/internal/model"
)

// ValidationService 负责答案比对与轮次得分计算。
// 任何畸形输入都判为错误答案，绝不向上抛错，保证判分流程不中断。
type ValidationService struct{}

func NewValidationService() *ValidationService {
	return &ValidationService{}
}

// ValidateAnswer 按题型比对提交答案与正确答案编码。
// 单选：非空字符串做大小写敏感的精确比较；
// 多选：字符串数组与逗号编码做集合相等比较，顺序无关，不给部分分。
func (s *ValidationService) ValidateAnswer(submitted model.SubmittedAnswer, correctEncoding, questionType string) bool {
	if submitted.Invalid {
		return false
	}

	if questionType == "" {
		questionType = model.QuestionTypeSingle
	}

	switch questionType {
	case model.QuestionTypeSingle:
		if submitted.IsList || submitted.Value == "" {
			return false
		}
		return submitted.Value == correctEncoding

	case model.QuestionTypeMultiple:
		if !submitted.IsList || len(submitted.Values) == 0 {
			return false
		}
		correct := strings.Split(correctEncoding, ",")

		correctSet := make(map[string]bool, len(correct))
		for _, letter := range correct {
			correctSet[letter] = true
		}
		submittedSet := make(map[string]bool, len(submitted.Values))
		for _, letter := range submitted.Values {
			submittedSet[letter] = true
		}

		if len(submittedSet) != len(correctSet) {
			return false
		}
		for letter := range correctSet {
			if !submittedSet[letter] {
				return false
			}
		}
		return true
	}

	// 未知题型一律判错
	return false
}

// ScoreRound 汇总一轮判分结果
func (s *ValidationService) ScoreRound(results []bool) (correct, total, percentage int) {
	total = len(results)
	for _, ok := range results {
		if ok {
			correct++
		}
	}
	percentage = RoundPercentage(correct, total)
	return
}

// RoundPercentage 四舍五入的百分比，total 为 0 时返回 0
func RoundPercentage(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
