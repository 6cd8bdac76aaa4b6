package model

import (
	"encoding/json"
	"strings"
)

const (
	QuestionTypeSingle   = "single"
	QuestionTypeMultiple = "multiple"
)

// QuestionOption 选项，Key 为 A-E
type QuestionOption struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

// Question 题库中的一道认证考题
// swagger:model Question
type Question struct {
	UUIDBase
	Domain        string          `gorm:"size:128;index;not null" json:"domain"`
	Topic         string          `gorm:"size:64;index;not null" json:"topic"` // Topic.Code
	QuestionText  string          `gorm:"type:text;not null" json:"question_text"`
	Options       json.RawMessage `gorm:"type:json" json:"options"` // JSON: []QuestionOption
	CorrectAnswer string          `gorm:"size:32;not null" json:"correct_answer"`
	QuestionType  string          `gorm:"size:20;default:'single'" json:"question_type"` // single, multiple
	Explanation   string          `gorm:"type:text" json:"explanation"`
}

func (Question) TableName() string {
	return "questions"
}

// EffectiveType 历史数据缺少 question_type 时一律按单选处理
func (q *Question) EffectiveType() string {
	if q.QuestionType == "" {
		return QuestionTypeSingle
	}
	return q.QuestionType
}

// CorrectLetters 拆分正确答案编码（单选为单个字母，多选为逗号串）
func (q *Question) CorrectLetters() []string {
	return strings.Split(q.CorrectAnswer, ",")
}

// OptionList 反序列化选项，损坏的 JSON 返回空列表
func (q *Question) OptionList() []QuestionOption {
	var opts []QuestionOption
	if len(q.Options) == 0 {
		return opts
	}
	_ = json.Unmarshal(q.Options, &opts)
	return opts
}
