package model

import "encoding/json"

// SubmittedAnswer 客户端提交的答案，单选为字符串，多选为字符串数组。
// 其他任何 JSON 形态都标记为无效，由校验层判错而不是报错。
type SubmittedAnswer struct {
	Value   string
	Values  []string
	IsList  bool
	Invalid bool
}

func (a *SubmittedAnswer) UnmarshalJSON(data []byte) error {
	// json 对 null 解到 string/[]string 都是无错误的空操作，要先拦下
	if string(data) == "null" {
		a.Invalid = true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		a.Value = s
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		a.Values = list
		a.IsList = true
		return nil
	}

	// null、数字、对象等一律视为无效提交
	a.Invalid = true
	return nil
}

func (a SubmittedAnswer) MarshalJSON() ([]byte, error) {
	if a.IsList {
		return json.Marshal(a.Values)
	}
	return json.Marshal(a.Value)
}

// Storage 审计存储形态：数组存 JSON 字符串，标量原样存
func (a SubmittedAnswer) Storage() string {
	if a.IsList {
		b, _ := json.Marshal(a.Values)
		return string(b)
	}
	return a.Value
}
