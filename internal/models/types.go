package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StringArray JSON 编码的字符串数组列
type StringArray []string

// Value 用于数据库写入
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan 用于数据库读取
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return errors.New("unsupported string array source type")
	}
}

// Contains 判断是否包含指定元素
func (a StringArray) Contains(s string) bool {
	for _, item := range a {
		if item == s {
			return true
		}
	}
	return false
}
