package models

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
)

// JSON 类型定义，用于存储多语言内容与附加数据
type JSON map[string]interface{}

// Value 实现 driver.Valuer 接口
func (j JSON) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan 实现 sql.Scanner 接口
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = make(JSON)
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return nil
	}
	if len(raw) == 0 {
		*j = make(JSON)
		return nil
	}
	return json.Unmarshal(raw, j)
}

// Localized 按语言取多语言文本：精确语言 > 英文 > 任一非空值
func (j JSON) Localized(locale string) string {
	if len(j) == 0 {
		return ""
	}
	if v, ok := j[locale].(string); ok && strings.TrimSpace(v) != "" {
		return v
	}
	if v, ok := j["en-US"].(string); ok && strings.TrimSpace(v) != "" {
		return v
	}
	for _, key := range []string{"zh-CN", "zh-TW"} {
		if v, ok := j[key].(string); ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
