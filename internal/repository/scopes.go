package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// localizedKeys 多语言 JSON 列参与搜索的语言
var localizedKeys = []string{"zh-CN", "zh-TW", "en-US"}

func isPostgres(db *gorm.DB) bool {
	if db == nil || db.Dialector == nil {
		return false
	}
	switch strings.ToLower(db.Dialector.Name()) {
	case "postgres", "postgresql":
		return true
	}
	return false
}

// jsonText JSON 列按语言取文本，sqlite 用 json_extract，postgres 用 ->>
func jsonText(postgres bool, column, key string) string {
	if postgres {
		return fmt.Sprintf("(%s::jsonb ->> '%s')", column, key)
	}
	return fmt.Sprintf("json_extract(%s, '$.\"%s\"')", column, key)
}

// keywordCondition 普通列与多语言 JSON 列的 OR 模糊匹配，返回条件与占位符个数
func keywordCondition(postgres bool, plainColumns, jsonColumns []string) (string, int) {
	op := "LIKE"
	if postgres {
		op = "ILIKE"
	}
	var parts []string
	for _, column := range plainColumns {
		parts = append(parts, fmt.Sprintf("%s %s ?", column, op))
	}
	for _, column := range jsonColumns {
		for _, key := range localizedKeys {
			parts = append(parts, fmt.Sprintf("%s %s ?", jsonText(postgres, column, key), op))
		}
	}
	return strings.Join(parts, " OR "), len(parts)
}

// keywordScope 关键字为空时不加条件
func keywordScope(keyword string, plainColumns, jsonColumns []string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		keyword = strings.TrimSpace(keyword)
		if keyword == "" {
			return db
		}
		condition, n := keywordCondition(isPostgres(db), plainColumns, jsonColumns)
		if n == 0 {
			return db
		}
		like := "%" + keyword + "%"
		args := make([]interface{}, n)
		for i := range args {
			args[i] = like
		}
		return db.Where("("+condition+")", args...)
	}
}

// paginate pageSize<=0 时不分页
func paginate(page, pageSize int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if pageSize <= 0 {
			return db
		}
		if page < 1 {
			page = 1
		}
		return db.Limit(pageSize).Offset((page - 1) * pageSize)
	}
}
