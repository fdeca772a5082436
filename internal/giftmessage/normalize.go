package giftmessage

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	scriptStyleBlock = regexp.MustCompile(`(?is)<(script|style)[^>]*?>.*?</(script|style)\s*>`)
	htmlTag          = regexp.MustCompile(`(?s)<[^>]*>`)
	whitespaceRun    = regexp.MustCompile(`[\r\n\t ]+`)
	htmlEntity       = regexp.MustCompile(`&(#[0-9]+|#[xX][0-9a-fA-F]+|[a-zA-Z][a-zA-Z0-9]*);`)
	newlineReplacer  = strings.NewReplacer("\r", " ", "\n", " ")
)

// Sanitize 清理单行文本：非法 UTF-8 置空，去除标签与控制字符，折叠空白
func Sanitize(raw string) string {
	if !utf8.ValidString(raw) {
		return ""
	}
	s := raw
	if strings.Contains(s, "<") {
		s = scriptStyleBlock.ReplaceAllString(s, "")
		s = htmlTag.ReplaceAllString(s, "")
		s = strings.ReplaceAll(s, "<", "&lt;")
	}
	s = strings.Map(func(r rune) rune {
		if r == '\t' || r == '\n' || r == '\r' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// CollapseNewlines 每个 \r 或 \n 替换为一个空格
func CollapseNewlines(s string) string {
	return newlineReplacer.Replace(s)
}

// Normalize 清理并折叠换行，结果幂等
func Normalize(raw string) string {
	return CollapseNewlines(Sanitize(raw))
}

// Length 按 Unicode 码点计数
func Length(s string) int {
	if utf8.ValidString(s) {
		return utf8.RuneCountInString(s)
	}
	return len(s)
}

// EscapeHTML 转义 HTML 特殊字符，已有实体不重复转义
func EscapeHTML(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	last := 0
	for _, loc := range htmlEntity.FindAllStringIndex(s, -1) {
		b.WriteString(escapeSpecial(s[last:loc[0]]))
		b.WriteString(s[loc[0]:loc[1]])
		last = loc[1]
	}
	b.WriteString(escapeSpecial(s[last:]))
	return b.String()
}

var specialReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

func escapeSpecial(s string) string {
	return specialReplacer.Replace(s)
}
