package i18n

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

// 支持的语言
const (
	LocaleZH = "zh-CN"
	LocaleTW = "zh-TW"
	LocaleEN = "en-US"
)

var (
	supportedTags = []language.Tag{
		language.AmericanEnglish,
		language.SimplifiedChinese,
		language.TraditionalChinese,
	}
	matcher = language.NewMatcher(supportedTags)

	defaultMu     sync.RWMutex
	defaultLocale = LocaleEN
)

// SetDefaultLocale 设置站点默认语言
func SetDefaultLocale(locale string) {
	normalized := Normalize(locale)
	defaultMu.Lock()
	defaultLocale = normalized
	defaultMu.Unlock()
}

// DefaultLocale 返回站点默认语言
func DefaultLocale() string {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLocale
}

// Normalize 将任意语言标签归一到支持的语言
func Normalize(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultLocale()
	}
	tags, _, err := language.ParseAcceptLanguage(raw)
	if err != nil || len(tags) == 0 {
		return DefaultLocale()
	}
	tag, _, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLocale()
	}
	return tagToLocale(tag)
}

func tagToLocale(tag language.Tag) string {
	base, _ := tag.Base()
	if base.String() != "zh" {
		return LocaleEN
	}
	script, _ := tag.Script()
	region, _ := tag.Region()
	if script.String() == "Hant" {
		return LocaleTW
	}
	switch region.String() {
	case "TW", "HK", "MO":
		return LocaleTW
	}
	return LocaleZH
}

// ResolveLocale 从请求中解析语言：?lang > X-Locale > Accept-Language > 默认
func ResolveLocale(c *gin.Context) string {
	if c == nil || c.Request == nil {
		return DefaultLocale()
	}
	if lang := strings.TrimSpace(c.Query("lang")); lang != "" {
		return Normalize(lang)
	}
	if header := strings.TrimSpace(c.GetHeader("X-Locale")); header != "" {
		return Normalize(header)
	}
	if accept := strings.TrimSpace(c.GetHeader("Accept-Language")); accept != "" {
		return Normalize(accept)
	}
	return DefaultLocale()
}

// T 翻译消息，缺失时回退英文，再回退 key
func T(locale, key string) string {
	if table, ok := catalog[Normalize(locale)]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := catalog[LocaleEN][key]; ok {
		return msg
	}
	return key
}

// Sprintf 翻译并格式化消息
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}
