package giftmessage

import (
	"strings"

	"github.com/dujiao-next/gift-message/internal/hooks"
)

// CollectOrderMessages 汇总订单内全部留言：优先读隐藏 key，缺失时按标签回退；
// 去空白、去空值、按首次出现顺序去重
func CollectOrderMessages(order hooks.OrderLike, label string) []string {
	if order == nil {
		return nil
	}
	seen := make(map[string]struct{})
	messages := make([]string, 0)
	for _, item := range order.GetItems() {
		if item == nil {
			continue
		}
		value := item.GetMeta(HiddenMetaKey)
		if value == "" && label != "" {
			value = item.GetMeta(label)
		}
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		messages = append(messages, value)
	}
	return messages
}

// JoinMessages 以 "; " 拼接
func JoinMessages(messages []string) string {
	return strings.Join(messages, Separator)
}

// OrderMessages 以当前标签汇总订单留言
func (p *Plugin) OrderMessages(order hooks.OrderLike) []string {
	return CollectOrderMessages(order, p.Label())
}
