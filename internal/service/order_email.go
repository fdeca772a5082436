package service

import (
	"bytes"
	"fmt"
	"mime"
	"net/mail"
	"strings"

	"github.com/dujiao-next/gift-message/internal/i18n"
	"github.com/dujiao-next/gift-message/internal/models"
)

type outgoingMail struct {
	Subject string
	Body    string
}

// encode 生成 text/plain 的 RFC 5322 报文
func (m outgoingMail) encode(from, fromName, to string) []byte {
	sender := from
	if name := strings.TrimSpace(fromName); name != "" {
		sender = (&mail.Address{Name: name, Address: from}).String()
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", sender)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", m.Subject))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	buf.WriteString(m.Body)
	return buf.Bytes()
}

func renderOrderReceived(order *models.Order, locale string) outgoingMail {
	lang := i18n.Normalize(locale)
	name := strings.TrimSpace(order.GetBillingFullName())
	if name == "" {
		name = i18n.T(lang, "giftmessage.guest")
	}

	var body strings.Builder
	body.WriteString(i18n.Sprintf(lang, "email.order_received.greeting", name))
	body.WriteString("\n\n")
	body.WriteString(i18n.T(lang, "email.order_received.intro"))
	body.WriteString("\n\n")
	for _, item := range order.Items {
		title := item.TitleJSON.Localized(lang)
		if item.SKUCode != "" {
			title += " (" + item.SKUCode + ")"
		}
		fmt.Fprintf(&body, "- %s x %d  %s %s\n", title, item.Quantity, item.TotalPrice.String(), order.Currency)
		for _, meta := range item.VisibleMeta() {
			fmt.Fprintf(&body, "    %s: %s\n", meta.MetaKey, meta.MetaValue)
		}
	}
	body.WriteString("\n")
	body.WriteString(i18n.Sprintf(lang, "email.order_received.total", order.TotalAmount.String(), order.Currency))

	return outgoingMail{
		Subject: i18n.Sprintf(lang, "email.order_received.subject", order.OrderNo),
		Body:    body.String(),
	}
}
