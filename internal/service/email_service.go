package service

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/mail"
	"net/smtp"
	"net/textproto"
	"strconv"
	"strings"

	"github.com/dujiao-next/gift-message/internal/config"
	"github.com/dujiao-next/gift-message/internal/models"
)

// EmailService 通过 SMTP 发送订单通知
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// SendOrderReceivedEmail 发送下单成功通知，包含行项目的可见元数据
func (s *EmailService) SendOrderReceivedEmail(order *models.Order, locale string) error {
	if order == nil {
		return ErrOrderNotFound
	}
	msg := renderOrderReceived(order, locale)
	return s.send(order.BillingEmail, msg)
}

func (s *EmailService) send(to string, msg outgoingMail) error {
	cfg := s.cfg
	if cfg == nil || !cfg.Enabled {
		return ErrEmailServiceDisabled
	}
	if cfg.Host == "" || cfg.Port == 0 || cfg.From == "" {
		return ErrEmailServiceNotConfigured
	}
	if _, err := mail.ParseAddress(to); err != nil {
		return ErrInvalidEmail
	}
	raw := msg.encode(cfg.From, cfg.FromName, to)
	return classifySendError(deliver(cfg, to, raw))
}

// deliver 按配置选择隐式 TLS、STARTTLS 或明文连接
func deliver(cfg *config.EmailConfig, to string, raw []byte) error {
	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	tlsCfg := &tls.Config{ServerName: cfg.Host}

	var client *smtp.Client
	if cfg.UseSSL {
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return err
		}
		client, err = smtp.NewClient(conn, cfg.Host)
		if err != nil {
			_ = conn.Close()
			return err
		}
	} else {
		var err error
		client, err = smtp.Dial(addr)
		if err != nil {
			return err
		}
		if cfg.UseTLS {
			if err := client.StartTLS(tlsCfg); err != nil {
				_ = client.Close()
				return err
			}
		}
	}
	defer client.Close()

	if cfg.Username != "" || cfg.Password != "" {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)); err != nil {
				return err
			}
		}
	}
	if err := client.Mail(cfg.From); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(raw); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

var recipientRejectionPhrases = []string{
	"no such recipient",
	"no such user",
	"recipient not found",
	"recipient address rejected",
	"invalid recipient",
	"user unknown",
	"unknown user",
	"unknown mailbox",
	"mailbox unavailable",
}

// classifySendError 收件人被拒绝时包装为 ErrEmailRecipientRejected
func classifySendError(err error) error {
	if err == nil {
		return nil
	}
	if isRecipientRejection(err) {
		return fmt.Errorf("%w: %v", ErrEmailRecipientRejected, err)
	}
	return err
}

func isRecipientRejection(err error) bool {
	if err == nil {
		return false
	}
	var protoErr *textproto.Error
	if errors.As(err, &protoErr) && (protoErr.Code == 550 || protoErr.Code == 553) {
		return true
	}
	text := strings.ToLower(err.Error())
	for _, phrase := range recipientRejectionPhrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	if strings.Contains(text, "550") {
		for _, hint := range []string{"recipient", "user", "mailbox", "address", "rcpt"} {
			if strings.Contains(text, hint) {
				return true
			}
		}
	}
	return false
}
