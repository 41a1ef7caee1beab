package client

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
)

var (
	ErrEmailSendFailed = errors.New("邮件发送失败")

	_ EmailClient = (*SMTPEmailClient)(nil)
)

// EmailClient 邮件发送客户端
//
//go:generate mockgen -source=./smtp.go -destination=./mocks/smtp.mock.go -package=clientmocks -typed EmailClient
type EmailClient interface {
	// Send 发送一封 HTML 邮件
	Send(ctx context.Context, toAddress, subject, html string) error
}

// SMTPEmailClient 基于 SMTP 的邮件发送实现
// 凭证由本层持有，连接池由 net/smtp 内部管理
type SMTPEmailClient struct {
	fromName    string
	fromAddress string
	host        string
	port        string
	auth        smtp.Auth
}

// NewSMTPEmailClient 创建 SMTP 邮件客户端
func NewSMTPEmailClient(fromName, fromAddress, host, port, username, password string) *SMTPEmailClient {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &SMTPEmailClient{
		fromName:    fromName,
		fromAddress: fromAddress,
		host:        host,
		port:        port,
		auth:        auth,
	}
}

func (c *SMTPEmailClient) Send(ctx context.Context, toAddress, subject, html string) error {
	// smtp.SendMail 自身不支持 ctx，发送前先检查一次取消状态
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrEmailSendFailed, err)
	}

	from := c.fromAddress
	if c.fromName != "" {
		from = fmt.Sprintf("%s <%s>", c.fromName, c.fromAddress)
	}
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		from, toAddress, subject, html)

	addr := c.host + ":" + c.port
	if err := smtp.SendMail(addr, c.auth, c.fromAddress, []string{toAddress}, []byte(msg)); err != nil {
		return fmt.Errorf("%w: %w", ErrEmailSendFailed, err)
	}
	return nil
}
