package channel

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"crm-notification/internal/domain"
	"crm-notification/internal/errs"
	"crm-notification/internal/service/channel/client"
)

const defaultEmailSubject = "お知らせ"

// 邮件布局模板，CTA 渲染成按钮
var emailLayout = template.Must(template.New("email").Parse(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background-color:#f5f5f5;">
  <div style="max-width:600px;margin:0 auto;padding:24px;background-color:#ffffff;font-family:sans-serif;">
    <div style="font-size:14px;line-height:1.8;color:#333333;">{{.Body}}</div>
    {{if .CTAURL}}
    <div style="margin-top:24px;text-align:center;">
      <a href="{{.CTAURL}}" style="display:inline-block;padding:12px 32px;background-color:#06c755;color:#ffffff;text-decoration:none;border-radius:6px;font-weight:bold;">{{.CTALabel}}</a>
    </div>
    {{end}}
  </div>
</body>
</html>`))

var _ Channel = (*emailChannel)(nil)

// emailChannel 邮件渠道，把已渲染的正文套进 HTML 布局后经 SMTP 发出
type emailChannel struct {
	client client.EmailClient
}

// NewEmailChannel 创建邮件渠道
func NewEmailChannel(emailClient client.EmailClient) Channel {
	return &emailChannel{
		client: emailClient,
	}
}

func (e *emailChannel) Send(ctx context.Context, job domain.NotificationJob) (domain.DispatchOutcome, error) {
	// 渠道解析层保证不会为无邮箱客户构造邮件任务
	if job.Recipient == "" {
		return domain.DispatchOutcome{}, fmt.Errorf("%w: 收件地址为空", errs.ErrInvalidParameter)
	}

	html, err := e.renderHTML(job)
	if err != nil {
		return domain.DispatchOutcome{}, fmt.Errorf("%w: %w", errs.ErrSendNotificationFailed, err)
	}

	subject := job.Subject
	if subject == "" {
		subject = defaultEmailSubject
	}

	if err := e.client.Send(ctx, job.Recipient, subject, html); err != nil {
		return domain.DispatchOutcome{}, fmt.Errorf("%w: %w", errs.ErrSendNotificationFailed, err)
	}
	return domain.DispatchOutcome{
		CustomerID: job.CustomerID,
		Channel:    domain.ChannelEmail,
		Status:     domain.OutcomeStatusSent,
	}, nil
}

func (e *emailChannel) renderHTML(job domain.NotificationJob) (string, error) {
	var buf bytes.Buffer
	data := struct {
		Body     template.HTML
		CTAURL   string
		CTALabel string
	}{
		// 正文是纯文本，换行转成 <br>，其余内容先转义
		Body:     template.HTML(strings.ReplaceAll(template.HTMLEscapeString(job.Body), "\n", "<br>")),
		CTAURL:   job.CTA.URL,
		CTALabel: job.CTA.Label,
	}
	if err := emailLayout.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
