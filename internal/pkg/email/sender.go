package email

import (
	"Encore/internal/api/config"
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const defaultBaseURL = "https://api.sendgrid.com/v3"

// Sender 邮件投递收敛到 SendGrid 的 mail/send 接口
type Sender struct {
	http *resty.Client
	cfg  config.SendGridConfig
}

func NewSender(cfg config.SendGridConfig) *Sender {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}

	return &Sender{
		http: resty.New().SetTimeout(10 * time.Second),
		cfg:  cfg,
	}
}

// Send 发送一封纯文本邮件
func (s *Sender) Send(ctx context.Context, to, subject, body string) error {
	payload := map[string]any{
		"personalizations": []map[string]any{
			{"to": []map[string]string{{"email": to}}},
		},
		"from":    map[string]string{"email": s.cfg.FromEmail},
		"subject": subject,
		"content": []map[string]string{
			{"type": "text/plain", "value": body},
		},
	}

	resp, err := s.http.R().
		SetContext(ctx).
		SetAuthToken(s.cfg.APIKey).
		SetBody(payload).
		Post(s.cfg.BaseURL + "/mail/send")
	if err != nil {
		return errors.Wrap(err, "sendgrid request failed")
	}
	if resp.IsError() {
		return errors.Errorf("sendgrid request failed: status %d", resp.StatusCode())
	}

	return nil
}
