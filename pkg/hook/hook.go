// Package hook posts messages to a Dooray messenger incoming webhook.
//
// Hook URLs are created in the messenger UI and carry their own secret, so
// no API token is sent.
package hook

import (
	"context"
	"fmt"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"

	"github.com/iizs/godooray/internal/version"
	"github.com/iizs/godooray/pkg/transport"
)

const (
	DefaultBotName      = "My Bot"
	DefaultBotIconImage = "https://static.dooray.com/static_images/dooray-bot.png"
)

// Config holds configuration for a MessengerHook.
type Config struct {
	URL          string              // Incoming webhook URL (required)
	BotName      string              // Sender name (default: "My Bot")
	BotIconImage string              // Sender avatar URL (default: Dooray bot icon)
	UserAgent    string              // User-Agent header (default: library user agent)
	Transport    transport.Transport // Transport (default: HTTP transport)
	Logger       hclog.Logger        // Logger (optional)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.URL, validation.Required, transport.HTTPURL),
		validation.Field(&c.BotIconImage, transport.HTTPURL),
	)
}

// Message is the webhook payload.
type Message struct {
	BotName      string       `json:"botName"`
	BotIconImage string       `json:"botIconImage"`
	Text         string       `json:"text"`
	Attachments  []Attachment `json:"attachments,omitempty"`
}

// MessengerHook sends messages to one incoming webhook.
type MessengerHook struct {
	url          string
	botName      string
	botIconImage string
	header       http.Header
	transport    transport.Transport
	logger       hclog.Logger
}

// New creates a MessengerHook.
func New(cfg Config) (*MessengerHook, error) {
	if cfg.BotName == "" {
		cfg.BotName = DefaultBotName
	}
	if cfg.BotIconImage == "" {
		cfg.BotIconImage = DefaultBotIconImage
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = version.UserAgent()
	}
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid hook config: %w", err)
	}

	if cfg.Transport == nil {
		tr, err := transport.NewHTTP(&transport.Config{Logger: cfg.Logger})
		if err != nil {
			return nil, err
		}
		cfg.Transport = tr
	}

	header := http.Header{}
	header.Set("User-Agent", cfg.UserAgent)

	return &MessengerHook{
		url:          cfg.URL,
		botName:      cfg.BotName,
		botIconImage: cfg.BotIconImage,
		header:       header,
		transport:    cfg.Transport,
		logger:       cfg.Logger.Named("hook"),
	}, nil
}

// Send posts text with optional attachments. It reports true only when the
// server answers 200; any other status yields false with a nil error. An
// error is returned only when no response was received.
func (h *MessengerHook) Send(ctx context.Context, text string, attachments []Attachment) (bool, error) {
	msg := &Message{
		BotName:      h.botName,
		BotIconImage: h.botIconImage,
		Text:         text,
	}
	for _, a := range attachments {
		if !a.IsZero() {
			msg.Attachments = append(msg.Attachments, a)
		}
	}

	resp, err := h.transport.Do(ctx, &transport.Request{
		Method: http.MethodPost,
		URL:    h.url,
		Header: h.header.Clone(),
		Body:   msg,
	})
	if err != nil {
		return false, fmt.Errorf("failed to send hook message: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		h.logger.Debug("hook message rejected", "status", resp.StatusCode)
		return false, nil
	}
	return true, nil
}
