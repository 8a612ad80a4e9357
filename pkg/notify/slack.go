// Package notify delivers the rendered digest to a messaging channel.
package notify

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lgr"
	"github.com/slack-go/slack"
)

// Slack posts digests to a Slack channel via the Web API
type Slack struct {
	api            *slack.Client
	defaultChannel string
}

// NewSlack creates a Slack notifier with a bot token and default channel
func NewSlack(token, defaultChannel string, opts ...slack.Option) *Slack {
	return &Slack{
		api:            slack.New(token, opts...),
		defaultChannel: defaultChannel,
	}
}

// Post sends text to the given channel, or the default channel when
// empty. Failure is returned to the caller who decides whether to
// abort; the pipeline logs and continues.
func (s *Slack) Post(ctx context.Context, channel, text string) error {
	ch := channel
	if ch == "" {
		ch = s.defaultChannel
	}

	_, _, err := s.api.PostMessageContext(ctx, ch, slack.MsgOptionText(text, false))
	if err != nil {
		return fmt.Errorf("post to slack channel %s: %w", ch, err)
	}

	lgr.Printf("[INFO] posted digest to %s", ch)
	return nil
}
