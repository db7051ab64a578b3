// Package notification reacts to domain events after commit: it emails
// ticket requesters and relays events to the message broker.
package notification

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/tradesbook-ie/tradesbook/internal/domain/shared/events"
	"github.com/tradesbook-ie/tradesbook/internal/domain/ticket"
	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
	"github.com/tradesbook-ie/tradesbook/internal/shared/services/markdown"
)

// Email is a rendered message ready for delivery.
type Email struct {
	To       string
	ToName   string
	Subject  string
	HTMLBody string
	TextBody string
}

type EmailSender interface {
	Send(ctx context.Context, email Email) error
}

// TicketReplyNotifier emails the requester when an admin replies.
type TicketReplyNotifier struct {
	sender     EmailSender
	renderer   markdown.Renderer
	supportURL string
	logger     logger.Interface
}

func NewTicketReplyNotifier(sender EmailSender, renderer markdown.Renderer, supportURL string, logger logger.Interface) *TicketReplyNotifier {
	return &TicketReplyNotifier{
		sender:     sender,
		renderer:   renderer,
		supportURL: strings.TrimRight(supportURL, "/"),
		logger:     logger,
	}
}

func (n *TicketReplyNotifier) Handle(ctx context.Context, event events.DomainEvent) error {
	evt, ok := event.(ticket.TicketRepliedEvent)
	if !ok {
		return fmt.Errorf("unexpected event %T for ticket reply notifier", event)
	}
	if evt.RequesterEmail == "" {
		n.logger.Warnw("ticket requester has no email, skipping reply notification", "ticket_id", evt.GetAggregateID())
		return nil
	}

	email, err := n.compose(evt)
	if err != nil {
		return fmt.Errorf("render ticket reply email: %w", err)
	}
	if err := n.sender.Send(ctx, email); err != nil {
		return fmt.Errorf("send ticket reply email: %w", err)
	}

	n.logger.Infow("ticket reply notification sent", "ticket_id", evt.GetAggregateID(), "number", evt.Number)
	return nil
}

func (n *TicketReplyNotifier) compose(evt ticket.TicketRepliedEvent) (Email, error) {
	replyHTML, err := n.renderer.ToHTMLSanitized(evt.ReplyBody)
	if err != nil {
		return Email{}, err
	}

	greeting := "Hi"
	if evt.RequesterName != "" {
		greeting = "Hi " + evt.RequesterName
	}
	link := fmt.Sprintf("%s/support/tickets/%d", n.supportURL, evt.GetAggregateID())

	var statusLine string
	if evt.StatusChanged {
		statusLine = fmt.Sprintf("Your ticket is now %s.", strings.ReplaceAll(evt.Status, "_", " "))
	}

	htmlBody := fmt.Sprintf(`<html><body>
<p>%s,</p>
<p>Our support team replied to ticket <strong>%s</strong> (%s):</p>
<blockquote>%s</blockquote>
<p>%s</p>
<p><a href="%s">View the conversation</a></p>
<p>tradesbook.ie support</p>
</body></html>`,
		html.EscapeString(greeting), html.EscapeString(evt.Number), html.EscapeString(evt.Subject),
		replyHTML, html.EscapeString(statusLine), link)

	textBody := fmt.Sprintf("%s,\n\nOur support team replied to ticket %s (%s):\n\n%s\n\n%s\n\nView the conversation: %s\n",
		greeting, evt.Number, evt.Subject, evt.ReplyBody, statusLine, link)

	return Email{
		To:       evt.RequesterEmail,
		ToName:   evt.RequesterName,
		Subject:  fmt.Sprintf("[%s] Re: %s", evt.Number, evt.Subject),
		HTMLBody: htmlBody,
		TextBody: textBody,
	}, nil
}
