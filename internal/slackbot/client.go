// Package slackbot is the chat-platform collaborator: slash commands
// open the document modal, submissions feed the generator, and the
// finished file is delivered to the requesting user by DM. The core
// pipeline knows nothing about this layer.
package slackbot

import (
	"bytes"
	"context"
	"fmt"

	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// Client wraps the Slack Web API client.
type Client struct {
	api    *slack.Client
	logger *zap.Logger
}

// NewClient creates a Slack client from a bot token.
func NewClient(botToken string, logger *zap.Logger) *Client {
	return &Client{
		api:    slack.New(botToken),
		logger: logger,
	}
}

// OpenModal opens a modal view in response to a slash command trigger.
func (c *Client) OpenModal(ctx context.Context, triggerID string, view slack.ModalViewRequest) error {
	if _, err := c.api.OpenViewContext(ctx, triggerID, view); err != nil {
		c.logger.Error("failed to open modal", zap.Error(err))
		return fmt.Errorf("failed to open modal: %w", err)
	}
	return nil
}

// OpenDM opens (or reuses) the direct-message channel with a user and
// returns its channel ID.
func (c *Client) OpenDM(ctx context.Context, userID string) (string, error) {
	channel, _, _, err := c.api.OpenConversationContext(ctx, &slack.OpenConversationParameters{
		Users: []string{userID},
	})
	if err != nil {
		return "", fmt.Errorf("failed to open DM channel: %w", err)
	}
	if channel == nil || channel.ID == "" {
		return "", fmt.Errorf("empty DM channel for user %s", userID)
	}
	return channel.ID, nil
}

// SendMessage posts a plain text message to a channel or DM.
func (c *Client) SendMessage(ctx context.Context, channelID, text string) error {
	_, _, err := c.api.PostMessageContext(ctx, channelID, slack.MsgOptionText(text, false))
	if err != nil {
		c.logger.Error("failed to send message",
			zap.String("channel_id", channelID),
			zap.Error(err))
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// UploadFile uploads a generated document to a channel with an
// introductory comment.
func (c *Client) UploadFile(ctx context.Context, channelID, fileName string, data []byte, comment string) error {
	_, err := c.api.UploadFileV2Context(ctx, slack.UploadFileV2Parameters{
		Reader:         bytes.NewReader(data),
		Filename:       fileName,
		FileSize:       len(data),
		Channel:        channelID,
		InitialComment: comment,
	})
	if err != nil {
		c.logger.Error("failed to upload file",
			zap.String("channel_id", channelID),
			zap.String("file_name", fileName),
			zap.Error(err))
		return fmt.Errorf("failed to upload file: %w", err)
	}

	c.logger.Info("file uploaded",
		zap.String("channel_id", channelID),
		zap.String("file_name", fileName),
		zap.Int("size_bytes", len(data)))
	return nil
}
