package slackbot

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kaito5551995/slack-estimate-bot/internal/generator"
	"github.com/kaito5551995/slack-estimate-bot/internal/models"
)

// Slash commands understood by the bot. The ASCII forms exist for
// workspaces that disallow multibyte command names.
var commandTypes = map[string]string{
	"/見積もり":     "estimate",
	"/請求書":      "invoice",
	"/領収書":      "receipt",
	"/estimate": "estimate",
	"/invoice":  "invoice",
	"/receipt":  "receipt",
}

var modalTitles = map[string]string{
	"estimate": "見積書作成",
	"invoice":  "請求書作成",
	"receipt":  "領収書作成",
}

// Handler serves the Slack webhook endpoints.
type Handler struct {
	client        *Client
	generator     *generator.Generator
	signingSecret string
	apiTimeout    time.Duration
	printer       *message.Printer
	logger        *zap.Logger
}

// NewHandler creates a webhook handler.
func NewHandler(client *Client, gen *generator.Generator, signingSecret string, apiTimeout time.Duration, logger *zap.Logger) *Handler {
	if apiTimeout <= 0 {
		apiTimeout = 30 * time.Second
	}
	return &Handler{
		client:        client,
		generator:     gen,
		signingSecret: signingSecret,
		apiTimeout:    apiTimeout,
		printer:       message.NewPrinter(language.Japanese),
		logger:        logger,
	}
}

// HandleCommand processes slash commands by opening the document
// modal. Slack expects the ack within three seconds, so the modal is
// opened synchronously before responding.
func (h *Handler) HandleCommand(c *gin.Context) {
	body, ok := h.verifiedBody(c)
	if !ok {
		return
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	cmd, err := slack.SlashCommandParse(c.Request)
	if err != nil {
		h.logger.Error("failed to parse slash command", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse command"})
		return
	}

	docType, ok := commandTypes[cmd.Command]
	if !ok {
		h.logger.Warn("unknown slash command", zap.String("command", cmd.Command))
		c.String(http.StatusOK, "")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.apiTimeout)
	defer cancel()

	if err := h.client.OpenModal(ctx, cmd.TriggerID, BuildDocumentModal(docType, modalTitles[docType])); err != nil {
		h.logger.Error("failed to open document modal",
			zap.String("command", cmd.Command),
			zap.Error(err))
	}
	c.String(http.StatusOK, "")
}

// HandleInteraction processes interactive payloads. View submissions
// are acked immediately and generation runs in the background; each
// submission gets its own canvas, so these goroutines are independent.
func (h *Handler) HandleInteraction(c *gin.Context) {
	body, ok := h.verifiedBody(c)
	if !ok {
		return
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	var payload slack.InteractionCallback
	if err := json.Unmarshal([]byte(c.Request.FormValue("payload")), &payload); err != nil {
		h.logger.Error("failed to parse interaction payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse payload"})
		return
	}

	if payload.Type != slack.InteractionTypeViewSubmission ||
		payload.View.CallbackID != CallbackDocCreation {
		c.String(http.StatusOK, "")
		return
	}

	docType := payload.View.PrivateMetadata
	if docType == "" {
		docType = "estimate"
	}

	sub := models.Submission{
		ClientCompany: stateValue(payload.View, blockClientCompany),
		ClientPerson:  stateValue(payload.View, blockClientPerson),
		ItemsText:     stateValue(payload.View, blockItemsInput),
		Remarks:       stateValue(payload.View, blockRemarks),
		DocumentType:  docType,
	}

	go h.process(payload.User.ID, sub)
	c.String(http.StatusOK, "")
}

// process generates the document and delivers it (or the error
// guidance) to the requesting user by DM.
func (h *Handler) process(userID string, sub models.Submission) {
	ctx, cancel := context.WithTimeout(context.Background(), h.apiTimeout)
	defer cancel()

	typ, _ := models.ParseDocumentType(sub.DocumentType)
	docName := typ.DisplayName()

	result, err := h.generator.Generate(sub)
	if err != nil {
		if generator.IsUserError(err) {
			h.notify(ctx, userID,
				"⚠️ 品目が正しく入力されていません。「品名, 数量, 単価」の形式で入力してください。")
			return
		}
		h.logger.Error("document generation failed",
			zap.String("user_id", userID),
			zap.Error(err))
		h.notify(ctx, userID, "❌ "+docName+"の生成中にエラーが発生しました。")
		return
	}

	channelID, err := h.client.OpenDM(ctx, userID)
	if err != nil {
		h.logger.Error("failed to open DM for delivery",
			zap.String("user_id", userID),
			zap.Error(err))
		return
	}

	comment := h.printer.Sprintf(
		"📄 *%sを作成しました*\n\n• 宛先: %s / %s 様\n• 品目数: %d件\n• 合計金額: ¥%d（税込）",
		docName, sub.ClientCompany, sub.ClientPerson,
		result.Summary.ItemCount, result.Summary.GrandTotal)

	if err := h.client.UploadFile(ctx, channelID, result.FileName, result.PDF, comment); err != nil {
		h.logger.Error("failed to deliver document",
			zap.String("user_id", userID),
			zap.Error(err))
	}
}

// notify DMs a short status message, logging delivery failures.
func (h *Handler) notify(ctx context.Context, userID, text string) {
	channelID, err := h.client.OpenDM(ctx, userID)
	if err != nil {
		h.logger.Error("failed to open DM for notification", zap.Error(err))
		return
	}
	if err := h.client.SendMessage(ctx, channelID, text); err != nil {
		h.logger.Error("failed to send notification", zap.Error(err))
	}
}

// verifiedBody reads the request body and checks the Slack request
// signature, responding with an error itself when verification fails.
func (h *Handler) verifiedBody(c *gin.Context) ([]byte, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.logger.Error("failed to read request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return nil, false
	}

	verifier, err := slack.NewSecretsVerifier(c.Request.Header, h.signingSecret)
	if err != nil {
		h.logger.Error("failed to init signature verifier", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing signature headers"})
		return nil, false
	}
	if _, err := verifier.Write(body); err != nil {
		h.logger.Error("failed to hash request body", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "verification failed"})
		return nil, false
	}
	if err := verifier.Ensure(); err != nil {
		h.logger.Warn("invalid request signature", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return nil, false
	}
	return body, true
}
