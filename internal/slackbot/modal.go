package slackbot

import "github.com/slack-go/slack"

// Modal identifiers shared between the view builder and the
// interaction handler.
const (
	CallbackDocCreation = "doc_creation_modal"

	blockClientCompany = "client_company"
	blockClientPerson  = "client_person"
	blockItemsInput    = "items_input"
	blockRemarks       = "remarks"
	actionValue        = "value"
)

// BuildDocumentModal builds the document-creation modal. The document
// type rides in private_metadata so one callback handles all three
// commands.
func BuildDocumentModal(docType, title string) slack.ModalViewRequest {
	companyInput := slack.NewPlainTextInputBlockElement(
		slack.NewTextBlockObject(slack.PlainTextType, "例: 株式会社〇〇", false, false), actionValue)
	companyBlock := slack.NewInputBlock(blockClientCompany,
		slack.NewTextBlockObject(slack.PlainTextType, "宛先（社名）", false, false), nil, companyInput)

	personInput := slack.NewPlainTextInputBlockElement(
		slack.NewTextBlockObject(slack.PlainTextType, "例: 山田太郎", false, false), actionValue)
	personBlock := slack.NewInputBlock(blockClientPerson,
		slack.NewTextBlockObject(slack.PlainTextType, "担当者名", false, false), nil, personInput)

	itemsInput := slack.NewPlainTextInputBlockElement(
		slack.NewTextBlockObject(slack.PlainTextType,
			"品名, 数量, 単価\n例:\nコーン標識, 10, 3500\n安全ベスト, 20, 2800", false, false), actionValue)
	itemsInput.Multiline = true
	itemsBlock := slack.NewInputBlock(blockItemsInput,
		slack.NewTextBlockObject(slack.PlainTextType, "品目（1行に1品目）", false, false),
		slack.NewTextBlockObject(slack.PlainTextType,
			"「品名, 数量, 単価」の形式で1行ずつ入力してください（「、」や全角数字も可）", false, false),
		itemsInput)

	remarksInput := slack.NewPlainTextInputBlockElement(
		slack.NewTextBlockObject(slack.PlainTextType, "備考を入力（省略時はデフォルト文言）", false, false), actionValue)
	remarksInput.Multiline = true
	remarksBlock := slack.NewInputBlock(blockRemarks,
		slack.NewTextBlockObject(slack.PlainTextType, "備考（任意）", false, false), nil, remarksInput)
	remarksBlock.Optional = true

	return slack.ModalViewRequest{
		Type:            slack.VTModal,
		CallbackID:      CallbackDocCreation,
		PrivateMetadata: docType,
		Title:           slack.NewTextBlockObject(slack.PlainTextType, title, false, false),
		Submit:          slack.NewTextBlockObject(slack.PlainTextType, "PDF生成", false, false),
		Close:           slack.NewTextBlockObject(slack.PlainTextType, "キャンセル", false, false),
		Blocks: slack.Blocks{
			BlockSet: []slack.Block{companyBlock, personBlock, itemsBlock, remarksBlock},
		},
	}
}

// stateValue reads one input value out of a submitted view state.
func stateValue(view slack.View, blockID string) string {
	if view.State == nil {
		return ""
	}
	return view.State.Values[blockID][actionValue].Value
}
