package models

import (
	"fmt"
	"time"
)

// DocumentType selects the header text, greeting and default remarks
// of a rendered document.
type DocumentType int

const (
	TypeQuotation DocumentType = iota
	TypeInvoice
	TypeReceipt
)

// ParseDocumentType maps the wire-level type string to a DocumentType.
// Unknown strings default to a quotation; the error reports the odd
// value without blocking generation.
func ParseDocumentType(s string) (DocumentType, error) {
	switch s {
	case "estimate", "":
		return TypeQuotation, nil
	case "invoice":
		return TypeInvoice, nil
	case "receipt":
		return TypeReceipt, nil
	default:
		return TypeQuotation, fmt.Errorf("unknown document type: %q", s)
	}
}

// Title is the large document heading.
func (t DocumentType) Title() string {
	switch t {
	case TypeInvoice:
		return "御 請 求 書"
	case TypeReceipt:
		return "領  収  書"
	default:
		return "御 見 積 書"
	}
}

// Greeting is the one-line salutation under the client block.
func (t DocumentType) Greeting() string {
	switch t {
	case TypeInvoice:
		return "下記のとおりご請求申し上げます。"
	case TypeReceipt:
		return "下記正に領収いたしました。"
	default:
		return "下記のとおり御見積申し上げます。"
	}
}

// AmountLabel labels the highlighted grand-total callout.
func (t DocumentType) AmountLabel() string {
	switch t {
	case TypeInvoice:
		return "御請求金額"
	case TypeReceipt:
		return "領収金額"
	default:
		return "御見積金額"
	}
}

// DefaultRemarks is the remarks text used when the user supplies none.
func (t DocumentType) DefaultRemarks() string {
	switch t {
	case TypeInvoice:
		return "お振込期限： 翌月末日\n振込先： 〇〇銀行 〇〇支店 普通 1234567 カ）ミナトアンゼンシセツ"
	case TypeReceipt:
		return "但し、上記正に領収いたしました。"
	default:
		return "有効期限： 御見積提出日より30日間\n支払条件： 弊社指定口座への振り込み・現金"
	}
}

// DisplayName is the Japanese document name used in notifications.
func (t DocumentType) DisplayName() string {
	switch t {
	case TypeInvoice:
		return "請求書"
	case TypeReceipt:
		return "領収書"
	default:
		return "見積書"
	}
}

// FilePrefix is the ASCII prefix of generated file names.
func (t DocumentType) FilePrefix() string {
	switch t {
	case TypeInvoice:
		return "Invoice"
	case TypeReceipt:
		return "Receipt"
	default:
		return "Estimate"
	}
}

// Document is the render-ready aggregate. It is built once per
// submission, consumed exactly once by the layout engine, and never
// mutated or persisted.
type Document struct {
	Type          DocumentType `json:"type"`
	ClientCompany string       `json:"client_company"`
	ClientPerson  string       `json:"client_person"`
	Entries       []Entry      `json:"entries"`
	Subtotal      int64        `json:"subtotal"`
	Tax           int64        `json:"tax"`
	GrandTotal    int64        `json:"grand_total"`
	Remarks       string       `json:"remarks"`
	// RemarksDefaulted marks type-default remarks text, which renders
	// smaller and muted.
	RemarksDefaulted bool      `json:"remarks_defaulted"`
	IssuedOn         time.Time `json:"issued_on"`
}

// Submission is the structured input received from the interaction
// layer. Transport-level fields (user identity, channel) stay in that
// layer; the core never sees them.
type Submission struct {
	ClientCompany string `json:"client_company" binding:"required"`
	ClientPerson  string `json:"client_person" binding:"required"`
	ItemsText     string `json:"items_text" binding:"required"`
	Remarks       string `json:"remarks"`
	DocumentType  string `json:"document_type"`
}

// Summary is returned alongside the document bytes for the caller's
// notification message.
type Summary struct {
	ItemCount  int   `json:"item_count"`
	GrandTotal int64 `json:"grand_total"`
}
