package generator

import (
	"strings"
	"time"

	"github.com/kaito5551995/slack-estimate-bot/internal/models"
)

// BuildDocument assembles the render-ready document from validated
// header fields and a priced result. Pure assembly: no further
// computation happens here. The issue date is an explicit input so
// rendering stays deterministic under test; callers pass time.Now().
func BuildDocument(
	typ models.DocumentType,
	clientCompany, clientPerson string,
	priced models.PricedResult,
	remarks string,
	issuedOn time.Time,
) (*models.Document, error) {
	clientCompany = strings.TrimSpace(clientCompany)
	clientPerson = strings.TrimSpace(clientPerson)

	if clientCompany == "" {
		return nil, ErrMissingClientCompany
	}
	if clientPerson == "" {
		return nil, ErrMissingClientPerson
	}
	if len(priced.Entries) == 0 {
		return nil, ErrNoEntries
	}

	doc := &models.Document{
		Type:          typ,
		ClientCompany: clientCompany,
		ClientPerson:  clientPerson,
		Entries:       priced.Entries,
		Subtotal:      priced.Subtotal,
		Tax:           priced.Tax,
		GrandTotal:    priced.GrandTotal,
		Remarks:       strings.TrimSpace(remarks),
		IssuedOn:      issuedOn,
	}
	if doc.Remarks == "" {
		doc.Remarks = typ.DefaultRemarks()
		doc.RemarksDefaulted = true
	}
	return doc, nil
}
