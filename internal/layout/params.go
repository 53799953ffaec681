package layout

// Params holds the tunable page geometry of the layout engine, in
// points on an A4 portrait page. The overflow thresholds varied across
// historical revisions of the renderer, so they are configuration
// rather than invariants; these defaults come from the canonical
// revision.
type Params struct {
	PageMargin       float64 `mapstructure:"page_margin"`        // outer margin on every side
	NewPageTop       float64 `mapstructure:"new_page_top"`       // cursor position after a forced page break
	MinTableTop      float64 `mapstructure:"min_table_top"`      // the entries table never starts above this
	TableGap         float64 `mapstructure:"table_gap"`          // gap between the header blocks and the table
	TableStartLimit  float64 `mapstructure:"table_start_limit"`  // table start beyond this forces a new page
	RowOverflowLimit float64 `mapstructure:"row_overflow_limit"` // usable bottom bound for table rows
	RemarksLimit     float64 `mapstructure:"remarks_limit"`      // bottom bound for the remarks box
	MinRowHeight     float64 `mapstructure:"min_row_height"`
	RowPadding       float64 `mapstructure:"row_padding"` // vertical padding added to wrapped name height
	HeaderRowHeight  float64 `mapstructure:"header_row_height"`
	SummaryHeight    float64 `mapstructure:"summary_height"` // reserved height for the summary block
	RemarksHeight    float64 `mapstructure:"remarks_height"` // reserved height for the remarks box
}

// DefaultParams returns the canonical A4 geometry.
func DefaultParams() Params {
	return Params{
		PageMargin:       40,
		NewPageTop:       50,
		MinTableTop:      280,
		TableGap:         40,
		TableStartLimit:  600,
		RowOverflowLimit: 700,
		RemarksLimit:     750,
		MinRowHeight:     30,
		RowPadding:       16,
		HeaderRowHeight:  20,
		SummaryHeight:    100,
		RemarksHeight:    120,
	}
}

// Issuer is the fixed issuer block printed on every document.
type Issuer struct {
	Name           string `mapstructure:"name"`
	Representative string `mapstructure:"representative"`
	PostalCode     string `mapstructure:"postal_code"`
	Address        string `mapstructure:"address"`
	Tel            string `mapstructure:"tel"`
	Email          string `mapstructure:"email"`
}
