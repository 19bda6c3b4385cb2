package domain

import (
	"time"
)

// Tradeline is the normalized field model for one reported account as it
// appears on a credit report. It is produced by the upstream normalizer and
// treated as immutable for the duration of an analysis call.
//
// Every field is optional. Dates and amounts are kept as the raw strings the
// normalizer produced; the engine parses them leniently and treats anything
// unparseable as absent.
type Tradeline struct {
	// Dates ("2006-01-02" preferred, several layouts accepted)
	DateOpened           string `json:"dateOpened,omitempty"`
	DOFD                 string `json:"dofd,omitempty"`
	ChargeOffDate        string `json:"chargeOffDate,omitempty"`
	LastPaymentDate      string `json:"lastPaymentDate,omitempty"`
	LastReportedDate     string `json:"lastReportedDate,omitempty"`
	EstimatedRemovalDate string `json:"estimatedRemovalDate,omitempty"`

	// Monetary amounts
	CurrentBalance string `json:"currentBalance,omitempty"`
	OriginalAmount string `json:"originalAmount,omitempty"`
	CreditLimit    string `json:"creditLimit,omitempty"`

	// Categorical
	AccountType   string `json:"accountType,omitempty"`
	AccountStatus string `json:"accountStatus,omitempty"`
	Remarks       string `json:"remarks,omitempty"`

	// Parties
	OriginalCreditor string `json:"originalCreditor,omitempty"`
	Furnisher        string `json:"furnisher,omitempty"`

	// Jurisdiction hint (two-letter US state code)
	State string `json:"state,omitempty"`
}

// Empty reports whether no field carries a value.
func (t Tradeline) Empty() bool {
	return len(t.FieldMap()) == 0
}

// FieldMap returns the populated fields keyed by their canonical names.
// The reconciler, the custom rule engine, and the report cache all key off
// these names, so they must stay stable.
func (t Tradeline) FieldMap() map[string]string {
	m := make(map[string]string, 16)
	put := func(k, v string) {
		if v != "" {
			m[k] = v
		}
	}
	put("dateOpened", t.DateOpened)
	put("dofd", t.DOFD)
	put("chargeOffDate", t.ChargeOffDate)
	put("lastPaymentDate", t.LastPaymentDate)
	put("lastReportedDate", t.LastReportedDate)
	put("estimatedRemovalDate", t.EstimatedRemovalDate)
	put("currentBalance", t.CurrentBalance)
	put("originalAmount", t.OriginalAmount)
	put("creditLimit", t.CreditLimit)
	put("accountType", t.AccountType)
	put("accountStatus", t.AccountStatus)
	put("remarks", t.Remarks)
	put("originalCreditor", t.OriginalCreditor)
	put("furnisher", t.Furnisher)
	put("state", t.State)
	return m
}

// BureauSnapshot is one named bureau's copy of the same logical tradeline.
type BureauSnapshot struct {
	Bureau     string    `json:"bureau"`
	Fields     Tradeline `json:"fields"`
	UploadedAt time.Time `json:"uploadedAt,omitempty"`
}

// DisputeRecord is one entry from the consumer's dispute history.
type DisputeRecord struct {
	Date         string `json:"date"`
	Field        string `json:"field,omitempty"`
	Result       string `json:"result,omitempty"` // "", "verified", "updated", "deleted"
	ResponseDate string `json:"responseDate,omitempty"`
}

// Ingestion bounds. Auxiliary inputs beyond these caps are truncated at the
// API boundary to bound the reconciler's pairwise comparison cost.
const (
	MaxHistoricalSnapshots = 24
	MaxBureauSnapshots     = 3
	MaxDisputeRecords      = 100
)

// AnalysisInput bundles everything a single pipeline call consumes.
type AnalysisInput struct {
	Fields     Tradeline        `json:"fields"`
	Historical []Tradeline      `json:"historical,omitempty"`
	Bureaus    []BureauSnapshot `json:"bureaus,omitempty"`
	Disputes   []DisputeRecord  `json:"disputes,omitempty"`

	// State overrides Fields.State when set.
	State string `json:"state,omitempty"`

	Harm               *HarmFacts `json:"harm,omitempty"`
	VulnerableConsumer bool       `json:"vulnerableConsumer,omitempty"`
	KnownRecidivist    bool       `json:"knownRecidivist,omitempty"`
}

// StateCode returns the effective jurisdiction code for the input.
func (in *AnalysisInput) StateCode() string {
	if in.State != "" {
		return in.State
	}
	return in.Fields.State
}

// Clamp enforces the ingestion bounds in place.
func (in *AnalysisInput) Clamp() {
	if len(in.Historical) > MaxHistoricalSnapshots {
		in.Historical = in.Historical[:MaxHistoricalSnapshots]
	}
	if len(in.Bureaus) > MaxBureauSnapshots {
		in.Bureaus = in.Bureaus[:MaxBureauSnapshots]
	}
	if len(in.Disputes) > MaxDisputeRecords {
		in.Disputes = in.Disputes[:MaxDisputeRecords]
	}
}
