package models

// MeasurementEntry is one dated numeric observation belonging to an account.
//
// EntryDate is stored as text in a fixed-width sortable format (YYYY-MM-DD);
// the ledger relies on lexical ordering of this field being chronological,
// which the service layer enforces on input.
type MeasurementEntry struct {
	// EntryID is the internal unique identifier of the entry.
	EntryID int64 `json:"id"`

	// AccountID references the owning account. The referenced account must
	// exist when the entry is created.
	AccountID int64 `json:"-"`

	// EntryDate is the observation date as a YYYY-MM-DD string.
	EntryDate string `json:"entry_date"`

	// Weight is the observed value, unit-agnostic.
	Weight float64 `json:"weight"`
}

// TableName returns the name of the database table
// associated with the MeasurementEntry model.
func (m MeasurementEntry) TableName() string {
	return "measurements"
}
