package models

// ChangeType labels a row-level change on the vaccination_types table.
type ChangeType string

const (
	ChangeInsert ChangeType = "insert"
	ChangeUpdate ChangeType = "update"
	ChangeDelete ChangeType = "delete"
)

// ChangeEvent is one entry of the change feed. Record is nil for deletes;
// RecordID is always set.
type ChangeEvent struct {
	Type     ChangeType
	Record   *VaccinationType
	RecordID string
}
