package models

// CodeValue is a configurable lookup value belonging to a named code, such as a reschedule reason.
type CodeValue struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description,omitempty"`
	Position    int     `db:"position" json:"position"`
	Active      bool    `db:"is_active" json:"active"`
	Mandatory   bool    `db:"is_mandatory" json:"mandatory"`
}

// EnumOption is an enumerated value exposed with a stable code and a display label.
type EnumOption struct {
	ID    int64  `json:"id"`
	Code  string `json:"code"`
	Value string `json:"value"`
}
