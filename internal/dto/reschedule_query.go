package dto

// RescheduleListQuery mirrors the supported listing filters.
type RescheduleListQuery struct {
	LoanID  int64  `validate:"omitempty,gt=0"`
	Command string `validate:"omitempty,oneof=pending approved rejected all"`
	Limit   int    `validate:"omitempty,gt=0,lte=1000"`
	Offset  int    `validate:"omitempty,gte=0"`
}

// RescheduleExportQuery selects the requests and format of an export.
type RescheduleExportQuery struct {
	Command string `validate:"omitempty,oneof=pending approved rejected all"`
	Format  string `validate:"required,oneof=csv pdf"`
}

// RescheduleExport is a rendered export ready to stream.
type RescheduleExport struct {
	Filename    string
	ContentType string
	Body        []byte
}
