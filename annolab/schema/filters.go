package schema

// Export filter toggles. Nil means "leave the server default".

// DataRowExportFilter selects which data-row sections an export includes.
type DataRowExportFilter struct {
	DataRowDetails  *bool
	MediaAttributes *bool
	MetadataFields  *bool
	Attachments     *bool
}

// ProjectExportFilter extends the data-row filter with project-level
// sections.
type ProjectExportFilter struct {
	DataRowExportFilter
	ProjectDetails     *bool
	LabelDetails       *bool
	PerformanceDetails *bool
}

// ModelRunExportFilter selects sections for model-run exports.
type ModelRunExportFilter struct {
	DataRowExportFilter
}
