package types

type SourceKind string

const (
	SourceKindBase             SourceKind = "base"
	SourceKindFolder           SourceKind = "folder"
	SourceKindPACSResource     SourceKind = "pacs_resource"
	SourceKindStudyInstanceUID SourceKind = "study_instance_uid"
	SourceKindAccessionNumber  SourceKind = "accession_number"
	SourceKindFileSelection    SourceKind = "fileselection"
)

type FieldName string

const (
	FieldSource          FieldName = "source"
	FieldPatientID       FieldName = "patient_id"
	FieldPatientName     FieldName = "patient_name"
	FieldDescription     FieldName = "description"
	FieldRootSourcePath  FieldName = "root_source_path"
	FieldDestinationPath FieldName = "destination_path"
	FieldProject         FieldName = "project"
	FieldPIMSKey         FieldName = "pims_key"
)

type Dialect string

const (
	DialectLF   Dialect = "lf"
	DialectCRLF Dialect = "crlf"
)
