package schema

// Custom string types for type safety.
type (
	// StatusClass is the canonical classification of a raw status value.
	StatusClass string

	// MetricType identifies which day metric a result row carries.
	MetricType string

	// OutputMode represents the format of the output.
	OutputMode string
)

// All status classifications supported.
const (
	InProgressClass StatusClass = "in_progress"
	DoneClass       StatusClass = "done"
	OtherClass      StatusClass = "other"
)

// All metric types supported.
const (
	CycleTimeMetric   MetricType = "Cycle Time"
	WorkItemAgeMetric MetricType = "Work Item Age"
	NoMetric          MetricType = ""
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	XLSXOut    OutputMode = "xlsx"
	ParquetOut OutputMode = "parquet"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	XLSXOut:    {},
	ParquetOut: {},
}

// Logical column names resolved by the header normalizer. Input headers are
// matched against these case-insensitively after trimming.
const (
	ColumnKey        = "Key"
	ColumnChangeDate = "Date of change"
	ColumnStatus     = "Status"
	ColumnStatusNew  = "Status [new]"
)

// DefaultInProgressAliases are the status values that count as the start of
// work when no custom aliases are configured.
var DefaultInProgressAliases = []string{
	"In Progress", "In-Progress", "In_Progress", "InProgress", "In Review",
}

// DefaultDoneAliases are the status values that count as completed work when
// no custom aliases are configured.
var DefaultDoneAliases = []string{"Done", "Closed", "Resolved"}
