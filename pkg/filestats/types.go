package filestats

// Result holds the statistics produced by one analysis run. It is immutable
// once returned by an Analyzer and owned solely by the caller; nothing is
// persisted between invocations.
type Result struct {
	// Filename is the path as supplied by the caller, truncated to at most
	// MaxFilenameLen bytes. Truncation is silent.
	Filename string `json:"filename"`
	// Lines is the count of newline ('\n') bytes in the file. A final line
	// lacking a trailing newline is not separately counted.
	Lines int64 `json:"lines"`
	// Words is the count of maximal runs of non-whitespace bytes, using the
	// ASCII whitespace classification (space, \t, \n, \r, \v, \f).
	Words int64 `json:"words"`
	// Characters is the number of bytes read during the scan. This is a byte
	// count, not a Unicode codepoint count.
	Characters int64 `json:"characters"`
	// SizeBytes is the file size measured once, by seeking to the end of the
	// stream before the scan begins. The file is scanned in raw binary mode,
	// so Characters equals SizeBytes unless the file is modified concurrently.
	SizeBytes int64 `json:"size_bytes"`
}
