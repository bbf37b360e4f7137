package domain

// RecordReader parses one accident data file into records. Implementations
// own decompression and delimited parsing; existence checks and bookkeeping
// belong to the caller.
type RecordReader interface {
	ReadFile(path string) ([]Record, error)
}
