package storage

import (
	"github.com/revelaction/autoredactle/article"
)

// IndexReader defines read operations for index storage
type IndexReader interface {
	// Read loads the whole index. Articles keep their stored order.
	Read() (*article.Index, error)
}

// IndexWriter defines write operations for index storage
type IndexWriter interface {
	// Write replaces the stored index with idx.
	Write(idx *article.Index) error
}

// IndexRepository combines read and write operations
type IndexRepository interface {
	IndexReader
	IndexWriter
}

// ProgressFunc is called once per article read or written, with the total
// number of articles when known (zero otherwise).
type ProgressFunc func(total int, title string)

// Progresser defines an optional capability for repositories that can report
// per-article progress, for long imports and exports.
type Progresser interface {
	SetProgress(cb ProgressFunc)
}
