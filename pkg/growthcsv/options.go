// Package growthcsv converts microplate-reader growth-curve exports
// into normalized long-format CSV files.
package growthcsv

import (
	"log"

	"github.com/wzlab/growthcsv/pkg/growthcsv/parser"
)

// Options configures conversion behavior.
type Options struct {
	// Layout holds the cell offsets of the export format.
	Layout parser.Layout
	// Verbose enables progress and summary logging.
	Verbose bool
	// Logger receives progress output when Verbose is set.
	// If nil, the standard logger is used.
	Logger *log.Logger
}

// DefaultOptions returns options for the standard OD600 export layout.
func DefaultOptions() Options {
	return Options{
		Layout: parser.DefaultLayout(),
	}
}
