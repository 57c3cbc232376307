package csvreader

import (
	"compress/gzip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/artie-labs/sampler/lib/stringutil"
)

type Reader struct {
	file   *os.File
	gzip   *gzip.Reader
	reader *csv.Reader

	header []string
	// columnIndex maps a column name to its position, if a name repeats the right most column wins.
	columnIndex map[string]int
}

// NewFilePath opens a comma delimited file and reads its header. Files ending in `.gz` are decompressed on the fly.
func NewFilePath(fp string) (*Reader, error) {
	file, err := os.Open(fp)
	if err != nil {
		return nil, err
	}

	var src io.Reader = file
	var gzipReader *gzip.Reader
	if strings.HasSuffix(strings.ToLower(fp), ".gz") {
		gzipReader, err = gzip.NewReader(file)
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		src = gzipReader
	}

	csvReader := csv.NewReader(src)
	// Rows with fewer or more fields than the header are allowed, missing values are treated as empty.
	csvReader.FieldsPerRecord = -1
	csvReader.ReuseRecord = true

	r := &Reader{
		file:   file,
		gzip:   gzipReader,
		reader: csvReader,
	}

	if err = r.readHeader(); err != nil {
		_ = r.Close()
		return nil, err
	}

	return r, nil
}

func (r *Reader) readHeader() error {
	record, err := r.reader.Read()
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("file is empty, expected a header row")
	} else if err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}

	r.header = make([]string, len(record))
	r.columnIndex = make(map[string]int, len(record))
	for i, column := range record {
		if i == 0 {
			column = stringutil.StripByteOrderMark(column)
		}

		r.header[i] = column
		r.columnIndex[column] = i
	}

	return nil
}

func (r *Reader) Header() []string {
	return r.header
}

// HasColumn returns true if the header contains the column, the match is exact.
func (r *Reader) HasColumn(column string) bool {
	_, ok := r.columnIndex[column]
	return ok
}

// Read returns the next data row, or [io.EOF] once the file is exhausted.
// The returned row is only valid until the next call to Read.
func (r *Reader) Read() (Row, error) {
	record, err := r.reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Row{}, io.EOF
		}

		return Row{}, fmt.Errorf("failed to read row: %w", err)
	}

	return Row{values: record, columnIndex: r.columnIndex}, nil
}

func (r *Reader) Close() error {
	if r.gzip != nil {
		if err := r.gzip.Close(); err != nil {
			// If gzip fails, we should at least try to close the file
			_ = r.file.Close()
			return err
		}
	}

	return r.file.Close()
}
