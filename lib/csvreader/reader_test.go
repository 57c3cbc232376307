package csvreader

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, contents string) string {
	fp := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fp, []byte(contents), 0o644))
	return fp
}

func writeGzipFile(t *testing.T, name, contents string) string {
	fp := filepath.Join(t.TempDir(), name)
	file, err := os.Create(fp)
	require.NoError(t, err)

	gzipWriter := gzip.NewWriter(file)
	_, err = gzipWriter.Write([]byte(contents))
	require.NoError(t, err)
	require.NoError(t, gzipWriter.Close())
	require.NoError(t, file.Close())
	return fp
}

func readAll(t *testing.T, reader *Reader, column string) []string {
	var values []string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			return values
		}
		require.NoError(t, err)

		value, _ := row.Get(column)
		values = append(values, value)
	}
}

func TestNewFilePath(t *testing.T) {
	{
		// File does not exist
		_, err := NewFilePath(filepath.Join(t.TempDir(), "missing.csv"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	}
	{
		// Empty file
		_, err := NewFilePath(writeFile(t, "empty.csv", ""))
		assert.ErrorContains(t, err, "file is empty, expected a header row")
	}
	{
		// Header only
		reader, err := NewFilePath(writeFile(t, "header.csv", "Gross Income,State\n"))
		assert.NoError(t, err)
		assert.Equal(t, []string{"Gross Income", "State"}, reader.Header())
		assert.True(t, reader.HasColumn("Gross Income"))
		assert.False(t, reader.HasColumn("gross income"))

		_, err = reader.Read()
		assert.ErrorIs(t, err, io.EOF)
		assert.NoError(t, reader.Close())
	}
	{
		// Malformed header
		_, err := NewFilePath(writeFile(t, "bad.csv", "\"Gross Income,State\n"))
		assert.ErrorContains(t, err, "failed to read header")
	}
	{
		// Not a gzip file
		_, err := NewFilePath(writeFile(t, "plain.csv.gz", "Gross Income\n1\n"))
		assert.ErrorContains(t, err, "failed to open gzip stream")
	}
}

func TestReader_Read(t *testing.T) {
	contents := "\ufeffGross Income,State,Note\n" +
		"1234.5,CA,plain\n" +
		"\"1,000\",NY,\"quoted, with comma\"\n" +
		"\n" +
		"77,TX\n" +
		"88,WA,extra,fields\n"

	reader, err := NewFilePath(writeFile(t, "households.csv", contents))
	require.NoError(t, err)
	defer reader.Close()

	assert.Equal(t, []string{"Gross Income", "State", "Note"}, reader.Header())

	{
		row, err := reader.Read()
		assert.NoError(t, err)
		value, ok := row.Get("Gross Income")
		assert.True(t, ok)
		assert.Equal(t, "1234.5", value)

		_, ok = row.Get("Household Weight")
		assert.False(t, ok)
	}
	{
		row, err := reader.Read()
		assert.NoError(t, err)
		value, _ := row.Get("Gross Income")
		assert.Equal(t, "1,000", value)
		value, _ = row.Get("Note")
		assert.Equal(t, "quoted, with comma", value)
	}
	{
		// Blank lines are skipped, short rows are allowed
		row, err := reader.Read()
		assert.NoError(t, err)
		value, _ := row.Get("State")
		assert.Equal(t, "TX", value)
		_, ok := row.Get("Note")
		assert.False(t, ok)
	}
	{
		// Long rows are allowed
		row, err := reader.Read()
		assert.NoError(t, err)
		value, _ := row.Get("Note")
		assert.Equal(t, "extra", value)
	}
	{
		_, err := reader.Read()
		assert.ErrorIs(t, err, io.EOF)
	}
}

func TestReader_ReadMalformedRow(t *testing.T) {
	reader, err := NewFilePath(writeFile(t, "households.csv", "Gross Income\n1\n\"2\n"))
	require.NoError(t, err)
	defer reader.Close()

	_, err = reader.Read()
	assert.NoError(t, err)

	_, err = reader.Read()
	assert.ErrorContains(t, err, "failed to read row")
}

func TestReader_DuplicateColumns(t *testing.T) {
	reader, err := NewFilePath(writeFile(t, "households.csv", "Gross Income,Gross Income\n1,2\n"))
	require.NoError(t, err)
	defer reader.Close()

	row, err := reader.Read()
	assert.NoError(t, err)
	value, _ := row.Get("Gross Income")
	assert.Equal(t, "2", value)
}

func TestReader_Gzip(t *testing.T) {
	reader, err := NewFilePath(writeGzipFile(t, "households.csv.gz", "Gross Income,State\n1,CA\n2,NY\n3,TX\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2", "3"}, readAll(t, reader, "Gross Income"))
	assert.NoError(t, reader.Close())
}
