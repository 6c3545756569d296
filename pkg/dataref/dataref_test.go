package dataref

import (
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadEmptyRef(t *testing.T) {
	ds, err := Load("")
	require.NoError(t, err)
	assert.Nil(t, ds)
}

func TestLoadCSV(t *testing.T) {
	path := writeFile(t, "grid.csv",
		"bus,voltage,name\n1,1.02,Station A\n2,0.98,Station B\n")

	ds, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, ds)
	assert.Equal(t, []string{"bus", "voltage", "name"}, ds.Columns)
	require.Equal(t, 2, ds.Len())
	assert.Equal(t, 1.02, ds.Rows[0]["voltage"])
	assert.Equal(t, "Station A", ds.Rows[0]["name"])
	assert.Equal(t, float64(2), ds.Rows[1]["bus"])
}

func TestLoadCSVFileScheme(t *testing.T) {
	path := writeFile(t, "grid.csv", "a,b\n1,2\n")

	ds, err := Load("file://" + path)
	require.NoError(t, err)
	assert.Equal(t, 1, ds.Len())
}

func TestLoadCSVEmpty(t *testing.T) {
	path := writeFile(t, "empty.csv", "")

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, ds.Len())
}

func TestLoadJSONEnvelope(t *testing.T) {
	path := writeFile(t, "snap.json",
		`{"columns":["bus","load"],"rows":[{"bus":1,"load":0.7}]}`)

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"bus", "load"}, ds.Columns)
	require.Equal(t, 1, ds.Len())
	assert.Equal(t, 0.7, ds.Rows[0]["load"])
}

func TestLoadJSONRecords(t *testing.T) {
	path := writeFile(t, "records.json",
		`[{"bus":1,"load":0.7},{"bus":2,"load":0.9}]`)

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"bus", "load"}, ds.Columns)
	assert.Equal(t, 2, ds.Len())
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeFile(t, "data.parquet", "nope")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported data file type")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
}

func TestMySQLRefValidation(t *testing.T) {
	_, err := Load("mysql://user@localhost:3306/grid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table or query")

	_, err = Load("mysql://user@localhost:3306/grid?table=bad;drop")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid table name")
}

func TestRedisRefValidation(t *testing.T) {
	_, err := Load("redis://localhost:6379/0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key parameter")

	_, err = Load("redis://localhost:6379/0?key=k&type=zset")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported redis value type")
}

func TestMySQLDSN(t *testing.T) {
	refs := map[string]string{
		"mysql://root:secret@db:3306/grid?table=buses": "root:secret@tcp(db:3306)/grid?parseTime=true",
		"mysql://db:3306/grid?table=buses":             "tcp(db:3306)/grid?parseTime=true",
	}
	for ref, want := range refs {
		u, err := url.Parse(ref)
		require.NoError(t, err)
		assert.Equal(t, want, mysqlDSN(u))
	}
}
