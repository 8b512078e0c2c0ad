package config

import (
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()
	is.Equal(c.GetBool(ConfigDebug), false)
	is.Equal(c.GetInt(ConfigRecordWorkers), 4)
	is.Equal(c.GetString(ConfigBookPath), "./data/book.yaml")
}

func TestLoad(t *testing.T) {
	is := is.New(t)
	t.Chdir(t.TempDir())
	t.Setenv("SHOGIMOVE_RECORD_WORKERS", "12")
	t.Setenv("SHOGIMOVE_BOOK_PATH", "/env/book.yaml")

	c := &Config{}
	is.NoErr(c.Load([]string{"--debug", "--book-path=/args/book.yaml", "position"}))
	is.True(c.GetBool(ConfigDebug))
	is.Equal(c.GetInt(ConfigRecordWorkers), 12)
	is.Equal(c.GetString(ConfigBookPath), "/args/book.yaml")
}

func TestAdjustRelativePaths(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()
	c.AdjustRelativePaths("/opt/shogimove")
	is.Equal(c.GetString(ConfigBookPath), filepath.Join("/opt/shogimove", "data/book.yaml"))

	c.Set(ConfigBookPath, "/abs/book.yaml")
	c.AdjustRelativePaths("/opt/shogimove")
	is.Equal(c.GetString(ConfigBookPath), "/abs/book.yaml")
}
