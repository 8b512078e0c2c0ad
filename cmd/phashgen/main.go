// phashgen writes the displacement table used by move.PerfectHash.
// It is run by go generate in the move package.
package main

import (
	"bytes"
	"go/format"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/shogimove/move"
)

const header = `// Code generated by phashgen. DO NOT EDIT.

package move

// perfectHashTable is the displacement table for PerfectHash, built over the
// moves EnumerateQuiet visits. Regenerate it whenever the move layout or
// that domain changes.
var perfectHashTable = [perfectHashTableSize]uint16{
`

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	out := "phash_table.go"
	if len(os.Args) > 1 {
		out = os.Args[1]
	}

	table, err := move.BuildPerfectHashTable()
	if err != nil {
		log.Fatal().Err(err).Msg("building-perfect-hash-table")
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	for i, v := range table {
		if i%8 == 0 {
			buf.WriteByte('\t')
		}
		buf.WriteString(strconv.Itoa(int(v)))
		buf.WriteByte(',')
		if i%8 == 7 {
			buf.WriteByte('\n')
		} else {
			buf.WriteByte(' ')
		}
	}
	buf.WriteString("}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatal().Err(err).Msg("formatting-table")
	}
	if err := os.WriteFile(out, src, 0644); err != nil {
		log.Fatal().Err(err).Msg("writing-table")
	}
	log.Info().Int("entries", len(table)).Str("file", out).Msg("wrote-table")
}
