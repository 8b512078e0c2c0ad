package usi

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decode returns the record as UTF-8. Records saved by Japanese GUIs are
// often Shift-JIS.
func decode(data []byte) ([]byte, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return data, nil
	}
	decoded, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), japanese.ShiftJIS.NewDecoder()))
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(decoded) {
		return nil, errors.New("record is neither UTF-8 nor Shift-JIS")
	}
	return decoded, nil
}

// ReadRecord reads one game per line. Blank lines and text after a '#'
// are ignored.
func ReadRecord(r io.Reader) ([]*Game, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data, err := decode(raw)
	if err != nil {
		return nil, err
	}
	var games []*Game
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		g, err := ParsePosition(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		games = append(games, g)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return games, nil
}

func ReadRecordFile(path string) ([]*Game, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	games, err := ReadRecord(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return games, nil
}

// Summary counts what CheckFiles read.
type Summary struct {
	Files int
	Games int
	Moves int
}

// CheckFiles reads every record file, at most workers at a time, and
// stops at the first file that does not parse.
func CheckFiles(ctx context.Context, paths []string, workers int) (Summary, error) {
	var files, games, moves atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for _, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			gs, err := ReadRecordFile(path)
			if err != nil {
				return err
			}
			n := 0
			for _, game := range gs {
				n += len(game.Moves)
			}
			log.Debug().Str("file", path).Int("games", len(gs)).Int("moves", n).Msg("checked-record")
			files.Add(1)
			games.Add(int64(len(gs)))
			moves.Add(int64(n))
			return nil
		})
	}
	err := g.Wait()
	return Summary{
		Files: int(files.Load()),
		Games: int(games.Load()),
		Moves: int(moves.Load()),
	}, err
}
