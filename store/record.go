// Package store persists the parameter vectors of a voice bank as plain text:
// one line per voice in registry order, numbers separated by single spaces,
// fields in each voice's fixed persisted order. There is no header and no
// field naming, so writer and reader must agree on the bank layout.
package store

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lixenwraith/fm-drums/voice"
)

// Fields returns the total number of persisted values across voices
func Fields(voices []voice.Voice) int {
	n := 0
	for _, v := range voices {
		n += len(voice.Persisted(v.Params()))
	}
	return n
}

// Write serializes every voice's persisted parameters, one line per voice
// Values use the shortest form that parses back to the same float64.
func Write(w io.Writer, voices []voice.Voice) error {
	bw := bufio.NewWriter(w)
	var sb strings.Builder
	for _, v := range voices {
		sb.Reset()
		for i, p := range voice.Persisted(v.Params()) {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(p.Value(), 'g', -1, 64))
		}
		sb.WriteByte('\n')
		if _, err := bw.WriteString(sb.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Read assigns values from r to each voice's persisted parameters in order
// Line breaks are not significant. Values are clamped to range on assignment.
// Running out of input is not an error: Read stops and reports how many fields
// it assigned, leaving the rest untouched. A token that is not a number is an
// error; fields before it stay assigned.
func Read(r io.Reader, voices []voice.Voice) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	n := 0
	for vi, v := range voices {
		for _, p := range voice.Persisted(v.Params()) {
			if !sc.Scan() {
				return n, sc.Err()
			}
			f, err := strconv.ParseFloat(sc.Text(), 64)
			if err != nil {
				return n, fmt.Errorf("voice %d (%s) field %s: %w", vi, v.Kind().Key(), p.Name, err)
			}
			p.Set(f)
			n++
		}
	}
	return n, nil
}
