package statesplit

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"

	"github.com/jgbaldwinbrown/csvh"
)

// Manifest writes one JSON object per finished sample. It is safe for
// concurrent use.
type Manifest struct {
	mu sync.Mutex
	fp io.WriteCloser
	bw *bufio.Writer
	enc *json.Encoder
}

func CreateManifest(path string) (*Manifest, error) {
	fp, e := csvh.CreateMaybeGz(path)
	if e != nil {
		return nil, handle("CreateManifest: %w")(e)
	}
	bw := bufio.NewWriter(fp)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	return &Manifest{fp: fp, bw: bw, enc: enc}, nil
}

func (m *Manifest) Add(res SampleResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enc.Encode(res)
}

func (m *Manifest) Close() (err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	defer func() { csvh.DeferE(&err, m.fp.Close()) }()
	return m.bw.Flush()
}
