// Package markerio streams marker answers to IR passes that run in another
// process, as msgpack or newline-delimited JSON.
package markerio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"hdlcfg/internal/directive"
)

// Schema is bumped whenever Record changes shape.
const Schema uint16 = 1

// Format selects the encoding.
type Format uint8

const (
	FormatMsgpack Format = iota + 1
	FormatJSON
)

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "msgpack", "mp":
		return FormatMsgpack, nil
	case "json", "ndjson":
		return FormatJSON, nil
	}
	return 0, fmt.Errorf("invalid marker format: %q (expected: msgpack|json)", s)
}

// Record is the answer to one application query.
type Record struct {
	Schema  uint16       `msgpack:"schema" json:"schema"`
	Query   string       `msgpack:"query" json:"query"` // module, task, var, coverage, case
	Target  string       `msgpack:"target" json:"target"`
	Markers []WireMarker `msgpack:"markers" json:"markers"`
}

// WireMarker is a Marker with names instead of enum values. The sensitivity
// is carried as its text.
type WireMarker struct {
	Kind string `msgpack:"kind" json:"kind"`
	Attr string `msgpack:"attr,omitempty" json:"attr,omitempty"`
	Sens string `msgpack:"sens,omitempty" json:"sens,omitempty"`
}

// NewRecord converts markers for the wire.
func NewRecord(query, target string, ms []directive.Marker) Record {
	rec := Record{Schema: Schema, Query: query, Target: target, Markers: make([]WireMarker, len(ms))}
	for i, m := range ms {
		w := WireMarker{Kind: m.Kind.String()}
		if m.Kind == directive.MarkerAttr {
			w.Attr = m.Attr.String()
		}
		if m.Sens != nil {
			w.Sens = fmt.Sprint(m.Sens)
		}
		rec.Markers[i] = w
	}
	return rec
}

// Decode converts the wire markers back. Sensitivities come back as strings.
func (r Record) Decode() ([]directive.Marker, error) {
	out := make([]directive.Marker, len(r.Markers))
	for i, w := range r.Markers {
		kind, err := directive.ParseMarkerKind(w.Kind)
		if err != nil {
			return nil, err
		}
		m := directive.Marker{Kind: kind}
		if w.Attr != "" {
			if m.Attr, err = directive.ParseAttrKind(w.Attr); err != nil {
				return nil, err
			}
		}
		if w.Sens != "" {
			m.Sens = w.Sens
		}
		out[i] = m
	}
	return out, nil
}

// Encoder writes records to a stream.
type Encoder struct {
	mp *msgpack.Encoder
	js *json.Encoder
}

func NewEncoder(w io.Writer, format Format) *Encoder {
	if format == FormatJSON {
		return &Encoder{js: json.NewEncoder(w)}
	}
	return &Encoder{mp: msgpack.NewEncoder(w)}
}

func (e *Encoder) Encode(rec Record) error {
	if rec.Schema == 0 {
		rec.Schema = Schema
	}
	if e.js != nil {
		return e.js.Encode(rec)
	}
	return e.mp.Encode(&rec)
}

// ErrSchema reports a record written by an incompatible version.
var ErrSchema = errors.New("unsupported marker schema")

// Decoder reads records from a stream. Decode returns io.EOF at the end.
type Decoder struct {
	mp *msgpack.Decoder
	js *json.Decoder
}

func NewDecoder(r io.Reader, format Format) *Decoder {
	if format == FormatJSON {
		return &Decoder{js: json.NewDecoder(r)}
	}
	return &Decoder{mp: msgpack.NewDecoder(r)}
}

func (d *Decoder) Decode(rec *Record) error {
	var err error
	if d.js != nil {
		err = d.js.Decode(rec)
	} else {
		err = d.mp.Decode(rec)
	}
	if err != nil {
		return err
	}
	if rec.Schema != Schema {
		return fmt.Errorf("%w: %d", ErrSchema, rec.Schema)
	}
	return nil
}
