// Package chatpb is the wire schema for the chat262 replica cluster: the
// Auth and Chat service messages and their gRPC client/server bindings.
//
// The types in this package are written in the shape protoc-gen-go's
// original (APIv1) generator produced: a plain struct with protobuf
// struct tags plus hand-rolled Marshal/Unmarshal methods, registered with
// gogo/protobuf. There is no .proto file and no protoc step; the encoding
// below borrows the protobuf wire format's varints and length-delimited
// strings but has no field tags: each message writes its fields in a fixed
// order. It is only required to round-trip against itself, not to
// interoperate with a real protobuf decoder.
package chatpb

import (
	"encoding/binary"
	"fmt"
	"io"
)

// wireBuf accumulates an encoded message. Mirrors the buffer gogo's
// generated Marshal methods build into before returning the backing slice.
type wireBuf struct {
	buf []byte
}

func (w *wireBuf) putUvarint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf = append(w.buf, tmp[:n]...)
}

func (w *wireBuf) putBool(v bool) {
	if v {
		w.buf = append(w.buf, 1)
	} else {
		w.buf = append(w.buf, 0)
	}
}

func (w *wireBuf) putString(s string) {
	w.putUvarint(uint64(len(s)))
	w.buf = append(w.buf, s...)
}

func (w *wireBuf) putStringSlice(ss []string) {
	w.putUvarint(uint64(len(ss)))
	for _, s := range ss {
		w.putString(s)
	}
}

func (w *wireBuf) putBytes(b []byte) {
	w.putUvarint(uint64(len(b)))
	w.buf = append(w.buf, b...)
}

// wireReader decodes a buffer built by wireBuf.
type wireReader struct {
	buf []byte
	pos int
}

func (r *wireReader) getUvarint() (uint64, error) {
	v, n := binary.Uvarint(r.buf[r.pos:])
	if n <= 0 {
		return 0, io.ErrUnexpectedEOF
	}
	r.pos += n
	return v, nil
}

func (r *wireReader) getBool() (bool, error) {
	if r.pos >= len(r.buf) {
		return false, io.ErrUnexpectedEOF
	}
	b := r.buf[r.pos]
	r.pos++
	return b != 0, nil
}

func (r *wireReader) getString() (string, error) {
	n, err := r.getUvarint()
	if err != nil {
		return "", err
	}
	if uint64(r.pos)+n > uint64(len(r.buf)) {
		return "", fmt.Errorf("chatpb: truncated string field")
	}
	s := string(r.buf[r.pos : r.pos+int(n)])
	r.pos += int(n)
	return s, nil
}

func (r *wireReader) getStringSlice() ([]string, error) {
	n, err := r.getUvarint()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	out := make([]string, 0, n)
	for i := uint64(0); i < n; i++ {
		s, err := r.getString()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *wireReader) getBytes() ([]byte, error) {
	n, err := r.getUvarint()
	if err != nil {
		return nil, err
	}
	if uint64(r.pos)+n > uint64(len(r.buf)) {
		return nil, fmt.Errorf("chatpb: truncated bytes field")
	}
	b := append([]byte(nil), r.buf[r.pos:r.pos+int(n)]...)
	r.pos += int(n)
	return b, nil
}
