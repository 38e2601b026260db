package cpool

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/andreyvit/jclass"
	"github.com/cespare/xxhash/v2"
	"github.com/vmihailenco/msgpack/v5"
)

type storedConstant struct {
	Kind uint8  `msgpack:"k"`
	Text string `msgpack:"t,omitempty"`
	Name uint16 `msgpack:"n,omitempty"`
}

func encodeConstant(buf *bytes.Buffer, c jclass.Constant) {
	buf.Reset()
	enc := msgpack.GetEncoder()
	enc.Reset(buf)
	err := enc.Encode(&storedConstant{Kind: uint8(c.Kind), Text: c.Text, Name: uint16(c.Name)})
	msgpack.PutEncoder(enc)
	if err != nil {
		panic(fmt.Errorf("failed to encode %v using MsgPack: %w", c, err))
	}
}

func decodeConstant(raw []byte) (jclass.Constant, error) {
	var r bytes.Reader
	r.Reset(raw)
	dec := msgpack.GetDecoder()
	dec.Reset(&r)
	var sc storedConstant
	err := dec.Decode(&sc)
	msgpack.PutDecoder(dec)
	if err != nil {
		return jclass.Constant{}, fmt.Errorf("failed to decode msgpack constant %x: %w", raw, err)
	}
	return jclass.Constant{Kind: jclass.ConstKind(sc.Kind), Text: sc.Text, Name: jclass.Utf8Ref(sc.Name)}, nil
}

// constantKey hashes the stored encoding, which is canonical for a given
// constant.
func constantKey(encoded []byte) uint64 {
	return xxhash.Sum64(encoded)
}

func indexKey(idx uint16) []byte {
	var k [2]byte
	binary.BigEndian.PutUint16(k[:], idx)
	return k[:]
}

func parseIndexKey(k []byte) (uint16, bool) {
	if len(k) != 2 {
		return 0, false
	}
	return binary.BigEndian.Uint16(k), true
}
