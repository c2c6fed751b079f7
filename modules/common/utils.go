package common

import (
	"bytes"
	"encoding/json"

	"github.com/ipfs/go-cid"
	"github.com/ipld/go-ipld-prime/codec/dagcbor"
	"github.com/ipld/go-ipld-prime/node/basicnode"
	"github.com/multiformats/go-multicodec"
	multihash "github.com/multiformats/go-multihash/core"

	codecJson "github.com/ipld/go-ipld-prime/codec/json"
)

func EncodeDagCbor(obj interface{}) ([]byte, error) {
	buf, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}

	nb := basicnode.Prototype.Any.NewBuilder()

	err = codecJson.Decode(nb, bytes.NewBuffer(buf))
	if err != nil {
		return nil, err
	}

	node := nb.Build()

	var bbuf bytes.Buffer
	err = dagcbor.Encode(node, &bbuf)
	if err != nil {
		return nil, err
	}
	return bbuf.Bytes(), nil
}

func HashBytes(data []byte, mf multicodec.Code) (cid.Cid, error) {
	prefix := cid.Prefix{
		Version:  1,
		Codec:    uint64(mf),
		MhType:   multihash.SHA2_256,
		MhLength: -1,
	}

	return prefix.Sum(data)
}
