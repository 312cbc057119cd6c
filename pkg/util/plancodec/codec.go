// Copyright 2024 Marlin Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package plancodec encodes plan fragments into a compact printable form for
// explain output, slow logs and cross-node shipping.
package plancodec

import (
	"bytes"
	"encoding/base64"

	"github.com/golang/snappy"
	"github.com/pingcap/errors"

	"github.com/marlindb/marlin/pkg/planner/joins"
)

// EncodeJoin encodes a join descriptor into a compact printable string.
func EncodeJoin(d joins.JoinDescriptor) (string, error) {
	var buf bytes.Buffer
	if err := d.Serialize(&buf); err != nil {
		return "", errors.Trace(err)
	}
	return Compress(buf.Bytes()), nil
}

// DecodeJoin decodes a string produced by EncodeJoin back into a descriptor.
func DecodeJoin(s string) (joins.JoinDescriptor, error) {
	bs, err := decompress(s)
	if err != nil {
		return joins.JoinDescriptor{}, errors.Annotate(err, "decode join")
	}
	d, err := joins.DeserializeJoinDescriptor(bytes.NewReader(bs))
	if err != nil {
		return joins.JoinDescriptor{}, errors.Trace(err)
	}
	return d, nil
}

// Compress compresses the input with snappy and encodes it as base64.
func Compress(input []byte) string {
	compressBytes := snappy.Encode(nil, input)
	return base64.StdEncoding.EncodeToString(compressBytes)
}

func decompress(str string) ([]byte, error) {
	decodeBytes, err := base64.StdEncoding.DecodeString(str)
	if err != nil {
		return nil, errors.Trace(err)
	}
	bs, err := snappy.Decode(nil, decodeBytes)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return bs, nil
}
