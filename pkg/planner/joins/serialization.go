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

package joins

import (
	"io"

	"github.com/pingcap/errors"
)

// Each enum travels as a single-byte discriminant equal to its declared
// numeric value. A discriminant outside the declared range is a decode error,
// never silently defaulted: a malformed plan must be rejected, not guessed at.

// SerializeJoinKind writes the wire discriminant of kind to w.
func SerializeJoinKind(kind JoinKind, w io.ByteWriter) error {
	return errors.Trace(w.WriteByte(byte(kind)))
}

// DeserializeJoinKind reads a join kind discriminant from r.
func DeserializeJoinKind(r io.ByteReader) (JoinKind, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, errors.Annotate(err, "deserialize join kind")
	}
	if b > byte(PasteJoin) {
		return 0, errors.Errorf("invalid join kind discriminant: %d", b)
	}
	return JoinKind(b), nil
}

// SerializeJoinStrictness writes the wire discriminant of strictness to w.
func SerializeJoinStrictness(strictness JoinStrictness, w io.ByteWriter) error {
	return errors.Trace(w.WriteByte(byte(strictness)))
}

// DeserializeJoinStrictness reads a join strictness discriminant from r.
func DeserializeJoinStrictness(r io.ByteReader) (JoinStrictness, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, errors.Annotate(err, "deserialize join strictness")
	}
	if b > byte(StrictnessAnti) {
		return 0, errors.Errorf("invalid join strictness discriminant: %d", b)
	}
	return JoinStrictness(b), nil
}

// SerializeJoinLocality writes the wire discriminant of locality to w.
func SerializeJoinLocality(locality JoinLocality, w io.ByteWriter) error {
	return errors.Trace(w.WriteByte(byte(locality)))
}

// DeserializeJoinLocality reads a join locality discriminant from r.
func DeserializeJoinLocality(r io.ByteReader) (JoinLocality, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, errors.Annotate(err, "deserialize join locality")
	}
	if b > byte(LocalityGlobal) {
		return 0, errors.Errorf("invalid join locality discriminant: %d", b)
	}
	return JoinLocality(b), nil
}

// SerializeASOFJoinInequality writes the wire discriminant of inequality to w.
func SerializeASOFJoinInequality(inequality ASOFJoinInequality, w io.ByteWriter) error {
	return errors.Trace(w.WriteByte(byte(inequality)))
}

// DeserializeASOFJoinInequality reads an as-of inequality discriminant from r.
func DeserializeASOFJoinInequality(r io.ByteReader) (ASOFJoinInequality, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, errors.Annotate(err, "deserialize asof join inequality")
	}
	if b > byte(ASOFGreaterOrEquals) {
		return 0, errors.Errorf("invalid asof join inequality discriminant: %d", b)
	}
	return ASOFJoinInequality(b), nil
}

// SerializeJoinAlgorithm writes the wire discriminant of algorithm to w.
func SerializeJoinAlgorithm(algorithm JoinAlgorithm, w io.ByteWriter) error {
	return errors.Trace(w.WriteByte(byte(algorithm)))
}

// DeserializeJoinAlgorithm reads a join algorithm discriminant from r.
func DeserializeJoinAlgorithm(r io.ByteReader) (JoinAlgorithm, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, errors.Annotate(err, "deserialize join algorithm")
	}
	if b > byte(AlgorithmFullSortingMerge) {
		return 0, errors.Errorf("invalid join algorithm discriminant: %d", b)
	}
	return JoinAlgorithm(b), nil
}

// SerializeJoinTableSide writes the wire discriminant of side to w.
func SerializeJoinTableSide(side JoinTableSide, w io.ByteWriter) error {
	return errors.Trace(w.WriteByte(byte(side)))
}

// DeserializeJoinTableSide reads a join table side discriminant from r.
func DeserializeJoinTableSide(r io.ByteReader) (JoinTableSide, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, errors.Annotate(err, "deserialize join table side")
	}
	if b > byte(RightSide) {
		return 0, errors.Errorf("invalid join table side discriminant: %d", b)
	}
	return JoinTableSide(b), nil
}

// Serialize writes the five discriminants of d in field order.
func (d JoinDescriptor) Serialize(w io.ByteWriter) error {
	if err := SerializeJoinKind(d.Kind, w); err != nil {
		return errors.Trace(err)
	}
	if err := SerializeJoinStrictness(d.Strictness, w); err != nil {
		return errors.Trace(err)
	}
	if err := SerializeJoinLocality(d.Locality, w); err != nil {
		return errors.Trace(err)
	}
	if err := SerializeASOFJoinInequality(d.ASOFInequality, w); err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(SerializeJoinAlgorithm(d.Algorithm, w))
}

// DeserializeJoinDescriptor reads a descriptor written by Serialize.
func DeserializeJoinDescriptor(r io.ByteReader) (JoinDescriptor, error) {
	var d JoinDescriptor
	var err error
	if d.Kind, err = DeserializeJoinKind(r); err != nil {
		return JoinDescriptor{}, errors.Trace(err)
	}
	if d.Strictness, err = DeserializeJoinStrictness(r); err != nil {
		return JoinDescriptor{}, errors.Trace(err)
	}
	if d.Locality, err = DeserializeJoinLocality(r); err != nil {
		return JoinDescriptor{}, errors.Trace(err)
	}
	if d.ASOFInequality, err = DeserializeASOFJoinInequality(r); err != nil {
		return JoinDescriptor{}, errors.Trace(err)
	}
	if d.Algorithm, err = DeserializeJoinAlgorithm(r); err != nil {
		return JoinDescriptor{}, errors.Trace(err)
	}
	return d, nil
}
