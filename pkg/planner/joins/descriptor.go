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
	"bytes"
	"fmt"
	"strings"

	"github.com/pingcap/errors"
)

// JoinDescriptor is the full semantic description of one join clause. The
// five fields are independent axes; Validate checks the few cross-axis
// combinations that cannot occur in a well-formed plan.
type JoinDescriptor struct {
	Kind           JoinKind
	Strictness     JoinStrictness
	Locality       JoinLocality
	ASOFInequality ASOFJoinInequality
	Algorithm      JoinAlgorithm
}

// Validate checks the cross-axis invariants of the descriptor.
func (d JoinDescriptor) Validate() error {
	if d.Strictness == StrictnessAsof && d.ASOFInequality == ASOFNone {
		return errors.New("ASOF join requires an inequality on the last join column")
	}
	if d.Strictness != StrictnessAsof && d.ASOFInequality != ASOFNone {
		return errors.Errorf("%s inequality is only allowed for ASOF join", d.ASOFInequality)
	}
	if d.Strictness == StrictnessSemi || d.Strictness == StrictnessAnti {
		if !d.Kind.IsLeft() && !d.Kind.IsRight() {
			return errors.Errorf("%s join requires LEFT or RIGHT kind, got %s", d.Strictness, d.Kind)
		}
	}
	if (d.Kind.IsCrossOrComma() || d.Kind.IsPaste()) && d.Strictness != StrictnessUnspecified {
		return errors.Errorf("%s join does not take a strictness, got %s", d.Kind, d.Strictness)
	}
	return nil
}

// Reverse describes the same join with its operands swapped. The kind and the
// as-of inequality flip together; applying Reverse twice yields d.
func (d JoinDescriptor) Reverse() JoinDescriptor {
	d.Kind = d.Kind.Reverse()
	d.ASOFInequality = d.ASOFInequality.Reverse()
	return d
}

// String renders the clause the way explain output spells it, e.g.
// "GLOBAL SEMI LEFT JOIN" or "ASOF LEFT JOIN LESS".
func (d JoinDescriptor) String() string {
	var sb strings.Builder
	if d.Locality != LocalityUnspecified {
		sb.WriteString(d.Locality.String())
		sb.WriteByte(' ')
	}
	if d.Strictness != StrictnessUnspecified {
		sb.WriteString(d.Strictness.String())
		sb.WriteByte(' ')
	}
	sb.WriteString(d.Kind.String())
	sb.WriteString(" JOIN")
	if d.ASOFInequality != ASOFNone {
		sb.WriteByte(' ')
		sb.WriteString(d.ASOFInequality.String())
	}
	return sb.String()
}

// MarshalJSON implements json.Marshaler interface.
func (d JoinDescriptor) MarshalJSON() ([]byte, error) {
	buffer := bytes.NewBufferString("{")
	buffer.WriteString(fmt.Sprintf(
		"\"kind\": %q, "+
			"\"strictness\": %q, "+
			"\"locality\": %q, "+
			"\"asof_inequality\": %q, "+
			"\"algorithm\": %q}",
		d.Kind, d.Strictness, d.Locality, d.ASOFInequality, d.Algorithm))
	return buffer.Bytes(), nil
}

// ParseJoinAlgorithm maps a join_algorithm setting value to the algorithm it
// names. Unlike GetASOFJoinInequality, an unknown name here is user input and
// is rejected.
func ParseJoinAlgorithm(name string) (JoinAlgorithm, error) {
	algorithms := [...]JoinAlgorithm{
		AlgorithmDefault,
		AlgorithmAuto,
		AlgorithmHash,
		AlgorithmPartialMerge,
		AlgorithmPreferPartialMerge,
		AlgorithmParallelHash,
		AlgorithmGraceHash,
		AlgorithmDirect,
		AlgorithmFullSortingMerge,
	}
	for _, a := range algorithms {
		if name == a.String() {
			return a, nil
		}
	}
	return 0, errors.Errorf("unknown join algorithm: %q", name)
}

// ParseJoinAlgorithmList parses a comma-separated join_algorithm preference
// list, e.g. "direct,hash". Entries are trimmed; an empty list is an error.
func ParseJoinAlgorithmList(list string) ([]JoinAlgorithm, error) {
	names := strings.Split(list, ",")
	result := make([]JoinAlgorithm, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		a, err := ParseJoinAlgorithm(name)
		if err != nil {
			return nil, errors.Trace(err)
		}
		result = append(result, a)
	}
	if len(result) == 0 {
		return nil, errors.Errorf("empty join algorithm list: %q", list)
	}
	return result, nil
}
