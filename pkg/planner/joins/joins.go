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

// Package joins defines the closed vocabulary of join semantics shared by the
// parser, the planner, the executor and the distributed plan serializer.
// Every enum value doubles as its wire discriminant, so values are assigned
// explicitly and may only be appended to, never renumbered.
package joins

import (
	"github.com/marlindb/marlin/pkg/util/logutil"
	"go.uber.org/zap"
)

// JoinKind defines which side of the join is preserved in the result.
type JoinKind byte

const (
	// InnerJoin keeps only joined rows.
	InnerJoin JoinKind = 0
	// LeftJoin keeps all rows from the left table, filling the right side
	// with default values where no match exists.
	LeftJoin JoinKind = 1
	// RightJoin keeps all rows from the right table, filling the left side
	// with default values where no match exists.
	RightJoin JoinKind = 2
	// FullJoin keeps all rows from both tables, filling with default values
	// where no match exists.
	FullJoin JoinKind = 3
	// CrossJoin is the direct product. Strictness and condition do not apply.
	CrossJoin JoinKind = 4
	// CommaJoin is the direct product, intended to be converted to an inner
	// join with conditions pulled from WHERE.
	CommaJoin JoinKind = 5
	// PasteJoin stacks columns from the left and right tables side by side.
	// Like CrossJoin, strictness and condition do not apply.
	PasteJoin JoinKind = 6
)

// IsLeft reports whether k is a left join.
func (k JoinKind) IsLeft() bool { return k == LeftJoin }

// IsRight reports whether k is a right join.
func (k JoinKind) IsRight() bool { return k == RightJoin }

// IsInner reports whether k is an inner join.
func (k JoinKind) IsInner() bool { return k == InnerJoin }

// IsFull reports whether k is a full join.
func (k JoinKind) IsFull() bool { return k == FullJoin }

// IsOuter reports whether any side of k is preserved without a match.
func (k JoinKind) IsOuter() bool {
	return k == LeftJoin || k == RightJoin || k == FullJoin
}

// IsCrossOrComma reports whether k is a direct product without a condition.
func (k JoinKind) IsCrossOrComma() bool { return k == CrossJoin || k == CommaJoin }

// IsRightOrFull reports whether the left side may need default-value filling.
func (k JoinKind) IsRightOrFull() bool { return k == RightJoin || k == FullJoin }

// IsLeftOrFull reports whether the right side may need default-value filling.
func (k JoinKind) IsLeftOrFull() bool { return k == LeftJoin || k == FullJoin }

// IsInnerOrRight reports whether every surviving left row has a match.
func (k JoinKind) IsInnerOrRight() bool { return k == InnerJoin || k == RightJoin }

// IsInnerOrLeft reports whether every surviving right row has a match.
func (k JoinKind) IsInnerOrLeft() bool { return k == InnerJoin || k == LeftJoin }

// IsPaste reports whether k is a column-stacking join.
func (k JoinKind) IsPaste() bool { return k == PasteJoin }

// Reverse maps a join kind to the kind obtained by swapping the operands.
// Applying it twice yields the original kind.
func (k JoinKind) Reverse() JoinKind {
	switch k {
	case LeftJoin:
		return RightJoin
	case RightJoin:
		return LeftJoin
	}
	return k
}

// String implements fmt.Stringer interface.
func (k JoinKind) String() string {
	switch k {
	case InnerJoin:
		return "INNER"
	case LeftJoin:
		return "LEFT"
	case RightJoin:
		return "RIGHT"
	case FullJoin:
		return "FULL"
	case CrossJoin:
		return "CROSS"
	case CommaJoin:
		return "COMMA"
	case PasteJoin:
		return "PASTE"
	}
	logutil.BgLogger().Fatal("invalid join kind", zap.Uint8("kind", uint8(k)))
	return ""
}

// JoinStrictness defines how multiple matches on the other side are resolved.
// It allows a more optimal join for typical cases.
type JoinStrictness byte

const (
	// StrictnessUnspecified leaves the choice to the default of the context.
	StrictnessUnspecified JoinStrictness = 0
	// StrictnessRightAny is the old ANY join: if many rows of the right table
	// match, join with any one of them.
	StrictnessRightAny JoinStrictness = 1
	// StrictnessAny is a semi join with any value from the filtering table.
	// For a left join, Any and RightAny behave the same.
	StrictnessAny JoinStrictness = 2
	// StrictnessAll replicates rows of the probing table for every match,
	// the usual SQL join semantic.
	StrictnessAll JoinStrictness = 3
	// StrictnessAsof picks the closest value by an inequality on the last
	// join column.
	StrictnessAsof JoinStrictness = 4
	// StrictnessSemi filters one table by key existence in the other.
	// Only meaningful combined with a left or right kind.
	StrictnessSemi JoinStrictness = 5
	// StrictnessAnti filters one table by key absence in the other.
	// Only meaningful combined with a left or right kind.
	StrictnessAnti JoinStrictness = 6
)

// String implements fmt.Stringer interface.
func (s JoinStrictness) String() string {
	switch s {
	case StrictnessUnspecified:
		return "UNSPECIFIED"
	case StrictnessRightAny:
		return "RIGHT_ANY"
	case StrictnessAny:
		return "ANY"
	case StrictnessAll:
		return "ALL"
	case StrictnessAsof:
		return "ASOF"
	case StrictnessSemi:
		return "SEMI"
	case StrictnessAnti:
		return "ANTI"
	}
	logutil.BgLogger().Fatal("invalid join strictness", zap.Uint8("strictness", uint8(s)))
	return ""
}

// JoinLocality defines where a join executes in a distributed deployment.
// It is orthogonal to kind and strictness.
type JoinLocality byte

const (
	// LocalityUnspecified leaves the choice to the default of the context.
	LocalityUnspecified JoinLocality = 0
	// LocalityLocal joins using only co-located data on each node.
	LocalityLocal JoinLocality = 1
	// LocalityGlobal collects the build side from remote nodes and
	// broadcasts it to every node.
	LocalityGlobal JoinLocality = 2
)

// String implements fmt.Stringer interface.
func (l JoinLocality) String() string {
	switch l {
	case LocalityUnspecified:
		return "UNSPECIFIED"
	case LocalityLocal:
		return "LOCAL"
	case LocalityGlobal:
		return "GLOBAL"
	}
	logutil.BgLogger().Fatal("invalid join locality", zap.Uint8("locality", uint8(l)))
	return ""
}

// ASOFJoinInequality is the comparison driving an as-of match.
type ASOFJoinInequality byte

const (
	// ASOFNone marks a comparison that is not an as-of comparison.
	ASOFNone ASOFJoinInequality = 0
	// ASOFLess matches the greatest right value strictly below the left one.
	ASOFLess ASOFJoinInequality = 1
	// ASOFGreater matches the least right value strictly above the left one.
	ASOFGreater ASOFJoinInequality = 2
	// ASOFLessOrEquals matches the greatest right value not above the left one.
	ASOFLessOrEquals ASOFJoinInequality = 3
	// ASOFGreaterOrEquals matches the least right value not below the left one.
	ASOFGreaterOrEquals ASOFJoinInequality = 4
)

// GetASOFJoinInequality maps a comparison function name to the inequality it
// drives. Unrecognized names yield ASOFNone: the comparison is simply not
// eligible for as-of matching, it is not an error.
func GetASOFJoinInequality(funcName string) ASOFJoinInequality {
	switch funcName {
	case "less":
		return ASOFLess
	case "greater":
		return ASOFGreater
	case "lessOrEquals":
		return ASOFLessOrEquals
	case "greaterOrEquals":
		return ASOFGreaterOrEquals
	}
	return ASOFNone
}

// Reverse maps an inequality to the one obtained by swapping the operands.
// Applying it twice yields the original inequality.
func (i ASOFJoinInequality) Reverse() ASOFJoinInequality {
	switch i {
	case ASOFLess:
		return ASOFGreater
	case ASOFGreater:
		return ASOFLess
	case ASOFLessOrEquals:
		return ASOFGreaterOrEquals
	case ASOFGreaterOrEquals:
		return ASOFLessOrEquals
	}
	return ASOFNone
}

// String implements fmt.Stringer interface.
func (i ASOFJoinInequality) String() string {
	switch i {
	case ASOFNone:
		return "NONE"
	case ASOFLess:
		return "LESS"
	case ASOFGreater:
		return "GREATER"
	case ASOFLessOrEquals:
		return "LESS_OR_EQUALS"
	case ASOFGreaterOrEquals:
		return "GREATER_OR_EQUALS"
	}
	logutil.BgLogger().Fatal("invalid asof join inequality", zap.Uint8("inequality", uint8(i)))
	return ""
}

// JoinAlgorithm is the physical execution strategy selected by the planner.
// Whether an algorithm is legal for a given kind and strictness is the
// planner's call, not validated here.
type JoinAlgorithm byte

const (
	// AlgorithmDefault is deprecated, equivalent to "direct,hash".
	AlgorithmDefault JoinAlgorithm = 0
	// AlgorithmAuto lets the planner pick by estimated sizes.
	AlgorithmAuto JoinAlgorithm = 1
	// AlgorithmHash builds an in-memory hash table over the right table.
	AlgorithmHash JoinAlgorithm = 2
	// AlgorithmPartialMerge sorts both sides in blocks and merges them.
	AlgorithmPartialMerge JoinAlgorithm = 3
	// AlgorithmPreferPartialMerge uses partial merge when applicable.
	AlgorithmPreferPartialMerge JoinAlgorithm = 4
	// AlgorithmParallelHash splits the build side across threads.
	AlgorithmParallelHash JoinAlgorithm = 5
	// AlgorithmGraceHash spills hash buckets to disk when memory is short.
	AlgorithmGraceHash JoinAlgorithm = 6
	// AlgorithmDirect probes a key-value storage instead of building a table.
	AlgorithmDirect JoinAlgorithm = 7
	// AlgorithmFullSortingMerge fully sorts both sides before merging.
	AlgorithmFullSortingMerge JoinAlgorithm = 8
)

// String implements fmt.Stringer interface. The names double as the setting
// values accepted by ParseJoinAlgorithm.
func (a JoinAlgorithm) String() string {
	switch a {
	case AlgorithmDefault:
		return "default"
	case AlgorithmAuto:
		return "auto"
	case AlgorithmHash:
		return "hash"
	case AlgorithmPartialMerge:
		return "partial_merge"
	case AlgorithmPreferPartialMerge:
		return "prefer_partial_merge"
	case AlgorithmParallelHash:
		return "parallel_hash"
	case AlgorithmGraceHash:
		return "grace_hash"
	case AlgorithmDirect:
		return "direct"
	case AlgorithmFullSortingMerge:
		return "full_sorting_merge"
	}
	logutil.BgLogger().Fatal("invalid join algorithm", zap.Uint8("algorithm", uint8(a)))
	return ""
}

// JoinTableSide tags the operand a table or column belongs to.
type JoinTableSide byte

const (
	// LeftSide is the left operand of the join.
	LeftSide JoinTableSide = 0
	// RightSide is the right operand of the join.
	RightSide JoinTableSide = 1
)

// Reverse flips the side. Applying it twice yields the original side.
func (s JoinTableSide) Reverse() JoinTableSide {
	if s == LeftSide {
		return RightSide
	}
	return LeftSide
}

// String implements fmt.Stringer interface.
func (s JoinTableSide) String() string {
	switch s {
	case LeftSide:
		return "left"
	case RightSide:
		return "right"
	}
	logutil.BgLogger().Fatal("invalid join table side", zap.Uint8("side", uint8(s)))
	return ""
}
