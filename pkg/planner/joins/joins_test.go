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
	"testing"

	"github.com/stretchr/testify/require"
)

var allJoinKinds = []JoinKind{
	InnerJoin, LeftJoin, RightJoin, FullJoin, CrossJoin, CommaJoin, PasteJoin,
}

var allStrictnesses = []JoinStrictness{
	StrictnessUnspecified, StrictnessRightAny, StrictnessAny, StrictnessAll,
	StrictnessAsof, StrictnessSemi, StrictnessAnti,
}

var allLocalities = []JoinLocality{
	LocalityUnspecified, LocalityLocal, LocalityGlobal,
}

var allASOFInequalities = []ASOFJoinInequality{
	ASOFNone, ASOFLess, ASOFGreater, ASOFLessOrEquals, ASOFGreaterOrEquals,
}

var allAlgorithms = []JoinAlgorithm{
	AlgorithmDefault, AlgorithmAuto, AlgorithmHash, AlgorithmPartialMerge,
	AlgorithmPreferPartialMerge, AlgorithmParallelHash, AlgorithmGraceHash,
	AlgorithmDirect, AlgorithmFullSortingMerge,
}

var allTableSides = []JoinTableSide{LeftSide, RightSide}

func TestJoinKindPredicates(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		kind         JoinKind
		isLeft       bool
		isRight      bool
		isInner      bool
		isFull       bool
		isCrossComma bool
		isPaste      bool
	}{
		{InnerJoin, false, false, true, false, false, false},
		{LeftJoin, true, false, false, false, false, false},
		{RightJoin, false, true, false, false, false, false},
		{FullJoin, false, false, false, true, false, false},
		{CrossJoin, false, false, false, false, true, false},
		{CommaJoin, false, false, false, false, true, false},
		{PasteJoin, false, false, false, false, false, true},
	}
	require.Len(t, testCases, len(allJoinKinds))
	for _, tc := range testCases {
		require.Equal(t, tc.isLeft, tc.kind.IsLeft(), "kind %s", tc.kind)
		require.Equal(t, tc.isRight, tc.kind.IsRight(), "kind %s", tc.kind)
		require.Equal(t, tc.isInner, tc.kind.IsInner(), "kind %s", tc.kind)
		require.Equal(t, tc.isFull, tc.kind.IsFull(), "kind %s", tc.kind)
		require.Equal(t, tc.isCrossComma, tc.kind.IsCrossOrComma(), "kind %s", tc.kind)
		require.Equal(t, tc.isPaste, tc.kind.IsPaste(), "kind %s", tc.kind)

		// Derived predicates stay consistent with the exact-kind ones.
		require.Equal(t, tc.isLeft || tc.isRight || tc.isFull, tc.kind.IsOuter())
		require.Equal(t, tc.isRight || tc.isFull, tc.kind.IsRightOrFull())
		require.Equal(t, tc.isLeft || tc.isFull, tc.kind.IsLeftOrFull())
		require.Equal(t, tc.isInner || tc.isRight, tc.kind.IsInnerOrRight())
		require.Equal(t, tc.isInner || tc.isLeft, tc.kind.IsInnerOrLeft())

		// Every kind falls into exactly one primary class.
		count := 0
		for _, b := range []bool{tc.isLeft, tc.isRight, tc.isInner, tc.isFull, tc.isCrossComma, tc.isPaste} {
			if b {
				count++
			}
		}
		require.Equal(t, 1, count, "kind %s", tc.kind)
	}
}

func TestJoinKindReverse(t *testing.T) {
	t.Parallel()
	require.Equal(t, RightJoin, LeftJoin.Reverse())
	require.Equal(t, LeftJoin, RightJoin.Reverse())
	require.Equal(t, InnerJoin, InnerJoin.Reverse())
	require.Equal(t, FullJoin, FullJoin.Reverse())
	require.Equal(t, CrossJoin, CrossJoin.Reverse())
	require.Equal(t, CommaJoin, CommaJoin.Reverse())
	require.Equal(t, PasteJoin, PasteJoin.Reverse())
	for _, kind := range allJoinKinds {
		require.Equal(t, kind, kind.Reverse().Reverse(), "kind %s", kind)
	}
}

func TestGetASOFJoinInequality(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		funcName string
		expected ASOFJoinInequality
	}{
		{"less", ASOFLess},
		{"greater", ASOFGreater},
		{"lessOrEquals", ASOFLessOrEquals},
		{"greaterOrEquals", ASOFGreaterOrEquals},
		{"equals", ASOFNone},
		{"notEquals", ASOFNone},
		{"unknownFunc", ASOFNone},
		{"", ASOFNone},
		{"Less", ASOFNone},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expected, GetASOFJoinInequality(tc.funcName), "func %q", tc.funcName)
	}
}

func TestASOFJoinInequalityReverse(t *testing.T) {
	t.Parallel()
	require.Equal(t, ASOFGreater, ASOFLess.Reverse())
	require.Equal(t, ASOFLess, ASOFGreater.Reverse())
	require.Equal(t, ASOFGreaterOrEquals, ASOFLessOrEquals.Reverse())
	require.Equal(t, ASOFLessOrEquals, ASOFGreaterOrEquals.Reverse())
	require.Equal(t, ASOFNone, ASOFNone.Reverse())
	for _, ineq := range allASOFInequalities {
		require.Equal(t, ineq, ineq.Reverse().Reverse(), "inequality %s", ineq)
	}
}

func TestJoinTableSideReverse(t *testing.T) {
	t.Parallel()
	require.Equal(t, RightSide, LeftSide.Reverse())
	require.Equal(t, LeftSide, RightSide.Reverse())
	for _, side := range allTableSides {
		require.Equal(t, side, side.Reverse().Reverse())
	}
}

func TestStringersDistinctAndNonEmpty(t *testing.T) {
	t.Parallel()
	checkDistinct := func(names []string) {
		seen := make(map[string]struct{}, len(names))
		for _, name := range names {
			require.NotEmpty(t, name)
			_, dup := seen[name]
			require.False(t, dup, "duplicate display name %q", name)
			seen[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(allJoinKinds))
	for _, v := range allJoinKinds {
		names = append(names, v.String())
	}
	checkDistinct(names)

	names = names[:0]
	for _, v := range allStrictnesses {
		names = append(names, v.String())
	}
	checkDistinct(names)

	names = names[:0]
	for _, v := range allLocalities {
		names = append(names, v.String())
	}
	checkDistinct(names)

	names = names[:0]
	for _, v := range allASOFInequalities {
		names = append(names, v.String())
	}
	checkDistinct(names)

	names = names[:0]
	for _, v := range allAlgorithms {
		names = append(names, v.String())
	}
	checkDistinct(names)

	names = names[:0]
	for _, v := range allTableSides {
		names = append(names, v.String())
	}
	checkDistinct(names)
}

func TestJoinKindString(t *testing.T) {
	t.Parallel()
	require.Equal(t, "INNER", InnerJoin.String())
	require.Equal(t, "LEFT", LeftJoin.String())
	require.Equal(t, "RIGHT", RightJoin.String())
	require.Equal(t, "FULL", FullJoin.String())
	require.Equal(t, "CROSS", CrossJoin.String())
	require.Equal(t, "COMMA", CommaJoin.String())
	require.Equal(t, "PASTE", PasteJoin.String())
}
