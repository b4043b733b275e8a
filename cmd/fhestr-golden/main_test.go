package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildVectorsIsDeterministic(t *testing.T) {
	a := buildVectors()
	b := buildVectors()
	require.Equal(t, len(a), len(b))

	for i := range a {
		wantA, err := json.Marshal(a[i])
		require.NoError(t, err)
		wantB, err := json.Marshal(b[i])
		require.NoError(t, err)
		require.Equal(t, string(wantA), string(wantB))
	}
}

func TestBuildVectorsPopulatesWantForEveryOp(t *testing.T) {
	for _, v := range buildVectors() {
		hasWant := v.WantStr != nil || v.WantBool != nil || v.WantInt != nil || v.WantList != nil
		require.True(t, hasWant, "vector for op %q (%s) has no want field set", v.Op, v.Comment)
	}
}

func TestFindVectorsAgreeWithWantBool(t *testing.T) {
	for _, v := range buildVectors() {
		if v.Op != "find" && v.Op != "rfind" {
			continue
		}
		require.NotNil(t, v.WantBool)
		if !*v.WantBool {
			continue
		}
		require.NotNil(t, v.WantInt)
	}
}
