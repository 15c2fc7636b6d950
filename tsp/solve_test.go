// SPDX-License-Identifier: MIT
// Package tsp_test validates algorithm selection.
package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rijkvp/tsp/matrix"
	"github.com/rijkvp/tsp/tsp"
)

func TestParseKind(t *testing.T) {
	cases := map[string]tsp.Kind{
		"bf":            tsp.BruteForceKind,
		"brute-force":   tsp.BruteForceKind,
		" Brute-Force ": tsp.BruteForceKind,
		"an":            tsp.AnnealingKind,
		"ANNEALING":     tsp.AnnealingKind,
	}
	for in, want := range cases {
		got, err := tsp.ParseKind(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := tsp.ParseKind("genetic")
	require.ErrorIs(t, err, tsp.ErrUnknownAlgorithm)
}

func TestKind_Text(t *testing.T) {
	b, err := tsp.AnnealingKind.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "annealing", string(b))

	var k tsp.Kind
	require.NoError(t, k.UnmarshalText([]byte("bf")))
	require.Equal(t, tsp.BruteForceKind, k)

	_, err = tsp.Kind(0).MarshalText()
	require.ErrorIs(t, err, tsp.ErrUnknownAlgorithm)
	require.Equal(t, "Kind(0)", tsp.Kind(0).String())
}

func TestNew(t *testing.T) {
	bf, err := tsp.New(tsp.BruteForceKind, square10(), tsp.WithSeed(3))
	require.NoError(t, err)
	require.Equal(t, tsp.BruteForceKind, bf.Kind())
	require.IsType(t, &tsp.BruteForce{}, bf)

	an, err := tsp.New(tsp.AnnealingKind, square10(), tsp.WithSeed(3))
	require.NoError(t, err)
	require.Equal(t, tsp.AnnealingKind, an.Kind())
	require.IsType(t, &tsp.Annealing{}, an)

	_, err = tsp.New(tsp.Kind(9), square10())
	require.ErrorIs(t, err, tsp.ErrUnknownAlgorithm)

	_, err = tsp.New(tsp.AnnealingKind, []matrix.City{matrix.Pt(1, 1)})
	require.ErrorIs(t, err, matrix.ErrTooFewCities)
}

func TestDeriveSeed_Decorrelates(t *testing.T) {
	seen := map[int64]bool{}
	var s uint64
	for s = 0; s < 64; s++ {
		v := tsp.DeriveSeed(seedDet, s)
		require.False(t, seen[v], "duplicate derived seed for stream %d", s)
		seen[v] = true
	}
	require.Equal(t, tsp.DeriveSeed(seedDet, 5), tsp.DeriveSeed(seedDet, 5))
	require.Equal(t, tsp.NewRand(0).Int63(), tsp.NewRand(1).Int63(), "seed 0 maps to the default seed")
}
