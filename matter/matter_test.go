package matter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/organo/matter"
)

// TestNewElement_Bounds checks the [1,118] validation window.
func TestNewElement_Bounds(t *testing.T) {
	cases := []struct {
		n       int
		wantErr bool
	}{
		{n: -1, wantErr: true},
		{n: 0, wantErr: true},
		{n: 1},
		{n: 6},
		{n: 118},
		{n: 119, wantErr: true},
	}
	for _, tc := range cases {
		e, err := matter.NewElement(tc.n)
		if tc.wantErr {
			require.ErrorIs(t, err, matter.ErrInvalidAtomicNumber, "n=%d", tc.n)
			continue
		}
		require.NoError(t, err, "n=%d", tc.n)
		assert.Equal(t, tc.n, e.Number())
		assert.True(t, e.Valid())
	}
}

func TestSymbols(t *testing.T) {
	assert.Equal(t, "H", matter.Hydrogen.Symbol())
	assert.Equal(t, "C", matter.Carbon.Symbol())
	assert.Equal(t, "Cl", matter.Chlorine.Symbol())
	assert.Equal(t, "Og", matter.Symbol(118))
	assert.Equal(t, "", matter.Symbol(0))
	assert.Equal(t, "", matter.Element(200).Symbol())
	assert.Equal(t, "Element(0)", matter.Element(0).String())

	// every symbol round-trips through ParseSymbol
	for n := matter.MinAtomicNumber; n <= matter.MaxAtomicNumber; n++ {
		e, err := matter.ParseSymbol(matter.Symbol(n))
		require.NoError(t, err)
		require.Equal(t, n, e.Number())
	}

	_, err := matter.ParseSymbol("Xx")
	require.ErrorIs(t, err, matter.ErrUnknownSymbol)
	_, err = matter.ParseSymbol("cl")
	require.ErrorIs(t, err, matter.ErrUnknownSymbol)
}

func TestDefaultValence(t *testing.T) {
	v, ok := matter.DefaultValence(matter.Carbon)
	require.True(t, ok)
	assert.Equal(t, 4, v)

	v, ok = matter.DefaultValence(matter.Oxygen)
	require.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = matter.DefaultValence(matter.Element(26)) // Fe
	assert.False(t, ok)
}

// TestAtom_Defaults: electrons equal protons, no neutrons, no oxidation state.
func TestAtom_Defaults(t *testing.T) {
	a, err := matter.NewAtom(6)
	require.NoError(t, err)
	assert.Equal(t, matter.Carbon, a.Element())
	assert.Equal(t, 6, a.Electrons())
	assert.Equal(t, 6, a.Protons())
	assert.Equal(t, 0, a.Neutrons())
	assert.Equal(t, 0, a.Charge())
	_, ok := a.OxidationState()
	assert.False(t, ok)
	assert.Equal(t, "C", a.String())

	_, err = matter.NewAtom(0)
	require.ErrorIs(t, err, matter.ErrInvalidAtomicNumber)
	assert.Panics(t, func() { matter.MustAtom(119) })
}

func TestAtom_WithMethodsCopy(t *testing.T) {
	c := matter.MustAtom(6)

	c13, err := c.WithNeutrons(7)
	require.NoError(t, err)
	assert.Equal(t, 13, c13.MassNumber())
	assert.Equal(t, 0, c.Neutrons(), "receiver must be untouched")
	assert.Equal(t, "13C", c13.String())

	_, err = c.WithNeutrons(-1)
	require.ErrorIs(t, err, matter.ErrNegativeCount)

	na, err := matter.MustAtom(11).WithCharge(1)
	require.NoError(t, err)
	assert.Equal(t, 10, na.Electrons())
	assert.Equal(t, "Na+1", na.String())

	_, err = matter.MustAtom(1).WithCharge(2)
	require.ErrorIs(t, err, matter.ErrNegativeCount)

	fe := matter.MustAtom(26).WithOxidationState(3)
	s, ok := fe.OxidationState()
	require.True(t, ok)
	assert.Equal(t, 3, s)
}

func TestParticle_Variants(t *testing.T) {
	ar := matter.NewAtomParticle(matter.MustAtom(18))
	assert.Equal(t, matter.KindAtom, ar.Kind())
	a, ok := ar.Atom()
	require.True(t, ok)
	assert.Equal(t, 18, a.Element().Number())
	assert.Equal(t, "Ar", ar.String())

	n := matter.MustAtom(7)
	atoms := []matter.Atom{n, n}
	mol, err := matter.NewMolecule(atoms...)
	require.NoError(t, err)
	assert.Equal(t, matter.KindMolecule, mol.Kind())
	assert.Equal(t, 2, mol.Len())
	assert.Equal(t, "[NN]", mol.String())
	_, ok = mol.Atom()
	assert.False(t, ok)

	// input and output slices are not aliased
	atoms[0] = matter.MustAtom(8)
	out := mol.Atoms()
	assert.Equal(t, matter.Nitrogen, out[0].Element())
	out[1] = matter.MustAtom(8)
	assert.Equal(t, matter.Nitrogen, mol.Atoms()[1].Element())

	_, err = matter.NewMolecule()
	require.ErrorIs(t, err, matter.ErrEmptyMolecule)
}

func TestRepeat(t *testing.T) {
	h3, err := matter.Repeat(matter.MustAtom(1), 3)
	require.NoError(t, err)
	assert.Equal(t, matter.KindMolecule, h3.Kind())
	assert.Equal(t, 3, h3.Len())

	_, err = matter.Repeat(matter.MustAtom(1), 0)
	require.ErrorIs(t, err, matter.ErrEmptyMolecule)
}
