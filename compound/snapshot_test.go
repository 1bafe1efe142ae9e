package compound_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/organo/compound"
	"github.com/katalvlaran/organo/matter"
)

const arenaID = "0f8fad5b-d9cb-469f-a165-70867728950e"

func TestSnapshot_Shape(t *testing.T) {
	a := compound.New(compound.WithID(uuid.MustParse(arenaID)))
	c := a.NewCompound(matter.MustAtom(ZC))
	be := a.NewCompound(matter.MustAtom(ZBe).WithOxidationState(2))
	h3, err := matter.Repeat(matter.MustAtom(ZH), 3)
	require.NoError(t, err)
	require.NoError(t, c.AddSubstituent(h3))
	require.NoError(t, c.AddSideChain(be))

	two := 2
	want := compound.Snapshot{
		Arena: arenaID,
		Nodes: []compound.NodeRecord{
			{
				ID:     0,
				Center: compound.AtomRecord{Z: ZC, Electrons: ZC},
				Substituents: []compound.ParticleRecord{{
					Kind:  "molecule",
					Atoms: []compound.AtomRecord{{Z: 1, Electrons: 1}, {Z: 1, Electrons: 1}, {Z: 1, Electrons: 1}},
				}},
				SideChains: []int{1},
			},
			{
				ID:         1,
				Center:     compound.AtomRecord{Z: ZBe, Electrons: ZBe, Oxidation: &two},
				SideChains: []int{0},
			},
		},
	}
	if diff := cmp.Diff(want, a.Snapshot()); diff != "" {
		t.Fatalf("Snapshot mismatch (-want +got):\n%s", diff)
	}
}

// TestSnapshot_YAMLRestore writes an arena, reads it back and rebuilds it.
func TestSnapshot_YAMLRestore(t *testing.T) {
	a, n := newNodes(t, 3)
	require.NoError(t, a.AddSideChain(0, 1))
	require.NoError(t, a.AddSideChain(1, 2))
	require.NoError(t, n[2].AddSubstituent(matter.NewAtomParticle(matter.MustAtom(ZAr))))

	var buf bytes.Buffer
	require.NoError(t, a.Snapshot().WriteYAML(&buf))
	assert.Contains(t, buf.String(), a.ID().String())
	assert.Contains(t, buf.String(), "side_chains:")

	s, err := compound.ReadSnapshotYAML(&buf)
	require.NoError(t, err)
	b, err := s.Restore()
	require.NoError(t, err)

	assert.Equal(t, a.ID(), b.ID())
	assert.Equal(t, a.Stats(), b.Stats())
	if diff := cmp.Diff(a.Snapshot(), b.Snapshot()); diff != "" {
		t.Fatalf("restored arena differs (-orig +restored):\n%s", diff)
	}
	requireReciprocal(t, b)
}

func TestSnapshot_RestoreMakesLinksReciprocal(t *testing.T) {
	doc := `
arena: ` + arenaID + `
nodes:
  - id: 0
    center: {z: 6, electrons: 6}
    side_chains: [1]
  - id: 1
    center: {z: 8, electrons: 8}
`
	s, err := compound.ReadSnapshotYAML(strings.NewReader(doc))
	require.NoError(t, err)
	a, err := s.Restore()
	require.NoError(t, err)

	n1, err := a.Node(1)
	require.NoError(t, err)
	assert.Equal(t, []compound.NodeID{0}, n1.SideChains())
}

func TestSnapshot_RestoreErrors(t *testing.T) {
	valid := compound.NodeRecord{ID: 0, Center: compound.AtomRecord{Z: ZC, Electrons: ZC}}
	cases := map[string]compound.Snapshot{
		"bad uuid":  {Arena: "nope", Nodes: []compound.NodeRecord{valid}},
		"nil uuid":  {Arena: uuid.Nil.String()},
		"sparse id": {Arena: arenaID, Nodes: []compound.NodeRecord{{ID: 3, Center: valid.Center}}},
		"bad atom":  {Arena: arenaID, Nodes: []compound.NodeRecord{{ID: 0, Center: compound.AtomRecord{Z: 200}}}},
		"bad kind": {Arena: arenaID, Nodes: []compound.NodeRecord{{
			ID: 0, Center: valid.Center,
			Substituents: []compound.ParticleRecord{{Kind: "ion", Atoms: []compound.AtomRecord{{Z: 1, Electrons: 1}}}},
		}}},
		"empty molecule": {Arena: arenaID, Nodes: []compound.NodeRecord{{
			ID: 0, Center: valid.Center,
			Substituents: []compound.ParticleRecord{{Kind: "molecule"}},
		}}},
		"dangling link": {Arena: arenaID, Nodes: []compound.NodeRecord{{ID: 0, Center: valid.Center, SideChains: []int{9}}}},
	}
	for name, s := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := s.Restore()
			require.ErrorIs(t, err, compound.ErrInvalidSnapshot)
		})
	}
}
