package renormdb

import (
	"log"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	once   sync.Once
	logger *zap.Logger
)

func getTestLogger() *zap.Logger {
	once.Do(func() {
		var err error
		logger, err = zap.NewProduction() // or NewProduction, or NewDevelopment,
		if err != nil {
			log.Fatal(err)
		}
	})

	return logger
}

func Test_energyTree_add(t1 *testing.T) {
	sugar := getTestLogger().Sugar()

	tree := newEnergyTree()
	require.NotNil(t1, tree)
	require.EqualValues(t1, 0, tree.sizeof(), "not empty")

	tree.add(2)
	tree.add(-2)
	tree.add(2)
	tree.add(6)
	tree.add(-6)
	tree.add(2)
	tree.add(-2)

	sugar.Debugln(tree)

	require.EqualValues(t1, 4, tree.sizeof(), "wrong size")
	require.EqualValues(t1, 7, tree.total(), "wrong total")

	require.Nil(t1, tree.get(0))
	require.EqualValues(t1, 3, tree.get(2).count)
	require.EqualValues(t1, 2, tree.get(-2).count)
	require.EqualValues(t1, 1, tree.get(6).count)
	require.EqualValues(t1, 1, tree.get(-6).count)
}

func Test_energyTree_ascend(t1 *testing.T) {
	tree := newEnergyTree()

	// insertion order must not matter
	for _, e := range []int{4, -3, 0, 6, -6, 2, -1, 5, 1, 3, -5, -2, -4} {
		tree.add(e)
		tree.add(e)
	}

	var energies, counts []int
	tree.ascend(func(energy, count int) {
		energies = append(energies, energy)
		counts = append(counts, count)
	})

	require.EqualValues(t1, []int{-6, -5, -4, -3, -2, -1, 0, 1, 2, 3, 4, 5, 6}, energies)
	for i, c := range counts {
		require.EqualValues(t1, 2, c, "energy=%d", energies[i])
	}
}

func Test_energyTree_iterator_empty(t1 *testing.T) {
	tree := newEnergyTree()
	it := tree.iterator()
	require.False(t1, it.next())
	require.False(t1, it.next())
}
