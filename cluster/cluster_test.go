package cluster_test

import (
	"math"
	"math/rand"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/maxdavidson/junction/cluster"
	"github.com/maxdavidson/junction/distance"
	"github.com/maxdavidson/junction/dsu"
	"github.com/maxdavidson/junction/edgeorder"
	"github.com/maxdavidson/junction/point"
)

// loadSample reads the 20-point fixture in testdata.
func loadSample(t testing.TB) []point.Point {
	t.Helper()
	f, err := os.Open("testdata/sample.txt")
	require.NoError(t, err)
	defer f.Close()

	pts, err := point.ParseReader(f)
	require.NoError(t, err)
	require.Len(t, pts, 20)

	return pts
}

// randomPoints returns n points with coordinates in [0, limit).
func randomPoints(r *rand.Rand, n int, limit int64) []point.Point {
	pts := make([]point.Point, n)
	for i := range pts {
		pts[i] = point.Point{X: uint64(r.Int63n(limit)), Y: uint64(r.Int63n(limit)), Z: uint64(r.Int63n(limit))}
	}

	return pts
}

func collinear(n int) []point.Point {
	pts := make([]point.Point, n)
	for i := range pts {
		pts[i] = point.Point{X: uint64(i)}
	}

	return pts
}

// twoClusters places five points near the origin and five near (1000,1000,1000).
func twoClusters() []point.Point {
	var pts []point.Point
	for _, base := range []uint64{0, 1000} {
		for i := uint64(0); i < 5; i++ {
			pts = append(pts, point.Point{X: base + i, Y: base + i%2, Z: base + i%3})
		}
	}

	return pts
}

//----------------------------------------------------------------------------//
// Sample input
//----------------------------------------------------------------------------//

func TestTopThreeProduct_Sample(t *testing.T) {
	got, err := cluster.TopThreeProduct(loadSample(t), 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(40), got)
}

func TestBottleneckProduct_Sample(t *testing.T) {
	got, err := cluster.BottleneckProduct(loadSample(t))
	require.NoError(t, err)
	assert.Equal(t, uint64(25272), got)
}

//----------------------------------------------------------------------------//
// Scenarios
//----------------------------------------------------------------------------//

// TestScenario_ThreePointsOnePair connects one of two tied closest pairs and
// is left with components {2,1}, which is too few for a top-three product.
func TestScenario_ThreePointsOnePair(t *testing.T) {
	pts := []point.Point{{}, {X: 10}, {Y: 10}}

	p, err := cluster.NewPipeline(cluster.NewOptions(cluster.WithPairs(1)))
	require.NoError(t, err)
	res, err := p.Merge(point.MustNewSet(pts))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, res.Forest.Sizes())

	_, err = cluster.TopThreeProduct(pts, 1)
	require.ErrorIs(t, err, cluster.ErrTooFewComponents)
}

// TestScenario_Collinear checks that the three unit edges connect four points
// on a line, the last of them completing connectivity.
func TestScenario_Collinear(t *testing.T) {
	res, err := cluster.Run(collinear(4), cluster.NewOptions(cluster.WithMode(cluster.ModeBottleneck)))
	require.NoError(t, err)

	require.True(t, res.Stopped)
	assert.True(t, res.LastMerged)
	assert.Equal(t, uint64(1), res.Last.Weight)
	assert.Equal(t, 3, res.Consumed, "the three unit edges come first")
	assert.Equal(t, distance.Edge{A: 2, B: 3, Weight: 1}, res.Last)
	assert.Equal(t, uint64(2*3), res.Value)
}

// TestScenario_TwoClusters connects exactly the intra-cluster pairs and must
// not merge across clusters.
func TestScenario_TwoClusters(t *testing.T) {
	pts := twoClusters()
	intra := 2 * distance.Count(5)

	p, err := cluster.NewPipeline(cluster.NewOptions(cluster.WithPairs(intra)))
	require.NoError(t, err)
	res, err := p.Merge(point.MustNewSet(pts))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2, 3, 4}, {5, 6, 7, 8, 9}}, res.Forest.Groups())

	_, err = cluster.TopThreeProduct(pts, intra)
	require.ErrorIs(t, err, cluster.ErrTooFewComponents)

	// A far-away singleton provides the third component.
	pts = append(pts, point.Point{X: 1_000_000})
	got, err := cluster.TopThreeProduct(pts, intra)
	require.NoError(t, err)
	assert.Equal(t, uint64(5*5*1), got)
}

// TestScenario_IdenticalPoints has every distance zero.
func TestScenario_IdenticalPoints(t *testing.T) {
	same := point.Point{X: 7, Y: 7, Z: 7}

	res, err := cluster.Run([]point.Point{same, same}, cluster.NewOptions(cluster.WithMode(cluster.ModeBottleneck)))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Consumed, "two points stop on the first edge")
	assert.Equal(t, uint64(49), res.Value)

	pts := []point.Point{same, same, same, same, same, same}
	res, err = cluster.Run(pts, cluster.NewOptions(cluster.WithMode(cluster.ModeBottleneck)))
	require.NoError(t, err)
	assert.Equal(t, len(pts)-1, res.Consumed, "every edge from point 0 merges")
	assert.Equal(t, len(pts)-1, res.Merges)
	assert.Equal(t, uint64(49), res.Value)
}

//----------------------------------------------------------------------------//
// Preconditions
//----------------------------------------------------------------------------//

func TestErrors(t *testing.T) {
	sample := []point.Point{{}, {X: 1}, {X: 5}, {X: 9}}
	cases := []struct {
		name string
		run  func() (uint64, error)
		err  error
	}{
		{"BottleneckEmpty", func() (uint64, error) { return cluster.BottleneckProduct(nil) }, cluster.ErrTooFewPoints},
		{"BottleneckSingle", func() (uint64, error) { return cluster.BottleneckProduct(sample[:1]) }, cluster.ErrTooFewPoints},
		{"TopThreeTwoPoints", func() (uint64, error) { return cluster.TopThreeProduct(sample[:2], 0) }, cluster.ErrTooFewComponents},
		{"TopThreeNegativeK", func() (uint64, error) { return cluster.TopThreeProduct(sample, -1) }, edgeorder.ErrNegativeK},
		{"TopThreeKTooLarge", func() (uint64, error) { return cluster.TopThreeProduct(sample, 7) }, edgeorder.ErrKTooLarge},
		{"CoordinateRange", func() (uint64, error) {
			return cluster.BottleneckProduct([]point.Point{{}, {Y: point.MaxCoordinate + 1}})
		}, point.ErrCoordinateRange},
		{"UnknownMode", func() (uint64, error) {
			return cluster.Compute(sample, cluster.NewOptions(cluster.WithMode("nearest")))
		}, cluster.ErrUnknownMode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.run()
			if !assert.ErrorIs(t, err, tc.err) {
				return
			}
			assert.Zero(t, got)
		})
	}
}

// TestTopThree_KBounds accepts k == 0 and k == n·(n−1)/2.
func TestTopThree_KBounds(t *testing.T) {
	pts := []point.Point{{}, {X: 1}, {X: 5}, {X: 9}}

	got, err := cluster.TopThreeProduct(pts, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), got, "all singletons")

	_, err = cluster.TopThreeProduct(pts, distance.Count(len(pts)))
	require.ErrorIs(t, err, cluster.ErrTooFewComponents, "every pair leaves one component")
}

// TestPipeline_NotConnected pairs the bottleneck aggregator with a bounded
// order that cannot connect everything.
func TestPipeline_NotConnected(t *testing.T) {
	p := cluster.Pipeline{Order: edgeorder.Smallest(1), Aggregate: cluster.Bottleneck{}}
	_, err := p.Run(point.MustNewSet(collinear(3)))
	require.ErrorIs(t, err, cluster.ErrNotConnected)

	_, err = cluster.Pipeline{Aggregate: cluster.TopThree{}}.Run(point.MustNewSet(collinear(3)))
	require.ErrorIs(t, err, cluster.ErrInvalidPipeline)
}

//----------------------------------------------------------------------------//
// Properties
//----------------------------------------------------------------------------//

// TestBottleneck_MatchesMST checks on random inputs that the stopping edge is
// a merging edge and that its weight equals the heaviest edge of a minimum
// spanning tree built by gonum's Kruskal.
func TestBottleneck_MatchesMST(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 20; round++ {
		n := 2 + r.Intn(40)
		pts := randomPoints(r, n, 1000)

		res, err := cluster.Run(pts, cluster.NewOptions(cluster.WithMode(cluster.ModeBottleneck)))
		require.NoError(t, err)
		require.True(t, res.Stopped)
		require.True(t, res.LastMerged, "stopping edge must be the merging edge")
		require.Equal(t, n-1, res.Merges)
		require.Equal(t, 1, res.Forest.Count())
		require.Equal(t, pts[res.Last.A].X*pts[res.Last.B].X, res.Value)

		g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
		for i := 0; i < n; i++ {
			g.AddNode(simple.Node(i))
		}
		for _, e := range distance.Pairwise(point.MustNewSet(pts)) {
			g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(e.A), T: simple.Node(e.B), W: float64(e.Weight)})
		}
		mst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
		path.Kruskal(mst, g)

		var heaviest float64
		it := mst.WeightedEdges()
		for it.Next() {
			heaviest = math.Max(heaviest, it.WeightedEdge().Weight())
		}
		require.Equal(t, heaviest, float64(res.Last.Weight), "round %d, n=%d", round, n)
	}
}

// TestTopThree_MatchesSortedPrefix compares bounded selection against
// merging a fully sorted prefix, where the k-th boundary is not tied.
func TestTopThree_MatchesSortedPrefix(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 20; round++ {
		n := 5 + r.Intn(60)
		pts := randomPoints(r, n, 100_000)
		k := r.Intn(n)

		sorted := distance.Pairwise(point.MustNewSet(pts))
		edgeorder.Sort(sorted)
		if sorted[k].Weight == sorted[max(k-1, 0)].Weight && k > 0 {
			continue
		}
		f := dsu.New(n)
		for _, e := range sorted[:k] {
			f.UnionPoints(e.A, e.B)
		}
		sizes := f.Sizes()
		if len(sizes) < 3 {
			continue
		}
		want := uint64(sizes[0] * sizes[1] * sizes[2])

		got, err := cluster.TopThreeProduct(pts, k)
		require.NoError(t, err)
		require.Equal(t, want, got, "round %d, n=%d, k=%d", round, n, k)
	}
}

// TestLogger routes diagnostics through WithLogger and SetLogger.
func TestLogger(t *testing.T) {
	var lines []string
	logf := func(format string, args ...any) { lines = append(lines, format) }

	_, err := cluster.BottleneckProduct(collinear(3), cluster.WithLogger(logf))
	require.NoError(t, err)
	assert.NotEmpty(t, lines)

	lines = nil
	cluster.SetLogger(logf)
	defer cluster.SetLogger(nil)
	_, err = cluster.TopThreeProduct(collinear(4), 0)
	require.NoError(t, err)
	assert.NotEmpty(t, lines)
}
