package bfs_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/synonet/bfs"
)

// BenchmarkBFS_Chain measures BFS on a linear chain of N+1 words.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	lines := make([]string, 0, N)
	for i := 0; i < N; i++ {
		lines = append(lines, fmt.Sprintf("w%d,w%d", i, i+1))
	}
	sg := build(b, lines...)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(sg.Graph(), 0)
	}
}

// BenchmarkBFS_RandomSparse measures BFS on a sparse random thesaurus.
func BenchmarkBFS_RandomSparse(b *testing.B) {
	const V, K = 5000, 4
	rnd := rand.New(rand.NewSource(42))
	lines := make([]string, 0, V)
	for i := 0; i < V; i++ {
		var sb strings.Builder
		fmt.Fprintf(&sb, "n%d", i)
		for k := 0; k < K; k++ {
			fmt.Fprintf(&sb, ",n%d", rnd.Intn(V))
		}
		lines = append(lines, sb.String())
	}
	sg := build(b, lines...)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(sg.Graph(), 0)
	}
}
