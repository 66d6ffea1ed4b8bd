package dfs_test

import (
	"context"
	"errors"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/synonet/dfs"
	"github.com/katalvlaran/synonet/symgraph"
)

// build constructs a symbol graph from newline-separated records.
func build(t testing.TB, lines ...string) *symgraph.SymbolGraph {
	t.Helper()
	sg, err := symgraph.Build(strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return sg
}

// words maps ids back to their names.
func words(t testing.TB, sg *symgraph.SymbolGraph, ids []int) string {
	t.Helper()
	return strings.Join(sg.Words(ids), " ")
}

// TestDFS_Errors verifies that invalid inputs are rejected.
func TestDFS_Errors(t *testing.T) {
	if _, err := dfs.DFS(nil, 0); !errors.Is(err, dfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	sg := build(t, "a,b")
	for _, start := range []int{-1, 2} {
		if _, err := dfs.DFS(sg.Graph(), start); !errors.Is(err, dfs.ErrStartVertexNotFound) {
			t.Errorf("start %d: want ErrStartVertexNotFound, got %v", start, err)
		}
	}
}

// TestDFS_Orders checks pre- and post-order on a small tree with a cycle.
//
//	a - b - d
//	|   |
//	c --+
func TestDFS_Orders(t *testing.T) {
	sg := build(t, "a,b,c", "b,d,c")
	res, err := dfs.DFS(sg.Graph(), 0)
	if err != nil {
		t.Fatalf("DFS: %v", err)
	}
	// adjacency: a[b c] b[a d c] c[a b] d[b]
	if got, want := words(t, sg, res.PreOrder), "a b d c"; got != want {
		t.Errorf("pre-order = %q, want %q", got, want)
	}
	if got, want := words(t, sg, res.PostOrder), "d c b a"; got != want {
		t.Errorf("post-order = %q, want %q", got, want)
	}
	if want := []int{0, 1, 2, 2}; !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("depth = %v, want %v", res.Depth, want)
	}
	if want := []int{dfs.Unvisited, 0, 1, 1}; !reflect.DeepEqual(res.Parent, want) {
		t.Errorf("parent = %v, want %v", res.Parent, want)
	}
}

// TestDFS_SingleTreeLeavesOthers ensures single-source mode stays in its component.
func TestDFS_SingleTreeLeavesOthers(t *testing.T) {
	sg := build(t, "a,b", "x,y")
	res, err := dfs.DFS(sg.Graph(), 2)
	if err != nil {
		t.Fatalf("DFS: %v", err)
	}
	if res.Visited(0) || res.Visited(1) {
		t.Error("vertices of another component were visited")
	}
	if !res.Visited(3) || res.Root[3] != 2 {
		t.Errorf("y: visited=%v root=%d", res.Visited(3), res.Root[3])
	}
	if res.Visited(-1) || res.Visited(4) {
		t.Error("out-of-range ids must not report visited")
	}
}

// TestDFS_FullTraversal covers every component in id order.
func TestDFS_FullTraversal(t *testing.T) {
	sg := build(t, "a,b", "x,y,z", "lonely,a")
	res, err := dfs.DFS(sg.Graph(), 0, dfs.WithFullTraversal())
	if err != nil {
		t.Fatalf("DFS: %v", err)
	}
	if len(res.PreOrder) != sg.Graph().V() {
		t.Fatalf("visited %d of %d vertices", len(res.PreOrder), sg.Graph().V())
	}
	if want := []int{0, 0, 2, 2, 2, 0}; !reflect.DeepEqual(res.Root, want) {
		t.Errorf("roots = %v, want %v", res.Root, want)
	}
}

// TestDFS_HookError aborts on the first hook failure.
func TestDFS_HookError(t *testing.T) {
	sg := build(t, "a,b,c")
	boom := errors.New("boom")
	calls := 0
	_, err := dfs.DFS(sg.Graph(), 0, dfs.WithOnVisit(func(v, _, _ int) error {
		calls++
		if v == 1 {
			return boom
		}
		return nil
	}))
	if !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}
	if calls != 2 {
		t.Errorf("hook calls = %d, want 2", calls)
	}
}

// TestDFS_Cancelled honours a cancelled context.
func TestDFS_Cancelled(t *testing.T) {
	sg := build(t, "a,b,c")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := dfs.DFS(sg.Graph(), 0, dfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestDFS_DeepChain walks a long path without recursion.
func TestDFS_DeepChain(t *testing.T) {
	const n = 100000
	lines := make([]string, n)
	for i := range lines {
		lines[i] = "w" + strconv.Itoa(i) + ",w" + strconv.Itoa(i+1)
	}
	sg := build(t, lines...)
	res, err := dfs.DFS(sg.Graph(), 0)
	if err != nil {
		t.Fatalf("DFS: %v", err)
	}
	if res.Depth[n] != n {
		t.Errorf("depth of last vertex = %d, want %d", res.Depth[n], n)
	}
}
