package main

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/synonet/engine"
	"github.com/katalvlaran/synonet/symgraph"
)

// query is one read-only operation against an engine, shared by the one-shot
// commands and the repl.
type query struct {
	name    string
	args    string // argument synopsis, e.g. "A B"
	short   string
	minArgs int
	maxArgs int // -1 for unbounded
	run     func(e *engine.Engine, p *printer, args []string) error
}

func (q query) arityOK(n int) bool {
	return n >= q.minArgs && (q.maxArgs < 0 || n <= q.maxArgs)
}

func (q query) usage() string {
	if q.args == "" {
		return q.name
	}
	return q.name + " " + q.args
}

var queries = []query{
	{
		name: "exists", args: "WORD", short: "Report whether a word is in the graph",
		minArgs: 1, maxArgs: 1,
		run: func(e *engine.Engine, p *printer, args []string) error {
			return p.boolean(e.Contains(args[0]))
		},
	},
	{
		name: "path", args: "A B", short: "Print a shortest chain of synonyms from A to B",
		minArgs: 2, maxArgs: 2,
		run: func(e *engine.Engine, p *printer, args []string) error {
			path, ok := e.FindPath(args[0], args[1])
			return p.path(path, ok)
		},
	},
	{
		name: "level", args: "A B", short: "Print the number of edges on a shortest chain from A to B",
		minArgs: 2, maxArgs: 2,
		run: func(e *engine.Engine, p *printer, args []string) error {
			return p.level(e.ConnectionLevel(args[0], args[1]))
		},
	},
	{
		name: "connected", args: "A B", short: "Report whether any chain joins A and B",
		minArgs: 2, maxArgs: 2,
		run: func(e *engine.Engine, p *printer, args []string) error {
			return p.boolean(e.Connected(args[0], args[1]))
		},
	},
	{
		name: "info", args: "A B", short: "Print path, level, synonyms and definitions between A and B",
		minArgs: 2, maxArgs: 2,
		run: func(e *engine.Engine, p *printer, args []string) error {
			info, ok := e.PathInfo(args[0], args[1])
			return p.info(info, ok)
		},
	},
	{
		name: "define", args: "WORD...", short: "Print dictionary definitions",
		minArgs: 1, maxArgs: -1,
		run: func(e *engine.Engine, p *printer, args []string) error {
			return p.definitions(args, e.Definitions(args))
		},
	},
	{
		name: "stats", short: "Print graph and dictionary sizes",
		minArgs: 0, maxArgs: 0,
		run: func(e *engine.Engine, p *printer, _ []string) error {
			return p.stats(e.Stats())
		},
	},
}

// synonymsQuery samples synonyms along an explicit path of words.
var synonymsQuery = query{
	name: "synonyms", args: "WORD...", short: "Sample synonyms for every word of a path",
	minArgs: 1, maxArgs: -1,
	run: func(e *engine.Engine, p *printer, args []string) error {
		return p.synonyms(args, e.PathSynonyms(args))
	},
}

// betweenQuery samples synonyms along the shortest path from A to B.
var betweenQuery = query{
	name: "between", args: "A B", short: "Sample synonyms along the shortest path from A to B",
	minArgs: 2, maxArgs: 2,
	run: func(e *engine.Engine, p *printer, args []string) error {
		path, ok := e.FindPath(args[0], args[1])
		if !ok {
			return p.notFound()
		}
		return p.synonyms(path, e.PathSynonyms(path))
	},
}

var walkQuery = query{
	name: "walk", args: "WORD DEPTH", short: "Print a random chain of DEPTH+1 distinct words from WORD",
	minArgs: 2, maxArgs: 2,
	run: func(e *engine.Engine, p *printer, args []string) error {
		depth, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("depth must be an integer, got %q", args[1])
		}
		path, ok := e.RandomWalk(args[0], depth)
		return p.path(path, ok)
	},
}

// normalizeWords lower-cases and trims words the way the graph stores them.
func normalizeWords(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = symgraph.Normalize(a)
	}
	return out
}
