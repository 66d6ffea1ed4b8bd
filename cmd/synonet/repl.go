package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/synonet/engine"
	"github.com/katalvlaran/synonet/reload"
)

const prompt = "synonet> "

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Answer queries read line by line from standard input",
		Long: `Loads the sources once and answers one query per input line until EOF or
"quit". With watch.enabled the sources are rebuilt and swapped in when they
change on disk; each query sees one complete engine.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.repl(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// session is one interactive run: the published engine plus the metrics shared
// by every engine built during it.
type session struct {
	holder   *engine.Holder
	registry *prometheus.Registry
	printer  *printer
	commands map[string]query
}

func (a *app) repl(ctx context.Context, in io.Reader, out io.Writer) error {
	reg := prometheus.NewRegistry()
	metrics := engine.NewMetrics(reg)
	rebuild := func(ctx context.Context) (*engine.Engine, error) {
		return a.load(ctx, engine.WithMetrics(metrics))
	}

	first, err := rebuild(ctx)
	if err != nil {
		return err
	}
	s := &session{
		holder:   engine.NewHolder(first),
		registry: reg,
		printer:  newPrinter(out, a.jsonOut),
		commands: replCommands(),
	}

	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	defer func() {
		cancel()
		wg.Wait()
	}()

	if a.cfg.Watch.Enabled {
		w, err := reload.New(
			[]string{a.cfg.Thesaurus.Path, a.cfg.Dictionary.Path},
			rebuild, s.holder,
			reload.WithDebounce(a.cfg.Watch.Debounce),
			reload.WithLogger(a.logger),
		)
		if err != nil {
			return err
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := w.Run(ctx); err != nil {
				a.logger.Error("watcher stopped", "error", err)
			}
		}()
	}

	sc := bufio.NewScanner(in)
	for {
		if !a.jsonOut {
			fmt.Fprint(out, prompt)
		}
		if !sc.Scan() {
			break
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if done := s.handle(fields[0], fields[1:]); done {
			break
		}
	}
	return sc.Err()
}

func replCommands() map[string]query {
	cmds := make(map[string]query, len(queries)+4)
	for _, q := range queries {
		cmds[q.name] = q
	}
	cmds[synonymsQuery.name] = synonymsQuery
	cmds["syn"] = synonymsQuery
	cmds[betweenQuery.name] = betweenQuery
	cmds[walkQuery.name] = walkQuery
	return cmds
}

// handle runs one input line and reports whether the session should end.
func (s *session) handle(name string, args []string) bool {
	p := s.printer
	switch strings.ToLower(name) {
	case "quit", "exit":
		return true
	case "help":
		s.help()
		return false
	case "metrics":
		s.metrics()
		return false
	}

	q, ok := s.commands[strings.ToLower(name)]
	if !ok {
		_ = p.errorf("unknown command %q (try help)", name)
		return false
	}
	if !q.arityOK(len(args)) {
		_ = p.errorf("usage: %s", q.usage())
		return false
	}
	if err := q.run(s.holder.Load(), p, normalizeWords(args)); err != nil {
		_ = p.errorf("%v", err)
	}
	return false
}

func (s *session) help() {
	names := make([]string, 0, len(s.commands))
	for name, q := range s.commands {
		if name == q.name {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		q := s.commands[name]
		_ = s.printer.line("  %-22s %s", q.usage(), q.short)
	}
	_ = s.printer.line("  %-22s %s", "metrics", "Print query and build counters")
	_ = s.printer.line("  %-22s %s", "quit", "Leave the session")
}

// metrics prints every counter and gauge gathered so far, one sample per line.
func (s *session) metrics() {
	families, err := s.registry.Gather()
	if err != nil {
		_ = s.printer.errorf("gather metrics: %v", err)
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var value float64
			switch {
			case m.GetCounter() != nil:
				value = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				value = m.GetGauge().GetValue()
			default:
				continue
			}
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", l.GetName(), l.GetValue()))
			}
			name := mf.GetName()
			if len(labels) > 0 {
				name += "{" + strings.Join(labels, ",") + "}"
			}
			_ = s.printer.line("%s %g", name, value)
		}
	}
}
