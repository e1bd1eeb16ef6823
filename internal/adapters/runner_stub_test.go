package adapters

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"pkg-linkcheck/internal/ports"
)

// scriptedRunner answers commands from a table keyed by the joined argv.
type scriptedRunner struct {
	mu      sync.Mutex
	results map[string]ports.CommandResult
	errs    map[string]error
	calls   []string
}

func newScriptedRunner() *scriptedRunner {
	return &scriptedRunner{
		results: map[string]ports.CommandResult{},
		errs:    map[string]error{},
	}
}

func (r *scriptedRunner) on(result ports.CommandResult, argv ...string) *scriptedRunner {
	r.results[strings.Join(argv, " ")] = result
	return r
}

func (r *scriptedRunner) fail(err error, argv ...string) *scriptedRunner {
	r.errs[strings.Join(argv, " ")] = err
	return r
}

func (r *scriptedRunner) Run(_ context.Context, name string, args ...string) (ports.CommandResult, error) {
	key := strings.Join(append([]string{name}, args...), " ")
	r.mu.Lock()
	r.calls = append(r.calls, key)
	r.mu.Unlock()
	if err, ok := r.errs[key]; ok {
		return ports.CommandResult{}, err
	}
	if result, ok := r.results[key]; ok {
		return result, nil
	}
	return ports.CommandResult{}, fmt.Errorf("unexpected command: %s", key)
}

func (r *scriptedRunner) callCount(argv ...string) int {
	key := strings.Join(argv, " ")
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, call := range r.calls {
		if call == key {
			count++
		}
	}
	return count
}

func stdout(text string) ports.CommandResult {
	return ports.CommandResult{Stdout: []byte(text)}
}
