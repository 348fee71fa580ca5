// This is free and unencumbered software released into the public domain.

package golly

import "testing"

func TestNewEngineDefaults(t *testing.T) {
	e := NewEngine()
	if got := e.GetRule(); got != "B3/S23" {
		t.Fatalf("default rule = %q, want B3/S23", got)
	}
	if !e.Generation().IsZero() {
		t.Fatal("fresh engine should start at generation 0")
	}
	if !e.IsEmpty() {
		t.Fatal("fresh engine should have an empty pattern")
	}
}

func TestSetRuleInvalidatesAndRecomputesLeaves(t *testing.T) {
	e := NewEngine()
	e.SetCell(0, 0, 1)
	e.SetCell(1, 0, 1)
	e.SetCell(0, 1, 1)

	if err := e.SetRule("B1/S1"); err != nil {
		t.Fatalf("SetRule: %v", err)
	}
	if got := e.GetRule(); got != "B1/S1" {
		t.Fatalf("GetRule() after SetRule = %q, want B1/S1", got)
	}
	// The pattern shape itself is untouched by a rule change.
	if e.GetCell(0, 0) != 1 {
		t.Fatal("SetRule must not alter existing cell states")
	}

	e.SetIncrement(NatFromUint64(1))
	if err := e.Step(); err != nil {
		t.Fatalf("Step under new rule: %v", err)
	}
}

func TestSetRuleRejectsBadSyntax(t *testing.T) {
	e := NewEngine()
	if err := e.SetRule("not a rule"); err == nil {
		t.Fatal("expected an error for a malformed rule string")
	}
	if got := e.GetRule(); got != "B3/S23" {
		t.Fatalf("a rejected SetRule must leave the previous rule in place, got %q", got)
	}
}

func TestWithMaxNodesOption(t *testing.T) {
	e := NewEngine(WithMaxNodes(16))
	if e.maxNodes != 16 {
		t.Fatalf("WithMaxNodes(16) set maxNodes = %d, want 16", e.maxNodes)
	}
	// The empty leaf and the empty depth-3 root are the only nodes.
	if e.GetStats().Nodes != 2 {
		t.Fatalf("fresh engine should start with a minimal node count, got %d, want 2", e.GetStats().Nodes)
	}
}

type recordingSink struct {
	statuses []string
}

func (s *recordingSink) Status(msg string)  { s.statuses = append(s.statuses, msg) }
func (s *recordingSink) Warning(msg string) { s.statuses = append(s.statuses, msg) }
func (s *recordingSink) Fatal(msg string)   { panic("golly: " + msg) }

func TestWithStatusSinkReceivesCollectionNotice(t *testing.T) {
	sink := &recordingSink{}
	e := NewEngine(WithStatusSink(sink), WithMaxNodes(1))
	e.SetCell(0, 0, 1)
	e.SetCell(5, 5, 1)
	e.maybeCollect()
	if len(sink.statuses) == 0 {
		t.Fatal("expected at least one status message once the node budget was exceeded")
	}
}

type countingPoller struct {
	remaining int
}

func (p *countingPoller) Poll() bool {
	if p.remaining <= 0 {
		return true
	}
	p.remaining--
	return false
}

func TestWithPollerInterruptsStep(t *testing.T) {
	poller := &countingPoller{remaining: 0}
	e := NewEngine(WithPoller(poller))
	e.SetCell(0, 0, 1)
	e.SetIncrement(NatFromUint64(5))
	if err := e.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !e.Generation().IsZero() {
		t.Fatalf("Step should have been interrupted before any repetition completed, generation = %s", e.Generation().String())
	}
}
