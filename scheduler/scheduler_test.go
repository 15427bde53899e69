package scheduler

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/wippyai/boardgen/board"
)

type fakeHW struct {
	accept  int // writes accepted before reporting full
	written []uint32
	pending map[int][]uint32
}

func (h *fakeHW) Write(_ int, v uint32) bool {
	if len(h.written) >= h.accept {
		return false
	}
	h.written = append(h.written, v)
	return true
}

func (h *fakeHW) Read(stream int) (uint32, bool) {
	q := h.pending[stream]
	if len(q) == 0 {
		return 0, false
	}
	h.pending[stream] = q[1:]
	return q[0], true
}

type fakeMedium struct {
	incoming []uint32
	flushed  map[int][][]uint32
	polls    []int
}

func (m *fakeMedium) Receive(in Inbox) {
	for _, v := range m.incoming {
		in.Deliver(0, v)
	}
	m.incoming = nil
}

func (m *fakeMedium) Flush(stream int, values []uint32) {
	if m.flushed == nil {
		m.flushed = map[int][][]uint32{}
	}
	m.flushed[stream] = append(m.flushed[stream], append([]uint32(nil), values...))
}

func (m *fakeMedium) Poll(stream int) { m.polls = append(m.polls, stream) }

func TestMachine_Draining(t *testing.T) {
	const capacity = 8
	tests := []struct {
		name      string
		buffered  int
		accept    int
		wantPolls int
	}{
		{"full queue, partial sink", capacity, 3, 1},
		{"full queue, blocked sink", capacity, 0, 0},
		{"full queue, open sink", capacity, 100, 1},
		{"partial queue, partial sink", 5, 3, 0},
		{"empty queue", 0, 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hw := &fakeHW{accept: tt.accept}
			med := &fakeMedium{}
			m := NewMachine(Config{In: []int{capacity}}, hw, med)
			for i := 0; i < tt.buffered; i++ {
				if !m.In(0).Push(uint32(i)) {
					t.Fatalf("push %d failed", i)
				}
			}

			st := m.Step()

			moved := min(tt.accept, tt.buffered)
			if st.Written != moved || len(hw.written) != moved {
				t.Errorf("written = %d, want %d", st.Written, moved)
			}
			if m.In(0).Len() != tt.buffered-moved {
				t.Errorf("queued = %d, want %d", m.In(0).Len(), tt.buffered-moved)
			}
			if st.Polls != tt.wantPolls || len(med.polls) != tt.wantPolls {
				t.Errorf("polls = %d, want %d", st.Polls, tt.wantPolls)
			}
			for i, v := range hw.written {
				if v != uint32(i) {
					t.Errorf("write %d = %d, order not preserved", i, v)
				}
			}
		})
	}
}

func TestMachine_ReceivesBeforeWriting(t *testing.T) {
	hw := &fakeHW{accept: 10}
	med := &fakeMedium{incoming: []uint32{7, 8}}
	m := NewMachine(Config{In: []int{4}}, hw, med)

	if st := m.Step(); st.Written != 2 {
		t.Errorf("written = %d, want 2", st.Written)
	}
}

func TestMachine_Reading(t *testing.T) {
	hw := &fakeHW{pending: map[int][]uint32{
		0: {1, 2, 3, 4, 5},
		1: {10, 11, 12, 13, 14},
	}}
	med := &fakeMedium{}
	m := NewMachine(Config{Out: []OutConfig{
		{Capacity: 3},
		{Capacity: 8, Polling: true, PollCount: 2},
	}}, hw, med)

	st := m.Step()
	if st.Read != 5 {
		t.Errorf("read = %d, want 5", st.Read)
	}
	if got := med.flushed[0]; len(got) != 1 || len(got[0]) != 3 {
		t.Errorf("stream 0 flushed %v, want one batch of 3", got)
	}
	if got := med.flushed[1]; len(got) != 1 || len(got[0]) != 2 {
		t.Errorf("stream 1 flushed %v, want one batch of 2", got)
	}
	if m.PollCount(1) != 0 {
		t.Errorf("poll count = %d, want 0", m.PollCount(1))
	}

	// no credit left: the polling stream is not read
	m.Step()
	if len(hw.pending[1]) != 3 {
		t.Errorf("polling stream read without credit, %d left", len(hw.pending[1]))
	}

	m.Credit(1, 1)
	m.Step()
	if len(hw.pending[1]) != 2 {
		t.Errorf("expected exactly one credited read, %d left", len(hw.pending[1]))
	}
}

func TestMachine_FlushesEveryStream(t *testing.T) {
	med := &fakeMedium{}
	m := NewMachine(Config{Out: []OutConfig{{Capacity: 4}}}, &fakeHW{}, med)

	m.Step()
	m.Step()
	got := med.flushed[0]
	if len(got) != 2 {
		t.Fatalf("stream 0 flushed %d times, want once per step", len(got))
	}
	for _, batch := range got {
		if len(batch) != 0 {
			t.Errorf("flushed %v from empty hardware", batch)
		}
	}
}

func TestMachine_Run(t *testing.T) {
	m := NewMachine(Config{In: []int{1}}, &fakeHW{}, &fakeMedium{})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if err := m.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run = %v, want deadline exceeded", err)
	}
}

func TestQueue(t *testing.T) {
	q := NewQueue(2)
	if !q.Push(1) || !q.Push(2) || q.Push(3) {
		t.Fatal("capacity not enforced")
	}
	if v, _ := q.Take(); v != 1 {
		t.Errorf("Take = %d, want 1", v)
	}
	q.Push(3)
	if v, _ := q.Take(); v != 2 {
		t.Errorf("Take = %d, want 2", v)
	}
	if v, _ := q.Take(); v != 3 {
		t.Errorf("Take = %d, want 3", v)
	}
	if _, ok := q.Take(); ok {
		t.Error("Take on empty queue succeeded")
	}

	if NewQueue(0).Push(1) {
		t.Error("zero capacity queue accepted a value")
	}
}

func TestGenerate_Default(t *testing.T) {
	tests := []struct {
		name     string
		params   Params
		hasWrite bool
		hasRead  bool
	}{
		{"both", Params{InStreams: 2, OutStreams: 1}, true, true},
		{"write only", Params{InStreams: 1}, true, false},
		{"read only", Params{OutStreams: 3}, false, true},
		{"none", Params{}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Generate(&board.DefaultCode{}, tt.params)
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}
			if p.Name != "schedule" || len(p.Doc.Lines) == 0 {
				t.Errorf("procedure = %s, doc %v", p.Name, p.Doc.Lines)
			}
			body := strings.Join(p.Body.Lines, "\n")
			if got := strings.Contains(body, "pid < IN_STREAM_COUNT"); got != tt.hasWrite {
				t.Errorf("write loop present = %v", got)
			}
			if got := strings.Contains(body, "pid < OUT_STREAM_COUNT"); got != tt.hasRead {
				t.Errorf("read loop present = %v", got)
			}
			if !strings.Contains(body, "medium_read();") {
				t.Error("medium is not drained")
			}
			if p.Body.Lines[len(p.Body.Lines)-1] != "}" {
				t.Error("loop not closed")
			}
			if len(p.Body.ForwardDecls) != 3 {
				t.Errorf("forward decls = %v", p.Body.ForwardDecls)
			}
		})
	}
}

func TestGenerate_UserCode(t *testing.T) {
	lines := []string{"while(1) {", "  medium_read();", "}"}
	p, err := Generate(&board.UserCode{Lines: lines}, Params{InStreams: 4})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if strings.Join(p.Body.Lines, "\n") != strings.Join(lines, "\n") {
		t.Errorf("user code not verbatim: %v", p.Body.Lines)
	}
	want := []string{"void medium_read()", "int axi_write ( int val, int target )", "int axi_read ( int *val, int target )"}
	for i, d := range want {
		if p.Body.ForwardDecls[i] != d {
			t.Errorf("forward decl %d = %s", i, p.Body.ForwardDecls[i])
		}
	}
}

func TestModule(t *testing.T) {
	m, err := Module("server/src", &board.DefaultCode{}, Params{InStreams: 1})
	if err != nil {
		t.Fatal(err)
	}
	if m.Name != "scheduler" || m.Dir != "server/src" {
		t.Errorf("module = %s (%s)", m.Name, m.Dir)
	}
	if _, ok := m.Procedure("schedule"); !ok {
		t.Error("schedule procedure missing")
	}
}
