package trashdesk

import (
	"encoding/json"
	"fmt"
)

// scriptStep is one line of an input script. Coordinates are device pixels.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	// Icons is the live icon count checked by an "expect" step.
	Icons *int `json:"icons,omitempty"`
}

type script struct {
	Steps []scriptStep `json:"steps"`
}

// stepActions maps each action name to the code that queues it.
var stepActions = map[string]func(r *TestRunner, s *Scene, st scriptStep){
	"screenshot": func(_ *TestRunner, s *Scene, st scriptStep) { s.Screenshot(st.Label) },
	"click":      func(_ *TestRunner, s *Scene, st scriptStep) { s.InjectClick(st.X, st.Y) },
	"press":      func(_ *TestRunner, s *Scene, st scriptStep) { s.InjectPress(st.X, st.Y) },
	"move":       func(_ *TestRunner, s *Scene, st scriptStep) { s.InjectMove(st.X, st.Y) },
	"release":    func(_ *TestRunner, s *Scene, st scriptStep) { s.InjectRelease(st.X, st.Y) },
	"leave":      func(_ *TestRunner, s *Scene, _ scriptStep) { s.InjectLeave() },
	"drag": func(_ *TestRunner, s *Scene, st scriptStep) {
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	},
	"wait": func(r *TestRunner, _ *Scene, st scriptStep) {
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // the current frame is the first
		}
	},
	"expect": func(r *TestRunner, s *Scene, st scriptStep) {
		if got := s.IconCount(); got != *st.Icons {
			r.failures = append(r.failures,
				fmt.Sprintf("step %d: %d icons left, want %d", r.cursor, got, *st.Icons))
		}
	},
}

// TestRunner replays an input script one frame at a time. A step is only
// started once the input queued by the previous one has been consumed.
// Attach it with Scene.SetTestRunner.
type TestRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	failures  []string
}

// LoadTestScript parses a JSON script of the form {"steps": [...]}.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range sc.Steps {
		if _, ok := stepActions[st.Action]; !ok {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "expect" && st.Icons == nil {
			return nil, fmt.Errorf("parse test script: step %d: expect needs \"icons\"", i)
		}
	}
	return &TestRunner{steps: sc.Steps}, nil
}

// SetTestRunner attaches runner to the scene. It is stepped at the start of
// every Update.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether every step has run and its input was consumed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Failures returns the messages of failed "expect" steps.
func (r *TestRunner) Failures() []string {
	return r.failures
}

func (r *TestRunner) step(s *Scene) {
	if r.done || len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor < len(r.steps) {
		st := r.steps[r.cursor]
		stepActions[st.Action](r, s, st)
		r.cursor++
	}
	r.done = r.cursor == len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0
}
