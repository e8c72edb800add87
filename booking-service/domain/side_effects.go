package domain

// SideEffectStep names a best-effort step run after a booking transition is durable
type SideEffectStep string

const (
	StepNotify           SideEffectStep = "notify"
	StepInventoryReserve SideEffectStep = "inventory_reserve"
	StepInventoryRelease SideEffectStep = "inventory_release"
	StepInventoryRecord  SideEffectStep = "inventory_record"
	StepEventLookup      SideEffectStep = "event_lookup"
)

// SideEffectOutcome records one best-effort step. A nil Err means it succeeded.
type SideEffectOutcome struct {
	Step SideEffectStep
	Err  error
}

func (o SideEffectOutcome) Failed() bool {
	return o.Err != nil
}

// SideEffects is the ordered list of best-effort steps an operation attempted
type SideEffects []SideEffectOutcome

// Failed returns the outcomes that did not succeed
func (s SideEffects) Failed() []SideEffectOutcome {
	var failed []SideEffectOutcome
	for _, o := range s {
		if o.Failed() {
			failed = append(failed, o)
		}
	}
	return failed
}

// Find returns the outcome for step, if it was attempted
func (s SideEffects) Find(step SideEffectStep) (SideEffectOutcome, bool) {
	for _, o := range s {
		if o.Step == step {
			return o, true
		}
	}
	return SideEffectOutcome{}, false
}
