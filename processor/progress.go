package processor

import (
	"errors"
	"math/rand"

	"phone-validator/client"
	"phone-validator/utils"
)

type ProgressPhase int

const (
	PhaseIdle ProgressPhase = iota
	PhaseUploading
	PhaseProcessing
	PhaseDone
	PhaseFailed
)

func (p ProgressPhase) String() string {
	switch p {
	case PhaseUploading:
		return "Uploading"
	case PhaseProcessing:
		return "Processing (indeterminate)"
	case PhaseDone:
		return "Done"
	case PhaseFailed:
		return "Failed"
	default:
		return "Idle"
	}
}

const (
	// IndeterminateCap is the highest value the processing animation
	// reaches before the response arrives.
	IndeterminateCap = 0.90
	// IndeterminateStep is the largest random advance per tick.
	IndeterminateStep = 0.15
)

// BatchProgress tracks the progress bar of one upload. The upload phase
// is measured from bytes sent. The processing phase has no signal from
// the server, so it animates by random steps capped below completion and
// is labelled indeterminate.
type BatchProgress struct {
	Phase   ProgressPhase
	Percent float64
	Sent    int64
	Total   int64

	rnd *rand.Rand
}

func NewBatchProgress(rnd *rand.Rand) *BatchProgress {
	return &BatchProgress{rnd: rnd}
}

func (p *BatchProgress) Start() {
	p.Phase = PhaseUploading
	p.Percent = 0
	p.Sent = 0
	p.Total = 0
}

// Uploaded records measured upload progress. Once every byte has been
// sent the bar restarts in the processing phase.
func (p *BatchProgress) Uploaded(sent, total int64) {
	if p.Phase != PhaseUploading {
		return
	}
	p.Sent = sent
	p.Total = total
	p.Percent = utils.CalculateProgress(sent, total)
	if total > 0 && sent >= total {
		p.Phase = PhaseProcessing
		p.Percent = 0
	}
}

// Tick advances the processing animation. It reports whether the
// caller should keep ticking.
func (p *BatchProgress) Tick() bool {
	switch p.Phase {
	case PhaseUploading:
		return true
	case PhaseProcessing:
		p.Percent += p.rnd.Float64() * IndeterminateStep
		if p.Percent > IndeterminateCap {
			p.Percent = IndeterminateCap
		}
		return true
	default:
		return false
	}
}

// Finish stops the animation. The bar jumps to 100% once a response has
// arrived. A network failure leaves it where it stopped.
func (p *BatchProgress) Finish(err error) {
	switch {
	case err == nil:
		p.Percent = 1
		p.Phase = PhaseDone
	case errors.Is(err, client.ErrNetwork):
		p.Phase = PhaseFailed
	default:
		p.Percent = 1
		p.Phase = PhaseFailed
	}
}

func (p *BatchProgress) Active() bool {
	return p.Phase == PhaseUploading || p.Phase == PhaseProcessing
}

// Label describes the current phase for the status area.
func (p *BatchProgress) Label() string {
	if p.Phase == PhaseUploading && p.Total > 0 {
		return p.Phase.String() + " " + utils.FormatProgress(p.Sent, p.Total)
	}
	return p.Phase.String()
}
