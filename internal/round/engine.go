package round

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"hexdrill/internal/radix"
)

// ErrEndOfInput reports that the player closed the input stream mid-round.
// It is a request to quit the whole program, not a failure.
var ErrEndOfInput = errors.New("end of input")

type State int

const (
	StateCountdown State = iota
	StateScoring
	StatePrompting
	StateElapsed
)

func (s State) String() string {
	switch s {
	case StateCountdown:
		return "countdown"
	case StateScoring:
		return "scoring"
	case StatePrompting:
		return "prompting"
	case StateElapsed:
		return "elapsed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

type trigger int

const (
	countdownDone trigger = iota
	operandSampled
	deadlinePassed
	answerWrong
	answerCorrect
)

var transitions = map[State]map[trigger]State{
	StateCountdown: {countdownDone: StateScoring},
	StateScoring:   {operandSampled: StatePrompting, deadlinePassed: StateElapsed},
	StatePrompting: {answerWrong: StatePrompting, answerCorrect: StateScoring},
}

func next(s State, t trigger) State {
	to, ok := transitions[s][t]
	if !ok {
		panic(fmt.Sprintf("round: no transition from %s on trigger %d", s, t))
	}
	return to
}

// UI receives everything the player should see during a round.
type UI interface {
	Announce(number int, pair radix.Pair)
	Tick(remaining int)
	Prompt(operand string)
	Wrong()
	RoundOver(res Result)
}

type Engine struct {
	cfg     Config
	clock   Clock
	input   LineReader
	ui      UI
	sampler *Sampler
}

func NewEngine(cfg Config, clock Clock, input LineReader, ui UI, sampler *Sampler) *Engine {
	return &Engine{
		cfg:     cfg,
		clock:   clock,
		input:   input,
		ui:      ui,
		sampler: sampler,
	}
}

// Points is the score for a correct answer: 1 when the operand is a single
// digit in both bases, 2 otherwise.
func Points(operand uint8, pair radix.Pair) int {
	if radix.DigitCount(operand, pair.Source) == 1 && radix.DigitCount(operand, pair.Target) == 1 {
		return 1
	}
	return 2
}

// Grade checks a typed answer for operand. Malformed text is simply wrong.
func Grade(operand uint8, pair radix.Pair, text string) (int, bool) {
	v, ok := radix.Parse(text, pair.Target)
	if !ok || v != operand {
		return 0, false
	}
	return Points(operand, pair), true
}

// Play runs one round for pair and returns its result. The deadline is only
// checked before a new operand is drawn, so an answer in flight when time
// runs out is still graded. Cancellation of ctx is noticed before each
// prompt; a pending read is not interrupted.
func (e *Engine) Play(ctx context.Context, number int, pair radix.Pair) (Result, error) {
	res := Result{Number: number, Pair: pair}
	e.sampler.Reset()
	e.ui.Announce(number, pair)

	var (
		operand uint8
		started bool
	)
	state := StateCountdown
	for state != StateElapsed {
		switch state {
		case StateCountdown:
			e.countdown()
			state = next(state, countdownDone)

		case StateScoring:
			if err := ctx.Err(); err != nil {
				return res, err
			}
			now := e.clock.Now()
			if !started {
				res.StartedAt = now
				started = true
			}
			if now.Sub(res.StartedAt) >= e.cfg.Duration {
				state = next(state, deadlinePassed)
				continue
			}
			operand = e.sampler.Next()
			state = next(state, operandSampled)

		case StatePrompting:
			if err := ctx.Err(); err != nil {
				return res, err
			}
			e.ui.Prompt(radix.Format(operand, pair.Source))
			shownAt := e.clock.Now()
			line, err := e.input.ReadLine()
			if err != nil {
				if errors.Is(err, io.EOF) {
					return res, ErrEndOfInput
				}
				return res, fmt.Errorf("reading answer: %w", err)
			}

			points, ok := Grade(operand, pair, line)
			res.Answers = append(res.Answers, Answer{
				Operand:    operand,
				Input:      line,
				Correct:    ok,
				Points:     points,
				ShownAt:    shownAt,
				AnsweredAt: e.clock.Now(),
			})
			if !ok {
				res.Wrong++
				e.ui.Wrong()
				state = next(state, answerWrong)
				continue
			}
			res.Correct++
			res.Score = AddScore(res.Score, points)
			state = next(state, answerCorrect)
		}
	}

	res.EndedAt = e.clock.Now()
	e.ui.RoundOver(res)
	return res, nil
}

func (e *Engine) countdown() {
	start := e.clock.Now()
	for i := 0; i < e.cfg.CountdownTicks; i++ {
		e.ui.Tick(e.cfg.CountdownTicks - i)
		waitUntil(e.clock, start.Add(time.Duration(i+1)*e.cfg.TickLength), e.cfg.PollInterval)
	}
}
