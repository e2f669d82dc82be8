// Package chat runs the question and answer loop: classify a line, ask the
// advisor, render the answer.
package chat

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"crypto-buddy/advisor"
	"crypto-buddy/intent"
	"crypto-buddy/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultDisclaimerEvery is how many answered questions share one risk
// reminder. The reminder follows the first answer of each group.
const DefaultDisclaimerEvery = 3

// DefaultMaxLineBytes bounds one line of input. Longer lines are dropped
// and reported as a failed turn.
const DefaultMaxLineBytes = 1 << 20

var ErrLineTooLong = errors.New("input line too long")

// Renderer turns advisor results into user-facing text. *format.Formatter
// implements it.
type Renderer interface {
	Greeting() string
	Help() string
	List(assets []models.Asset) string
	Details(a models.Asset) string
	NotFound(name string) string
	AskWhich() string
	MostSustainable(a models.Asset) string
	Rising(assets []models.Asset) string
	BestLongTerm(a models.Asset, score int) string
	Compare(c advisor.Comparison) string
	InsufficientComparison() string
	LowEnergy(assets []models.Asset) string
	Unrecognized() string
	Disclaimer() string
	Farewell() string
	Goodbye() string
	Oops(err error) string
}

type Session struct {
	id         string
	advisor    *advisor.Advisor
	classifier *intent.Classifier
	render     Renderer
	every      int
	maxLine    int
	prompt     string
	turns      int
	logger     zerolog.Logger
}

type Option func(*Session)

// WithDisclaimerEvery sets the reminder interval. Zero or less disables it.
func WithDisclaimerEvery(n int) Option {
	return func(s *Session) {
		s.every = n
	}
}

// WithMaxLineBytes sets the longest line Run will answer.
func WithMaxLineBytes(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.maxLine = n
		}
	}
}

// WithPrompt sets the text written before each line is read.
func WithPrompt(p string) Option {
	return func(s *Session) {
		s.prompt = p
	}
}

func New(adv *advisor.Advisor, cls *intent.Classifier, r Renderer, opts ...Option) *Session {
	s := &Session{
		id:         uuid.NewString(),
		advisor:    adv,
		classifier: cls,
		render:     r,
		every:      DefaultDisclaimerEvery,
		maxLine:    DefaultMaxLineBytes,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = log.With().Str("session", s.id).Logger()
	return s
}

func (s *Session) ID() string {
	return s.id
}

// Turns is the number of answered questions so far. Commands and failed
// turns are not counted.
func (s *Session) Turns() int {
	return s.turns
}

// Respond answers one line of input. done reports that the user asked to
// leave; the advisor is not consulted in that case.
func (s *Session) Respond(line string) (reply string, done bool) {
	query := intent.Normalize(line)
	it := s.classifier.Classify(query)
	s.logger.Debug().Str("intent", string(it)).Int("turn", s.turns).Msg("classified query")

	switch it {
	case intent.Exit:
		return s.render.Farewell(), true
	case intent.Help:
		return s.render.Help(), false
	case intent.List:
		return s.render.List(s.advisor.Catalog().Assets()), false
	}

	reply = s.answer(it, query)
	if s.every > 0 && s.turns%s.every == 0 {
		reply += s.render.Disclaimer()
	}
	s.turns++
	return reply, false
}

// Ask is Respond with a panic in the turn turned into an error, so one bad
// turn cannot end the session.
func (s *Session) Ask(line string) (reply string, done bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
			s.logger.Error().Interface("panic", r).Str("query", line).Msg("turn failed")
		}
	}()
	reply, done = s.Respond(line)
	return reply, done, nil
}

func (s *Session) answer(it intent.Intent, query string) string {
	switch it {
	case intent.Sustainable:
		return s.render.MostSustainable(s.advisor.MostSustainable())
	case intent.Rising:
		return s.render.Rising(s.advisor.Rising())
	case intent.LongTerm:
		return s.render.BestLongTerm(s.advisor.BestLongTerm())
	case intent.Compare:
		pair, err := s.advisor.Compare(query)
		if errors.Is(err, models.ErrInsufficientComparison) {
			return s.render.InsufficientComparison()
		}
		return s.render.Compare(pair)
	case intent.LowEnergy:
		return s.render.LowEnergy(s.advisor.LowEnergy())
	case intent.About:
		mentioned, ok := s.advisor.Mentioned(query)
		if !ok {
			return s.render.AskWhich()
		}
		a, err := s.advisor.Details(mentioned.Name)
		if err != nil {
			return s.render.NotFound(models.TitleName(mentioned.Name))
		}
		return s.render.Details(a)
	default:
		return s.render.Unrecognized()
	}
}

// Run greets the user and answers lines from in until an exit command, end
// of input or ctx cancellation. All three end with a nil error; only a read
// failure is returned.
//
// Lines are read on a separate goroutine. If ctx is cancelled while that
// goroutine is blocked in a Read on in, it stays blocked until in returns
// data, EOF or an error; closing in releases it.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	lines := make(chan inputLine)
	readErr := make(chan error, 1)
	stop := make(chan struct{})
	defer close(stop)

	go func() {
		defer close(lines)
		readErr <- readLines(in, s.maxLine, lines, stop)
	}()

	s.logger.Info().Msg("session started")
	fmt.Fprint(out, s.render.Greeting())

	for {
		fmt.Fprint(out, s.prompt)

		select {
		case <-ctx.Done():
			s.logger.Info().Int("turns", s.turns).Msg("session interrupted")
			fmt.Fprint(out, s.render.Goodbye())
			return nil

		case line, ok := <-lines:
			if !ok {
				var err error
				select {
				case err = <-readErr:
				default:
				}
				fmt.Fprint(out, s.render.Goodbye())
				if err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				s.logger.Info().Int("turns", s.turns).Msg("input closed")
				return nil
			}

			if line.tooLong {
				s.logger.Warn().Int("limit", s.maxLine).Msg("dropped oversized line")
				fmt.Fprint(out, s.render.Oops(ErrLineTooLong))
				continue
			}
			if strings.TrimSpace(line.text) == "" {
				continue
			}

			reply, done, err := s.Ask(line.text)
			if err != nil {
				fmt.Fprint(out, s.render.Oops(err))
				continue
			}
			fmt.Fprint(out, reply)
			if done {
				s.logger.Info().Int("turns", s.turns).Msg("session ended")
				return nil
			}
		}
	}
}

type inputLine struct {
	text    string
	tooLong bool
}

// readLines sends each line of in to lines until EOF or stop. Lines longer
// than limit are sent with tooLong set and their text discarded. EOF
// returns nil.
func readLines(in io.Reader, limit int, lines chan<- inputLine, stop <-chan struct{}) error {
	r := bufio.NewReader(in)
	send := func(l inputLine) bool {
		select {
		case lines <- l:
			return true
		case <-stop:
			return false
		}
	}

	for {
		var line inputLine
		var buf []byte
		for {
			frag, more, err := r.ReadLine()
			if err != nil {
				if len(buf) > 0 || line.tooLong {
					line.text = string(buf)
					if !send(line) {
						return nil
					}
				}
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
			switch {
			case line.tooLong:
			case len(buf)+len(frag) > limit:
				line.tooLong = true
				buf = nil
			default:
				buf = append(buf, frag...)
			}
			if !more {
				break
			}
		}
		line.text = string(buf)
		if !send(line) {
			return nil
		}
	}
}
