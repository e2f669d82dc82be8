package chat

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"crypto-buddy/advisor"
	"crypto-buddy/catalog"
	"crypto-buddy/format"
	"crypto-buddy/intent"
	"crypto-buddy/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const disclaimerText = "Reminder: Crypto is risky"

func newSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	return newSessionWith(t, format.New(&bytes.Buffer{}), opts...)
}

func newSessionWith(t *testing.T, r Renderer, opts ...Option) *Session {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	return New(advisor.New(c), intent.NewClassifier(nil), r, opts...)
}

// recordingRenderer notes which engine-backed renderers were called.
type recordingRenderer struct {
	*format.Formatter
	calls []string
}

func (r *recordingRenderer) MostSustainable(a models.Asset) string {
	r.calls = append(r.calls, "MostSustainable")
	return r.Formatter.MostSustainable(a)
}

func (r *recordingRenderer) Rising(assets []models.Asset) string {
	r.calls = append(r.calls, "Rising")
	return r.Formatter.Rising(assets)
}

func (r *recordingRenderer) Farewell() string {
	r.calls = append(r.calls, "Farewell")
	return r.Formatter.Farewell()
}

// panicRenderer fails every sustainability answer.
type panicRenderer struct {
	*format.Formatter
}

func (panicRenderer) MostSustainable(models.Asset) string {
	panic("renderer exploded")
}

func TestRespondAnswersEachIntent(t *testing.T) {
	s := newSession(t, WithDisclaimerEvery(0))

	tests := []struct {
		query string
		want  string
	}{
		{"Which crypto is most sustainable?", "Most Sustainable: Cardano"},
		{"Show me rising cryptocurrencies", "Rising Cryptocurrencies"},
		{"What's the best long-term investment?", "Overall Score: 11/15"},
		{"Compare Bitcoin and Cardano", "Comparing Bitcoin vs Cardano"},
		{"compare bitcoin vs nothing", "mention two cryptocurrencies"},
		{"Which has low energy use?", "Low Energy Cryptocurrencies"},
		{"Tell me about Bitcoin", "Bitcoin (BTC) Details"},
		{"tell me about ripple", "Which cryptocurrency would you like to know about?"},
		{"what should I buy", "not sure what you're asking"},
		{"help", "questions you can ask me"},
		{"List All", "Available Cryptocurrencies"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			reply, done := s.Respond(tt.query)
			assert.False(t, done)
			assert.Contains(t, reply, tt.want)
		})
	}
}

func TestRespondExitSkipsEngine(t *testing.T) {
	for _, q := range []string{"quit", "EXIT", " Bye "} {
		r := &recordingRenderer{Formatter: format.New(&bytes.Buffer{})}
		s := newSessionWith(t, r)

		reply, done := s.Respond(q)
		assert.True(t, done, q)
		assert.Contains(t, reply, "Thanks for chatting")
		assert.Equal(t, []string{"Farewell"}, r.calls, q)
		assert.Equal(t, 0, s.Turns())
	}
}

func TestDisclaimerCadence(t *testing.T) {
	s := newSession(t)

	var shown []bool
	for _, q := range []string{"most sustainable?", "rising?", "long term?"} {
		reply, _ := s.Respond(q)
		shown = append(shown, strings.Contains(reply, disclaimerText))
	}
	assert.Equal(t, []bool{true, false, false}, shown)
	assert.Equal(t, 3, s.Turns())

	reply, _ := s.Respond("low energy?")
	assert.Contains(t, reply, disclaimerText)
}

func TestDisclaimerCountsUnrecognized(t *testing.T) {
	s := newSession(t)

	reply, _ := s.Respond("gibberish")
	assert.Contains(t, reply, disclaimerText)
	assert.Equal(t, 1, s.Turns())
}

func TestCommandsDoNotAdvanceTurns(t *testing.T) {
	s := newSession(t)

	for _, q := range []string{"help", "list", "show all"} {
		reply, _ := s.Respond(q)
		assert.NotContains(t, reply, disclaimerText)
	}
	assert.Equal(t, 0, s.Turns())

	reply, _ := s.Respond("most sustainable?")
	assert.Contains(t, reply, disclaimerText)
}

func TestDisclaimerDisabled(t *testing.T) {
	s := newSession(t, WithDisclaimerEvery(0))

	reply, _ := s.Respond("most sustainable?")
	assert.NotContains(t, reply, disclaimerText)
}

func TestAskRecoversPanic(t *testing.T) {
	s := newSessionWith(t, panicRenderer{Formatter: format.New(&bytes.Buffer{})})

	_, done, err := s.Ask("most sustainable?")
	require.Error(t, err)
	assert.False(t, done)
	assert.Contains(t, err.Error(), "renderer exploded")
	assert.Equal(t, 0, s.Turns())

	reply, _, err := s.Ask("rising?")
	require.NoError(t, err)
	assert.Contains(t, reply, "Rising Cryptocurrencies")
}

func TestRunTranscript(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := newSession(t, WithPrompt("You: "))
	in := strings.NewReader("\n   \nWhich crypto is most sustainable?\nhelp\nquit\nrising?\n")
	var out bytes.Buffer

	require.NoError(t, s.Run(context.Background(), in, &out))

	got := out.String()
	assert.Contains(t, got, "I'm CryptoBuddy")
	assert.Contains(t, got, "Most Sustainable: Cardano")
	assert.Contains(t, got, "questions you can ask me")
	assert.Contains(t, got, "Thanks for chatting")
	assert.NotContains(t, got, "Rising Cryptocurrencies")
	assert.Equal(t, 1, strings.Count(got, disclaimerText))
	assert.Equal(t, 1, s.Turns())
}

func TestRunEndOfInput(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := newSession(t)
	var out bytes.Buffer

	require.NoError(t, s.Run(context.Background(), strings.NewReader("rising?\n"), &out))
	assert.Contains(t, out.String(), "Goodbye! Happy investing!")
}

func TestRunContinuesAfterPanic(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := newSessionWith(t, panicRenderer{Formatter: format.New(&bytes.Buffer{})})
	var out bytes.Buffer

	err := s.Run(context.Background(), strings.NewReader("sustainable?\nrising?\nbye\n"), &out)
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "Oops! Something went wrong: renderer exploded")
	assert.Contains(t, got, "Rising Cryptocurrencies")
	assert.Contains(t, got, "Thanks for chatting")
}

func TestRunLongLine(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := newSession(t)
	in := strings.NewReader(strings.Repeat("a", 70000) + "\nrising?\nbye\n")
	var out bytes.Buffer

	require.NoError(t, s.Run(context.Background(), in, &out))

	got := out.String()
	assert.Contains(t, got, "not sure what you're asking")
	assert.Contains(t, got, "Rising Cryptocurrencies")
	assert.Contains(t, got, "Thanks for chatting")
}

func TestRunDropsOversizedLine(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := newSession(t, WithMaxLineBytes(1024))
	in := strings.NewReader(strings.Repeat("x", 5000) + "\nrising?\nbye\n")
	var out bytes.Buffer

	require.NoError(t, s.Run(context.Background(), in, &out))

	got := out.String()
	assert.Contains(t, got, "Oops! Something went wrong: input line too long")
	assert.Contains(t, got, "Rising Cryptocurrencies")
	assert.Contains(t, got, "Thanks for chatting")
	assert.Equal(t, 1, s.Turns())
}

func TestRunLastLineWithoutNewline(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := newSession(t)
	var out bytes.Buffer

	require.NoError(t, s.Run(context.Background(), strings.NewReader("rising?\r\nbye"), &out))

	got := out.String()
	assert.Contains(t, got, "Rising Cryptocurrencies")
	assert.Contains(t, got, "Thanks for chatting")
}

func TestRunInterrupted(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := newSession(t)
	pr, pw := io.Pipe()
	ctx, cancel := context.WithCancel(context.Background())
	var out bytes.Buffer

	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx, pr, &out)
	}()

	_, err := pw.Write([]byte("rising?\n"))
	require.NoError(t, err)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	pw.Close()

	got := out.String()
	assert.Contains(t, got, "Goodbye! Happy investing!")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

func TestRunReadError(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := newSession(t)
	err := s.Run(context.Background(), failingReader{}, io.Discard)
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
