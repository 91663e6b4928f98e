// Package parser talks to the external spaCy German annotation service. The
// service is a long-lived child process speaking newline-delimited JSON over
// stdin/stdout; this client owns the process and serializes round trips.
// The analysis core never imports this package; sentences are injected.
package parser

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strings"
	"sync"

	"go-grammatik/types"
)

// request is one line sent to the sidecar.
type request struct {
	Action string `json:"action"`
	Text   string `json:"text,omitempty"`
	Word   string `json:"word,omitempty"`
}

// tokenPayload mirrors the sidecar's token JSON. Offsets count code points
// (Python string indexing), not bytes.
type tokenPayload struct {
	Text  string            `json:"text"`
	Lemma string            `json:"lemma"`
	POS   string            `json:"pos"`
	Tag   string            `json:"tag"`
	Dep   string            `json:"dep"`
	Morph map[string]string `json:"morph"`
	Start int               `json:"start"`
	End   int               `json:"end"`
}

type entityPayload struct {
	Text  string `json:"text"`
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// response is one line read back from the sidecar.
type response struct {
	Success  bool            `json:"success"`
	Text     string          `json:"text"`
	Tokens   []tokenPayload  `json:"tokens"`
	Entities []entityPayload `json:"entities"`
	Error    string          `json:"error"`
}

// Client is a handle on the running sidecar. Safe for concurrent use; round
// trips are serialized on the pipe.
type Client struct {
	mu      sync.Mutex
	command string
	args    []string
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	out     *bufio.Scanner
	// broken is set when a round trip was abandoned on timeout: its reply
	// may still be in flight, so the stream cannot be trusted until the
	// process is restarted.
	broken bool
}

// New starts the sidecar process. The command defaults to the bundled
// python service when empty.
func New(command string, args ...string) (*Client, error) {
	if command == "" {
		command = "python3"
		args = []string{"scripts/spacy-service.py"}
	}
	c := &Client{command: command, args: args}
	if err := c.start(); err != nil {
		return nil, err
	}
	return c, nil
}

// NewFromEnv builds the client from SPACY_SERVICE_CMD, e.g.
// "python3 server/spacy-service.py".
func NewFromEnv() (*Client, error) {
	raw := os.Getenv("SPACY_SERVICE_CMD")
	if raw == "" {
		return New("")
	}
	fields := strings.Fields(raw)
	return New(fields[0], fields[1:]...)
}

// start launches the sidecar and wires the pipes. The caller must hold the
// lock or own the client exclusively, as New does.
func (c *Client) start() error {
	cmd := exec.Command(c.command, c.args...)
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("parser stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("parser stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting parser service: %w", err)
	}
	log.Printf("spaCy parser service started (pid %d)", cmd.Process.Pid)

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	c.cmd, c.stdin, c.out, c.broken = cmd, stdin, scanner, false
	return nil
}

// Analyze sends the sentence to the sidecar and maps the reply into the
// annotation model. The context bounds the round trip.
func (c *Client) Analyze(ctx context.Context, text string) (types.Sentence, error) {
	resp, err := c.roundTrip(ctx, request{Action: "analyze", Text: text})
	if err != nil {
		return types.Sentence{}, err
	}
	if !resp.Success {
		return types.Sentence{}, fmt.Errorf("parser service: %s", resp.Error)
	}
	return MapSentence(text, resp.Tokens, resp.Entities), nil
}

func (c *Client) roundTrip(ctx context.Context, req request) (response, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return response{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.broken {
		// The abandoned round trip's reply may still be sitting in the old
		// pipe; there is no way to resync the stream, so restart.
		log.Printf("Restarting parser service after abandoned round trip")
		c.kill()
		if err := c.start(); err != nil {
			return response{}, fmt.Errorf("restarting parser service: %w", err)
		}
	}

	// The goroutine owns this round trip's pipes. It captures them as
	// locals so a later restart cannot swap the scanner out mid-read.
	stdin, out := c.stdin, c.out
	type result struct {
		resp response
		err  error
	}
	done := make(chan result, 1)
	go func() {
		if _, err := stdin.Write(append(payload, '\n')); err != nil {
			done <- result{err: fmt.Errorf("writing to parser service: %w", err)}
			return
		}
		if !out.Scan() {
			err := out.Err()
			if err == nil {
				err = io.EOF
			}
			done <- result{err: fmt.Errorf("reading from parser service: %w", err)}
			return
		}
		var resp response
		if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
			done <- result{err: fmt.Errorf("decoding parser response: %w", err)}
			return
		}
		done <- result{resp: resp}
	}()

	select {
	case <-ctx.Done():
		// The reader goroutine is still blocked on the pipe; it exits on
		// its own once the process is killed. Until then nothing else may
		// touch the scanner.
		c.broken = true
		return response{}, ctx.Err()
	case r := <-done:
		return r.resp, r.err
	}
}

// kill tears the current process down. Closing the pipes unblocks any
// abandoned reader goroutine with EOF.
func (c *Client) kill() {
	if c.stdin != nil {
		c.stdin.Close()
	}
	if c.cmd != nil && c.cmd.Process != nil {
		c.cmd.Process.Kill()
		cmd := c.cmd
		go cmd.Wait() // reap without blocking the caller
	}
	c.cmd, c.stdin, c.out = nil, nil, nil
}

// Close shuts the sidecar down.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.broken {
		c.kill()
		return nil
	}
	if c.stdin != nil {
		c.stdin.Close()
	}
	if c.cmd != nil && c.cmd.Process != nil {
		return c.cmd.Wait()
	}
	return nil
}

// MapSentence converts the sidecar payload into the annotation model.
// Detection spans index bytes of the original text, while the sidecar
// reports code-point offsets, so offsets are converted here; umlauts would
// otherwise shift every following span. Tokens without offsets are located
// left to right instead.
func MapSentence(text string, toks []tokenPayload, ents []entityPayload) types.Sentence {
	offs := runeOffsets(text)
	s := types.Sentence{Text: text}
	cursor := 0
	for i, t := range toks {
		var start, end int
		if t.End == 0 && t.Text != "" {
			// Offsets missing: locate the token left to right.
			if idx := strings.Index(text[cursor:], t.Text); idx >= 0 {
				start = cursor + idx
				end = start + len(t.Text)
				cursor = end
			}
		} else {
			start = byteOffset(offs, t.Start)
			end = byteOffset(offs, t.End)
			cursor = end
		}
		morph := t.Morph
		if morph == nil {
			morph = map[string]string{}
		}
		s.Tokens = append(s.Tokens, types.Token{
			Text:  t.Text,
			Lemma: t.Lemma,
			POS:   t.POS,
			Tag:   t.Tag,
			Dep:   t.Dep,
			Morph: morph,
			Index: i,
			Start: start,
			End:   end,
		})
	}
	for _, e := range ents {
		s.Entities = append(s.Entities, types.Entity{
			Text:  e.Text,
			Label: e.Label,
			Start: byteOffset(offs, e.Start),
			End:   byteOffset(offs, e.End),
		})
	}
	return s
}

// runeOffsets returns the byte position of every code point in text, plus
// the total byte length as the final entry.
func runeOffsets(text string) []int {
	offs := make([]int, 0, len(text)+1)
	for i := range text {
		offs = append(offs, i)
	}
	return append(offs, len(text))
}

// byteOffset translates a code-point offset into a byte offset, clamped to
// the text bounds.
func byteOffset(offs []int, runeIdx int) int {
	if runeIdx < 0 {
		return 0
	}
	if runeIdx >= len(offs) {
		return offs[len(offs)-1]
	}
	return offs[runeIdx]
}
