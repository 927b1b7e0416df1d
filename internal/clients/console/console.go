package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/term"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/messages"
	"max.ks1230/expense-tracker/internal/model/notify"
)

const (
	prompt         = "> "
	timeoutSeconds = 10
)

type lineReader interface {
	ReadLine() (string, error)
}

type scannerReader struct {
	scanner *bufio.Scanner
}

func (r scannerReader) ReadLine() (string, error) {
	if r.scanner.Scan() {
		return r.scanner.Text(), nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// Client is the interactive front-end: commands come from the input, answers and
// toasts go to the output.
type Client struct {
	lines   lineReader
	mu      sync.Mutex
	out     io.Writer
	restore func()
	shown   map[string]bool
}

// New uses a line editor when in is a terminal and plain lines otherwise.
func New(in *os.File, out io.Writer) (*Client, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return newClient(in, out), nil
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, errors.Wrap(err, "make terminal raw")
	}
	terminal := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{in, out}, prompt)
	return &Client{
		lines: terminal,
		out:   terminal,
		restore: func() {
			if err := term.Restore(fd, state); err != nil {
				logger.Error("failed to restore terminal", zap.Error(err))
			}
		},
		shown: make(map[string]bool),
	}, nil
}

func newClient(in io.Reader, out io.Writer) *Client {
	return &Client{
		lines:   scannerReader{scanner: bufio.NewScanner(in)},
		out:     out,
		restore: func() {},
		shown:   make(map[string]bool),
	}
}

func (c *Client) Close() {
	c.restore()
}

func (c *Client) SendMessage(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := fmt.Fprintln(c.out, text)
	if err != nil {
		return errors.Wrap(err, "write message")
	}
	return nil
}

// ShowToasts prints every toast once, when it first appears.
func (c *Client) ShowToasts(toasts []notify.Toast) {
	c.mu.Lock()
	defer c.mu.Unlock()
	active := make(map[string]bool, len(toasts))
	for _, t := range toasts {
		active[t.ID] = true
		if c.shown[t.ID] {
			continue
		}
		c.shown[t.ID] = true
		if _, err := fmt.Fprintf(c.out, "[%s] %s\n", strings.ToUpper(string(t.Kind)), t.Message); err != nil {
			logger.Error("failed to show toast", zap.Error(err))
		}
	}
	for id := range c.shown {
		if !active[id] {
			delete(c.shown, id)
		}
	}
}

func (c *Client) ListenUpdates(ctx context.Context, msgModel *messages.Service) {
	lines := make(chan string)
	go func() {
		defer close(lines)
		for {
			line, err := c.lines.ReadLine()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					logger.Error("failed to read input", zap.Error(err))
				}
				return
			}
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
	}()

	logger.Info("Start listening for commands")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Stop listening for commands")
			return
		case line, ok := <-lines:
			if !ok {
				logger.Info("Input closed")
				return
			}
			c.listenOnce(ctx, line, msgModel)
		}
	}
}

func (c *Client) listenOnce(ctx context.Context, line string, msgModel *messages.Service) {
	if strings.TrimSpace(line) == "" {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, time.Second*timeoutSeconds)
	defer cancel()

	err := msgModel.HandleIncomingMessage(ctx, messages.Message{Text: line})
	if err != nil {
		logger.Error("error processing command:", zap.Error(err))
	}
}
