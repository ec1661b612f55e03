package sbs

import (
	"bufio"
	"fmt"
	"net"
	"sync"
	"time"
)

// Client is a line-oriented TCP connection to a BaseStation feed. It reads
// raw lines into a channel; parsing happens on the consumer side so that
// records are processed strictly in arrival order by a single goroutine.
type Client struct {
	conn        net.Conn
	addr        string
	readTimeout time.Duration
	lineChan    chan string
	errChan     chan error
	stop        chan struct{}
	done        chan struct{}
	closeOnce   sync.Once
}

// Dial connects to a feed at addr ("host:port"). readTimeout bounds each
// blocking read; a silent feed past that deadline surfaces as a read error.
func Dial(addr string, readTimeout time.Duration) (*Client, error) {
	conn, err := net.DialTimeout("tcp", addr, 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to feed %s: %w", addr, err)
	}

	return &Client{
		conn:        conn,
		addr:        addr,
		readTimeout: readTimeout,
		lineChan:    make(chan string, 100),
		errChan:     make(chan error, 1),
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}, nil
}

// Start begins reading lines from the feed.
func (c *Client) Start() {
	go c.readLoop()
}

// Lines returns the channel of raw feed lines. It is closed when the feed
// connection ends.
func (c *Client) Lines() <-chan string {
	return c.lineChan
}

// Errors returns the channel carrying the terminal read error, if any.
func (c *Client) Errors() <-chan error {
	return c.errChan
}

// Close shuts the connection down and waits for the read loop to finish.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		close(c.stop)
		if c.conn != nil {
			c.conn.Close()
		}
		<-c.done
	})
	return nil
}

func (c *Client) readLoop() {
	defer close(c.done)
	defer close(c.lineChan)

	scanner := bufio.NewScanner(c.conn)
	for {
		if c.readTimeout > 0 {
			c.conn.SetReadDeadline(time.Now().Add(c.readTimeout))
		}
		if !scanner.Scan() {
			break
		}
		select {
		case c.lineChan <- scanner.Text():
		case <-c.stop:
			return
		}
	}

	if err := scanner.Err(); err != nil {
		select {
		case c.errChan <- fmt.Errorf("feed %s: %w", c.addr, err):
		default:
		}
	}
}
