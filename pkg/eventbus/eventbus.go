// Package eventbus delivers the latest value published on a topic to every
// subscriber. Slow subscribers only ever see the newest value; stale values
// are dropped rather than queued.
package eventbus

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

var (
	ErrClosed      = errors.New("eventbus closed")
	ErrPublishFull = errors.New("publish channel full")
)

type Config struct {
	IncomingBuffer    int
	SubscribeBuffer   int
	UnsubscribeBuffer int
	// CacheTTL is how long the last value of a topic is replayed to new
	// subscribers. Zero keeps it until the bus is closed.
	CacheTTL time.Duration
}

var DefaultConfig = &Config{
	IncomingBuffer:    100,
	SubscribeBuffer:   10,
	UnsubscribeBuffer: 10,
	CacheTTL:          ttlcache.NoTTL,
}

type message[T any] struct {
	topic string
	data  T
}

type newSub[T any] struct {
	topic string
	resp  chan T
}

type Controller[T any] struct {
	subs     map[string][]chan T
	incoming chan message[T]
	sub      chan newSub[T]
	unsub    chan chan T
	cache    *ttlcache.Cache[string, T]

	// subMu guards stopped so no subscription is queued after cleanup
	// drained c.sub.
	subMu   sync.Mutex
	stopped bool

	closeOnce sync.Once
	quit      chan struct{}
	done      chan struct{}
}

func New[T any](cfg *Config) *Controller[T] {
	if cfg == nil {
		cfg = DefaultConfig
	}
	c := &Controller[T]{
		subs:     make(map[string][]chan T),
		incoming: make(chan message[T], cfg.IncomingBuffer),
		sub:      make(chan newSub[T], cfg.SubscribeBuffer),
		unsub:    make(chan chan T, cfg.UnsubscribeBuffer),
		cache:    ttlcache.New[string, T](ttlcache.WithTTL[string, T](cfg.CacheTTL)),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go c.run()
	return c
}

func (c *Controller[T]) run() {
	defer close(c.done)
	for {
		select {
		case <-c.quit:
			c.cleanup()
			return
		case msg := <-c.incoming:
			c.handleMessage(msg)
		case sub := <-c.sub:
			c.handleSubscription(sub)
		case unsub := <-c.unsub:
			c.handleUnsubscription(unsub)
		}
	}
}

func (c *Controller[T]) handleMessage(msg message[T]) {
	c.cache.Set(msg.topic, msg.data, ttlcache.DefaultTTL)
	for _, sub := range c.subs[msg.topic] {
		deliverLatest(sub, msg.data)
	}
}

// deliverLatest replaces an undelivered value instead of blocking. Only the
// run loop sends, so the second send cannot race another sender.
func deliverLatest[T any](ch chan T, v T) {
	select {
	case ch <- v:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- v:
	default:
	}
}

func (c *Controller[T]) handleSubscription(sub newSub[T]) {
	c.subs[sub.topic] = append(c.subs[sub.topic], sub.resp)
	if item := c.cache.Get(sub.topic); item != nil {
		deliverLatest(sub.resp, item.Value())
	}
}

func (c *Controller[T]) handleUnsubscription(unsub chan T) {
	for topic, subs := range c.subs {
		for i, sub := range subs {
			if sub != unsub {
				continue
			}
			subs = append(subs[:i], subs[i+1:]...)
			if len(subs) == 0 {
				delete(c.subs, topic)
			} else {
				c.subs[topic] = subs
			}
			close(unsub)
			return
		}
	}
}

func (c *Controller[T]) cleanup() {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	c.stopped = true
	c.cache.DeleteAll()
	for pending := true; pending; {
		select {
		case sub := <-c.sub:
			close(sub.resp)
		default:
			pending = false
		}
	}
	for topic, subs := range c.subs {
		for _, sub := range subs {
			close(sub)
		}
		delete(c.subs, topic)
	}
}

// Close stops the bus and closes every subscriber channel.
func (c *Controller[T]) Close() {
	c.closeOnce.Do(func() {
		close(c.quit)
	})
	<-c.done
}

func (c *Controller[T]) Publish(topic string, data T) error {
	select {
	case <-c.quit:
		return ErrClosed
	default:
	}
	select {
	case c.incoming <- message[T]{topic: topic, data: data}:
		return nil
	default:
		return fmt.Errorf("%s: %w", topic, ErrPublishFull)
	}
}

// Subscribe returns a channel that receives the newest value of topic,
// starting with the cached one if any.
func (c *Controller[T]) Subscribe(topic string) chan T {
	respChan := make(chan T, 1)
	c.subMu.Lock()
	defer c.subMu.Unlock()
	if c.stopped {
		close(respChan)
		return respChan
	}
	select {
	case c.sub <- newSub[T]{topic: topic, resp: respChan}:
	case <-c.quit:
		close(respChan)
	}
	return respChan
}

// SubscribeFunc calls fn from its own goroutine for every delivered value.
// The returned function cancels the subscription.
func (c *Controller[T]) SubscribeFunc(topic string, fn func(T)) (cancel func()) {
	respChan := c.Subscribe(topic)
	go func() {
		for v := range respChan {
			fn(v)
		}
	}()
	return func() {
		c.Unsubscribe(respChan)
	}
}

func (c *Controller[T]) Unsubscribe(channel chan T) {
	select {
	case c.unsub <- channel:
	case <-c.quit:
	}
}

// Get returns the cached value of topic.
func (c *Controller[T]) Get(topic string) (T, bool) {
	if item := c.cache.Get(topic); item != nil {
		return item.Value(), true
	}
	var zero T
	return zero, false
}
