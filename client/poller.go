package client

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/udyogsaathi/udyog-saathi/models"
)

const (
	// DefaultFeedInterval is the main refresh cadence for feeds and
	// notifications.
	DefaultFeedInterval = 20 * time.Second
	// DefaultChatInterval is the faster cadence for the open chat thread.
	DefaultChatInterval = 3 * time.Second
)

// FeedUpdate carries one polling tick's worth of data. The queries behind
// it run concurrently within the tick, so the fields may reflect slightly
// different instants. A nil slice means that stream's fetch failed and the
// previous value should be kept.
type FeedUpdate struct {
	Jobs          []models.Job
	Workers       []models.WorkerProfile
	Instant       []models.InstantService
	Notifications []models.Application
}

// Poller drives the fixed-interval synchronization: one loop for feeds and
// notifications, a second shorter one for the open chat thread. Overlap is
// suppressed per stream with an in-flight guard — a tick that fires while
// the previous refresh is still running is dropped, not queued.
type Poller struct {
	client *Client
	email  string

	FeedInterval time.Duration
	ChatInterval time.Duration

	// Visible, when set, is consulted before every feed tick; a false
	// return skips the tick (backgrounded-document check).
	Visible func() bool

	OnFeeds func(FeedUpdate)
	OnChat  func(peer string, history []models.Message)

	feedBusy atomic.Bool
	chatBusy atomic.Bool
	peer     atomic.Pointer[string]

	stop     chan struct{}
	stopOnce sync.Once
}

func NewPoller(c *Client, email string, onFeeds func(FeedUpdate), onChat func(string, []models.Message)) *Poller {
	return &Poller{
		client:       c,
		email:        email,
		FeedInterval: DefaultFeedInterval,
		ChatInterval: DefaultChatInterval,
		OnFeeds:      onFeeds,
		OnChat:       onChat,
		stop:         make(chan struct{}),
	}
}

// Start launches both loops. Stop cancels them; a refresh already in
// flight at that point finishes on its own and its result is discarded.
func (p *Poller) Start() {
	go p.feedLoop()
	go p.chatLoop()
}

func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		close(p.stop)
	})
}

// OpenChat marks a conversation as open; the chat loop refreshes it until
// CloseChat or a different OpenChat.
func (p *Poller) OpenChat(peer string) {
	p.peer.Store(&peer)
}

func (p *Poller) CloseChat() {
	p.peer.Store(nil)
}

func (p *Poller) feedLoop() {
	ticker := time.NewTicker(p.FeedInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if p.Visible != nil && !p.Visible() {
				continue
			}
			if !p.feedBusy.CompareAndSwap(false, true) {
				continue // previous refresh still in flight — drop the tick
			}
			go func() {
				defer p.feedBusy.Store(false)
				p.refreshFeeds()
			}()
		case <-p.stop:
			return
		}
	}
}

func (p *Poller) chatLoop() {
	ticker := time.NewTicker(p.ChatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			peer := p.peer.Load()
			if peer == nil {
				continue
			}
			if !p.chatBusy.CompareAndSwap(false, true) {
				continue
			}
			go func(peer string) {
				defer p.chatBusy.Store(false)
				p.refreshChat(peer)
			}(*peer)
		case <-p.stop:
			return
		}
	}
}

// refreshFeeds runs the four queries of one tick concurrently and hands
// the assembled result to OnFeeds. Individual failures are logged and left
// nil; the poller itself never surfaces errors.
func (p *Poller) refreshFeeds() {
	ctx := context.Background()
	var update FeedUpdate
	var wg sync.WaitGroup

	wg.Add(4)
	go func() {
		defer wg.Done()
		jobs, err := p.client.FetchJobs(ctx)
		if err != nil {
			log.Printf("poller: jobs refresh failed: %v", err)
			return
		}
		update.Jobs = jobs
	}()
	go func() {
		defer wg.Done()
		workers, err := p.client.FetchWorkerProfiles(ctx)
		if err != nil {
			log.Printf("poller: workers refresh failed: %v", err)
			return
		}
		update.Workers = workers
	}()
	go func() {
		defer wg.Done()
		instant, err := p.client.FetchInstantServices(ctx)
		if err != nil {
			log.Printf("poller: instant refresh failed: %v", err)
			return
		}
		update.Instant = instant
	}()
	go func() {
		defer wg.Done()
		notifs, err := p.client.FetchNotifications(ctx, p.email)
		if err != nil {
			log.Printf("poller: notifications refresh failed: %v", err)
			return
		}
		update.Notifications = notifs
	}()
	wg.Wait()

	if p.OnFeeds != nil {
		p.OnFeeds(update)
	}
}

func (p *Poller) refreshChat(peer string) {
	history, err := p.client.FetchChat(context.Background(), p.email, peer)
	if err != nil {
		log.Printf("poller: chat refresh failed: %v", err)
		return
	}

	// The thread may have been switched or closed while the fetch was in
	// flight; a stale result is dropped.
	current := p.peer.Load()
	if current == nil || *current != peer {
		return
	}
	if p.OnChat != nil {
		p.OnChat(peer, history)
	}
}
