package arena

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/studiowebux/playperf/internal/config"
	"github.com/studiowebux/playperf/internal/session"
	"github.com/studiowebux/playperf/internal/stats"
	"github.com/studiowebux/playperf/internal/urlutil"
)

// eventBufferSize gives session goroutines headroom during a burst of
// OnTotalBytes/OnContent sends; the dispatcher is the only consumer.
const eventBufferSize = 4096

type sessionState struct {
	url     string
	summary *stats.Summary
}

// Arena launches sessions on a paced schedule, dispatches their events, and
// aggregates per-URL and overall Summaries.
type Arena struct {
	cfg     config.Config
	overall *stats.Summary
	perURL  map[string]*stats.Summary
	targets map[string]urlutil.Target

	eventCh chan event

	sessionsMu       sync.Mutex
	sessions         map[*session.Session]*sessionState
	clientsRemaining int

	done         chan struct{}
	stopDispatch chan struct{}
}

// New validates cfg's URLs and builds the per-URL Summary map up front, so
// it is fully populated before any session starts.
func New(cfg config.Config) (*Arena, error) {
	urls := cfg.URLs()
	if len(urls) == 0 {
		return nil, fmt.Errorf("no URLs configured")
	}

	perURL := make(map[string]*stats.Summary, len(urls))
	targets := make(map[string]urlutil.Target, len(urls))
	for _, u := range urls {
		if _, exists := targets[u]; exists {
			continue
		}
		t, err := urlutil.Parse(u)
		if err != nil {
			return nil, fmt.Errorf("invalid target %q: %w", u, err)
		}
		targets[u] = t
		perURL[u] = stats.NewSummary(cfg.Detailed())
	}

	return &Arena{
		cfg:          cfg,
		overall:      stats.NewSummary(false),
		perURL:       perURL,
		targets:      targets,
		eventCh:      make(chan event, eventBufferSize),
		sessions:     make(map[*session.Session]*sessionState),
		done:         make(chan struct{}),
		stopDispatch: make(chan struct{}),
	}, nil
}

// OverallSummary returns the aggregate Summary across every URL.
func (a *Arena) OverallSummary() *stats.Summary { return a.overall }

// PerURLSummaries returns each URL's own Summary. The map itself is
// read-only after Run returns.
func (a *Arena) PerURLSummaries() map[string]*stats.Summary { return a.perURL }

// Done returns a channel closed once every launched session has terminated.
// Consumers such as the live progress view use it to know when to stop
// polling; it is never closed if Run exits early via ctx cancellation.
func (a *Arena) Done() <-chan struct{} { return a.done }

// Run launches cfg.Clients() sessions, cycling the URL list, paced by
// cfg.Interval(). It returns once every launched session has terminated, or
// once ctx is canceled (SIGINT/SIGTERM in cmd/playperf), whichever is
// first. Run never returns a non-nil error for session failures; those are
// recorded in the Summaries.
func (a *Arena) Run(ctx context.Context) error {
	n := a.cfg.Clients()
	if n <= 0 {
		return nil
	}
	a.clientsRemaining = n

	go a.dispatch()
	defer close(a.stopDispatch)

	urls := a.cfg.URLs()
	interval := a.cfg.Interval()
	start := time.Now()

	interrupted := false
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			interrupted = true
		default:
		}
		if interrupted {
			break
		}

		if interval > 0 {
			wake := start.Add(time.Duration(i) * interval)
			if d := time.Until(wake); d > 0 {
				timer := time.NewTimer(d)
				select {
				case <-timer.C:
				case <-ctx.Done():
					timer.Stop()
					interrupted = true
				}
			}
		}
		if interrupted {
			break
		}

		a.launch(urls[i%len(urls)])
	}

	if !interrupted {
		select {
		case <-a.done:
		case <-ctx.Done():
		}
	}

	a.disconnectAll()
	return nil
}

func (a *Arena) launch(url string) {
	target := a.targets[url]
	sess := session.Prepare(a, target, a.cfg.Timeout())

	a.sessionsMu.Lock()
	a.sessions[sess] = &sessionState{url: url, summary: a.perURL[url]}
	a.sessionsMu.Unlock()

	sess.Start()
}

func (a *Arena) disconnectAll() {
	a.sessionsMu.Lock()
	live := make([]*session.Session, 0, len(a.sessions))
	for s := range a.sessions {
		live = append(live, s)
	}
	a.sessionsMu.Unlock()

	for _, s := range live {
		s.Disconnect()
	}
}

func (a *Arena) dispatch() {
	for {
		select {
		case ev := <-a.eventCh:
			a.handle(ev)
		case <-a.stopDispatch:
			return
		}
	}
}

func (a *Arena) handle(ev event) {
	a.sessionsMu.Lock()
	st, ok := a.sessions[ev.sess]
	a.sessionsMu.Unlock()
	if !ok {
		return
	}

	switch ev.kind {
	case evResolved:
		st.summary.UpdateResolving(ev.ms)
		a.overall.UpdateResolving(ev.ms)
	case evConnected:
		st.summary.UpdateConnecting(ev.ms)
		a.overall.UpdateConnecting(ev.ms)
	case evRecvHeader:
		st.summary.UpdateRecvHeader(ev.ms)
		a.overall.UpdateRecvHeader(ev.ms)
	case evFirstChunk:
		st.summary.UpdateFirstChunk(ev.ms)
		a.overall.UpdateFirstChunk(ev.ms)
	case evContent:
		st.summary.UpdateThroughput(ev.bytes, ev.ms)
		a.overall.UpdateThroughput(ev.bytes, ev.ms)
	case evTotalBytes:
		if ev.total >= a.cfg.MaxRecvLength() {
			a.terminate(ev.sess)
		}
	case evFinished:
		st.summary.UpdateError(stats.ErrEarlyEOF)
		a.overall.UpdateError(stats.ErrEarlyEOF)
		a.terminate(ev.sess)
	case evError:
		st.summary.UpdateError(ev.errKind)
		a.overall.UpdateError(ev.errKind)
		a.terminate(ev.sess)
	}
}

// terminate is the single funnel for ending a session, guarded by removal
// from the sessions map so it is a no-op past the first call.
func (a *Arena) terminate(sess *session.Session) {
	a.sessionsMu.Lock()
	if _, ok := a.sessions[sess]; !ok {
		a.sessionsMu.Unlock()
		return
	}
	delete(a.sessions, sess)
	a.sessionsMu.Unlock()

	sess.Disconnect()

	a.clientsRemaining--
	if a.clientsRemaining <= 0 {
		close(a.done)
	}
}
