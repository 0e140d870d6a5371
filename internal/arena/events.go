package arena

import (
	"github.com/studiowebux/playperf/internal/session"
	"github.com/studiowebux/playperf/internal/stats"
)

type eventKind int

const (
	evResolved eventKind = iota
	evConnected
	evRecvHeader
	evFirstChunk
	evContent
	evTotalBytes
	evFinished
	evError
)

type event struct {
	sess    *session.Session
	kind    eventKind
	ms      int32
	bytes   uint64
	total   uint64
	errKind stats.ErrorKind
}

// The Observer methods below only ever build an event and hand it to the
// dispatcher; see doc.go for why no aggregation happens here.

func (a *Arena) OnResolved(s *session.Session, ms int32) {
	a.eventCh <- event{sess: s, kind: evResolved, ms: ms}
}

func (a *Arena) OnConnected(s *session.Session, ms int32) {
	a.eventCh <- event{sess: s, kind: evConnected, ms: ms}
}

func (a *Arena) OnRecvHeader(s *session.Session, ms int32) {
	a.eventCh <- event{sess: s, kind: evRecvHeader, ms: ms}
}

func (a *Arena) OnFirstChunk(s *session.Session, ms int32) {
	a.eventCh <- event{sess: s, kind: evFirstChunk, ms: ms}
}

func (a *Arena) OnContent(s *session.Session, bytes uint64, ms int32) {
	a.eventCh <- event{sess: s, kind: evContent, bytes: bytes, ms: ms}
}

func (a *Arena) OnTotalBytes(s *session.Session, total uint64) {
	a.eventCh <- event{sess: s, kind: evTotalBytes, total: total}
}

func (a *Arena) OnFinished(s *session.Session) {
	a.eventCh <- event{sess: s, kind: evFinished}
}

func (a *Arena) OnError(s *session.Session, kind stats.ErrorKind) {
	a.eventCh <- event{sess: s, kind: evError, errKind: kind}
}
