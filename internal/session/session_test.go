package session

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"
	"testing/iotest"

	"github.com/nao1215/chatwrapped/internal/model"
)

// recorder collects notifications.
type recorder struct {
	mu   sync.Mutex
	msgs []string
}

func (r *recorder) Notify(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func (r *recorder) last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.msgs) == 0 {
		return ""
	}
	return r.msgs[len(r.msgs)-1]
}

func TestNew(t *testing.T) {
	t.Parallel()

	s := New()

	if s.Mode() != model.ModeMemory {
		t.Errorf("expected memory mode, got %q", s.Mode())
	}
	if s.Stats() != (model.Stats{}) {
		t.Errorf("expected zero counters, got %+v", s.Stats())
	}
	if !reflect.DeepEqual(s.Dataset(), model.Baseline()) {
		t.Error("expected the baseline dataset")
	}
}

func TestSessionLoadDemo(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	s := New(WithNotifier(rec))

	if err := s.LoadDemo(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Mode() != model.ModeData {
		t.Errorf("expected data mode, got %q", s.Mode())
	}
	if got := s.Stats(); got.SourceItems != 1 || got.Fragments != 7 {
		t.Errorf("unexpected stats %+v", got)
	}

	ds := s.Dataset()
	if ds.Themes.Top5[0].Topic != model.TopicProductUX || ds.Themes.Top5[0].Weight != 40 {
		t.Errorf("expected product_ux at 40, got %+v", ds.Themes.Top5[0])
	}
	if len(ds.Voice.Words) == 0 {
		t.Error("expected demo words")
	}
	if rec.last() != MsgDemoLoaded {
		t.Errorf("expected %q, got %q", MsgDemoLoaded, rec.last())
	}
}

func TestSessionImport(t *testing.T) {
	t.Parallel()

	t.Run("successful import replaces the dataset", func(t *testing.T) {
		t.Parallel()

		rec := &recorder{}
		s := New(WithNotifier(rec))

		input := `[{"content": "soap recipe"}, {"content": "usb adapter"}, {"content": "cover letter"}]`
		if err := s.Import(context.Background(), "export.json", strings.NewReader(input)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if s.Mode() != model.ModeData {
			t.Errorf("expected data mode, got %q", s.Mode())
		}
		if got := s.Stats(); got.Fragments != 3 || got.SourceItems != 3 {
			t.Errorf("unexpected stats %+v", got)
		}
		if got := s.Dataset().Themes.Top5[0].Topic; got != model.TopicLife {
			t.Errorf("expected life to rank first, got %q", got)
		}
		if want := MsgProcessed(3); rec.last() != want {
			t.Errorf("expected %q, got %q", want, rec.last())
		}
	})

	t.Run("parse failure keeps previous state", func(t *testing.T) {
		t.Parallel()

		rec := &recorder{}
		s := New(WithNotifier(rec))
		if err := s.LoadDemo(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		before := s.Dataset()
		beforeStats := s.Stats()

		err := s.Import(context.Background(), "broken.json", strings.NewReader(`{"conversations": [`))

		if !errors.Is(err, ErrImport) {
			t.Errorf("expected ErrImport, got %v", err)
		}
		if !errors.Is(err, model.ErrInvalidDocument) {
			t.Errorf("expected ErrInvalidDocument, got %v", err)
		}
		if !reflect.DeepEqual(s.Dataset(), before) {
			t.Error("dataset changed after a failed import")
		}
		if s.Stats() != beforeStats {
			t.Error("counters changed after a failed import")
		}
		if rec.last() != MsgImportFailed {
			t.Errorf("expected %q, got %q", MsgImportFailed, rec.last())
		}
	})

	t.Run("read failure wraps ErrImport", func(t *testing.T) {
		t.Parallel()

		s := New()
		readErr := errors.New("disk on fire")
		err := s.Import(context.Background(), "export.json", iotest.ErrReader(readErr))

		if !errors.Is(err, ErrImport) || !errors.Is(err, readErr) {
			t.Errorf("expected ErrImport wrapping the read error, got %v", err)
		}
		if s.Mode() != model.ModeMemory {
			t.Error("mode changed after a failed import")
		}
	})

	t.Run("cancelled context fails the import", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		s := New()
		err := s.Import(ctx, "export.json", strings.NewReader(`["hello world"]`))
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
		if s.Mode() != model.ModeMemory {
			t.Error("mode changed after a cancelled import")
		}
	})

	t.Run("empty document is not an error", func(t *testing.T) {
		t.Parallel()

		s := New()
		if err := s.Import(context.Background(), "empty.json", strings.NewReader(`{}`)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := s.Stats(); got.Fragments != 0 || got.SourceItems != 1 {
			t.Errorf("unexpected stats %+v", got)
		}
		if s.Dataset().TotalWeight() != 100 {
			t.Error("expected weights to sum to 100")
		}
	})
}

func TestSessionModes(t *testing.T) {
	t.Parallel()

	t.Run("Data keeps the dataset", func(t *testing.T) {
		t.Parallel()

		rec := &recorder{}
		s := New(WithNotifier(rec))
		before := s.Dataset()

		s.Data()

		if s.Mode() != model.ModeData {
			t.Errorf("expected data mode, got %q", s.Mode())
		}
		if !reflect.DeepEqual(s.Dataset(), before) {
			t.Error("Data should not change the dataset")
		}
		if rec.last() != MsgDataMode {
			t.Errorf("expected %q, got %q", MsgDataMode, rec.last())
		}
	})

	t.Run("Memory restores the baseline", func(t *testing.T) {
		t.Parallel()

		rec := &recorder{}
		s := New(WithNotifier(rec))
		if err := s.LoadDemo(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		s.Memory()

		if s.Mode() != model.ModeMemory {
			t.Errorf("expected memory mode, got %q", s.Mode())
		}
		if s.Stats() != (model.Stats{}) {
			t.Errorf("expected zero counters, got %+v", s.Stats())
		}
		if !reflect.DeepEqual(s.Dataset(), model.Baseline()) {
			t.Error("expected the baseline dataset")
		}
		if rec.last() != MsgMemoryMode {
			t.Errorf("expected %q, got %q", MsgMemoryMode, rec.last())
		}
	})

	t.Run("Reset restores the baseline", func(t *testing.T) {
		t.Parallel()

		rec := &recorder{}
		s := New(WithNotifier(rec))
		if err := s.LoadDemo(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		s.Reset()

		if s.Mode() != model.ModeMemory || s.Stats() != (model.Stats{}) {
			t.Error("expected memory mode with zero counters")
		}
		if rec.last() != MsgReset {
			t.Errorf("expected %q, got %q", MsgReset, rec.last())
		}
	})
}

func TestSessionDatasetIsACopy(t *testing.T) {
	t.Parallel()

	s := New()
	ds := s.Dataset()
	ds.Themes.Top5[0].Title = "changed"
	ds.Voice.Words = nil

	again := s.Dataset()
	if again.Themes.Top5[0].Title == "changed" || len(again.Voice.Words) == 0 {
		t.Error("mutating a returned dataset changed the session")
	}
}

func TestSessionConcurrentUse(t *testing.T) {
	t.Parallel()

	s := New()
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			switch i % 4 {
			case 0:
				_ = s.LoadDemo(context.Background())
			case 1:
				s.Reset()
			case 2:
				_ = s.Dataset()
			default:
				_ = s.Import(context.Background(), "export.json", strings.NewReader(`["hello world"]`))
			}
		}()
	}
	wg.Wait()

	if m := s.Mode(); m != model.ModeMemory && m != model.ModeData {
		t.Errorf("unexpected mode %q", m)
	}
}

func TestNotifierFunc(t *testing.T) {
	t.Parallel()

	var got string
	s := New(WithNotifier(NotifierFunc(func(msg string) { got = msg })))
	s.Data()

	if got != MsgDataMode {
		t.Errorf("expected %q, got %q", MsgDataMode, got)
	}
}

func TestDemoDocument(t *testing.T) {
	t.Parallel()

	doc := DemoDocument()
	if got := model.SourceItemCount(doc); got != 1 {
		t.Errorf("expected 1 source item, got %d", got)
	}
	conversations, ok := doc.Get("conversations")
	if !ok || len(conversations.Items) != 1 {
		t.Fatalf("expected one conversation, got %+v", conversations)
	}
	messages, ok := conversations.Items[0].Get("messages")
	if !ok || len(messages.Items) != len(demoMessages) {
		t.Fatalf("expected %d messages", len(demoMessages))
	}
}
