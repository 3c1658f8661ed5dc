package chi

import (
	"context"
	"net/http/httptest"
	"testing"

	chirouter "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/suplink/vendorcrm/internal/repository/record"
	contactuc "github.com/suplink/vendorcrm/internal/usecase/contact"
	dealuc "github.com/suplink/vendorcrm/internal/usecase/deal"
	healthuc "github.com/suplink/vendorcrm/internal/usecase/health"
	noteuc "github.com/suplink/vendorcrm/internal/usecase/note"
	vendoruc "github.com/suplink/vendorcrm/internal/usecase/vendor"
)

// mockRepo satisfies every use case repository contract.
type mockRepo struct {
	insertFn func(ctx context.Context, collection string, doc map[string]any) (string, error)
	findFn   func(ctx context.Context, collection string, f record.Filter, limit int) ([]record.Document, error)
	existsFn func(ctx context.Context, collection, id string) (bool, error)
}

func (m *mockRepo) Insert(ctx context.Context, collection string, doc map[string]any) (string, error) {
	if m.insertFn != nil {
		return m.insertFn(ctx, collection, doc)
	}
	return "generated-id", nil
}

func (m *mockRepo) Find(ctx context.Context, collection string, f record.Filter, limit int) ([]record.Document, error) {
	if m.findFn != nil {
		return m.findFn(ctx, collection, f, limit)
	}
	return nil, nil
}

func (m *mockRepo) Exists(ctx context.Context, collection, id string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, collection, id)
	}
	return true, nil
}

type mockPinger struct{ err error }

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

// newTestServer builds a server over a shared mock repo and returns both.
func newTestServer(t *testing.T) (*httptest.Server, *mockRepo) {
	t.Helper()

	mr := &mockRepo{}
	srv := NewServer(
		vendoruc.New(mr),
		contactuc.New(mr),
		dealuc.New(mr),
		noteuc.New(mr),
		healthuc.New(&mockPinger{}, nil, true),
		zap.NewNop(),
	)

	r := chirouter.NewRouter()
	srv.Routes(r)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts, mr
}
