package nemsas

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/nemsas/claims/internal/domain/terminology"
)

// searchServer records every Search query it receives.
type searchServer struct {
	mu      sync.Mutex
	queries []string
}

func (s *searchServer) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.queries = append(s.queries, r.URL.Query().Get("Search"))
		s.mu.Unlock()
		w.Write(envelopeBody([]map[string]string{{"code": "S42.0", "name": "Fracture of clavicle"}}))
	}
}

func (s *searchServer) received() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.queries...)
}

func TestICDSearcher_OnlyFinalQueryFires(t *testing.T) {
	recorder := &searchServer{}
	srv := httptest.NewServer(recorder.handler())
	defer srv.Close()

	results := make(chan []*terminology.ClassificationCode, 1)
	s := NewICDSearcher(NewClient(srv.URL), func(codes []*terminology.ClassificationCode, err error) {
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		results <- codes
	})
	defer s.Stop()

	ctx := context.Background()
	s.Search(ctx, "ICD10", "fra")
	s.Search(ctx, "ICD10", "frac")
	s.Search(ctx, "ICD10", "fracture")

	select {
	case codes := <-results:
		if len(codes) != 1 || codes[0].Code != "S42.0" {
			t.Errorf("unexpected codes: %v", codes)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("debounced search never fired")
	}

	if got := recorder.received(); len(got) != 1 || got[0] != "fracture" {
		t.Errorf("expected only the final query, got %v", got)
	}
}

func TestICDSearcher_ShortTermNeverFires(t *testing.T) {
	recorder := &searchServer{}
	srv := httptest.NewServer(recorder.handler())
	defer srv.Close()

	s := NewICDSearcher(NewClient(srv.URL), func([]*terminology.ClassificationCode, error) {
		t.Error("callback should not run for short terms")
	})
	defer s.Stop()

	s.Search(context.Background(), "ICD10", "fr")
	s.Search(context.Background(), "ICD10", "  a  ")

	time.Sleep(SearchDelay + 200*time.Millisecond)
	if got := recorder.received(); len(got) != 0 {
		t.Errorf("expected no requests, got %v", got)
	}
}

func TestICDSearcher_ShortTermCancelsPending(t *testing.T) {
	recorder := &searchServer{}
	srv := httptest.NewServer(recorder.handler())
	defer srv.Close()

	s := NewICDSearcher(NewClient(srv.URL), func([]*terminology.ClassificationCode, error) {
		t.Error("cleared search box should cancel the pending lookup")
	})
	defer s.Stop()

	s.Search(context.Background(), "ICD10", "fracture")
	s.Search(context.Background(), "ICD10", "")

	time.Sleep(SearchDelay + 200*time.Millisecond)
	if got := recorder.received(); len(got) != 0 {
		t.Errorf("expected no requests, got %v", got)
	}
}

func TestProductSearcher_Fires(t *testing.T) {
	var mu sync.Mutex
	var gotSearch string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		gotSearch = r.URL.Query().Get("search")
		mu.Unlock()
		w.Write(envelopeBody(ProductPage{TotalCount: 1}))
	}))
	defer srv.Close()

	results := make(chan *ProductPage, 1)
	s := NewProductSearcher(NewClient(srv.URL), func(page *ProductPage, err error) {
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		results <- page
	})
	defer s.Stop()

	s.Search(context.Background(), ProductSearchParams{Search: "lipid"})

	select {
	case page := <-results:
		if page.TotalCount != 1 {
			t.Errorf("unexpected page: %+v", page)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("debounced search never fired")
	}

	mu.Lock()
	defer mu.Unlock()
	if gotSearch != "lipid" {
		t.Errorf("unexpected search term: %q", gotSearch)
	}
}
