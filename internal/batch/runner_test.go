package batch

import (
	"context"
	"fmt"
	"testing"

	"namesake/domain/features"
)

func TestBatchRunPreservesOrder(t *testing.T) {
	requests := make([]Request, 50)
	for i := range requests {
		requests[i] = Request{Entity: features.EntityDescriptor{Name: fmt.Sprintf("Player %02d", i)}}
	}

	extractor := NewBatchExtractor(8)
	results, err := extractor.Run(context.Background(), requests)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(results) != len(requests) {
		t.Fatalf("Expected %d results, got %d", len(requests), len(results))
	}

	for i, r := range results {
		if r.Entity.Name != requests[i].Entity.Name {
			t.Errorf("Result %d out of order: got %s, expected %s", i, r.Entity.Name, requests[i].Entity.Name)
		}
		if len(r.Features) != 138 {
			t.Errorf("Result %d has %d features, expected 138", i, len(r.Features))
		}
	}
}

func TestBatchRunDeterministicAcrossConcurrency(t *testing.T) {
	requests := []Request{
		{Entity: features.EntityDescriptor{Name: "Nick Chubb", Position: "RB"}},
		{Entity: features.EntityDescriptor{Name: "Derrick Henry", Position: "RB"}},
		{Entity: features.EntityDescriptor{Name: "Tua Tagovailoa", Position: "QB"}},
	}

	serial, err := NewBatchExtractor(1).Run(context.Background(), requests)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	parallel, err := NewBatchExtractor(16).Run(context.Background(), requests)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for i := range serial {
		for k, v := range serial[i].Features {
			if parallel[i].Features[k] != v {
				t.Errorf("Feature %s differs across concurrency for %s: %f vs %f",
					k, serial[i].Entity.Name, v, parallel[i].Features[k])
			}
		}
	}
}

func TestBatchRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	requests := make([]Request, 100)
	for i := range requests {
		requests[i] = Request{Entity: features.EntityDescriptor{Name: "Rex"}}
	}

	_, err := NewBatchExtractor(2).Run(ctx, requests)
	if err == nil {
		t.Error("Expected an error from a cancelled context")
	}
}

func TestBatchExtractorConcurrencyFloor(t *testing.T) {
	extractor := NewBatchExtractor(0)
	results, err := extractor.Run(context.Background(), []Request{
		{Entity: features.EntityDescriptor{Name: "Rex"}},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
}
