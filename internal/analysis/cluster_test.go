package analysis

import (
	"fmt"
	"testing"

	"namesake/domain/features"
)

// twoBlobs builds 2n rows in two well separated groups: the first n near the
// origin, the second n far away on both axes.
func twoBlobs(n int) *FeatureMatrix {
	entities := make([]features.ExtractedEntity, 0, 2*n)
	for i := 0; i < 2*n; i++ {
		base := 0.0
		if i >= n {
			base = 100.0
		}
		entities = append(entities, features.ExtractedEntity{
			Entity: features.EntityDescriptor{Name: fmt.Sprintf("Entity %02d", i)},
			Features: features.FeatureVector{
				"harshness":    base + float64(i%n),
				"memorability": base + float64((i*3)%n),
			},
		})
	}
	return NewFeatureMatrix(entities)
}

func TestKMeansSeparatesBlobs(t *testing.T) {
	m := twoBlobs(10)

	result, err := KMeans(m, []string{"harshness", "memorability"}, 2)
	if err != nil {
		t.Fatalf("Expected clean clustering, got error: %v", err)
	}
	if result.K != 2 {
		t.Errorf("Expected k=2, got %d", result.K)
	}
	if len(result.Assignments) != 20 {
		t.Fatalf("Expected 20 assignments, got %d", len(result.Assignments))
	}

	first := result.Assignments[0]
	for i := 1; i < 10; i++ {
		if result.Assignments[i] != first {
			t.Errorf("Row %d should share the first blob's cluster", i)
		}
	}
	second := result.Assignments[10]
	if second == first {
		t.Error("Expected the two blobs to land in different clusters")
	}
	for i := 11; i < 20; i++ {
		if result.Assignments[i] != second {
			t.Errorf("Row %d should share the second blob's cluster", i)
		}
	}
	if result.Sizes[first] != 10 || result.Sizes[second] != 10 {
		t.Errorf("Expected balanced cluster sizes, got %v", result.Sizes)
	}
}

func TestKMeansDeterministic(t *testing.T) {
	m := twoBlobs(8)

	a, err := KMeans(m, []string{"harshness", "memorability"}, 2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	b, err := KMeans(m, []string{"harshness", "memorability"}, 2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for i := range a.Assignments {
		if a.Assignments[i] != b.Assignments[i] {
			t.Fatalf("Assignment %d differs between runs: %d vs %d", i, a.Assignments[i], b.Assignments[i])
		}
	}
	if a.Inertia != b.Inertia {
		t.Errorf("Expected identical inertia across runs, got %f vs %f", a.Inertia, b.Inertia)
	}
}

func TestKMeansErrors(t *testing.T) {
	m := twoBlobs(3)

	if _, err := KMeans(m, []string{"harshness"}, 1); err == nil {
		t.Error("Expected error for k below 2")
	}
	if _, err := KMeans(m, []string{"harshness"}, 7); err == nil {
		t.Error("Expected error when rows are fewer than clusters")
	}
	if _, err := KMeans(m, []string{"unknown"}, 2); err == nil {
		t.Error("Expected error for unknown feature key")
	}
}

func TestKMeansConstantColumn(t *testing.T) {
	entities := make([]features.ExtractedEntity, 6)
	for i := range entities {
		spread := 0.0
		if i >= 3 {
			spread = 50.0
		}
		entities[i] = features.ExtractedEntity{
			Entity: features.EntityDescriptor{Name: fmt.Sprintf("Entity %d", i)},
			Features: features.FeatureVector{
				"flat":      42,
				"harshness": spread + float64(i),
			},
		}
	}
	m := NewFeatureMatrix(entities)

	result, err := KMeans(m, []string{"flat", "harshness"}, 2)
	if err != nil {
		t.Fatalf("Constant column should not break clustering: %v", err)
	}
	if result.Assignments[0] == result.Assignments[5] {
		t.Error("Expected separation on the varying column despite the constant one")
	}
}
